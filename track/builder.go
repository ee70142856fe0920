// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import "fmt"

// Candidate is a track candidate built from at most one hit per station.
type Candidate struct {
	Sector Sector
	Hits   [NStations]int // hit indices, NoHit for absent stations

	Mode    Mode // stations with a hit, 0 for unusable candidates
	ModeCSC Mode // stations with a CSC hit
	ModeRPC Mode // stations with an RPC hit

	SumAbsDPhi   int // sum of |dPhi| over consecutive stations
	SumAbsDTheta int // sum of |dTheta| over consecutive stations
}

// Hit returns the index of the hit in the given station.
func (c Candidate) Hit(st Station) int {
	return c.Hits[st-1]
}

// Present returns whether the candidate has a hit in the given station.
func (c Candidate) Present(st Station) bool {
	return c.Hits[st-1] != NoHit
}

// Stations returns the mask of stations holding a hit.
// It differs from Mode only for unusable candidates.
func (c Candidate) Stations() Mode {
	var m Mode
	for st := Station(1); st <= NStations; st++ {
		if c.Present(st) {
			m |= ModeOf(st)
		}
	}
	return m
}

// Key returns the selection key of the candidate.
func (c Candidate) Key() Key {
	return Key{CSC: c.ModeCSC, RPC: c.ModeRPC}
}

// Build builds all the track candidates of a sector for the requested mode.
//
// For each station of the mode, each hit of the station is tried in turn.
// A station of the mode without any hit is left absent.
// Candidates whose consecutive stations fall outside the dPhi or dTheta
// windows are rejected.
// Candidates with less than MinCSC CSC hits or more than MaxRPC RPC hits
// are kept but marked unusable with a mode of 0.
func Build(grid *Grid, sec Sector, mode Mode, cfg Config) ([]Candidate, error) {
	if err := ValidMode(mode); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !sec.valid() {
		return nil, fmt.Errorf("track: invalid sector %d", sec)
	}

	if grid.Empty(sec) {
		return nil, nil
	}

	var (
		none  = []int{NoHit}
		slots [NStations][]int
	)
	for st := Station(1); st <= NStations; st++ {
		cell := grid.Cell(sec, st)
		switch {
		case !mode.Has(st), len(cell) == 0:
			slots[st-1] = none
		default:
			slots[st-1] = cell
		}
	}

	var cands []Candidate
	for _, i1 := range slots[0] {
		for _, i2 := range slots[1] {
			for _, i3 := range slots[2] {
				for _, i4 := range slots[3] {
					c, ok := newCandidate(grid, sec, [NStations]int{i1, i2, i3, i4}, cfg)
					if !ok {
						continue
					}
					cands = append(cands, c)
				}
			}
		}
	}

	return cands, nil
}

func newCandidate(grid *Grid, sec Sector, hits [NStations]int, cfg Config) (Candidate, bool) {
	c := Candidate{
		Sector: sec,
		Hits:   hits,
	}

	var (
		prev = NoHit
		pass = true
		nCSC = 0
		nRPC = 0
	)
	for st := Station(1); st <= NStations; st++ {
		ihit := hits[st-1]
		if ihit == NoHit {
			continue
		}
		hit := grid.Hit(ihit)
		if hit.Sector != sec || hit.Station != st {
			panic(fmt.Errorf(
				"track: invalid hit %d in sector %d station %d (hit sector=%d, station=%d)",
				ihit, sec, st, hit.Sector, hit.Station,
			))
		}

		c.Mode |= ModeOf(st)
		switch hit.Detector {
		case CSC:
			c.ModeCSC |= ModeOf(st)
			nCSC++
		case RPC:
			c.ModeRPC |= ModeOf(st)
			nRPC++
		default:
			panic(fmt.Errorf("track: invalid detector %v (hit=%d)", hit.Detector, ihit))
		}

		if prev != NoHit {
			var (
				ref = grid.Hit(prev)
				dph = abs(hit.Phi - ref.Phi)
				dth = abs(hit.Theta - ref.Theta)
			)
			c.SumAbsDPhi += dph
			c.SumAbsDTheta += dth
			if dph >= cfg.MaxDPhi || dth > cfg.MaxDTheta {
				pass = false
			}
		}
		prev = ihit
	}

	if c.Mode == 0 || !pass {
		return c, false
	}

	if nCSC < cfg.MinCSC || nRPC > cfg.MaxRPC {
		c.Mode = 0
	}

	return c, true
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
