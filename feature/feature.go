// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package feature computes the derived variables of a selected track
// candidate, as used by the pT assignment.
package feature // import "github.com/go-lpc/emtf/feature"

import (
	"fmt"
	"strconv"

	"github.com/go-lpc/emtf/track"
)

// Int is an integer variable that may not be defined for a track.
type Int struct {
	Val   int
	Valid bool
}

// Some returns a defined variable.
func Some(v int) Int { return Int{Val: v, Valid: true} }

func (v Int) String() string {
	if !v.Valid {
		return "-"
	}
	return strconv.Itoa(v.Val)
}

// Pairs of stations, in the order of the DPhi and DTheta arrays.
const (
	Pair12 = iota
	Pair13
	Pair14
	Pair23
	Pair24
	Pair34

	NPairs
)

var pairs = [NPairs][2]track.Station{
	Pair12: {1, 2},
	Pair13: {1, 3},
	Pair14: {1, 4},
	Pair23: {2, 3},
	Pair24: {2, 4},
	Pair34: {3, 4},
}

// PairOf returns the index of the (i,j) station pair.
func PairOf(i, j track.Station) int {
	for p, v := range pairs {
		if v[0] == i && v[1] == j {
			return p
		}
	}
	panic(fmt.Errorf("feature: invalid station pair (%d,%d)", i, j))
}

// Input holds the hits of a selected track candidate.
type Input struct {
	Mode track.Mode // stations with a hit
	Hits [track.NStations]*track.Hit
}

// NewInput returns the input of the given candidate.
func NewInput(grid *track.Grid, c track.Candidate) Input {
	var in Input
	for st := track.Station(1); st <= track.NStations; st++ {
		if !c.Present(st) {
			continue
		}
		hit := grid.Hit(c.Hit(st))
		in.Hits[st-1] = &hit
		in.Mode |= track.ModeOf(st)
	}
	return in
}

// Hit returns the hit in the given station, or nil.
func (in Input) Hit(st track.Station) *track.Hit {
	return in.Hits[st-1]
}

// Endcap returns the endcap of the track.
func (in Input) Endcap() int {
	for _, hit := range in.Hits {
		if hit != nil {
			return hit.Endcap
		}
	}
	panic(fmt.Errorf("feature: track without any hit"))
}

// Features holds the derived variables of a track.
type Features struct {
	Mode track.Mode

	Theta     int // track theta
	ThetaCode Int // compressed track theta
	St1Ring2  int // whether the station-1 hit is in ring 2

	DPhi     [NPairs]Int
	DPhiSign int
	DPhiSums

	DTheta [NPairs]Int
	Bend   [track.NStations]Int
	FR     [track.NStations]Int
}

// Compute computes the derived variables of the given track.
// With bitComp, the variables are compressed as in the firmware.
//
// Compute panics if the track has no hit in stations 2 to 4.
func Compute(in Input, bitComp bool) Features {
	dphi := DeltaPhis(in, bitComp)
	fs := Features{
		Mode:     in.Mode,
		Theta:    TrackTheta(in),
		St1Ring2: st1Ring2(in),
		DPhi:     dphi.Val,
		DPhiSign: dphi.Sign,
		DPhiSums: dphi.DPhiSums,
		DTheta:   DeltaThetas(in, bitComp),
		Bend:     Bends(in, dphi.Sign, bitComp),
	}

	if bitComp {
		fs.ThetaCode = Some(ThetaCode(in))
	}

	for i, hit := range in.Hits {
		if hit == nil {
			continue
		}
		fs.FR[i] = Some(hit.FR)
	}

	return fs
}
