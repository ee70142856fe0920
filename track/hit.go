// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import "fmt"

// Hit is a CSC or RPC hit, as seen by the track finder.
type Hit struct {
	Sector   Sector
	Station  Station
	Phi      int // integer phi
	Theta    int // integer theta
	Detector Detector
	Pattern  int // CSC bend pattern, -1 for RPC hits
	Ring     int
	FR       int // front/rear bit
	Endcap   int // +1 or -1
}

// IsCSC returns whether the hit comes from a CSC chamber.
func (hit Hit) IsCSC() bool { return hit.Detector == CSC }

// Grid holds the indices of the hits of an event,
// arranged in sectors and stations.
type Grid struct {
	hits  []Hit
	cells [NSectors][NStations][]int
}

// NewGrid arranges hits into a grid of sectors and stations.
// Hits from the other endcap than the given one are discarded.
// An endcap of 0 keeps the hits from both endcaps.
//
// NewGrid panics if a hit has an invalid sector or station.
func NewGrid(hits []Hit, endcap int) *Grid {
	grid := &Grid{
		hits: make([]Hit, len(hits)),
	}
	copy(grid.hits, hits)

	for i, hit := range grid.hits {
		if endcap != 0 && hit.Endcap != endcap {
			continue
		}
		if !hit.Sector.valid() {
			panic(fmt.Errorf("track: invalid sector %d (hit=%d)", hit.Sector, i))
		}
		if !hit.Station.valid() {
			panic(fmt.Errorf("track: invalid station %d (hit=%d)", hit.Station, i))
		}
		cell := &grid.cells[hit.Sector-1][hit.Station-1]
		*cell = append(*cell, i)
	}

	return grid
}

// Len returns the number of hits the grid was built from.
func (grid *Grid) Len() int { return len(grid.hits) }

// Hit returns the i-th hit of the event.
func (grid *Grid) Hit(i int) Hit {
	return grid.hits[i]
}

// Cell returns the indices of the hits in the given sector and station.
// The returned slice must not be modified.
func (grid *Grid) Cell(sec Sector, st Station) []int {
	if !sec.valid() {
		panic(fmt.Errorf("track: invalid sector %d", sec))
	}
	if !st.valid() {
		panic(fmt.Errorf("track: invalid station %d", st))
	}
	return grid.cells[sec-1][st-1]
}

// Empty returns whether the sector holds no hit.
func (grid *Grid) Empty(sec Sector) bool {
	for st := Station(1); st <= NStations; st++ {
		if len(grid.Cell(sec, st)) > 0 {
			return false
		}
	}
	return true
}
