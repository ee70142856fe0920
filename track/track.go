// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package track groups the hits of an event into sectors and stations,
// builds the track candidates of each sector and selects the best
// candidate for each combination of CSC and RPC stations.
package track // import "github.com/go-lpc/emtf/track"

import (
	"fmt"
	"strings"
)

const (
	NSectors  = 12 // number of sectors per endcap
	NStations = 4  // number of muon stations

	// NoHit marks a station without any hit in a candidate.
	NoHit = -1
)

// Sector identifies one of the 12 azimuthal sectors, from 1 to 12.
type Sector int

func (sec Sector) valid() bool { return 1 <= sec && sec <= NSectors }

// Station identifies one of the 4 muon stations, from 1 to 4.
type Station int

func (st Station) valid() bool { return 1 <= st && st <= NStations }

// Detector is the technology of the chamber that produced a hit.
type Detector uint8

const (
	CSC Detector = iota + 1
	RPC
)

func (det Detector) String() string {
	switch det {
	case CSC:
		return "CSC"
	case RPC:
		return "RPC"
	}
	return fmt.Sprintf("Detector(%d)", uint8(det))
}

// Mode is a 4-bit mask of stations.
// Bit 3 is station 1 and bit 0 is station 4, so that mode 15
// is a 4-station track and mode 12 a track with stations 1 and 2.
type Mode uint8

// ModeOf returns the mode with only the given station.
func ModeOf(st Station) Mode {
	return 1 << (NStations - st)
}

// Has returns whether the station is part of the mode.
func (m Mode) Has(st Station) bool {
	return m&ModeOf(st) != 0
}

// NStations returns the number of stations in the mode.
func (m Mode) NStations() int {
	n := 0
	for st := Station(1); st <= NStations; st++ {
		if m.Has(st) {
			n++
		}
	}
	return n
}

// String returns the stations of the mode, e.g. "1-2-4" for mode 13.
func (m Mode) String() string {
	if m == 0 {
		return "none"
	}
	var o strings.Builder
	for st := Station(1); st <= NStations; st++ {
		if !m.Has(st) {
			continue
		}
		if o.Len() > 0 {
			o.WriteString("-")
		}
		fmt.Fprintf(&o, "%d", st)
	}
	return o.String()
}

// Modes lists the physically meaningful track modes.
var Modes = []Mode{15, 14, 13, 12, 11, 10, 9, 7, 6, 5, 3}

// ValidMode returns an error if the mode is not one of the supported track modes.
func ValidMode(m Mode) error {
	for _, v := range Modes {
		if v == m {
			return nil
		}
	}
	return fmt.Errorf("track: invalid mode %d", uint8(m))
}
