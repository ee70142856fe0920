// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"github.com/go-lpc/emtf/lut"
	"github.com/go-lpc/emtf/track"
)

// Bends returns the bend of the hit of each station.
//
// Without bitComp, the bend is derived from the CSC pattern and RPC
// hits have no bend.
// With bitComp, the CSC patterns of 3- and 4-station tracks are compressed
// on 2 bits and those of 2-station tracks on 3 bits. RPC hits take the
// no-bend code on 3 bits and have no bend on 2 bits, where every code
// is a CSC bend.
func Bends(in Input, dphiSign int, bitComp bool) [track.NStations]Int {
	var bends [track.NStations]Int
	if in.Mode == 0 {
		return bends
	}

	var (
		bits   = 3
		endcap = in.Endcap()
	)
	if in.Mode.NStations() >= 3 {
		bits = 2
	}
	for st := track.Station(1); st <= track.NStations; st++ {
		hit := in.Hit(st)
		if hit == nil {
			continue
		}

		switch {
		case bitComp && hit.IsCSC():
			bends[st-1] = Some(lut.Bend(hit.Pattern, endcap, dphiSign, bits))
		case bitComp && bits == 3:
			bends[st-1] = Some(lut.Bend(lut.PatternRPC, endcap, dphiSign, bits))
		case hit.IsCSC():
			bends[st-1] = Some(lut.PatternBend(hit.Pattern, endcap))
		}
	}
	return bends
}
