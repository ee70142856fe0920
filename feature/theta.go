// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"fmt"

	"github.com/go-lpc/emtf/lut"
	"github.com/go-lpc/emtf/track"
)

// TrackTheta returns the theta of the track: the theta of the first
// hit in stations 2, 3 or 4. Station 1 is never used.
func TrackTheta(in Input) int {
	for _, st := range []track.Station{2, 3, 4} {
		if hit := in.Hit(st); hit != nil {
			return hit.Theta
		}
	}
	panic(fmt.Errorf("feature: no hit in stations 2-4 to compute track theta (mode=%d)", in.Mode))
}

// ThetaCode returns the compressed track theta: 4 bits for 4-station
// tracks, 5 bits otherwise. Both codes depend on the ring of the
// station-1 hit.
func ThetaCode(in Input) int {
	bits := 5
	if in.Mode.NStations() == track.NStations {
		bits = 4
	}
	return lut.Theta(TrackTheta(in), st1Ring2(in), bits)
}

func st1Ring2(in Input) int {
	if hit := in.Hit(1); hit != nil && hit.Ring == 2 {
		return 1
	}
	return 0
}

// DeltaThetas returns the theta differences between each pair of stations.
// With bitComp, they are compressed on 2 bits for 4-station tracks
// and on 3 bits otherwise.
func DeltaThetas(in Input, bitComp bool) [NPairs]Int {
	bits := 3
	if in.Mode.NStations() == track.NStations {
		bits = 2
	}

	var dth [NPairs]Int
	for p, v := range pairs {
		var (
			h1 = in.Hit(v[0])
			h2 = in.Hit(v[1])
		)
		if h1 == nil || h2 == nil {
			continue
		}
		d := h2.Theta - h1.Theta
		if bitComp {
			d = lut.DTheta(d, bits)
		}
		dth[p] = Some(d)
	}
	return dth
}
