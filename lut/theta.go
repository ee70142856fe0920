// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import "fmt"

const (
	ThetaMin = 5   // smallest valid integer theta
	ThetaMax = 127 // largest valid integer theta
)

// Theta compresses the integer track theta.
//
// The 4-bit code is used for 4-station tracks: codes 0-7 span the
// ME1/1 acceptance (theta in [5,52]) and codes 8-13 the ME1/2 one
// (theta in [46,87]), selected by st1Ring2.
// The 5-bit code is used for 2- and 3-station tracks: codes 0-31 when
// the station-1 hit is in ring 1 or absent, codes 7-31 (theta capped
// at 104) when it is in ring 2.
func Theta(theta, st1Ring2, bits int) int {
	if theta < ThetaMin || theta > ThetaMax {
		panic(fmt.Errorf("lut: invalid theta %d", theta))
	}
	if st1Ring2 != 0 && st1Ring2 != 1 {
		panic(fmt.Errorf("lut: invalid station-1 ring-2 flag %d", st1Ring2))
	}

	switch bits {
	case 4:
		if st1Ring2 == 0 {
			return (clamp(theta, 5, 52) - 5) / 6
		}
		return (clamp(theta, 46, 87)-46)/7 + 8
	case 5:
		if st1Ring2 == 0 {
			return (theta - 1) / 4
		}
		return (min(theta, 104)-1)/4 + 6
	}
	panic(fmt.Errorf("lut: invalid theta bit-width %d", bits))
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func clamp(v, lo, hi int) int {
	switch {
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}
