// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import "fmt"

const (
	// PatternStraight is the CSC pattern of a straight (zero-bend) LCT.
	PatternStraight = 10
	// PatternRPC is the pattern code used for RPC hits, which carry no bend.
	PatternRPC = 0
)

// PatternBend converts a CSC pattern into a signed bend.
//
//	10 -> 0, 9/8 -> 1, 7/6 -> 2, 5/4 -> 3, 3/2 -> 4, 1 -> 5
//
// Even patterns bend one way, odd ones the other, and the sign is
// flipped for the positive endcap.
func PatternBend(pattern, endcap int) int {
	if pattern < 1 || pattern > PatternStraight {
		panic(fmt.Errorf("lut: invalid CSC pattern %d", pattern))
	}
	checkEndcap(endcap)

	var bend int
	switch {
	case pattern == PatternStraight:
		bend = 0
	case pattern%2 == 0:
		bend = (10 - pattern) / 2
	default:
		bend = -(11 - pattern) / 2
	}
	if endcap > 0 {
		bend = -bend
	}
	return bend
}

// Bend compresses a CSC pattern into a 2- or 3-bit code.
//
// dphiSign is the sign convention of the track dPhi: bends are "opposite"
// when they go against dPhi, "same" otherwise.
// Pattern 0 (RPC hit) is mapped to the no-bend code 0 with 3 bits.
// With 2 bits, only the CSC patterns 2 to 10 can be compressed.
func Bend(pattern, endcap, dphiSign, bits int) int {
	if pattern < 0 || pattern > PatternStraight {
		panic(fmt.Errorf("lut: invalid CSC pattern %d", pattern))
	}
	checkEndcap(endcap)
	if dphiSign != -1 && dphiSign != +1 {
		panic(fmt.Errorf("lut: invalid dPhi sign %d", dphiSign))
	}

	// in ME-, the CSC bend goes with dPhi. it is opposite in ME+.
	opp := -endcap*dphiSign > 0

	// ladder[|bend|] holds the (opposite, same) codes.
	var ladder [][2]int
	switch bits {
	case 2:
		if pattern == PatternRPC {
			panic(fmt.Errorf("lut: RPC pattern can not be compressed on 2 bits"))
		}
		if pattern < 2 {
			panic(fmt.Errorf("lut: CSC pattern %d can not be compressed on 2 bits", pattern))
		}
		ladder = bend2b[:]
	case 3:
		if pattern == PatternRPC {
			return 0
		}
		ladder = bend3b[:]
	default:
		panic(fmt.Errorf("lut: invalid bend bit-width %d", bits))
	}

	mag := (10 + pattern%2 - pattern) / 2
	codes := ladder[mag]
	if pattern == PatternStraight {
		return codes[0]
	}

	// even patterns bend in the opposite direction than odd ones.
	if pattern%2 == 0 {
		opp = !opp
	}
	if opp {
		return codes[0]
	}
	return codes[1]
}

var bend2b = [5][2]int{
	{1, 1},
	{1, 2},
	{0, 3},
	{0, 3},
	{0, 3},
}

var bend3b = [6][2]int{
	{4, 4},
	{3, 5},
	{2, 6},
	{1, 7},
	{1, 7},
	{1, 7},
}

func checkEndcap(endcap int) {
	if endcap != -1 && endcap != +1 {
		panic(fmt.Errorf("lut: invalid endcap %d", endcap))
	}
}
