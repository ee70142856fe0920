// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package lut holds the look-up tables and quantization functions used
// by the EMTF firmware to compress angle differences, CSC bends and
// polar angles into the reduced bit-widths of the pT assignment address.
//
// All the functions of this package are pure and safe for concurrent use.
// Invalid arguments are programming errors and make the functions panic.
package lut // import "github.com/go-lpc/emtf/lut"

import (
	"fmt"
	"sort"
)

// Table is a monotonic look-up table quantizing the magnitude of
// an integer dPhi into 2^bits non-linear bins.
type Table struct {
	bits  int
	max   int
	edges []int
}

// DPhiTable returns the dPhi table for the given bit-width and maximum magnitude.
// Only the (4,256), (5,256) and (7,512) tables exist in the firmware.
func DPhiTable(bits, max int) Table {
	switch {
	case bits == 4 && max == 256:
		return Table{bits: bits, max: max, edges: dphi4b256[:]}
	case bits == 5 && max == 256:
		return Table{bits: bits, max: max, edges: dphi5b256[:]}
	case bits == 7 && max == 512:
		return Table{bits: bits, max: max, edges: dphi7b512[:]}
	}
	panic(fmt.Errorf("lut: invalid dPhi table (bits=%d, max=%d)", bits, max))
}

// Bits returns the bit-width of the table.
func (tbl Table) Bits() int { return tbl.bits }

// Max returns the maximum dPhi magnitude the table was designed for.
func (tbl Table) Max() int { return tbl.max }

// Len returns the number of bins.
func (tbl Table) Len() int { return len(tbl.edges) }

// Bin returns the index of the bin holding |v|.
// The bin i covers [edges[i], edges[i+1]), the last bin is open-ended.
func (tbl Table) Bin(v int) int {
	v = abs(v)
	if v >= tbl.max {
		v = tbl.max - 1
	}
	return sort.SearchInts(tbl.edges, v+1) - 1
}

// Value returns the (non-negative) representative value of the given bin.
// Bins outside the table are clamped to its boundaries.
func (tbl Table) Value(bin int) int {
	switch {
	case bin < 0:
		bin = 0
	case bin >= len(tbl.edges):
		bin = len(tbl.edges) - 1
	}
	return tbl.edges[bin]
}

// DPhi returns the signed dequantized value of v.
func (tbl Table) DPhi(v int) int {
	sign := 1
	if v < 0 {
		sign = -1
	}
	return sign * tbl.Value(tbl.Bin(v))
}

// NLBDPhi returns the signed non-linear binned value of dphi.
func NLBDPhi(dphi, bits, max int) int {
	return DPhiTable(bits, max).DPhi(dphi)
}

// NLBDPhiBin returns the non-linear bin index of |dphi|.
func NLBDPhiBin(dphi, bits, max int) int {
	return DPhiTable(bits, max).Bin(dphi)
}

// DPhiFromBin returns the dPhi magnitude of the given non-linear bin.
func DPhiFromBin(bin, bits, max int) int {
	return DPhiTable(bits, max).Value(bin)
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
