// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package lut

import (
	"fmt"
	"testing"
)

var dphiTables = []struct {
	bits int
	max  int
}{
	{4, 256},
	{5, 256},
	{7, 512},
}

func TestDPhiTableMonotonic(t *testing.T) {
	for _, tc := range dphiTables {
		t.Run(fmt.Sprintf("%db-%d", tc.bits, tc.max), func(t *testing.T) {
			tbl := DPhiTable(tc.bits, tc.max)
			if got, want := tbl.Len(), 1<<tc.bits; got != want {
				t.Fatalf("invalid table size: got=%d, want=%d", got, want)
			}
			if got := tbl.Value(0); got != 0 {
				t.Fatalf("invalid first edge: got=%d, want=0", got)
			}
			for i := 1; i < tbl.Len(); i++ {
				if tbl.Value(i) <= tbl.Value(i-1) {
					t.Fatalf(
						"table not strictly increasing at bin %d: %d <= %d",
						i, tbl.Value(i), tbl.Value(i-1),
					)
				}
			}
			if last := tbl.Value(tbl.Len() - 1); last >= tc.max {
				t.Fatalf("last edge %d beyond max=%d", last, tc.max)
			}
		})
	}
}

func TestDPhiTableIdempotence(t *testing.T) {
	for _, tc := range dphiTables {
		t.Run(fmt.Sprintf("%db-%d", tc.bits, tc.max), func(t *testing.T) {
			tbl := DPhiTable(tc.bits, tc.max)
			for i := 0; i < tbl.Len(); i++ {
				v := tbl.Value(i)
				if got := tbl.Bin(v); got != i {
					t.Fatalf("bin(%d): got=%d, want=%d", v, got, i)
				}
				if got := tbl.Value(tbl.Bin(v)); got != v {
					t.Fatalf("value(bin(%d)): got=%d, want=%d", v, got, v)
				}
				if got := tbl.DPhi(v); got != v {
					t.Fatalf("dphi(%d): got=%d, want=%d", v, got, v)
				}
				if got := tbl.DPhi(-v); got != -v {
					t.Fatalf("dphi(%d): got=%d, want=%d", -v, got, -v)
				}
			}
		})
	}
}

func TestDPhiBinCovers(t *testing.T) {
	for _, tc := range dphiTables {
		t.Run(fmt.Sprintf("%db-%d", tc.bits, tc.max), func(t *testing.T) {
			tbl := DPhiTable(tc.bits, tc.max)
			prev := 0
			for v := 0; v < tc.max+10; v++ {
				bin := tbl.Bin(v)
				if bin < prev {
					t.Fatalf("bin(%d)=%d decreases (prev=%d)", v, bin, prev)
				}
				if lo := tbl.Value(bin); lo > v {
					t.Fatalf("bin(%d)=%d has lower edge %d", v, bin, lo)
				}
				if bin+1 < tbl.Len() && tbl.Value(bin+1) <= v {
					t.Fatalf("bin(%d)=%d but next edge is %d", v, bin, tbl.Value(bin+1))
				}
				prev = bin
			}
		})
	}
}

func TestNLBDPhi(t *testing.T) {
	for _, tc := range []struct {
		dphi int
		bits int
		max  int
		bin  int
		want int
	}{
		{dphi: 0, bits: 4, max: 256, bin: 0, want: 0},
		{dphi: 5, bits: 4, max: 256, bin: 4, want: 4},
		{dphi: -5, bits: 4, max: 256, bin: 4, want: -4},
		{dphi: 137, bits: 4, max: 256, bin: 15, want: 136},
		{dphi: 255, bits: 4, max: 256, bin: 15, want: 136},
		{dphi: -1000, bits: 4, max: 256, bin: 15, want: -136},
		{dphi: 18, bits: 5, max: 256, bin: 17, want: 17},
		{dphi: -90, bits: 5, max: 256, bin: 29, want: -68},
		{dphi: 63, bits: 7, max: 512, bin: 63, want: 63},
		{dphi: 65, bits: 7, max: 512, bin: 64, want: 64},
		{dphi: 260, bits: 7, max: 512, bin: 120, want: 256},
		{dphi: 261, bits: 7, max: 512, bin: 120, want: 256},
		{dphi: 300, bits: 7, max: 512, bin: 121, want: 288},
		{dphi: -511, bits: 7, max: 512, bin: 127, want: -480},
		{dphi: 4096, bits: 7, max: 512, bin: 127, want: 480},
	} {
		t.Run(fmt.Sprintf("%d-%db", tc.dphi, tc.bits), func(t *testing.T) {
			if got := NLBDPhiBin(tc.dphi, tc.bits, tc.max); got != tc.bin {
				t.Fatalf("invalid bin: got=%d, want=%d", got, tc.bin)
			}
			if got := NLBDPhi(tc.dphi, tc.bits, tc.max); got != tc.want {
				t.Fatalf("invalid dphi: got=%d, want=%d", got, tc.want)
			}
			if got, want := DPhiFromBin(tc.bin, tc.bits, tc.max), abs(tc.want); got != want {
				t.Fatalf("invalid dphi from bin: got=%d, want=%d", got, want)
			}
		})
	}
}

func TestDPhiSameBin(t *testing.T) {
	var (
		b260 = NLBDPhiBin(260, 7, 512)
		b261 = NLBDPhiBin(261, 7, 512)
		b300 = NLBDPhiBin(300, 7, 512)
	)
	if b260 != b261 {
		t.Fatalf("260 and 261 should share a bin: %d != %d", b260, b261)
	}
	if b260 == b300 {
		t.Fatalf("260 and 300 should not share a bin: %d", b260)
	}
}

func TestDPhiFromBinClamp(t *testing.T) {
	tbl := DPhiTable(5, 256)
	if got, want := tbl.Value(-1), 0; got != want {
		t.Fatalf("invalid clamped value: got=%d, want=%d", got, want)
	}
	if got, want := tbl.Value(32), 136; got != want {
		t.Fatalf("invalid clamped value: got=%d, want=%d", got, want)
	}
	if tbl.Bits() != 5 || tbl.Max() != 256 {
		t.Fatalf("invalid table parameters: bits=%d, max=%d", tbl.Bits(), tbl.Max())
	}
}

func TestInvalidDPhiTable(t *testing.T) {
	for _, tc := range []struct {
		bits, max int
	}{
		{4, 512},
		{5, 512},
		{6, 256},
		{7, 256},
	} {
		t.Run(fmt.Sprintf("%db-%d", tc.bits, tc.max), func(t *testing.T) {
			mustPanic(t, fmt.Sprintf("lut: invalid dPhi table (bits=%d, max=%d)", tc.bits, tc.max), func() {
				_ = DPhiTable(tc.bits, tc.max)
			})
		})
	}
}

func mustPanic(t *testing.T, want string, f func()) {
	t.Helper()
	defer func() {
		t.Helper()
		e := recover()
		if e == nil {
			t.Fatalf("expected a panic")
		}
		err, ok := e.(error)
		if !ok {
			t.Fatalf("invalid panic value type %T", e)
		}
		if got := err.Error(); got != want {
			t.Fatalf("invalid panic message:\ngot= %q\nwant=%q", got, want)
		}
	}()
	f()
}
