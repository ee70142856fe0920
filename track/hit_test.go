// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func csc(sec Sector, st Station, phi, theta int) Hit {
	return Hit{
		Sector:   sec,
		Station:  st,
		Phi:      phi,
		Theta:    theta,
		Detector: CSC,
		Pattern:  10,
		Ring:     1,
		Endcap:   +1,
	}
}

func rpc(sec Sector, st Station, phi, theta int) Hit {
	return Hit{
		Sector:   sec,
		Station:  st,
		Phi:      phi,
		Theta:    theta,
		Detector: RPC,
		Pattern:  -1,
		Ring:     2,
		Endcap:   +1,
	}
}

func TestNewGrid(t *testing.T) {
	neg := csc(2, 1, 10, 20)
	neg.Endcap = -1

	hits := []Hit{
		csc(1, 1, 100, 30),
		rpc(1, 2, 105, 31),
		csc(12, 4, 200, 40),
		neg,
		csc(1, 1, 110, 32),
	}

	for _, tc := range []struct {
		name   string
		endcap int
		cells  map[[2]int][]int
	}{
		{
			name:   "pos",
			endcap: +1,
			cells: map[[2]int][]int{
				{1, 1}:  {0, 4},
				{1, 2}:  {1},
				{12, 4}: {2},
			},
		},
		{
			name:   "neg",
			endcap: -1,
			cells: map[[2]int][]int{
				{2, 1}: {3},
			},
		},
		{
			name:   "both",
			endcap: 0,
			cells: map[[2]int][]int{
				{1, 1}:  {0, 4},
				{1, 2}:  {1},
				{2, 1}:  {3},
				{12, 4}: {2},
			},
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			grid := NewGrid(hits, tc.endcap)
			if got, want := grid.Len(), len(hits); got != want {
				t.Fatalf("invalid number of hits: got=%d, want=%d", got, want)
			}

			got := make(map[[2]int][]int)
			for sec := Sector(1); sec <= NSectors; sec++ {
				empty := true
				for st := Station(1); st <= NStations; st++ {
					cell := grid.Cell(sec, st)
					if len(cell) == 0 {
						continue
					}
					empty = false
					got[[2]int{int(sec), int(st)}] = cell
				}
				if grid.Empty(sec) != empty {
					t.Fatalf("sector %d: invalid emptiness", sec)
				}
			}

			if diff := cmp.Diff(tc.cells, got); diff != "" {
				t.Fatalf("invalid grid cells (-want +got):\n%s", diff)
			}
		})
	}
}

func TestNewGridOwnsHits(t *testing.T) {
	hits := []Hit{csc(3, 2, 100, 30)}
	grid := NewGrid(hits, 0)
	hits[0].Phi = 42

	if got, want := grid.Hit(0).Phi, 100; got != want {
		t.Fatalf("grid hit modified by caller: got=%d, want=%d", got, want)
	}
}

func TestNewGridInvalid(t *testing.T) {
	for _, tc := range []struct {
		name string
		hit  Hit
		want string
	}{
		{
			name: "sector-0",
			hit:  csc(0, 1, 0, 10),
			want: "track: invalid sector 0 (hit=0)",
		},
		{
			name: "sector-13",
			hit:  csc(13, 1, 0, 10),
			want: "track: invalid sector 13 (hit=0)",
		},
		{
			name: "station-5",
			hit:  csc(1, 5, 0, 10),
			want: "track: invalid station 5 (hit=0)",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			mustPanic(t, tc.want, func() {
				NewGrid([]Hit{tc.hit}, 0)
			})
		})
	}

	// hits from the other endcap are never checked.
	bad := csc(13, 1, 0, 10)
	bad.Endcap = -1
	grid := NewGrid([]Hit{bad}, +1)
	for sec := Sector(1); sec <= NSectors; sec++ {
		if !grid.Empty(sec) {
			t.Fatalf("sector %d should be empty", sec)
		}
	}

	mustPanic(t, "track: invalid sector 0", func() { grid.Cell(0, 1) })
	mustPanic(t, "track: invalid station 0", func() { grid.Cell(1, 0) })
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
