// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

// Key identifies the combination of CSC and RPC stations of a candidate.
type Key struct {
	CSC Mode
	RPC Mode
}

// Select keeps one candidate per selection key: the one with the smallest
// sum of |dPhi|, then the smallest sum of |dTheta|, then the first one.
// Unusable candidates (mode 0) are dropped.
//
// The selected candidates are ordered by (CSC, RPC) key.
func Select(cands []Candidate) []Candidate {
	var (
		best [1 << NStations][1 << NStations]int
		n    = 0
	)
	for i := range best {
		for j := range best[i] {
			best[i][j] = -1
		}
	}

	for i, c := range cands {
		if c.Mode == 0 {
			continue
		}
		slot := &best[c.ModeCSC&0xf][c.ModeRPC&0xf]
		if *slot < 0 {
			*slot = i
			n++
			continue
		}
		if better(c, cands[*slot]) {
			*slot = i
		}
	}

	if n == 0 {
		return nil
	}

	out := make([]Candidate, 0, n)
	for i := range best {
		for _, j := range best[i] {
			if j < 0 {
				continue
			}
			out = append(out, cands[j])
		}
	}
	return out
}

func better(c, ref Candidate) bool {
	switch {
	case c.SumAbsDPhi < ref.SumAbsDPhi:
		return true
	case c.SumAbsDPhi > ref.SumAbsDPhi:
		return false
	}
	return c.SumAbsDTheta < ref.SumAbsDTheta
}
