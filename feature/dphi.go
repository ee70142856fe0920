// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package feature

import (
	"github.com/go-lpc/emtf/lut"
	"github.com/go-lpc/emtf/track"
)

// DPhiSums holds the summed dPhi quantities of 4-station tracks.
type DPhiSums struct {
	Sum4  Int // sum of the 6 dPhi
	Sum4A Int // sum of the 6 |dPhi|
	Sum3  Int // sum of the 3 dPhi without the outlier station
	Sum3A Int // sum of the 3 |dPhi| without the outlier station

	// OutStPhi is the station deviating the most in phi from the others,
	// 0 when no station stands out.
	OutStPhi int
}

// DPhis holds the phi differences of a track.
type DPhis struct {
	Val  [NPairs]Int
	Sign int // sign applied to all dPhi, so that the first one is positive
	DPhiSums
}

// table widths for the dPhi between consecutive stations, per number of stations.
var dphiTables = map[int][]lut.Table{
	2: {lut.DPhiTable(7, 512)},
	3: {lut.DPhiTable(7, 512), lut.DPhiTable(5, 256)},
	4: {lut.DPhiTable(7, 512), lut.DPhiTable(5, 256), lut.DPhiTable(4, 256)},
}

// DeltaPhis returns the phi differences between each pair of stations,
// signed so that the dPhi of the first two stations is positive.
//
// With bitComp, the dPhi between consecutive stations are compressed
// with the firmware tables and the other ones are recomputed from them.
func DeltaPhis(in Input, bitComp bool) DPhis {
	var (
		sts []track.Station
		out DPhis
	)
	for st := track.Station(1); st <= track.NStations; st++ {
		if in.Hit(st) != nil {
			sts = append(sts, st)
		}
	}

	out.Sign = +1
	if len(sts) < 2 {
		return out
	}

	adj := make([]int, len(sts)-1)
	for i := range adj {
		adj[i] = in.Hit(sts[i+1]).Phi - in.Hit(sts[i]).Phi
		if bitComp {
			adj[i] = dphiTables[len(sts)][i].DPhi(adj[i])
		}
	}

	if adj[0] < 0 {
		out.Sign = -1
	}

	for i := range sts {
		sum := 0
		for j := i + 1; j < len(sts); j++ {
			sum += adj[j-1]
			out.Val[PairOf(sts[i], sts[j])] = Some(out.Sign * sum)
		}
	}

	if len(sts) == track.NStations {
		out.DPhiSums = dphiSums(out.Val)
	}

	return out
}

func dphiSums(dphi [NPairs]Int) DPhiSums {
	var (
		sums DPhiSums
		sum  = 0
		asum = 0
		dev  [track.NStations + 1]int
	)
	for p, v := range pairs {
		d := dphi[p].Val
		sum += d
		asum += abs(d)
		dev[v[0]] += abs(d)
		dev[v[1]] += abs(d)
	}
	sums.Sum4 = Some(sum)
	sums.Sum4A = Some(asum)

	for _, st := range []track.Station{4, 3, 2, 1} {
		out := true
		for o := track.Station(1); o <= track.NStations; o++ {
			if o != st && dev[st] <= dev[o] {
				out = false
				break
			}
		}
		if out {
			sums.OutStPhi = int(st)
			break
		}
	}

	drop := track.Station(sums.OutStPhi)
	if drop == 0 {
		drop = 1
	}
	var s3, s3a int
	for p, v := range pairs {
		if v[0] == drop || v[1] == drop {
			continue
		}
		s3 += dphi[p].Val
		s3a += abs(dphi[p].Val)
	}
	sums.Sum3 = Some(s3)
	sums.Sum3A = Some(s3a)

	return sums
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
