// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package ntup reads the hits of simulated events from ROOT ntuples.
package ntup // import "github.com/go-lpc/emtf/internal/ntup"

import (
	"fmt"

	"github.com/go-lpc/emtf/track"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
	"golang.org/x/xerrors"
)

// DefaultTree is the default name of the ntuple tree.
const DefaultTree = "tree"

// Event holds the hits of an event.
type Event struct {
	Entry  int64
	MuEta  float32 // pseudorapidity of the generated muon
	Endcap int     // endcap of the generated muon, 0 if unknown
	Hits   []track.Hit
}

// rawEvent holds the branches of an ntuple entry.
type rawEvent struct {
	n       int32
	sector  []int32
	station []int32
	phi     []int32
	theta   []int32
	isRPC   []int32
	pattern []int32
	ring    []int32
	fr      []int32
	eta     []float32
	muEta   float32
}

// Reader reads events from a ROOT ntuple.
type Reader struct {
	f *riofs.File
	t rtree.Tree
	r *rtree.Reader

	raw rawEvent
}

// Open opens the named tree of a ROOT file.
// At most nmax events are read when nmax is positive.
func Open(fname, tname string, nmax int64) (*Reader, error) {
	f, err := groot.Open(fname)
	if err != nil {
		return nil, xerrors.Errorf("ntup: could not open ROOT file %q: %w", fname, err)
	}

	o, err := f.Get(tname)
	if err != nil {
		_ = f.Close()
		return nil, xerrors.Errorf("ntup: could not retrieve tree %q: %w", tname, err)
	}

	t, ok := o.(rtree.Tree)
	if !ok {
		_ = f.Close()
		return nil, xerrors.Errorf("ntup: object %q is not a tree (type=%T)", tname, o)
	}

	r := &Reader{f: f, t: t}
	rvars := []rtree.ReadVar{
		{Name: "nHits", Value: &r.raw.n},
		{Name: "hit_sector", Value: &r.raw.sector},
		{Name: "hit_station", Value: &r.raw.station},
		{Name: "hit_phi_int", Value: &r.raw.phi},
		{Name: "hit_theta_int", Value: &r.raw.theta},
		{Name: "hit_isRPC", Value: &r.raw.isRPC},
		{Name: "hit_pattern", Value: &r.raw.pattern},
		{Name: "hit_ring", Value: &r.raw.ring},
		{Name: "hit_FR", Value: &r.raw.fr},
		{Name: "hit_eta", Value: &r.raw.eta},
		{Name: "mu_eta", Value: &r.raw.muEta},
	}

	var opts []rtree.ReadOption
	if nmax > 0 && nmax < t.Entries() {
		opts = append(opts, rtree.WithRange(0, nmax))
	}

	r.r, err = rtree.NewReader(t, rvars, opts...)
	if err != nil {
		_ = f.Close()
		return nil, xerrors.Errorf("ntup: could not create tree reader: %w", err)
	}

	return r, nil
}

// Entries returns the number of entries in the tree.
func (r *Reader) Entries() int64 { return r.t.Entries() }

// Read calls fct for each event of the ntuple.
// The hits slice of an event is only valid during the call.
func (r *Reader) Read(fct func(evt Event) error) error {
	var hits []track.Hit
	err := r.r.Read(func(ctx rtree.RCtx) error {
		hits = r.hits(hits[:0])
		evt := Event{
			Entry:  ctx.Entry,
			MuEta:  r.raw.muEta,
			Endcap: sign(r.raw.muEta),
			Hits:   hits,
		}
		return fct(evt)
	})
	if err != nil {
		return xerrors.Errorf("ntup: could not read events: %w", err)
	}
	return nil
}

func (r *Reader) hits(hits []track.Hit) []track.Hit {
	n := int(r.raw.n)
	for _, v := range []int{
		len(r.raw.sector), len(r.raw.station), len(r.raw.phi), len(r.raw.theta),
		len(r.raw.isRPC), len(r.raw.pattern), len(r.raw.ring), len(r.raw.fr),
		len(r.raw.eta),
	} {
		if v != n {
			panic(fmt.Errorf("ntup: inconsistent hit branches (n=%d, len=%d)", n, v))
		}
	}

	for i := 0; i < n; i++ {
		hit := track.Hit{
			Sector:   track.Sector(r.raw.sector[i]),
			Station:  track.Station(r.raw.station[i]),
			Phi:      int(r.raw.phi[i]),
			Theta:    int(r.raw.theta[i]),
			Detector: track.CSC,
			Pattern:  int(r.raw.pattern[i]),
			Ring:     int(r.raw.ring[i]),
			FR:       int(r.raw.fr[i]),
			Endcap:   sign(r.raw.eta[i]),
		}
		if r.raw.isRPC[i] != 0 {
			hit.Detector = track.RPC
			hit.Pattern = -1
		}
		hits = append(hits, hit)
	}
	return hits
}

// Close closes the underlying ROOT file.
func (r *Reader) Close() error {
	if r.f == nil {
		return nil
	}
	f := r.f
	r.f = nil

	err := r.r.Close()
	if err != nil {
		_ = f.Close()
		return xerrors.Errorf("ntup: could not close tree reader: %w", err)
	}
	err = f.Close()
	if err != nil {
		return xerrors.Errorf("ntup: could not close ROOT file: %w", err)
	}
	return nil
}

func sign(v float32) int {
	switch {
	case v > 0:
		return +1
	case v < 0:
		return -1
	}
	return 0
}
