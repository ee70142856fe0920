// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package ntup

import (
	"github.com/go-lpc/emtf/track"
	"go-hep.org/x/hep/groot"
	"go-hep.org/x/hep/groot/riofs"
	"go-hep.org/x/hep/groot/rtree"
	"golang.org/x/xerrors"
)

// Writer writes events to a ROOT ntuple, with the layout expected by Reader.
type Writer struct {
	f *riofs.File
	w rtree.Writer

	raw rawEvent
}

// Create creates a new ROOT file with an ntuple tree.
func Create(fname, tname string) (*Writer, error) {
	f, err := groot.Create(fname)
	if err != nil {
		return nil, xerrors.Errorf("ntup: could not create ROOT file %q: %w", fname, err)
	}

	w := &Writer{f: f}
	wvars := []rtree.WriteVar{
		{Name: "nHits", Value: &w.raw.n},
		{Name: "hit_sector", Value: &w.raw.sector, Count: "nHits"},
		{Name: "hit_station", Value: &w.raw.station, Count: "nHits"},
		{Name: "hit_phi_int", Value: &w.raw.phi, Count: "nHits"},
		{Name: "hit_theta_int", Value: &w.raw.theta, Count: "nHits"},
		{Name: "hit_isRPC", Value: &w.raw.isRPC, Count: "nHits"},
		{Name: "hit_pattern", Value: &w.raw.pattern, Count: "nHits"},
		{Name: "hit_ring", Value: &w.raw.ring, Count: "nHits"},
		{Name: "hit_FR", Value: &w.raw.fr, Count: "nHits"},
		{Name: "hit_eta", Value: &w.raw.eta, Count: "nHits"},
		{Name: "mu_eta", Value: &w.raw.muEta},
	}

	w.w, err = rtree.NewWriter(f, tname, wvars, rtree.WithTitle("EMTF hits"))
	if err != nil {
		_ = f.Close()
		return nil, xerrors.Errorf("ntup: could not create tree writer: %w", err)
	}

	return w, nil
}

// Write writes an event. The hit pseudorapidities are not kept:
// only their sign, taken from the hit endcap, is.
func (w *Writer) Write(evt Event) error {
	w.raw.n = int32(len(evt.Hits))
	w.raw.sector = w.raw.sector[:0]
	w.raw.station = w.raw.station[:0]
	w.raw.phi = w.raw.phi[:0]
	w.raw.theta = w.raw.theta[:0]
	w.raw.isRPC = w.raw.isRPC[:0]
	w.raw.pattern = w.raw.pattern[:0]
	w.raw.ring = w.raw.ring[:0]
	w.raw.fr = w.raw.fr[:0]
	w.raw.eta = w.raw.eta[:0]
	w.raw.muEta = evt.MuEta

	for _, hit := range evt.Hits {
		isRPC := int32(0)
		if hit.Detector == track.RPC {
			isRPC = 1
		}
		w.raw.sector = append(w.raw.sector, int32(hit.Sector))
		w.raw.station = append(w.raw.station, int32(hit.Station))
		w.raw.phi = append(w.raw.phi, int32(hit.Phi))
		w.raw.theta = append(w.raw.theta, int32(hit.Theta))
		w.raw.isRPC = append(w.raw.isRPC, isRPC)
		w.raw.pattern = append(w.raw.pattern, int32(hit.Pattern))
		w.raw.ring = append(w.raw.ring, int32(hit.Ring))
		w.raw.fr = append(w.raw.fr, int32(hit.FR))
		w.raw.eta = append(w.raw.eta, 1.5*float32(hit.Endcap))
	}

	_, err := w.w.Write()
	if err != nil {
		return xerrors.Errorf("ntup: could not write event %d: %w", evt.Entry, err)
	}
	return nil
}

// Close flushes the tree and closes the ROOT file.
func (w *Writer) Close() error {
	if w.f == nil {
		return nil
	}
	f := w.f
	w.f = nil

	err := w.w.Close()
	if err != nil {
		_ = f.Close()
		return xerrors.Errorf("ntup: could not close tree writer: %w", err)
	}
	err = f.Close()
	if err != nil {
		return xerrors.Errorf("ntup: could not close ROOT file: %w", err)
	}
	return nil
}
