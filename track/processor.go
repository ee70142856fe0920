// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import (
	"context"
	"fmt"
	"io"
	"log"

	"golang.org/x/sync/errgroup"
)

// Event holds the selected track candidates of an event.
type Event struct {
	Mode    Mode  // requested mode
	Grid    *Grid // hits of the event
	Sectors [NSectors][]Candidate
}

// Candidates returns the selected candidates of all sectors, in sector order.
func (evt *Event) Candidates() []Candidate {
	n := 0
	for _, sec := range evt.Sectors {
		n += len(sec)
	}
	if n == 0 {
		return nil
	}
	out := make([]Candidate, 0, n)
	for _, sec := range evt.Sectors {
		out = append(out, sec...)
	}
	return out
}

// Processor builds and selects the track candidates of events.
// A Processor is not safe for concurrent use.
type Processor struct {
	msg *log.Logger
	cfg Config
	evt int // number of processed events
}

// NewProcessor creates a new event processor.
// A nil logger discards all messages.
func NewProcessor(msg *log.Logger, opts ...Option) *Processor {
	if msg == nil {
		msg = log.New(io.Discard, "", 0)
	}
	proc := &Processor{
		msg: msg,
		cfg: DefaultConfig(),
	}
	for _, opt := range opts {
		opt(&proc.cfg)
	}
	return proc
}

// Config returns the configuration of the processor.
func (proc *Processor) Config() Config { return proc.cfg }

// Process arranges the hits of an event from the given endcap in a grid
// and selects the track candidates of each sector for the requested mode.
// The sectors are processed concurrently.
func (proc *Processor) Process(ctx context.Context, hits []Hit, endcap int, mode Mode) (Event, error) {
	evt := Event{Mode: mode}
	if err := ValidMode(mode); err != nil {
		return evt, err
	}
	if err := proc.cfg.Validate(); err != nil {
		return evt, err
	}

	if proc.cfg.LogFreq > 0 && proc.evt%proc.cfg.LogFreq == 0 {
		proc.msg.Printf("processing evt %d...", proc.evt)
	}
	proc.evt++

	evt.Grid = NewGrid(hits, endcap)

	grp, ctx := errgroup.WithContext(ctx)
	for i := range evt.Sectors {
		if evt.Grid.Empty(Sector(i + 1)) {
			continue
		}
		i := i
		grp.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			sec := Sector(i + 1)
			cands, err := Build(evt.Grid, sec, mode, proc.cfg)
			if err != nil {
				return fmt.Errorf("track: could not build candidates of sector %d: %w", sec, err)
			}
			evt.Sectors[i] = Select(cands)
			return nil
		})
	}

	err := grp.Wait()
	if err != nil {
		return evt, err
	}

	return evt, nil
}
