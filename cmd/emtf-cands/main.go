// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// emtf-cands builds and selects the EMTF track candidates of simulated
// events and displays them.
//
// Usage: emtf-cands [OPTIONS] FILE.root
//
// Example:
//
//	$> emtf-cands -mode=15 -n=1 -features ./testdata/hits.root
//	=== evt 0 (endcap=+1, hits=4) ===
//	sec= 2 mode=15 csc=1-2-4 rpc=3 hits=[0 1 2 3] dphi=45 dtheta=3
//	  theta=52 dphi=[30 40 45 10 15 5] sign=+1 dtheta=[2 3 3 1 1 0] bend=[-1 0 - 1]
//	=== summary ===
//	mode=15 (1-2-3-4): n=1 <sum|dphi|>=45.00 (σ=0.00)
package main // import "github.com/go-lpc/emtf/cmd/emtf-cands"

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"sort"

	"github.com/go-lpc/emtf"
	"github.com/go-lpc/emtf/feature"
	"github.com/go-lpc/emtf/internal/ntup"
	"github.com/go-lpc/emtf/track"
	"gonum.org/v1/gonum/stat"
)

func main() {
	msg := log.New(os.Stderr, "emtf-cands: ", 0)

	err := xmain(os.Stdout, msg, os.Args[1:])
	if err != nil {
		msg.Fatalf("%+v", err)
	}
}

type options struct {
	tree  string
	nmax  int64
	mode  track.Mode
	feats bool
	cfg   track.Config
}

func xmain(stdout io.Writer, msg *log.Logger, args []string) error {
	var (
		fset  = flag.NewFlagSet("emtf-cands", flag.ContinueOnError)
		cfg   = fset.String("cfg", "", "path to a YAML builder configuration")
		tree  = fset.String("t", ntup.DefaultTree, "name of the input tree")
		nmax  = fset.Int64("n", -1, "number of events to process (-1: all)")
		mode  = fset.Uint("mode", 15, "track mode to build")
		feats = fset.Bool("features", false, "display the derived variables of the selected candidates")
		comp  = fset.Bool("bit-comp", false, "enable bit compression of the derived variables")
		freq  = fset.Int("freq", 0, "log every freq events (0: never)")
		vers  = fset.Bool("version", false, "print version and exit")
	)

	fset.Usage = func() {
		fmt.Fprintf(fset.Output(), `emtf-cands builds and selects the EMTF track candidates of simulated events.

Usage: emtf-cands [OPTIONS] FILE.root

Example:

 $> emtf-cands -mode=15 -n=1 -features ./testdata/hits.root

Options:
`)
		fset.PrintDefaults()
	}

	err := fset.Parse(args)
	if err != nil {
		return err
	}

	if *vers {
		v, sum := emtf.Version()
		if v == "" {
			v = "(devel)"
		}
		fmt.Fprintf(stdout, "emtf-cands %s %s\n", v, sum)
		return nil
	}

	if fset.NArg() != 1 {
		fset.Usage()
		return fmt.Errorf("missing path to input ROOT file")
	}

	opts := options{
		tree:  *tree,
		nmax:  *nmax,
		mode:  track.Mode(*mode),
		feats: *feats,
		cfg:   track.DefaultConfig(),
	}

	if *cfg != "" {
		f, err := os.Open(*cfg)
		if err != nil {
			return fmt.Errorf("could not open config file: %w", err)
		}
		defer f.Close()

		opts.cfg, err = track.LoadConfig(f)
		if err != nil {
			return fmt.Errorf("could not load config file %q: %w", *cfg, err)
		}
	}

	// explicitly set flags win over the configuration file.
	fset.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "bit-comp":
			opts.cfg.BitCompression = *comp
		case "freq":
			opts.cfg.LogFreq = *freq
		}
	})

	err = track.ValidMode(opts.mode)
	if err != nil {
		return fmt.Errorf("invalid -mode flag: %w", err)
	}

	err = process(stdout, msg, fset.Arg(0), opts)
	if err != nil {
		return fmt.Errorf("could not process %q: %w", fset.Arg(0), err)
	}

	return nil
}

func process(w io.Writer, msg *log.Logger, fname string, opts options) error {
	wbuf := bufio.NewWriter(w)
	defer wbuf.Flush()

	r, err := ntup.Open(fname, opts.tree, opts.nmax)
	if err != nil {
		return fmt.Errorf("could not open input ntuple: %w", err)
	}
	defer r.Close()

	var (
		ctx  = context.Background()
		proc = track.NewProcessor(msg, track.WithConfig(opts.cfg))
		sums = make(map[track.Mode][]float64)
	)

	err = r.Read(func(evt ntup.Event) error {
		res, err := proc.Process(ctx, evt.Hits, evt.Endcap, opts.mode)
		if err != nil {
			return fmt.Errorf("could not process event %d: %w", evt.Entry, err)
		}

		fmt.Fprintf(wbuf, "=== evt %d (endcap=%+d, hits=%d) ===\n", evt.Entry, evt.Endcap, len(evt.Hits))
		for _, c := range res.Candidates() {
			fmt.Fprintf(wbuf, "sec=%2d mode=%d csc=%v rpc=%v hits=%v dphi=%d dtheta=%d\n",
				c.Sector, uint8(c.Mode), c.ModeCSC, c.ModeRPC, c.Hits,
				c.SumAbsDPhi, c.SumAbsDTheta,
			)
			sums[c.Mode] = append(sums[c.Mode], float64(c.SumAbsDPhi))

			if !opts.feats || track.ValidMode(c.Mode) != nil {
				continue
			}
			fs := feature.Compute(feature.NewInput(res.Grid, c), opts.cfg.BitCompression)
			fmt.Fprintf(wbuf, "  theta=%d dphi=%v sign=%+d dtheta=%v bend=%v\n",
				fs.Theta, fs.DPhi, fs.DPhiSign, fs.DTheta, fs.Bend,
			)
			if opts.cfg.BitCompression {
				fmt.Fprintf(wbuf, "  theta-code=%v fr=%v\n", fs.ThetaCode, fs.FR)
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("could not read events: %w", err)
	}

	summary(wbuf, sums)

	return nil
}

func summary(w io.Writer, sums map[track.Mode][]float64) {
	modes := make([]track.Mode, 0, len(sums))
	for m := range sums {
		modes = append(modes, m)
	}
	sort.Slice(modes, func(i, j int) bool { return modes[i] > modes[j] })

	fmt.Fprintf(w, "=== summary ===\n")
	for _, m := range modes {
		var (
			xs       = sums[m]
			mean, sd = stat.MeanStdDev(xs, nil)
		)
		if len(xs) < 2 {
			sd = 0
		}
		fmt.Fprintf(w, "mode=%d (%v): n=%d <sum|dphi|>=%.2f (σ=%.2f)\n",
			uint8(m), m, len(xs), mean, sd,
		)
	}
}
