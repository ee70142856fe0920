// Copyright 2020 The go-lpc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package track

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// Config holds the parameters of the candidate builder.
type Config struct {
	MaxRPC    int `yaml:"max_rpc"`    // maximum number of RPC hits in a candidate
	MinCSC    int `yaml:"min_csc"`    // minimum number of CSC hits in a candidate
	MaxDPhi   int `yaml:"max_dphi"`   // exclusive bound on |dPhi| between consecutive stations
	MaxDTheta int `yaml:"max_dtheta"` // inclusive bound on |dTheta| between consecutive stations

	// BitCompression enables the firmware compression of the derived variables.
	BitCompression bool `yaml:"bit_compression"`

	LogFreq int `yaml:"log_freq"` // log every LogFreq events (0: never)
}

// DefaultConfig returns the default builder configuration.
func DefaultConfig() Config {
	return Config{
		MaxRPC:    NStations,
		MinCSC:    0,
		MaxDPhi:   1024,
		MaxDTheta: 8,
	}
}

// Validate checks the consistency of the configuration.
func (cfg Config) Validate() error {
	switch {
	case cfg.MaxRPC < 0 || cfg.MaxRPC > NStations:
		return fmt.Errorf("track: invalid max RPC hits %d", cfg.MaxRPC)
	case cfg.MinCSC < 0 || cfg.MinCSC > NStations:
		return fmt.Errorf("track: invalid min CSC hits %d", cfg.MinCSC)
	case cfg.MaxDPhi <= 0:
		return fmt.Errorf("track: invalid dPhi window %d", cfg.MaxDPhi)
	case cfg.MaxDTheta < 0:
		return fmt.Errorf("track: invalid dTheta window %d", cfg.MaxDTheta)
	case cfg.LogFreq < 0:
		return fmt.Errorf("track: invalid log frequency %d", cfg.LogFreq)
	}
	return nil
}

// LoadConfig decodes a YAML configuration on top of the default one.
func LoadConfig(r io.Reader) (Config, error) {
	cfg := DefaultConfig()

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(&cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return cfg, fmt.Errorf("track: could not decode config: %w", err)
	}

	err = cfg.Validate()
	if err != nil {
		return cfg, err
	}

	return cfg, nil
}

// Option configures the candidate builder.
type Option func(*Config)

// WithConfig replaces the whole configuration.
func WithConfig(v Config) Option {
	return func(cfg *Config) {
		*cfg = v
	}
}

// WithMaxRPC sets the maximum number of RPC hits of a usable candidate.
func WithMaxRPC(n int) Option {
	return func(cfg *Config) {
		cfg.MaxRPC = n
	}
}

// WithMinCSC sets the minimum number of CSC hits of a usable candidate.
func WithMinCSC(n int) Option {
	return func(cfg *Config) {
		cfg.MinCSC = n
	}
}

// WithWindows sets the dPhi and dTheta windows.
func WithWindows(dphi, dtheta int) Option {
	return func(cfg *Config) {
		cfg.MaxDPhi = dphi
		cfg.MaxDTheta = dtheta
	}
}

// WithBitCompression enables or disables the bit compression.
func WithBitCompression(v bool) Option {
	return func(cfg *Config) {
		cfg.BitCompression = v
	}
}

// WithLogFreq sets the frequency of the event-processing log messages.
func WithLogFreq(freq int) Option {
	return func(cfg *Config) {
		cfg.LogFreq = freq
	}
}
