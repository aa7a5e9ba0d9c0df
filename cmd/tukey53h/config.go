package main

import (
	"math"

	"github.com/pkg/errors"
)

const (
	kindFloat   = "float"
	kindDecimal = "decimal"
	kindInt     = "int"
)

type config struct {
	// k is the sensitivity passed to the filter
	k float64
	// kind selects the sample representation
	kind string
	// input is a file path; empty or "-" reads stdin
	input string
	// stats prints the residual report
	stats   bool
	verbose bool
}

func newConfig() config {
	return config{
		k:    0.5,
		kind: kindFloat,
	}
}

func (cfg *config) validate() error {
	if math.IsNaN(cfg.k) || cfg.k < 0 {
		return errors.Errorf("sensitivity must be >= 0, got %v", cfg.k)
	}

	switch cfg.kind {
	case kindFloat, kindDecimal, kindInt:
		return nil
	default:
		return errors.Errorf("unknown sample type %q", cfg.kind)
	}
}
