package caves

import (
	"strconv"

	"mad-shapes/pkg/automata"
)

// Config controls the cave generator.
type Config struct {
	Width  int
	Height int

	// Fill is the initial wall probability.
	Fill float64
	// Rule is the wall automaton in Golly notation.
	Rule string
	// Async switches to single-flip updates; Flips of them run per Step.
	Async bool
	Flips int
	// MinArea drops caves smaller than this many cells.
	MinArea int
	// MaxSteps bounds Settle.
	MaxSteps int
}

// DefaultConfig returns the standard configuration.
func DefaultConfig() Config {
	return Config{
		Width:    96,
		Height:   64,
		Fill:     0.45,
		Rule:     automata.Caves,
		Flips:    256,
		MinArea:  8,
		MaxSteps: 200,
	}
}

// FromMap populates the config from a string map (flag-style key/value pairs).
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["w"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Width = parsed
		}
	}
	if v, ok := cfg["h"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Height = parsed
		}
	}
	if v, ok := cfg["fill"]; ok {
		if parsed, err := strconv.ParseFloat(v, 64); err == nil && parsed >= 0 && parsed <= 1 {
			c.Fill = parsed
		}
	}
	if v, ok := cfg["rule"]; ok {
		if _, err := automata.ParseRule(v, nil); err == nil {
			c.Rule = v
		}
	}
	if v, ok := cfg["async"]; ok {
		if parsed, err := strconv.ParseBool(v); err == nil {
			c.Async = parsed
		}
	}
	if v, ok := cfg["flips"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Flips = parsed
		}
	}
	if v, ok := cfg["min_area"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.MinArea = parsed
		}
	}
	if v, ok := cfg["max_steps"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.MaxSteps = parsed
		}
	}
	return c
}
