package life

import (
	"strconv"

	"mad-shapes/internal/core"
	"mad-shapes/pkg/automata"
	pcore "mad-shapes/pkg/core"
	"mad-shapes/pkg/shape"
)

// Config holds parameters for the Life simulation.
type Config struct {
	Width  int
	Height int
	Fill   float64
	Rule   string
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 128, Height: 128, Fill: 0.35, Rule: automata.Conway}
}

// FromMap populates a Config from a string map. Invalid values keep the default.
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
	return c
}

// Life runs a birth/survival automaton on a bounded rectangle.
type Life struct {
	cfg    Config
	domain *shape.Pattern
	auto   *automata.Automaton

	cur        *shape.Pattern
	generation int
	converged  bool
	grid       *core.ByteGrid
}

// New returns a Life simulation for the configuration. The rule must parse.
func New(cfg Config) *Life {
	auto, err := automata.New(automata.MustParseRule(cfg.Rule, nil))
	if err != nil {
		panic(err)
	}
	return &Life{
		cfg:    cfg,
		domain: shape.Rectangle(cfg.Width, cfg.Height),
		auto:   auto,
		cur:    shape.New(),
		grid:   core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (l *Life) Name() string { return "life" }

// Size returns the grid dimensions.
func (l *Life) Size() core.Size { return core.Size{W: l.cfg.Width, H: l.cfg.Height} }

// Cells exposes the current grid values.
func (l *Life) Cells() []uint8 { return l.grid.Cells() }

// Shapes returns the live cells as a single pattern.
func (l *Life) Shapes() *shape.Multipattern { return shape.NewMultipattern(l.cur) }

// Reset randomizes the board using the provided seed.
func (l *Life) Reset(seed int64) {
	fill, err := shape.Thin(l.domain, l.cfg.Fill, pcore.NewRNG(seed))
	if err != nil {
		panic(err)
	}
	l.cur = fill
	l.generation = 0
	l.converged = false
	l.paint()
}

// Step advances the simulation by one generation.
func (l *Life) Step() {
	l.cur, l.converged = l.auto.Iterate(l.cur, l.domain)
	l.generation++
	l.paint()
}

// Converged reports whether the last step reached a fixed point.
func (l *Life) Converged() bool { return l.converged }

func (l *Life) paint() {
	l.grid.Clear()
	l.grid.Paint(l.cur, 1)
}

// Parameters describes the current configuration and state.
func (l *Life) Parameters() core.ParameterSnapshot {
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name: "life",
		Params: []core.Parameter{
			{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: l.cfg.Rule},
			{Key: "fill", Label: "Fill", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(l.cfg.Fill, 'g', -1, 64)},
			{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(l.generation)},
			{Key: "alive", Label: "Alive", Type: core.ParamTypeInt, Value: strconv.Itoa(l.cur.Size())},
		},
	}}}
}

func init() {
	core.Register("life", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
