package caves

import (
	"fmt"
	"strconv"

	"mad-shapes/internal/core"
	"mad-shapes/pkg/automata"
	pcore "mad-shapes/pkg/core"
	"mad-shapes/pkg/shape"
)

// Caves grows walls with a cellular automaton from random noise and
// labels the open floor's 4-connected regions as caves.
type Caves struct {
	cfg    Config
	domain *shape.Pattern
	auto   *automata.Automaton
	rng    *pcore.RNG

	walls      *shape.Pattern
	caves      *shape.Multipattern
	generation int
	converged  bool
	grid       *core.ByteGrid
}

// New returns a cave generator with the provided dimensions using defaults.
func New(w, h int) *Caves {
	cfg := DefaultConfig()
	cfg.Width = w
	cfg.Height = h
	return NewWithConfig(cfg)
}

// NewWithConfig returns a cave generator configured from the provided options.
func NewWithConfig(cfg Config) *Caves {
	auto, err := automata.New(automata.MustParseRule(cfg.Rule, nil))
	if err != nil {
		panic(err)
	}
	c := &Caves{
		cfg:    cfg,
		domain: shape.Rectangle(cfg.Width, cfg.Height),
		auto:   auto,
		rng:    pcore.NewRNG(0),
		walls:  shape.New(),
		caves:  shape.NewMultipattern(),
		grid:   core.NewByteGrid(cfg.Width, cfg.Height),
	}
	return c
}

// Name returns the simulation identifier.
func (c *Caves) Name() string { return "caves" }

// Size reports the grid dimensions.
func (c *Caves) Size() core.Size { return core.Size{W: c.cfg.Width, H: c.cfg.Height} }

// Cells exposes the cave labels.
func (c *Caves) Cells() []uint8 { return c.grid.Cells() }

// Shapes returns the labelled caves.
func (c *Caves) Shapes() *shape.Multipattern { return c.caves }

// Walls returns the current wall pattern.
func (c *Caves) Walls() *shape.Pattern { return c.walls }

// Generation returns the number of steps taken since Reset.
func (c *Caves) Generation() int { return c.generation }

// Converged reports whether the walls reached a fixed point.
func (c *Caves) Converged() bool { return c.converged }

// Reset fills the domain with random walls.
func (c *Caves) Reset(seed int64) {
	c.rng = pcore.NewRNG(seed)
	walls, err := shape.Thin(c.domain, c.cfg.Fill, c.rng)
	if err != nil {
		panic(err)
	}
	c.walls = walls
	c.generation = 0
	c.converged = false
	c.label()
}

// Step advances the wall automaton once. In async mode one step is up to
// Flips single-cell updates.
func (c *Caves) Step() {
	if c.converged {
		return
	}
	if c.cfg.Async {
		for i := 0; i < c.cfg.Flips && !c.converged; i++ {
			c.walls, c.converged = c.auto.AsyncIterate(c.walls, c.domain, c.rng)
		}
	} else {
		c.walls, c.converged = c.auto.Iterate(c.walls, c.domain)
	}
	c.generation++
	c.label()
}

// Settle steps until convergence or MaxSteps steps.
func (c *Caves) Settle() {
	for c.generation < c.cfg.MaxSteps && !c.converged {
		c.Step()
	}
}

// Holes returns the wall islands fully enclosed by the largest cave.
func (c *Caves) Holes() *shape.Multipattern {
	largest := c.caves.Largest()
	if largest == nil {
		return shape.NewMultipattern()
	}
	return shape.InteriorHoles(largest, shape.VonNeumann())
}

func (c *Caves) label() {
	floor := shape.Difference(c.domain, c.walls)
	c.caves = shape.ConnectedComponents(floor, shape.VonNeumann()).Filter(func(p *shape.Pattern) bool {
		return p.Size() >= c.cfg.MinArea
	})
	c.grid.PaintLabels(c.caves)
}

// Parameters describes the current configuration and state.
func (c *Caves) Parameters() core.ParameterSnapshot {
	largest := 0
	if l := c.caves.Largest(); l != nil {
		largest = l.Size()
	}
	summary := "growing"
	if c.converged {
		summary = "converged"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{
		{
			Name: "rule",
			Params: []core.Parameter{
				{Key: "rule", Label: "Rule", Type: core.ParamTypeString, Value: c.cfg.Rule},
				{Key: "fill", Label: "Fill", Type: core.ParamTypeFloat, Value: strconv.FormatFloat(c.cfg.Fill, 'g', -1, 64)},
				{Key: "async", Label: "Async", Type: core.ParamTypeString, Value: strconv.FormatBool(c.cfg.Async)},
			},
		},
		{
			Name:    "state",
			Summary: summary,
			Params: []core.Parameter{
				{Key: "generation", Label: "Generation", Type: core.ParamTypeInt, Value: strconv.Itoa(c.generation)},
				{Key: "caves", Label: "Caves", Type: core.ParamTypeInt, Value: strconv.Itoa(c.caves.Len())},
				{Key: "largest", Label: "Largest", Type: core.ParamTypeInt, Value: fmt.Sprint(largest)},
			},
		},
	}}
}

func init() {
	core.Register("caves", func(cfg map[string]string) core.Sim {
		return NewWithConfig(FromMap(cfg))
	})
}
