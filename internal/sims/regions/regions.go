package regions

import (
	"strconv"

	"mad-shapes/internal/core"
	pcore "mad-shapes/pkg/core"
	"mad-shapes/pkg/shape"
)

// Config holds parameters for the region generator.
type Config struct {
	Width      int
	Height     int
	Regions    int
	Candidates int
	Metric     string
	// Erosion carves the domain border this many times so regions sit in
	// an irregular island rather than a plain rectangle.
	Erosion int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Width: 96, Height: 64, Regions: 12, Candidates: 10, Metric: "euclidean", Erosion: 0}
}

// FromMap populates a Config from a string map.
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
	if v, ok := cfg["regions"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Regions = parsed
		}
	}
	if v, ok := cfg["candidates"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Candidates = parsed
		}
	}
	if v, ok := cfg["metric"]; ok {
		if _, err := shape.ParseDistance(v); err == nil {
			c.Metric = v
		}
	}
	if v, ok := cfg["erosion"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Erosion = parsed
		}
	}
	return c
}

// Regions tessellates the domain around best-candidate seeds; every step
// is one Lloyd relaxation iteration.
type Regions struct {
	cfg    Config
	domain *shape.Pattern
	dist   shape.Distance
	rng    *pcore.RNG

	seeds      []shape.Cell
	tess       *shape.Multipattern
	iterations int
	converged  bool
	grid       *core.ByteGrid
}

// New returns a region generator. The metric must parse.
func New(cfg Config) *Regions {
	dist, err := shape.ParseDistance(cfg.Metric)
	if err != nil {
		panic(err)
	}
	return &Regions{
		cfg:  cfg,
		dist: dist,
		tess: shape.NewMultipattern(),
		grid: core.NewByteGrid(cfg.Width, cfg.Height),
	}
}

// Name returns the simulation identifier.
func (r *Regions) Name() string { return "regions" }

// Size returns the grid dimensions.
func (r *Regions) Size() core.Size { return core.Size{W: r.cfg.Width, H: r.cfg.Height} }

// Cells exposes the region labels.
func (r *Regions) Cells() []uint8 { return r.grid.Cells() }

// Shapes returns the current tessellation.
func (r *Regions) Shapes() *shape.Multipattern { return r.tess }

// Seeds returns the current seeds.
func (r *Regions) Seeds() []shape.Cell { return append([]shape.Cell(nil), r.seeds...) }

// Converged reports whether relaxation reached a fixed point.
func (r *Regions) Converged() bool { return r.converged }

// Domain returns the tessellated area.
func (r *Regions) Domain() *shape.Pattern { return r.domain }

// Reset builds the domain and picks fresh seeds.
func (r *Regions) Reset(seed int64) {
	r.rng = pcore.NewRNG(seed)
	r.domain = shape.Rectangle(r.cfg.Width, r.cfg.Height)
	for i := 0; i < r.cfg.Erosion; i++ {
		r.domain = r.erodeBorder(r.domain)
	}
	n := min(r.cfg.Regions, r.domain.Size())
	picked, err := shape.BestCandidate(r.domain, n, r.cfg.Candidates, r.dist, r.rng)
	if err != nil {
		panic(err)
	}
	r.seeds = picked.Cells()
	if r.tess, err = shape.Voronoi(r.seeds, r.domain, r.dist); err != nil {
		panic(err)
	}
	r.iterations = 0
	r.converged = false
	r.grid.PaintLabels(r.tess)
}

// erodeBorder removes a random half of the current border cells.
func (r *Regions) erodeBorder(p *shape.Pattern) *shape.Pattern {
	border := shape.InteriorHull(p, shape.VonNeumann())
	if border.Size() >= p.Size() {
		return p
	}
	bite, err := shape.Thin(border, 0.5, r.rng)
	if err != nil {
		panic(err)
	}
	return shape.Difference(p, bite)
}

// Step runs one relaxation iteration.
func (r *Regions) Step() {
	if r.converged {
		return
	}
	tess, seeds, converged, err := shape.VoronoiRelax(r.seeds, r.domain, r.dist, 1)
	if err != nil {
		panic(err)
	}
	r.tess, r.seeds, r.converged = tess, seeds, converged
	r.iterations++
	r.grid.PaintLabels(r.tess)
}

// Parameters describes the current configuration and state.
func (r *Regions) Parameters() core.ParameterSnapshot {
	summary := "relaxing"
	if r.converged {
		summary = "converged"
	}
	return core.ParameterSnapshot{Groups: []core.ParameterGroup{{
		Name:    "regions",
		Summary: summary,
		Params: []core.Parameter{
			{Key: "metric", Label: "Metric", Type: core.ParamTypeString, Value: r.cfg.Metric},
			{Key: "seeds", Label: "Seeds", Type: core.ParamTypeInt, Value: strconv.Itoa(len(r.seeds))},
			{Key: "iterations", Label: "Iterations", Type: core.ParamTypeInt, Value: strconv.Itoa(r.iterations)},
		},
	}}}
}

func init() {
	core.Register("regions", func(cfg map[string]string) core.Sim {
		return New(FromMap(cfg))
	})
}
