package regions

import (
	"slices"
	"testing"

	"mad-shapes/pkg/shape"
)

func TestRelaxationConverges(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 30, 20
	cfg.Regions = 4
	r := New(cfg)
	r.Reset(2)
	for i := 0; i < shape.DefaultRelaxIterations && !r.Converged(); i++ {
		r.Step()
	}
	tess := r.Shapes()
	if !tess.Union().Equal(r.Domain()) {
		t.Fatal("segments must cover the domain")
	}
	total := 0
	for _, s := range tess.Sizes() {
		total += s
	}
	if total != r.Domain().Size() {
		t.Fatal("segments overlap")
	}
	for _, s := range r.Seeds() {
		if !r.Domain().HasCell(s) {
			t.Fatalf("seed %v left the domain", s)
		}
	}
}

func TestResetDeterministic(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 30, 20
	cfg.Erosion = 2
	r := New(cfg)
	r.Reset(9)
	first := slices.Clone(r.Cells())
	seeds := r.Seeds()
	r.Step()
	r.Reset(9)
	if !slices.Equal(first, r.Cells()) || !slices.Equal(seeds, r.Seeds()) {
		t.Fatal("Reset with the same seed must rebuild the same regions")
	}
	if r.Domain().Size() >= 30*20 {
		t.Fatal("erosion should bite into the domain")
	}
}

func TestFromMapMetric(t *testing.T) {
	if c := FromMap(map[string]string{"metric": "manhattan"}); c.Metric != "manhattan" {
		t.Fatalf("metric not applied: %+v", c)
	}
	if c := FromMap(map[string]string{"metric": "bogus"}); c.Metric != DefaultConfig().Metric {
		t.Fatal("unknown metric must keep the default")
	}
}
