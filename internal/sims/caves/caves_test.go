package caves

import (
	"slices"
	"testing"

	"mad-shapes/pkg/shape"
)

func TestResetDeterministic(t *testing.T) {
	c := New(40, 30)
	c.Reset(7)
	first := slices.Clone(c.Cells())
	c.Step()
	c.Reset(7)
	if !slices.Equal(first, c.Cells()) {
		t.Fatal("Reset with the same seed must rebuild the same cave map")
	}
}

func TestSettleConvergesAndLabels(t *testing.T) {
	c := New(48, 32)
	c.Reset(3)
	c.Settle()
	if !c.Converged() {
		t.Fatalf("caves did not converge in %d steps", c.Generation())
	}
	caves := c.Shapes()
	if caves.Len() == 0 {
		t.Fatal("expected at least one cave")
	}
	floor := shape.Difference(shape.Rectangle(48, 32), c.Walls())
	caves.Each(func(i int, p *shape.Pattern) {
		if !p.Subset(floor) {
			t.Fatalf("cave %d overlaps walls", i)
		}
		if p.Size() < DefaultConfig().MinArea {
			t.Fatalf("cave %d below minimum area", i)
		}
	})
	w := c.Size().W
	first := caves.At(0).Cells()[0]
	if got := c.Cells()[first.Y*w+first.X]; got != 1 {
		t.Fatalf("first cave cell labelled %d, want 1", got)
	}
	before := c.Generation()
	c.Step()
	if c.Generation() != before {
		t.Fatal("stepping a converged map must be a no-op")
	}
}

func TestAsyncStepFlipsBoundedCells(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Width, cfg.Height = 20, 20
	cfg.Async = true
	cfg.Flips = 5
	c := NewWithConfig(cfg)
	c.Reset(11)
	before := c.Walls()
	c.Step()
	if diff := shape.Xor(before, c.Walls()).Size(); diff > 5 {
		t.Fatalf("async step flipped %d cells, want at most 5", diff)
	}
}

func TestFromMap(t *testing.T) {
	c := FromMap(map[string]string{"fill": "0.5", "async": "true", "rule": "B5678/S45678", "min_area": "x"})
	if c.Fill != 0.5 || !c.Async || c.Rule != "B5678/S45678" || c.MinArea != DefaultConfig().MinArea {
		t.Fatalf("unexpected config %+v", c)
	}
}
