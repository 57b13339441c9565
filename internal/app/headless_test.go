package app

import (
	"strings"
	"testing"

	"mad-shapes/internal/core"
	"mad-shapes/pkg/shape"
)

type countingSim struct {
	steps int
	grid  *core.ByteGrid
}

func (s *countingSim) Name() string { return "counting" }
func (s *countingSim) Size() core.Size { return core.Size{W: s.grid.W, H: s.grid.H} }
func (s *countingSim) Reset(int64) { s.steps = 0; s.grid.Clear() }
func (s *countingSim) Cells() []uint8 { return s.grid.Cells() }
func (s *countingSim) Converged() bool { return s.steps >= 2 }
func (s *countingSim) Step() { s.grid.Cells()[s.steps] = uint8(s.steps + 1); s.steps++ }
func (s *countingSim) Shapes() *shape.Multipattern {
	return shape.NewMultipattern(shape.New().MustInsert(0, 0))
}

func TestRunTextStopsAtConvergence(t *testing.T) {
	sim := &countingSim{grid: core.NewByteGrid(3, 1)}
	cfg := NewConfig()
	cfg.TPS = 0
	cfg.Steps = 10
	var out strings.Builder
	if err := RunText(&out, sim, cfg); err != nil {
		t.Fatal(err)
	}
	if sim.steps != 2 {
		t.Fatalf("expected 2 steps before convergence, got %d", sim.steps)
	}
	got := out.String()
	if !strings.HasPrefix(got, "counting step 2\n") || !strings.Contains(got, "/0.\n") {
		t.Fatalf("unexpected output %q", got)
	}
}

func TestRunTextCrop(t *testing.T) {
	sim := &countingSim{grid: core.NewByteGrid(3, 1)}
	cfg := NewConfig()
	cfg.TPS = 0
	cfg.Crop = true
	var out strings.Builder
	if err := RunText(&out, sim, cfg); err != nil {
		t.Fatal(err)
	}
	if !strings.HasSuffix(out.String(), "\n/\n\n") {
		t.Fatalf("cropped output should hold the single shape, got %q", out.String())
	}
}

func TestFormatCells(t *testing.T) {
	got, err := FormatCells([]uint8{0, 1, 2, 0}, 2)
	if err != nil {
		t.Fatal(err)
	}
	if got != "./\n0.\n" {
		t.Fatalf("got %q", got)
	}
	if _, err := FormatCells(nil, 0); err == nil {
		t.Fatal("zero width must fail")
	}
}
