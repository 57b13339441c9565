package core

import (
	"slices"
	"testing"

	"mad-shapes/pkg/shape"
)

func TestPaintLabels(t *testing.T) {
	g := NewByteGrid(3, 2)
	m := shape.NewMultipattern(
		shape.New().MustInsert(0, 0),
		shape.New().MustInsert(2, 1).MustInsert(7, 7),
	)
	g.PaintLabels(m)
	want := []uint8{1, 0, 0, 0, 0, 2}
	if !slices.Equal(g.Cells(), want) {
		t.Fatalf("got %v, want %v", g.Cells(), want)
	}
	g.Clear()
	if slices.ContainsFunc(g.Cells(), func(v uint8) bool { return v != 0 }) {
		t.Fatal("Clear must zero the grid")
	}
}

func TestParameterLines(t *testing.T) {
	s := ParameterSnapshot{Groups: []ParameterGroup{{
		Name:    "caves",
		Summary: "converged",
		Params:  []Parameter{{Key: "rule", Value: "B678/S345678"}, {Key: "fill", Value: "0.45"}},
	}}}
	lines := s.Lines()
	if len(lines) != 1 || lines[0] != "caves: rule=B678/S345678 fill=0.45 (converged)" {
		t.Fatalf("unexpected lines %q", lines)
	}
}
