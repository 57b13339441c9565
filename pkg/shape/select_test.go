package shape

import (
	"errors"
	"testing"

	"mad-shapes/pkg/core"
)

func TestSelectionOnEmptyPattern(t *testing.T) {
	p := New()
	if _, err := p.Centroid(); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("centroid: got %v", err)
	}
	if _, err := p.Medoid(nil); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("medoid: got %v", err)
	}
	if _, err := p.RandomCell(core.NewRNG(1)); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("random cell: got %v", err)
	}
}

func TestCentroidHalvesRoundUp(t *testing.T) {
	left, err := FromCells(Cell{-3, -1}, Cell{-2, 0})
	if err != nil {
		t.Fatal(err)
	}
	c, err := left.Centroid()
	if err != nil {
		t.Fatal(err)
	}
	if c != (Cell{-2, 0}) {
		t.Fatalf("centroid of %v should be (-2,0), got %v", left.Cells(), c)
	}
	shift := Cell{5, 3}
	moved, err := left.Translate(shift).Centroid()
	if err != nil {
		t.Fatal(err)
	}
	if moved != c.Add(shift) {
		t.Fatalf("translated centroid %v, want %v", moved, c.Add(shift))
	}
}

func TestCentroidMayBeInactive(t *testing.T) {
	ring := Difference(Rectangle(3, 3), New().MustInsert(1, 1))
	c, err := ring.Centroid()
	if err != nil {
		t.Fatal(err)
	}
	if c != (Cell{1, 1}) {
		t.Fatalf("centroid of ring should be (1,1), got %v", c)
	}
	if ring.HasCell(c) {
		t.Fatal("ring centroid is its hole")
	}
	m, err := ring.Medoid(nil)
	if err != nil {
		t.Fatal(err)
	}
	if !ring.HasCell(m) {
		t.Fatalf("medoid %v must be active", m)
	}
	if m != (Cell{0, 1}) {
		t.Fatalf("expected first edge midpoint (0,1) as medoid, got %v", m)
	}
}

func TestRandomCellIsActive(t *testing.T) {
	p := New().MustInsert(4, 4).MustInsert(-2, 9)
	rng := core.NewRNG(5)
	for i := 0; i < 20; i++ {
		c, err := p.RandomCell(rng)
		if err != nil || !p.HasCell(c) {
			t.Fatalf("random cell %v err %v", c, err)
		}
	}
}

func TestFindPackingPosition(t *testing.T) {
	container := Union(Rect(Cell{0, 0}, Cell{1, 0}), Rect(Cell{5, 5}, Cell{7, 7}))
	piece := Rectangle(2, 2)
	off, found, err := FindPackingPosition(piece, container, FirstFit)
	if err != nil || !found {
		t.Fatalf("expected a placement, found=%v err=%v", found, err)
	}
	if !piece.Translate(off).Subset(container) {
		t.Fatalf("offset %v does not place piece inside container", off)
	}
	if off != (Cell{5, 5}) {
		t.Fatalf("first fit should anchor at (5,5), got %v", off)
	}

	off, found, err = FindPackingPosition(piece, container, ClosestToCentroid)
	if err != nil || !found || !piece.Translate(off).Subset(container) {
		t.Fatalf("closest-to-centroid placement failed: %v %v %v", off, found, err)
	}

	_, found, err = FindPackingPosition(Rectangle(4, 4), container, FirstFit)
	if err != nil || found {
		t.Fatalf("expected no placement, found=%v err=%v", found, err)
	}
	if _, _, err := FindPackingPosition(New(), container, FirstFit); !errors.Is(err, ErrEmptyPattern) {
		t.Fatalf("empty piece: got %v", err)
	}
}

func TestMultipatternHelpers(t *testing.T) {
	m := NewMultipattern(Rectangle(1, 1), Rectangle(2, 2), Rectangle(3, 1))
	if m.Len() != 3 || m.Largest().Size() != 4 {
		t.Fatalf("unexpected collection %v", m.Sizes())
	}
	big := m.Filter(func(p *Pattern) bool { return p.Size() > 1 })
	if big.Len() != 2 {
		t.Fatalf("filter kept %d", big.Len())
	}
	moved := m.Map(func(p *Pattern) *Pattern { return p.Translate(Cell{10, 0}) })
	if moved.At(0).Min() != (Cell{10, 0}) || m.At(0).Min() != (Cell{0, 0}) {
		t.Fatal("map must produce new patterns")
	}
	total := 0
	m.Each(func(_ int, p *Pattern) { total += p.Size() })
	if total != 8 || m.Union().Size() != 4 {
		t.Fatalf("sizes %d union %d", total, m.Union().Size())
	}
}
