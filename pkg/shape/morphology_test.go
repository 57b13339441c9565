package shape

import "testing"

func TestErodeDilateSquare(t *testing.T) {
	sq := Rectangle(3, 3)
	e := Erode(sq, nil)
	if e.Size() != 1 || !e.Has(1, 1) {
		t.Fatalf("erode of 3x3 should be the centre, got %v", e.Cells())
	}
	d := Dilate(sq, nil)
	if !d.Equal(Rect(Cell{-1, -1}, Cell{3, 3})) {
		t.Fatalf("dilate of 3x3 should be 5x5, got %d cells", d.Size())
	}
	dv := Dilate(New().MustInsert(0, 0), VonNeumann())
	if dv.Size() != 5 {
		t.Fatalf("von Neumann dilation of a point has 5 cells, got %d", dv.Size())
	}
}

func TestHulls(t *testing.T) {
	sq := Rectangle(3, 3)
	in := InteriorHull(sq, nil)
	if in.Size() != 8 || in.Has(1, 1) {
		t.Fatalf("interior hull should be the ring, got %v", in.Cells())
	}
	ex := ExteriorHull(sq, nil)
	if ex.Size() != 16 {
		t.Fatalf("exterior hull of 3x3 under Moore has 16 cells, got %d", ex.Size())
	}
	if !Intersection(ex, sq).Empty() {
		t.Fatal("exterior hull must not overlap the pattern")
	}
	if !Gradient(sq, nil).Equal(Union(in, ex)) {
		t.Fatal("gradient must equal interior plus exterior hull")
	}
}

func TestOpeningRemovesSpeck(t *testing.T) {
	p := Union(Rectangle(4, 4), New().MustInsert(10, 10))
	o := Opening(p, nil)
	if o.Has(10, 10) {
		t.Fatal("opening must remove isolated cells")
	}
	if !o.Equal(Rectangle(4, 4)) {
		t.Fatalf("opening should restore the square, got %d cells", o.Size())
	}
}

func TestClosingFillsGap(t *testing.T) {
	p := Difference(Rectangle(5, 5), New().MustInsert(2, 2))
	c := Closing(p, nil)
	if !c.Equal(Rectangle(5, 5)) {
		t.Fatalf("closing should fill the pinhole, got %d cells", c.Size())
	}
}
