package shape

import (
	"errors"
	"testing"

	"mad-shapes/pkg/core"
)

func TestMaxRectangle(t *testing.T) {
	p, err := FromPrototype([][]int{
		{1, 0, 0, 0, 1},
		{1, 1, 1, 1, 0},
		{0, 1, 1, 1, 1},
		{0, 1, 1, 1, 0},
	})
	if err != nil {
		t.Fatal(err)
	}
	lo, hi, ok := MaxRectangle(p)
	if !ok {
		t.Fatal("expected a rectangle")
	}
	if lo != (Cell{1, 1}) || hi != (Cell{3, 3}) {
		t.Fatalf("got %v..%v, want (1,1)..(3,3)", lo, hi)
	}
	if _, _, ok := MaxRectangle(New()); ok {
		t.Fatal("empty pattern has no rectangle")
	}
}

func TestBSPSquare(t *testing.T) {
	sq := Rectangle(4, 4)
	parts, err := BSP(sq, 4)
	if err != nil {
		t.Fatal(err)
	}
	if parts.Len() != 4 {
		t.Fatalf("expected 4 partitions, got %d", parts.Len())
	}
	checkPartition(t, sq, parts)
}

func TestBSPIrregular(t *testing.T) {
	rng := core.NewRNG(21)
	for i := 0; i < 10; i++ {
		p := randomPattern(rng, 12, 9)
		parts, err := BSP(p, 6)
		if err != nil {
			t.Fatal(err)
		}
		checkPartition(t, p, parts)
		parts.Each(func(j int, part *Pattern) {
			if part.Size() > 6 {
				t.Fatalf("partition %d has %d cells", j, part.Size())
			}
			if part.Size() != part.Width()*part.Height() {
				t.Fatalf("partition %d is not a filled rectangle", j)
			}
		})
	}
}

func TestBSPRejectsThreshold(t *testing.T) {
	if _, err := BSP(Rectangle(2, 2), 0); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("expected ErrInvalidArgument, got %v", err)
	}
}
