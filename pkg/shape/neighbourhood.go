package shape

import (
	"fmt"
	"math/bits"
	"slices"
	"sync"
)

// maxCategoryOffsets caps the power set enumeration at 2^16 categories.
const maxCategoryOffsets = 16

// Neighbourhood is an ordered list of distinct non-zero offsets defining
// adjacency. It is immutable once built.
type Neighbourhood struct {
	offsets []Cell

	once       sync.Once
	categories [][]Cell
}

// NewNeighbourhood validates and stores the offsets in the given order.
func NewNeighbourhood(offsets ...Cell) (*Neighbourhood, error) {
	if len(offsets) == 0 {
		return nil, fmt.Errorf("no offsets: %w", ErrInvalidNeighbourhood)
	}
	seen := make(map[Cell]bool, len(offsets))
	for _, o := range offsets {
		if o.Zero() {
			return nil, fmt.Errorf("zero offset: %w", ErrInvalidNeighbourhood)
		}
		if seen[o] {
			return nil, fmt.Errorf("duplicate offset %v: %w", o, ErrInvalidNeighbourhood)
		}
		seen[o] = true
	}
	return &Neighbourhood{offsets: slices.Clone(offsets)}, nil
}

func mustNeighbourhood(offsets ...Cell) *Neighbourhood {
	n, err := NewNeighbourhood(offsets...)
	if err != nil {
		panic(err)
	}
	return n
}

var (
	moore = mustNeighbourhood(
		Cell{-1, -1}, Cell{0, -1}, Cell{1, -1},
		Cell{-1, 0}, Cell{1, 0},
		Cell{-1, 1}, Cell{0, 1}, Cell{1, 1},
	)
	vonNeumann = mustNeighbourhood(Cell{0, -1}, Cell{-1, 0}, Cell{1, 0}, Cell{0, 1})
)

// Moore returns the 8-connected neighbourhood.
func Moore() *Neighbourhood { return moore }

// VonNeumann returns the 4-connected neighbourhood.
func VonNeumann() *Neighbourhood { return vonNeumann }

func orMoore(n *Neighbourhood) *Neighbourhood {
	if n == nil {
		return moore
	}
	return n
}

// Len returns the number of offsets.
func (n *Neighbourhood) Len() int { return len(n.offsets) }

// Offsets returns a copy of the offsets in declaration order.
func (n *Neighbourhood) Offsets() []Cell { return slices.Clone(n.offsets) }

// Neighbours returns c translated by every offset.
func (n *Neighbourhood) Neighbours(c Cell) []Cell {
	out := make([]Cell, len(n.offsets))
	for i, o := range n.offsets {
		out[i] = c.Add(o)
	}
	return out
}

// Count returns how many neighbours of c are active in p.
func (n *Neighbourhood) Count(p *Pattern, c Cell) int {
	count := 0
	for _, o := range n.offsets {
		if p.HasCell(c.Add(o)) {
			count++
		}
	}
	return count
}

func (n *Neighbourhood) all(p *Pattern, c Cell) bool {
	for _, o := range n.offsets {
		if !p.HasCell(c.Add(o)) {
			return false
		}
	}
	return true
}

// Categories returns every subset of the offsets, most populated first.
// Subsets of equal size keep bitmask order. The list is computed on first
// use and shared afterwards; callers must not modify it.
func (n *Neighbourhood) Categories() ([][]Cell, error) {
	if len(n.offsets) > maxCategoryOffsets {
		return nil, fmt.Errorf("%d offsets: %w", len(n.offsets), ErrTooLarge)
	}
	n.once.Do(n.buildCategories)
	return n.categories, nil
}

func (n *Neighbourhood) buildCategories() {
	total := 1 << len(n.offsets)
	masks := make([]uint32, total)
	for i := range masks {
		masks[i] = uint32(i)
	}
	slices.SortStableFunc(masks, func(a, b uint32) int {
		return bits.OnesCount32(b) - bits.OnesCount32(a)
	})
	cats := make([][]Cell, total)
	for i, m := range masks {
		cat := make([]Cell, 0, bits.OnesCount32(m))
		for j, o := range n.offsets {
			if m&(1<<j) != 0 {
				cat = append(cat, o)
			}
		}
		cats[i] = cat
	}
	n.categories = cats
}

// Classify returns the index of the most specific category whose offsets
// are all active around c. The empty category always matches, so the
// result is always a valid index.
func (n *Neighbourhood) Classify(p *Pattern, c Cell) (int, error) {
	cats, err := n.Categories()
	if err != nil {
		return 0, err
	}
	for i, cat := range cats {
		match := true
		for _, o := range cat {
			if !p.HasCell(c.Add(o)) {
				match = false
				break
			}
		}
		if match {
			return i, nil
		}
	}
	return len(cats) - 1, nil
}
