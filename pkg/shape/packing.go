package shape

import (
	"fmt"
	"slices"
)

// PackMode selects the order in which anchor cells are tried.
type PackMode int

const (
	// FirstFit tries the container's cells in insertion order.
	FirstFit PackMode = iota
	// ClosestToCentroid tries the container's cells nearest to its centroid first.
	ClosestToCentroid
)

// FindPackingPosition returns an offset d such that a translated by d lies
// entirely within the active cells of b. found is false when no placement
// exists; an error is returned only for invalid input.
func FindPackingPosition(a, b *Pattern, mode PackMode) (d Cell, found bool, err error) {
	if a.Empty() || b.Empty() {
		return Cell{}, false, fmt.Errorf("find packing position: %w", ErrEmptyPattern)
	}
	if a.Size() > b.Size() {
		return Cell{}, false, nil
	}
	anchor := decode(a.keys[0])
	candidates := b.Cells()
	switch mode {
	case FirstFit:
	case ClosestToCentroid:
		centre, _ := b.Centroid()
		slices.SortStableFunc(candidates, func(x, y Cell) int {
			dx, dy := SquaredEuclidean(x, centre), SquaredEuclidean(y, centre)
			switch {
			case dx < dy:
				return -1
			case dx > dy:
				return 1
			}
			return 0
		})
	default:
		return Cell{}, false, fmt.Errorf("pack mode %d: %w", mode, ErrInvalidArgument)
	}
	for _, c := range candidates {
		off := c.Sub(anchor)
		if fits(a, b, off) {
			return off, true, nil
		}
	}
	return Cell{}, false, nil
}

func fits(a, b *Pattern, off Cell) bool {
	for _, k := range a.keys {
		if !b.HasCell(decode(k).Add(off)) {
			return false
		}
	}
	return true
}
