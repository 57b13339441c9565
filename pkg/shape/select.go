package shape

import (
	"math"

	"mad-shapes/pkg/core"
)

// RandomCell returns a uniformly chosen active cell.
func (p *Pattern) RandomCell(rng core.Rand) (Cell, error) {
	if p.Empty() {
		return Cell{}, ErrEmptyPattern
	}
	return decode(p.keys[rng.IntN(len(p.keys))]), nil
}

// Centroid returns the mean position rounded to the nearest cell, halves
// rounding up, so translating p translates its centroid by the same offset.
// The result need not be active.
func (p *Pattern) Centroid() (Cell, error) {
	if p.Empty() {
		return Cell{}, ErrEmptyPattern
	}
	var sx, sy float64
	for _, k := range p.keys {
		c := decode(k)
		sx += float64(c.X)
		sy += float64(c.Y)
	}
	n := float64(len(p.keys))
	return Cell{int(math.Floor(sx/n + 0.5)), int(math.Floor(sy/n + 0.5))}, nil
}

// Medoid returns the active cell with the least total distance to all
// other active cells, or the first such cell on ties. A nil distance
// means SquaredEuclidean. Runs in O(n²).
func (p *Pattern) Medoid(dist Distance) (Cell, error) {
	if p.Empty() {
		return Cell{}, ErrEmptyPattern
	}
	dist = orDefault(dist)
	cells := p.Cells()
	best, bestSum := cells[0], math.Inf(1)
	for _, c := range cells {
		sum := 0.0
		for _, o := range cells {
			sum += dist(c, o)
			if sum >= bestSum {
				break
			}
		}
		if sum < bestSum {
			best, bestSum = c, sum
		}
	}
	return best, nil
}
