package shape

import (
	"fmt"
	"math"

	"mad-shapes/pkg/core"
)

// Sample returns n distinct cells of p chosen uniformly, via a partial
// Fisher–Yates shuffle.
func Sample(p *Pattern, n int, rng core.Rand) (*Pattern, error) {
	if n <= 0 || n > p.Size() {
		return nil, fmt.Errorf("sample %d of %d cells: %w", n, p.Size(), ErrInvalidArgument)
	}
	keys := append([]int64(nil), p.keys...)
	out := newSized(n)
	for i := 0; i < n; i++ {
		j := i + rng.IntN(len(keys)-i)
		keys[i], keys[j] = keys[j], keys[i]
		out.insertKey(keys[i], decode(keys[i]))
	}
	return out, nil
}

// Thin keeps each cell of p independently with probability prob.
func Thin(p *Pattern, prob float64, rng core.Rand) (*Pattern, error) {
	if prob < 0 || prob > 1 || math.IsNaN(prob) {
		return nil, fmt.Errorf("thin probability %v: %w", prob, ErrInvalidArgument)
	}
	out := New()
	for _, k := range p.keys {
		if core.Chance(rng, prob) {
			out.insertKey(k, decode(k))
		}
	}
	return out, nil
}

// PoissonDisc throws darts at p: each accepted cell removes every
// remaining cell within radius of it under dist, until none remain.
func PoissonDisc(p *Pattern, radius float64, dist Distance, rng core.Rand) (*Pattern, error) {
	if !(radius > 0) {
		return nil, fmt.Errorf("poisson disc radius %v: %w", radius, ErrInvalidArgument)
	}
	dist = orDefault(dist)
	pool := p.Cells()
	out := New()
	for len(pool) > 0 {
		dart := pool[rng.IntN(len(pool))]
		out.insertKey(encode(dart), dart)
		kept := pool[:0]
		for _, c := range pool {
			if dist(c, dart) > radius {
				kept = append(kept, c)
			}
		}
		pool = kept
	}
	return out, nil
}

// BestCandidate picks n cells with Mitchell's algorithm: after a random
// first cell, each further cell is the one of k random unclaimed
// candidates farthest from everything chosen so far.
func BestCandidate(p *Pattern, n, k int, dist Distance, rng core.Rand) (*Pattern, error) {
	if n <= 0 || n > p.Size() {
		return nil, fmt.Errorf("best candidate %d of %d cells: %w", n, p.Size(), ErrInvalidArgument)
	}
	if k < 1 {
		return nil, fmt.Errorf("best candidate k=%d: %w", k, ErrInvalidArgument)
	}
	dist = orDefault(dist)
	pool := p.Cells()
	take := func(i int) Cell {
		c := pool[i]
		pool[i] = pool[len(pool)-1]
		pool = pool[:len(pool)-1]
		return c
	}
	first := take(rng.IntN(len(pool)))
	chosen := []Cell{first}
	out := newSized(n)
	out.insertKey(encode(first), first)
	for len(chosen) < n {
		bestIdx, bestDist := -1, math.Inf(-1)
		for j := 0; j < k; j++ {
			i := rng.IntN(len(pool))
			d := math.Inf(1)
			for _, c := range chosen {
				d = min(d, dist(pool[i], c))
			}
			if d > bestDist {
				bestIdx, bestDist = i, d
			}
		}
		c := take(bestIdx)
		chosen = append(chosen, c)
		out.insertKey(encode(c), c)
	}
	return out, nil
}
