package shape

import (
	"fmt"
	"slices"
)

// DefaultRelaxIterations is the usual iteration cap for VoronoiRelax.
const DefaultRelaxIterations = 30

// Voronoi assigns every domain cell to its nearest seed under dist and
// returns one segment per seed, in seed order. Ties go to the seed declared
// first. A nil distance means SquaredEuclidean.
func Voronoi(seeds []Cell, domain *Pattern, dist Distance) (*Multipattern, error) {
	if len(seeds) == 0 {
		return nil, fmt.Errorf("voronoi: %w", ErrNoSeeds)
	}
	for _, s := range seeds {
		if !domain.HasCell(s) {
			return nil, fmt.Errorf("voronoi seed %v: %w", s, ErrSeedOutsideDomain)
		}
	}
	dist = orDefault(dist)
	segments := make([]*Pattern, len(seeds))
	for i := range segments {
		segments[i] = New()
	}
	for _, k := range domain.keys {
		c := decode(k)
		best, bestDist := 0, dist(c, seeds[0])
		for i := 1; i < len(seeds); i++ {
			if d := dist(c, seeds[i]); d < bestDist {
				best, bestDist = i, d
			}
		}
		segments[best].insertKey(k, c)
	}
	return &Multipattern{patterns: segments}, nil
}

// VoronoiRelax runs Lloyd relaxation: each iteration tessellates the
// domain and moves every seed to its segment's centroid, falling back to
// the medoid when the centroid is outside the domain or already taken.
// Seeds whose segment is empty, or whose fallback is also taken, are
// dropped. It stops when an iteration leaves the seed set unchanged
// (converged) or after maxIter iterations. The returned tessellation
// belongs to the returned seeds.
func VoronoiRelax(seeds []Cell, domain *Pattern, dist Distance, maxIter int) (*Multipattern, []Cell, bool, error) {
	if maxIter < 1 {
		return nil, nil, false, fmt.Errorf("voronoi relax iterations %d: %w", maxIter, ErrInvalidArgument)
	}
	dist = orDefault(dist)
	seeds = slices.Clone(seeds)
	tess, err := Voronoi(seeds, domain, dist)
	if err != nil {
		return nil, nil, false, err
	}
	for i := 0; i < maxIter; i++ {
		next := relaxSeeds(tess, domain, dist)
		if sameSeeds(next, seeds) {
			Logger().Debug("voronoi relax converged", "iteration", i, "seeds", len(seeds))
			return tess, seeds, true, nil
		}
		seeds = next
		if tess, err = Voronoi(seeds, domain, dist); err != nil {
			return nil, nil, false, err
		}
		Logger().Debug("voronoi relax", "iteration", i, "seeds", len(seeds))
	}
	return tess, seeds, false, nil
}

func relaxSeeds(tess *Multipattern, domain *Pattern, dist Distance) []Cell {
	next := make([]Cell, 0, tess.Len())
	claimed := make(map[Cell]bool, tess.Len())
	for _, seg := range tess.patterns {
		if seg.Empty() {
			continue
		}
		c, _ := seg.Centroid()
		if !domain.HasCell(c) || claimed[c] {
			c, _ = seg.Medoid(dist)
			if !domain.HasCell(c) || claimed[c] {
				continue
			}
		}
		claimed[c] = true
		next = append(next, c)
	}
	return next
}

// sameSeeds reports whether a and b hold the same cells with the same
// multiplicity, ignoring order.
func sameSeeds(a, b []Cell) bool {
	if len(a) != len(b) {
		return false
	}
	count := make(map[Cell]int, len(a))
	for _, c := range a {
		count[c]++
	}
	for _, c := range b {
		if count[c] == 0 {
			return false
		}
		count[c]--
	}
	return true
}
