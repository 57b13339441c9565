package shape

import "fmt"

// Floodfill returns the maximal subset of p connected to seed through the
// offsets of n. A nil neighbourhood means Moore.
func Floodfill(p *Pattern, seed Cell, n *Neighbourhood) (*Pattern, error) {
	if !p.HasCell(seed) {
		return nil, fmt.Errorf("floodfill from %v: %w", seed, ErrCellNotActive)
	}
	return fill(p, encode(seed), orMoore(n), nil), nil
}

// fill walks p from seed with an explicit stack. Visited cells are the
// output pattern itself; claimed cells, when non-nil, are skipped and
// marked.
func fill(p *Pattern, seed int64, n *Neighbourhood, claimed map[int64]struct{}) *Pattern {
	out := New()
	out.insertKey(seed, decode(seed))
	if claimed != nil {
		claimed[seed] = struct{}{}
	}
	stack := []int64{seed}
	for len(stack) > 0 {
		k := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		c := decode(k)
		for _, o := range n.offsets {
			nc := c.Add(o)
			if !nc.In() {
				continue
			}
			nk := encode(nc)
			if !p.hasKey(nk) || out.hasKey(nk) {
				continue
			}
			if claimed != nil {
				if _, ok := claimed[nk]; ok {
					continue
				}
				claimed[nk] = struct{}{}
			}
			out.insertKey(nk, nc)
			stack = append(stack, nk)
		}
	}
	return out
}

// ConnectedComponents splits p into maximal connected subsets under n. The
// components are pairwise disjoint and their union is p. Components are
// ordered by their first cell in p's insertion order.
func ConnectedComponents(p *Pattern, n *Neighbourhood) *Multipattern {
	n = orMoore(n)
	claimed := make(map[int64]struct{}, p.Size())
	out := &Multipattern{}
	for _, k := range p.keys {
		if _, ok := claimed[k]; ok {
			continue
		}
		out.Append(fill(p, k, n, claimed))
	}
	return out
}

// InteriorHoles returns the components of p's complement within its
// bounding rectangle that touch no side of that rectangle.
func InteriorHoles(p *Pattern, n *Neighbourhood) *Multipattern {
	lo, hi, ok := p.Bounds()
	if !ok {
		return &Multipattern{}
	}
	complement := Difference(Rect(lo, hi), p)
	return ConnectedComponents(complement, n).Filter(func(h *Pattern) bool {
		return h.min.X > lo.X && h.min.Y > lo.Y && h.max.X < hi.X && h.max.Y < hi.Y
	})
}
