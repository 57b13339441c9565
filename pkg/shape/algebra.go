package shape

import "slices"

// Union returns every cell active in at least one input, ordered by first
// appearance across the inputs.
func Union(ps ...*Pattern) *Pattern {
	switch len(ps) {
	case 0:
		return New()
	case 1:
		return ps[0].Clone()
	}
	n := 0
	for _, p := range ps {
		n = max(n, p.Size())
	}
	out := newSized(n)
	for _, p := range ps {
		for _, k := range p.keys {
			if !out.hasKey(k) {
				out.insertKey(k, decode(k))
			}
		}
	}
	return out
}

// Intersection returns the cells active in every input. The smallest input
// is the probe set and fixes the output order.
func Intersection(ps ...*Pattern) *Pattern {
	switch len(ps) {
	case 0:
		return New()
	case 1:
		return ps[0].Clone()
	}
	sorted := slices.Clone(ps)
	slices.SortStableFunc(sorted, func(a, b *Pattern) int { return a.Size() - b.Size() })
	probe, rest := sorted[0], sorted[1:]
	out := newSized(probe.Size())
	for _, k := range probe.keys {
		in := true
		for _, o := range rest {
			if !o.hasKey(k) {
				in = false
				break
			}
		}
		if in {
			out.insertKey(k, decode(k))
		}
	}
	return out
}

// Difference returns the cells of a that are not active in b.
func Difference(a, b *Pattern) *Pattern {
	out := newSized(a.Size())
	for _, k := range a.keys {
		if !b.hasKey(k) {
			out.insertKey(k, decode(k))
		}
	}
	return out
}

// Xor returns the cells active in exactly one of a and b.
func Xor(a, b *Pattern) *Pattern {
	out := newSized(a.Size() + b.Size())
	for _, k := range a.keys {
		if !b.hasKey(k) {
			out.insertKey(k, decode(k))
		}
	}
	for _, k := range b.keys {
		if !a.hasKey(k) {
			out.insertKey(k, decode(k))
		}
	}
	return out
}

// Subset reports whether every cell of p is active in o.
func (p *Pattern) Subset(o *Pattern) bool {
	if p.Size() > o.Size() {
		return false
	}
	for _, k := range p.keys {
		if !o.hasKey(k) {
			return false
		}
	}
	return true
}
