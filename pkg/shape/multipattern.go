package shape

import "slices"

// Multipattern is an ordered collection of patterns. It owns its patterns
// and only grows through Append.
type Multipattern struct {
	patterns []*Pattern
}

// NewMultipattern returns a collection holding ps in order.
func NewMultipattern(ps ...*Pattern) *Multipattern {
	return &Multipattern{patterns: slices.Clone(ps)}
}

// Append adds p at the end.
func (m *Multipattern) Append(p *Pattern) {
	m.patterns = append(m.patterns, p)
}

// Len returns the number of patterns.
func (m *Multipattern) Len() int { return len(m.patterns) }

// At returns the i-th pattern.
func (m *Multipattern) At(i int) *Pattern { return m.patterns[i] }

// Patterns returns the patterns as a new slice.
func (m *Multipattern) Patterns() []*Pattern { return slices.Clone(m.patterns) }

// Map returns a collection of fn applied to every pattern.
func (m *Multipattern) Map(fn func(*Pattern) *Pattern) *Multipattern {
	out := &Multipattern{patterns: make([]*Pattern, len(m.patterns))}
	for i, p := range m.patterns {
		out.patterns[i] = fn(p)
	}
	return out
}

// Filter returns the patterns for which keep is true.
func (m *Multipattern) Filter(keep func(*Pattern) bool) *Multipattern {
	out := &Multipattern{}
	for _, p := range m.patterns {
		if keep(p) {
			out.patterns = append(out.patterns, p)
		}
	}
	return out
}

// Each calls fn with every pattern and its index.
func (m *Multipattern) Each(fn func(i int, p *Pattern)) {
	for i, p := range m.patterns {
		fn(i, p)
	}
}

// Union merges every pattern into one.
func (m *Multipattern) Union() *Pattern {
	if len(m.patterns) == 0 {
		return New()
	}
	return Union(m.patterns...)
}

// Sizes returns the size of each pattern.
func (m *Multipattern) Sizes() []int {
	out := make([]int, len(m.patterns))
	for i, p := range m.patterns {
		out[i] = p.Size()
	}
	return out
}

// Largest returns the pattern with the most cells, the first on ties, or
// nil for an empty collection.
func (m *Multipattern) Largest() *Pattern {
	var best *Pattern
	for _, p := range m.patterns {
		if best == nil || p.Size() > best.Size() {
			best = p
		}
	}
	return best
}
