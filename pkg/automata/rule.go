package automata

import (
	"errors"
	"fmt"
	"strings"

	"mad-shapes/pkg/shape"
)

// ErrMalformedRule reports a rule string that is not B<digits>/S<digits>
// or does not fit its neighbourhood.
var ErrMalformedRule = errors.New("automata: malformed rule")

// MaxNeighbourhood is the largest neighbourhood a single-digit rule can describe.
const MaxNeighbourhood = 10

// Rule signatures in Golly notation.
const (
	Conway = "B3/S23"
	Caves  = "B678/S345678"
	Maze   = "B3/S12345"
)

// Counts is a set of neighbour counts, bit i meaning count i.
type Counts uint16

// Has reports whether n is in the set.
func (c Counts) Has(n int) bool {
	return n >= 0 && n < 16 && c&(1<<n) != 0
}

func (c Counts) String() string {
	var b strings.Builder
	for i := 0; i <= MaxNeighbourhood; i++ {
		if c.Has(i) {
			fmt.Fprint(&b, i)
		}
	}
	return b.String()
}

// Rule is a birth/survival rule over a neighbourhood.
type Rule struct {
	Neighbourhood *shape.Neighbourhood
	Birth         Counts
	Survival      Counts
}

// Born reports whether a dead cell with n live neighbours comes alive.
func (r Rule) Born(n int) bool { return r.Birth.Has(n) }

// Survives reports whether a live cell with n live neighbours stays alive.
func (r Rule) Survives(n int) bool { return r.Survival.Has(n) }

// String returns the rule in Golly notation.
func (r Rule) String() string {
	return "B" + r.Birth.String() + "/S" + r.Survival.String()
}

// ParseRule parses a B<digits>/S<digits> signature for the given
// neighbourhood. A nil neighbourhood means Moore.
func ParseRule(s string, n *shape.Neighbourhood) (Rule, error) {
	if n == nil {
		n = shape.Moore()
	}
	if n.Len() > MaxNeighbourhood {
		return Rule{}, fmt.Errorf("rule %q: neighbourhood of %d cells: %w", s, n.Len(), ErrMalformedRule)
	}
	birth, survival, ok := strings.Cut(strings.ToUpper(strings.TrimSpace(s)), "/")
	if !ok {
		return Rule{}, fmt.Errorf("rule %q: missing '/': %w", s, ErrMalformedRule)
	}
	r := Rule{Neighbourhood: n}
	var err error
	if r.Birth, err = parseCounts(birth, 'B', n.Len()); err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", s, err)
	}
	if r.Survival, err = parseCounts(survival, 'S', n.Len()); err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", s, err)
	}
	return r, nil
}

// MustParseRule is like ParseRule but panics on error.
func MustParseRule(s string, n *shape.Neighbourhood) Rule {
	r, err := ParseRule(s, n)
	if err != nil {
		panic(err)
	}
	return r
}

func parseCounts(s string, prefix byte, limit int) (Counts, error) {
	if len(s) == 0 || s[0] != prefix {
		return 0, fmt.Errorf("expected %c prefix: %w", prefix, ErrMalformedRule)
	}
	var c Counts
	for _, ch := range s[1:] {
		if ch < '0' || ch > '9' {
			return 0, fmt.Errorf("bad digit %q: %w", ch, ErrMalformedRule)
		}
		d := int(ch - '0')
		if d > limit {
			return 0, fmt.Errorf("count %d exceeds neighbourhood of %d: %w", d, limit, ErrMalformedRule)
		}
		if c.Has(d) {
			return 0, fmt.Errorf("duplicate count %d: %w", d, ErrMalformedRule)
		}
		c |= 1 << d
	}
	return c, nil
}
