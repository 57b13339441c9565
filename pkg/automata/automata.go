package automata

import (
	"errors"
	"fmt"

	"mad-shapes/pkg/core"
	"mad-shapes/pkg/shape"
)

// Automaton evaluates a set of rules jointly: a cell is born or survives
// only if every rule agrees, and any dissenting rule kills it.
type Automaton struct {
	rules []Rule
	// reach holds each rule's mirrored neighbourhood: the cells whose
	// neighbourhood contains a given cell.
	reach []*shape.Neighbourhood
}

// New builds an automaton from one or more rules.
func New(rules ...Rule) (*Automaton, error) {
	if len(rules) == 0 {
		return nil, errors.New("automata: no rules")
	}
	a := &Automaton{rules: append([]Rule(nil), rules...)}
	for i, r := range rules {
		if r.Neighbourhood == nil {
			return nil, fmt.Errorf("automata: rule %d has no neighbourhood", i)
		}
		offsets := r.Neighbourhood.Offsets()
		for j := range offsets {
			offsets[j] = offsets[j].Neg()
		}
		mirror, err := shape.NewNeighbourhood(offsets...)
		if err != nil {
			return nil, err
		}
		a.reach = append(a.reach, mirror)
	}
	return a, nil
}

// FromStrings parses every signature against n and builds an automaton.
func FromStrings(n *shape.Neighbourhood, rules ...string) (*Automaton, error) {
	parsed := make([]Rule, len(rules))
	for i, s := range rules {
		r, err := ParseRule(s, n)
		if err != nil {
			return nil, err
		}
		parsed[i] = r
	}
	return New(parsed...)
}

// Rules returns a copy of the rule set.
func (a *Automaton) Rules() []Rule { return append([]Rule(nil), a.rules...) }

// next computes the following state of c.
func (a *Automaton) next(prev *shape.Pattern, c shape.Cell) bool {
	alive := prev.HasCell(c)
	for _, r := range a.rules {
		n := r.Neighbourhood.Count(prev, c)
		if alive && !r.Survives(n) || !alive && !r.Born(n) {
			return false
		}
	}
	return true
}

// Iterate applies one synchronous generation over every domain cell.
// Live cells outside domain do not carry over. converged reports whether
// the generation equals prev.
func (a *Automaton) Iterate(prev, domain *shape.Pattern) (next *shape.Pattern, converged bool) {
	next = shape.New()
	for _, c := range domain.Cells() {
		if a.next(prev, c) {
			next.MustAdd(c)
		}
	}
	return next, next.Equal(prev)
}

// AsyncIterate visits the domain in shuffled order and flips the first
// cell whose state would change, returning after that single flip. When
// no cell changes it returns (prev, true).
func (a *Automaton) AsyncIterate(prev, domain *shape.Pattern, rng core.Rand) (*shape.Pattern, bool) {
	for _, c := range domain.ShuffledCells(rng) {
		if a.next(prev, c) != prev.HasCell(c) {
			return flip(prev, c), false
		}
	}
	return prev, true
}

// Grow keeps every live cell and births, in one synchronous step, the
// frontier cells of domain that every rule's birth set accepts. converged
// is true when nothing is born.
func (a *Automaton) Grow(prev, domain *shape.Pattern) (*shape.Pattern, bool) {
	next := prev.Clone()
	born := 0
	for _, c := range a.frontier(prev, domain).Cells() {
		if a.next(prev, c) {
			next.MustAdd(c)
			born++
		}
	}
	return next, born == 0
}

// AsyncGrow births the first accepted frontier cell in shuffled order.
func (a *Automaton) AsyncGrow(prev, domain *shape.Pattern, rng core.Rand) (*shape.Pattern, bool) {
	for _, c := range a.frontier(prev, domain).ShuffledCells(rng) {
		if a.next(prev, c) {
			return flip(prev, c), false
		}
	}
	return prev, true
}

// Run iterates synchronously until a fixed point or maxSteps generations.
func (a *Automaton) Run(prev, domain *shape.Pattern, maxSteps int) (cur *shape.Pattern, steps int, converged bool) {
	cur = prev
	for steps < maxSteps {
		cur, converged = a.Iterate(cur, domain)
		steps++
		if converged {
			break
		}
	}
	shape.Logger().Debug("automaton run", "steps", steps, "converged", converged, "cells", cur.Size())
	return cur, steps, converged
}

// frontier returns the domain cells outside prev that have a live cell in
// some rule's neighbourhood.
func (a *Automaton) frontier(prev, domain *shape.Pattern) *shape.Pattern {
	hulls := make([]*shape.Pattern, len(a.reach))
	for i, n := range a.reach {
		hulls[i] = shape.ExteriorHull(prev, n)
	}
	return shape.Intersection(shape.Union(hulls...), domain)
}

func flip(p *shape.Pattern, c shape.Cell) *shape.Pattern {
	if p.HasCell(c) {
		return shape.Difference(p, shape.New().MustAdd(c))
	}
	return p.Clone().MustAdd(c)
}
