package shape

import (
	"fmt"
	"math"

	"mad-shapes/pkg/core"
)

// Pattern is a finite set of active cells with O(1) membership and a
// maintained bounding box. Cells iterate in insertion order.
//
// A Pattern only grows through Insert/Add. Every other operation returns a
// new Pattern and leaves its inputs untouched.
type Pattern struct {
	index map[int64]struct{}
	keys  []int64
	min   Cell
	max   Cell

	// On and Off are the runes used when formatting the pattern.
	On, Off rune
}

// New returns an empty pattern.
func New() *Pattern {
	return newSized(0)
}

func newSized(n int) *Pattern {
	return &Pattern{
		index: make(map[int64]struct{}, n),
		keys:  make([]int64, 0, n),
		min:   Cell{math.MaxInt, math.MaxInt},
		max:   Cell{math.MinInt, math.MinInt},
		On:    '#',
		Off:   '.',
	}
}

// FromCells builds a pattern holding the given cells in order.
func FromCells(cells ...Cell) (*Pattern, error) {
	p := newSized(len(cells))
	for _, c := range cells {
		if err := p.Add(c); err != nil {
			return nil, err
		}
	}
	return p, nil
}

// FromPrototype builds a pattern from a rectangular 0/1 matrix. Entry
// proto[r][c] maps to Cell{X: c, Y: r}.
func FromPrototype(proto [][]int) (*Pattern, error) {
	p := New()
	for r, row := range proto {
		if len(row) != len(proto[0]) {
			return nil, fmt.Errorf("row %d has %d columns, want %d: %w", r, len(row), len(proto[0]), ErrMalformedPrototype)
		}
		for c, v := range row {
			switch v {
			case 0:
			case 1:
				if err := p.Insert(c, r); err != nil {
					return nil, err
				}
			default:
				return nil, fmt.Errorf("value %d at (%d,%d): %w", v, c, r, ErrMalformedPrototype)
			}
		}
	}
	return p, nil
}

// Rectangle returns the filled w×h rectangle spanning (0,0)..(w-1,h-1).
func Rectangle(w, h int) *Pattern {
	return Rect(Cell{}, Cell{w - 1, h - 1})
}

// Rect returns the filled rectangle with inclusive corners lo and hi.
// Cells are inserted column by column.
func Rect(lo, hi Cell) *Pattern {
	w, h := hi.X-lo.X+1, hi.Y-lo.Y+1
	if w <= 0 || h <= 0 {
		return New()
	}
	p := newSized(w * h)
	for x := lo.X; x <= hi.X; x++ {
		for y := lo.Y; y <= hi.Y; y++ {
			p.MustInsert(x, y)
		}
	}
	return p
}

// Insert activates (x, y). It fails if the coordinate is out of bounds or
// the cell is already active; the pattern is unchanged in both cases.
func (p *Pattern) Insert(x, y int) error {
	return p.Add(Cell{x, y})
}

// Add activates c. See Insert.
func (p *Pattern) Add(c Cell) error {
	if !c.In() {
		return fmt.Errorf("insert %v: %w", c, ErrOutOfBounds)
	}
	k := encode(c)
	if _, ok := p.index[k]; ok {
		return fmt.Errorf("insert %v: %w", c, ErrDuplicateCell)
	}
	p.insertKey(k, c)
	return nil
}

// MustInsert is like Insert but panics on error and returns p for chaining.
func (p *Pattern) MustInsert(x, y int) *Pattern {
	if err := p.Insert(x, y); err != nil {
		panic(err)
	}
	return p
}

// MustAdd is like Add but panics on error and returns p for chaining.
func (p *Pattern) MustAdd(c Cell) *Pattern {
	if err := p.Add(c); err != nil {
		panic(err)
	}
	return p
}

// insertKey adds a key known to be valid and absent.
func (p *Pattern) insertKey(k int64, c Cell) {
	p.index[k] = struct{}{}
	p.keys = append(p.keys, k)
	p.min.X = min(p.min.X, c.X)
	p.min.Y = min(p.min.Y, c.Y)
	p.max.X = max(p.max.X, c.X)
	p.max.Y = max(p.max.Y, c.Y)
}

// addIfAbsent inserts c unless it is already active or out of bounds.
func (p *Pattern) addIfAbsent(c Cell) {
	if !c.In() {
		return
	}
	k := encode(c)
	if _, ok := p.index[k]; ok {
		return
	}
	p.insertKey(k, c)
}

// Has reports whether (x, y) is active.
func (p *Pattern) Has(x, y int) bool {
	return p.HasCell(Cell{x, y})
}

// HasCell reports whether c is active.
func (p *Pattern) HasCell(c Cell) bool {
	if !c.In() {
		return false
	}
	_, ok := p.index[encode(c)]
	return ok
}

func (p *Pattern) hasKey(k int64) bool {
	_, ok := p.index[k]
	return ok
}

// Size returns the number of active cells.
func (p *Pattern) Size() int { return len(p.keys) }

// Empty reports whether no cell is active.
func (p *Pattern) Empty() bool { return len(p.keys) == 0 }

// Min returns the lower corner of the bounding box, or (MaxInt, MaxInt)
// when the pattern is empty.
func (p *Pattern) Min() Cell { return p.min }

// Max returns the upper corner of the bounding box, or (MinInt, MinInt)
// when the pattern is empty.
func (p *Pattern) Max() Cell { return p.max }

// Bounds returns the bounding box; ok is false for an empty pattern.
func (p *Pattern) Bounds() (lo, hi Cell, ok bool) {
	return p.min, p.max, !p.Empty()
}

// Width of the bounding box.
func (p *Pattern) Width() int {
	if p.Empty() {
		return 0
	}
	return p.max.X - p.min.X + 1
}

// Height of the bounding box.
func (p *Pattern) Height() int {
	if p.Empty() {
		return 0
	}
	return p.max.Y - p.min.Y + 1
}

// Cells returns the active cells in insertion order.
func (p *Pattern) Cells() []Cell {
	out := make([]Cell, len(p.keys))
	for i, k := range p.keys {
		out[i] = decode(k)
	}
	return out
}

// ShuffledCells returns the active cells in a Fisher–Yates shuffled
// order. The pattern itself is not reordered.
func (p *Pattern) ShuffledCells(rng core.Rand) []Cell {
	out := p.Cells()
	for i := len(out) - 1; i > 0; i-- {
		j := rng.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// Clone returns an independent copy that keeps insertion order.
func (p *Pattern) Clone() *Pattern {
	q := newSized(len(p.keys))
	for _, k := range p.keys {
		q.index[k] = struct{}{}
	}
	q.keys = append(q.keys, p.keys...)
	q.min, q.max = p.min, p.max
	q.On, q.Off = p.On, p.Off
	return q
}

// Translate returns a copy shifted by d. Cells pushed out of bounds are dropped.
func (p *Pattern) Translate(d Cell) *Pattern {
	q := newSized(len(p.keys))
	for _, k := range p.keys {
		q.addIfAbsent(decode(k).Add(d))
	}
	return q
}

// Equal reports whether both patterns hold the same set of cells.
func (p *Pattern) Equal(o *Pattern) bool {
	if p.Size() != o.Size() || p.min != o.min || p.max != o.max {
		return false
	}
	for _, k := range p.keys {
		if !o.hasKey(k) {
			return false
		}
	}
	return true
}

func (p *Pattern) String() string {
	return Format(p)
}
