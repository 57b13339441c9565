package shape

import (
	"fmt"
	"math"
	"strings"
)

// MaxCoord bounds both coordinates of a Cell to [-MaxCoord, MaxCoord].
const MaxCoord = 65536

// Cell is an integer 2D coordinate.
type Cell struct {
	X, Y int
}

// C is shorthand for Cell{X: x, Y: y}.
func C(x, y int) Cell { return Cell{X: x, Y: y} }

// Add returns c+o.
func (c Cell) Add(o Cell) Cell { return Cell{c.X + o.X, c.Y + o.Y} }

// Sub returns c-o.
func (c Cell) Sub(o Cell) Cell { return Cell{c.X - o.X, c.Y - o.Y} }

// Neg returns -c.
func (c Cell) Neg() Cell { return Cell{-c.X, -c.Y} }

// Scale multiplies both components by k.
func (c Cell) Scale(k int) Cell { return Cell{c.X * k, c.Y * k} }

// In reports whether both coordinates lie within the coordinate bound.
func (c Cell) In() bool {
	return c.X >= -MaxCoord && c.X <= MaxCoord && c.Y >= -MaxCoord && c.Y <= MaxCoord
}

// Zero reports whether c is the origin.
func (c Cell) Zero() bool { return c.X == 0 && c.Y == 0 }

// Distance measures the distance between two cells.
type Distance func(a, b Cell) float64

// Manhattan is the L1 distance.
func Manhattan(a, b Cell) float64 {
	return float64(abs(a.X-b.X) + abs(a.Y-b.Y))
}

// Chebyshev is the L∞ distance.
func Chebyshev(a, b Cell) float64 {
	return float64(max(abs(a.X-b.X), abs(a.Y-b.Y)))
}

// Euclidean is the L2 distance.
func Euclidean(a, b Cell) float64 {
	return math.Sqrt(SquaredEuclidean(a, b))
}

// SquaredEuclidean is the squared L2 distance. It orders cells like
// Euclidean without the square root.
func SquaredEuclidean(a, b Cell) float64 {
	dx, dy := a.X-b.X, a.Y-b.Y
	return float64(dx*dx + dy*dy)
}

func orDefault(d Distance) Distance {
	if d == nil {
		return SquaredEuclidean
	}
	return d
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

// ParseDistance maps a measure name (manhattan, chebyshev, euclidean,
// squared) to its Distance.
func ParseDistance(name string) (Distance, error) {
	switch strings.ToLower(name) {
	case "manhattan", "l1":
		return Manhattan, nil
	case "chebyshev", "linf":
		return Chebyshev, nil
	case "euclidean", "l2":
		return Euclidean, nil
	case "squared", "sqeuclidean", "":
		return SquaredEuclidean, nil
	}
	return nil, fmt.Errorf("distance %q: %w", name, ErrInvalidArgument)
}
