package shape

import (
	"math"
	"testing"
)

func TestDistances(t *testing.T) {
	a, b := Cell{1, 2}, Cell{4, -2}
	if d := Manhattan(a, b); d != 7 {
		t.Fatalf("manhattan = %v", d)
	}
	if d := Chebyshev(a, b); d != 4 {
		t.Fatalf("chebyshev = %v", d)
	}
	if d := SquaredEuclidean(a, b); d != 25 {
		t.Fatalf("squared euclidean = %v", d)
	}
	if d := Euclidean(a, b); math.Abs(d-5) > 1e-12 {
		t.Fatalf("euclidean = %v", d)
	}
}

func TestCellArithmetic(t *testing.T) {
	c := Cell{2, -3}
	if c.Add(Cell{1, 1}) != (Cell{3, -2}) || c.Sub(c) != (Cell{}) || c.Neg() != (Cell{-2, 3}) || c.Scale(2) != (Cell{4, -6}) {
		t.Fatal("component-wise arithmetic broken")
	}
	if (Cell{MaxCoord + 1, 0}).In() || !(Cell{-MaxCoord, MaxCoord}).In() {
		t.Fatal("bound check broken")
	}
}

func TestParseDistance(t *testing.T) {
	d, err := ParseDistance("Manhattan")
	if err != nil || d(Cell{0, 0}, Cell{2, 3}) != 5 {
		t.Fatalf("manhattan lookup failed: %v", err)
	}
	if _, err := ParseDistance("hamming"); err == nil {
		t.Fatal("unknown measure must fail")
	}
}
