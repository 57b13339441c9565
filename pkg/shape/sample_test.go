package shape

import (
	"errors"
	"testing"

	"mad-shapes/pkg/core"
)

func TestSample(t *testing.T) {
	domain := Rectangle(10, 10)
	s, err := Sample(domain, 15, core.NewRNG(2))
	if err != nil {
		t.Fatal(err)
	}
	if s.Size() != 15 || !s.Subset(domain) {
		t.Fatalf("sample of %d cells, subset=%v", s.Size(), s.Subset(domain))
	}
	again, _ := Sample(domain, 15, core.NewRNG(2))
	if !again.Equal(s) {
		t.Fatal("sampling must be reproducible for a fixed seed")
	}
	if _, err := Sample(domain, 101, core.NewRNG(2)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("oversized sample: got %v", err)
	}
	if _, err := Sample(domain, 0, core.NewRNG(2)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("empty sample: got %v", err)
	}
}

func TestThin(t *testing.T) {
	domain := Rectangle(10, 10)
	rng := core.NewRNG(4)
	if p, _ := Thin(domain, 1, rng); !p.Equal(domain) {
		t.Fatal("probability 1 keeps everything")
	}
	if p, _ := Thin(domain, 0, rng); !p.Empty() {
		t.Fatal("probability 0 keeps nothing")
	}
	if _, err := Thin(domain, 1.5, rng); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("probability above 1: got %v", err)
	}
}

func TestPoissonDiscSpacing(t *testing.T) {
	domain := Rectangle(30, 30)
	const radius = 3
	pts, err := PoissonDisc(domain, radius, Euclidean, core.NewRNG(9))
	if err != nil {
		t.Fatal(err)
	}
	cells := pts.Cells()
	for i, a := range cells {
		for _, b := range cells[i+1:] {
			if Euclidean(a, b) <= radius {
				t.Fatalf("points %v and %v closer than %d", a, b, radius)
			}
		}
	}
	for _, c := range domain.Cells() {
		covered := false
		for _, p := range cells {
			if Euclidean(c, p) <= radius {
				covered = true
				break
			}
		}
		if !covered {
			t.Fatalf("cell %v is farther than %d from every point", c, radius)
		}
	}
	if _, err := PoissonDisc(domain, 0, nil, core.NewRNG(9)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("zero radius: got %v", err)
	}
}

func TestBestCandidate(t *testing.T) {
	domain := Rectangle(20, 20)
	pts, err := BestCandidate(domain, 4, 30, Euclidean, core.NewRNG(6))
	if err != nil {
		t.Fatal(err)
	}
	if pts.Size() != 4 || !pts.Subset(domain) {
		t.Fatalf("got %d points", pts.Size())
	}
	cells := pts.Cells()
	closest := 1e9
	for i, a := range cells {
		for _, b := range cells[i+1:] {
			closest = min(closest, Euclidean(a, b))
		}
	}
	if closest < 4 {
		t.Fatalf("best candidate points should spread out, closest pair at %.1f", closest)
	}
	if _, err := BestCandidate(domain, 4, 0, nil, core.NewRNG(6)); !errors.Is(err, ErrInvalidArgument) {
		t.Fatalf("k=0: got %v", err)
	}
}
