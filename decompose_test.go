package polygen

import (
	"errors"
	"math"
	"testing"
)

func checkPartition(t *testing.T, s Shape, p Partition, wantArea float64) {
	t.Helper()
	if len(p) == 0 {
		t.Fatal("got empty partition")
	}
	sign := math.Copysign(1, s.SignedArea())
	for i, piece := range p {
		if !piece.IsConvex() {
			t.Errorf("piece %d isn't convex: %v", i, piece)
		}
		if a := piece.SignedArea(); a*sign <= 0 {
			t.Errorf("piece %d has signed area %v, want the sign of %v", i, a, sign)
		}
	}
	assertFloat(t, p.Area(), wantArea, 1e-9*math.Max(1, wantArea))
}

func TestDecomposeConvex(t *testing.T) {
	s, err := CreateShape(6, []float64{10}, Identity, 0, 2*math.Pi, false)
	if err != nil {
		t.Fatal(err)
	}
	p, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 1 {
		t.Fatalf("got %d pieces, want 1", len(p))
	}
	if !p[0].Equal(s) {
		t.Errorf("got %v, want %v", p[0], s)
	}
}

func TestDecomposeCleanup(t *testing.T) {
	s := NewShape(Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2), Pt(0, 0))
	p, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 1 {
		t.Fatalf("got %d pieces, want 1", len(p))
	}
	diff(t, []Point{Pt(0, 0), Pt(2, 0), Pt(2, 2), Pt(0, 2)}, p[0].Points())
}

func TestDecomposeLShape(t *testing.T) {
	s := NewShape(Pt(0, 0), Pt(2, 0), Pt(2, 1), Pt(1, 1), Pt(1, 2), Pt(0, 2))
	p, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) != 2 {
		t.Errorf("got %d pieces, want 2", len(p))
	}
	checkPartition(t, s, p, 3)

	// Clockwise input produces clockwise pieces.
	r := s.Reverse()
	p, err = Decompose(r)
	if err != nil {
		t.Fatal(err)
	}
	checkPartition(t, r, p, 3)
}

func TestDecomposeStar(t *testing.T) {
	s, err := CreateShape(10, []float64{10, 4}, Identity, 0, 2*math.Pi, false)
	if err != nil {
		t.Fatal(err)
	}
	p, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(p) < 5 {
		t.Errorf("got %d pieces, want at least 5", len(p))
	}
	checkPartition(t, s, p, s.Area())
}

func TestDecomposeDeterministic(t *testing.T) {
	s, err := CreateShape(14, []float64{10, 3, 6}, Rotate(0.3), 0, 2*math.Pi, false)
	if err != nil {
		t.Fatal(err)
	}
	p1, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}
	p2, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}
	if len(p1) != len(p2) {
		t.Fatalf("got %d and %d pieces", len(p1), len(p2))
	}
	for i := range p1 {
		if !p1[i].Equal(p2[i]) {
			t.Errorf("piece %d differs: %v and %v", i, p1[i], p2[i])
		}
	}
	checkPartition(t, s, p1, s.Area())
}

func TestDecomposeRing(t *testing.T) {
	s := RingPolygon(square(2), 0.5, Pt(0, 0))
	p, err := Decompose(s)
	if err != nil {
		t.Fatal(err)
	}
	checkPartition(t, s, p, 12)
}

func TestDecomposeDegenerate(t *testing.T) {
	pentagram, err := CreateShape(5, []float64{10}, Identity, 0, 4*math.Pi, false)
	if err != nil {
		t.Fatal(err)
	}
	tests := []struct {
		name string
		s    Shape
	}{
		{"empty", Shape{}},
		{"two points", NewShape(Pt(0, 0), Pt(1, 1))},
		{"duplicates", NewShape(Pt(0, 0), Pt(1, 1), Pt(1, 1), Pt(0, 0))},
		{"collinear", NewShape(Pt(0, 0), Pt(1, 0), Pt(2, 0))},
		{"bowtie", NewShape(Pt(0, 0), Pt(2, 2), Pt(2, 0), Pt(0, 2))},
		{"pentagram", pentagram},
		{"NaN", NewShape(Pt(0, 0), Pt(1, math.NaN()), Pt(1, 1))},
	}
	for _, tt := range tests {
		_, err := Decompose(tt.s)
		if !errors.Is(err, ErrDegenerateGeometry) {
			t.Errorf("%s: got error %v, want %v", tt.name, err, ErrDegenerateGeometry)
		}
	}
}

func TestIsConvex(t *testing.T) {
	tests := []struct {
		name string
		pts  []Point
		want bool
	}{
		{"square", square(1).Points(), true},
		{"clockwise square", square(1).Reverse().Points(), true},
		{"collinear edge", []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0), Pt(2, 2)}, true},
		{"L", []Point{Pt(0, 0), Pt(2, 0), Pt(2, 1), Pt(1, 1), Pt(1, 2), Pt(0, 2)}, false},
		{"line", []Point{Pt(0, 0), Pt(1, 0)}, false},
		{"flat", []Point{Pt(0, 0), Pt(1, 0), Pt(2, 0)}, false},
		{"pentagram", []Point{Pt(0, 10), Pt(6, -8), Pt(-9, 3), Pt(9, 3), Pt(-6, -8)}, false},
	}
	for _, tt := range tests {
		if got := IsConvex(tt.pts); got != tt.want {
			t.Errorf("%s: got %t, want %t", tt.name, got, tt.want)
		}
	}
}
