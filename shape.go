package polygen

import (
	"fmt"
	"iter"
	"math"
	"slices"
	"strings"
)

// Shape is an immutable, ordered sequence of points.
//
// Depending on its [ShapeType], the points describe the vertices of a closed
// polygon, the vertices of an open polyline, or consecutive pairs of points
// that each describe a separate line. All operations that "modify" a shape
// return a new one; the points of a shape never change after it has been
// created, so shapes can be shared and retained freely.
//
// The zero value is the empty shape.
type Shape struct {
	pts []Point
}

// NewShape returns a shape consisting of a copy of pts.
func NewShape(pts ...Point) Shape {
	return Shape{pts: slices.Clone(pts)}
}

// Len returns the number of points.
func (s Shape) Len() int { return len(s.pts) }

// At returns the i-th point. It panics if i is out of range.
func (s Shape) At(i int) Point { return s.pts[i] }

// Points returns a copy of the points.
func (s Shape) Points() []Point { return slices.Clone(s.pts) }

// All returns an iterator over the indices and points of the shape.
func (s Shape) All() iter.Seq2[int, Point] {
	return slices.All(s.pts)
}

// Edges returns an iterator over the edges of the shape, interpreted as a
// closed polygon. The final edge connects the last point to the first one.
func (s Shape) Edges() iter.Seq[Line] {
	return func(yield func(Line) bool) {
		n := len(s.pts)
		if n < 2 {
			return
		}
		for i := range n {
			if !yield(Line{s.pts[i], s.pts[(i+1)%n]}) {
				return
			}
		}
	}
}

func (s Shape) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	for i, pt := range s.pts {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(pt.String())
	}
	sb.WriteByte(']')
	return sb.String()
}

// SignedArea returns the signed area of the shape, interpreted as a closed
// polygon, using the shoelace formula.
//
// The area is positive when the vertices are ordered anti-clockwise in a y-up
// space (clockwise in a y-down space).
func (s Shape) SignedArea() float64 {
	return signedArea(s.pts)
}

// Area returns the absolute area of the shape, interpreted as a closed
// polygon.
func (s Shape) Area() float64 {
	return math.Abs(s.SignedArea())
}

// Perimeter returns the length of the shape's outline, interpreted as a closed
// polygon.
func (s Shape) Perimeter() float64 {
	var l float64
	for e := range s.Edges() {
		l += e.Length()
	}
	return l
}

// BoundingBox returns the smallest rectangle enclosing all points. The empty
// shape has the zero rectangle as its bounding box.
func (s Shape) BoundingBox() Rect { return Bounds(s.pts) }

// Centroid returns the area centroid of the shape. Shapes without area use
// the mean of their points instead.
func (s Shape) Centroid() Point {
	if len(s.pts) == 0 {
		return Point{}
	}
	a := s.SignedArea()
	if math.Abs(a) < 1e-12 {
		var sum Vec2
		for _, pt := range s.pts {
			sum = sum.Add(Vec2(pt))
		}
		return Point(sum.Div(float64(len(s.pts))))
	}
	var cx, cy float64
	for e := range s.Edges() {
		f := Vec2(e.P0).Cross(Vec2(e.P1))
		cx += (e.P0.X + e.P1.X) * f
		cy += (e.P0.Y + e.P1.Y) * f
	}
	return Pt(cx/(6*a), cy/(6*a))
}

// Reverse returns the shape with the order of its points reversed.
func (s Shape) Reverse() Shape {
	out := slices.Clone(s.pts)
	slices.Reverse(out)
	return Shape{pts: out}
}

func (s Shape) Transform(aff Affine) Shape {
	out := make([]Point, len(s.pts))
	for i, pt := range s.pts {
		out[i] = pt.Transform(aff)
	}
	return Shape{pts: out}
}

// Equal reports whether both shapes consist of exactly the same points.
func (s Shape) Equal(o Shape) bool {
	return slices.Equal(s.pts, o.pts)
}

// ApproxEqual reports whether both shapes have the same number of points and
// corresponding points are no further than epsilon apart.
func (s Shape) ApproxEqual(o Shape, epsilon float64) bool {
	return slices.EqualFunc(s.pts, o.pts, func(a, b Point) bool {
		return a.ApproxEqual(b, epsilon)
	})
}

// IsConvex reports whether the shape is a convex polygon. See [IsConvex].
func (s Shape) IsConvex() bool {
	return IsConvex(s.pts)
}

func (s Shape) IsNaN() bool {
	return slices.ContainsFunc(s.pts, Point.IsNaN)
}

func (s Shape) IsInf() bool {
	return slices.ContainsFunc(s.pts, Point.IsInf)
}

func signedArea(pts []Point) float64 {
	n := len(pts)
	if n < 3 {
		return 0
	}
	var sum float64
	for i := range n {
		sum += Vec2(pts[i]).Cross(Vec2(pts[(i+1)%n]))
	}
	return sum * 0.5
}

// ShapeType describes how the points of a [Shape] are to be interpreted.
type ShapeType int

const (
	// Polygon is a closed, filled shape.
	Polygon ShapeType = iota
	// Polyline is an outline through all points.
	Polyline
	// Multiline is a set of disjoint lines, one per pair of points.
	Multiline
)

var shapeTypeNames = [...]string{
	Polygon:   "polygon",
	Polyline:  "polyline",
	Multiline: "multiline",
}

func (t ShapeType) String() string {
	if t < 0 || int(t) >= len(shapeTypeNames) {
		return fmt.Sprintf("ShapeType(%d)", int(t))
	}
	return shapeTypeNames[t]
}

func (t ShapeType) MarshalText() ([]byte, error) {
	if t < 0 || int(t) >= len(shapeTypeNames) {
		return nil, fmt.Errorf("invalid shape type %d", int(t))
	}
	return []byte(shapeTypeNames[t]), nil
}

// ClosingMethod describes how the open ends of a shape that doesn't span a
// full circle are joined.
type ClosingMethod int

const (
	// Slice joins both ends to the center of the shape, as in a pie slice.
	Slice ClosingMethod = iota
	// Chord joins both ends with a single straight line.
	Chord
	// Arc continues the shape along its circle up to the end of the arc
	// before joining the ends with a straight line.
	Arc
)

var closingMethodNames = [...]string{
	Slice: "slice",
	Chord: "chord",
	Arc:   "arc",
}

func (m ClosingMethod) String() string {
	if m < 0 || int(m) >= len(closingMethodNames) {
		return fmt.Sprintf("ClosingMethod(%d)", int(m))
	}
	return closingMethodNames[m]
}

func (m ClosingMethod) MarshalText() ([]byte, error) {
	if m < 0 || int(m) >= len(closingMethodNames) {
		return nil, fmt.Errorf("invalid closing method %d", int(m))
	}
	return []byte(closingMethodNames[m]), nil
}

func (m *ClosingMethod) UnmarshalText(b []byte) error {
	name := strings.ToLower(strings.TrimSpace(string(b)))
	for i, n := range closingMethodNames {
		if n == name {
			*m = ClosingMethod(i)
			return nil
		}
	}
	return fmt.Errorf("unknown closing method %q", string(b))
}

// Partition is a list of convex shapes, as returned by [Decompose].
type Partition []Shape

// Area returns the sum of the areas of all pieces.
func (p Partition) Area() float64 {
	var a float64
	for _, s := range p {
		a += s.Area()
	}
	return a
}

// Clone returns a copy of the partition. The pieces themselves are immutable
// and are shared.
func (p Partition) Clone() Partition {
	return slices.Clone(p)
}
