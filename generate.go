package polygen

import (
	"fmt"
	"math"
	"slices"
)

// DefaultCircleVertices is the number of vertices used for a vertex count of 1,
// which approximates a circle.
const DefaultCircleVertices = 32

// Generator describes a shape by its radial parameters.
//
// The shape's vertices are evenly spaced on the arc from ArcStart to ArcEnd
// around the origin, each at a distance from the origin that is taken from
// Sizes, cycling through the sizes if there are fewer sizes than vertices.
// All points are then mapped through Offset.
type Generator struct {
	// VerticesCount is the number of vertices of the base shape.
	//
	// A value of 1 uses CircleVertices vertices instead. A value of 2
	// produces one line from the center outwards per entry of Sizes, as a
	// [Multiline].
	VerticesCount int
	Sizes         []float64
	// Offset is applied to every generated point, as is. Use [Identity] to
	// keep the shape around the origin; the zero Affine collapses it.
	Offset Affine
	// ArcStart and ArcEnd delimit the arc of the base shape that is kept, in
	// radians.
	ArcStart float64
	ArcEnd   float64
	// AddCentralPoint adds the (transformed) center to the shape, unless the
	// arc spans a full circle.
	AddCentralPoint bool
	// ClosingMethod only has an effect for arcs that don't span a full
	// circle. [Arc] adds points along the circle from the last vertex up to
	// ArcEnd. [Slice] and [Chord] don't add any points; a slice is formed by
	// setting AddCentralPoint.
	ClosingMethod ClosingMethod
	// CircleVertices is the number of vertices used for a VerticesCount of
	// 1, and determines the density of points added by the Arc closing
	// method. Zero means DefaultCircleVertices.
	CircleVertices int
}

// CreateShape returns the shape described by the parameters. See [Generator]
// for their meaning.
//
// For vertex counts of 3 and more, the result consists of exactly
// verticesCount points, plus one central point if addCentralPoint is set and
// the arc doesn't span a full circle. An empty arc (arcStart == arcEnd)
// produces a single point, the first vertex.
func CreateShape(
	verticesCount int,
	sizes []float64,
	offset Affine,
	arcStart, arcEnd float64,
	addCentralPoint bool,
) (Shape, error) {
	return Generator{
		VerticesCount:   verticesCount,
		Sizes:           sizes,
		Offset:          offset,
		ArcStart:        arcStart,
		ArcEnd:          arcEnd,
		AddCentralPoint: addCentralPoint,
		ClosingMethod:   Chord,
	}.Shape()
}

// Type returns the type of shape the generator produces.
func (g Generator) Type() ShapeType {
	if g.VerticesCount == 2 {
		return Multiline
	}
	return Polygon
}

func (g Generator) circleVertices() int {
	if g.CircleVertices > 0 {
		return g.CircleVertices
	}
	return DefaultCircleVertices
}

func (g Generator) size(i int) float64 {
	return g.Sizes[i%len(g.Sizes)]
}

func (g Generator) validate(op string) error {
	if len(g.Sizes) == 0 {
		return invalidf(op, "sizes must not be empty")
	}
	if i := slices.IndexFunc(g.Sizes, func(f float64) bool { return math.IsNaN(f) || math.IsInf(f, 0) }); i != -1 {
		return invalidf(op, "size %d is %g", i, g.Sizes[i])
	}
	if g.VerticesCount <= 0 {
		return invalidf(op, "vertices count must be positive, got %d", g.VerticesCount)
	}
	if math.IsNaN(g.ArcStart) || math.IsInf(g.ArcStart, 0) ||
		math.IsNaN(g.ArcEnd) || math.IsInf(g.ArcEnd, 0) {
		return invalidf(op, "arc bounds must be finite, got [%g, %g]", g.ArcStart, g.ArcEnd)
	}
	if g.Offset.IsNaN() || g.Offset.IsInf() {
		return invalidf(op, "offset transform must be finite")
	}
	if g.ClosingMethod < Slice || g.ClosingMethod > Arc {
		return invalidf(op, "unknown closing method %d", int(g.ClosingMethod))
	}
	return nil
}

// Shape generates the shape.
func (g Generator) Shape() (Shape, error) {
	if err := g.validate("CreateShape"); err != nil {
		return Shape{}, err
	}
	return Shape{pts: g.points()}, nil
}

func (g Generator) points() []Point {
	aff := g.Offset
	if IsEmptyArc(g.ArcStart, g.ArcEnd) {
		return []Point{polar(aff, g.ArcStart, g.size(0))}
	}

	span := g.ArcEnd - g.ArcStart
	if g.VerticesCount == 2 {
		// Spokes: one line per size, from the center outwards.
		center := aff.Origin()
		n := len(g.Sizes)
		out := make([]Point, 0, 2*n)
		for i, r := range g.Sizes {
			th := g.ArcStart + span*float64(i)/float64(n)
			out = append(out, center, polar(aff, th, r))
		}
		return out
	}

	n := g.VerticesCount
	if n == 1 {
		n = g.circleVertices()
	}
	full := IsFullCircle(g.ArcStart, g.ArcEnd)
	out := make([]Point, 0, n+1)
	for i := range n {
		th := g.ArcStart + span*float64(i)/float64(n)
		out = append(out, polar(aff, th, g.size(i)))
	}
	if full {
		return out
	}
	if g.ClosingMethod == Arc {
		last := g.ArcStart + span*float64(n-1)/float64(n)
		maxStep := 2 * math.Pi / float64(g.circleVertices())
		out = append(out, sampleArc(aff, last, g.ArcEnd, g.size(n-1), g.size(n), maxStep)...)
	}
	if g.AddCentralPoint {
		out = append(out, aff.Origin())
	}
	return out
}

// AddShape generates the shape described by the parameters, like
// [CreateShape], and inserts its points into a copy of base, starting at index
// start. The points of base before and after start keep their order.
//
// It returns an [InvalidParameter] error wrapping [ErrIndexOutOfRange] if
// start isn't in [0, base.Len()].
func AddShape(
	base Shape,
	start int,
	verticesCount int,
	sizes []float64,
	offset Affine,
	arcStart, arcEnd float64,
	addCentralPoint bool,
) (Shape, error) {
	return Generator{
		VerticesCount:   verticesCount,
		Sizes:           sizes,
		Offset:          offset,
		ArcStart:        arcStart,
		ArcEnd:          arcEnd,
		AddCentralPoint: addCentralPoint,
		ClosingMethod:   Chord,
	}.Insert(base, start)
}

// Insert generates the shape and inserts its points into a copy of base at
// index start. See [AddShape].
func (g Generator) Insert(base Shape, start int) (Shape, error) {
	const op = "AddShape"
	if start < 0 || start > len(base.pts) {
		return Shape{}, &Error{
			Kind: InvalidParameter,
			Op:   op,
			Err:  fmt.Errorf("%w: %d not in [0, %d]", ErrIndexOutOfRange, start, len(base.pts)),
		}
	}
	if err := g.validate(op); err != nil {
		return Shape{}, err
	}
	sub := g.points()
	out := make([]Point, 0, len(base.pts)+len(sub))
	out = append(out, base.pts[:start]...)
	out = append(out, sub...)
	out = append(out, base.pts[start:]...)
	return Shape{pts: out}, nil
}
