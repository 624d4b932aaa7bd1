package polygen

import (
	"math"
)

// DefaultDetailBudget is the total number of points distributed over all
// corners of a shape when no explicit corner detail is given.
const DefaultDetailBudget = 32

// DefaultCornerDetail returns the number of points per rounded corner for a
// shape with verticesCount vertices, spreading budget points over all
// corners. Every corner gets at least two points.
func DefaultCornerDetail(verticesCount, budget int) int {
	if verticesCount <= 0 {
		return max(budget, 2)
	}
	return max(budget/verticesCount, 2)
}

// CornerRange selects a contiguous, possibly wrapping, range of vertices.
type CornerRange struct {
	// Start is the index of the first vertex. Negative values count from the
	// end.
	Start int
	// Length is the number of vertices. Negative values count from the end,
	// so that -1 selects all vertices from Start onwards and wraps around.
	Length int
	// LimitEndingSlopes limits the rounding of the first and last vertex of
	// the range to half of their edges towards vertices outside the range.
	// It has no effect when the range covers the whole shape.
	LimitEndingSlopes bool
}

// AllCorners selects every vertex of a shape.
var AllCorners = CornerRange{Start: 0, Length: -1, LimitEndingSlopes: true}

// Resolve returns the normalized start index and the number of vertices
// covered by the range for a shape with n vertices.
func (r CornerRange) Resolve(n int) (start, length int) {
	if n == 0 {
		return 0, 0
	}
	start = r.Start % n
	if start < 0 {
		start += n
	}
	length = r.Length
	if length < 0 {
		length = n + 1 + length
	}
	return start, min(max(length, 0), n)
}

// RoundingOptions configures [AddRoundedCornersOpt].
type RoundingOptions struct {
	// CornerSize is the distance from each vertex, along its edges, at which
	// the rounding starts.
	CornerSize float64
	// Detail is the number of points each rounded vertex is replaced with.
	// Zero derives the detail from DetailBudget using DefaultCornerDetail.
	Detail int
	// DetailBudget is used when Detail is zero. Zero means
	// DefaultDetailBudget.
	DetailBudget int
	Range        CornerRange
}

// AddRoundedCorners replaces the vertices of shape that are selected by
// startIndex and length with quadratic Bézier approximations of a rounded
// corner. See [CornerRange] for the meaning of startIndex, length and
// limitEndingSlopes.
//
// Each rounded vertex v is replaced by cornerDetail points on the curve from
// v + cornerSize·dirPrev, through the control point v, to
// v + cornerSize·dirNext, where dirPrev and dirNext point along the edges
// towards the neighboring vertices. cornerDetail == 0 selects
// [DefaultCornerDetail] with [DefaultDetailBudget].
//
// Corner sizes that exceed the available edge length are clamped: rounding
// never extends past the middle of an edge whose other end is rounded, too,
// or that ends at a range boundary with limitEndingSlopes set. Otherwise it
// may extend up to the full length of the edge.
func AddRoundedCorners(
	shape Shape,
	cornerSize float64,
	cornerDetail int,
	startIndex, length int,
	limitEndingSlopes bool,
) (Shape, error) {
	return AddRoundedCornersOpt(shape, RoundingOptions{
		CornerSize: cornerSize,
		Detail:     cornerDetail,
		Range: CornerRange{
			Start:             startIndex,
			Length:            length,
			LimitEndingSlopes: limitEndingSlopes,
		},
	})
}

// AddRoundedCornersOpt is like [AddRoundedCorners] but takes its parameters
// as a struct.
func AddRoundedCornersOpt(shape Shape, opts RoundingOptions) (Shape, error) {
	const op = "AddRoundedCorners"
	if math.IsNaN(opts.CornerSize) || math.IsInf(opts.CornerSize, 0) || opts.CornerSize < 0 {
		return Shape{}, invalidf(op, "corner size must be finite and non-negative, got %g", opts.CornerSize)
	}
	pts := shape.pts
	n := len(pts)
	detail := opts.Detail
	switch {
	case detail < 0:
		return Shape{}, invalidf(op, "corner detail must not be negative, got %d", detail)
	case detail == 0:
		budget := opts.DetailBudget
		if budget == 0 {
			budget = DefaultDetailBudget
		}
		if budget < 0 {
			return Shape{}, invalidf(op, "cannot derive corner detail from budget %d", budget)
		}
		detail = DefaultCornerDetail(n, budget)
	}

	start, length := opts.Range.Resolve(n)
	if length == 0 || opts.CornerSize == 0 {
		return Shape{pts: append([]Point(nil), pts...)}, nil
	}
	inRange := func(i int) bool {
		return ((i-start)%n+n)%n < length
	}
	whole := length == n

	// reach returns how far a rounded vertex may extend along an edge of
	// length l towards its neighbor nb.
	reach := func(l float64, nb int) float64 {
		if inRange(nb) || (!whole && opts.Range.LimitEndingSlopes) {
			return l / 2
		}
		return l
	}

	out := make([]Point, 0, n*detail)
	for i, v := range pts {
		if !inRange(i) {
			out = append(out, v)
			continue
		}
		prev, next := (i-1+n)%n, (i+1)%n
		ePrev := Line{v, pts[prev]}
		eNext := Line{v, pts[next]}
		sPrev := min(opts.CornerSize, reach(ePrev.Length(), prev))
		sNext := min(opts.CornerSize, reach(eNext.Length(), next))
		if sPrev == 0 && sNext == 0 {
			out = append(out, v)
			continue
		}
		q := QuadBez{
			P0: v.Translate(ePrev.Direction().Mul(sPrev)),
			P1: v,
			P2: v.Translate(eNext.Direction().Mul(sNext)),
		}
		out = append(out, q.Samples(detail)...)
	}
	return Shape{pts: out}, nil
}
