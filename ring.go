package polygen

// ringFactor returns the factor by which points are scaled towards the center.
// Negative proportions scale away from the center.
func ringFactor(lengthProportion float64) float64 {
	if lengthProportion < 0 {
		return 1 - lengthProportion
	}
	return lengthProportion
}

// AddRing returns a copy of shape, followed by a second copy of its points that
// has been scaled towards center by lengthProportion.
//
// For a proportion k >= 0, each ring point is center + (p - center) * k, so a
// proportion of 0 collapses the ring onto the center and a proportion of 1
// reproduces the original points exactly. Negative proportions extend the
// ring outwards, scaling by 1 - k instead.
//
// If closeRing is set, the first point of shape is repeated once after the
// original points, before the ring points. The ring points are in the same
// order as the original points; use [RingPolygon] to get a shape that can be
// filled.
func AddRing(shape Shape, lengthProportion float64, center Point, closeRing bool) Shape {
	n := len(shape.pts)
	out := make([]Point, 0, 2*n+1)
	out = append(out, shape.pts...)
	if closeRing && n > 0 {
		out = append(out, shape.pts[0])
	}
	return Shape{pts: appendRing(out, shape.pts, ringFactor(lengthProportion), center)}
}

func appendRing(dst, pts []Point, k float64, center Point) []Point {
	if k == 1 {
		return append(dst, pts...)
	}
	for _, pt := range pts {
		dst = append(dst, center.Translate(pt.Sub(center).Mul(k)))
	}
	return dst
}

// RingPolygon returns a single polygon describing the area between shape and
// its copy scaled towards center by lengthProportion, as computed by
// [AddRing].
//
// The outer points are followed by the first outer point, the ring points in
// reverse order, and finally the first ring point again. This bridges both
// outlines at their first points, producing a polygon whose inner outline
// winds in the opposite direction of the outer one.
func RingPolygon(shape Shape, lengthProportion float64, center Point) Shape {
	n := len(shape.pts)
	if n == 0 {
		return Shape{}
	}
	ring := appendRing(make([]Point, 0, n), shape.pts, ringFactor(lengthProportion), center)
	out := make([]Point, 0, 2*n+2)
	out = append(out, shape.pts...)
	out = append(out, shape.pts[0], ring[0])
	for i := n - 1; i > 0; i-- {
		out = append(out, ring[i])
	}
	out = append(out, ring[0])
	return Shape{pts: out}
}

// RingBand returns the polygon between an open outline and its copy scaled
// towards center by lengthProportion, as computed by [AddRing]. The outer
// points are followed by the ring points in reverse order, so both copies
// are joined at their ends.
//
// This is the fillable form of a ring around a partial arc, whose outline
// doesn't enclose center.
func RingBand(shape Shape, lengthProportion float64, center Point) Shape {
	n := len(shape.pts)
	out := make([]Point, 0, 2*n)
	out = append(out, shape.pts...)
	ring := appendRing(make([]Point, 0, n), shape.pts, ringFactor(lengthProportion), center)
	for i := n - 1; i >= 0; i-- {
		out = append(out, ring[i])
	}
	return Shape{pts: out}
}
