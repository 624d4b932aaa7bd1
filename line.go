package polygen

// Line is the segment from P0 to P1. The edges of a shape are lines.
type Line struct {
	P0 Point
	P1 Point
}

func (l Line) Length() float64 { return l.P1.Sub(l.P0).Hypot() }

// Direction returns the unit vector pointing from P0 to P1, or the zero
// vector if the line has no length.
func (l Line) Direction() Vec2 {
	d := l.P1.Sub(l.P0)
	if d.Hypot2() == 0 {
		return Vec2{}
	}
	return d.Normalize()
}

func (l Line) Transform(aff Affine) Line {
	return Line{l.P0.Transform(aff), l.P1.Transform(aff)}
}

func (l Line) IsInf() bool { return l.P0.IsInf() || l.P1.IsInf() }
func (l Line) IsNaN() bool { return l.P0.IsNaN() || l.P1.IsNaN() }

// Crosses reports whether the two segments cross each other at a single
// point that is interior to both of them. Segments that merely touch, share
// an endpoint or overlap collinearly do not cross.
func (l Line) Crosses(o Line) bool {
	const epsilon = 1e-9
	straddles := func(a, b float64) bool {
		return (a > epsilon && b < -epsilon) || (a < -epsilon && b > epsilon)
	}
	return straddles(orient(o.P0, o.P1, l.P0), orient(o.P0, o.P1, l.P1)) &&
		straddles(orient(l.P0, l.P1, o.P0), orient(l.P0, l.P1, o.P1))
}

// orient returns twice the signed area of the triangle (a, b, c). It is
// positive when c lies to the left of a→b in a y-up space.
func orient(a, b, c Point) float64 {
	return b.Sub(a).Cross(c.Sub(a))
}
