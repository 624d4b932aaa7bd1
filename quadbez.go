package polygen

// QuadBez is a quadratic Bézier curve.
//
// Rounded corners are quadratic Béziers whose control point P1 is the
// original, sharp vertex.
type QuadBez struct {
	P0 Point
	P1 Point
	P2 Point
}

// Eval returns the point at parameter t, using de Casteljau's construction.
func (q QuadBez) Eval(t float64) Point {
	return q.P0.Lerp(q.P1, t).Lerp(q.P1.Lerp(q.P2, t), t)
}

// Samples returns n points evaluated at evenly spaced parameters, starting
// at P0 and ending at P2. A single sample is the curve's midpoint.
func (q QuadBez) Samples(n int) []Point {
	switch {
	case n <= 0:
		return nil
	case n == 1:
		return []Point{q.Eval(0.5)}
	}
	out := make([]Point, n)
	out[0] = q.P0
	for i := 1; i < n-1; i++ {
		out[i] = q.Eval(float64(i) / float64(n-1))
	}
	out[n-1] = q.P2
	return out
}

func (q QuadBez) Transform(aff Affine) QuadBez {
	return QuadBez{q.P0.Transform(aff), q.P1.Transform(aff), q.P2.Transform(aff)}
}
