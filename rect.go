package polygen

// Rect is an axis-aligned rectangle from (X0, Y0) to (X1, Y1).
type Rect struct {
	X0, Y0 float64
	X1, Y1 float64
}

// Bounds returns the smallest rectangle containing all of pts. It returns the
// zero rectangle if there are no points.
func Bounds(pts []Point) Rect {
	if len(pts) == 0 {
		return Rect{}
	}
	r := Rect{pts[0].X, pts[0].Y, pts[0].X, pts[0].Y}
	for _, pt := range pts[1:] {
		r.X0, r.X1 = min(r.X0, pt.X), max(r.X1, pt.X)
		r.Y0, r.Y1 = min(r.Y0, pt.Y), max(r.Y1, pt.Y)
	}
	return r
}

func (r Rect) Width() float64  { return r.X1 - r.X0 }
func (r Rect) Height() float64 { return r.Y1 - r.Y0 }
func (r Rect) Area() float64   { return r.Width() * r.Height() }

func (r Rect) Center() Point {
	return Point{X: 0.5 * (r.X0 + r.X1), Y: 0.5 * (r.Y0 + r.Y1)}
}

// Union returns the smallest rectangle containing r and o.
func (r Rect) Union(o Rect) Rect {
	return Rect{min(r.X0, o.X0), min(r.Y0, o.Y0), max(r.X1, o.X1), max(r.Y1, o.Y1)}
}

// Inflate grows r by dx on the left and right and by dy on the top and
// bottom.
func (r Rect) Inflate(dx, dy float64) Rect {
	return Rect{r.X0 - dx, r.Y0 - dy, r.X1 + dx, r.Y1 + dy}
}
