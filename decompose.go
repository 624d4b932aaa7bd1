package polygen

import (
	"math"
	"slices"
)

// IsConvex reports whether pts describes a convex polygon.
//
// Collinear edges are allowed, but the polygon must turn in a single
// direction and wind around exactly once, which rules out self-intersecting
// stars. Fewer than three points never form a convex polygon.
func IsConvex(pts []Point) bool {
	n := len(pts)
	if n < 3 {
		return false
	}
	tol := crossTolerance(pts)
	var sign float64
	var turning float64
	for i := range n {
		p0, p1, p2 := pts[i], pts[(i+1)%n], pts[(i+2)%n]
		e1, e2 := p1.Sub(p0), p2.Sub(p1)
		if e1.Hypot2() == 0 || e2.Hypot2() == 0 {
			continue
		}
		c := e1.Cross(e2)
		if math.Abs(c) <= tol {
			if e1.Dot(e2) < 0 {
				// The outline doubles back on itself.
				return false
			}
			continue
		}
		if sign == 0 {
			sign = math.Copysign(1, c)
		} else if math.Copysign(1, c) != sign {
			return false
		}
		turning += math.Atan2(c, e1.Dot(e2))
	}
	if sign == 0 {
		return false
	}
	return math.Abs(math.Abs(turning)-2*math.Pi) < 1e-6
}

// crossTolerance returns the magnitude below which cross products of edges of
// pts are treated as zero.
func crossTolerance(pts []Point) float64 {
	if len(pts) == 0 {
		return 0
	}
	bbox := Bounds(pts)
	d := max(bbox.Width(), bbox.Height(), 1)
	return 1e-10 * d * d
}

// cleanOutline removes consecutive duplicates, including the duplicate of the
// first point at the end, and vertices on a straight line between their
// neighbors. Vertices at which the outline doubles back are kept.
func cleanOutline(pts []Point, tol float64) []Point {
	out := make([]Point, 0, len(pts))
	for _, pt := range pts {
		if len(out) > 0 && out[len(out)-1] == pt {
			continue
		}
		out = append(out, pt)
	}
	for len(out) > 1 && out[0] == out[len(out)-1] {
		out = out[:len(out)-1]
	}
	for changed := true; changed && len(out) >= 3; {
		changed = false
		for i := 0; i < len(out) && len(out) >= 3; i++ {
			n := len(out)
			p0, p1, p2 := out[(i-1+n)%n], out[i], out[(i+1)%n]
			e1, e2 := p1.Sub(p0), p2.Sub(p1)
			if e1.Hypot2() == 0 || (math.Abs(e1.Cross(e2)) <= tol && e1.Dot(e2) > 0) {
				out = slices.Delete(out, i, i+1)
				i--
				changed = true
			}
		}
	}
	return out
}

// Decompose partitions the polygon described by shape into convex pieces whose
// union is the polygon.
//
// Duplicate and collinear points are removed first. A polygon that is convex
// after this cleanup is returned as the only piece. Other polygons are
// triangulated by ear clipping, always clipping the first ear in point order,
// and adjacent pieces are then merged as long as the result stays convex,
// again preferring the first pair in order. The result is deterministic.
// Every piece has the same winding as the input.
//
// Decompose returns a [DegenerateGeometry] error for polygons with fewer than
// three distinct points, without area, or with crossing edges.
func Decompose(shape Shape) (Partition, error) {
	const op = "Decompose"
	if shape.IsNaN() || shape.IsInf() {
		return nil, degeneratef(op, "shape has non-finite points")
	}
	tol := crossTolerance(shape.pts)
	pts := cleanOutline(shape.pts, tol)
	if len(pts) < 3 {
		return nil, degeneratef(op, "need at least 3 distinct points, got %d", len(pts))
	}
	area := signedArea(pts)
	if math.Abs(area) <= tol {
		return nil, degeneratef(op, "polygon has no area")
	}
	if IsConvex(pts) {
		return Partition{{pts: pts}}, nil
	}

	ccw := area > 0
	if !ccw {
		pts = slices.Clone(pts)
		slices.Reverse(pts)
	}
	if i, j, ok := findCrossing(pts); ok {
		return nil, degeneratef(op, "edges %d and %d cross", i, j)
	}
	tris, ok := earClip(pts, tol)
	if !ok {
		return nil, degeneratef(op, "polygon cannot be triangulated")
	}
	pieces := mergeConvex(pts, tris, tol)

	out := make(Partition, 0, len(pieces))
	for _, idx := range pieces {
		piece := make([]Point, len(idx))
		for i, j := range idx {
			piece[i] = pts[j]
		}
		piece = cleanOutline(piece, tol)
		if len(piece) < 3 || math.Abs(signedArea(piece)) <= tol {
			return nil, degeneratef(op, "decomposition produced a piece without area")
		}
		if !ccw {
			slices.Reverse(piece)
		}
		out = append(out, Shape{pts: piece})
	}
	return out, nil
}

// findCrossing returns the indices of the first pair of non-adjacent edges
// that cross each other.
func findCrossing(pts []Point) (int, int, bool) {
	n := len(pts)
	for i := range n {
		a := Line{pts[i], pts[(i+1)%n]}
		for j := i + 2; j < n; j++ {
			if i == 0 && j == n-1 {
				continue
			}
			if a.Crosses(Line{pts[j], pts[(j+1)%n]}) {
				return i, j, true
			}
		}
	}
	return 0, 0, false
}

// earClip triangulates the anti-clockwise polygon pts. Triangles are returned
// as indices into pts, wound anti-clockwise.
func earClip(pts []Point, tol float64) ([][]int, bool) {
	idx := make([]int, len(pts))
	for i := range idx {
		idx[i] = i
	}
	var tris [][]int
	for len(idx) > 3 {
		k := findEar(pts, idx, tol, true)
		if k == -1 {
			// Points touching a candidate's edges block it in the strict
			// pass, which fails for outlines that touch themselves.
			k = findEar(pts, idx, tol, false)
		}
		if k == -1 {
			return nil, false
		}
		m := len(idx)
		i0, i1, i2 := idx[(k-1+m)%m], idx[k], idx[(k+1)%m]
		if orient(pts[i0], pts[i1], pts[i2]) > tol {
			tris = append(tris, []int{i0, i1, i2})
		}
		idx = slices.Delete(idx, k, k+1)
	}
	if orient(pts[idx[0]], pts[idx[1]], pts[idx[2]]) > tol {
		tris = append(tris, idx)
	}
	return tris, len(tris) > 0
}

// findEar returns the position in idx of the first vertex that can be clipped,
// or -1. Vertices without a turn are always clippable and produce no triangle.
// If inclusive is set, points on the edges of a candidate triangle block it.
func findEar(pts []Point, idx []int, tol float64, inclusive bool) int {
	m := len(idx)
	for k := range m {
		a, b, c := pts[idx[(k-1+m)%m]], pts[idx[k]], pts[idx[(k+1)%m]]
		o := orient(a, b, c)
		if math.Abs(o) <= tol {
			return k
		}
		if o < 0 {
			continue
		}
		blocked := false
		for j, i := range idx {
			if j == k || j == (k-1+m)%m || j == (k+1)%m {
				continue
			}
			p := pts[i]
			if p == a || p == b || p == c {
				continue
			}
			if inTriangle(p, a, b, c, tol, inclusive) {
				blocked = true
				break
			}
		}
		if !blocked {
			return k
		}
	}
	return -1
}

// inTriangle reports whether p lies inside the anti-clockwise triangle
// (a, b, c).
func inTriangle(p, a, b, c Point, tol float64, inclusive bool) bool {
	d0, d1, d2 := orient(a, b, p), orient(b, c, p), orient(c, a, p)
	if inclusive {
		return d0 >= -tol && d1 >= -tol && d2 >= -tol
	}
	return d0 > tol && d1 > tol && d2 > tol
}

// mergeConvex repeatedly merges pairs of pieces that share an edge if the
// union is convex (Hertel–Mehlhorn). Pairs are considered in order and the
// first mergeable pair is merged before scanning again.
func mergeConvex(pts []Point, pieces [][]int, tol float64) [][]int {
	for {
		merged := false
	scan:
		for i := range pieces {
			for j := i + 1; j < len(pieces); j++ {
				if u, ok := mergePieces(pts, pieces[i], pieces[j], tol); ok {
					pieces[i] = u
					pieces = slices.Delete(pieces, j, j+1)
					merged = true
					break scan
				}
			}
		}
		if !merged {
			return pieces
		}
	}
}

// mergePieces returns the union of the anti-clockwise pieces a and b if they
// share an edge and their union is convex.
func mergePieces(pts []Point, a, b []int, tol float64) ([]int, bool) {
	na, nb := len(a), len(b)
	for x := range na {
		s, t := a[x], a[(x+1)%na]
		for y := range nb {
			if b[y] != t || b[(y+1)%nb] != s {
				continue
			}
			// Walk a from t to s, then b from s back to t, skipping both.
			u := make([]int, 0, na+nb-2)
			for i := range na {
				u = append(u, a[(x+1+i)%na])
			}
			for i := 2; i < nb; i++ {
				u = append(u, b[(y+i)%nb])
			}
			if !convexCCW(pts, u, tol) {
				return nil, false
			}
			return u, true
		}
	}
	return nil, false
}

// convexCCW reports whether the anti-clockwise polygon formed by pts[idx] is
// convex. Straight vertices are allowed; vertices at which the outline
// doubles back are not.
func convexCCW(pts []Point, idx []int, tol float64) bool {
	n := len(idx)
	for i := range n {
		p0, p1, p2 := pts[idx[(i-1+n)%n]], pts[idx[i]], pts[idx[(i+1)%n]]
		e1, e2 := p1.Sub(p0), p2.Sub(p1)
		c := e1.Cross(e2)
		if c < -tol {
			return false
		}
		if c <= tol && e1.Dot(e2) < 0 {
			return false
		}
	}
	return true
}
