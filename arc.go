package polygen

import (
	"math"
)

// AngleEpsilon is the tolerance used when comparing angles, in radians.
const AngleEpsilon = 1e-6

// Degrees converts radians to degrees.
func Degrees(rad float64) float64 {
	return rad * (180 / math.Pi)
}

// Radians converts degrees to radians.
func Radians(deg float64) float64 {
	return deg * (math.Pi / 180)
}

// IsFullCircle reports whether the arc from start to end, in radians, spans a
// whole number of turns. Empty arcs don't span a full circle.
func IsFullCircle(start, end float64) bool {
	span := math.Abs(end - start)
	if span < AngleEpsilon {
		return false
	}
	r := math.Mod(span, 2*math.Pi)
	return r < AngleEpsilon || 2*math.Pi-r < AngleEpsilon
}

// IsEmptyArc reports whether the arc from start to end has no extent.
func IsEmptyArc(start, end float64) bool {
	return math.Abs(end-start) < AngleEpsilon
}

// polar returns the point at angle th and distance r from the origin, mapped
// through aff.
func polar(aff Affine, th, r float64) Point {
	return Point(VecFromAngle(th).Mul(r)).Transform(aff)
}

// sampleArc returns points along the arc from angle th0 to angle th1,
// excluding th0 and including th1. The distance from the origin is
// interpolated linearly from r0 to r1. No two consecutive samples are more
// than maxStep radians apart.
func sampleArc(aff Affine, th0, th1, r0, r1, maxStep float64) []Point {
	sweep := th1 - th0
	n := int(math.Ceil(math.Abs(sweep)/maxStep - 1e-9))
	if n < 1 {
		n = 1
	}
	out := make([]Point, 0, n)
	for i := 1; i < n; i++ {
		t := float64(i) / float64(n)
		out = append(out, polar(aff, th0+sweep*t, r0+(r1-r0)*t))
	}
	return append(out, polar(aff, th1, r1))
}
