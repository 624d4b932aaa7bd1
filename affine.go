package polygen

import (
	"iter"
	"math"
	"slices"

	"golang.org/x/image/math/f64"
)

// Affine is a 2D affine transform. The coefficients (N0, ..., N5) form the
// matrix
//
//	| N0 N2 N4 |
//	| N1 N3 N5 |
//	|  0  0  1 |
//
// so (N0, N1) is the image of the x axis, (N2, N3) the image of the y axis
// and (N4, N5) the image of the origin. Generated shapes are mapped through
// an Affine to place them in the scene.
type Affine struct {
	N0, N1, N2, N3, N4, N5 float64
}

// Identity leaves points unchanged.
var Identity = Affine{1, 0, 0, 1, 0, 0}

// FlipY mirrors points on the x axis, converting between y-up and y-down
// coordinates.
var FlipY = Affine{1, 0, 0, -1, 0, 0}

func Scale(x, y float64) Affine { return Affine{x, 0, 0, y, 0, 0} }
func Translate(v Vec2) Affine   { return Affine{1, 0, 0, 1, v.X, v.Y} }

// Rotate rotates by th radians, turning the positive x axis towards the
// positive y axis.
func Rotate(th float64) Affine {
	sin, cos := math.Sincos(th)
	return Affine{cos, sin, -sin, cos, 0, 0}
}

// Skew shears horizontally by x and vertically by y.
func Skew(x, y float64) Affine { return Affine{1, y, x, 1, 0, 0} }

// Offset returns the transform of a 2D scene node with the given components.
// The x axis is rotated by rotation and the y axis by rotation+skew. Both
// axes are then scaled by scale, and the origin is moved to position. Angles
// are in radians.
//
// Without skew, this is the same as
//
//	Scale(scale.X, scale.Y).ThenRotate(rotation).ThenTranslate(position)
func Offset(position Vec2, rotation float64, scale Vec2, skew float64) Affine {
	xs, xc := math.Sincos(rotation)
	ys, yc := math.Sincos(rotation + skew)
	return Affine{
		xc * scale.X, xs * scale.X,
		-ys * scale.Y, yc * scale.Y,
		position.X, position.Y,
	}
}

// Aff3 converts aff to the row-major matrix used by golang.org/x/image.
func (aff Affine) Aff3() f64.Aff3 {
	return f64.Aff3{
		aff.N0, aff.N2, aff.N4,
		aff.N1, aff.N3, aff.N5,
	}
}

// AffineFromAff3 is the inverse of [Affine.Aff3].
func AffineFromAff3(m f64.Aff3) Affine {
	return Affine{m[0], m[3], m[1], m[4], m[2], m[5]}
}

// Mul returns the transform that applies o first and aff second.
func (aff Affine) Mul(o Affine) Affine {
	return Affine{
		aff.N0*o.N0 + aff.N2*o.N1,
		aff.N1*o.N0 + aff.N3*o.N1,
		aff.N0*o.N2 + aff.N2*o.N3,
		aff.N1*o.N2 + aff.N3*o.N3,
		aff.N0*o.N4 + aff.N2*o.N5 + aff.N4,
		aff.N1*o.N4 + aff.N3*o.N5 + aff.N5,
	}
}

// ThenRotate returns aff followed by Rotate(th).
func (aff Affine) ThenRotate(th float64) Affine { return Rotate(th).Mul(aff) }

// ThenTranslate returns aff followed by Translate(v).
func (aff Affine) ThenTranslate(v Vec2) Affine {
	aff.N4 += v.X
	aff.N5 += v.Y
	return aff
}

// Origin returns the image of (0, 0), which is where generated shapes are
// centered.
func (aff Affine) Origin() Point { return Point{X: aff.N4, Y: aff.N5} }

func (aff Affine) coefficients() []float64 {
	return []float64{aff.N0, aff.N1, aff.N2, aff.N3, aff.N4, aff.N5}
}

func (aff Affine) IsInf() bool {
	return slices.ContainsFunc(aff.coefficients(), func(f float64) bool { return math.IsInf(f, 0) })
}

func (aff Affine) IsNaN() bool {
	return slices.ContainsFunc(aff.coefficients(), math.IsNaN)
}

// Transform maps every element of seq through aff.
func Transform[T interface{ Transform(Affine) T }](seq iter.Seq[T], aff Affine) iter.Seq[T] {
	return func(yield func(T) bool) {
		for v := range seq {
			if !yield(v.Transform(aff)) {
				return
			}
		}
	}
}
