package polygen

import (
	"fmt"
	"math"
)

// Vec2 is a displacement in the plane, such as the direction of an edge or
// the offset of a ring point from its center.
type Vec2 struct {
	X float64
	Y float64
}

// Vec returns the vector ⟨x, y⟩.
func Vec(x, y float64) Vec2 { return Vec2{X: x, Y: y} }

// VecFromAngle returns the unit vector at angle th, in radians, measured
// counter-clockwise from ⟨1, 0⟩ in a y-up coordinate system.
func VecFromAngle(th float64) Vec2 {
	y, x := math.Sincos(th)
	return Vec2{X: x, Y: y}
}

func (v Vec2) String() string {
	return fmt.Sprintf("⟨%g, %g⟩", v.X, v.Y)
}

func (v Vec2) Add(o Vec2) Vec2 { return Vec2{X: v.X + o.X, Y: v.Y + o.Y} }
func (v Vec2) Sub(o Vec2) Vec2 { return Vec2{X: v.X - o.X, Y: v.Y - o.Y} }
func (v Vec2) Mul(f float64) Vec2 { return Vec2{X: v.X * f, Y: v.Y * f} }
func (v Vec2) Div(f float64) Vec2 { return Vec2{X: v.X / f, Y: v.Y / f} }
func (v Vec2) Negate() Vec2       { return Vec2{X: -v.X, Y: -v.Y} }

func (v Vec2) Dot(o Vec2) float64 { return v.X*o.X + v.Y*o.Y }

// Cross returns the z component of the cross product of v and o. It is
// positive if o is counter-clockwise of v.
func (v Vec2) Cross(o Vec2) float64 { return v.X*o.Y - v.Y*o.X }

// Hypot returns the length of v.
func (v Vec2) Hypot() float64 { return math.Hypot(v.X, v.Y) }

// Hypot2 returns the squared length of v.
func (v Vec2) Hypot2() float64 { return v.Dot(v) }

// Angle returns atan2(y, x).
func (v Vec2) Angle() float64 { return math.Atan2(v.Y, v.X) }

// Normalize returns the unit vector in the direction of v. The zero vector
// has no direction and produces NaNs.
func (v Vec2) Normalize() Vec2 { return v.Div(v.Hypot()) }

func (v Vec2) IsInf() bool { return math.IsInf(v.X, 0) || math.IsInf(v.Y, 0) }
func (v Vec2) IsNaN() bool { return math.IsNaN(v.X) || math.IsNaN(v.Y) }
