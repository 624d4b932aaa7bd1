// Package polygen generates 2D shapes from compact, parametric descriptions.
//
// A shape is described by a number of vertices, a list of radial sizes that
// is cycled over the vertices, the arc of a full turn that is kept, and an
// affine offset. From such a description, this package produces plain point
// sequences that can be drawn as polygons, polylines, or sets of disjoint
// lines, and that can be decomposed into convex pieces for use as collision
// shapes.
//
// # Shapes
//
// [Shape] is an immutable sequence of points. Every operation that changes a
// shape returns a new one, so shapes can be shared without copying. The
// [ShapeType] of a shape determines how its points are interpreted, see
// [Shape.PathElements].
//
// # Operations
//
// The operations of this package compose:
//
//   - [CreateShape] and [Generator] produce a base shape.
//   - [AddShape] splices a generated shape into another one.
//   - [AddRing] and [RingPolygon] add a scaled copy of a shape's points, for
//     outlines and shapes with holes.
//   - [AddRoundedCorners] replaces vertices with quadratic Bézier
//     approximations of rounded corners.
//   - [Decompose] partitions a polygon into convex pieces.
//
// All operations report failures as [*Error] values, which can be matched
// against [ErrInvalidParameter] and [ErrDegenerateGeometry] using
// [errors.Is].
//
// # Coordinate system
//
// Angles are in radians and measured from the positive x axis towards the
// positive y axis. In a y-down coordinate system, as is common for graphics,
// positive angles are clockwise rotations. [Degrees] and [Radians] convert
// between the two units.
package polygen
