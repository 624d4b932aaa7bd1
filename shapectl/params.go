package shapectl

import (
	"fmt"
	"math"
	"slices"

	"honnef.co/go/polygen"
)

// Params are the parameters a controller generates its shape from.
type Params struct {
	// VerticesCount is the number of vertices of the base shape. See
	// [polygen.Generator] for the special values 1 and 2.
	VerticesCount int
	// Sizes are the distances of the vertices from the center, cycled over
	// the vertices.
	Sizes []float64
	// RingRatio is the thickness of the shape, in proportion from its outer
	// edge to the center. 1 produces a solid shape, 0 an outline and
	// negative values extend the ring outwards.
	RingRatio float64

	CornerSize   float64
	CornerDetail int
	CornerRange  polygen.CornerRange

	// ArcStart and ArcAngle are in radians. The arc ends at
	// ArcStart+ArcAngle.
	ArcStart      float64
	ArcAngle      float64
	ClosingMethod polygen.ClosingMethod
	// RoundArcEnds includes the vertices at both ends of a partial arc in
	// corner rounding when the corner range spans the whole shape.
	RoundArcEnds bool

	OffsetPosition polygen.Vec2
	OffsetRotation float64
	OffsetScale    polygen.Vec2
	OffsetSkew     float64

	// Inserts are generated and spliced into the shape after corner
	// rounding.
	Inserts []Insert
}

// Insert is a shape that is generated and spliced into another one at index
// Start.
type Insert struct {
	Start     int
	Generator polygen.Generator
}

// DefaultParams returns the parameters of a square with a radius of 10.
func DefaultParams() Params {
	return Params{
		VerticesCount: 4,
		Sizes:         []float64{10},
		RingRatio:     1,
		CornerRange:   polygen.AllCorners,
		ArcAngle:      2 * math.Pi,
		ClosingMethod: polygen.Slice,
		OffsetScale:   polygen.Vec(1, 1),
	}
}

// ArcEnd returns the angle at which the arc ends.
func (p Params) ArcEnd() float64 {
	return p.ArcStart + p.ArcAngle
}

// Offset returns the offset transform built from the offset components.
func (p Params) Offset() polygen.Affine {
	return polygen.Offset(p.OffsetPosition, p.OffsetRotation, p.OffsetScale, p.OffsetSkew)
}

// Type returns the type of shape the parameters describe.
func (p Params) Type() polygen.ShapeType {
	switch {
	case p.VerticesCount == 2:
		return polygen.Multiline
	case p.RingRatio == 0:
		return polygen.Polyline
	default:
		return polygen.Polygon
	}
}

func (p Params) clone() Params {
	p.Sizes = slices.Clone(p.Sizes)
	p.Inserts = slices.Clone(p.Inserts)
	for i := range p.Inserts {
		p.Inserts[i].Generator.Sizes = slices.Clone(p.Inserts[i].Generator.Sizes)
	}
	return p
}

// banded reports whether the ring is a band along a partial arc rather than
// a closed outline with a hole.
func (p Params) banded() bool {
	return p.RingRatio != 0 && p.RingRatio != 1 && !polygen.IsFullCircle(p.ArcStart, p.ArcEnd())
}

func (p Params) generator() polygen.Generator {
	return polygen.Generator{
		VerticesCount: p.VerticesCount,
		Sizes:         p.Sizes,
		Offset:        p.Offset(),
		ArcStart:      p.ArcStart,
		ArcEnd:        p.ArcEnd(),
		// The center of a band would be scaled onto itself.
		AddCentralPoint: p.ClosingMethod == polygen.Slice && !p.banded(),
		ClosingMethod:   p.ClosingMethod,
	}
}

// Build generates the shape described by the parameters.
//
// The base shape is generated first and its corners are rounded. Unless
// RoundArcEnds is set, rounding a partial arc over the whole corner range only
// affects the vertices strictly between both ends of the arc. The inserts are
// spliced in next, and finally the ring is added. The ring of a full circle
// is a bridged polygon with a hole. The ring of a partial arc is a band from
// the arc to its scaled copy, without a central point whatever the closing
// method.
func (p Params) Build() (polygen.Shape, polygen.ShapeType, error) {
	const op = "Build"
	typ := p.Type()
	if math.IsNaN(p.RingRatio) || p.RingRatio > 1 {
		return polygen.Shape{}, typ, &polygen.Error{
			Kind: polygen.InvalidParameter,
			Op:   op,
			Err:  fmt.Errorf("ring ratio must not exceed 1, got %g", p.RingRatio),
		}
	}

	gen := p.generator()
	shape, err := gen.Shape()
	if err != nil {
		return polygen.Shape{}, typ, err
	}

	if typ != polygen.Multiline && p.CornerSize != 0 && shape.Len() >= 3 {
		opts := polygen.RoundingOptions{
			CornerSize: p.CornerSize,
			Detail:     p.CornerDetail,
			Range:      p.CornerRange,
		}
		if opts.Detail == 0 {
			n := p.VerticesCount
			if n == 1 {
				n = polygen.DefaultCircleVertices
			}
			opts.Detail = polygen.DefaultCornerDetail(n, polygen.DefaultDetailBudget)
		}
		full := polygen.IsFullCircle(gen.ArcStart, gen.ArcEnd)
		if _, length := opts.Range.Resolve(shape.Len()); !full && !p.RoundArcEnds && length == shape.Len() {
			arc := shape.Len()
			if gen.AddCentralPoint {
				arc--
			}
			opts.Range = polygen.CornerRange{Start: 1, Length: max(arc-2, 0), LimitEndingSlopes: true}
		}
		shape, err = polygen.AddRoundedCornersOpt(shape, opts)
		if err != nil {
			return polygen.Shape{}, typ, err
		}
	}

	for _, ins := range p.Inserts {
		shape, err = ins.Generator.Insert(shape, ins.Start)
		if err != nil {
			return polygen.Shape{}, typ, err
		}
	}

	if typ == polygen.Multiline {
		return shape, typ, nil
	}
	center := p.OffsetPosition
	switch {
	case p.RingRatio == 1:
	case p.RingRatio == 0:
		if shape.Len() > 0 {
			shape = polygen.NewShape(append(shape.Points(), shape.At(0))...)
		}
	case p.banded():
		shape = polygen.RingBand(shape, 1-p.RingRatio, polygen.Point(center))
	default:
		shape = polygen.RingPolygon(shape, 1-p.RingRatio, polygen.Point(center))
	}
	return shape, typ, nil
}
