package polygen

import (
	"fmt"
	"iter"
)

type PathElementKind int

const (
	MoveToKind PathElementKind = iota + 1
	LineToKind
	ClosePathKind
)

// PathElement is a drawing command, as consumed by PostScript-style drawing
// APIs.
//
// A valid path has MoveTo at the beginning of each subpath.
type PathElement struct {
	Kind PathElementKind
	P0   Point
}

func (el PathElement) String() string {
	switch el.Kind {
	case MoveToKind:
		return fmt.Sprintf("MoveTo(%s)", el.P0)
	case LineToKind:
		return fmt.Sprintf("LineTo(%s)", el.P0)
	case ClosePathKind:
		return "ClosePath()"
	default:
		return fmt.Sprintf("PathElement(%d)", el.Kind)
	}
}

func (el PathElement) Transform(aff Affine) PathElement {
	if el.Kind != ClosePathKind {
		el.P0 = el.P0.Transform(aff)
	}
	return el
}

func MoveTo(pt Point) PathElement {
	return PathElement{Kind: MoveToKind, P0: pt}
}

func LineTo(pt Point) PathElement {
	return PathElement{Kind: LineToKind, P0: pt}
}

func ClosePath() PathElement {
	return PathElement{Kind: ClosePathKind}
}

// PathElements returns the drawing commands for a shape of type typ.
//
// Polygons are emitted as a single closed subpath, polylines as a single open
// subpath, and multilines as one subpath per pair of points. A trailing
// unpaired point of a multiline is ignored.
func (s Shape) PathElements(typ ShapeType) iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		if len(s.pts) == 0 {
			return
		}
		switch typ {
		case Multiline:
			for i := 0; i+1 < len(s.pts); i += 2 {
				if !yield(MoveTo(s.pts[i])) || !yield(LineTo(s.pts[i+1])) {
					return
				}
			}
		default:
			if !yield(MoveTo(s.pts[0])) {
				return
			}
			for _, pt := range s.pts[1:] {
				if !yield(LineTo(pt)) {
					return
				}
			}
			if typ == Polygon {
				yield(ClosePath())
			}
		}
	}
}
