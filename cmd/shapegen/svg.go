package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"honnef.co/go/polygen"
)

// svgMargin is the space around the drawing, in shape units.
const svgMargin = 1

type layer struct {
	shape polygen.Shape
	typ   polygen.ShapeType
	color string
}

// writeSVG draws the layers in order. Shapes use a y-up coordinate system, so
// they are flipped for SVG's y-down one.
func writeSVG(w io.Writer, layers []layer) error {
	var bbox polygen.Rect
	first := true
	for _, l := range layers {
		if l.shape.Len() == 0 {
			continue
		}
		if b := l.shape.Transform(polygen.FlipY).BoundingBox(); first {
			bbox, first = b, false
		} else {
			bbox = bbox.Union(b)
		}
	}
	bbox = bbox.Inflate(svgMargin, svgMargin)

	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="%s %s %s %s">`+"\n",
		num(bbox.X0), num(bbox.Y0), num(bbox.Width()), num(bbox.Height()))
	for _, l := range layers {
		d := pathData(l.shape, l.typ)
		if d == "" {
			continue
		}
		if l.typ == polygen.Polygon {
			fmt.Fprintf(bw, `  <path d="%s" fill="%s" fill-rule="evenodd" stroke="black" stroke-width="0.1"/>`+"\n", d, l.color)
		} else {
			fmt.Fprintf(bw, `  <path d="%s" fill="none" stroke="%s" stroke-width="0.2"/>`+"\n", d, l.color)
		}
	}
	bw.WriteString("</svg>\n")
	return bw.Flush()
}

func pathData(s polygen.Shape, typ polygen.ShapeType) string {
	var b strings.Builder
	for el := range polygen.Transform(s.PathElements(typ), polygen.FlipY) {
		if b.Len() > 0 {
			b.WriteByte(' ')
		}
		switch el.Kind {
		case polygen.MoveToKind:
			fmt.Fprintf(&b, "M%s,%s", num(el.P0.X), num(el.P0.Y))
		case polygen.LineToKind:
			fmt.Fprintf(&b, "L%s,%s", num(el.P0.X), num(el.P0.Y))
		case polygen.ClosePathKind:
			b.WriteByte('Z')
		}
	}
	return b.String()
}

// num formats f with at most four decimals.
func num(f float64) string {
	s := strconv.FormatFloat(f, 'f', 4, 64)
	s = strings.TrimRight(s, "0")
	s = strings.TrimSuffix(s, ".")
	if s == "-0" {
		return "0"
	}
	return s
}
