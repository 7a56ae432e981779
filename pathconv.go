package g2d

import (
	"fmt"

	"github.com/gogpu/g2d/backend"
)

// buildPath converts a shape outline to a backend path. The fill mode
// is left at its default; filling sets it from the path's winding rule.
func buildPath(shape Shape) *backend.Path {
	bp := backend.NewPath()
	for _, elem := range shape.PathElements() {
		switch e := elem.(type) {
		case MoveTo:
			bp.MoveTo(float32(e.Point.X), float32(e.Point.Y))
		case LineTo:
			bp.LineTo(float32(e.Point.X), float32(e.Point.Y))
		case QuadTo:
			bp.QuadTo(float32(e.Control.X), float32(e.Control.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case CubicTo:
			bp.CubicTo(float32(e.Control1.X), float32(e.Control1.Y),
				float32(e.Control2.X), float32(e.Control2.Y),
				float32(e.Point.X), float32(e.Point.Y))
		case Close:
			bp.ClosePath()
		default:
			panic(fmt.Sprintf("g2d: unrecognized path element %T", elem))
		}
	}
	return bp
}

// buildFillPath converts a shape for filling, carrying the winding rule
// when the shape is a path.
func buildFillPath(shape Shape) *backend.Path {
	bp := buildPath(shape)
	if p, ok := shape.(*Path); ok && p.Winding() == WindEvenOdd {
		bp.SetFillMode(backend.FillEvenOdd)
	} else {
		bp.SetFillMode(backend.FillWinding)
	}
	return bp
}
