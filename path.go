package g2d

// PathElement represents a single element of a shape outline.
type PathElement interface {
	isPathElement()
}

// MoveTo moves to a point without drawing.
type MoveTo struct {
	Point Point
}

func (MoveTo) isPathElement() {}

// LineTo draws a line to a point.
type LineTo struct {
	Point Point
}

func (LineTo) isPathElement() {}

// QuadTo draws a quadratic Bezier curve.
type QuadTo struct {
	Control Point
	Point   Point
}

func (QuadTo) isPathElement() {}

// CubicTo draws a cubic Bezier curve.
type CubicTo struct {
	Control1 Point
	Control2 Point
	Point    Point
}

func (CubicTo) isPathElement() {}

// Close closes the current subpath.
type Close struct{}

func (Close) isPathElement() {}

// WindingRule determines path-interior membership.
type WindingRule uint8

const (
	// WindNonZero uses the non-zero winding rule.
	WindNonZero WindingRule = iota
	// WindEvenOdd uses the even-odd rule.
	WindEvenOdd
)

// Path is a general shape built from move/line/curve/close elements.
// The zero value is an empty path with the non-zero winding rule.
type Path struct {
	elements []PathElement
	winding  WindingRule
	start    Point // starting point of current subpath
	current  Point // current point
}

// NewPath creates a new empty path.
func NewPath() *Path {
	return &Path{
		elements: make([]PathElement, 0, 16),
	}
}

// MoveTo moves to a point without drawing.
func (p *Path) MoveTo(x, y float64) {
	p.elements = append(p.elements, MoveTo{Point: Pt(x, y)})
	p.start = Pt(x, y)
	p.current = p.start
}

// LineTo draws a line from the current point.
func (p *Path) LineTo(x, y float64) {
	p.elements = append(p.elements, LineTo{Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// QuadraticTo draws a quadratic Bezier curve from the current point.
func (p *Path) QuadraticTo(cx, cy, x, y float64) {
	p.elements = append(p.elements, QuadTo{Control: Pt(cx, cy), Point: Pt(x, y)})
	p.current = Pt(x, y)
}

// CubicTo draws a cubic Bezier curve from the current point.
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	p.elements = append(p.elements, CubicTo{
		Control1: Pt(c1x, c1y),
		Control2: Pt(c2x, c2y),
		Point:    Pt(x, y),
	})
	p.current = Pt(x, y)
}

// Close closes the current subpath.
func (p *Path) Close() {
	p.elements = append(p.elements, Close{})
	p.current = p.start
}

// SetWinding sets the winding rule used when the path is filled.
func (p *Path) SetWinding(rule WindingRule) {
	p.winding = rule
}

// Winding returns the winding rule.
func (p *Path) Winding() WindingRule {
	return p.winding
}

// PathElements implements Shape. The returned slice is the path's
// backing store and must not be modified.
func (p *Path) PathElements() []PathElement {
	return p.elements
}

// Empty reports whether the path has no elements.
func (p *Path) Empty() bool {
	return len(p.elements) == 0
}

// Bounds implements Shape. Curve control points are included, giving
// conservative bounds.
func (p *Path) Bounds() Rect {
	first := true
	var minX, minY, maxX, maxY float64
	grow := func(pt Point) {
		if first {
			minX, maxX = pt.X, pt.X
			minY, maxY = pt.Y, pt.Y
			first = false
			return
		}
		minX = min(minX, pt.X)
		maxX = max(maxX, pt.X)
		minY = min(minY, pt.Y)
		maxY = max(maxY, pt.Y)
	}
	for _, elem := range p.elements {
		switch e := elem.(type) {
		case MoveTo:
			grow(e.Point)
		case LineTo:
			grow(e.Point)
		case QuadTo:
			grow(e.Control)
			grow(e.Point)
		case CubicTo:
			grow(e.Control1)
			grow(e.Control2)
			grow(e.Point)
		}
	}
	if first {
		return Rect{}
	}
	return Rect{X: minX, Y: minY, W: maxX - minX, H: maxY - minY}
}

// transformShape returns shape's outline with m applied to every
// coordinate. The winding rule is preserved for Path shapes.
func transformShape(m Matrix, shape Shape) *Path {
	out := NewPath()
	if p, ok := shape.(*Path); ok {
		out.winding = p.winding
	}
	for _, elem := range shape.PathElements() {
		switch e := elem.(type) {
		case MoveTo:
			pt := m.TransformPoint(e.Point)
			out.MoveTo(pt.X, pt.Y)
		case LineTo:
			pt := m.TransformPoint(e.Point)
			out.LineTo(pt.X, pt.Y)
		case QuadTo:
			c := m.TransformPoint(e.Control)
			pt := m.TransformPoint(e.Point)
			out.QuadraticTo(c.X, c.Y, pt.X, pt.Y)
		case CubicTo:
			c1 := m.TransformPoint(e.Control1)
			c2 := m.TransformPoint(e.Control2)
			pt := m.TransformPoint(e.Point)
			out.CubicTo(c1.X, c1.Y, c2.X, c2.Y, pt.X, pt.Y)
		case Close:
			out.Close()
		default:
			panic("g2d: unrecognized path element")
		}
	}
	return out
}
