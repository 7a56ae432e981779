package g2d

import "math"

// Shape is a geometric outline that can be drawn, filled or used as a
// clip. PathElements returns the outline as an ordered element sequence;
// each call returns the full sequence from the start, so a shape can be
// replayed any number of times.
type Shape interface {
	PathElements() []PathElement
	Bounds() Rect
}

// kappa is the control-point distance for approximating a quarter
// circle with a cubic Bezier.
const kappa = 0.5522847498

// Line is a straight line segment between two points.
type Line struct {
	X1, Y1, X2, Y2 float64
}

// PathElements implements Shape.
func (l Line) PathElements() []PathElement {
	return []PathElement{
		MoveTo{Point: Pt(l.X1, l.Y1)},
		LineTo{Point: Pt(l.X2, l.Y2)},
	}
}

// Bounds implements Shape.
func (l Line) Bounds() Rect {
	return Rect{
		X: min(l.X1, l.X2),
		Y: min(l.Y1, l.Y2),
		W: math.Abs(l.X2 - l.X1),
		H: math.Abs(l.Y2 - l.Y1),
	}
}

// Rect is an axis-aligned rectangle. A rectangle with zero or negative
// width or height is degenerate: drawing it is a silent no-op.
type Rect struct {
	X, Y, W, H float64
}

// PathElements implements Shape.
func (r Rect) PathElements() []PathElement {
	return []PathElement{
		MoveTo{Point: Pt(r.X, r.Y)},
		LineTo{Point: Pt(r.X+r.W, r.Y)},
		LineTo{Point: Pt(r.X+r.W, r.Y+r.H)},
		LineTo{Point: Pt(r.X, r.Y+r.H)},
		Close{},
	}
}

// Bounds implements Shape.
func (r Rect) Bounds() Rect { return r }

// IsEmpty reports whether the rectangle has no area.
func (r Rect) IsEmpty() bool {
	return r.W <= 0 || r.H <= 0
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.X < other.X+other.W && other.X < r.X+r.W &&
		r.Y < other.Y+other.H && other.Y < r.Y+r.H
}

// Contains reports whether the point lies inside the rectangle.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.X && p.X <= r.X+r.W && p.Y >= r.Y && p.Y <= r.Y+r.H
}

// Ellipse is an ellipse framed by an axis-aligned rectangle.
type Ellipse struct {
	X, Y, W, H float64
}

// PathElements implements Shape. The outline is four cubic arcs
// starting at the rightmost point.
func (e Ellipse) PathElements() []PathElement {
	rx := e.W / 2
	ry := e.H / 2
	cx := e.X + rx
	cy := e.Y + ry
	kx := kappa * rx
	ky := kappa * ry
	return []PathElement{
		MoveTo{Point: Pt(cx+rx, cy)},
		CubicTo{Pt(cx+rx, cy+ky), Pt(cx+kx, cy+ry), Pt(cx, cy+ry)},
		CubicTo{Pt(cx-kx, cy+ry), Pt(cx-rx, cy+ky), Pt(cx-rx, cy)},
		CubicTo{Pt(cx-rx, cy-ky), Pt(cx-kx, cy-ry), Pt(cx, cy-ry)},
		CubicTo{Pt(cx+kx, cy-ry), Pt(cx+rx, cy-ky), Pt(cx+rx, cy)},
		Close{},
	}
}

// Bounds implements Shape.
func (e Ellipse) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.W, H: e.H}
}

// RoundRect is a rectangle with elliptical corners. ArcW and ArcH are
// the full corner arc diameters.
type RoundRect struct {
	X, Y, W, H float64
	ArcW, ArcH float64
}

// PathElements implements Shape.
func (rr RoundRect) PathElements() []PathElement {
	rx := min(rr.ArcW/2, rr.W/2)
	ry := min(rr.ArcH/2, rr.H/2)
	if rx <= 0 || ry <= 0 {
		return Rect{X: rr.X, Y: rr.Y, W: rr.W, H: rr.H}.PathElements()
	}
	x, y, w, h := rr.X, rr.Y, rr.W, rr.H
	kx := kappa * rx
	ky := kappa * ry
	return []PathElement{
		MoveTo{Point: Pt(x+rx, y)},
		LineTo{Point: Pt(x+w-rx, y)},
		CubicTo{Pt(x+w-rx+kx, y), Pt(x+w, y+ry-ky), Pt(x+w, y+ry)},
		LineTo{Point: Pt(x+w, y+h-ry)},
		CubicTo{Pt(x+w, y+h-ry+ky), Pt(x+w-rx+kx, y+h), Pt(x+w-rx, y+h)},
		LineTo{Point: Pt(x+rx, y+h)},
		CubicTo{Pt(x+rx-kx, y+h), Pt(x, y+h-ry+ky), Pt(x, y+h-ry)},
		LineTo{Point: Pt(x, y+ry)},
		CubicTo{Pt(x, y+ry-ky), Pt(x+rx-kx, y), Pt(x+rx, y)},
		Close{},
	}
}

// Bounds implements Shape.
func (rr RoundRect) Bounds() Rect {
	return Rect{X: rr.X, Y: rr.Y, W: rr.W, H: rr.H}
}

// Arc is an open elliptical arc framed by a rectangle. Angles are in
// degrees; 0 is at 3 o'clock and positive angles run anti-clockwise
// (the y axis points down).
type Arc struct {
	X, Y, W, H   float64
	Start, Sweep float64
}

// PathElements implements Shape. The arc is approximated by cubic
// segments spanning at most a quarter turn each.
func (a Arc) PathElements() []PathElement {
	rx := a.W / 2
	ry := a.H / 2
	cx := a.X + rx
	cy := a.Y + ry

	sweep := a.Sweep
	if sweep > 360 {
		sweep = 360
	}
	if sweep < -360 {
		sweep = -360
	}
	start := a.Start * math.Pi / 180
	total := sweep * math.Pi / 180

	at := func(theta float64) Point {
		return Pt(cx+rx*math.Cos(theta), cy-ry*math.Sin(theta))
	}
	// derivative of the parameterization, for Bezier control points
	tangent := func(theta float64) Point {
		return Pt(-rx*math.Sin(theta), -ry*math.Cos(theta))
	}

	n := int(math.Ceil(math.Abs(total) / (math.Pi / 2)))
	if n == 0 {
		n = 1
	}
	delta := total / float64(n)
	k := 4.0 / 3.0 * math.Tan(delta/4)

	elements := make([]PathElement, 0, n+1)
	elements = append(elements, MoveTo{Point: at(start)})
	theta := start
	for i := 0; i < n; i++ {
		next := theta + delta
		p0 := at(theta)
		p1 := at(next)
		t0 := tangent(theta)
		t1 := tangent(next)
		elements = append(elements, CubicTo{
			Control1: p0.Add(t0.Mul(k)),
			Control2: p1.Sub(t1.Mul(k)),
			Point:    p1,
		})
		theta = next
	}
	return elements
}

// Bounds implements Shape. Returns the frame rectangle, which always
// contains the arc.
func (a Arc) Bounds() Rect {
	return Rect{X: a.X, Y: a.Y, W: a.W, H: a.H}
}

// Polygon creates a path connecting the given points, optionally closed.
func Polygon(xs, ys []float64, close bool) *Path {
	p := NewPath()
	if len(xs) == 0 || len(ys) == 0 {
		return p
	}
	p.MoveTo(xs[0], ys[0])
	n := min(len(xs), len(ys))
	for i := 1; i < n; i++ {
		p.LineTo(xs[i], ys[i])
	}
	if close {
		p.Close()
	}
	return p
}
