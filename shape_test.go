package g2d

import (
	"math"
	"testing"
)

func TestLineBounds(t *testing.T) {
	l := Line{X1: 10, Y1: 5, X2: 2, Y2: 15}
	want := Rect{X: 2, Y: 5, W: 8, H: 10}
	if got := l.Bounds(); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}
}

func TestRectIsEmpty(t *testing.T) {
	tests := []struct {
		r    Rect
		want bool
	}{
		{Rect{W: 10, H: 10}, false},
		{Rect{W: 0, H: 10}, true},
		{Rect{W: 10, H: 0}, true},
		{Rect{W: -1, H: 10}, true},
	}
	for _, tt := range tests {
		if got := tt.r.IsEmpty(); got != tt.want {
			t.Errorf("%v.IsEmpty() = %v, want %v", tt.r, got, tt.want)
		}
	}
}

func TestRectIntersects(t *testing.T) {
	a := Rect{X: 0, Y: 0, W: 10, H: 10}
	if !a.Intersects(Rect{X: 5, Y: 5, W: 10, H: 10}) {
		t.Error("overlapping rects do not intersect")
	}
	if a.Intersects(Rect{X: 10, Y: 0, W: 5, H: 5}) {
		t.Error("edge-touching rects intersect")
	}
	if a.Intersects(Rect{X: 20, Y: 20, W: 5, H: 5}) {
		t.Error("disjoint rects intersect")
	}
}

func TestEllipseElements(t *testing.T) {
	e := Ellipse{X: 0, Y: 0, W: 20, H: 10}
	elems := e.PathElements()

	if len(elems) != 6 {
		t.Fatalf("got %d elements, want 6", len(elems))
	}
	mv, ok := elems[0].(MoveTo)
	if !ok {
		t.Fatalf("first element %T, want MoveTo", elems[0])
	}
	// outline starts at the rightmost point
	if mv.Point != Pt(20, 5) {
		t.Errorf("start = %v, want (20,5)", mv.Point)
	}
	if _, ok := elems[5].(Close); !ok {
		t.Errorf("last element %T, want Close", elems[5])
	}
}

func TestRoundRectDegeneratesToRect(t *testing.T) {
	rr := RoundRect{X: 0, Y: 0, W: 10, H: 10, ArcW: 0, ArcH: 0}
	elems := rr.PathElements()
	want := Rect{X: 0, Y: 0, W: 10, H: 10}.PathElements()
	if len(elems) != len(want) {
		t.Errorf("got %d elements, want %d (plain rectangle)", len(elems), len(want))
	}
}

func TestRoundRectCornerClamp(t *testing.T) {
	// corner diameters larger than the rect collapse to half extents
	rr := RoundRect{X: 0, Y: 0, W: 10, H: 10, ArcW: 100, ArcH: 100}
	elems := rr.PathElements()
	mv := elems[0].(MoveTo)
	if mv.Point != Pt(5, 0) {
		t.Errorf("start = %v, want (5,0)", mv.Point)
	}
}

func TestArcStartPoint(t *testing.T) {
	// 0 degrees is at 3 o'clock, positive sweeps run anti-clockwise
	a := Arc{X: 0, Y: 0, W: 20, H: 20, Start: 0, Sweep: 90}
	elems := a.PathElements()

	mv := elems[0].(MoveTo)
	if !pointApproxEqual(mv.Point, Pt(20, 10), 1e-9) {
		t.Errorf("start = %v, want (20,10)", mv.Point)
	}
	last := elems[len(elems)-1].(CubicTo)
	if !pointApproxEqual(last.Point, Pt(10, 0), 1e-9) {
		t.Errorf("end = %v, want (10,0)", last.Point)
	}
}

func TestArcSweepClamped(t *testing.T) {
	a := Arc{X: 0, Y: 0, W: 10, H: 10, Start: 0, Sweep: 720}
	elems := a.PathElements()
	last := elems[len(elems)-1].(CubicTo)
	// a full turn ends where it began
	if !pointApproxEqual(last.Point, Pt(10, 5), 1e-6) {
		t.Errorf("end = %v, want (10,5)", last.Point)
	}
}

func TestArcMidpoint(t *testing.T) {
	// quarter arc from 0 to 90 degrees passes near 45 degrees
	a := Arc{X: 0, Y: 0, W: 20, H: 20, Start: 0, Sweep: 90}
	p := NewPath()
	for _, e := range a.PathElements() {
		switch el := e.(type) {
		case MoveTo:
			p.MoveTo(el.Point.X, el.Point.Y)
		case CubicTo:
			p.CubicTo(el.Control1.X, el.Control1.Y, el.Control2.X, el.Control2.Y, el.Point.X, el.Point.Y)
		}
	}
	// sample the cubic at t=0.5 via the control polygon midpoint recursion
	elems := p.PathElements()
	c := elems[1].(CubicTo)
	start := elems[0].(MoveTo).Point
	m01 := start.Add(c.Control1).Mul(0.5)
	m12 := c.Control1.Add(c.Control2).Mul(0.5)
	m23 := c.Control2.Add(c.Point).Mul(0.5)
	m012 := m01.Add(m12).Mul(0.5)
	m123 := m12.Add(m23).Mul(0.5)
	mid := m012.Add(m123).Mul(0.5)

	wantX := 10 + 10*math.Cos(math.Pi/4)
	wantY := 10 - 10*math.Sin(math.Pi/4)
	if math.Abs(mid.X-wantX) > 0.05 || math.Abs(mid.Y-wantY) > 0.05 {
		t.Errorf("midpoint = %v, want (%v,%v)", mid, wantX, wantY)
	}
}

func TestPolygonUsesShorterSlice(t *testing.T) {
	p := Polygon([]float64{0, 10, 10, 0}, []float64{0, 0, 10}, true)
	elems := p.PathElements()
	// MoveTo + 2 LineTo + Close
	if len(elems) != 4 {
		t.Errorf("got %d elements, want 4", len(elems))
	}
}

func TestPolygonEmpty(t *testing.T) {
	p := Polygon(nil, nil, true)
	if !p.Empty() {
		t.Error("Polygon(nil, nil) is not empty")
	}
}

func TestPathBounds(t *testing.T) {
	p := NewPath()
	p.MoveTo(5, 5)
	p.LineTo(15, 25)
	p.QuadraticTo(30, 0, 20, 10)

	b := p.Bounds()
	// control points count toward the conservative bounds
	want := Rect{X: 5, Y: 0, W: 25, H: 25}
	if b != want {
		t.Errorf("Bounds() = %v, want %v", b, want)
	}
}

func TestPathWindingDefault(t *testing.T) {
	p := NewPath()
	if p.Winding() != WindNonZero {
		t.Errorf("default winding = %v, want non-zero", p.Winding())
	}
	p.SetWinding(WindEvenOdd)
	if p.Winding() != WindEvenOdd {
		t.Errorf("winding = %v after SetWinding, want even-odd", p.Winding())
	}
}
