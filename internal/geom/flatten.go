package geom

// DefaultTolerance is the maximum distance between a curve and its
// flattened approximation, in device units.
const DefaultTolerance = 0.25

// Flattener accumulates path commands and converts them to rings of
// line segments. Open subpaths are closed implicitly, matching region
// semantics where every boundary encloses area.
type Flattener struct {
	Tolerance float64

	rings   Set
	current Ring
	start   Point
	cur     Point
}

func (f *Flattener) tolerance() float64 {
	if f.Tolerance <= 0 {
		return DefaultTolerance
	}
	return f.Tolerance
}

func (f *Flattener) emit(p Point) {
	f.current = append(f.current, p)
	f.cur = p
}

// MoveTo starts a new ring at (x, y).
func (f *Flattener) MoveTo(x, y float64) {
	f.flush()
	p := Point{X: x, Y: y}
	f.start = p
	f.emit(p)
}

// LineTo appends a segment to (x, y).
func (f *Flattener) LineTo(x, y float64) {
	f.emit(Point{X: x, Y: y})
}

// QuadTo appends a flattened quadratic curve through control point
// (cx, cy) to (x, y).
func (f *Flattener) QuadTo(cx, cy, x, y float64) {
	tol := f.tolerance()
	f.quad(f.cur, Point{X: cx, Y: cy}, Point{X: x, Y: y}, tol*tol, 0)
}

// CubicTo appends a flattened cubic curve to (x, y).
func (f *Flattener) CubicTo(c1x, c1y, c2x, c2y, x, y float64) {
	tol := f.tolerance()
	f.cubic(f.cur, Point{X: c1x, Y: c1y}, Point{X: c2x, Y: c2y},
		Point{X: x, Y: y}, tol*tol, 0)
}

// Close finishes the current ring.
func (f *Flattener) Close() {
	f.flush()
}

// Rings returns the accumulated rings, closing any ring still open.
func (f *Flattener) Rings() Set {
	f.flush()
	return f.rings
}

func (f *Flattener) flush() {
	if len(f.current) >= 3 {
		r := f.current
		if r[0] == r[len(r)-1] {
			r = r[:len(r)-1]
		}
		if len(r) >= 3 {
			f.rings = append(f.rings, r)
		}
	}
	f.current = nil
}

const maxSubdivision = 16

// quad subdivides until the control point is within tolerance of the
// chord midpoint.
func (f *Flattener) quad(p0, p1, p2 Point, tolSq float64, depth int) {
	mx := (p0.X + p2.X) / 2
	my := (p0.Y + p2.Y) / 2
	dx := p1.X - mx
	dy := p1.Y - my
	if dx*dx+dy*dy <= tolSq || depth >= maxSubdivision {
		f.emit(p2)
		return
	}
	p01 := mid(p0, p1)
	p12 := mid(p1, p2)
	m := mid(p01, p12)
	f.quad(p0, p01, m, tolSq, depth+1)
	f.quad(m, p12, p2, tolSq, depth+1)
}

// cubic subdivides using the standard cubic flatness metric.
func (f *Flattener) cubic(p0, p1, p2, p3 Point, tolSq float64, depth int) {
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - p0.X - 2*p3.X
	vy := 3*p2.Y - p0.Y - 2*p3.Y
	flat := ux*ux + uy*uy
	if v := vx*vx + vy*vy; v > flat {
		flat = v
	}
	if flat <= tolSq*16 || depth >= maxSubdivision {
		f.emit(p3)
		return
	}
	p01 := mid(p0, p1)
	p12 := mid(p1, p2)
	p23 := mid(p2, p3)
	p012 := mid(p01, p12)
	p123 := mid(p12, p23)
	m := mid(p012, p123)
	f.cubic(p0, p01, p012, m, tolSq, depth+1)
	f.cubic(m, p123, p23, p3, tolSq, depth+1)
}

func mid(a, b Point) Point {
	return Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
