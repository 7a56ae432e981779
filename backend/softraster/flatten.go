package softraster

import (
	"github.com/gogpu/g2d/backend"
)

type vec struct {
	X, Y float64
}

// subpath is a flattened contour. closed records whether the path
// closed it explicitly, which matters for stroking (caps vs joins).
type subpath struct {
	pts    []vec
	closed bool
}

const maxSubdivision = 16

// flattenPath converts a path to line-segment subpaths with the given
// flattening tolerance.
func flattenPath(p *backend.Path, tol float64) []subpath {
	if tol <= 0 {
		tol = 0.25
	}
	f := &pathFlattener{tolSq: tol * tol}
	p.Walk(func(verb backend.PathVerb, pts []float32) {
		switch verb {
		case backend.VerbMoveTo:
			f.moveTo(vec{float64(pts[0]), float64(pts[1])})
		case backend.VerbLineTo:
			f.lineTo(vec{float64(pts[0]), float64(pts[1])})
		case backend.VerbQuadTo:
			f.quadTo(vec{float64(pts[0]), float64(pts[1])}, vec{float64(pts[2]), float64(pts[3])})
		case backend.VerbCubicTo:
			f.cubicTo(vec{float64(pts[0]), float64(pts[1])},
				vec{float64(pts[2]), float64(pts[3])},
				vec{float64(pts[4]), float64(pts[5])})
		case backend.VerbClose:
			f.close()
		}
	})
	f.flush(false)
	return f.out
}

type pathFlattener struct {
	tolSq   float64
	out     []subpath
	current []vec
	cur     vec
}

func (f *pathFlattener) moveTo(p vec) {
	f.flush(false)
	f.current = append(f.current, p)
	f.cur = p
}

func (f *pathFlattener) lineTo(p vec) {
	f.current = append(f.current, p)
	f.cur = p
}

func (f *pathFlattener) quadTo(c, p vec) {
	f.quad(f.cur, c, p, 0)
	f.cur = p
}

func (f *pathFlattener) cubicTo(c1, c2, p vec) {
	f.cubic(f.cur, c1, c2, p, 0)
	f.cur = p
}

func (f *pathFlattener) close() {
	f.flush(true)
}

func (f *pathFlattener) flush(closed bool) {
	if len(f.current) >= 2 {
		f.out = append(f.out, subpath{pts: f.current, closed: closed})
	}
	f.current = nil
}

func (f *pathFlattener) emit(p vec) {
	f.current = append(f.current, p)
}

// quad subdivides until the control point is within tolerance of the
// chord midpoint.
func (f *pathFlattener) quad(p0, p1, p2 vec, depth int) {
	mx := (p0.X + p2.X) / 2
	my := (p0.Y + p2.Y) / 2
	dx := p1.X - mx
	dy := p1.Y - my
	if dx*dx+dy*dy <= f.tolSq || depth >= maxSubdivision {
		f.emit(p2)
		return
	}
	p01 := midVec(p0, p1)
	p12 := midVec(p1, p2)
	m := midVec(p01, p12)
	f.quad(p0, p01, m, depth+1)
	f.quad(m, p12, p2, depth+1)
}

// cubic subdivides using the standard cubic flatness metric.
func (f *pathFlattener) cubic(p0, p1, p2, p3 vec, depth int) {
	ux := 3*p1.X - 2*p0.X - p3.X
	uy := 3*p1.Y - 2*p0.Y - p3.Y
	vx := 3*p2.X - p0.X - 2*p3.X
	vy := 3*p2.Y - p0.Y - 2*p3.Y
	flat := ux*ux + uy*uy
	if v := vx*vx + vy*vy; v > flat {
		flat = v
	}
	if flat <= f.tolSq*16 || depth >= maxSubdivision {
		f.emit(p3)
		return
	}
	p01 := midVec(p0, p1)
	p12 := midVec(p1, p2)
	p23 := midVec(p2, p3)
	p012 := midVec(p01, p12)
	p123 := midVec(p12, p23)
	m := midVec(p012, p123)
	f.cubic(p0, p01, p012, m, depth+1)
	f.cubic(m, p123, p23, p3, depth+1)
}

func midVec(a, b vec) vec {
	return vec{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}
