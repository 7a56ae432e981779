package softraster

import (
	"math"

	"github.com/gogpu/g2d/backend"
)

type strokeStyle struct {
	width      float64
	cap        backend.StrokeCap
	join       backend.StrokeJoin
	miterLimit float64
}

func strokeStyleFromPaint(p *backend.Paint) strokeStyle {
	return strokeStyle{
		width:      float64(p.StrokeWidth),
		cap:        p.StrokeCap,
		join:       p.StrokeJoin,
		miterLimit: float64(p.StrokeMiter),
	}
}

// strokeSubpaths expands stroked subpaths into closed fill outlines.
// Dashing applies first, splitting the contours into on-pattern runs.
// The result fills with the non-zero rule.
func strokeSubpaths(subs []subpath, st strokeStyle, dash *dashEffect) []subpath {
	if st.width <= 0 {
		return nil
	}
	if dash != nil {
		subs = applyDash(subs, dash)
	}
	var out []subpath
	for _, sp := range subs {
		out = append(out, strokeOne(sp, st)...)
	}
	return out
}

func strokeOne(sp subpath, st strokeStyle) []subpath {
	pts := dedupe(sp.pts)
	if len(pts) < 2 {
		return nil
	}
	hw := st.width / 2
	if sp.closed {
		outer := cycleOffsets(pts, hw, st)
		inner := cycleOffsets(reversed(pts), hw, st)
		return []subpath{
			{pts: outer, closed: true},
			{pts: inner, closed: true},
		}
	}

	n := len(pts)
	forward := sideOffsets(pts, hw, st)
	backward := sideOffsets(reversed(pts), hw, st)
	dEnd := unitDir(pts[n-2], pts[n-1])
	dStart := unitDir(pts[1], pts[0])

	ring := forward
	ring = append(ring, capPoints(pts[n-1], dEnd, hw, st.cap)...)
	ring = append(ring, backward...)
	ring = append(ring, capPoints(pts[0], dStart, hw, st.cap)...)
	return []subpath{{pts: ring, closed: true}}
}

func dedupe(pts []vec) []vec {
	out := pts[:0:0]
	for _, p := range pts {
		if len(out) > 0 && out[len(out)-1] == p {
			continue
		}
		out = append(out, p)
	}
	return out
}

func reversed(pts []vec) []vec {
	out := make([]vec, len(pts))
	for i, p := range pts {
		out[len(pts)-1-i] = p
	}
	return out
}

func unitDir(a, b vec) vec {
	dx := b.X - a.X
	dy := b.Y - a.Y
	l := math.Hypot(dx, dy)
	if l == 0 {
		return vec{}
	}
	return vec{X: dx / l, Y: dy / l}
}

// leftNormal returns the perpendicular of a unit direction, scaled to
// the half stroke width.
func leftNormal(d vec, hw float64) vec {
	return vec{X: -d.Y * hw, Y: d.X * hw}
}

// sideOffsets traces one side of an open polyline, inserting join
// geometry at each interior vertex.
func sideOffsets(pts []vec, hw float64, st strokeStyle) []vec {
	var out []vec
	var prevD vec
	started := false
	for i := 0; i+1 < len(pts); i++ {
		d := unitDir(pts[i], pts[i+1])
		if d == (vec{}) {
			continue
		}
		nrm := leftNormal(d, hw)
		if !started {
			out = append(out, vec{pts[i].X + nrm.X, pts[i].Y + nrm.Y})
			started = true
		} else {
			out = append(out, joinPoints(pts[i], prevD, d, hw, st)...)
		}
		out = append(out, vec{pts[i+1].X + nrm.X, pts[i+1].Y + nrm.Y})
		prevD = d
	}
	return out
}

// cycleOffsets traces one side of a closed ring, joining at every
// vertex including the seam.
func cycleOffsets(pts []vec, hw float64, st strokeStyle) []vec {
	n := len(pts)
	dirs := make([]vec, 0, n)
	verts := make([]vec, 0, n)
	for i := 0; i < n; i++ {
		d := unitDir(pts[i], pts[(i+1)%n])
		if d == (vec{}) {
			continue
		}
		dirs = append(dirs, d)
		verts = append(verts, pts[i])
	}
	m := len(dirs)
	if m == 0 {
		return nil
	}
	var out []vec
	for i := 0; i < m; i++ {
		prev := dirs[(i-1+m)%m]
		d := dirs[i]
		out = append(out, joinPoints(verts[i], prev, d, hw, st)...)
		next := verts[(i+1)%m]
		nrm := leftNormal(d, hw)
		out = append(out, vec{next.X + nrm.X, next.Y + nrm.Y})
	}
	return out
}

const joinEps = 1e-9

// joinPoints emits the offset points around a vertex where the
// direction turns from d0 to d1. Miter and round geometry applies on
// the outer side of the turn only; the inner side bevels, leaving a
// self-overlap that the non-zero fill absorbs.
func joinPoints(v, d0, d1 vec, hw float64, st strokeStyle) []vec {
	n0 := leftNormal(d0, hw)
	n1 := leftNormal(d1, hw)
	out := []vec{{v.X + n0.X, v.Y + n0.Y}}

	cross := d0.X*d1.Y - d0.Y*d1.X
	if cross < -joinEps {
		switch st.join {
		case backend.JoinMiter:
			dot := d0.X*d1.X + d0.Y*d1.Y
			sinHalf := math.Sqrt(math.Max(0, (1+dot)/2))
			if sinHalf > 0 && 1/sinHalf <= st.miterLimit {
				denom := cross
				t := ((n1.X-n0.X)*d1.Y - (n1.Y-n0.Y)*d1.X) / denom
				out = append(out, vec{v.X + n0.X + d0.X*t, v.Y + n0.Y + d0.Y*t})
			}
		case backend.JoinRound:
			out = append(out, arcPoints(v, n0, n1, true)...)
		}
	}
	out = append(out, vec{v.X + n1.X, v.Y + n1.Y})
	return out
}

// capPoints emits the cap geometry between the two stroke sides at an
// endpoint, with d pointing out of the contour.
func capPoints(end, d vec, hw float64, cap backend.StrokeCap) []vec {
	if d == (vec{}) {
		return nil
	}
	n := leftNormal(d, hw)
	switch cap {
	case backend.CapSquare:
		return []vec{
			{end.X + n.X + d.X*hw, end.Y + n.Y + d.Y*hw},
			{end.X - n.X + d.X*hw, end.Y - n.Y + d.Y*hw},
		}
	case backend.CapRound:
		return arcPoints(end, n, vec{-n.X, -n.Y}, false)
	default:
		return nil
	}
}

const arcStep = 0.35

// arcPoints samples an arc around center from offset n0 to offset n1.
// shortWay picks the minor arc; otherwise the arc sweeps the half
// circle through the d direction (used for round caps).
func arcPoints(center, n0, n1 vec, shortWay bool) []vec {
	r := math.Hypot(n0.X, n0.Y)
	if r == 0 {
		return nil
	}
	a0 := math.Atan2(n0.Y, n0.X)
	a1 := math.Atan2(n1.Y, n1.X)
	delta := a1 - a0
	for delta > math.Pi {
		delta -= 2 * math.Pi
	}
	for delta < -math.Pi {
		delta += 2 * math.Pi
	}
	if !shortWay {
		// semicircle: force the negative sweep covering the cap side
		if delta > 0 {
			delta -= 2 * math.Pi
		}
		if delta == 0 {
			delta = -math.Pi
		}
	}
	steps := int(math.Ceil(math.Abs(delta) / arcStep))
	if steps < 1 {
		return nil
	}
	out := make([]vec, 0, steps)
	for i := 1; i < steps; i++ {
		a := a0 + delta*float64(i)/float64(steps)
		out = append(out, vec{center.X + r*math.Cos(a), center.Y + r*math.Sin(a)})
	}
	return out
}

// applyDash splits subpaths into the on-pattern runs of the dash.
// Closed contours dash as open contours that wrap once.
func applyDash(subs []subpath, d *dashEffect) []subpath {
	pattern := d.intervals
	if len(pattern)%2 != 0 {
		pattern = append(append([]float64{}, pattern...), pattern...)
	}
	var total float64
	for _, v := range pattern {
		total += v
	}
	if total <= 0 {
		return subs
	}
	phase := math.Mod(d.phase, total)
	if phase < 0 {
		phase += total
	}

	var out []subpath
	for _, sp := range subs {
		pts := sp.pts
		if sp.closed && len(pts) > 1 {
			pts = append(append([]vec{}, pts...), pts[0])
		}
		out = append(out, dashWalk(pts, pattern, phase)...)
	}
	return out
}

func dashWalk(pts []vec, pattern []float64, phase float64) []subpath {
	if len(pts) < 2 {
		return nil
	}
	idx := 0
	rem := pattern[idx]
	for phase > 0 {
		if phase < rem {
			rem -= phase
			break
		}
		phase -= rem
		idx = (idx + 1) % len(pattern)
		rem = pattern[idx]
	}
	on := idx%2 == 0

	var out []subpath
	var run []vec
	if on {
		run = append(run, pts[0])
	}
	flush := func() {
		if len(run) >= 2 {
			out = append(out, subpath{pts: run})
		}
		run = nil
	}
	for i := 0; i+1 < len(pts); i++ {
		a := pts[i]
		b := pts[i+1]
		segLen := math.Hypot(b.X-a.X, b.Y-a.Y)
		pos := 0.0
		for segLen-pos > rem {
			pos += rem
			t := pos / segLen
			p := vec{a.X + (b.X-a.X)*t, a.Y + (b.Y-a.Y)*t}
			if on {
				run = append(run, p)
				flush()
			} else {
				run = append(run, p)
			}
			on = !on
			idx = (idx + 1) % len(pattern)
			rem = pattern[idx]
		}
		rem -= segLen - pos
		if on {
			run = append(run, b)
		}
	}
	flush()
	return out
}
