package softraster

import (
	"math"
	"testing"

	"github.com/gogpu/g2d/backend"
)

func subBounds(sp subpath) (minX, minY, maxX, maxY float64) {
	minX, minY = math.Inf(1), math.Inf(1)
	maxX, maxY = math.Inf(-1), math.Inf(-1)
	for _, p := range sp.pts {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}
	return
}

func TestStrokeOneOpenLine(t *testing.T) {
	st := strokeStyle{width: 2, cap: backend.CapButt, join: backend.JoinMiter, miterLimit: 10}
	out := strokeOne(subpath{pts: []vec{{0, 0}, {10, 0}}}, st)
	if len(out) != 1 {
		t.Fatalf("got %d outlines, want 1", len(out))
	}
	if !out[0].closed {
		t.Error("stroke outline not closed")
	}
	minX, minY, maxX, maxY := subBounds(out[0])
	if minX != 0 || maxX != 10 || minY != -1 || maxY != 1 {
		t.Errorf("outline bounds = (%v,%v)-(%v,%v), want (0,-1)-(10,1)", minX, minY, maxX, maxY)
	}
}

func TestStrokeOneClosedRingPair(t *testing.T) {
	square := []vec{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	st := strokeStyle{width: 2, cap: backend.CapButt, join: backend.JoinMiter, miterLimit: 10}
	out := strokeOne(subpath{pts: square, closed: true}, st)
	if len(out) != 2 {
		t.Fatalf("got %d outlines, want outer and inner rings", len(out))
	}

	var sawOuter, sawInner bool
	for _, sp := range out {
		minX, minY, maxX, maxY := subBounds(sp)
		if minX <= -0.9 && minY <= -0.9 && maxX >= 10.9 && maxY >= 10.9 {
			sawOuter = true
		}
		if minX >= -1e-9 && maxX <= 10+1e-9 {
			sawInner = true
		}
	}
	if !sawOuter {
		t.Error("no ring expands past the source contour")
	}
	if !sawInner {
		t.Error("no ring stays within the source contour")
	}
}

func TestStrokeZeroWidth(t *testing.T) {
	st := strokeStyle{width: 0}
	if out := strokeSubpaths([]subpath{{pts: []vec{{0, 0}, {5, 0}}}}, st, nil); out != nil {
		t.Errorf("got %d outlines for a zero-width stroke, want none", len(out))
	}
}

func TestDedupeDropsRepeats(t *testing.T) {
	got := dedupe([]vec{{0, 0}, {0, 0}, {1, 1}, {1, 1}, {2, 2}})
	want := []vec{{0, 0}, {1, 1}, {2, 2}}
	if len(got) != len(want) {
		t.Fatalf("got %d points, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("point %d = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestCapPointsSquare(t *testing.T) {
	pts := capPoints(vec{10, 0}, vec{1, 0}, 1, backend.CapSquare)
	if len(pts) != 2 {
		t.Fatalf("got %d cap points, want 2", len(pts))
	}
	if pts[0] != (vec{11, 1}) || pts[1] != (vec{11, -1}) {
		t.Errorf("cap points = %v, want [(11,1) (11,-1)]", pts)
	}
}

func TestCapPointsRound(t *testing.T) {
	pts := capPoints(vec{10, 0}, vec{1, 0}, 1, backend.CapRound)
	if len(pts) < 3 {
		t.Fatalf("got %d cap points, want an arc", len(pts))
	}
	for i, p := range pts {
		r := math.Hypot(p.X-10, p.Y)
		if math.Abs(r-1) > 1e-9 {
			t.Errorf("cap point %d at radius %v, want 1", i, r)
		}
		if p.X < 10 {
			t.Errorf("cap point %d = %v on the wrong side of the endpoint", i, p)
		}
	}
}

func TestCapPointsButt(t *testing.T) {
	if pts := capPoints(vec{10, 0}, vec{1, 0}, 1, backend.CapButt); pts != nil {
		t.Errorf("butt cap emitted %v, want nothing", pts)
	}
}

func TestMiterJoinHitsCorner(t *testing.T) {
	// right-angle turn, outer side: the miter lands on the exact corner
	st := strokeStyle{join: backend.JoinMiter, miterLimit: 10}
	pts := joinPoints(vec{10, 0}, vec{1, 0}, vec{0, -1}, 1, st)
	if len(pts) != 3 {
		t.Fatalf("got %d join points, want offset, miter, offset", len(pts))
	}
	if math.Abs(pts[1].X-11) > 1e-9 || math.Abs(pts[1].Y-1) > 1e-9 {
		t.Errorf("miter point = %v, want (11, 1)", pts[1])
	}
}

func TestMiterLimitFallsBackToBevel(t *testing.T) {
	// near-reversal exceeds any small miter limit
	st := strokeStyle{join: backend.JoinMiter, miterLimit: 1.5}
	pts := joinPoints(vec{0, 0}, vec{1, 0}, vec{-0.999, -0.04471}, 1, st)
	if len(pts) != 2 {
		t.Errorf("got %d join points, want a plain bevel", len(pts))
	}
}

func TestDashWalkRuns(t *testing.T) {
	runs := dashWalk([]vec{{0, 0}, {30, 0}}, []float64{10, 10}, 0)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].pts[0] != (vec{0, 0}) || runs[0].pts[len(runs[0].pts)-1] != (vec{10, 0}) {
		t.Errorf("first run = %v, want (0,0)..(10,0)", runs[0].pts)
	}
	if runs[1].pts[0] != (vec{20, 0}) || runs[1].pts[len(runs[1].pts)-1] != (vec{30, 0}) {
		t.Errorf("second run = %v, want (20,0)..(30,0)", runs[1].pts)
	}
}

func TestDashWalkPhase(t *testing.T) {
	runs := dashWalk([]vec{{0, 0}, {30, 0}}, []float64{10, 10}, 5)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].pts[len(runs[0].pts)-1] != (vec{5, 0}) {
		t.Errorf("first run ends at %v, want (5,0)", runs[0].pts[len(runs[0].pts)-1])
	}
	if runs[1].pts[0] != (vec{15, 0}) || runs[1].pts[len(runs[1].pts)-1] != (vec{25, 0}) {
		t.Errorf("second run = %v, want (15,0)..(25,0)", runs[1].pts)
	}
}

func TestDashWalkStartsOff(t *testing.T) {
	// phase lands inside the gap interval
	runs := dashWalk([]vec{{0, 0}, {30, 0}}, []float64{10, 10}, 12)
	if len(runs) != 2 {
		t.Fatalf("got %d runs, want 2", len(runs))
	}
	if runs[0].pts[0] != (vec{8, 0}) {
		t.Errorf("first run starts at %v, want (8,0)", runs[0].pts[0])
	}
}

func TestApplyDashOddPattern(t *testing.T) {
	// odd interval counts repeat to keep the on/off alternation
	d := &dashEffect{intervals: []float64{10}}
	out := applyDash([]subpath{{pts: []vec{{0, 0}, {40, 0}}}}, d)
	if len(out) != 2 {
		t.Fatalf("got %d runs, want 2", len(out))
	}
	if out[1].pts[0] != (vec{20, 0}) {
		t.Errorf("second run starts at %v, want (20,0)", out[1].pts[0])
	}
}

func TestApplyDashClosedContourWraps(t *testing.T) {
	square := subpath{pts: []vec{{0, 0}, {10, 0}, {10, 10}, {0, 10}}, closed: true}
	d := &dashEffect{intervals: []float64{10, 10}}
	out := applyDash([]subpath{square}, d)
	if len(out) != 2 {
		t.Fatalf("got %d runs over the perimeter, want 2", len(out))
	}
	for _, sp := range out {
		if sp.closed {
			t.Error("dashed run marked closed")
		}
	}
}

func TestFlattenPathLine(t *testing.T) {
	p := backend.NewPath()
	p.MoveTo(1, 2)
	p.LineTo(9, 2)
	subs := flattenPath(p, 0.25)
	if len(subs) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(subs))
	}
	if subs[0].closed {
		t.Error("open contour flagged closed")
	}
	if subs[0].pts[0] != (vec{1, 2}) || subs[0].pts[1] != (vec{9, 2}) {
		t.Errorf("points = %v", subs[0].pts)
	}
}

func TestFlattenPathCloseMarksContour(t *testing.T) {
	p := backend.NewPath()
	p.MoveTo(0, 0)
	p.LineTo(10, 0)
	p.LineTo(10, 10)
	p.ClosePath()
	subs := flattenPath(p, 0.25)
	if len(subs) != 1 || !subs[0].closed {
		t.Fatalf("subs = %+v, want one closed contour", subs)
	}
}

func TestFlattenPathQuadWithinTolerance(t *testing.T) {
	p := backend.NewPath()
	p.MoveTo(0, 0)
	p.QuadTo(10, 20, 20, 0)
	subs := flattenPath(p, 0.1)
	if len(subs) != 1 {
		t.Fatalf("got %d subpaths, want 1", len(subs))
	}
	pts := subs[0].pts
	if len(pts) < 4 {
		t.Fatalf("got %d points, want the curve subdivided", len(pts))
	}
	for i, pt := range pts {
		// the curve y = x(20-x)/10 stays within [0, 10]
		if pt.Y < -0.2 || pt.Y > 10.2 {
			t.Errorf("point %d = %v outside the curve envelope", i, pt)
		}
	}
	if last := pts[len(pts)-1]; last != (vec{20, 0}) {
		t.Errorf("endpoint = %v, want (20,0)", last)
	}
}
