package g2d

import (
	"math"
	"testing"

	"github.com/gogpu/g2d/backend/record"
)

func rectApproxEqual(a, b Rect, tol float64) bool {
	return math.Abs(a.X-b.X) <= tol && math.Abs(a.Y-b.Y) <= tol &&
		math.Abs(a.W-b.W) <= tol && math.Abs(a.H-b.H) <= tol
}

func TestGetClipUnset(t *testing.T) {
	gc, _, _ := newTestContext(t)

	if c := gc.GetClip(); c != nil {
		t.Errorf("GetClip() = %v, want nil", c)
	}
	if _, ok := gc.ClipBounds(); ok {
		t.Error("ClipBounds() ok = true without a clip")
	}
}

func TestSetClipRoundTrip(t *testing.T) {
	gc, _, _ := newTestContext(t)

	gc.SetClipRect(10, 20, 30, 40)

	b, ok := gc.ClipBounds()
	if !ok {
		t.Fatal("ClipBounds() ok = false after SetClipRect")
	}
	want := Rect{X: 10, Y: 20, W: 30, H: 40}
	if !rectApproxEqual(b, want, 1e-6) {
		t.Errorf("ClipBounds() = %v, want %v", b, want)
	}
}

func TestSetClipNilClears(t *testing.T) {
	gc, _, _ := newTestContext(t)

	gc.SetClipRect(0, 0, 10, 10)
	gc.SetClip(nil)

	if c := gc.GetClip(); c != nil {
		t.Errorf("GetClip() = %v after SetClip(nil), want nil", c)
	}
}

func TestSetClipUnderTransform(t *testing.T) {
	gc, _, _ := newTestContext(t)

	gc.Translate(100, 50)
	gc.SetClipRect(0, 0, 20, 20)

	// the user-space clip is unchanged by the transform it was set under
	b, ok := gc.ClipBounds()
	if !ok {
		t.Fatal("ClipBounds() ok = false")
	}
	want := Rect{X: 0, Y: 0, W: 20, H: 20}
	if !rectApproxEqual(b, want, 1e-5) {
		t.Errorf("ClipBounds() = %v, want %v", b, want)
	}
}

func TestClipWithoutExistingClip(t *testing.T) {
	gc, _, _ := newTestContext(t)

	gc.ClipRect(5, 5, 10, 10)

	b, ok := gc.ClipBounds()
	if !ok {
		t.Fatal("ClipBounds() ok = false after ClipRect")
	}
	want := Rect{X: 5, Y: 5, W: 10, H: 10}
	if !rectApproxEqual(b, want, 1e-6) {
		t.Errorf("ClipBounds() = %v, want %v", b, want)
	}
}

func TestClipIntersectsRects(t *testing.T) {
	gc, _, _ := newTestContext(t)

	gc.SetClipRect(0, 0, 10, 10)
	gc.ClipRect(5, 5, 10, 10)

	b, ok := gc.ClipBounds()
	if !ok {
		t.Fatal("ClipBounds() ok = false")
	}
	want := Rect{X: 5, Y: 5, W: 5, H: 5}
	if !rectApproxEqual(b, want, 1e-6) {
		t.Errorf("ClipBounds() = %v, want %v", b, want)
	}
}

func TestClipDisjointBecomesEmpty(t *testing.T) {
	gc, _, _ := newTestContext(t)

	gc.SetClipRect(0, 0, 10, 10)
	gc.ClipRect(20, 20, 5, 5)

	b, ok := gc.ClipBounds()
	if !ok {
		t.Fatal("ClipBounds() ok = false, want an empty clip, not no clip")
	}
	if b.W > 1e-6 || b.H > 1e-6 {
		t.Errorf("ClipBounds() = %v, want empty", b)
	}
}

func TestClipLineWidensToBounds(t *testing.T) {
	gc, _, _ := newTestContext(t)

	gc.Clip(Line{X1: 10, Y1: 20, X2: 30, Y2: 50})

	b, ok := gc.ClipBounds()
	if !ok {
		t.Fatal("ClipBounds() ok = false")
	}
	want := Rect{X: 10, Y: 20, W: 20, H: 30}
	if !rectApproxEqual(b, want, 1e-6) {
		t.Errorf("ClipBounds() = %v, want %v", b, want)
	}
}

func TestClipNilPanics(t *testing.T) {
	gc, _, _ := newTestContext(t)
	defer func() {
		if recover() == nil {
			t.Error("Clip(nil) did not panic")
		}
	}()
	gc.Clip(nil)
}

func TestSetClipIssuesRestoreSaveClip(t *testing.T) {
	gc, _, rc := newTestContext(t)

	gc.SetClipRect(0, 0, 10, 10)

	var names []string
	for _, op := range rc.Ops() {
		names = append(names, op.Name)
	}
	want := []string{"RestoreToCount", "Save", "SetMatrix", "ClipPath"}
	if len(names) != len(want) {
		t.Fatalf("ops = %v, want %v", names, want)
	}
	for i := range want {
		if names[i] != want[i] {
			t.Fatalf("ops = %v, want %v", names, want)
		}
	}
}

func TestClipNarrowsCanvasOnly(t *testing.T) {
	gc, _, rc := newTestContext(t)

	gc.SetClipRect(0, 0, 10, 10)
	rc.Reset()
	gc.ClipRect(2, 2, 4, 4)

	// narrowing is a single intersective ClipPath, not a rebuild
	if n := rc.CountOp("ClipPath"); n != 1 {
		t.Errorf("ClipPath ops = %d, want 1", n)
	}
	if n := rc.CountOp("RestoreToCount"); n != 0 {
		t.Errorf("RestoreToCount ops = %d, want 0", n)
	}
}

func TestGetClipNonInvertibleTransform(t *testing.T) {
	gc, _, _ := newTestContext(t)

	gc.SetClipRect(0, 0, 10, 10)
	gc.SetTransform(Matrix{A: 0, B: 0, C: 0, D: 0, E: 0, F: 0})

	if c := gc.GetClip(); c != nil {
		t.Errorf("GetClip() = %v under a degenerate transform, want nil", c)
	}
}

func TestCreateAtClips(t *testing.T) {
	rb := record.New()
	rc := record.NewCanvas()
	gc := NewForCanvas(rc, rb)

	child := gc.CreateAt(10, 20, 30, 30)

	b, ok := child.ClipBounds()
	if !ok {
		t.Fatal("child ClipBounds() ok = false")
	}
	want := Rect{X: 0, Y: 0, W: 30, H: 30}
	if !rectApproxEqual(b, want, 1e-5) {
		t.Errorf("child ClipBounds() = %v, want %v", b, want)
	}
	if got := child.Transform(); got != Translate(10, 20) {
		t.Errorf("child Transform() = %v, want translate(10,20)", got)
	}
}

func TestHitFill(t *testing.T) {
	gc, _, _ := newTestContext(t)

	shape := Rect{X: 10, Y: 10, W: 20, H: 20}

	if !gc.Hit(Rect{X: 15, Y: 15, W: 2, H: 2}, shape, false) {
		t.Error("Hit inside the rect = false, want true")
	}
	if gc.Hit(Rect{X: 50, Y: 50, W: 2, H: 2}, shape, false) {
		t.Error("Hit outside the rect = true, want false")
	}
}

func TestHitStroke(t *testing.T) {
	gc, _, _ := newTestContext(t)
	gc.SetStroke(NewStroke(4))

	shape := Rect{X: 10, Y: 10, W: 20, H: 20}

	if !gc.Hit(Rect{X: 9, Y: 19, W: 1, H: 1}, shape, true) {
		t.Error("Hit on the stroked edge = false, want true")
	}
	if gc.Hit(Rect{X: 19, Y: 19, W: 1, H: 1}, shape, true) {
		t.Error("Hit in the unstroked interior = true, want false")
	}
}

func TestHitUnderTransform(t *testing.T) {
	gc, _, _ := newTestContext(t)
	gc.Translate(100, 0)

	shape := Rect{X: 0, Y: 0, W: 10, H: 10}

	if !gc.Hit(Rect{X: 102, Y: 2, W: 2, H: 2}, shape, false) {
		t.Error("Hit at the transformed position = false, want true")
	}
	if gc.Hit(Rect{X: 2, Y: 2, W: 2, H: 2}, shape, false) {
		t.Error("Hit at the untransformed position = true, want false")
	}
}
