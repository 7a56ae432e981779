package g2d

import (
	"image"
	"testing"

	"github.com/gogpu/g2d/backend"
)

func testImage(w, h int) *image.RGBA {
	return image.NewRGBA(image.Rect(0, 0, w, h))
}

func TestDrawImageNaturalSize(t *testing.T) {
	gc, rb, rc := newTestContext(t)

	gc.DrawImage(testImage(16, 8), 4, 6)

	if rb.Images != 1 {
		t.Errorf("Images = %d, want 1", rb.Images)
	}
	draws := rc.DrawOps()
	if len(draws) != 1 || draws[0].Name != "DrawImageRect" {
		t.Fatalf("ops = %v, want one DrawImageRect", opNames(draws))
	}
	want := backend.RectXYWH(4, 6, 16, 8)
	if draws[0].Rect != want {
		t.Errorf("dst = %v, want %v", draws[0].Rect, want)
	}
}

func TestDrawImageNilIgnored(t *testing.T) {
	gc, _, rc := newTestContext(t)

	gc.DrawImage(nil, 0, 0)

	if n := len(rc.DrawOps()); n != 0 {
		t.Errorf("got %d draw ops for nil image, want 0", n)
	}
}

func TestDrawImageScaled(t *testing.T) {
	gc, _, rc := newTestContext(t)

	gc.DrawImageScaled(testImage(10, 10), 0, 0, 50, 25)

	draws := rc.DrawOps()
	if len(draws) != 1 {
		t.Fatalf("got %d draw ops, want 1", len(draws))
	}
	want := backend.RectXYWH(0, 0, 50, 25)
	if draws[0].Rect != want {
		t.Errorf("dst = %v, want %v", draws[0].Rect, want)
	}
}

func TestDrawImageWithBackground(t *testing.T) {
	gc, _, rc := newTestContext(t)

	gc.SetPaint(SolidPaint{Color: Red})
	gc.DrawImageWithBackground(testImage(8, 8), 2, 2, Blue)

	draws := rc.DrawOps()
	if len(draws) != 2 {
		t.Fatalf("ops = %v, want background rect then image", opNames(draws))
	}
	if draws[0].Name != "DrawRect" || draws[1].Name != "DrawImageRect" {
		t.Errorf("ops = %v, want [DrawRect DrawImageRect]", opNames(draws))
	}
	if got := gc.Paint(); !PaintsEqual(got, SolidPaint{Color: Red}) {
		t.Errorf("Paint() = %v after draw, want red restored", got)
	}
}

func TestDrawImageWithBackgroundBeforeAnyPaint(t *testing.T) {
	gc, _, _ := newTestContext(t)

	gc.DrawImageWithBackground(testImage(8, 8), 2, 2, Blue)

	if got := gc.Color(); got != Black {
		t.Errorf("Color() = %v after draw, want Black", got)
	}
	if got := gc.Paint(); !PaintsEqual(got, SolidPaint{Color: Black}) {
		t.Errorf("Paint() = %v after draw, want solid black", got)
	}
}

func TestDrawImageSubDegenerate(t *testing.T) {
	gc, _, rc := newTestContext(t)

	gc.DrawImageSub(testImage(10, 10), 0, 0, 0, 10, 0, 0, 5, 5)

	if n := len(rc.DrawOps()); n != 0 {
		t.Errorf("got %d draw ops for a zero-width destination, want 0", n)
	}
}

func TestDrawImageSub(t *testing.T) {
	gc, _, rc := newTestContext(t)

	gc.DrawImageSub(testImage(10, 10), 20, 20, 28, 24, 0, 0, 4, 2)

	draws := rc.DrawOps()
	if len(draws) != 1 || draws[0].Name != "DrawImageRect" {
		t.Fatalf("ops = %v, want one DrawImageRect", opNames(draws))
	}
	want := backend.RectXYWH(20, 20, 8, 4)
	if draws[0].Rect != want {
		t.Errorf("dst = %v, want %v", draws[0].Rect, want)
	}
}

func TestDrawImageTransformedRestoresTransform(t *testing.T) {
	gc, _, rc := newTestContext(t)

	gc.Translate(5, 5)
	before := gc.Transform()
	gc.DrawImageTransformed(testImage(4, 4), Scale(2, 2))

	if gc.Transform() != before {
		t.Errorf("Transform() = %v after draw, want %v", gc.Transform(), before)
	}
	if n := len(rc.DrawOps()); n != 1 {
		t.Errorf("got %d draw ops, want 1", n)
	}
}
