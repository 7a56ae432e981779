package g2d

import (
	"math"
	"testing"

	"github.com/gogpu/g2d/backend"
)

func TestDrawStringFillsRegardlessOfMode(t *testing.T) {
	gc, _, rc := newTestContext(t)

	// leave the shared paint in stroke mode
	gc.DrawRect(0, 0, 10, 10)
	rc.Reset()

	gc.DrawString("hello", 5, 40)

	draws := rc.DrawOps()
	if len(draws) != 1 || draws[0].Name != "DrawString" {
		t.Fatalf("ops = %v, want one DrawString", opNames(draws))
	}
	op := draws[0]
	if op.Paint.Mode != backend.PaintFill {
		t.Errorf("paint mode = %v, want fill", op.Paint.Mode)
	}
	if op.Text != "hello" || op.X1 != 5 || op.Y1 != 40 {
		t.Errorf("op = %q at (%v,%v), want hello at (5,40)", op.Text, op.X1, op.Y1)
	}
}

func TestAttributedStringPlain(t *testing.T) {
	gc, _, rc := newTestContext(t)

	as := NewAttributedString("plain text")
	gc.DrawAttributedString(as, 10, 20)

	draws := rc.DrawOps()
	if len(draws) != 1 || draws[0].Name != "DrawString" {
		t.Fatalf("ops = %v, want one DrawString", opNames(draws))
	}
	if draws[0].Text != "plain text" {
		t.Errorf("text = %q, want %q", draws[0].Text, "plain text")
	}
}

func TestAttributedStringSegments(t *testing.T) {
	gc, _, rc := newTestContext(t)
	gc.SetFont(Font{Name: "SansSerif", Size: 10})
	rc.Reset()

	as := NewAttributedString("abcdef")
	as.SetFont(Font{Name: "SansSerif", Style: FontBold, Size: 10}, 2, 4)
	gc.DrawAttributedString(as, 0, 0)

	draws := rc.DrawOps()
	if len(draws) != 3 {
		t.Fatalf("got %d DrawString ops, want 3 segments", len(draws))
	}
	wantText := []string{"ab", "cd", "ef"}
	// record fonts advance 0.6em per rune: each 2-rune segment is 12 wide
	wantX := []float32{0, 12, 24}
	for i, op := range draws {
		if op.Text != wantText[i] {
			t.Errorf("segment %d text = %q, want %q", i, op.Text, wantText[i])
		}
		if math.Abs(float64(op.X1-wantX[i])) > 1e-4 {
			t.Errorf("segment %d x = %v, want %v", i, op.X1, wantX[i])
		}
	}
}

func TestAttributedStringRestoresState(t *testing.T) {
	gc, _, _ := newTestContext(t)
	gc.SetFont(Font{Name: "Serif", Size: 14})
	gc.SetPaint(SolidPaint{Color: Red})

	as := NewAttributedString("abcdef")
	as.SetFont(Font{Name: "SansSerif", Style: FontBold, Size: 20}, 0, 3)
	as.SetPaint(SolidPaint{Color: Blue}, 3, 6)
	gc.DrawAttributedString(as, 0, 0)

	if got := gc.Font(); got != (Font{Name: "Serif", Size: 14}) {
		t.Errorf("Font() = %v after draw, want Serif 14", got)
	}
	if got := gc.Paint(); !PaintsEqual(got, SolidPaint{Color: Red}) {
		t.Errorf("Paint() = %v after draw, want red", got)
	}
}

func TestAttributedStringRangeClamped(t *testing.T) {
	gc, _, rc := newTestContext(t)

	as := NewAttributedString("abc")
	as.SetPaint(SolidPaint{Color: Blue}, -5, 99)
	gc.DrawAttributedString(as, 0, 0)

	draws := rc.DrawOps()
	if len(draws) != 1 || draws[0].Text != "abc" {
		t.Fatalf("ops = %v, want one full-string DrawString", opNames(draws))
	}
}

func TestDrawAttributedStringNilPanics(t *testing.T) {
	gc, _, _ := newTestContext(t)
	defer func() {
		if recover() == nil {
			t.Error("DrawAttributedString(nil) did not panic")
		}
	}()
	gc.DrawAttributedString(nil, 0, 0)
}

func TestStringWidthEmptyString(t *testing.T) {
	gc, _, _ := newTestContext(t)
	if w := gc.StringWidth(""); w != 0 {
		t.Errorf("StringWidth(\"\") = %v, want 0", w)
	}
}
