package softraster

import (
	"testing"

	"github.com/gogpu/g2d/backend"
)

// A typeface with no resolved face measures synthetically and renders
// nothing, so text keeps working on systems without fonts installed.

func TestFacelessMetrics(t *testing.T) {
	f := newRasterFont(&typeface{family: "missing"}, 10)
	m := f.Metrics()
	if m.Ascent != 8 || m.Descent != 2 || m.Leading != 1 {
		t.Errorf("metrics = %+v, want ascent 8, descent 2, leading 1", m)
	}
}

func TestFacelessMeasureString(t *testing.T) {
	f := newRasterFont(&typeface{family: "missing"}, 10)
	if got := f.MeasureString("ab"); got != 12 {
		t.Errorf("MeasureString = %v, want 12", got)
	}
	if got := f.MeasureString(""); got != 0 {
		t.Errorf("MeasureString of empty = %v, want 0", got)
	}
}

func TestFacelessOutlines(t *testing.T) {
	f := newRasterFont(&typeface{family: "missing"}, 10)
	if subs := stringSubpaths(f, "ab", 0, 0, 0.25); subs != nil {
		t.Errorf("got %d subpaths without a face, want none", len(subs))
	}
}

func TestFontAccessors(t *testing.T) {
	tf := &typeface{family: "SansSerif", style: backend.StyleBold}
	f := newRasterFont(tf, 14)
	if f.Size() != 14 {
		t.Errorf("Size = %v, want 14", f.Size())
	}
	got, ok := f.Typeface().(*typeface)
	if !ok || got != tf {
		t.Error("Typeface does not return the wrapped typeface")
	}
	if got.Family() != "SansSerif" || got.Style() != backend.StyleBold {
		t.Errorf("typeface = %s %v", got.Family(), got.Style())
	}
}
