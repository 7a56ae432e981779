package g2d

import "testing"

func TestSolidPaintEqual(t *testing.T) {
	a := SolidPaint{Color: Red}
	if !a.Equal(SolidPaint{Color: Red}) {
		t.Error("equal solid paints compare unequal")
	}
	if a.Equal(SolidPaint{Color: Blue}) {
		t.Error("different colors compare equal")
	}
	if a.Equal(nil) {
		t.Error("solid paint equals nil")
	}
}

func TestLinearGradientPaintEqual(t *testing.T) {
	stops := []ColorStop{{0, Red}, {0.5, Green}, {1, Blue}}
	a := LinearGradientPaint{Start: Pt(0, 0), End: Pt(10, 0), Stops: stops, Cycle: CycleRepeat}

	b := LinearGradientPaint{Start: Pt(0, 0), End: Pt(10, 0),
		Stops: []ColorStop{{0, Red}, {0.5, Green}, {1, Blue}}, Cycle: CycleRepeat}
	if !a.Equal(b) {
		t.Error("structurally equal gradients compare unequal")
	}

	c := b
	c.Stops = []ColorStop{{0, Red}, {1, Blue}}
	if a.Equal(c) {
		t.Error("gradients with different stops compare equal")
	}

	d := b
	d.Cycle = CycleNone
	if a.Equal(d) {
		t.Error("gradients with different cycle modes compare equal")
	}
}

func TestRadialGradientPaintEqual(t *testing.T) {
	a := RadialGradientPaint{Center: Pt(5, 5), Radius: 10, Focus: Pt(5, 5),
		Stops: []ColorStop{{0, White}, {1, Black}}}
	b := a
	b.Stops = []ColorStop{{0, White}, {1, Black}}
	if !a.Equal(b) {
		t.Error("equal radial gradients compare unequal")
	}
	b.Focus = Pt(4, 4)
	if a.Equal(b) {
		t.Error("radial gradients with different foci compare equal")
	}
}

func TestPaintsEqualCrossType(t *testing.T) {
	if PaintsEqual(SolidPaint{Color: Red}, TwoColorGradientPaint{C1: Red, C2: Red}) {
		t.Error("paints of different kinds compare equal")
	}
	if !PaintsEqual(nil, nil) {
		t.Error("two nil paints compare unequal")
	}
	if PaintsEqual(SolidPaint{Color: Red}, nil) {
		t.Error("paint equals nil")
	}
}

func TestStopColors(t *testing.T) {
	colors, positions := stopColors([]ColorStop{{0, Red}, {0.25, Green}, {1, Blue}})
	if len(colors) != 3 || len(positions) != 3 {
		t.Fatalf("got %d colors, %d positions, want 3 each", len(colors), len(positions))
	}
	if colors[1] != Green {
		t.Errorf("colors[1] = %v, want Green", colors[1])
	}
	if positions[1] != 0.25 {
		t.Errorf("positions[1] = %v, want 0.25", positions[1])
	}
}

func TestStrokeEqualDeepComparesDash(t *testing.T) {
	a := Stroke{Width: 2, MiterLimit: 10, Dash: &Dash{Lengths: []float64{4, 2}, Phase: 1}}
	b := Stroke{Width: 2, MiterLimit: 10, Dash: &Dash{Lengths: []float64{4, 2}, Phase: 1}}
	if !a.Equal(b) {
		t.Error("strokes with equal dashes compare unequal")
	}
	b.Dash.Phase = 0
	if a.Equal(b) {
		t.Error("strokes with different dash phases compare equal")
	}
	c := Stroke{Width: 2, MiterLimit: 10}
	if a.Equal(c) {
		t.Error("dashed stroke equals solid stroke")
	}
	if !c.Equal(Stroke{Width: 2, MiterLimit: 10}) {
		t.Error("equal solid strokes compare unequal")
	}
}
