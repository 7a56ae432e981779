package g2d

// CycleMode defines how a gradient repeats outside its stop range.
type CycleMode uint8

const (
	// CycleNone clamps to the edge colors.
	CycleNone CycleMode = iota
	// CycleRepeat repeats the gradient.
	CycleRepeat
	// CycleReflect mirrors the gradient.
	CycleReflect
)

// ColorStop represents a color at a position in a gradient, with Offset
// in [0, 1].
type ColorStop struct {
	Offset float64
	Color  RGBA
}

// Paint describes how geometry is colored. It is a closed set of
// variants: SolidPaint, LinearGradientPaint, RadialGradientPaint and
// TwoColorGradientPaint. Paints compare structurally via Equal; two
// gradients with equal field values are the same paint.
type Paint interface {
	// Equal reports structural equality with another paint.
	Equal(other Paint) bool

	isPaint()
}

// SolidPaint fills with a single color.
type SolidPaint struct {
	Color RGBA
}

func (SolidPaint) isPaint() {}

// Equal implements Paint.
func (p SolidPaint) Equal(other Paint) bool {
	o, ok := other.(SolidPaint)
	return ok && p == o
}

// LinearGradientPaint is a multi-stop linear gradient between two
// points.
type LinearGradientPaint struct {
	Start Point
	End   Point
	Stops []ColorStop
	Cycle CycleMode
}

func (LinearGradientPaint) isPaint() {}

// Equal implements Paint.
func (p LinearGradientPaint) Equal(other Paint) bool {
	o, ok := other.(LinearGradientPaint)
	return ok && p.Start == o.Start && p.End == o.End &&
		p.Cycle == o.Cycle && stopsEqual(p.Stops, o.Stops)
}

// RadialGradientPaint is a multi-stop radial gradient. A Focus distinct
// from Center produces an off-center (conical) gradient.
type RadialGradientPaint struct {
	Center Point
	Radius float64
	Focus  Point
	Stops  []ColorStop
	Cycle  CycleMode
}

func (RadialGradientPaint) isPaint() {}

// Equal implements Paint.
func (p RadialGradientPaint) Equal(other Paint) bool {
	o, ok := other.(RadialGradientPaint)
	return ok && p.Center == o.Center && p.Radius == o.Radius &&
		p.Focus == o.Focus && p.Cycle == o.Cycle && stopsEqual(p.Stops, o.Stops)
}

// TwoColorGradientPaint is a simple two-point, two-color gradient.
// When Cyclic the gradient reflects beyond its endpoints, otherwise the
// end colors extend.
type TwoColorGradientPaint struct {
	P1     Point
	C1     RGBA
	P2     Point
	C2     RGBA
	Cyclic bool
}

func (TwoColorGradientPaint) isPaint() {}

// Equal implements Paint.
func (p TwoColorGradientPaint) Equal(other Paint) bool {
	o, ok := other.(TwoColorGradientPaint)
	return ok && p == o
}

// PaintsEqual reports whether two paints are structurally equal or both
// nil.
func PaintsEqual(p1, p2 Paint) bool {
	if p1 == nil {
		return p2 == nil
	}
	if p2 == nil {
		return false
	}
	return p1.Equal(p2)
}

func stopsEqual(a, b []ColorStop) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// stopColors splits stops into the parallel color and position arrays
// backends consume.
func stopColors(stops []ColorStop) ([]RGBA, []float32) {
	colors := make([]RGBA, len(stops))
	positions := make([]float32, len(stops))
	for i, s := range stops {
		colors[i] = s.Color
		positions[i] = float32(s.Offset)
	}
	return colors, positions
}
