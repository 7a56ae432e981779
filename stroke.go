package g2d

// MinLineWidth is the smallest stroke width applied to the backend.
// Narrower strokes are widened to stay visible on high-DPI output.
const MinLineWidth = 0.1

// LineCap defines the decoration at the ends of an open stroked path.
type LineCap uint8

const (
	LineCapButt LineCap = iota
	LineCapRound
	LineCapSquare
)

// LineJoin defines the decoration at corners of a stroked path.
type LineJoin uint8

const (
	LineJoinMiter LineJoin = iota
	LineJoinRound
	LineJoinBevel
)

// Dash describes a dash pattern. Lengths alternates on segments and
// gaps, in user-space units. Phase is the offset into the pattern at
// which the stroke begins.
type Dash struct {
	Lengths []float64
	Phase   float64
}

// Stroke describes how outlines are stroked. The zero value is not
// useful; start from DefaultStroke or NewStroke.
type Stroke struct {
	Width      float64
	Cap        LineCap
	Join       LineJoin
	MiterLimit float64
	Dash       *Dash
}

// DefaultStroke returns a solid one-unit stroke with butt caps and
// miter joins.
func DefaultStroke() Stroke {
	return Stroke{
		Width:      1,
		Cap:        LineCapButt,
		Join:       LineJoinMiter,
		MiterLimit: 10,
	}
}

// NewStroke returns a solid stroke of the given width with default caps
// and joins.
func NewStroke(width float64) Stroke {
	s := DefaultStroke()
	s.Width = width
	return s
}

// Equal reports whether two strokes produce identical output.
func (s Stroke) Equal(other Stroke) bool {
	if s.Width != other.Width || s.Cap != other.Cap ||
		s.Join != other.Join || s.MiterLimit != other.MiterLimit {
		return false
	}
	if s.Dash == nil || other.Dash == nil {
		return s.Dash == other.Dash
	}
	if s.Dash.Phase != other.Dash.Phase || len(s.Dash.Lengths) != len(other.Dash.Lengths) {
		return false
	}
	for i := range s.Dash.Lengths {
		if s.Dash.Lengths[i] != other.Dash.Lengths[i] {
			return false
		}
	}
	return true
}
