package backend

import "github.com/chewxy/math32"

// FillMode determines path-interior membership.
type FillMode uint8

const (
	// FillWinding uses the non-zero winding rule.
	FillWinding FillMode = iota
	// FillEvenOdd uses the even-odd rule.
	FillEvenOdd
)

// PathVerb identifies one path segment kind.
type PathVerb uint8

const (
	VerbMoveTo PathVerb = iota
	VerbLineTo
	VerbQuadTo
	VerbCubicTo
	VerbClose
)

// points per verb, excluding the implicit current point
var verbPoints = [...]int{
	VerbMoveTo:  1,
	VerbLineTo:  1,
	VerbQuadTo:  2,
	VerbCubicTo: 3,
	VerbClose:   0,
}

// Path is the backend path object: a verb list with packed float32
// coordinates, built by replaying shape outlines. The zero value is an
// empty path with winding fill.
type Path struct {
	verbs  []PathVerb
	coords []float32
	fill   FillMode
}

// NewPath returns an empty path.
func NewPath() *Path {
	return &Path{}
}

// MoveTo starts a new subpath at (x, y).
func (p *Path) MoveTo(x, y float32) {
	p.verbs = append(p.verbs, VerbMoveTo)
	p.coords = append(p.coords, x, y)
}

// LineTo adds a line segment to (x, y).
func (p *Path) LineTo(x, y float32) {
	p.verbs = append(p.verbs, VerbLineTo)
	p.coords = append(p.coords, x, y)
}

// QuadTo adds a quadratic Bezier segment with control (cx, cy) ending at
// (x, y).
func (p *Path) QuadTo(cx, cy, x, y float32) {
	p.verbs = append(p.verbs, VerbQuadTo)
	p.coords = append(p.coords, cx, cy, x, y)
}

// CubicTo adds a cubic Bezier segment with controls (c1x, c1y) and
// (c2x, c2y) ending at (x, y).
func (p *Path) CubicTo(c1x, c1y, c2x, c2y, x, y float32) {
	p.verbs = append(p.verbs, VerbCubicTo)
	p.coords = append(p.coords, c1x, c1y, c2x, c2y, x, y)
}

// ClosePath closes the current subpath.
func (p *Path) ClosePath() {
	p.verbs = append(p.verbs, VerbClose)
}

// SetFillMode sets the fill mode used when the path is filled.
func (p *Path) SetFillMode(mode FillMode) {
	p.fill = mode
}

// FillMode returns the fill mode.
func (p *Path) FillMode() FillMode {
	return p.fill
}

// Empty reports whether the path has no segments.
func (p *Path) Empty() bool {
	return len(p.verbs) == 0
}

// Verbs returns the verb list. The slice must not be modified.
func (p *Path) Verbs() []PathVerb {
	return p.verbs
}

// Coords returns the packed coordinate list. The slice must not be
// modified.
func (p *Path) Coords() []float32 {
	return p.coords
}

// Walk calls fn for each segment with its verb and coordinate pairs.
// pts holds the points for the verb only (control points first, end
// point last); it is reused between calls.
func (p *Path) Walk(fn func(verb PathVerb, pts []float32)) {
	var buf [6]float32
	i := 0
	for _, v := range p.verbs {
		n := verbPoints[v] * 2
		copy(buf[:n], p.coords[i:i+n])
		fn(v, buf[:n])
		i += n
	}
}

// Bounds returns the control-point bounding box of the path. Curve
// control points may lie outside the tight bounds; this matches the
// conservative bounds backends use for quick rejection.
func (p *Path) Bounds() Rect {
	if len(p.coords) == 0 {
		return Rect{}
	}
	r := Rect{
		Left: p.coords[0], Top: p.coords[1],
		Right: p.coords[0], Bottom: p.coords[1],
	}
	for i := 2; i+1 < len(p.coords); i += 2 {
		r.Left = math32.Min(r.Left, p.coords[i])
		r.Right = math32.Max(r.Right, p.coords[i])
		r.Top = math32.Min(r.Top, p.coords[i+1])
		r.Bottom = math32.Max(r.Bottom, p.coords[i+1])
	}
	return r
}

// Rect is an axis-aligned rectangle with float32 edges.
type Rect struct {
	Left, Top, Right, Bottom float32
}

// RectXYWH constructs a Rect from an origin and size.
func RectXYWH(x, y, w, h float32) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

// Width returns the rectangle width.
func (r Rect) Width() float32 { return r.Right - r.Left }

// Height returns the rectangle height.
func (r Rect) Height() float32 { return r.Bottom - r.Top }

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.Right <= r.Left || r.Bottom <= r.Top
}

// Intersects reports whether r and other overlap.
func (r Rect) Intersects(other Rect) bool {
	return r.Left < other.Right && other.Left < r.Right &&
		r.Top < other.Bottom && other.Top < r.Bottom
}
