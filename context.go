package g2d

import (
	"fmt"
	"io"
	"math"

	"github.com/gogpu/g2d/backend"
)

// Context is the main drawing context. It translates an immediate-mode
// 2D drawing API (shapes, text, images, gradients, strokes, clips,
// affine transforms) onto a backend canvas.
//
// A Context retains the full drawing state itself because the canvas
// contract offers no state queries: the current paint, stroke, font,
// transform and clip all live here and are pushed down on every
// operation. One shared mutable backend paint is reconfigured in place
// rather than allocated per call.
//
// Context implements io.Closer. A Context and the contexts derived from
// it via Create share one canvas and must be used from a single
// goroutine.
type Context struct {
	width  int
	height int

	backend backend.Backend
	surface backend.Surface
	canvas  backend.Canvas

	// paint is reconfigured in place for every draw call.
	paint *backend.Paint

	// restoreCount marks the canvas save level owned by this context.
	// Clip replacement and Dispose restore to it.
	restoreCount int

	curPaint   Paint
	color      RGBA
	stroke     Stroke
	font       Font
	bkFont     backend.Font
	typefaces  *TypefaceCache
	transform  Matrix
	clip       *Path // device space, nil when unclipped
	composite  Composite
	background *RGBA
	hints      Hints

	disposed bool
}

var _ io.Closer = (*Context)(nil)

// New creates a drawing context backed by a fresh surface of the given
// size on the default backend (or the backend chosen via WithBackend).
func New(width, height int, opts ...ContextOption) (*Context, error) {
	var options contextOptions
	for _, opt := range opts {
		opt(&options)
	}
	b := options.backend
	if b == nil {
		b = backend.Default()
	}
	if b == nil {
		return nil, backend.ErrBackendNotAvailable
	}
	surface, err := b.NewSurface(width, height)
	if err != nil {
		return nil, fmt.Errorf("g2d: creating %dx%d surface on %q: %w", width, height, b.Name(), err)
	}
	gc := newContext(b, surface.Canvas(), &options)
	gc.surface = surface
	gc.width = width
	gc.height = height
	logger().Debug("context created", "backend", b.Name(), "width", width, "height", height)
	return gc, nil
}

// NewForCanvas creates a drawing context over an existing canvas. The
// canvas keeps whatever content it already has; the context only layers
// its own state on top.
func NewForCanvas(canvas backend.Canvas, b backend.Backend, opts ...ContextOption) *Context {
	if canvas == nil {
		nilNotPermitted("canvas")
	}
	if b == nil {
		nilNotPermitted("backend")
	}
	var options contextOptions
	for _, opt := range opts {
		opt(&options)
	}
	return newContext(b, canvas, &options)
}

func newContext(b backend.Backend, canvas backend.Canvas, options *contextOptions) *Context {
	tc := options.typefaces
	if tc == nil {
		tc = sharedTypefaceCache(b)
	}
	gc := &Context{
		backend:   b,
		canvas:    canvas,
		paint:     backend.NewPaint(),
		typefaces: tc,
		color:     Black,
		stroke:    DefaultStroke(),
		transform: Identity(),
		composite: DefaultComposite(),
		hints:     make(Hints),
	}
	gc.paint.Shader = b.MakeColorShader(Black.toBackend())
	gc.restoreCount = canvas.Save()
	gc.SetFont(DefaultFont)
	return gc
}

// Width returns the surface width, or 0 for a canvas-only context.
func (gc *Context) Width() int { return gc.width }

// Height returns the surface height, or 0 for a canvas-only context.
func (gc *Context) Height() int { return gc.height }

// Backend returns the backend this context renders through.
func (gc *Context) Backend() backend.Backend { return gc.backend }

// Canvas returns the underlying canvas.
func (gc *Context) Canvas() backend.Canvas { return gc.canvas }

// Surface returns the surface owned by this context, or nil when the
// context was created over an existing canvas.
func (gc *Context) Surface() backend.Surface { return gc.surface }

// ---------------------------------------------------------------------
// Drawing
// ---------------------------------------------------------------------

// Draw strokes the outline of a shape with the current stroke and
// paint. Lines, rectangles and ellipses take direct canvas calls;
// everything else goes through a path. Rectangles with non-positive
// width or height draw nothing.
func (gc *Context) Draw(shape Shape) {
	if shape == nil {
		nilNotPermitted("shape")
	}
	gc.paint.Mode = backend.PaintStroke
	switch s := shape.(type) {
	case Line:
		gc.canvas.DrawLine(float32(s.X1), float32(s.Y1), float32(s.X2), float32(s.Y2), gc.paint)
	case Rect:
		if s.W <= 0 || s.H <= 0 {
			return
		}
		gc.canvas.DrawRect(rectToBackend(s), gc.paint)
	case Ellipse:
		gc.canvas.DrawOval(backend.RectXYWH(float32(s.X), float32(s.Y), float32(s.W), float32(s.H)), gc.paint)
	default:
		gc.canvas.DrawPath(buildPath(shape), gc.paint)
	}
}

// Fill fills the interior of a shape with the current paint.
// Rectangles with non-positive width or height fill nothing. The
// winding rule of a Path carries over to the backend; other shapes
// fill non-zero.
func (gc *Context) Fill(shape Shape) {
	if shape == nil {
		nilNotPermitted("shape")
	}
	gc.paint.Mode = backend.PaintFill
	switch s := shape.(type) {
	case Rect:
		if s.W <= 0 || s.H <= 0 {
			return
		}
		gc.canvas.DrawRect(rectToBackend(s), gc.paint)
	case Ellipse:
		gc.canvas.DrawOval(backend.RectXYWH(float32(s.X), float32(s.Y), float32(s.W), float32(s.H)), gc.paint)
	default:
		gc.canvas.DrawPath(buildFillPath(shape), gc.paint)
	}
}

// DrawLine strokes a line segment.
func (gc *Context) DrawLine(x1, y1, x2, y2 float64) {
	gc.Draw(Line{X1: x1, Y1: y1, X2: x2, Y2: y2})
}

// DrawRect strokes a rectangle outline.
func (gc *Context) DrawRect(x, y, w, h float64) {
	gc.Draw(Rect{X: x, Y: y, W: w, H: h})
}

// FillRect fills a rectangle.
func (gc *Context) FillRect(x, y, w, h float64) {
	gc.Fill(Rect{X: x, Y: y, W: w, H: h})
}

// ClearRect fills a rectangle with the background color. Without a
// background set it does nothing.
func (gc *Context) ClearRect(x, y, w, h float64) {
	if gc.background == nil {
		logger().Debug("ClearRect ignored, no background color set")
		return
	}
	saved := gc.snapshotPaint()
	gc.SetPaint(SolidPaint{Color: *gc.background})
	gc.FillRect(x, y, w, h)
	gc.SetPaint(saved)
}

// snapshotPaint returns the paint to restore after a temporary paint
// swap. Before any SetPaint the current solid color stands in, since
// restoring nil would be ignored.
func (gc *Context) snapshotPaint() Paint {
	if gc.curPaint != nil {
		return gc.curPaint
	}
	return SolidPaint{Color: gc.color}
}

// DrawOval strokes an ellipse outline within the framing rectangle.
func (gc *Context) DrawOval(x, y, w, h float64) {
	gc.Draw(Ellipse{X: x, Y: y, W: w, H: h})
}

// FillOval fills an ellipse within the framing rectangle.
func (gc *Context) FillOval(x, y, w, h float64) {
	gc.Fill(Ellipse{X: x, Y: y, W: w, H: h})
}

// DrawRoundRect strokes a rounded rectangle. arcW and arcH are the
// full corner arc diameters.
func (gc *Context) DrawRoundRect(x, y, w, h, arcW, arcH float64) {
	gc.Draw(RoundRect{X: x, Y: y, W: w, H: h, ArcW: arcW, ArcH: arcH})
}

// FillRoundRect fills a rounded rectangle.
func (gc *Context) FillRoundRect(x, y, w, h, arcW, arcH float64) {
	gc.Fill(RoundRect{X: x, Y: y, W: w, H: h, ArcW: arcW, ArcH: arcH})
}

// DrawArc strokes an elliptical arc within the framing rectangle.
// Angles are in degrees, 0 at three o'clock, positive anticlockwise.
func (gc *Context) DrawArc(x, y, w, h, start, sweep float64) {
	gc.Draw(Arc{X: x, Y: y, W: w, H: h, Start: start, Sweep: sweep})
}

// FillArc fills an elliptical arc closed by the chord between its
// endpoints.
func (gc *Context) FillArc(x, y, w, h, start, sweep float64) {
	gc.Fill(Arc{X: x, Y: y, W: w, H: h, Start: start, Sweep: sweep})
}

// DrawPolyline strokes connected line segments through the points
// (xs[i], ys[i]). The polyline is left open.
func (gc *Context) DrawPolyline(xs, ys []float64) {
	gc.Draw(Polygon(xs, ys, false))
}

// DrawPolygon strokes a closed polygon outline.
func (gc *Context) DrawPolygon(xs, ys []float64) {
	gc.Draw(Polygon(xs, ys, true))
}

// FillPolygon fills a closed polygon.
func (gc *Context) FillPolygon(xs, ys []float64) {
	gc.Fill(Polygon(xs, ys, true))
}

// ---------------------------------------------------------------------
// Paint and color
// ---------------------------------------------------------------------

// Paint returns the current paint, or nil if only SetColor has been
// used since creation.
func (gc *Context) Paint() Paint { return gc.curPaint }

// Color returns the current solid drawing color.
func (gc *Context) Color() RGBA { return gc.color }

// SetPaint sets the paint used for drawing and filling. A nil paint is
// ignored. Setting a paint structurally equal to the current one is a
// no-op, so no shader is rebuilt.
func (gc *Context) SetPaint(p Paint) {
	if p == nil {
		logger().Debug("SetPaint ignored, nil paint")
		return
	}
	if PaintsEqual(p, gc.curPaint) {
		return
	}
	gc.curPaint = p
	switch pt := p.(type) {
	case SolidPaint:
		gc.color = pt.Color
		gc.paint.Shader = gc.backend.MakeColorShader(pt.Color.toBackend())
	case LinearGradientPaint:
		colors, positions := stopColors(pt.Stops)
		gc.paint.Shader = gc.backend.MakeLinearGradient(
			float32(pt.Start.X), float32(pt.Start.Y),
			float32(pt.End.X), float32(pt.End.Y),
			colorsToBackend(colors), positions, pt.Cycle.tileMode())
	case RadialGradientPaint:
		colors, positions := stopColors(pt.Stops)
		if pt.Focus == pt.Center {
			gc.paint.Shader = gc.backend.MakeRadialGradient(
				float32(pt.Center.X), float32(pt.Center.Y), float32(pt.Radius),
				colorsToBackend(colors), positions, pt.Cycle.tileMode())
		} else {
			gc.paint.Shader = gc.backend.MakeTwoPointConicalGradient(
				float32(pt.Focus.X), float32(pt.Focus.Y), 0,
				float32(pt.Center.X), float32(pt.Center.Y), float32(pt.Radius),
				colorsToBackend(colors), positions, pt.Cycle.tileMode())
		}
	case TwoColorGradientPaint:
		tile := backend.TileClamp
		if pt.Cyclic {
			tile = backend.TileMirror
		}
		gc.paint.Shader = gc.backend.MakeLinearGradient(
			float32(pt.P1.X), float32(pt.P1.Y),
			float32(pt.P2.X), float32(pt.P2.Y),
			[]backend.Color{pt.C1.toBackend(), pt.C2.toBackend()}, nil, tile)
	default:
		panic(fmt.Sprintf("g2d: unrecognized paint %T", p))
	}
}

// SetColor sets a solid drawing color. Setting the current color again
// is a no-op.
func (gc *Context) SetColor(c RGBA) {
	if c == gc.color && gc.curPaint != nil {
		return
	}
	gc.SetPaint(SolidPaint{Color: c})
}

func (c CycleMode) tileMode() backend.TileMode {
	switch c {
	case CycleRepeat:
		return backend.TileRepeat
	case CycleReflect:
		return backend.TileMirror
	default:
		return backend.TileClamp
	}
}

// Background returns the background color used by ClearRect and
// whether one has been set.
func (gc *Context) Background() (RGBA, bool) {
	if gc.background == nil {
		return RGBA{}, false
	}
	return *gc.background, true
}

// SetBackground sets the background color used by ClearRect.
func (gc *Context) SetBackground(c RGBA) {
	bg := c
	gc.background = &bg
}

// ---------------------------------------------------------------------
// Stroke
// ---------------------------------------------------------------------

// Stroke returns the current stroke.
func (gc *Context) Stroke() Stroke { return gc.stroke }

// SetStroke sets the stroke used by Draw operations. Widths below
// MinLineWidth are clamped up. A dash pattern the backend rejects is
// logged and the stroke falls back to solid.
func (gc *Context) SetStroke(s Stroke) {
	if s.Equal(gc.stroke) {
		return
	}
	gc.stroke = s
	width := s.Width
	if width < MinLineWidth {
		width = MinLineWidth
	}
	gc.paint.StrokeWidth = float32(width)
	gc.paint.StrokeCap = s.Cap.strokeCap()
	gc.paint.StrokeJoin = s.Join.strokeJoin()
	gc.paint.StrokeMiter = float32(s.MiterLimit)
	gc.paint.PathEffect = nil
	if s.Dash != nil {
		intervals := make([]float32, len(s.Dash.Lengths))
		for i, l := range s.Dash.Lengths {
			intervals[i] = float32(l)
		}
		eff, err := gc.backend.MakeDashEffect(intervals, float32(s.Dash.Phase))
		if err != nil {
			logger().Warn("dash pattern rejected, stroking solid", "error", err)
		} else {
			gc.paint.PathEffect = eff
		}
	}
}

func (c LineCap) strokeCap() backend.StrokeCap {
	switch c {
	case LineCapButt:
		return backend.CapButt
	case LineCapRound:
		return backend.CapRound
	case LineCapSquare:
		return backend.CapSquare
	}
	panic(fmt.Sprintf("g2d: unrecognized line cap %d", c))
}

func (j LineJoin) strokeJoin() backend.StrokeJoin {
	switch j {
	case LineJoinMiter:
		return backend.JoinMiter
	case LineJoinRound:
		return backend.JoinRound
	case LineJoinBevel:
		return backend.JoinBevel
	}
	panic(fmt.Sprintf("g2d: unrecognized line join %d", j))
}

// ---------------------------------------------------------------------
// Font
// ---------------------------------------------------------------------

// Font returns the current font selector.
func (gc *Context) Font() Font { return gc.font }

// SetFont sets the font for text operations. A font with an empty name
// is ignored. The family name passes through the KeyFontMapping hint,
// if set, before typeface resolution; resolution failure keeps the
// previous font and logs a warning.
func (gc *Context) SetFont(f Font) {
	if f.Name == "" {
		logger().Debug("SetFont ignored, empty font name")
		return
	}
	family := f.Name
	if mf := gc.fontMapping(); mf != nil {
		family = mf(family)
	}
	tf, err := gc.typefaces.Resolve(family, f.Style.typefaceStyle())
	if err != nil {
		logger().Warn("typeface resolution failed, keeping previous font",
			"family", family, "style", f.Style.typefaceStyle().String(), "error", err)
		return
	}
	gc.font = f
	gc.bkFont = gc.backend.MakeFont(tf, f.Size)
}

// FontMetrics returns measurements for the current font.
func (gc *Context) FontMetrics() Metrics {
	return Metrics{font: gc.bkFont}
}

func (gc *Context) fontMapping() func(string) string {
	if f, ok := gc.hints[KeyFontMapping].(func(string) string); ok {
		return f
	}
	return nil
}

// ---------------------------------------------------------------------
// Composite
// ---------------------------------------------------------------------

// Composite returns the current composite.
func (gc *Context) Composite() Composite {
	return gc.composite
}

// SetComposite sets the compositing rule and constant alpha applied to
// subsequent drawing. Unrecognized rules panic.
func (gc *Context) SetComposite(c Composite) {
	mode := c.Rule.blendMode()
	gc.composite = c
	gc.paint.Blend = mode
	gc.paint.Alpha = float32(c.Alpha)
}

// ---------------------------------------------------------------------
// Transform
// ---------------------------------------------------------------------

// Transform returns a copy of the current transform.
func (gc *Context) Transform() Matrix { return gc.transform }

// SetTransform replaces the current transform.
func (gc *Context) SetTransform(m Matrix) {
	gc.transform = m
	gc.canvas.SetMatrix(m.toBackend())
}

// Concat concatenates m onto the current transform, so m applies
// before the existing transform.
func (gc *Context) Concat(m Matrix) {
	gc.SetTransform(gc.transform.Multiply(m))
}

// Translate shifts the origin of user space.
func (gc *Context) Translate(tx, ty float64) {
	gc.transform = gc.transform.Multiply(Translate(tx, ty))
	gc.canvas.Translate(float32(tx), float32(ty))
}

// Scale scales user space.
func (gc *Context) Scale(sx, sy float64) {
	gc.transform = gc.transform.Multiply(Scale(sx, sy))
	gc.canvas.Scale(float32(sx), float32(sy))
}

// Rotate rotates user space by theta radians about the origin.
func (gc *Context) Rotate(theta float64) {
	gc.transform = gc.transform.Multiply(Rotate(theta))
	gc.canvas.Rotate(float32(theta * 180 / math.Pi))
}

// RotateAbout rotates user space by theta radians about (x, y).
func (gc *Context) RotateAbout(theta, x, y float64) {
	gc.Translate(x, y)
	gc.Rotate(theta)
	gc.Translate(-x, -y)
}

// Shear shears user space.
func (gc *Context) Shear(shx, shy float64) {
	gc.transform = gc.transform.Multiply(Shear(shx, shy))
	gc.canvas.Skew(float32(shx), float32(shy))
}

// ---------------------------------------------------------------------
// Hints
// ---------------------------------------------------------------------

// Hint returns the value stored for a hint key, or nil.
func (gc *Context) Hint(key HintKey) any {
	return gc.hints[key]
}

// SetHint stores a rendering hint. An incompatible value panics.
func (gc *Context) SetHint(key HintKey, value any) {
	if key == nil {
		nilNotPermitted("key")
	}
	if !key.CompatibleValue(value) {
		panic(fmt.Sprintf("g2d: incompatible value %v for hint %s", value, key))
	}
	gc.hints[key] = value
}

// Hints returns a copy of all hints.
func (gc *Context) Hints() Hints {
	out := make(Hints, len(gc.hints))
	for k, v := range gc.hints {
		out[k] = v
	}
	return out
}

// SetHints replaces all hints.
func (gc *Context) SetHints(h Hints) {
	gc.hints = make(Hints, len(h))
	gc.AddHints(h)
}

// AddHints merges hints into the current set.
func (gc *Context) AddHints(h Hints) {
	for k, v := range h {
		gc.SetHint(k, v)
	}
}

// ---------------------------------------------------------------------
// Lifecycle
// ---------------------------------------------------------------------

// Create returns a derived context on the same canvas with a copy of
// the current drawing state. Changes to either context do not affect
// the other's retained state, but both write through the same canvas:
// dispose derived contexts in reverse creation order.
func (gc *Context) Create() *Context {
	child := NewForCanvas(gc.canvas, gc.backend, WithTypefaceCache(gc.typefaces))
	child.surface = gc.surface
	child.width = gc.width
	child.height = gc.height
	child.SetHints(gc.Hints())
	child.SetTransform(gc.Transform())
	child.SetClip(gc.GetClip())
	if gc.curPaint != nil {
		child.SetPaint(gc.curPaint)
	}
	child.SetColor(gc.color)
	child.SetComposite(gc.composite)
	child.SetStroke(gc.stroke)
	child.SetFont(gc.font)
	if gc.background != nil {
		child.SetBackground(*gc.background)
	}
	return child
}

// CreateAt returns a derived context whose origin is translated to
// (x, y) and whose clip is narrowed to the w by h window.
func (gc *Context) CreateAt(x, y, w, h float64) *Context {
	child := gc.Create()
	child.Translate(x, y)
	child.ClipRect(0, 0, w, h)
	return child
}

// Dispose releases the canvas state owned by this context, restoring
// the save level taken at creation. Safe to call more than once; after
// the first call it does nothing.
func (gc *Context) Dispose() {
	if gc.disposed {
		return
	}
	gc.disposed = true
	gc.canvas.RestoreToCount(gc.restoreCount)
	logger().Debug("context disposed")
}

// Close implements io.Closer by disposing the context.
func (gc *Context) Close() error {
	gc.Dispose()
	return nil
}

func rectToBackend(r Rect) backend.Rect {
	return backend.RectXYWH(float32(r.X), float32(r.Y), float32(r.W), float32(r.H))
}

func nilNotPermitted(name string) {
	panic("g2d: nil '" + name + "' argument not permitted")
}
