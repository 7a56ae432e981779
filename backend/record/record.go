// Package record provides a recording backend that captures every canvas
// call as a typed operation instead of rasterizing pixels.
//
// The recorded operation log makes state-translation behavior observable:
// tests assert on the exact sequence of draw calls, save marks, matrix
// updates and clip pushes a drawing context issued, and on how many
// shaders or typefaces were constructed. The backend is also useful as a
// reference for implementing new backends, since it documents the call
// protocol without any rendering concerns.
//
// A Backend and the canvases it creates are not safe for concurrent use,
// matching the single-threaded contract of the drawing facade.
package record

import (
	"image"

	"github.com/gogpu/g2d/backend"
)

func init() {
	backend.Register("record", func() backend.Backend { return New() })
}

// Op is one recorded canvas operation. Name identifies the call; the
// remaining fields carry the arguments relevant to that call and are
// zero otherwise. Paint is a snapshot taken at call time, since the live
// paint object is mutated in place by the caller.
type Op struct {
	Name string

	Paint *backend.Paint

	X1, Y1, X2, Y2 float32
	Rect           backend.Rect
	Path           *backend.Path
	Image          backend.Image
	Text           string
	Font           backend.Font
	Matrix         backend.Matrix
	Mark           int
}

// Backend is a recording backend. It counts every resource construction
// so tests can verify construction-avoidance contracts.
type Backend struct {
	// Construction counters.
	ColorShaders     int
	LinearGradients  int
	RadialGradients  int
	ConicalGradients int
	DashEffects      int
	Typefaces        int
	Fonts            int
	Images           int

	// FailDashes makes MakeDashEffect reject every dash array,
	// simulating a backend that cannot construct the effect.
	FailDashes bool
}

// New returns a new recording backend.
func New() *Backend {
	return &Backend{}
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return "record" }

// ShaderCount returns the total number of shaders constructed.
func (b *Backend) ShaderCount() int {
	return b.ColorShaders + b.LinearGradients + b.RadialGradients + b.ConicalGradients
}

// NewSurface implements backend.Backend.
func (b *Backend) NewSurface(width, height int) (backend.Surface, error) {
	return &Surface{
		width:  width,
		height: height,
		canvas: &Canvas{saveCount: 1},
	}, nil
}

type shader struct{ kind string }

func (s shader) ShaderKind() string { return s.kind }

// MakeColorShader implements backend.Backend.
func (b *Backend) MakeColorShader(backend.Color) backend.Shader {
	b.ColorShaders++
	return shader{kind: "color"}
}

// MakeLinearGradient implements backend.Backend.
func (b *Backend) MakeLinearGradient(x0, y0, x1, y1 float32, colors []backend.Color, positions []float32, tile backend.TileMode) backend.Shader {
	b.LinearGradients++
	return shader{kind: "linear-gradient"}
}

// MakeRadialGradient implements backend.Backend.
func (b *Backend) MakeRadialGradient(cx, cy, radius float32, colors []backend.Color, positions []float32, tile backend.TileMode) backend.Shader {
	b.RadialGradients++
	return shader{kind: "radial-gradient"}
}

// MakeTwoPointConicalGradient implements backend.Backend.
func (b *Backend) MakeTwoPointConicalGradient(x0, y0, r0, x1, y1, r1 float32, colors []backend.Color, positions []float32, tile backend.TileMode) backend.Shader {
	b.ConicalGradients++
	return shader{kind: "two-point-conical"}
}

type dashEffect struct{}

func (dashEffect) EffectKind() string { return "dash" }

// MakeDashEffect implements backend.Backend. Intervals must be non-empty
// with at least one positive entry and no negative entries.
func (b *Backend) MakeDashEffect(intervals []float32, phase float32) (backend.PathEffect, error) {
	if b.FailDashes || len(intervals) == 0 {
		return nil, backend.ErrInvalidDash
	}
	anyPositive := false
	for _, iv := range intervals {
		if iv < 0 {
			return nil, backend.ErrInvalidDash
		}
		if iv > 0 {
			anyPositive = true
		}
	}
	if !anyPositive {
		return nil, backend.ErrInvalidDash
	}
	b.DashEffects++
	return dashEffect{}, nil
}

// Typeface is a recorded typeface handle.
type Typeface struct {
	family string
	style  backend.TypefaceStyle
}

// Family implements backend.Typeface.
func (t *Typeface) Family() string { return t.family }

// Style implements backend.Typeface.
func (t *Typeface) Style() backend.TypefaceStyle { return t.style }

// MakeTypeface implements backend.Backend. Every call constructs a fresh
// handle; deduplication is the caller's concern.
func (b *Backend) MakeTypeface(family string, style backend.TypefaceStyle) (backend.Typeface, error) {
	b.Typefaces++
	return &Typeface{family: family, style: style}, nil
}

// Font is a recorded sized font with synthetic, deterministic metrics:
// ascent 0.8em, descent 0.2em, leading 0.1em, advance 0.6em per rune.
type Font struct {
	tf   backend.Typeface
	size float64
}

// Typeface implements backend.Font.
func (f *Font) Typeface() backend.Typeface { return f.tf }

// Size implements backend.Font.
func (f *Font) Size() float64 { return f.size }

// Metrics implements backend.Font.
func (f *Font) Metrics() backend.FontMetrics {
	return backend.FontMetrics{
		Ascent:  float32(0.8 * f.size),
		Descent: float32(0.2 * f.size),
		Leading: float32(0.1 * f.size),
	}
}

// MeasureString implements backend.Font.
func (f *Font) MeasureString(s string) float32 {
	n := 0
	for range s {
		n++
	}
	return float32(float64(n) * 0.6 * f.size)
}

// MakeFont implements backend.Backend.
func (b *Backend) MakeFont(tf backend.Typeface, size float64) backend.Font {
	b.Fonts++
	return &Font{tf: tf, size: size}
}

type recImage struct{ w, h int }

func (m recImage) Width() int  { return m.w }
func (m recImage) Height() int { return m.h }

// MakeImage implements backend.Backend.
func (b *Backend) MakeImage(img image.Image) (backend.Image, error) {
	b.Images++
	bounds := img.Bounds()
	return recImage{w: bounds.Dx(), h: bounds.Dy()}, nil
}

// Surface is a recording surface.
type Surface struct {
	width, height int
	canvas        *Canvas
}

// Canvas implements backend.Surface.
func (s *Surface) Canvas() backend.Canvas { return s.canvas }

// Width implements backend.Surface.
func (s *Surface) Width() int { return s.width }

// Height implements backend.Surface.
func (s *Surface) Height() int { return s.height }

// Snapshot implements backend.Surface; recording surfaces have no
// pixels, so the snapshot is blank.
func (s *Surface) Snapshot() image.Image {
	return image.NewRGBA(image.Rect(0, 0, s.width, s.height))
}
