// Package softraster provides a pure-CPU rendering backend. Geometry
// is flattened and filled through a scanline rasterizer, gradients are
// evaluated per pixel, and text renders from system font outlines
// resolved via go-text fontscan.
//
// Importing the package registers the backend under the name
// "softraster":
//
//	import _ "github.com/gogpu/g2d/backend/softraster"
package softraster

import (
	"image"
	"os"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"

	"github.com/gogpu/g2d/backend"
)

func init() {
	backend.Register("softraster", func() backend.Backend {
		return New()
	})
}

// Backend is the software rasterizer backend.
type Backend struct {
	fontOnce sync.Once
	fontMu   sync.Mutex
	fontMap  *fontscan.FontMap
}

// New returns a software rasterizer backend. Fonts load lazily on the
// first typeface request.
func New() *Backend {
	return &Backend{}
}

// Name implements backend.Backend.
func (b *Backend) Name() string { return "softraster" }

// NewSurface implements backend.Backend.
func (b *Backend) NewSurface(width, height int) (backend.Surface, error) {
	if width < 1 || height < 1 {
		return nil, errInvalidSize(width, height)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	return &surface{
		img:    img,
		canvas: newCanvas(img),
	}, nil
}

type surface struct {
	img    *image.RGBA
	canvas *Canvas
}

func (s *surface) Canvas() backend.Canvas { return s.canvas }
func (s *surface) Width() int             { return s.img.Bounds().Dx() }
func (s *surface) Height() int            { return s.img.Bounds().Dy() }
func (s *surface) Snapshot() image.Image  { return s.img }

// MakeColorShader implements backend.Backend.
func (b *Backend) MakeColorShader(c backend.Color) backend.Shader {
	return &colorShader{c: c}
}

// MakeLinearGradient implements backend.Backend.
func (b *Backend) MakeLinearGradient(x0, y0, x1, y1 float32, colors []backend.Color, positions []float32, tile backend.TileMode) backend.Shader {
	return &linearShader{
		x0: x0, y0: y0, x1: x1, y1: y1,
		stops: buildStops(colors, positions),
		tile:  tile,
	}
}

// MakeRadialGradient implements backend.Backend.
func (b *Backend) MakeRadialGradient(cx, cy, radius float32, colors []backend.Color, positions []float32, tile backend.TileMode) backend.Shader {
	return &radialShader{
		cx: cx, cy: cy, radius: radius,
		stops: buildStops(colors, positions),
		tile:  tile,
	}
}

// MakeTwoPointConicalGradient implements backend.Backend.
func (b *Backend) MakeTwoPointConicalGradient(x0, y0, r0, x1, y1, r1 float32, colors []backend.Color, positions []float32, tile backend.TileMode) backend.Shader {
	return &conicalShader{
		fx: x0, fy: y0, fr: r0,
		cx: x1, cy: y1, cr: r1,
		stops: buildStops(colors, positions),
		tile:  tile,
	}
}

// MakeDashEffect implements backend.Backend. The intervals must be
// non-empty, non-negative and not all zero.
func (b *Backend) MakeDashEffect(intervals []float32, phase float32) (backend.PathEffect, error) {
	if len(intervals) == 0 {
		return nil, backend.ErrInvalidDash
	}
	allZero := true
	for _, v := range intervals {
		if v < 0 {
			return nil, backend.ErrInvalidDash
		}
		if v > 0 {
			allZero = false
		}
	}
	if allZero {
		return nil, backend.ErrInvalidDash
	}
	d := &dashEffect{phase: float64(phase)}
	d.intervals = make([]float64, len(intervals))
	for i, v := range intervals {
		d.intervals[i] = float64(v)
	}
	return d, nil
}

type dashEffect struct {
	intervals []float64
	phase     float64
}

func (*dashEffect) EffectKind() string { return "dash" }

// genericFamilies maps the portable family names to fontscan family
// queries.
var genericFamilies = map[string]string{
	"SansSerif":   "sans-serif",
	"Serif":       "serif",
	"Monospaced":  "monospace",
	"Dialog":      "sans-serif",
	"DialogInput": "monospace",
}

func (b *Backend) fonts() *fontscan.FontMap {
	b.fontOnce.Do(func() {
		b.fontMap = fontscan.NewFontMap(nil)
		cacheDir, err := os.UserCacheDir()
		if err != nil {
			cacheDir = os.TempDir()
		}
		// resolution falls back to nil faces when no fonts load
		_ = b.fontMap.UseSystemFonts(cacheDir)
	})
	return b.fontMap
}

// MakeTypeface implements backend.Backend. Resolution never fails: if
// no face on the system matches, the typeface renders nothing and
// falls back to synthetic metrics.
func (b *Backend) MakeTypeface(family string, style backend.TypefaceStyle) (backend.Typeface, error) {
	queryFamily := family
	if mapped, ok := genericFamilies[family]; ok {
		queryFamily = mapped
	}
	aspect := font.Aspect{Style: font.StyleNormal, Weight: font.WeightNormal}
	if style&backend.StyleBold != 0 {
		aspect.Weight = font.WeightBold
	}
	if style&backend.StyleItalic != 0 {
		aspect.Style = font.StyleItalic
	}

	fm := b.fonts()
	b.fontMu.Lock()
	fm.SetQuery(fontscan.Query{
		Families: []string{queryFamily},
		Aspect:   aspect,
	})
	face := fm.ResolveFace(' ')
	b.fontMu.Unlock()

	return &typeface{
		family: family,
		style:  style,
		face:   face,
	}, nil
}

// MakeFont implements backend.Backend.
func (b *Backend) MakeFont(tf backend.Typeface, size float64) backend.Font {
	return newRasterFont(tf.(*typeface), size)
}

// MakeImage implements backend.Backend.
func (b *Backend) MakeImage(img image.Image) (backend.Image, error) {
	if img == nil {
		return nil, errNilImage
	}
	return &texture{src: img}, nil
}

type texture struct {
	src image.Image
}

func (t *texture) Width() int  { return t.src.Bounds().Dx() }
func (t *texture) Height() int { return t.src.Bounds().Dy() }
