package softraster

import (
	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/font/opentype"

	"github.com/gogpu/g2d/backend"
)

// typeface wraps a resolved system font face. face may be nil when no
// system font matched; text then measures synthetically and renders
// nothing.
type typeface struct {
	family string
	style  backend.TypefaceStyle
	face   *font.Face
}

func (t *typeface) Family() string               { return t.family }
func (t *typeface) Style() backend.TypefaceStyle { return t.style }

type rasterFont struct {
	tf   *typeface
	size float64
}

func newRasterFont(tf *typeface, size float64) *rasterFont {
	return &rasterFont{tf: tf, size: size}
}

func (f *rasterFont) Typeface() backend.Typeface { return f.tf }
func (f *rasterFont) Size() float64              { return f.size }

// scale converts font units to user-space units at the font size.
func (f *rasterFont) scale() float32 {
	upem := f.tf.face.Upem()
	if upem == 0 {
		return 0
	}
	return float32(f.size) / float32(upem)
}

func (f *rasterFont) Metrics() backend.FontMetrics {
	if f.tf.face == nil {
		return syntheticMetrics(f.size)
	}
	ext, ok := f.tf.face.FontHExtents()
	if !ok {
		return syntheticMetrics(f.size)
	}
	sc := f.scale()
	descent := ext.Descender
	if descent < 0 {
		descent = -descent
	}
	return backend.FontMetrics{
		Ascent:  ext.Ascender * sc,
		Descent: descent * sc,
		Leading: ext.LineGap * sc,
	}
}

func syntheticMetrics(size float64) backend.FontMetrics {
	return backend.FontMetrics{
		Ascent:  float32(size) * 0.8,
		Descent: float32(size) * 0.2,
		Leading: float32(size) * 0.1,
	}
}

func (f *rasterFont) MeasureString(s string) float32 {
	if f.tf.face == nil {
		n := 0
		for range s {
			n++
		}
		return float32(n) * float32(f.size) * 0.6
	}
	sc := f.scale()
	var w float32
	for _, r := range s {
		gid, ok := f.tf.face.NominalGlyph(r)
		if !ok {
			gid = 0
		}
		w += f.tf.face.HorizontalAdvance(gid) * sc
	}
	return w
}

// stringSubpaths builds the flattened glyph outlines of s with the
// baseline origin at (x, y) in user space. Glyph coordinates are
// y-up in font units and flip to the y-down user space here.
func stringSubpaths(f *rasterFont, s string, x, y float32, tol float64) []subpath {
	face := f.tf.face
	if face == nil {
		return nil
	}
	sc := f.scale()
	fl := &pathFlattener{tolSq: tol * tol}
	pen := x
	for _, r := range s {
		gid, ok := face.NominalGlyph(r)
		if !ok {
			gid = 0
		}
		outline, ok := face.GlyphData(gid).(font.GlyphOutline)
		if ok {
			appendGlyphOutline(fl, outline, sc, pen, y)
		}
		pen += face.HorizontalAdvance(gid) * sc
	}
	fl.flush(true)
	return fl.out
}

func appendGlyphOutline(fl *pathFlattener, outline font.GlyphOutline, sc, x, y float32) {
	for _, seg := range outline.Segments {
		at := func(i int) vec {
			return vec{X: float64(seg.Args[i].X*sc + x), Y: float64(-seg.Args[i].Y*sc + y)}
		}
		switch seg.Op {
		case opentype.SegmentOpMoveTo:
			fl.flush(true)
			fl.moveTo(at(0))
		case opentype.SegmentOpLineTo:
			fl.lineTo(at(0))
		case opentype.SegmentOpQuadTo:
			fl.quadTo(at(0), at(1))
		case opentype.SegmentOpCubeTo:
			fl.cubicTo(at(0), at(1), at(2))
		}
	}
}
