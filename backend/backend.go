// Package backend defines the rendering canvas contract that the g2d
// drawing facade translates onto.
//
// The model follows Skia's split between an immediate canvas and the
// objects it consumes: a Canvas exposes primitive draw calls plus a
// save/restore state stack, while the Backend acts as the factory for
// everything with backend-owned lifetime (surfaces, shaders, dash
// effects, typefaces, fonts, images). The shared mutable Paint object
// and the float32 Path are concrete types in this package so that every
// backend interprets the same data.
//
// Backends register themselves by name via Register, typically from an
// init function, and are selected via Get or Default.
package backend

import (
	"errors"
	"image"
)

// Common backend errors.
var (
	// ErrBackendNotAvailable is returned when a requested backend is not
	// registered.
	ErrBackendNotAvailable = errors.New("backend: not available")

	// ErrTypefaceNotFound is returned by MakeTypeface when no face matches
	// the requested family and style.
	ErrTypefaceNotFound = errors.New("backend: typeface not found")

	// ErrInvalidDash is returned by MakeDashEffect for a malformed dash
	// array (empty, odd length, negative or all-zero intervals).
	ErrInvalidDash = errors.New("backend: invalid dash intervals")
)

// Shader is an opaque shader handle produced by a Backend. The facade
// never inspects a shader; it only installs one on the shared Paint.
type Shader interface {
	// ShaderKind returns a short description of the shader, used for
	// logging and debugging only.
	ShaderKind() string
}

// PathEffect is an opaque stroked-geometry modifier (currently only dash
// effects are constructed).
type PathEffect interface {
	// EffectKind returns a short description of the effect, used for
	// logging and debugging only.
	EffectKind() string
}

// Typeface is an immutable resolved typeface handle. Handles are shared
// freely across canvases and goroutines.
type Typeface interface {
	Family() string
	Style() TypefaceStyle
}

// TypefaceStyle is a bitmask of bold and italic flags.
type TypefaceStyle uint8

const (
	StyleNormal     TypefaceStyle = 0
	StyleBold       TypefaceStyle = 1
	StyleItalic     TypefaceStyle = 2
	StyleBoldItalic TypefaceStyle = StyleBold | StyleItalic
)

// String returns the conventional name for the style.
func (s TypefaceStyle) String() string {
	switch s {
	case StyleNormal:
		return "normal"
	case StyleBold:
		return "bold"
	case StyleItalic:
		return "italic"
	case StyleBoldItalic:
		return "bold-italic"
	}
	return "unknown"
}

// FontMetrics reports metrics for a sized font. Ascent and Descent are
// both positive distances from the baseline.
type FontMetrics struct {
	Ascent  float32
	Descent float32
	Leading float32
}

// Font is an immutable typeface sized for rendering and measurement.
// All text metrics come from the backend font, never from the facade.
type Font interface {
	Typeface() Typeface
	Size() float64
	Metrics() FontMetrics

	// MeasureString returns the advance width of s.
	MeasureString(s string) float32
}

// Image is an opaque backend texture created from a decoded image.
type Image interface {
	Width() int
	Height() int
}

// Surface is a render target owning one Canvas.
type Surface interface {
	Canvas() Canvas
	Width() int
	Height() int

	// Snapshot returns the current pixel contents. Recording or GPU
	// surfaces may return an empty image.
	Snapshot() image.Image
}

// Canvas is the drawing surface consumed by the g2d facade. Coordinates
// are float32: the facade narrows its float64 user-space geometry when
// crossing this boundary.
//
// The only state query a Canvas offers is the save count returned by
// Save; there is no way to read back the current matrix or clip. Clip
// application is intersective only. The facade's clip-stack emulation is
// built entirely on this contract.
type Canvas interface {
	DrawLine(x1, y1, x2, y2 float32, p *Paint)
	DrawRect(r Rect, p *Paint)
	DrawOval(r Rect, p *Paint)
	DrawPath(path *Path, p *Paint)
	DrawImageRect(img Image, dst Rect)
	DrawString(s string, x, y float32, f Font, p *Paint)

	// Save pushes the current matrix and clip and returns a mark that
	// RestoreToCount accepts.
	Save() int

	// RestoreToCount pops state until the save count equals mark.
	RestoreToCount(mark int)

	// SetMatrix replaces the current matrix.
	SetMatrix(m Matrix)

	// ClipPath intersects the current clip with path.
	ClipPath(path *Path)

	Translate(dx, dy float32)
	Rotate(degrees float32)
	Scale(sx, sy float32)
	Skew(sx, sy float32)
}

// Backend constructs surfaces and all backend-owned resources.
type Backend interface {
	// Name returns the backend identifier (e.g. "softraster", "record").
	Name() string

	NewSurface(width, height int) (Surface, error)

	MakeColorShader(c Color) Shader
	MakeLinearGradient(x0, y0, x1, y1 float32, colors []Color, positions []float32, tile TileMode) Shader
	MakeRadialGradient(cx, cy, radius float32, colors []Color, positions []float32, tile TileMode) Shader

	// MakeTwoPointConicalGradient interpolates between a start circle at
	// (x0, y0) with radius r0 and an end circle at (x1, y1) with radius
	// r1. Off-center gradient focus points are expressed this way.
	MakeTwoPointConicalGradient(x0, y0, r0, x1, y1, r1 float32, colors []Color, positions []float32, tile TileMode) Shader

	MakeDashEffect(intervals []float32, phase float32) (PathEffect, error)

	MakeTypeface(family string, style TypefaceStyle) (Typeface, error)
	MakeFont(tf Typeface, size float64) Font

	MakeImage(img image.Image) (Image, error)
}

// Color is a non-premultiplied RGBA color with float32 components in
// [0, 1], the precision backends consume.
type Color struct {
	R, G, B, A float32
}

// TileMode defines shader behavior outside the defined gradient range.
type TileMode uint8

const (
	// TileClamp extends the edge colors.
	TileClamp TileMode = iota
	// TileRepeat repeats the gradient.
	TileRepeat
	// TileMirror alternates between the gradient and its reflection.
	TileMirror
)

// Matrix is a row-major 2x3 affine matrix in the layout SetMatrix
// consumes:
//
//	| ScaleX  SkewX  TransX |
//	| SkewY   ScaleY TransY |
type Matrix struct {
	ScaleX, SkewX, TransX float32
	SkewY, ScaleY, TransY float32
}

// IdentityMatrix returns the identity matrix.
func IdentityMatrix() Matrix {
	return Matrix{ScaleX: 1, ScaleY: 1}
}
