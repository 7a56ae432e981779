package backend

// PaintMode selects between filling and stroking geometry.
type PaintMode uint8

const (
	PaintFill PaintMode = iota
	PaintStroke
)

// StrokeCap specifies the shape of line endpoints.
type StrokeCap uint8

const (
	CapButt StrokeCap = iota
	CapRound
	CapSquare
)

// StrokeJoin specifies the shape of line joins.
type StrokeJoin uint8

const (
	JoinMiter StrokeJoin = iota
	JoinRound
	JoinBevel
)

// BlendMode is the Porter-Duff compositing rule applied when drawing.
type BlendMode uint8

const (
	BlendSrcOver BlendMode = iota
	BlendClear
	BlendSrc
	BlendDst
	BlendDstOver
	BlendSrcIn
	BlendDstIn
	BlendSrcOut
	BlendDstOut
	BlendSrcAtop
	BlendDstAtop
)

// Paint carries everything a Canvas needs to render a primitive. One
// Paint instance is shared and mutated in place by the owning drawing
// context; a canvas must read it synchronously during the draw call and
// retain nothing.
type Paint struct {
	Mode   PaintMode
	Shader Shader

	// Alpha multiplies the shader output, in [0, 1].
	Alpha float32

	Blend BlendMode

	StrokeWidth float32
	StrokeCap   StrokeCap
	StrokeJoin  StrokeJoin
	StrokeMiter float32

	// PathEffect, when non-nil, modifies stroked geometry (dashing).
	PathEffect PathEffect
}

// NewPaint returns a Paint with default values: fill mode, opaque,
// source-over, 1px solid stroke with butt caps and miter joins.
func NewPaint() *Paint {
	return &Paint{
		Mode:        PaintFill,
		Alpha:       1,
		Blend:       BlendSrcOver,
		StrokeWidth: 1,
		StrokeCap:   CapButt,
		StrokeJoin:  JoinMiter,
		StrokeMiter: 10,
	}
}
