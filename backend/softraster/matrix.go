package softraster

import (
	"github.com/chewxy/math32"

	"github.com/gogpu/g2d/backend"
)

// matMul returns the matrix applying b first, then a.
func matMul(a, b backend.Matrix) backend.Matrix {
	return backend.Matrix{
		ScaleX: a.ScaleX*b.ScaleX + a.SkewX*b.SkewY,
		SkewX:  a.ScaleX*b.SkewX + a.SkewX*b.ScaleY,
		TransX: a.ScaleX*b.TransX + a.SkewX*b.TransY + a.TransX,
		SkewY:  a.SkewY*b.ScaleX + a.ScaleY*b.SkewY,
		ScaleY: a.SkewY*b.SkewX + a.ScaleY*b.ScaleY,
		TransY: a.SkewY*b.TransX + a.ScaleY*b.TransY + a.TransY,
	}
}

func matApply(m backend.Matrix, x, y float32) (float32, float32) {
	return m.ScaleX*x + m.SkewX*y + m.TransX,
		m.SkewY*x + m.ScaleY*y + m.TransY
}

func matInvert(m backend.Matrix) (backend.Matrix, bool) {
	det := m.ScaleX*m.ScaleY - m.SkewX*m.SkewY
	if math32.Abs(det) < 1e-10 {
		return backend.IdentityMatrix(), false
	}
	inv := 1 / det
	return backend.Matrix{
		ScaleX: m.ScaleY * inv,
		SkewX:  -m.SkewX * inv,
		TransX: (m.SkewX*m.TransY - m.ScaleY*m.TransX) * inv,
		SkewY:  -m.SkewY * inv,
		ScaleY: m.ScaleX * inv,
		TransY: (m.SkewY*m.TransX - m.ScaleX*m.TransY) * inv,
	}, true
}

func matTranslate(dx, dy float32) backend.Matrix {
	m := backend.IdentityMatrix()
	m.TransX = dx
	m.TransY = dy
	return m
}

func matScale(sx, sy float32) backend.Matrix {
	m := backend.IdentityMatrix()
	m.ScaleX = sx
	m.ScaleY = sy
	return m
}

func matRotate(degrees float32) backend.Matrix {
	rad := degrees * math32.Pi / 180
	sin := math32.Sin(rad)
	cos := math32.Cos(rad)
	return backend.Matrix{
		ScaleX: cos, SkewX: -sin,
		SkewY: sin, ScaleY: cos,
	}
}

func matSkew(sx, sy float32) backend.Matrix {
	m := backend.IdentityMatrix()
	m.SkewX = sx
	m.SkewY = sy
	return m
}

// matScaleFactor estimates the uniform scale of a matrix, used to
// adjust user-space flattening tolerance and stroke widths.
func matScaleFactor(m backend.Matrix) float32 {
	det := math32.Abs(m.ScaleX*m.ScaleY - m.SkewX*m.SkewY)
	if det == 0 {
		return 0
	}
	return math32.Sqrt(det)
}
