package softraster

import (
	"image"

	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/math/f64"

	"github.com/gogpu/g2d/backend"
)

const flattenTolerance = 0.25

// state is one entry of the canvas save stack: the current matrix and
// the accumulated clip coverage mask (nil means unclipped).
type state struct {
	matrix backend.Matrix
	clip   *image.Alpha
}

// Canvas rasterizes into an RGBA pixel buffer. Geometry flattens to
// polygons, strokes expand to fill outlines, and every primitive lands
// through the same coverage-mask blend.
type Canvas struct {
	img    *image.RGBA
	w, h   int
	states []state
}

func newCanvas(img *image.RGBA) *Canvas {
	b := img.Bounds()
	return &Canvas{
		img:    img,
		w:      b.Dx(),
		h:      b.Dy(),
		states: []state{{matrix: backend.IdentityMatrix()}},
	}
}

func (c *Canvas) top() *state { return &c.states[len(c.states)-1] }

// Save implements backend.Canvas. It returns the stack depth prior to
// the save, which RestoreToCount accepts as a mark.
func (c *Canvas) Save() int {
	mark := len(c.states)
	c.states = append(c.states, *c.top())
	return mark
}

// RestoreToCount implements backend.Canvas.
func (c *Canvas) RestoreToCount(mark int) {
	if mark < 1 {
		mark = 1
	}
	if mark < len(c.states) {
		c.states = c.states[:mark]
	}
}

// SetMatrix implements backend.Canvas.
func (c *Canvas) SetMatrix(m backend.Matrix) {
	c.top().matrix = m
}

// Translate implements backend.Canvas.
func (c *Canvas) Translate(dx, dy float32) {
	c.top().matrix = matMul(c.top().matrix, matTranslate(dx, dy))
}

// Rotate implements backend.Canvas. The angle is in degrees.
func (c *Canvas) Rotate(degrees float32) {
	c.top().matrix = matMul(c.top().matrix, matRotate(degrees))
}

// Scale implements backend.Canvas.
func (c *Canvas) Scale(sx, sy float32) {
	c.top().matrix = matMul(c.top().matrix, matScale(sx, sy))
}

// Skew implements backend.Canvas.
func (c *Canvas) Skew(sx, sy float32) {
	c.top().matrix = matMul(c.top().matrix, matSkew(sx, sy))
}

// ClipPath implements backend.Canvas. The path is interpreted under the
// current matrix and its coverage multiplies into the existing clip.
func (c *Canvas) ClipPath(path *backend.Path) {
	st := c.top()
	mask := rasterize(flattenDevice(path, st.matrix, flattenTolerance), path.FillMode(), c.w, c.h)
	if st.clip == nil {
		st.clip = mask
		return
	}
	product := image.NewAlpha(image.Rect(0, 0, c.w, c.h))
	for i := range product.Pix {
		product.Pix[i] = uint8((uint32(st.clip.Pix[i])*uint32(mask.Pix[i]) + 127) / 255)
	}
	st.clip = product
}

// DrawLine implements backend.Canvas. Lines always stroke; they have no
// interior.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float32, p *backend.Paint) {
	sp := subpath{pts: []vec{
		{float64(x1), float64(y1)},
		{float64(x2), float64(y2)},
	}}
	c.strokeSubs([]subpath{sp}, p)
}

// DrawRect implements backend.Canvas.
func (c *Canvas) DrawRect(r backend.Rect, p *backend.Paint) {
	path := backend.NewPath()
	path.MoveTo(r.Left, r.Top)
	path.LineTo(r.Right, r.Top)
	path.LineTo(r.Right, r.Bottom)
	path.LineTo(r.Left, r.Bottom)
	path.ClosePath()
	c.DrawPath(path, p)
}

// circle-to-cubic control distance ratio
const ovalKappa = 0.5522847498

// DrawOval implements backend.Canvas.
func (c *Canvas) DrawOval(r backend.Rect, p *backend.Paint) {
	cx := (r.Left + r.Right) / 2
	cy := (r.Top + r.Bottom) / 2
	rx := r.Width() / 2
	ry := r.Height() / 2
	ox := rx * ovalKappa
	oy := ry * ovalKappa

	path := backend.NewPath()
	path.MoveTo(cx+rx, cy)
	path.CubicTo(cx+rx, cy+oy, cx+ox, cy+ry, cx, cy+ry)
	path.CubicTo(cx-ox, cy+ry, cx-rx, cy+oy, cx-rx, cy)
	path.CubicTo(cx-rx, cy-oy, cx-ox, cy-ry, cx, cy-ry)
	path.CubicTo(cx+ox, cy-ry, cx+rx, cy-oy, cx+rx, cy)
	path.ClosePath()
	c.DrawPath(path, p)
}

// DrawPath implements backend.Canvas.
func (c *Canvas) DrawPath(path *backend.Path, p *backend.Paint) {
	st := c.top()
	if p.Mode == backend.PaintStroke {
		scale := float64(matScaleFactor(st.matrix))
		if scale <= 0 {
			return
		}
		c.strokeSubs(flattenPath(path, flattenTolerance/scale), p)
		return
	}
	subs := flattenDevice(path, st.matrix, flattenTolerance)
	c.fillSubs(subs, path.FillMode(), p)
}

// strokeSubs expands user-space contours with the paint's stroke
// parameters and fills the resulting outline.
func (c *Canvas) strokeSubs(subs []subpath, p *backend.Paint) {
	dash, _ := p.PathEffect.(*dashEffect)
	outline := strokeSubpaths(subs, strokeStyleFromPaint(p), dash)
	c.fillSubs(transformSubpaths(outline, c.top().matrix), backend.FillWinding, p)
}

func (c *Canvas) fillSubs(subs []subpath, rule backend.FillMode, p *backend.Paint) {
	if len(subs) == 0 {
		return
	}
	mask := rasterize(subs, rule, c.w, c.h)
	c.blend(mask, p)
}

func transformSubpaths(subs []subpath, m backend.Matrix) []subpath {
	out := make([]subpath, len(subs))
	for i, sp := range subs {
		pts := make([]vec, len(sp.pts))
		for j, pt := range sp.pts {
			x, y := matApply(m, float32(pt.X), float32(pt.Y))
			pts[j] = vec{float64(x), float64(y)}
		}
		out[i] = subpath{pts: pts, closed: sp.closed}
	}
	return out
}

// flattenDevice flattens a path with its control points transformed to
// device space first, so the tolerance applies to device pixels.
func flattenDevice(p *backend.Path, m backend.Matrix, tol float64) []subpath {
	fl := &pathFlattener{tolSq: tol * tol}
	p.Walk(func(verb backend.PathVerb, pts []float32) {
		at := func(i int) vec {
			x, y := matApply(m, pts[2*i], pts[2*i+1])
			return vec{float64(x), float64(y)}
		}
		switch verb {
		case backend.VerbMoveTo:
			fl.moveTo(at(0))
		case backend.VerbLineTo:
			fl.lineTo(at(0))
		case backend.VerbQuadTo:
			fl.quadTo(at(0), at(1))
		case backend.VerbCubicTo:
			fl.cubicTo(at(0), at(1), at(2))
		case backend.VerbClose:
			fl.close()
		}
	})
	fl.flush(false)
	return fl.out
}

// blend composites the shader output over the pixel buffer wherever the
// coverage mask is set, honoring the clip, the paint alpha and the
// Porter-Duff blend mode. Shaders evaluate in user space, so pixel
// centers map through the inverse matrix.
func (c *Canvas) blend(mask *image.Alpha, p *backend.Paint) {
	src, ok := p.Shader.(shaderSource)
	if !ok {
		return
	}
	st := c.top()
	inv, invertible := matInvert(st.matrix)
	if !invertible {
		inv = backend.IdentityMatrix()
	}
	alpha := p.Alpha
	if alpha < 0 {
		alpha = 0
	} else if alpha > 1 {
		alpha = 1
	}

	for y := 0; y < c.h; y++ {
		mi := mask.PixOffset(0, y)
		for x := 0; x < c.w; x++ {
			cov := float32(mask.Pix[mi+x]) / 255
			if st.clip != nil {
				cov *= float32(st.clip.Pix[mi+x]) / 255
			}
			if cov <= 0 {
				continue
			}
			ux, uy := matApply(inv, float32(x)+0.5, float32(y)+0.5)
			col := src.shade(ux, uy)

			sa := col.A * alpha
			sr := col.R * sa
			sg := col.G * sa
			sb := col.B * sa

			i := c.img.PixOffset(x, y)
			dr := float32(c.img.Pix[i]) / 255
			dg := float32(c.img.Pix[i+1]) / 255
			db := float32(c.img.Pix[i+2]) / 255
			da := float32(c.img.Pix[i+3]) / 255

			fr, fg, fb, fa := porterDuff(p.Blend, sr, sg, sb, sa, dr, dg, db, da)
			keep := 1 - cov
			c.img.Pix[i] = to8(dr*keep + fr*cov)
			c.img.Pix[i+1] = to8(dg*keep + fg*cov)
			c.img.Pix[i+2] = to8(db*keep + fb*cov)
			c.img.Pix[i+3] = to8(da*keep + fa*cov)
		}
	}
}

func to8(v float32) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 1 {
		return 255
	}
	return uint8(v*255 + 0.5)
}

// porterDuff evaluates the blend on premultiplied components.
func porterDuff(mode backend.BlendMode, sr, sg, sb, sa, dr, dg, db, da float32) (r, g, b, a float32) {
	switch mode {
	case backend.BlendClear:
		return 0, 0, 0, 0
	case backend.BlendSrc:
		return sr, sg, sb, sa
	case backend.BlendDst:
		return dr, dg, db, da
	case backend.BlendDstOver:
		k := 1 - da
		return dr + sr*k, dg + sg*k, db + sb*k, da + sa*k
	case backend.BlendSrcIn:
		return sr * da, sg * da, sb * da, sa * da
	case backend.BlendDstIn:
		return dr * sa, dg * sa, db * sa, da * sa
	case backend.BlendSrcOut:
		k := 1 - da
		return sr * k, sg * k, sb * k, sa * k
	case backend.BlendDstOut:
		k := 1 - sa
		return dr * k, dg * k, db * k, da * k
	case backend.BlendSrcAtop:
		k := 1 - sa
		return sr*da + dr*k, sg*da + dg*k, sb*da + db*k, sa*da + da*k
	case backend.BlendDstAtop:
		k := 1 - da
		return dr*sa + sr*k, dg*sa + sg*k, db*sa + sb*k, da*sa + sa*k
	default: // BlendSrcOver
		k := 1 - sa
		return sr + dr*k, sg + dg*k, sb + db*k, sa + da*k
	}
}

// DrawImageRect implements backend.Canvas. The texture scales into dst
// under the current matrix; the clip applies as a destination mask.
func (c *Canvas) DrawImageRect(img backend.Image, dst backend.Rect) {
	t, ok := img.(*texture)
	if !ok || dst.Empty() {
		return
	}
	sb := t.src.Bounds()
	sw := float32(sb.Dx())
	sh := float32(sb.Dy())
	if sw == 0 || sh == 0 {
		return
	}

	st := c.top()
	// src pixel -> dst rect -> device
	m := matMul(st.matrix, matTranslate(dst.Left, dst.Top))
	m = matMul(m, matScale(dst.Width()/sw, dst.Height()/sh))
	m = matMul(m, matTranslate(float32(-sb.Min.X), float32(-sb.Min.Y)))

	aff := f64.Aff3{
		float64(m.ScaleX), float64(m.SkewX), float64(m.TransX),
		float64(m.SkewY), float64(m.ScaleY), float64(m.TransY),
	}
	var opts *xdraw.Options
	if st.clip != nil {
		opts = &xdraw.Options{DstMask: st.clip}
	}
	xdraw.ApproxBiLinear.Transform(c.img, aff, t.src, sb, xdraw.Over, opts)
}

// DrawString implements backend.Canvas. Glyph outlines fill with the
// paint shader; a typeface with no resolved face renders nothing.
func (c *Canvas) DrawString(s string, x, y float32, f backend.Font, p *backend.Paint) {
	rf, ok := f.(*rasterFont)
	if !ok || rf.tf.face == nil || s == "" {
		return
	}
	st := c.top()
	scale := float64(matScaleFactor(st.matrix))
	if scale <= 0 {
		return
	}
	subs := stringSubpaths(rf, s, x, y, flattenTolerance/scale)
	c.fillSubs(transformSubpaths(subs, st.matrix), backend.FillWinding, p)
}
