package g2d

import (
	"math"

	"github.com/gogpu/g2d/internal/geom"
)

// GetClip returns the current clip in user space, or nil when no clip
// is set. The clip is stored in device space; if the current transform
// is not invertible the user-space clip cannot be recovered and nil is
// returned.
func (gc *Context) GetClip() Shape {
	if gc.clip == nil {
		return nil
	}
	inv, ok := gc.transform.Invert()
	if !ok {
		return nil
	}
	return transformShape(inv, gc.clip)
}

// ClipBounds returns the user-space bounding box of the current clip.
// The second result is false when no clip is set.
func (gc *Context) ClipBounds() (Rect, bool) {
	c := gc.GetClip()
	if c == nil {
		return Rect{}, false
	}
	return c.Bounds(), true
}

// SetClip replaces the clip with the given user-space shape. A nil
// shape removes the clip entirely.
//
// The canvas contract has no clip replacement, only intersection, so
// replacing means unwinding to the save level taken at creation and
// starting a fresh save. The current transform is reapplied because the
// restore discards it along with the clip.
func (gc *Context) SetClip(shape Shape) {
	if shape == nil {
		gc.clip = nil
	} else {
		gc.clip = transformShape(gc.transform, shape)
	}
	gc.canvas.RestoreToCount(gc.restoreCount)
	gc.restoreCount = gc.canvas.Save()
	gc.SetTransform(gc.Transform())
	if shape != nil {
		gc.canvas.ClipPath(buildFillPath(shape))
	}
}

// SetClipRect replaces the clip with a rectangle.
func (gc *Context) SetClipRect(x, y, w, h float64) {
	gc.SetClip(Rect{X: x, Y: y, W: w, H: h})
}

// Clip narrows the clip to the intersection of the current clip and
// the given user-space shape. A nil shape is not permitted. A line
// widens to its bounding box. When the shape lies entirely outside the
// current clip the clip becomes empty.
func (gc *Context) Clip(shape Shape) {
	if shape == nil {
		nilNotPermitted("shape")
	}
	if l, ok := shape.(Line); ok {
		shape = l.Bounds()
	}
	if gc.clip == nil {
		gc.SetClip(shape)
		return
	}
	ts := transformShape(gc.transform, shape)
	if !ts.Bounds().Intersects(gc.clip.Bounds()) {
		gc.SetClip(Rect{})
		return
	}
	inter := geom.Intersect(pathRings(ts), pathRings(gc.clip))
	gc.clip = ringsToPath(inter)
	gc.canvas.ClipPath(buildFillPath(shape))
}

// ClipRect narrows the clip to a rectangle.
func (gc *Context) ClipRect(x, y, w, h float64) {
	gc.Clip(Rect{X: x, Y: y, W: w, H: h})
}

// Hit reports whether a device-space rectangle intersects the shape
// under the current transform. With onStroke the test runs against the
// stroked outline, approximated by widening the flattened boundary
// edges by the current stroke width.
func (gc *Context) Hit(rect Rect, shape Shape, onStroke bool) bool {
	if shape == nil {
		nilNotPermitted("shape")
	}
	ts := transformShape(gc.transform, shape)
	target := pathRings(ts)
	if onStroke {
		m := gc.transform
		scale := math.Sqrt(math.Abs(m.A*m.E - m.B*m.D))
		hw := math.Max(gc.stroke.Width, MinLineWidth) / 2 * scale
		target = strokeRings(target, hw)
	}
	if !target.Bounds().Intersects(geom.Bounds{
		MinX: rect.X, MinY: rect.Y,
		MaxX: rect.X + rect.W, MaxY: rect.Y + rect.H,
	}) {
		return false
	}
	rr := geom.Set{{
		{X: rect.X, Y: rect.Y},
		{X: rect.X + rect.W, Y: rect.Y},
		{X: rect.X + rect.W, Y: rect.Y + rect.H},
		{X: rect.X, Y: rect.Y + rect.H},
	}}
	return !geom.Intersect(rr, target).Empty()
}

// strokeRings widens each ring edge into a quad of half-width hw.
func strokeRings(s geom.Set, hw float64) geom.Set {
	var out geom.Set
	for _, ring := range s {
		n := len(ring)
		for i := 0; i < n; i++ {
			a := ring[i]
			b := ring[(i+1)%n]
			dx := b.X - a.X
			dy := b.Y - a.Y
			l := math.Hypot(dx, dy)
			if l == 0 {
				continue
			}
			nx := -dy / l * hw
			ny := dx / l * hw
			out = append(out, geom.Ring{
				{X: a.X + nx, Y: a.Y + ny},
				{X: b.X + nx, Y: b.Y + ny},
				{X: b.X - nx, Y: b.Y - ny},
				{X: a.X - nx, Y: a.Y - ny},
			})
		}
	}
	return out
}

// pathRings flattens a device-space path to polygon rings.
func pathRings(p *Path) geom.Set {
	var f geom.Flattener
	for _, elem := range p.PathElements() {
		switch e := elem.(type) {
		case MoveTo:
			f.MoveTo(e.Point.X, e.Point.Y)
		case LineTo:
			f.LineTo(e.Point.X, e.Point.Y)
		case QuadTo:
			f.QuadTo(e.Control.X, e.Control.Y, e.Point.X, e.Point.Y)
		case CubicTo:
			f.CubicTo(e.Control1.X, e.Control1.Y, e.Control2.X, e.Control2.Y, e.Point.X, e.Point.Y)
		case Close:
			f.Close()
		}
	}
	return f.Rings()
}

// ringsToPath converts polygon rings back to a path under the even-odd
// rule.
func ringsToPath(s geom.Set) *Path {
	p := NewPath()
	p.SetWinding(WindEvenOdd)
	for _, ring := range s {
		if len(ring) < 3 {
			continue
		}
		p.MoveTo(ring[0].X, ring[0].Y)
		for _, pt := range ring[1:] {
			p.LineTo(pt.X, pt.Y)
		}
		p.Close()
	}
	return p
}
