package record

import "github.com/gogpu/g2d/backend"

// Canvas records every call it receives, in order. The zero value is
// not usable; obtain canvases from a Surface.
type Canvas struct {
	ops       []Op
	saveCount int
}

// NewCanvas returns a standalone recording canvas, for driving the
// facade without a surface.
func NewCanvas() *Canvas {
	return &Canvas{saveCount: 1}
}

// Ops returns the recorded operations in call order.
func (c *Canvas) Ops() []Op { return c.ops }

// Reset discards all recorded operations. The save count is preserved.
func (c *Canvas) Reset() { c.ops = nil }

// DrawOps returns only the recorded Draw* operations.
func (c *Canvas) DrawOps() []Op {
	var draws []Op
	for _, op := range c.ops {
		switch op.Name {
		case "DrawLine", "DrawRect", "DrawOval", "DrawPath", "DrawImageRect", "DrawString":
			draws = append(draws, op)
		}
	}
	return draws
}

// CountOp returns how many operations named name were recorded.
func (c *Canvas) CountOp(name string) int {
	n := 0
	for _, op := range c.ops {
		if op.Name == name {
			n++
		}
	}
	return n
}

// SaveCount returns the current save-stack depth.
func (c *Canvas) SaveCount() int { return c.saveCount }

func snapshotPaint(p *backend.Paint) *backend.Paint {
	if p == nil {
		return nil
	}
	cp := *p
	return &cp
}

// DrawLine implements backend.Canvas.
func (c *Canvas) DrawLine(x1, y1, x2, y2 float32, p *backend.Paint) {
	c.ops = append(c.ops, Op{Name: "DrawLine", X1: x1, Y1: y1, X2: x2, Y2: y2, Paint: snapshotPaint(p)})
}

// DrawRect implements backend.Canvas.
func (c *Canvas) DrawRect(r backend.Rect, p *backend.Paint) {
	c.ops = append(c.ops, Op{Name: "DrawRect", Rect: r, Paint: snapshotPaint(p)})
}

// DrawOval implements backend.Canvas.
func (c *Canvas) DrawOval(r backend.Rect, p *backend.Paint) {
	c.ops = append(c.ops, Op{Name: "DrawOval", Rect: r, Paint: snapshotPaint(p)})
}

// DrawPath implements backend.Canvas.
func (c *Canvas) DrawPath(path *backend.Path, p *backend.Paint) {
	c.ops = append(c.ops, Op{Name: "DrawPath", Path: path, Paint: snapshotPaint(p)})
}

// DrawImageRect implements backend.Canvas.
func (c *Canvas) DrawImageRect(img backend.Image, dst backend.Rect) {
	c.ops = append(c.ops, Op{Name: "DrawImageRect", Image: img, Rect: dst})
}

// DrawString implements backend.Canvas.
func (c *Canvas) DrawString(s string, x, y float32, f backend.Font, p *backend.Paint) {
	c.ops = append(c.ops, Op{Name: "DrawString", Text: s, X1: x, Y1: y, Font: f, Paint: snapshotPaint(p)})
}

// Save implements backend.Canvas. It returns the save count prior to
// the save, which RestoreToCount accepts as a mark.
func (c *Canvas) Save() int {
	mark := c.saveCount
	c.saveCount++
	c.ops = append(c.ops, Op{Name: "Save", Mark: mark})
	return mark
}

// RestoreToCount implements backend.Canvas.
func (c *Canvas) RestoreToCount(mark int) {
	if mark < 1 {
		mark = 1
	}
	if mark < c.saveCount {
		c.saveCount = mark
	}
	c.ops = append(c.ops, Op{Name: "RestoreToCount", Mark: mark})
}

// SetMatrix implements backend.Canvas.
func (c *Canvas) SetMatrix(m backend.Matrix) {
	c.ops = append(c.ops, Op{Name: "SetMatrix", Matrix: m})
}

// ClipPath implements backend.Canvas.
func (c *Canvas) ClipPath(path *backend.Path) {
	c.ops = append(c.ops, Op{Name: "ClipPath", Path: path})
}

// Translate implements backend.Canvas.
func (c *Canvas) Translate(dx, dy float32) {
	c.ops = append(c.ops, Op{Name: "Translate", X1: dx, Y1: dy})
}

// Rotate implements backend.Canvas.
func (c *Canvas) Rotate(degrees float32) {
	c.ops = append(c.ops, Op{Name: "Rotate", X1: degrees})
}

// Scale implements backend.Canvas.
func (c *Canvas) Scale(sx, sy float32) {
	c.ops = append(c.ops, Op{Name: "Scale", X1: sx, Y1: sy})
}

// Skew implements backend.Canvas.
func (c *Canvas) Skew(sx, sy float32) {
	c.ops = append(c.ops, Op{Name: "Skew", X1: sx, Y1: sy})
}
