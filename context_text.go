package g2d

import (
	"sort"

	"github.com/gogpu/g2d/backend"
)

// DrawString draws a string with the start of its baseline at (x, y)
// using the current font and paint. Text is always filled; the current
// stroke does not apply.
func (gc *Context) DrawString(s string, x, y float64) {
	gc.paint.Mode = backend.PaintFill
	gc.canvas.DrawString(s, float32(x), float32(y), gc.bkFont, gc.paint)
}

// StringWidth returns the advance width of s in the current font.
func (gc *Context) StringWidth(s string) float64 {
	return float64(gc.bkFont.MeasureString(s))
}

// AttributedString is a string with font and paint overrides applied
// to byte ranges. Later overrides win where ranges overlap.
type AttributedString struct {
	text string
	runs []attrRun
}

type attrRun struct {
	start, end int
	font       *Font
	paint      Paint
}

// NewAttributedString returns an attributed string with no overrides.
func NewAttributedString(text string) *AttributedString {
	return &AttributedString{text: text}
}

// String returns the plain text.
func (as *AttributedString) String() string { return as.text }

// SetFont applies a font to the byte range [start, end).
func (as *AttributedString) SetFont(f Font, start, end int) {
	as.runs = append(as.runs, attrRun{start: start, end: end, font: &f})
}

// SetPaint applies a paint to the byte range [start, end).
func (as *AttributedString) SetPaint(p Paint, start, end int) {
	as.runs = append(as.runs, attrRun{start: start, end: end, paint: p})
}

// DrawAttributedString draws an attributed string with the start of
// its baseline at (x, y). A string without overrides draws exactly
// like DrawString. Each attributed segment draws in its own font and
// paint, advancing by the measured width of the preceding segments;
// the context's font and paint are restored afterwards.
func (gc *Context) DrawAttributedString(as *AttributedString, x, y float64) {
	if as == nil {
		nilNotPermitted("text")
	}
	if len(as.runs) == 0 {
		gc.DrawString(as.text, x, y)
		return
	}

	cuts := []int{0, len(as.text)}
	for _, r := range as.runs {
		cuts = append(cuts, clampCut(r.start, len(as.text)), clampCut(r.end, len(as.text)))
	}
	sort.Ints(cuts)

	savedFont := gc.font
	savedPaint := gc.curPaint
	cx := x
	for i := 0; i+1 < len(cuts); i++ {
		a, b := cuts[i], cuts[i+1]
		if a >= b {
			continue
		}
		f := savedFont
		p := savedPaint
		for _, r := range as.runs {
			if r.start <= a && b <= r.end {
				if r.font != nil {
					f = *r.font
				}
				if r.paint != nil {
					p = r.paint
				}
			}
		}
		gc.SetFont(f)
		gc.SetPaint(p)
		seg := as.text[a:b]
		gc.DrawString(seg, cx, y)
		cx += gc.StringWidth(seg)
	}
	gc.SetFont(savedFont)
	gc.SetPaint(savedPaint)
}

func clampCut(v, n int) int {
	if v < 0 {
		return 0
	}
	if v > n {
		return n
	}
	return v
}
