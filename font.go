package g2d

import "github.com/gogpu/g2d/backend"

// FontStyle is a bit set of style flags for font selection.
type FontStyle int

const (
	FontPlain      FontStyle = 0
	FontBold       FontStyle = 1
	FontItalic     FontStyle = 2
	FontBoldItalic FontStyle = FontBold | FontItalic
)

func (s FontStyle) typefaceStyle() backend.TypefaceStyle {
	var ts backend.TypefaceStyle
	if s&FontBold != 0 {
		ts |= backend.StyleBold
	}
	if s&FontItalic != 0 {
		ts |= backend.StyleItalic
	}
	return ts
}

// Font selects a typeface by family name and style, at a size in
// user-space units. Generic family names such as "SansSerif", "Serif"
// and "Monospaced" resolve to platform defaults.
type Font struct {
	Name  string
	Style FontStyle
	Size  float64
}

// DefaultFont is the font installed on a fresh drawing context.
var DefaultFont = Font{Name: "SansSerif", Style: FontPlain, Size: 12}

// Metrics exposes measurements of a realized font.
type Metrics struct {
	font backend.Font
}

// Ascent returns the distance from the baseline to the top of most
// glyphs, as a positive value.
func (m Metrics) Ascent() float64 {
	return float64(m.font.Metrics().Ascent)
}

// Descent returns the distance from the baseline to the bottom of
// descenders, as a positive value.
func (m Metrics) Descent() float64 {
	return float64(m.font.Metrics().Descent)
}

// Leading returns the recommended gap between lines.
func (m Metrics) Leading() float64 {
	return float64(m.font.Metrics().Leading)
}

// Height returns the full line height.
func (m Metrics) Height() float64 {
	return m.Ascent() + m.Descent() + m.Leading()
}

// StringWidth returns the advance of s.
func (m Metrics) StringWidth(s string) float64 {
	return float64(m.font.MeasureString(s))
}
