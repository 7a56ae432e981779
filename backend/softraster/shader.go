package softraster

import (
	"sort"

	"github.com/chewxy/math32"

	"github.com/gogpu/g2d/backend"
)

// shaderSource is implemented by every shader this backend produces.
// shade returns the non-premultiplied color at a point in the shader's
// local (user) space.
type shaderSource interface {
	backend.Shader
	shade(x, y float32) backend.Color
}

type stop struct {
	offset float32
	color  backend.Color
}

// buildStops pairs colors with positions, sorted by offset. A nil
// positions slice spaces the stops evenly over [0, 1].
func buildStops(colors []backend.Color, positions []float32) []stop {
	stops := make([]stop, len(colors))
	for i, c := range colors {
		var off float32
		switch {
		case positions != nil && i < len(positions):
			off = positions[i]
		case len(colors) > 1:
			off = float32(i) / float32(len(colors)-1)
		}
		stops[i] = stop{offset: off, color: c}
	}
	sort.SliceStable(stops, func(i, j int) bool {
		return stops[i].offset < stops[j].offset
	})
	return stops
}

// applyTileMode normalizes t to [0, 1] according to the tile mode.
func applyTileMode(t float32, mode backend.TileMode) float32 {
	switch mode {
	case backend.TileRepeat:
		t -= math32.Floor(t)
		if t < 0 {
			t++
		}
	case backend.TileMirror:
		t = math32.Abs(t)
		period := math32.Floor(t)
		t -= period
		if int(period)%2 == 1 {
			t = 1 - t
		}
	default:
		if t < 0 {
			t = 0
		} else if t > 1 {
			t = 1
		}
	}
	return t
}

// colorAt returns the interpolated color at parameter t.
func colorAt(stops []stop, t float32, mode backend.TileMode) backend.Color {
	if len(stops) == 0 {
		return backend.Color{}
	}
	if len(stops) == 1 {
		return stops[0].color
	}
	t = applyTileMode(t, mode)
	idx := sort.Search(len(stops), func(i int) bool {
		return stops[i].offset >= t
	})
	if idx == 0 {
		return stops[0].color
	}
	if idx >= len(stops) {
		return stops[len(stops)-1].color
	}
	s1, s2 := stops[idx-1], stops[idx]
	if s2.offset == s1.offset {
		return s1.color
	}
	local := (t - s1.offset) / (s2.offset - s1.offset)
	return lerpColor(s1.color, s2.color, local)
}

func lerpColor(c1, c2 backend.Color, t float32) backend.Color {
	return backend.Color{
		R: c1.R + t*(c2.R-c1.R),
		G: c1.G + t*(c2.G-c1.G),
		B: c1.B + t*(c2.B-c1.B),
		A: c1.A + t*(c2.A-c1.A),
	}
}

type colorShader struct {
	c backend.Color
}

func (*colorShader) ShaderKind() string { return "color" }

func (s *colorShader) shade(x, y float32) backend.Color { return s.c }

type linearShader struct {
	x0, y0, x1, y1 float32
	stops          []stop
	tile           backend.TileMode
}

func (*linearShader) ShaderKind() string { return "linear-gradient" }

func (s *linearShader) shade(x, y float32) backend.Color {
	dx := s.x1 - s.x0
	dy := s.y1 - s.y0
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		if len(s.stops) == 0 {
			return backend.Color{}
		}
		return s.stops[0].color
	}
	t := ((x-s.x0)*dx + (y-s.y0)*dy) / lenSq
	return colorAt(s.stops, t, s.tile)
}

type radialShader struct {
	cx, cy, radius float32
	stops          []stop
	tile           backend.TileMode
}

func (*radialShader) ShaderKind() string { return "radial-gradient" }

func (s *radialShader) shade(x, y float32) backend.Color {
	if s.radius == 0 {
		if len(s.stops) == 0 {
			return backend.Color{}
		}
		return s.stops[0].color
	}
	dx := x - s.cx
	dy := y - s.cy
	t := math32.Sqrt(dx*dx+dy*dy) / s.radius
	return colorAt(s.stops, t, s.tile)
}

// conicalShader interpolates between a focus circle and an end circle.
// With a zero focus radius this is the focal radial gradient: the
// parameter is the ratio of the distance from the focus against the
// distance to the end circle along the same ray.
type conicalShader struct {
	fx, fy, fr float32
	cx, cy, cr float32
	stops      []stop
	tile       backend.TileMode
}

func (*conicalShader) ShaderKind() string { return "two-point-conical-gradient" }

func (s *conicalShader) shade(x, y float32) backend.Color {
	dx := x - s.fx
	dy := y - s.fy
	fx := s.cx - s.fx
	fy := s.cy - s.fy

	a := dx*dx + dy*dy
	if a == 0 {
		return colorAt(s.stops, 0, s.tile)
	}
	b := -2 * (dx*fx + dy*fy)
	c := fx*fx + fy*fy - s.cr*s.cr

	disc := b*b - 4*a*c
	if disc < 0 {
		return colorAt(s.stops, 1, s.tile)
	}
	sqrtD := math32.Sqrt(disc)
	t1 := (-b - sqrtD) / (2 * a)
	t2 := (-b + sqrtD) / (2 * a)
	var t float32
	switch {
	case t1 > 0 && t2 > 0:
		t = math32.Min(t1, t2)
	case t1 > 0:
		t = t1
	case t2 > 0:
		t = t2
	default:
		return colorAt(s.stops, 0, s.tile)
	}
	pointDist := math32.Sqrt(a)
	intersectDist := t * pointDist
	if intersectDist == 0 {
		return colorAt(s.stops, 0, s.tile)
	}
	return colorAt(s.stops, pointDist/intersectDist, s.tile)
}
