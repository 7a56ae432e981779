package softraster

import (
	"image"
	"image/draw"
	"math"
	"sort"

	"golang.org/x/image/vector"

	"github.com/gogpu/g2d/backend"
)

// rasterize fills device-space subpaths into an alpha mask of the
// given size. Open subpaths fill as if closed by a chord. Non-zero
// winding goes through the x/image/vector rasterizer; even-odd uses a
// supersampled scanline pass.
func rasterize(subs []subpath, rule backend.FillMode, w, h int) *image.Alpha {
	if rule == backend.FillEvenOdd {
		return rasterizeEvenOdd(subs, w, h)
	}
	r := vector.NewRasterizer(w, h)
	r.DrawOp = draw.Src
	for _, sp := range subs {
		if len(sp.pts) < 2 {
			continue
		}
		r.MoveTo(float32(sp.pts[0].X), float32(sp.pts[0].Y))
		for _, p := range sp.pts[1:] {
			r.LineTo(float32(p.X), float32(p.Y))
		}
		r.ClosePath()
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	r.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

type edge struct {
	x0, y0, x1, y1 float64
}

const subSamples = 4

// rasterizeEvenOdd fills with the even-odd rule by casting sub-pixel
// scanlines and accumulating exact horizontal span coverage.
func rasterizeEvenOdd(subs []subpath, w, h int) *image.Alpha {
	var edges []edge
	for _, sp := range subs {
		n := len(sp.pts)
		if n < 2 {
			continue
		}
		for i := 0; i < n; i++ {
			a := sp.pts[i]
			b := sp.pts[(i+1)%n]
			if a.Y != b.Y {
				edges = append(edges, edge{a.X, a.Y, b.X, b.Y})
			}
		}
	}

	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	if len(edges) == 0 {
		return mask
	}
	cov := make([]float64, w)
	var xs []float64
	for py := 0; py < h; py++ {
		for i := range cov {
			cov[i] = 0
		}
		rowUsed := false
		for s := 0; s < subSamples; s++ {
			y := float64(py) + (float64(s)+0.5)/subSamples
			xs = xs[:0]
			for _, e := range edges {
				if (e.y0 <= y && y < e.y1) || (e.y1 <= y && y < e.y0) {
					t := (y - e.y0) / (e.y1 - e.y0)
					xs = append(xs, e.x0+t*(e.x1-e.x0))
				}
			}
			if len(xs) < 2 {
				continue
			}
			sort.Float64s(xs)
			for i := 0; i+1 < len(xs); i += 2 {
				if addSpan(cov, xs[i], xs[i+1], 1.0/subSamples, w) {
					rowUsed = true
				}
			}
		}
		if !rowUsed {
			continue
		}
		row := mask.Pix[py*mask.Stride : py*mask.Stride+w]
		for x := 0; x < w; x++ {
			c := cov[x]
			if c <= 0 {
				continue
			}
			if c > 1 {
				c = 1
			}
			row[x] = uint8(c*255 + 0.5)
		}
	}
	return mask
}

// addSpan accumulates weighted coverage for the horizontal span
// [x0, x1), with fractional coverage at the span edges.
func addSpan(cov []float64, x0, x1, weight float64, w int) bool {
	if x1 <= x0 {
		return false
	}
	if x0 < 0 {
		x0 = 0
	}
	if x1 > float64(w) {
		x1 = float64(w)
	}
	if x1 <= x0 {
		return false
	}
	ix0 := int(math.Floor(x0))
	ix1 := int(math.Floor(x1))
	if ix0 == ix1 {
		cov[ix0] += (x1 - x0) * weight
		return true
	}
	cov[ix0] += (float64(ix0+1) - x0) * weight
	for x := ix0 + 1; x < ix1; x++ {
		cov[x] += weight
	}
	if ix1 < w {
		cov[ix1] += (x1 - float64(ix1)) * weight
	}
	return true
}
