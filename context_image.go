package g2d

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/g2d/backend"
)

// DrawImage draws an image with its top left corner at (x, y), at its
// natural size. A nil image draws nothing.
func (gc *Context) DrawImage(img image.Image, x, y float64) {
	if img == nil {
		return
	}
	b := img.Bounds()
	gc.DrawImageScaled(img, x, y, float64(b.Dx()), float64(b.Dy()))
}

// DrawImageScaled draws an image scaled into the rectangle
// (x, y, w, h). A nil image draws nothing.
func (gc *Context) DrawImageScaled(img image.Image, x, y, w, h float64) {
	if img == nil {
		return
	}
	bimg, err := gc.backend.MakeImage(img)
	if err != nil {
		logger().Warn("image conversion failed", "error", err)
		return
	}
	gc.canvas.DrawImageRect(bimg, backend.RectXYWH(float32(x), float32(y), float32(w), float32(h)))
}

// DrawImageWithBackground fills the image area with a background color
// and then draws the image at its natural size.
func (gc *Context) DrawImageWithBackground(img image.Image, x, y float64, bg RGBA) {
	if img == nil {
		return
	}
	b := img.Bounds()
	gc.DrawImageScaledWithBackground(img, x, y, float64(b.Dx()), float64(b.Dy()), bg)
}

// DrawImageScaledWithBackground fills the destination rectangle with a
// background color and then draws the image scaled into it.
func (gc *Context) DrawImageScaledWithBackground(img image.Image, x, y, w, h float64, bg RGBA) {
	saved := gc.snapshotPaint()
	gc.SetPaint(SolidPaint{Color: bg})
	gc.FillRect(x, y, w, h)
	gc.SetPaint(saved)
	gc.DrawImageScaled(img, x, y, w, h)
}

// DrawImageSub draws the source rectangle (sx1, sy1, sx2, sy2) of an
// image into the destination rectangle (dx1, dy1, dx2, dy2). The
// source region is scaled into an intermediate image first; an empty
// destination draws nothing.
func (gc *Context) DrawImageSub(img image.Image, dx1, dy1, dx2, dy2, sx1, sy1, sx2, sy2 int) {
	if img == nil {
		return
	}
	w := dx2 - dx1
	h := dy2 - dy1
	if w <= 0 || h <= 0 {
		return
	}
	tmp := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(tmp, tmp.Bounds(), img,
		image.Rect(sx1, sy1, sx2, sy2), xdraw.Src, nil)
	gc.DrawImage(tmp, float64(dx1), float64(dy1))
}

// DrawImageSubWithBackground fills the destination rectangle with a
// background color and then draws the source region into it.
func (gc *Context) DrawImageSubWithBackground(img image.Image, dx1, dy1, dx2, dy2, sx1, sy1, sx2, sy2 int, bg RGBA) {
	saved := gc.snapshotPaint()
	gc.SetPaint(SolidPaint{Color: bg})
	gc.FillRect(float64(dx1), float64(dy1), float64(dx2-dx1), float64(dy2-dy1))
	gc.SetPaint(saved)
	gc.DrawImageSub(img, dx1, dy1, dx2, dy2, sx1, sy1, sx2, sy2)
}

// DrawImageTransformed draws an image at the origin with an extra
// transform applied ahead of the current one. The current transform is
// untouched afterwards.
func (gc *Context) DrawImageTransformed(img image.Image, m Matrix) {
	saved := gc.Transform()
	gc.Concat(m)
	gc.DrawImage(img, 0, 0)
	gc.SetTransform(saved)
}
