// raster is a software implementation of the renderer's Screen, it draws
// into an *image.RGBA. The headless driver, snapshots and tests use it.
package raster

import (
	"image"
	"image/color"
	"math"

	"github.com/silbinarywolf/toy-offside-board/internal/renderer/rendereriface"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

var _ rendereriface.Canvas = new(Canvas)

type Canvas struct {
	dst        *image.RGBA
	rasterizer *vector.Rasterizer
}

func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		dst:        image.NewRGBA(image.Rect(0, 0, width, height)),
		rasterizer: vector.NewRasterizer(width, height),
	}
}

// Loader hands decoded images straight through, the raster canvas can
// draw any image.Image
type Loader struct{}

func (Loader) NewImageFromImage(img image.Image) rendereriface.Image {
	return img
}

// RGBA is the canvas' backing image
func (canvas *Canvas) RGBA() *image.RGBA {
	return canvas.dst
}

func (canvas *Canvas) Image() rendereriface.Image {
	return canvas.dst
}

func (canvas *Canvas) Clear() {
	xdraw.Draw(canvas.dst, canvas.dst.Bounds(), image.Transparent, image.Point{}, xdraw.Src)
}

func (canvas *Canvas) DrawImage(img rendereriface.Image, options rendereriface.ImageOptions) {
	src, ok := img.(image.Image)
	if !ok || src == nil {
		return
	}
	bounds := src.Bounds()
	x := int(math.Round(float64(options.X)))
	y := int(math.Round(float64(options.Y)))
	if options.ScaleX != 0 && options.ScaleY != 0 &&
		(options.ScaleX != 1 || options.ScaleY != 1) {
		w := int(math.Round(float64(bounds.Dx()) * float64(options.ScaleX)))
		h := int(math.Round(float64(bounds.Dy()) * float64(options.ScaleY)))
		xdraw.ApproxBiLinear.Scale(canvas.dst, image.Rect(x, y, x+w, y+h), src, bounds, xdraw.Over, nil)
		return
	}
	xdraw.Draw(canvas.dst, image.Rect(x, y, x+bounds.Dx(), y+bounds.Dy()), src, bounds.Min, xdraw.Over)
}

func (canvas *Canvas) FillRect(x, y, width, height float32, clr color.Color) {
	r := image.Rect(
		int(math.Round(float64(x))),
		int(math.Round(float64(y))),
		int(math.Round(float64(x+width))),
		int(math.Round(float64(y+height))),
	)
	xdraw.Draw(canvas.dst, r, image.NewUniform(clr), image.Point{}, xdraw.Over)
}

// DrawLine rasterizes a one pixel wide quad along the segment
func (canvas *Canvas) DrawLine(x1, y1, x2, y2 float32, clr color.Color) {
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		return
	}
	// half a pixel either side of the segment
	nx, ny := -dy/length*0.5, dx/length*0.5

	b := canvas.dst.Bounds()
	z := canvas.rasterizer
	z.Reset(b.Dx(), b.Dy())
	z.DrawOp = xdraw.Over
	z.MoveTo(x1+nx, y1+ny)
	z.LineTo(x2+nx, y2+ny)
	z.LineTo(x2-nx, y2-ny)
	z.LineTo(x1-nx, y1-ny)
	z.ClosePath()
	z.Draw(canvas.dst, b, image.NewUniform(clr), image.Point{})
}

func (canvas *Canvas) DrawText(s string, x, y int, clr color.Color) {
	d := &font.Drawer{
		Dst:  canvas.dst,
		Src:  image.NewUniform(clr),
		Face: basicfont.Face7x13,
		Dot:  fixed.P(x, y),
	}
	d.DrawString(s)
}
