package asset

import (
	"image"
	"image/color"

	"golang.org/x/image/vector"
)

// kappa is the control point distance for approximating a quarter
// ellipse with a cubic bezier
const kappa = float32(0.5522847498)

// TokenSprite draws a token icon: a ring coloured disc of size
// (width+border, height+border) with the fill coloured disc of size
// (width, height) centred inside it.
func TokenSprite(width, height, border int, ring, fill color.Color) *image.RGBA {
	w, h := width+border, height+border
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	z := vector.NewRasterizer(w, h)

	addEllipse(z, float32(w)/2, float32(h)/2, float32(w)/2, float32(h)/2)
	z.Draw(dst, dst.Bounds(), image.NewUniform(ring), image.Point{})

	z.Reset(w, h)
	addEllipse(z, float32(w)/2, float32(h)/2, float32(width)/2, float32(height)/2)
	z.Draw(dst, dst.Bounds(), image.NewUniform(fill), image.Point{})
	return dst
}

func addEllipse(z *vector.Rasterizer, cx, cy, rx, ry float32) {
	kx, ky := kappa*rx, kappa*ry
	z.MoveTo(cx, cy-ry)
	z.CubeTo(cx+kx, cy-ry, cx+rx, cy-ky, cx+rx, cy)
	z.CubeTo(cx+rx, cy+ky, cx+kx, cy+ry, cx, cy+ry)
	z.CubeTo(cx-kx, cy+ry, cx-rx, cy+ky, cx-rx, cy)
	z.CubeTo(cx-rx, cy-ky, cx-kx, cy-ry, cx, cy-ry)
	z.ClosePath()
}

// addRing adds a ring of the given thickness, the inner ellipse is wound
// the opposite way so the nonzero rule leaves it empty
func addRing(z *vector.Rasterizer, cx, cy, radius, thickness float32) {
	addEllipse(z, cx, cy, radius+thickness/2, radius+thickness/2)

	r := radius - thickness/2
	k := kappa * r
	z.MoveTo(cx, cy-r)
	z.CubeTo(cx-k, cy-r, cx-r, cy-k, cx-r, cy)
	z.CubeTo(cx-r, cy+k, cx-k, cy+r, cx, cy+r)
	z.CubeTo(cx+k, cy+r, cx+r, cy+k, cx+r, cy)
	z.CubeTo(cx+r, cy-k, cx+k, cy-r, cx, cy-r)
	z.ClosePath()
}
