package asset

import (
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"

	"github.com/pkg/errors"
	xdraw "golang.org/x/image/draw"
	"golang.org/x/image/vector"
)

var (
	grassLight = color.RGBA{R: 60, G: 150, B: 60, A: 255}
	grassDark  = color.RGBA{R: 50, G: 135, B: 50, A: 255}
	lineWhite  = color.RGBA{R: 240, G: 240, B: 240, A: 255}
)

// LoadPitch decodes the image at path and scales it to fill
// width x height
func LoadPitch(path string, width, height int) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "could not find pitch image")
	}
	defer f.Close()
	src, _, err := image.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode pitch image %s", path)
	}
	dst := image.NewRGBA(image.Rect(0, 0, width, height))
	xdraw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst, nil
}

// Pitch draws the attacking half of a pitch seen from above. The goal
// line being attacked runs along the top edge and the halfway line along
// the bottom.
func Pitch(width, height int) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, width, height))

	// mown stripes
	stripes := 8
	for i := 0; i < stripes; i++ {
		clr := grassLight
		if i%2 == 1 {
			clr = grassDark
		}
		r := image.Rect(0, height*i/stripes, width, height*(i+1)/stripes)
		xdraw.Draw(dst, r, image.NewUniform(clr), image.Point{}, xdraw.Src)
	}

	const line = 2
	white := image.NewUniform(lineWhite)
	outline := func(r image.Rectangle) {
		xdraw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Max.X, r.Min.Y+line), white, image.Point{}, xdraw.Over)
		xdraw.Draw(dst, image.Rect(r.Min.X, r.Max.Y-line, r.Max.X, r.Max.Y), white, image.Point{}, xdraw.Over)
		xdraw.Draw(dst, image.Rect(r.Min.X, r.Min.Y, r.Min.X+line, r.Max.Y), white, image.Point{}, xdraw.Over)
		xdraw.Draw(dst, image.Rect(r.Max.X-line, r.Min.Y, r.Max.X, r.Max.Y), white, image.Point{}, xdraw.Over)
	}

	// touchlines, goal line and halfway line
	outline(image.Rect(0, 0, width, height))

	// penalty area and six yard box, sized as a fraction of the width
	boxWidth, boxDepth := width*6/10, height*3/10
	outline(image.Rect((width-boxWidth)/2, 0, (width+boxWidth)/2, boxDepth))
	sixWidth, sixDepth := width*27/100, height/10
	outline(image.Rect((width-sixWidth)/2, 0, (width+sixWidth)/2, sixDepth))

	z := vector.NewRasterizer(width, height)
	spotY := float32(height) * 0.2
	addEllipse(z, float32(width)/2, spotY, 3, 3)

	// centre circle, only the top half is on this half of the pitch
	addRing(z, float32(width)/2, float32(height), float32(height)/5, line)
	z.Draw(dst, dst.Bounds(), white, image.Point{})
	return dst
}
