package icongen

import (
	"image"
	"image/color"
	"math"

	"github.com/disintegration/imaging"
	"golang.org/x/image/draw"
)

// Transparent is the default canvas background.
var Transparent color.Color = color.NRGBA{}

// EnsureRGBA returns img as a non-premultiplied RGBA image anchored at the
// origin. An image already in that form is returned as is.
func EnsureRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Bounds().Min == (image.Point{}) {
		return n
	}
	return imaging.Clone(img)
}

// ScaledSize returns the dimensions of a w×h image shrunk to fit inside a
// maxSide×maxSide box. Images that already fit are never enlarged.
//
// Rounding picks floor or ceil, whichever keeps the ratio closer to the
// source, so results line up with Pillow's thumbnail().
func ScaledSize(w, h, maxSide int) (int, int) {
	if w <= maxSide && h <= maxSide {
		return w, h
	}
	if w <= 0 || h <= 0 {
		return w, h
	}

	aspect := float64(w) / float64(h)
	x, y := maxSide, maxSide
	if float64(x)/float64(y) >= aspect {
		x = roundAspect(float64(y)*aspect, func(n float64) float64 {
			return math.Abs(aspect - n/float64(y))
		})
	} else {
		y = roundAspect(float64(x)/aspect, func(n float64) float64 {
			if n == 0 {
				return 0
			}
			return math.Abs(aspect - float64(x)/n)
		})
	}
	return x, y
}

func roundAspect(n float64, dist func(float64) float64) int {
	lo, hi := math.Floor(n), math.Ceil(n)
	best := lo
	if dist(hi) < dist(lo) {
		best = hi
	}
	if best < 1 {
		return 1
	}
	return int(best)
}

// Placement returns the rectangle a w×h source occupies on a size×size
// canvas with the given padding.
func Placement(w, h, size, padding int) (image.Rectangle, error) {
	if err := checkGeometry(size, padding); err != nil {
		return image.Rectangle{}, err
	}
	sw, sh := ScaledSize(w, h, size-2*padding)
	left := (size - sw) / 2
	top := (size - sh) / 2
	return image.Rect(left, top, left+sw, top+sh), nil
}

// FitOnSquare returns a size×size canvas filled with bg holding img shrunk
// to fit inside the padded area and centered. A nil bg means Transparent.
func FitOnSquare(img image.Image, size, padding int, bg color.Color) (*image.NRGBA, error) {
	if err := checkGeometry(size, padding); err != nil {
		return nil, err
	}
	if bg == nil {
		bg = Transparent
	}

	canvas := imaging.New(size, size, bg)

	src := EnsureRGBA(img)
	b := src.Bounds()
	if b.Empty() {
		return canvas, nil
	}

	r, err := Placement(b.Dx(), b.Dy(), size, padding)
	if err != nil {
		return nil, err
	}

	scaled := src
	if r.Dx() != b.Dx() || r.Dy() != b.Dy() {
		scaled = imaging.Resize(src, r.Dx(), r.Dy(), imaging.Lanczos)
	}

	// Over uses the logo's own alpha as the paste mask.
	draw.Copy(canvas, r.Min, scaled, scaled.Bounds(), draw.Over, nil)
	return canvas, nil
}
