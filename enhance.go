package logo565

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"
)

// Flatten composites a straight-alpha image over a black background.
// An unlit LED is black, so transparency renders the way the panel
// shows it.
func Flatten(img image.Image) *image.NRGBA {
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), image.NewUniform(color.Black), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Over)
	return dst
}

// EnhanceOptions are multiplicative factors around 1.0 (1.0 = leave
// unchanged), applied at full resolution before downscaling.
type EnhanceOptions struct {
	Contrast   float64
	Saturation float64
	Sharpness  float64
}

// Enhance boosts contrast, saturation and sharpness ahead of the
// downscale, which keeps small renders from going muddy.
func Enhance(img *image.NRGBA, opts EnhanceOptions) *image.NRGBA {
	g := gift.New(
		gift.Contrast(pct(opts.Contrast)),
		gift.Saturation(pct(opts.Saturation)),
		gift.UnsharpMask(1.0, float32(opts.Sharpness-1), 0),
	)
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// BoxResample downscales to size x size with an area-average box
// filter. Smooth kernels ring at hard logo edges and feed the quantizer
// colors the artwork never contained.
func BoxResample(img *image.NRGBA, size int) *image.NRGBA {
	g := gift.New(gift.Resize(size, size, gift.BoxResampling))
	dst := image.NewNRGBA(g.Bounds(img.Bounds()))
	g.Draw(dst, img)
	return dst
}

// ResizeLanczos resamples with a Lanczos kernel. Only the legacy
// pipeline uses it; the perceptual path sticks to box resampling.
func ResizeLanczos(img image.Image, w, h int) *image.NRGBA {
	return toNRGBA(resize.Resize(uint(w), uint(h), img, resize.Lanczos3))
}

// pct maps a factor around 1.0 onto gift's -100..100 percentage scale.
func pct(factor float64) float32 {
	p := (factor - 1) * 100
	if p < -100 {
		p = -100
	}
	if p > 100 {
		p = 100
	}
	return float32(p)
}
