package logo565

import (
	"image"
	"image/color"
	"image/draw"
	"math"

	"github.com/ericpauley/go-quantize/quantize"
	"github.com/makeworld-the-better-one/dither/v2"
)

// Mode selects one of the two quantization policies.
type Mode int

const (
	// ModePerceptual matches pixels against the achievable-color
	// palette in CIELAB space. This is the default.
	ModePerceptual Mode = iota
	// ModeLegacy reproduces the older pipeline: an adaptive median-cut
	// palette followed by rounding each channel onto the 4-bit grid.
	ModeLegacy
)

// Extreme-pixel override thresholds, in CIELAB units. The nearest
// palette entry at the extremes can land slightly off even though true
// black and white are exactly representable, so they are forced.
// Empirically tuned against panel photos.
const (
	nearBlackL      = 5.0
	nearWhiteL      = 95.0
	nearWhiteChroma = 5.0
)

// DefaultDitherStrength scales diffused error in the dithered path.
const DefaultDitherStrength = 0.4

var (
	pureBlack = color.NRGBA{A: 255}
	pureWhite = color.NRGBA{R: 255, G: 255, B: 255, A: 255}
)

func isNearWhite(q Lab) bool {
	return q.L > nearWhiteL && math.Abs(q.A) < nearWhiteChroma && math.Abs(q.B) < nearWhiteChroma
}

// imageLabs converts every pixel to CIELAB, row-major.
func imageLabs(img *image.NRGBA) []Lab {
	b := img.Bounds()
	w := b.Dx()
	h := b.Dy()
	labs := make([]Lab, w*h)
	i := 0
	for y := 0; y < h; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, b.Min.Y+y):]
		for x := 0; x < w; x++ {
			o := x * 4
			labs[i] = srgbToLab(row[o], row[o+1], row[o+2])
			i++
		}
	}
	return labs
}

// Quantize replaces every pixel with an achievable palette color,
// matched in CIELAB space. The near-black and near-white overrides are
// applied after matching.
func (p *Palette) Quantize(img *image.NRGBA) (*image.NRGBA, error) {
	if err := checkNRGBA(img); err != nil {
		return nil, err
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	labs := imageLabs(img)
	idx := p.NearestBatch(labs)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i, n := range idx {
		c := p.inputs[n]
		switch {
		case labs[i].L < nearBlackL:
			c = pureBlack
		case isNearWhite(labs[i]):
			c = pureWhite
		}
		out.SetNRGBA(i%w, i/w, c)
	}
	return out, nil
}

// QuantizeDithered runs Floyd-Steinberg error diffusion in CIELAB
// space, scaled down by strength so the pattern stays subtle at 20x20.
// Overridden extreme pixels do not diffuse. Pixel-sequential, so it is
// much slower than Quantize; keep it for small images.
func (p *Palette) QuantizeDithered(img *image.NRGBA, strength float64) (*image.NRGBA, error) {
	if err := checkNRGBA(img); err != nil {
		return nil, err
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()

	// In-flight buffer: later pixels see already-diffused error.
	labs := imageLabs(img)

	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			q := labs[y*w+x]
			if q.L < nearBlackL {
				out.SetNRGBA(x, y, pureBlack)
				continue
			}
			if isNearWhite(q) {
				out.SetNRGBA(x, y, pureWhite)
				continue
			}

			n := p.Nearest(q)
			out.SetNRGBA(x, y, p.inputs[n])

			m := p.labs[n]
			eL := (q.L - m.L) * strength
			eA := (q.A - m.A) * strength
			eB := (q.B - m.B) * strength
			diffuse := func(nx, ny int, f float64) {
				if nx < 0 || nx >= w || ny >= h {
					return
				}
				j := ny*w + nx
				labs[j].L += eL * f
				labs[j].A += eA * f
				labs[j].B += eB * f
			}
			diffuse(x+1, y, 7.0/16.0)
			diffuse(x-1, y+1, 3.0/16.0)
			diffuse(x, y+1, 5.0/16.0)
			diffuse(x+1, y+1, 1.0/16.0)
		}
	}
	return out, nil
}

// QuantizeLegacy is the pre-perceptual pipeline kept for comparison
// renders: a median-cut adaptive palette capped at 256 colors, optional
// Floyd-Steinberg dithering, then per-channel rounding onto the N-bit
// hardware grid. It knows nothing about the CIE LUT.
func QuantizeLegacy(img *image.NRGBA, bits int, withDither bool) (*image.NRGBA, error) {
	if err := checkNRGBA(img); err != nil {
		return nil, err
	}
	if bits <= 0 || bits >= 8 {
		// Pass-through still hands back a fresh image; callers own the
		// result on every path.
		b := img.Bounds()
		out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
		return out, nil
	}

	colors := 1 << (bits * 3)
	if colors > 256 {
		colors = 256
	}
	mcq := quantize.MedianCutQuantizer{}
	pal := mcq.Quantize(make(color.Palette, 0, colors), img)

	var work *image.NRGBA
	if withDither {
		d := dither.NewDitherer(pal)
		d.Matrix = dither.FloydSteinberg
		work = toNRGBA(d.Dither(img))
	} else {
		b := img.Bounds()
		work = image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		for y := 0; y < b.Dy(); y++ {
			for x := 0; x < b.Dx(); x++ {
				work.Set(x, y, pal.Convert(img.NRGBAAt(b.Min.X+x, b.Min.Y+y)))
			}
		}
	}

	out := image.NewNRGBA(work.Bounds())
	for i := 0; i+3 < len(work.Pix); i += 4 {
		out.Pix[i+0] = quantizeChannel(work.Pix[i+0], bits)
		out.Pix[i+1] = quantizeChannel(work.Pix[i+1], bits)
		out.Pix[i+2] = quantizeChannel(work.Pix[i+2], bits)
		out.Pix[i+3] = 255
	}
	return out, nil
}

// quantizeChannel rounds an 8-bit sample to the nearest value
// representable at the given per-channel bit depth.
func quantizeChannel(v uint8, bits int) uint8 {
	if bits >= 8 {
		return v
	}
	levels := float64(int(1)<<bits - 1)
	return uint8(math.Round(math.Round(float64(v)*levels/255.0) * (255.0 / levels)))
}

func toNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok {
		return n
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Bounds(), img, b.Min, draw.Src)
	return dst
}
