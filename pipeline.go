package logo565

import "image"

// Options configures one run of the logo pipeline. Zero fields fall
// back to DefaultOptions values, so Options{Team: "NJD"} is usable.
type Options struct {
	// Size is the square output edge in pixels.
	Size int

	// Enhancement factors, applied before downscaling.
	Contrast   float64
	Saturation float64
	Sharpness  float64

	// Mode picks the perceptual or legacy quantizer.
	Mode Mode

	// Dither enables error diffusion. Patterns are visible at 20x20;
	// it mostly helps logos with gradients.
	Dither         bool
	DitherStrength float64

	// Depth is the per-channel bit depth for ModeLegacy.
	Depth int

	// Team selects a correction policy. Empty means none.
	Team string

	// NoResize keeps the input dimensions instead of downscaling to
	// Size. NoEnhance skips the contrast/saturation/sharpness stage.
	NoResize  bool
	NoEnhance bool
}

// DefaultOptions mirrors the tuning the scoreboard assets ship with.
func DefaultOptions() Options {
	return Options{
		Size:           20,
		Contrast:       1.2,
		Saturation:     1.3,
		Sharpness:      1.1,
		Mode:           ModePerceptual,
		DitherStrength: DefaultDitherStrength,
		Depth:          4,
	}
}

func (o Options) withDefaults() Options {
	def := DefaultOptions()
	if o.Size <= 0 {
		o.Size = def.Size
	}
	if o.Contrast == 0 {
		o.Contrast = def.Contrast
	}
	if o.Saturation == 0 {
		o.Saturation = def.Saturation
	}
	if o.Sharpness == 0 {
		o.Sharpness = def.Sharpness
	}
	if o.DitherStrength == 0 {
		o.DitherStrength = def.DitherStrength
	}
	if o.Depth == 0 {
		o.Depth = def.Depth
	}
	return o
}

// Process runs the full pipeline on a decoded logo: flatten over black,
// enhance at full resolution, downscale, apply the team's fixes and
// quantize to the hardware palette. The result is Size x Size (the
// input size with NoResize) and every pixel is an achievable color or
// an explicit override color.
func (p *Palette) Process(img image.Image, opts Options) (*image.NRGBA, error) {
	if err := checkInput(img); err != nil {
		return nil, err
	}
	opts = opts.withDefaults()
	enh := EnhanceOptions{
		Contrast:   opts.Contrast,
		Saturation: opts.Saturation,
		Sharpness:  opts.Sharpness,
	}

	work := Flatten(img)

	if opts.Mode == ModeLegacy {
		if !opts.NoResize {
			work = ResizeLanczos(work, opts.Size, opts.Size)
		}
		if !opts.NoEnhance {
			work = Enhance(work, enh)
		}
		return QuantizeLegacy(work, opts.Depth, opts.Dither)
	}

	if !opts.NoEnhance {
		work = Enhance(work, enh)
	}
	if !opts.NoResize {
		work = BoxResample(work, opts.Size)
	}
	small := p.ApplyPreFix(work, opts.Team)

	var (
		out *image.NRGBA
		err error
	)
	if opts.Dither {
		out, err = p.QuantizeDithered(small, opts.DitherStrength)
	} else {
		out, err = p.Quantize(small)
	}
	if err != nil {
		return nil, err
	}
	return p.ApplyPostFix(out, opts.Team), nil
}
