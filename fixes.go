package logo565

import (
	"image"
	"image/color"
)

// FixPolicy is a per-team color correction applied around quantization.
type FixPolicy int

const (
	// FixNone passes pixels through untouched.
	FixNone FixPolicy = iota
	// FixRed casts warm pink/orange artifacts to pure red.
	FixRed
	// FixOrange suppresses only the blue channel so pink reads as
	// orange rather than red.
	FixOrange
	// FixGreenBoost remaps dim greens to a known-good palette green;
	// the CIE LUT under-represents them otherwise.
	FixGreenBoost
)

// TeamFixes maps team abbreviations to their correction policy.
// Unlisted teams get FixNone.
var TeamFixes = map[string]FixPolicy{
	// International
	"SVK": FixRed, "LAT": FixRed, "ITA": FixRed, "DEN": FixRed,
	"SUI": FixRed, "FRA": FixRed, "CAN": FixRed, "USA": FixRed, "CZE": FixRed,
	// NHL, red
	"NJD": FixRed, "WSH": FixRed, "SEA": FixRed, "WPG": FixRed,
	"CBJ": FixRed, "MTL": FixRed, "FLA": FixRed, "CAR": FixRed,
	"NYR": FixRed, "MIN": FixRed,
	// NHL, orange
	"PHI": FixOrange, "NYI": FixOrange, "EDM": FixOrange,
	// NHL, green boost
	"DAL": FixGreenBoost,
}

// PolicyFor returns the fix policy for a team abbreviation.
func PolicyFor(team string) FixPolicy { return TeamFixes[team] }

// Rule thresholds on quantized 8-bit channels. Tuned by eye on the
// panel; nearWhiteMin guards pixels the quantizer already resolved to
// white from being recast to a team color.
const (
	nearWhiteMin = 150

	redMinR    = 70
	redMinDiff = 15

	orangeMinR = 80
	orangeMinB = 40

	greenMinSum = 15
)

// Reference green for FixGreenBoost: the Italian flag green, which the
// CIE chain renders well. See Palette.GreenRef.
const (
	greenRefR = 0
	greenRefG = 146
	greenRefB = 70
)

// ApplyPreFix runs on the downscaled image before quantization. No
// policy currently needs a pre-quantization pass; the hook keeps the
// pipeline symmetric with ApplyPostFix.
func (p *Palette) ApplyPreFix(img *image.NRGBA, team string) *image.NRGBA {
	return img
}

// ApplyPostFix applies the team's correction policy to a quantized
// image. Teams without a policy are a no-op; the input is never
// mutated.
func (p *Palette) ApplyPostFix(img *image.NRGBA, team string) *image.NRGBA {
	policy := PolicyFor(team)
	if policy == FixNone {
		return img
	}
	w := img.Bounds().Dx()
	h := img.Bounds().Dy()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			out.SetNRGBA(x, y, p.fixPixel(policy, img.NRGBAAt(img.Bounds().Min.X+x, img.Bounds().Min.Y+y)))
		}
	}
	return out
}

func (p *Palette) fixPixel(policy FixPolicy, c color.NRGBA) color.NRGBA {
	r, g, b := int(c.R), int(c.G), int(c.B)
	nearWhite := min3(r, g, b) >= nearWhiteMin

	switch policy {
	case FixRed:
		warm := r >= redMinR && r-g > redMinDiff && r-b > redMinDiff
		if !warm {
			return c
		}
		if nearWhite {
			return pureWhite
		}
		return color.NRGBA{R: c.R, A: 255}

	case FixOrange:
		pink := r >= orangeMinR && b >= orangeMinB && r > b
		if !pink {
			return c
		}
		if nearWhite {
			return pureWhite
		}
		return color.NRGBA{R: c.R, G: c.G, A: 255}

	case FixGreenBoost:
		if nearWhite {
			return c
		}
		if g >= r && g >= b && r+g+b > greenMinSum {
			return p.GreenRef()
		}
		return c
	}
	return c
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}
