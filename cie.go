package logo565

import (
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// cieMaxLevel is the panel's duty-cycle resolution: 4 bits per channel.
const cieMaxLevel = 15

// buildCIELUT maps an 8-bit channel sample to an N-bit duty-cycle level
// via the CIE 1931 lightness curve, the same formula the panel firmware
// burns into its channel LUTs.
func buildCIELUT(maxOut int) [256]uint8 {
	var lut [256]uint8
	for i := 0; i < 256; i++ {
		l := float64(i) * 100.0 / 255.0
		var y float64
		if l <= 8 {
			y = l / 902.3
		} else {
			y = math.Pow((l+16.0)/116.0, 3)
		}
		v := int(math.Round(y * float64(maxOut)))
		if v > maxOut {
			v = maxOut
		}
		lut[i] = uint8(v)
	}
	return lut
}

// Lab is a CIELAB coordinate: L in 0..100, a and b roughly -128..127.
type Lab struct {
	L, A, B float64
}

// srgbToLab converts an 8-bit sRGB pixel to CIELAB under D65.
// go-colorful keeps L in 0..1 and a/b in -1..1, so scale by 100 to get
// the conventional ranges the override thresholds are written in.
func srgbToLab(r, g, b uint8) Lab {
	c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
	l, a, bb := c.Lab()
	return Lab{L: l * 100, A: a * 100, B: bb * 100}
}

// levelLab converts a CIE duty-cycle triple to the CIELAB coordinate of
// the light the panel emits for it. A level is a linear brightness
// fraction of full output, not an sRGB sample, hence LinearRgb.
func levelLab(r, g, b uint8) Lab {
	c := colorful.LinearRgb(
		float64(r)/cieMaxLevel,
		float64(g)/cieMaxLevel,
		float64(b)/cieMaxLevel,
	)
	l, a, bb := c.Lab()
	return Lab{L: l * 100, A: a * 100, B: bb * 100}
}
