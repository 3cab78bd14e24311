// Command convertlogo converts a single image file (SVG, PNG, JPEG,
// GIF, WebP, BMP or TIFF) into a .rgb565 asset plus a PNG preview.
package main

import (
	"flag"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	logo565 "github.com/scorepanel/logo565-go"
)

// svgRenderSize gives the pipeline real edges to enhance before it
// downscales to the target.
const svgRenderSize = 200

func main() {
	var (
		input      = flag.String("input", "", "input image path (required)")
		output     = flag.String("o", "", "output .rgb565 path (default: input with .rgb565 extension)")
		size       = flag.Int("size", 20, "output size in pixels (square)")
		mode       = flag.String("mode", "perceptual", "perceptual | legacy")
		depth      = flag.Int("depth", 4, "bits per channel in legacy mode")
		dith       = flag.Bool("dither", false, "enable Floyd-Steinberg dithering")
		strength   = flag.Float64("dither-strength", logo565.DefaultDitherStrength, "error diffusion strength 0-1")
		contrast   = flag.Float64("contrast", 1.2, "contrast enhancement factor")
		saturation = flag.Float64("saturation", 1.3, "saturation enhancement factor")
		sharpness  = flag.Float64("sharpness", 1.1, "sharpness enhancement factor")
		team       = flag.String("team", "", "team abbreviation for color fixes (optional)")
		noResize   = flag.Bool("no-resize", false, "keep the input dimensions instead of downscaling")
		noEnhance  = flag.Bool("no-enhance", false, "skip contrast/saturation/sharpness enhancement")
	)
	flag.Parse()

	if *input == "" {
		exitf("-input is required")
	}

	quantMode, err := parseMode(*mode)
	if err != nil {
		exitf("%v", err)
	}

	img, err := loadImage(*input)
	if err != nil {
		exitf("load image: %v", err)
	}

	pal, err := logo565.Default()
	if err != nil {
		exitf("build palette: %v", err)
	}

	out, err := pal.Process(img, logo565.Options{
		Size:           *size,
		Contrast:       *contrast,
		Saturation:     *saturation,
		Sharpness:      *sharpness,
		Mode:           quantMode,
		Dither:         *dith,
		DitherStrength: *strength,
		Depth:          *depth,
		Team:           *team,
		NoResize:       *noResize,
		NoEnhance:      *noEnhance,
	})
	if err != nil {
		exitf("process: %v", err)
	}

	rgbPath := *output
	if rgbPath == "" {
		rgbPath = strings.TrimSuffix(*input, filepath.Ext(*input)) + ".rgb565"
	}
	previewPath := strings.TrimSuffix(rgbPath, ".rgb565") + "_preview.png"

	f, err := os.Create(rgbPath)
	if err != nil {
		exitf("create output: %v", err)
	}
	if err := logo565.WriteRGB565(f, out); err != nil {
		f.Close()
		exitf("write rgb565: %v", err)
	}
	if err := f.Close(); err != nil {
		exitf("write rgb565: %v", err)
	}

	pf, err := os.Create(previewPath)
	if err != nil {
		exitf("create preview: %v", err)
	}
	if err := png.Encode(pf, out); err != nil {
		pf.Close()
		exitf("write preview: %v", err)
	}
	if err := pf.Close(); err != nil {
		exitf("write preview: %v", err)
	}

	fmt.Printf("%dx%d -> %s (+ %s)\n", out.Bounds().Dx(), out.Bounds().Dy(), rgbPath, previewPath)
}

func loadImage(path string) (image.Image, error) {
	if strings.EqualFold(filepath.Ext(path), ".svg") {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		return logo565.RenderSVG(data, svgRenderSize, svgRenderSize)
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}

func parseMode(s string) (logo565.Mode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "perceptual":
		return logo565.ModePerceptual, nil
	case "legacy":
		return logo565.ModeLegacy, nil
	}
	return 0, fmt.Errorf("unsupported mode %q", s)
}

func exitf(format string, args ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", args...)
	os.Exit(1)
}
