package logo565

import (
	"bytes"
	"fmt"
	"image"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
)

// RenderSVG rasterizes SVG data onto a transparent w x h canvas. League
// logo feeds are SVG; everything downstream wants pixels.
func RenderSVG(data []byte, w, h int) (*image.RGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, &InputFormatError{Reason: fmt.Sprintf("bad render size %dx%d", w, h)}
	}
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("parse svg: %w", err)
	}
	// ReadIconStream swallows non-SVG input and yields an empty icon; a
	// logo with nothing to draw is a broken feed, not a blank asset.
	if len(icon.SVGPaths) == 0 {
		return nil, &InputFormatError{Reason: "svg has no drawable paths"}
	}
	icon.SetTarget(0, 0, float64(w), float64(h))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, img, img.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)
	return img, nil
}
