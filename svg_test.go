package logo565

import (
	"errors"
	"testing"
)

const testSVG = `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10"><rect x="0" y="0" width="10" height="10" fill="#FF0000"/></svg>`

func TestRenderSVG(t *testing.T) {
	img, err := RenderSVG([]byte(testSVG), 32, 32)
	if err != nil {
		t.Fatal(err)
	}
	if img.Bounds().Dx() != 32 || img.Bounds().Dy() != 32 {
		t.Fatalf("bad size: %v", img.Bounds())
	}
	c := img.RGBAAt(16, 16)
	if c.R < 200 || c.G > 50 || c.B > 50 || c.A < 200 {
		t.Fatalf("center pixel not red: %v", c)
	}
}

func TestRenderSVGErrors(t *testing.T) {
	var ferr *InputFormatError
	if _, err := RenderSVG([]byte(testSVG), 0, 32); !errors.As(err, &ferr) {
		t.Fatalf("zero width: got %v want InputFormatError", err)
	}
	// The SVG parser tolerates arbitrary bytes and hands back an empty
	// icon; an icon with nothing to draw must be rejected rather than
	// rendered as a blank canvas.
	if _, err := RenderSVG([]byte("not svg at all"), 16, 16); !errors.As(err, &ferr) {
		t.Fatalf("garbage input: got %v want InputFormatError", err)
	}
	empty := `<svg xmlns="http://www.w3.org/2000/svg" width="10" height="10" viewBox="0 0 10 10"></svg>`
	if _, err := RenderSVG([]byte(empty), 16, 16); !errors.As(err, &ferr) {
		t.Fatalf("pathless svg: got %v want InputFormatError", err)
	}
}
