package logo565

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"testing"
)

func TestPackExpandRoundTrip(t *testing.T) {
	p := testPalette(t)
	for i := 0; i < p.Len(); i++ {
		c := p.Color(i)
		r, g, b := Expand(Pack(c.R, c.G, c.B))
		if r != c.R || g != c.G || b != c.B {
			t.Fatalf("entry %d: (%d,%d,%d) -> (%d,%d,%d)", i, c.R, c.G, c.B, r, g, b)
		}
	}
}

func TestPackKnownValues(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    uint16
	}{
		{0, 0, 0, 0x0000},
		{255, 255, 255, 0xFFFF},
		{255, 0, 0, 0xF800},
		{0, 255, 0, 0x07E0},
		{0, 0, 255, 0x001F},
	}
	for _, tc := range tests {
		if got := Pack(tc.r, tc.g, tc.b); got != tc.want {
			t.Fatalf("Pack(%d,%d,%d): got %04X want %04X", tc.r, tc.g, tc.b, got, tc.want)
		}
	}
}

func TestWriteRGB565LittleEndian(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 1))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(1, 0, color.NRGBA{B: 255, A: 255})

	var buf bytes.Buffer
	if err := WriteRGB565(&buf, img); err != nil {
		t.Fatal(err)
	}
	want := []byte{0x00, 0xF8, 0x1F, 0x00}
	if !bytes.Equal(buf.Bytes(), want) {
		t.Fatalf("got % X want % X", buf.Bytes(), want)
	}
}

func TestWriteReadRoundTrip(t *testing.T) {
	// A quantized image is all 565 grid points, so the file format must
	// reproduce it exactly.
	p := testPalette(t)
	img, err := p.Quantize(gradientNRGBA(12, 12))
	if err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	if err := WriteRGB565(&buf, img); err != nil {
		t.Fatal(err)
	}
	back, err := ReadRGB565(&buf, 12, 12)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < 12; y++ {
		for x := 0; x < 12; x++ {
			if got, want := back.NRGBAAt(x, y), img.NRGBAAt(x, y); got != want {
				t.Fatalf("(%d,%d): got %v want %v", x, y, got, want)
			}
		}
	}
}

func TestWriteReadErrors(t *testing.T) {
	var ferr *InputFormatError
	if err := WriteRGB565(&bytes.Buffer{}, nil); !errors.As(err, &ferr) {
		t.Fatalf("nil image: got %v want InputFormatError", err)
	}
	if _, err := ReadRGB565(&bytes.Buffer{}, 0, 4); !errors.As(err, &ferr) {
		t.Fatalf("bad dims: got %v want InputFormatError", err)
	}
	if _, err := ReadRGB565(bytes.NewReader([]byte{0x00}), 2, 2); err == nil {
		t.Fatal("short stream: expected error")
	}
}
