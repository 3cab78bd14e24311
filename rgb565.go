package logo565

import (
	"encoding/binary"
	"fmt"
	"image"
	"io"
)

// Pack packs an RGB888 pixel into the panel's 16-bit 5-6-5 layout.
func Pack(r, g, b uint8) uint16 {
	return uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b)>>3
}

// Expand reverses Pack with the panel's bit-replicating expansion
// rather than a plain shift, so full-scale channels map back to 255.
func Expand(v uint16) (r, g, b uint8) {
	r5 := uint8(v >> 11 & 0x1F)
	g6 := uint8(v >> 5 & 0x3F)
	b5 := uint8(v & 0x1F)
	return r5<<3 | r5>>2, g6<<2 | g6>>4, b5<<3 | b5>>2
}

// WriteRGB565 serializes img as little-endian RGB565 words, row-major
// top to bottom: the raw format the scoreboard loads from flash.
// Quantized output packs losslessly, since every achievable color sits
// exactly on the 565 grid.
func WriteRGB565(w io.Writer, img *image.NRGBA) error {
	if err := checkNRGBA(img); err != nil {
		return err
	}
	b := img.Bounds()
	buf := make([]byte, 0, b.Dx()*b.Dy()*2)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.NRGBAAt(x, y)
			buf = binary.LittleEndian.AppendUint16(buf, Pack(c.R, c.G, c.B))
		}
	}
	_, err := w.Write(buf)
	return err
}

// ReadRGB565 decodes a raw little-endian RGB565 stream of known
// dimensions, expanding each word back to RGB888. Used for previews and
// round-trip checks; the panel firmware does the same expansion.
func ReadRGB565(r io.Reader, w, h int) (*image.NRGBA, error) {
	if w <= 0 || h <= 0 {
		return nil, &InputFormatError{Reason: fmt.Sprintf("bad dimensions %dx%d", w, h)}
	}
	raw := make([]byte, w*h*2)
	if _, err := io.ReadFull(r, raw); err != nil {
		return nil, fmt.Errorf("read rgb565: %w", err)
	}
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i < w*h; i++ {
		rr, gg, bb := Expand(binary.LittleEndian.Uint16(raw[i*2:]))
		img.Pix[i*4+0] = rr
		img.Pix[i*4+1] = gg
		img.Pix[i*4+2] = bb
		img.Pix[i*4+3] = 255
	}
	return img, nil
}
