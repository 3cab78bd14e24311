package logo565

import (
	"fmt"
	"image"
)

// InputFormatError reports an image that cannot enter the pipeline.
// It is returned before any pixel work happens; there is no partial
// output to clean up.
type InputFormatError struct {
	Reason string
}

func (e *InputFormatError) Error() string {
	return fmt.Sprintf("unsupported input image: %s", e.Reason)
}

// PaletteBuildError reports an inconsistency while enumerating the
// hardware palette. It indicates a code defect, not bad input.
type PaletteBuildError struct {
	Detail string
}

func (e *PaletteBuildError) Error() string {
	return fmt.Sprintf("palette build: %s", e.Detail)
}

func checkInput(img image.Image) error {
	if img == nil {
		return &InputFormatError{Reason: "nil image"}
	}
	if b := img.Bounds(); b.Dx() <= 0 || b.Dy() <= 0 {
		return &InputFormatError{Reason: "zero-sized image"}
	}
	return nil
}

// checkNRGBA guards the typed entry points; a nil *image.NRGBA is a
// non-nil image.Image and would slip past checkInput.
func checkNRGBA(img *image.NRGBA) error {
	if img == nil {
		return &InputFormatError{Reason: "nil image"}
	}
	return checkInput(img)
}
