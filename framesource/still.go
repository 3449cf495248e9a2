package framesource

import (
	"fmt"
	"image"
	"os"

	"github.com/colormotor/canvas"
)

// Still is a source that returns the same frame on every read. It never ends.
type Still struct {
	frame *Frame
}

// NewStill returns a source of img resampled to w by h pixels.
func NewStill(img image.Image, w, h int) (*Still, error) {
	frame, err := FromImage(img, w, h)
	if err != nil {
		return nil, err
	}
	return &Still{frame}, nil
}

// OpenStill decodes an image file in any of the registered formats.
func OpenStill(filename string, w, h int) (*Still, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", filename, err)
	}
	canvas.Logger().Info("still opened", "file", filename, "format", format)
	return NewStill(img, w, h)
}

// Read returns a copy of the frame.
func (s *Still) Read() (*Frame, error) {
	return s.frame.Copy(), nil
}

// Size returns the frame size.
func (s *Still) Size() (int, int) {
	return s.frame.W, s.frame.H
}
