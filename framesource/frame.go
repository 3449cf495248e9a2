// Package framesource provides pixel frames of a fixed size from stills, image sequences and animated GIFs. Sources are pulled one frame at a time; exhaustion is reported by ErrEndOfStream.
package framesource

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"math"

	"github.com/colormotor/canvas"
	_ "golang.org/x/image/bmp"
	"golang.org/x/image/draw"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// ErrEndOfStream is returned by Read when a source has no more frames.
var ErrEndOfStream = errors.New("end of stream")

// Source is a blocking pull source of frames. Every frame has the size given at construction.
type Source interface {
	Read() (*Frame, error)
	Size() (int, int)
}

// Frame is a row-major RGB pixel buffer with channel values in [0,255].
type Frame struct {
	W, H int
	Pix  []float64
}

// NewFrame returns a black frame of w by h pixels.
func NewFrame(w, h int) (*Frame, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	}
	return &Frame{
		W:   w,
		H:   h,
		Pix: make([]float64, 3*w*h),
	}, nil
}

// FromImage resamples img to w by h pixels. Translucent pixels are composited over black.
func FromImage(img image.Image, w, h int) (*Frame, error) {
	frame, err := NewFrame(w, h)
	if err != nil {
		return nil, err
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	if img.Bounds().Size() == dst.Bounds().Size() {
		draw.Draw(dst, dst.Bounds(), img, img.Bounds().Min, draw.Src)
	} else {
		draw.CatmullRom.Scale(dst, dst.Bounds(), img, img.Bounds(), draw.Src, nil)
	}
	for i, j := 0, 0; i < len(dst.Pix); i, j = i+4, j+3 {
		frame.Pix[j+0] = float64(dst.Pix[i+0])
		frame.Pix[j+1] = float64(dst.Pix[i+1])
		frame.Pix[j+2] = float64(dst.Pix[i+2])
	}
	return frame, nil
}

func checkSize(w, h int) error {
	if w <= 0 || h <= 0 {
		return fmt.Errorf("frame size must be positive, got %dx%d: %w", w, h, canvas.ErrInvalidArgument)
	}
	return nil
}

// At returns the channel values of the pixel at column x and row y.
func (f *Frame) At(x, y int) (r, g, b float64) {
	i := 3 * (y*f.W + x)
	return f.Pix[i], f.Pix[i+1], f.Pix[i+2]
}

// Gray returns the mean of the channels per pixel, row-major in [0,255].
func (f *Frame) Gray() []float64 {
	gray := make([]float64, f.W*f.H)
	for i := range gray {
		gray[i] = (f.Pix[3*i] + f.Pix[3*i+1] + f.Pix[3*i+2]) / 3.0
	}
	return gray
}

// Copy returns a deep copy of the frame.
func (f *Frame) Copy() *Frame {
	pix := make([]float64, len(f.Pix))
	copy(pix, f.Pix)
	return &Frame{
		W:   f.W,
		H:   f.H,
		Pix: pix,
	}
}

// Image returns the frame as an opaque image, rounding channel values.
func (f *Frame) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, f.W, f.H))
	for i, j := 0, 0; j < len(f.Pix); i, j = i+4, j+3 {
		img.Pix[i+0] = toByte(f.Pix[j+0])
		img.Pix[i+1] = toByte(f.Pix[j+1])
		img.Pix[i+2] = toByte(f.Pix[j+2])
		img.Pix[i+3] = 255
	}
	return img
}

func toByte(v float64) uint8 {
	return uint8(math.Max(0.0, math.Min(255.0, math.Round(v))))
}
