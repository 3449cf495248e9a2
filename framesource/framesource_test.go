package framesource

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/gif"
	"image/png"
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/colormotor/canvas"
	"github.com/tdewolff/test"
)

func uniform(w, h int, col color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.Set(x, y, col)
		}
	}
	return img
}

// near compares channel values up to resampling round-off.
func near(t *testing.T, a, b float64) {
	t.Helper()
	test.That(t, math.Abs(a-b) <= 1.0, a, "!=", b)
}

func TestFrame(t *testing.T) {
	_, err := NewFrame(0, 1)
	test.That(t, errors.Is(err, canvas.ErrInvalidArgument))

	frame, err := FromImage(uniform(8, 6, color.RGBA{30, 60, 90, 255}), 8, 6)
	test.Error(t, err)
	test.T(t, frame.W, 8)
	test.T(t, frame.H, 6)
	test.T(t, len(frame.Pix), 3*8*6)
	r, g, b := frame.At(7, 5)
	test.Float(t, r, 30.0)
	test.Float(t, g, 60.0)
	test.Float(t, b, 90.0)

	gray := frame.Gray()
	test.T(t, len(gray), 8*6)
	test.Float(t, gray[0], 60.0)

	img := frame.Image()
	test.T(t, img.Bounds(), image.Rect(0, 0, 8, 6))
	test.T(t, img.RGBAAt(3, 3), color.RGBA{30, 60, 90, 255})

	cp := frame.Copy()
	cp.Pix[0] = 0.0
	test.Float(t, frame.Pix[0], 30.0)

	frame, err = FromImage(uniform(64, 48, color.RGBA{30, 60, 90, 255}), 8, 6)
	test.Error(t, err)
	r, g, b = frame.At(4, 3)
	near(t, r, 30.0)
	near(t, g, 60.0)
	near(t, b, 90.0)
}

func TestStill(t *testing.T) {
	_, err := NewStill(uniform(4, 4, color.White), -1, 4)
	test.That(t, errors.Is(err, canvas.ErrInvalidArgument))

	s, err := NewStill(uniform(4, 4, color.White), 2, 3)
	test.Error(t, err)
	w, h := s.Size()
	test.T(t, w, 2)
	test.T(t, h, 3)
	for i := 0; i < 3; i++ {
		frame, err := s.Read()
		test.Error(t, err)
		test.T(t, frame.W, 2)
		near(t, frame.Gray()[5], 255.0)
		frame.Pix[0] = 0.0
	}
}

func TestOpenStill(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "still.png")
	writePNG(t, filename, uniform(5, 5, color.Gray{100}))

	s, err := OpenStill(filename, 3, 3)
	test.Error(t, err)
	frame, _ := s.Read()
	near(t, frame.Gray()[4], 100.0)

	_, err = OpenStill(filepath.Join(t.TempDir(), "missing.png"), 3, 3)
	test.That(t, err != nil)
}

func writePNG(t *testing.T, filename string, img image.Image) {
	t.Helper()
	f, err := os.Create(filename)
	test.Error(t, err)
	test.Error(t, png.Encode(f, img))
	test.Error(t, f.Close())
}

func writeSequence(t *testing.T, n int) string {
	t.Helper()
	dir := t.TempDir()
	for i := 0; i < n; i++ {
		writePNG(t, filepath.Join(dir, fmt.Sprintf("frame%03d.png", i)), uniform(4, 4, color.Gray{uint8(10 * (i + 1))}))
	}
	return filepath.Join(dir, "*.png")
}

func TestOpenFiles(t *testing.T) {
	pattern := writeSequence(t, 3)
	s, err := OpenFiles(context.Background(), pattern, 2, 2, nil)
	test.Error(t, err)
	defer s.Close()

	for i := 0; i < 3; i++ {
		frame, err := s.Read()
		test.Error(t, err)
		near(t, frame.Gray()[0], float64(10*(i+1)))
	}
	for i := 0; i < 2; i++ {
		_, err = s.Read()
		test.That(t, errors.Is(err, ErrEndOfStream), err)
	}

	_, err = OpenFiles(context.Background(), filepath.Join(t.TempDir(), "*.png"), 2, 2, nil)
	test.That(t, errors.Is(err, canvas.ErrInvalidArgument))
}

func TestSequenceLoop(t *testing.T) {
	pattern := writeSequence(t, 2)
	s, err := OpenFiles(context.Background(), pattern, 1, 1, &Options{Loop: true, Buffer: 1})
	test.Error(t, err)

	for i := 0; i < 5; i++ {
		frame, err := s.Read()
		test.Error(t, err)
		near(t, frame.Gray()[0], float64(10*(i%2+1)))
	}
	test.Error(t, s.Close())

	// drains at most the buffered frames
	for i := 0; i < 3; i++ {
		if _, err = s.Read(); err != nil {
			break
		}
	}
	test.That(t, errors.Is(err, ErrEndOfStream), err)
}

func TestSequenceOptionsUnchanged(t *testing.T) {
	pattern := writeSequence(t, 2)
	opts := &Options{Buffer: 0}
	s, err := OpenFiles(context.Background(), pattern, 1, 1, opts)
	test.Error(t, err)
	test.T(t, *opts, Options{Buffer: 0})

	_, err = s.Read()
	test.Error(t, err)
	test.Error(t, s.Close())
}

type badImages struct{}

func (badImages) Len() int { return 2 }
func (badImages) Image(i int) (image.Image, error) {
	if i == 1 {
		return nil, errors.New("corrupt")
	}
	return uniform(1, 1, color.White), nil
}

func TestSequenceError(t *testing.T) {
	s, err := NewSequence(context.Background(), badImages{}, 1, 1, nil)
	test.Error(t, err)
	_, err = s.Read()
	test.Error(t, err)
	_, err = s.Read()
	test.That(t, err != nil && !errors.Is(err, ErrEndOfStream), err)
	test.That(t, s.Close() != nil)
}

func TestOpenGIF(t *testing.T) {
	anim := &gif.GIF{}
	for _, idx := range []uint8{0, 215} {
		img := image.NewPaletted(image.Rect(0, 0, 4, 4), palette.WebSafe)
		for i := range img.Pix {
			img.Pix[i] = idx
		}
		anim.Image = append(anim.Image, img)
		anim.Delay = append(anim.Delay, 10)
	}
	buf := &bytes.Buffer{}
	test.Error(t, gif.EncodeAll(buf, anim))

	s, err := OpenGIF(context.Background(), buf, 2, 2, nil)
	test.Error(t, err)
	defer s.Close()

	frame, err := s.Read()
	test.Error(t, err)
	near(t, frame.Gray()[0], 0.0)
	frame, err = s.Read()
	test.Error(t, err)
	near(t, frame.Gray()[0], 255.0)
	_, err = s.Read()
	test.That(t, errors.Is(err, ErrEndOfStream))
}

func TestSource(t *testing.T) {
	still, _ := NewStill(uniform(1, 1, color.Black), 1, 1)
	seq, _ := OpenFiles(context.Background(), writeSequence(t, 1), 1, 1, nil)
	defer seq.Close()
	for _, src := range []Source{still, seq} {
		frame, err := src.Read()
		test.Error(t, err)
		w, h := src.Size()
		test.T(t, frame.W, w)
		test.T(t, frame.H, h)
	}
}
