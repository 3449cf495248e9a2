package main

import (
	"context"
	"errors"
	"image"
	"image/color"
	"math"
	"os"
	"path/filepath"
	"strings"

	"github.com/colormotor/canvas"
	"github.com/colormotor/canvas/framesource"
	"github.com/colormotor/canvas/sketch"
	"github.com/colormotor/canvas/turtle"
	"github.com/ojrac/opensimplex-go"
)

type entry struct {
	desc string
	new  func(*RunCmd) (sketch.Drawer, error)
}

var sketches = map[string]entry{
	"waves": {"Animated rows of sine waves", func(*RunCmd) (sketch.Drawer, error) {
		return &waves{}, nil
	}},
	"noise": {"Concentric closed curves displaced by simplex noise", func(cmd *RunCmd) (sketch.Drawer, error) {
		return &noise{noise: opensimplex.NewNormalized(cmd.Seed)}, nil
	}},
	"turtle": {"Turtle rosette of circles, press s to save turtle.svg", func(*RunCmd) (sketch.Drawer, error) {
		return &rosette{}, nil
	}},
	"stars": {"Rotating stars over a ring of ellipses", newStars},
	"video": {"Rows of curves displaced by video brightness", newVideo},
}

////////////////////////////////////////////////////////////////

type waves struct{}

func (s *waves) Setup(ctx *sketch.Context) error {
	return ctx.CreateCanvas(512, 512)
}

func (s *waves) Draw(ctx *sketch.Context) error {
	if err := ctx.Background(0); err != nil {
		return err
	}
	if err := ctx.StrokeWeight(2); err != nil {
		return err
	}
	if err := ctx.Stroke(255); err != nil {
		return err
	}
	ctx.NoFill()

	const n = 60
	phase := 2.0 * math.Pi / n * float64(ctx.FrameCount()%n)
	w, h := ctx.Size()
	for i := 1; i < 62; i++ {
		y := float64(i) / 62.0
		if err := ctx.BeginShape(); err != nil {
			return err
		}
		for j := 0; j < 100; j++ {
			x := float64(j) / 99.0
			dy := math.Sin(x*math.Pi*4.0+phase+y*7.0) * math.Cos(y*math.Pi*7.0+x*5.2) * 20.0
			if err := ctx.Vertex(x*w, y*h+dy); err != nil {
				return err
			}
		}
		if err := ctx.EndShape(false); err != nil {
			return err
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////

type noise struct {
	noise opensimplex.Noise
}

func (s *noise) Setup(ctx *sketch.Context) error {
	if err := ctx.CreateCanvas(512, 512); err != nil {
		return err
	} else if err := ctx.SetColorScale(1.0); err != nil {
		return err
	}
	return ctx.SetTension(0.5)
}

func (s *noise) Draw(ctx *sketch.Context) error {
	if err := ctx.Background(1); err != nil {
		return err
	}
	w, h := ctx.Size()
	ctx.Translate(w/2.0, h/2.0)
	if err := ctx.Stroke(0); err != nil {
		return err
	}
	ctx.NoFill()

	frame := float64(ctx.FrameCount())
	for i := 0; i < 30; i++ {
		r1 := 10.0 + 190.0*float64(i)/29.0
		if err := ctx.BeginShape(); err != nil {
			return err
		}
		for j := 0; j < 19; j++ {
			t := 2.0 * math.Pi * float64(j) / 19.0
			r := r1 + 10.0 + s.noise.Eval2(t*10.0+frame/100.0, r1/100.0)*50.0
			if err := ctx.CurveVertex(math.Cos(t)*r, math.Sin(t)*r); err != nil {
				return err
			}
		}
		if err := ctx.EndShape(true); err != nil {
			return err
		}
	}
	return nil
}

////////////////////////////////////////////////////////////////

type rosette struct{}

func (s *rosette) Setup(ctx *sketch.Context) error {
	if err := ctx.CreateCanvas(600, 600); err != nil {
		return err
	} else if err := ctx.Background(0); err != nil {
		return err
	}
	w, h := ctx.Size()
	ctx.Translate(w/2.0, h/2.0)

	t := turtle.New()
	for i := 0; i < 36; i++ {
		t.Right(10)
		if err := t.Circle(120, 11); err != nil {
			return err
		}
	}
	if err := ctx.Stroke(255, 0, 0); err != nil {
		return err
	}
	ctx.NoFill()
	return ctx.Shape(t.Paths()...)
}

func (s *rosette) Draw(ctx *sketch.Context) error {
	return nil
}

func (s *rosette) KeyPressed(ctx *sketch.Context, key rune) error {
	if key != 's' {
		return nil
	}
	canvas.Logger().Info("saving", "file", "turtle.svg")
	return ctx.SaveSVG("turtle.svg")
}

////////////////////////////////////////////////////////////////

type stars struct {
	star, dot *canvas.Path
}

func newStars(*RunCmd) (sketch.Drawer, error) {
	star, err := canvas.Star(5, 40.0, 16.0)
	if err != nil {
		return nil, err
	}
	dot, err := canvas.Circle(4.0, 16)
	if err != nil {
		return nil, err
	}
	return &stars{star: star, dot: dot}, nil
}

func (s *stars) Setup(ctx *sketch.Context) error {
	return ctx.CreateCanvas(512, 512)
}

func (s *stars) Draw(ctx *sketch.Context) error {
	if err := ctx.Background(20, 20, 40); err != nil {
		return err
	}
	w, h := ctx.Size()
	ctx.Translate(w/2.0, h/2.0)
	theta := float64(ctx.FrameCount()) * math.Pi / 90.0

	ctx.NoFill()
	if err := ctx.Stroke(120, 140, 255, 160); err != nil {
		return err
	}
	for i := 0; i < 12; i++ {
		ctx.Push()
		ctx.Rotate(float64(i)*math.Pi/6.0 + theta/4.0)
		if err := ctx.Ellipse(120.0, 0.0, 90.0, 24.0, 48); err != nil {
			return err
		}
		if err := ctx.Pop(); err != nil {
			return err
		}
	}

	if err := ctx.Fill(255, 220, 80); err != nil {
		return err
	}
	if err := ctx.Stroke(255); err != nil {
		return err
	}
	for i := 0; i < 6; i++ {
		ctx.Push()
		ctx.Rotate(float64(i) * math.Pi / 3.0)
		ctx.Translate(180.0, 0.0)
		ctx.Rotate(theta)
		if err := ctx.Shape(s.star, s.dot); err != nil {
			return err
		}
		if err := ctx.Pop(); err != nil {
			return err
		}
	}
	return ctx.Star(0.0, 0.0, 8, 60.0, 30.0)
}

////////////////////////////////////////////////////////////////

const videoSize = 32

type video struct {
	src   framesource.Source
	still framesource.Source
	buf   []float64
}

func newVideo(cmd *RunCmd) (sketch.Drawer, error) {
	still, err := framesource.NewStill(gradient(), videoSize, videoSize)
	if err != nil {
		return nil, err
	}
	s := &video{
		src:   still,
		still: still,
		buf:   make([]float64, videoSize*videoSize),
	}

	opts := &framesource.Options{Loop: true, Buffer: 4}
	switch input := cmd.Input; {
	case input == "":
	case strings.EqualFold(filepath.Ext(input), ".gif"):
		f, err := os.Open(input)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		if s.src, err = framesource.OpenGIF(context.Background(), f, videoSize, videoSize, opts); err != nil {
			return nil, err
		}
	case strings.ContainsAny(input, "*?["):
		if s.src, err = framesource.OpenFiles(context.Background(), input, videoSize, videoSize, opts); err != nil {
			return nil, err
		}
	default:
		if s.src, err = framesource.OpenStill(input, videoSize, videoSize); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// gradient is the still used without video input.
func gradient() image.Image {
	img := image.NewGray(image.Rect(0, 0, videoSize, videoSize))
	for y := 0; y < videoSize; y++ {
		for x := 0; x < videoSize; x++ {
			dx, dy := float64(x)-videoSize/2.0, float64(y)-videoSize/2.0
			img.SetGray(x, y, color.Gray{uint8(255.0 * math.Max(0.0, 1.0-math.Hypot(dx, dy)/videoSize*2.0))})
		}
	}
	return img
}

func (s *video) Setup(ctx *sketch.Context) error {
	if err := ctx.CreateCanvas(512, 512); err != nil {
		return err
	} else if err := ctx.SetColorScale(1.0); err != nil {
		return err
	}
	return ctx.SetFrameRate(30)
}

func (s *video) Draw(ctx *sketch.Context) error {
	frame, err := s.src.Read()
	if errors.Is(err, framesource.ErrEndOfStream) {
		s.src = s.still
		frame, err = s.src.Read()
	}
	if err != nil {
		return err
	}
	for i, v := range frame.Gray() {
		s.buf[i] += (v/255.0 - s.buf[i]) * 0.1
	}

	if err := ctx.Background(0); err != nil {
		return err
	}
	_, h := ctx.Size()
	ctx.Scale(h/videoSize, h/videoSize)
	ctx.NoFill()
	if err := ctx.Stroke(1); err != nil {
		return err
	} else if err := ctx.StrokeWeight(0.1); err != nil {
		return err
	}
	for i := 0; i < videoSize; i++ {
		if err := ctx.BeginShape(); err != nil {
			return err
		}
		for j := 0; j < videoSize; j++ {
			if err := ctx.CurveVertex(float64(j), float64(i)-s.buf[i*videoSize+j]*10.0); err != nil {
				return err
			}
		}
		if err := ctx.EndShape(false); err != nil {
			return err
		}
	}
	return nil
}

func (s *video) Close() error {
	if closer, ok := s.src.(interface{ Close() error }); ok {
		return closer.Close()
	}
	return nil
}
