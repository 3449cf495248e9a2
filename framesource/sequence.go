package framesource

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/gif"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/colormotor/canvas"
	"golang.org/x/image/draw"
	"golang.org/x/sync/errgroup"
)

// Images is a finite ordered list of images. Image is called with increasing indices, restarting at zero when looping.
type Images interface {
	Len() int
	Image(i int) (image.Image, error)
}

// Options are the options of a sequence.
type Options struct {
	Loop   bool // restart at the first image instead of ending
	Buffer int  // number of frames decoded ahead
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Buffer: 4,
}

// Sequence is a source of frames decoded ahead of time by a background goroutine.
type Sequence struct {
	w, h   int
	frames chan *Frame
	cancel context.CancelFunc
	g      *errgroup.Group

	once sync.Once
	err  error
}

// NewSequence starts decoding images into frames of w by h pixels. Decoding stops when ctx is cancelled or Close is called.
func NewSequence(ctx context.Context, images Images, w, h int, opts *Options) (*Sequence, error) {
	if err := checkSize(w, h); err != nil {
		return nil, err
	} else if images.Len() == 0 {
		return nil, fmt.Errorf("empty image sequence: %w", canvas.ErrInvalidArgument)
	}
	options := DefaultOptions
	if opts != nil {
		options = *opts
	}
	if options.Buffer < 1 {
		options.Buffer = 1
	}

	ctx, cancel := context.WithCancel(ctx)
	g, ctx := errgroup.WithContext(ctx)
	s := &Sequence{
		w:      w,
		h:      h,
		frames: make(chan *Frame, options.Buffer),
		cancel: cancel,
		g:      g,
	}
	loop := options.Loop
	g.Go(func() error {
		defer close(s.frames)
		for {
			for i := 0; i < images.Len(); i++ {
				img, err := images.Image(i)
				if err != nil {
					return fmt.Errorf("image %d: %w", i, err)
				}
				frame, err := FromImage(img, w, h)
				if err != nil {
					return err
				}
				select {
				case s.frames <- frame:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			if !loop {
				return nil
			}
			canvas.Logger().Debug("sequence looped", "frames", images.Len())
		}
	})
	return s, nil
}

// Read blocks until the next frame is decoded. It returns ErrEndOfStream after the last frame, or the decoding error if decoding failed.
func (s *Sequence) Read() (*Frame, error) {
	frame, ok := <-s.frames
	if ok {
		return frame, nil
	}
	s.once.Do(func() {
		if err := s.g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
			s.err = err
		}
	})
	if s.err != nil {
		return nil, s.err
	}
	return nil, ErrEndOfStream
}

// Size returns the frame size.
func (s *Sequence) Size() (int, int) {
	return s.w, s.h
}

// Close stops decoding and waits for the decoder to finish. Subsequent reads return ErrEndOfStream after any buffered frames.
func (s *Sequence) Close() error {
	s.cancel()
	if err := s.g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}

////////////////////////////////////////////////////////////////

type gifImages struct {
	g   *gif.GIF
	img *image.RGBA
}

func (g *gifImages) Len() int {
	return len(g.g.Image)
}

// Image composites the frame onto the previous ones, honoring the disposal of the previous frame.
func (g *gifImages) Image(i int) (image.Image, error) {
	if i == 0 || g.img == nil {
		g.img = image.NewRGBA(g.bounds())
	} else if i-1 < len(g.g.Disposal) && g.g.Disposal[i-1] == gif.DisposalBackground {
		draw.Draw(g.img, g.g.Image[i-1].Bounds(), image.Transparent, image.Point{}, draw.Src)
	}
	frame := g.g.Image[i]
	draw.Draw(g.img, frame.Bounds(), frame, frame.Bounds().Min, draw.Over)

	img := image.NewRGBA(g.img.Bounds())
	copy(img.Pix, g.img.Pix)
	return img, nil
}

func (g *gifImages) bounds() image.Rectangle {
	if 0 < g.g.Config.Width && 0 < g.g.Config.Height {
		return image.Rect(0, 0, g.g.Config.Width, g.g.Config.Height)
	}
	return g.g.Image[0].Bounds()
}

// OpenGIF decodes an animated GIF and plays its frames in order.
func OpenGIF(ctx context.Context, r io.Reader, w, h int, opts *Options) (*Sequence, error) {
	g, err := gif.DecodeAll(r)
	if err != nil {
		return nil, err
	}
	canvas.Logger().Info("gif opened", "frames", len(g.Image))
	return NewSequence(ctx, &gifImages{g: g}, w, h, opts)
}

////////////////////////////////////////////////////////////////

type fileImages []string

func (f fileImages) Len() int {
	return len(f)
}

func (f fileImages) Image(i int) (image.Image, error) {
	file, err := os.Open(f[i])
	if err != nil {
		return nil, err
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", f[i], err)
	}
	return img, nil
}

// OpenFiles plays the image files matching a glob pattern in lexical order.
func OpenFiles(ctx context.Context, pattern string, w, h int, opts *Options) (*Sequence, error) {
	filenames, err := filepath.Glob(pattern)
	if err != nil {
		return nil, err
	} else if len(filenames) == 0 {
		return nil, fmt.Errorf("no files match %s: %w", pattern, canvas.ErrInvalidArgument)
	}
	sort.Strings(filenames)
	canvas.Logger().Info("image sequence opened", "pattern", pattern, "files", len(filenames))
	return NewSequence(ctx, fileImages(filenames), w, h, opts)
}
