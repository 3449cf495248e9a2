package sketch

import (
	"context"
	"fmt"
	"time"

	"github.com/colormotor/canvas"
)

// Config configures a Runner.
type Config struct {
	Width, Height int     // initial canvas size
	FrameRate     float64 // initial frames per second, zero means as fast as possible
	Frames        int     // number of frames to draw, zero means until cancelled
}

// DefaultConfig is the default configuration.
var DefaultConfig = Config{
	Width:     512,
	Height:    512,
	FrameRate: 60.0,
}

// Runner drives a sketch frame by frame.
type Runner struct {
	cfg  Config
	keys chan rune

	// OnFrame is called after every drawn frame, before the frame count advances.
	OnFrame func(*Context) error
}

// NewRunner returns a runner for the given configuration.
func NewRunner(cfg Config) *Runner {
	return &Runner{
		cfg:  cfg,
		keys: make(chan rune, 16),
	}
}

// PressKey queues a key press for delivery before the next frame. It is safe for concurrent use and never blocks; keys are dropped when the queue is full.
func (r *Runner) PressKey(key rune) {
	select {
	case r.keys <- key:
	default:
		canvas.Logger().Warn("key press dropped", "key", string(key))
	}
}

// Run calls Setup once and then Draw for every frame until the configured number of frames is drawn, the sketch returns an error, or ctx is cancelled. The transformation is reset to the identity before every frame. It returns the sketch context so that the last frame can be exported.
func (r *Runner) Run(ctx context.Context, s Drawer) (*Context, error) {
	c, err := canvas.New(r.cfg.Width, r.cfg.Height)
	if err != nil {
		return nil, err
	}
	sc := &Context{
		Canvas: c,
	}
	if err := sc.SetFrameRate(r.cfg.FrameRate); err != nil {
		return nil, err
	}

	if setuper, ok := s.(Setuper); ok {
		if err := setuper.Setup(sc); err != nil {
			return sc, fmt.Errorf("setup: %w", err)
		}
	}
	canvas.Logger().Info("sketch started", "width", sc.Width(), "height", sc.Height(), "fps", sc.frameRate)

	var ticker *time.Ticker
	defer func() {
		if ticker != nil {
			ticker.Stop()
		}
	}()
	for r.cfg.Frames <= 0 || sc.frameCount < r.cfg.Frames {
		if sc.rateChanged {
			if ticker != nil {
				ticker.Stop()
				ticker = nil
			}
			if 0.0 < sc.frameRate {
				ticker = time.NewTicker(time.Duration(float64(time.Second) / sc.frameRate))
			}
			sc.rateChanged = false
		}

		if err := ctx.Err(); err != nil {
			return sc, err
		} else if ticker != nil && 0 < sc.frameCount {
			select {
			case <-ctx.Done():
				return sc, ctx.Err()
			case <-ticker.C:
			}
		}

		if err := r.deliverKeys(sc, s); err != nil {
			return sc, err
		}
		sc.ResetMatrix()
		if err := s.Draw(sc); err != nil {
			return sc, fmt.Errorf("frame %d: %w", sc.frameCount, err)
		}
		if r.OnFrame != nil {
			if err := r.OnFrame(sc); err != nil {
				return sc, err
			}
		}
		sc.frameCount++
	}
	canvas.Logger().Info("sketch finished", "frames", sc.frameCount)
	return sc, nil
}

func (r *Runner) deliverKeys(sc *Context, s Drawer) error {
	for {
		select {
		case key := <-r.keys:
			presser, ok := s.(KeyPresser)
			if !ok {
				continue
			}
			if err := presser.KeyPressed(sc, key); err != nil {
				return fmt.Errorf("key %q: %w", key, err)
			}
		default:
			return nil
		}
	}
}
