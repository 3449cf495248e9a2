// Package sketch runs frame-driven drawing programs on a canvas. A sketch implements Drawer and optionally Setuper and KeyPresser; the Runner calls them synchronously from a single goroutine.
package sketch

import (
	"fmt"

	"github.com/colormotor/canvas"
	"github.com/colormotor/canvas/renderers"
	"github.com/colormotor/canvas/renderers/svg"
)

// Setuper is implemented by sketches that prepare state once before the first frame.
type Setuper interface {
	Setup(*Context) error
}

// Drawer draws one frame.
type Drawer interface {
	Draw(*Context) error
}

// KeyPresser is implemented by sketches that handle key presses. Keys are delivered between frames.
type KeyPresser interface {
	KeyPressed(ctx *Context, key rune) error
}

// Context is the drawing state passed to a sketch. It embeds the canvas so that drawing calls can be made on it directly.
type Context struct {
	*canvas.Canvas

	frameCount  int
	frameRate   float64
	rateChanged bool
}

// FrameCount returns the index of the frame being drawn, starting at zero.
func (ctx *Context) FrameCount() int {
	return ctx.frameCount
}

// FrameRate returns the target number of frames per second, zero means as fast as possible.
func (ctx *Context) FrameRate() float64 {
	return ctx.frameRate
}

// SetFrameRate sets the target number of frames per second, zero means as fast as possible. It takes effect from the next frame.
func (ctx *Context) SetFrameRate(fps float64) error {
	if fps < 0.0 {
		return fmt.Errorf("frame rate must not be negative, got %v: %w", fps, canvas.ErrInvalidArgument)
	}
	ctx.frameRate = fps
	ctx.rateChanged = true
	return nil
}

// CreateCanvas replaces the canvas by a new one of width by height pixels. It is usually called from Setup.
func (ctx *Context) CreateCanvas(width, height int) error {
	c, err := canvas.New(width, height)
	if err != nil {
		return err
	}
	ctx.Canvas = c
	return nil
}

// SaveSVG writes the current frame to an SVG file.
func (ctx *Context) SaveSVG(filename string) error {
	return svg.Save(filename, ctx.Canvas)
}

// Save writes the current frame to a file whose format is chosen by its extension, see renderers.Write for the options.
func (ctx *Context) Save(filename string, opts ...interface{}) error {
	return renderers.Write(filename, ctx.Canvas, opts...)
}
