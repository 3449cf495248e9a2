package canvas

import (
	"fmt"
	"image"
	"io"
	"os"
)

// Renderer is an interface that renderers implement. It defines the size of the target (in canvas units) and functions to draw the committed layers of a canvas.
type Renderer interface {
	Size() (float64, float64)
	RenderBackground(Color)
	RenderPath(*Path, Style)
	RenderImage(image.Image, Matrix)
}

// Writer can write a canvas to a writer.
type Writer func(w io.Writer, c *Canvas) error

// WriteFile writes the canvas to a file named by filename using the given writer.
func (c *Canvas) WriteFile(filename string, w Writer) error {
	f, err := os.Create(filename)
	if err != nil {
		return err
	}

	if err = w(f, c); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", filename, err)
	}
	if err = f.Close(); err != nil {
		return err
	}
	Logger().Info("canvas written", "file", filename, "shapes", len(c.layers))
	return nil
}
