package svg

import (
	"io"

	"github.com/colormotor/canvas"
)

// Writer writes the current frame of the canvas as an SVG document using the default options.
func Writer(w io.Writer, c *canvas.Canvas) error {
	return WriterWithOptions(nil)(w, c)
}

// WriterWithOptions returns a writer that writes the current frame of the canvas as an SVG document.
func WriterWithOptions(opts *Options) canvas.Writer {
	return func(w io.Writer, c *canvas.Canvas) error {
		width, height := c.Size()
		svg := New(w, width, height, opts)
		c.Render(svg)
		return svg.Close()
	}
}

// Save writes the current frame of the canvas to an SVG file.
func Save(filename string, c *canvas.Canvas) error {
	return c.WriteFile(filename, Writer)
}
