package pdf

import (
	"io"

	"github.com/colormotor/canvas"
)

// Writer writes the current frame of the canvas as a single page PDF using the default options.
func Writer(w io.Writer, c *canvas.Canvas) error {
	return WriterWithOptions(nil)(w, c)
}

// WriterWithOptions returns a writer that writes the current frame of the canvas as a single page PDF.
func WriterWithOptions(opts *Options) canvas.Writer {
	return func(w io.Writer, c *canvas.Canvas) error {
		width, height := c.Size()
		pdf := New(w, width, height, opts)
		c.Render(pdf)
		return pdf.Close()
	}
}
