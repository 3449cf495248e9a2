package renderers

import (
	"fmt"
	"image/gif"
	"image/jpeg"
	"path/filepath"
	"strings"

	"github.com/colormotor/canvas"
	"github.com/colormotor/canvas/renderers/pdf"
	"github.com/colormotor/canvas/renderers/rasterizer"
	"github.com/colormotor/canvas/renderers/svg"
	"golang.org/x/image/tiff"
)

// Resolution is the number of pixels per canvas unit used by raster formats.
type Resolution float64

// Options are the options for all output formats.
type Options struct {
	Resolution
	JPG  *jpeg.Options
	GIF  *gif.Options
	TIFF *tiff.Options
	SVG  *svg.Options
	PDF  *pdf.Options
}

// Write writes the current frame of the canvas to a file, the format is chosen by the file extension. Options may be given as a Resolution or as any of the format specific option types.
func Write(filename string, c *canvas.Canvas, opts ...interface{}) error {
	options := Options{
		Resolution: 1.0,
	}
	for _, opt := range opts {
		switch o := opt.(type) {
		case Resolution:
			options.Resolution = o
		case *jpeg.Options:
			options.JPG = o
		case *gif.Options:
			options.GIF = o
		case *tiff.Options:
			options.TIFF = o
		case *svg.Options:
			options.SVG = o
		case *pdf.Options:
			options.PDF = o
		default:
			return fmt.Errorf("unknown option %T(%v): %w", opt, opt, canvas.ErrInvalidArgument)
		}
	}

	resolution := float64(options.Resolution)
	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".png":
		return c.WriteFile(filename, rasterizer.PNGWriter(resolution))
	case ".jpg", ".jpeg":
		return c.WriteFile(filename, rasterizer.JPGWriter(resolution, options.JPG))
	case ".gif":
		return c.WriteFile(filename, rasterizer.GIFWriter(resolution, options.GIF))
	case ".tif", ".tiff":
		return c.WriteFile(filename, rasterizer.TIFFWriter(resolution, options.TIFF))
	case ".bmp":
		return c.WriteFile(filename, rasterizer.BMPWriter(resolution))
	case ".svg", ".svgz":
		svgOpts := svg.DefaultOptions
		if options.SVG != nil {
			svgOpts = *options.SVG
		}
		if ext == ".svgz" && svgOpts.Compression == 0 {
			svgOpts.Compression = -1
		}
		return c.WriteFile(filename, svg.WriterWithOptions(&svgOpts))
	case ".pdf":
		return c.WriteFile(filename, pdf.WriterWithOptions(options.PDF))
	default:
		return fmt.Errorf("unknown file extension %q: %w", ext, canvas.ErrInvalidArgument)
	}
}
