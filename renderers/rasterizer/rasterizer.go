package rasterizer

import (
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"math"

	"github.com/colormotor/canvas"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// PNGWriter writes the canvas as a PNG file.
func PNGWriter(resolution float64) canvas.Writer {
	return func(w io.Writer, c *canvas.Canvas) error {
		img, err := Draw(c, resolution)
		if err != nil {
			return err
		}
		return png.Encode(w, img)
	}
}

// JPGWriter writes the canvas as a JPG file.
func JPGWriter(resolution float64, opts *jpeg.Options) canvas.Writer {
	return func(w io.Writer, c *canvas.Canvas) error {
		img, err := Draw(c, resolution)
		if err != nil {
			return err
		}
		return jpeg.Encode(w, img, opts)
	}
}

// GIFWriter writes the canvas as a GIF file.
func GIFWriter(resolution float64, opts *gif.Options) canvas.Writer {
	return func(w io.Writer, c *canvas.Canvas) error {
		img, err := Draw(c, resolution)
		if err != nil {
			return err
		}
		return gif.Encode(w, img, opts)
	}
}

// TIFFWriter writes the canvas as a TIFF file.
func TIFFWriter(resolution float64, opts *tiff.Options) canvas.Writer {
	return func(w io.Writer, c *canvas.Canvas) error {
		img, err := Draw(c, resolution)
		if err != nil {
			return err
		}
		return tiff.Encode(w, img, opts)
	}
}

// BMPWriter writes the canvas as a BMP file.
func BMPWriter(resolution float64) canvas.Writer {
	return func(w io.Writer, c *canvas.Canvas) error {
		img, err := Draw(c, resolution)
		if err != nil {
			return err
		}
		return bmp.Encode(w, img)
	}
}

// FrameWriter writes the frame buffer of the canvas as a PNG file, without redrawing the current frame.
func FrameWriter(w io.Writer, c *canvas.Canvas) error {
	return png.Encode(w, c.Image())
}

// Draw redraws the current frame of the canvas on a new image with the given resolution in pixels per canvas unit. Higher resolution will result in larger images.
func Draw(c *canvas.Canvas, resolution float64) (*image.RGBA, error) {
	if !(0.0 < resolution) || math.IsInf(resolution, 0) {
		return nil, fmt.Errorf("resolution must be positive, got %v: %w", resolution, canvas.ErrInvalidArgument)
	}
	width, height := c.Size()
	img := image.NewRGBA(image.Rect(0, 0, int(width*resolution+0.5), int(height*resolution+0.5)))
	c.Render(canvas.NewRasterizer(img, resolution))
	canvas.Logger().Debug("frame rasterized", "width", img.Bounds().Dx(), "height", img.Bounds().Dy())
	return img, nil
}
