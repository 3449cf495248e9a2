package svg

import (
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/colormotor/canvas"
	"github.com/tdewolff/minify/v2"
	minifySVG "github.com/tdewolff/minify/v2/svg"
)

// Options are the SVG output options.
type Options struct {
	Compression int  // gzip compression level, zero disables compression
	Minify      bool // minify the document
}

// DefaultOptions are the default options.
var DefaultOptions = Options{}

// SVG is a scalable vector graphics renderer.
type SVG struct {
	w             io.Writer
	width, height float64

	closers []io.Closer // flushed in order on Close
	err     error
}

// New returns a scalable vector graphics (SVG) renderer. The view box spans width by height canvas units.
func New(w io.Writer, width, height float64, opts *Options) *SVG {
	options := DefaultOptions
	if opts != nil {
		options = *opts
	}

	r := &SVG{
		width:  width,
		height: height,
	}
	if options.Compression != 0 {
		if options.Compression < gzip.HuffmanOnly || gzip.BestCompression < options.Compression {
			options.Compression = -1
		}
		gz, _ := gzip.NewWriterLevel(w, options.Compression)
		r.closers = append(r.closers, gz)
		w = gz
	}
	if options.Minify {
		m := minify.New()
		m.AddFunc("image/svg+xml", minifySVG.Minify)
		mw := m.Writer("image/svg+xml", w)
		r.closers = append(r.closers, mw)
		w = mw
	}
	r.w = w

	fmt.Fprintf(r.w, `<svg version="1.1" width="%v" height="%v" viewBox="0 0 %v %v" xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink">`, dec(width), dec(height), dec(width), dec(height))
	return r
}

// Close finishes and closes the SVG, it does not close the underlying writer.
func (r *SVG) Close() error {
	_, err := fmt.Fprintf(r.w, "</svg>")
	for i := len(r.closers) - 1; 0 <= i; i-- {
		if cerr := r.closers[i].Close(); err == nil {
			err = cerr
		}
	}
	if r.err != nil {
		return r.err
	}
	return err
}

// Size returns the size of the view box in canvas units.
func (r *SVG) Size() (float64, float64) {
	return r.width, r.height
}

// RenderBackground covers the view box with a rectangle of the given color.
func (r *SVG) RenderBackground(col canvas.Color) {
	fmt.Fprintf(r.w, `<rect width="%v" height="%v" fill="%v`, dec(r.width), dec(r.height), col.Hex())
	if !col.Opaque() {
		fmt.Fprintf(r.w, `" fill-opacity="%v`, dec(col.A))
	}
	fmt.Fprintf(r.w, `"/>`)
}

// RenderPath renders a path in canvas coordinates with the given style. Strokes use round caps and joins.
func (r *SVG) RenderPath(path *canvas.Path, style canvas.Style) {
	fmt.Fprintf(r.w, `<path d="%s`, pathData(path))
	if style.HasFill() {
		fmt.Fprintf(r.w, `" fill="%v`, style.Fill.Hex())
		if !style.Fill.Opaque() {
			fmt.Fprintf(r.w, `" fill-opacity="%v`, dec(style.Fill.A))
		}
	} else {
		fmt.Fprintf(r.w, `" fill="none`)
	}
	if style.HasStroke() {
		fmt.Fprintf(r.w, `" stroke="%v`, style.Stroke.Hex())
		if !style.Stroke.Opaque() {
			fmt.Fprintf(r.w, `" stroke-opacity="%v`, dec(style.Stroke.A))
		}
		fmt.Fprintf(r.w, `" stroke-width="%v" stroke-linecap="round" stroke-linejoin="round`, dec(style.StrokeWidth))
	}
	fmt.Fprintf(r.w, `"/>`)
}

// RenderImage renders an image as an embedded PNG using a transformation matrix from image pixels to canvas units.
func (r *SVG) RenderImage(img image.Image, m canvas.Matrix) {
	size := img.Bounds().Size()
	origin := img.Bounds().Min
	m = m.Translate(float64(origin.X), float64(origin.Y))
	fmt.Fprintf(r.w, `<image transform="matrix(%v %v %v %v %v %v)" width="%d" height="%d" xlink:href="data:image/png;base64,`,
		dec(m[0][0]), dec(m[1][0]), dec(m[0][1]), dec(m[1][1]), dec(m[0][2]), dec(m[1][2]), size.X, size.Y)

	encoder := base64.NewEncoder(base64.StdEncoding, r.w)
	if err := png.Encode(encoder, img); err != nil && r.err == nil {
		r.err = err
	}
	if err := encoder.Close(); err != nil && r.err == nil {
		r.err = err
	}
	fmt.Fprintf(r.w, `"/>`)
}
