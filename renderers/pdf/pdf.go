package pdf

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"io"

	"github.com/colormotor/canvas"
	"github.com/jung-kurt/gofpdf"
)

// Options are the PDF output options.
type Options struct {
	Compress bool
	Title    string
	Author   string
}

// DefaultOptions are the default options.
var DefaultOptions = Options{
	Compress: true,
}

// PDF is a portable document format renderer. One canvas unit maps to one point.
type PDF struct {
	w             io.Writer
	pdf           *gofpdf.Fpdf
	width, height float64
	opts          *Options
	images        int
}

// New returns a portable document format (PDF) renderer with a single page of width by height canvas units.
func New(w io.Writer, width, height float64, opts *Options) *PDF {
	if opts == nil {
		defaultOptions := DefaultOptions
		opts = &defaultOptions
	}

	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		OrientationStr: "P",
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: width, Ht: height},
	})
	pdf.SetMargins(0.0, 0.0, 0.0)
	pdf.SetAutoPageBreak(false, 0.0)
	pdf.SetCompression(opts.Compress)
	pdf.SetCreator("github.com/colormotor/canvas", false)
	if opts.Title != "" {
		pdf.SetTitle(opts.Title, true)
	}
	if opts.Author != "" {
		pdf.SetAuthor(opts.Author, true)
	}
	pdf.AddPage()
	pdf.SetLineCapStyle("round")
	pdf.SetLineJoinStyle("round")
	return &PDF{
		w:      w,
		pdf:    pdf,
		width:  width,
		height: height,
		opts:   opts,
	}
}

// Close finishes the PDF and writes it out, it does not close the underlying writer.
func (r *PDF) Close() error {
	return r.pdf.Output(r.w)
}

// Size returns the size of the page in canvas units.
func (r *PDF) Size() (float64, float64) {
	return r.width, r.height
}

func (r *PDF) setFill(col canvas.Color) {
	red, green, blue, _ := col.Bytes()
	r.pdf.SetFillColor(int(red), int(green), int(blue))
	r.pdf.SetAlpha(col.A, "Normal")
}

func (r *PDF) setStroke(col canvas.Color, width float64) {
	red, green, blue, _ := col.Bytes()
	r.pdf.SetDrawColor(int(red), int(green), int(blue))
	r.pdf.SetAlpha(col.A, "Normal")
	r.pdf.SetLineWidth(width)
}

// path writes the path operators, they are consumed by the next DrawPath.
func (r *PDF) path(path *canvas.Path) {
	path.Iterate(func(cmd canvas.PathCmd, pt canvas.Point) {
		switch cmd {
		case canvas.MoveToCmd:
			r.pdf.MoveTo(pt.X, pt.Y)
		case canvas.LineToCmd:
			r.pdf.LineTo(pt.X, pt.Y)
		case canvas.CloseCmd:
			r.pdf.ClosePath()
		}
	})
}

// RenderBackground covers the page with a rectangle of the given color.
func (r *PDF) RenderBackground(col canvas.Color) {
	r.setFill(col)
	r.pdf.Rect(0.0, 0.0, r.width, r.height, "F")
}

// RenderPath renders a path in canvas coordinates with the given style. Fills use the non-zero winding rule, strokes use round caps and joins.
func (r *PDF) RenderPath(path *canvas.Path, style canvas.Style) {
	if path.Empty() {
		return
	}

	differentAlpha := style.HasFill() && style.HasStroke() && style.Fill.A != style.Stroke.A
	if style.HasFill() && !style.HasStroke() {
		r.setFill(style.Fill)
		r.path(path)
		r.pdf.DrawPath("F")
	} else if !style.HasFill() && style.HasStroke() {
		r.setStroke(style.Stroke, style.StrokeWidth)
		r.path(path)
		r.pdf.DrawPath("D")
	} else if style.HasFill() && style.HasStroke() {
		if !differentAlpha {
			r.setFill(style.Fill)
			r.setStroke(style.Stroke, style.StrokeWidth)
			r.path(path)
			r.pdf.DrawPath("FD")
		} else {
			r.setFill(style.Fill)
			r.path(path)
			r.pdf.DrawPath("F")

			r.setStroke(style.Stroke, style.StrokeWidth)
			r.path(path)
			r.pdf.DrawPath("D")
		}
	}
}

// RenderImage renders an image as an embedded PNG using a transformation matrix from image pixels to canvas units. Rotations and skews are not supported, such images are drawn into their bounding box.
func (r *PDF) RenderImage(img image.Image, m canvas.Matrix) {
	if !m.IsAxisAligned() {
		canvas.Logger().Warn("pdf: image transformation not axis aligned, drawing into its bounds")
	}

	buf := &bytes.Buffer{}
	if err := png.Encode(buf, img); err != nil {
		canvas.Logger().Warn("pdf: image not encoded", "err", err)
		return
	}

	r.images++
	name := fmt.Sprintf("img%d", r.images)
	opts := gofpdf.ImageOptions{
		ImageType:             "PNG",
		AllowNegativePosition: true,
	}
	r.pdf.RegisterImageOptionsReader(name, opts, buf)

	size := img.Bounds().Size()
	bounds := canvas.Rect{X: 0.0, Y: 0.0, W: float64(size.X), H: float64(size.Y)}.Transform(m)
	r.pdf.SetAlpha(1.0, "Normal")
	r.pdf.ImageOptions(name, bounds.X, bounds.Y, bounds.W, bounds.H, false, opts, 0, "")
}
