package canvas

import (
	"image"
	"math"

	"github.com/srwiley/rasterx"
	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"
)

// Rasterizer is a renderer that draws anti-aliased geometry into a pixel image. Resolution is the number of pixels per canvas unit.
type Rasterizer struct {
	draw.Image
	resolution float64
}

// NewRasterizer returns a renderer that draws onto img at the given resolution.
func NewRasterizer(img draw.Image, resolution float64) *Rasterizer {
	return &Rasterizer{
		Image:      img,
		resolution: resolution,
	}
}

// Size returns the size of the target in canvas units.
func (r *Rasterizer) Size() (float64, float64) {
	size := r.Bounds().Size()
	return float64(size.X) / r.resolution, float64(size.Y) / r.resolution
}

// RenderBackground replaces every pixel of the target by col.
func (r *Rasterizer) RenderBackground(col Color) {
	draw.Draw(r.Image, r.Bounds(), image.NewUniform(col), image.Point{}, draw.Src)
}

// RenderPath fills and strokes the path. Fills implicitly close every subpath and use the non-zero winding rule. Strokes are expanded by rasterx with round joins and caps.
func (r *Rasterizer) RenderPath(path *Path, style Style) {
	if style.HasFill() {
		bounds := path.Bounds()
		if rect, ok := r.pixelRect(bounds); ok {
			ras := vector.NewRasterizer(rect.Dx(), rect.Dy())
			for _, sub := range path.Subpaths() {
				coords := sub.Coords()
				if len(coords) < 3 {
					continue
				}
				r.polygon(ras, rect.Min, coords)
			}
			ras.Draw(r.Image, rect, image.NewUniform(style.Fill), rect.Min)
		}
	}
	if style.HasStroke() {
		r.stroke(path, style)
	}
}

// RenderImage draws img transformed by m, which maps image pixels to canvas units.
func (r *Rasterizer) RenderImage(img image.Image, m Matrix) {
	m = Identity.Scale(r.resolution, r.resolution).Mul(m)
	if m.IsTranslation() {
		x, y := m.Pos()
		if Equal(x, math.Round(x)) && Equal(y, math.Round(y)) {
			dst := img.Bounds().Add(image.Point{X: int(math.Round(x)), Y: int(math.Round(y))})
			draw.Draw(r.Image, dst, img, img.Bounds().Min, draw.Over)
			return
		}
	}
	aff3 := f64.Aff3{m[0][0], m[0][1], m[0][2], m[1][0], m[1][1], m[1][2]}
	draw.CatmullRom.Transform(r.Image, aff3, img, img.Bounds(), draw.Over, nil)
}

// pixelRect returns the pixel rectangle covering bounds, clipped to the target.
func (r *Rasterizer) pixelRect(bounds Rect) (image.Rectangle, bool) {
	x0 := int(math.Floor(bounds.X * r.resolution))
	y0 := int(math.Floor(bounds.Y * r.resolution))
	x1 := int(math.Ceil((bounds.X+bounds.W)*r.resolution)) + 1
	y1 := int(math.Ceil((bounds.Y+bounds.H)*r.resolution)) + 1
	rect := image.Rect(x0, y0, x1, y1).Intersect(r.Bounds())
	return rect, !rect.Empty()
}

func (r *Rasterizer) polygon(ras *vector.Rasterizer, origin image.Point, coords []Point) {
	ox, oy := float64(origin.X), float64(origin.Y)
	for i, coord := range coords {
		x := float32(coord.X*r.resolution - ox)
		y := float32(coord.Y*r.resolution - oy)
		if i == 0 {
			ras.MoveTo(x, y)
		} else {
			ras.LineTo(x, y)
		}
	}
	ras.ClosePath()
}

// stroke expands every subpath with round caps and joins and composites the result over the target. Closed subpaths are joined at their start.
func (r *Rasterizer) stroke(path *Path, style Style) {
	bounds := r.Bounds()
	if bounds.Empty() {
		return
	}
	scanner := rasterx.NewScannerGV(bounds.Dx(), bounds.Dy(), r.Image, bounds)
	stroker := rasterx.NewStroker(bounds.Dx(), bounds.Dy(), scanner)
	stroker.SetColor(style.Stroke)
	width := fixed.Int26_6(style.StrokeWidth * r.resolution * 64.0)
	stroker.SetStroke(width, 0, rasterx.RoundCap, rasterx.RoundCap, rasterx.RoundGap, rasterx.Round)

	ox, oy := float64(bounds.Min.X), float64(bounds.Min.Y)
	for _, poly := range PolylineFromPath(path) {
		coords := poly.Coords()
		closed := poly.Closed()
		if closed {
			coords = coords[:len(coords)-1]
		}
		if len(coords) < 2 {
			continue
		}
		var prev fixed.Point26_6
		for i, coord := range coords {
			pt := rasterx.ToFixedP(coord.X*r.resolution-ox, coord.Y*r.resolution-oy)
			if i == 0 {
				stroker.Start(pt)
			} else if pt != prev {
				stroker.Line(pt)
			}
			prev = pt
		}
		stroker.Stop(closed)
	}
	stroker.Draw()
}
