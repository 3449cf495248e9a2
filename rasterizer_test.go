package canvas

import (
	"image"
	"image/color"
	"testing"

	"github.com/tdewolff/test"
)

func TestRasterizerFill(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := NewRasterizer(img, 2.0)
	w, h := r.Size()
	test.Float(t, w, 10.0)
	test.Float(t, h, 10.0)

	style := DefaultStyle
	style.NoStroke = true
	style.Fill = Red
	r.RenderPath(MustParseSVGPath("M2 2L8 2L8 8"), style) // implicitly closed

	test.T(t, img.RGBAAt(13, 7), color.RGBA{255, 0, 0, 255})
	test.T(t, img.RGBAAt(7, 13), color.RGBA{0, 0, 0, 0})
	test.T(t, img.RGBAAt(1, 1), color.RGBA{0, 0, 0, 0})
}

func TestRasterizerStroke(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := NewRasterizer(img, 1.0)
	r.RenderBackground(White)

	style := DefaultStyle
	style.NoFill = true
	style.StrokeWidth = 4.0
	r.RenderPath(MustParseSVGPath("M4 10L16 10"), style)

	test.T(t, img.RGBAAt(10, 10), color.RGBA{0, 0, 0, 255})
	test.T(t, img.RGBAAt(10, 8), color.RGBA{0, 0, 0, 255})
	test.T(t, img.RGBAAt(10, 3), color.RGBA{255, 255, 255, 255})
	test.T(t, img.RGBAAt(0, 10), color.RGBA{255, 255, 255, 255})
}

func TestRasterizerStrokeJoins(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 30, 30))
	r := NewRasterizer(img, 1.0)

	style := DefaultStyle
	style.NoFill = true
	style.StrokeWidth = 6.0
	// overlapping segments of a sharp turn must not cancel out
	r.RenderPath(MustParseSVGPath("M5 15L25 15L5 16"), style)
	test.T(t, img.RGBAAt(20, 15), color.RGBA{0, 0, 0, 255})
	test.T(t, img.RGBAAt(25, 15), color.RGBA{0, 0, 0, 255})
}

func TestRasterizerStrokeClosed(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := NewRasterizer(img, 1.0)

	style := DefaultStyle
	style.NoFill = true
	style.StrokeWidth = 2.0
	r.RenderPath(MustParseSVGPath("M5 5L15 5L15 15L5 15z"), style)
	test.T(t, img.RGBAAt(10, 5), color.RGBA{0, 0, 0, 255})
	test.T(t, img.RGBAAt(5, 5), color.RGBA{0, 0, 0, 255})
	test.T(t, img.RGBAAt(10, 10), color.RGBA{0, 0, 0, 0})

	// the outer corner is rounded
	a := img.RGBAAt(4, 4).A
	test.That(t, 0 < a && a < 255, "round join coverage", a)
}

func TestRasterizerStrokeTranslucent(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	r := NewRasterizer(img, 1.0)
	r.RenderBackground(White)

	style := DefaultStyle
	style.NoFill = true
	style.StrokeWidth = 2.0
	style.Stroke = Color{R: 0.0, G: 0.0, B: 0.0, A: 0.5}
	r.RenderPath(MustParseSVGPath("M2 5L10 5L10 15L18 15"), style)

	// segments overlap at the inner side of each join, which is covered once
	test.T(t, img.RGBAAt(9, 5), img.RGBAAt(6, 5))
	test.T(t, img.RGBAAt(10, 14), img.RGBAAt(14, 15))
	test.That(t, img.RGBAAt(6, 5).R < 255, "stroke must be drawn")
}

func TestRasterizerOutside(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	r := NewRasterizer(img, 1.0)
	r.RenderPath(MustParseSVGPath("M20 20L30 20L30 30z"), DefaultStyle)
	test.T(t, img.RGBAAt(9, 9), color.RGBA{0, 0, 0, 0})

	// partially outside
	style := DefaultStyle
	style.NoStroke = true
	r.RenderPath(MustParseSVGPath("M-10 -10L5 -10L5 5L-10 5z"), style)
	test.T(t, img.RGBAAt(2, 2), color.RGBA{255, 255, 255, 255})
	test.T(t, img.RGBAAt(7, 7), color.RGBA{0, 0, 0, 0})
}

func TestRasterizerImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			src.SetRGBA(x, y, color.RGBA{0, 255, 0, 255})
		}
	}

	img := image.NewRGBA(image.Rect(0, 0, 10, 10))
	r := NewRasterizer(img, 1.0)
	r.RenderImage(src, Identity.Translate(3, 4))
	test.T(t, img.RGBAAt(3, 4), color.RGBA{0, 255, 0, 255})
	test.T(t, img.RGBAAt(4, 5), color.RGBA{0, 255, 0, 255})
	test.T(t, img.RGBAAt(5, 4), color.RGBA{0, 0, 0, 0})

	r.RenderImage(src, Identity.Scale(2, 2))
	test.T(t, img.RGBAAt(1, 1), color.RGBA{0, 255, 0, 255})
}
