package canvas

import (
	"errors"
	"image"
	"image/color"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestCanvasNew(t *testing.T) {
	_, err := New(0, 10)
	test.That(t, errors.Is(err, ErrInvalidArgument))
	_, err = New(10, -1)
	test.That(t, errors.Is(err, ErrInvalidArgument))

	c, err := New(40, 30)
	test.Error(t, err)
	test.T(t, c.Width(), 40)
	test.T(t, c.Height(), 30)
	test.T(t, c.Image().Bounds(), image.Rect(0, 0, 40, 30))
	test.Float(t, c.ColorScale(), 255.0)
	test.Float(t, c.Tension(), 0.5)
	test.That(t, c.Empty())
}

func TestCanvasShapeLifecycle(t *testing.T) {
	c, _ := New(100, 100)
	test.That(t, errors.Is(c.EndShape(false), ErrInvalidState))
	test.That(t, errors.Is(c.Vertex(0, 0), ErrInvalidState))
	test.That(t, errors.Is(c.CurveVertex(0, 0), ErrInvalidState))

	test.Error(t, c.BeginShape())
	test.That(t, c.ShapeOpen())
	test.That(t, errors.Is(c.BeginShape(), ErrInvalidState))
	test.That(t, errors.Is(c.Circle(0, 0, 10, 12), ErrInvalidState))
	test.That(t, errors.Is(c.Shape(Rectangle(5, 5)), ErrInvalidState))

	test.Error(t, c.Vertex(10, 10))
	test.Error(t, c.Vertex(20, 10))
	test.Error(t, c.EndShape(false))
	test.That(t, !c.ShapeOpen())
	test.T(t, len(c.Shapes()), 1)
	test.T(t, c.Shapes()[0].Path, MustParseSVGPath("M10 10L20 10"))
}

func TestCanvasVerticesAreBaked(t *testing.T) {
	defer setEpsilon(1e-9)()

	c, _ := New(100, 100)
	c.Translate(50, 50)
	test.Error(t, c.BeginShape())
	test.Error(t, c.Vertex(0, 0))
	c.Rotate(math.Pi / 2.0)
	test.Error(t, c.Vertex(10, 0))
	c.ResetMatrix()
	test.Error(t, c.Vertex(10, 0))
	test.Error(t, c.EndShape(true))

	shapes := c.Shapes()
	test.T(t, len(shapes), 1)
	test.That(t, shapes[0].Path.Equals(MustParseSVGPath("M50 50L50 60L10 0z")), shapes[0].Path)
}

func TestCanvasCircle(t *testing.T) {
	defer setEpsilon(1e-9)()

	c, _ := New(100, 100)
	test.That(t, errors.Is(c.Circle(50, 50, 10, 2), ErrInvalidArgument))
	test.That(t, !c.ShapeOpen())

	c.Translate(50, 50)
	test.Error(t, c.Circle(0, 0, 20, 12))
	shape := c.Shapes()[0]
	test.That(t, shape.Path.Closed())
	coords := shape.Path.Coords()
	test.T(t, len(coords), 12)
	for _, coord := range coords {
		test.Float(t, coord.Sub(Point{50, 50}).Length(), 20.0)
	}
}

func TestCanvasEllipseStar(t *testing.T) {
	defer setEpsilon(1e-6)()

	c, _ := New(100, 100)
	c.Translate(10, 0)
	test.Error(t, c.Ellipse(40, 50, 20, 10, 4))
	test.Error(t, c.Star(40, 50, 5, 20, 8))
	test.That(t, errors.Is(c.Star(40, 50, 2, 20, 8), ErrInvalidArgument))
	test.That(t, errors.Is(c.Ellipse(40, 50, 20, 10, 2), ErrInvalidArgument))

	shapes := c.Shapes()
	test.T(t, len(shapes), 2)
	test.That(t, shapes[0].Path.Equals(MustParseSVGPath("M70 50L50 60L30 50L50 40z")), shapes[0].Path)

	star := shapes[1].Path
	test.That(t, star.Closed())
	coords := star.Coords()
	test.T(t, len(coords), 10)
	test.T(t, coords[0], Point{50, 30})
	for i, coord := range coords {
		r := 20.0
		if i%2 == 1 {
			r = 8.0
		}
		test.Float(t, coord.Sub(Point{50, 50}).Length(), r)
	}
}

func TestCanvasStyleCapture(t *testing.T) {
	c, _ := New(100, 100)
	test.Error(t, c.Fill(255, 0, 0))
	test.Error(t, c.Stroke(0, 0, 255, 128))
	test.Error(t, c.StrokeWeight(2.0))
	c.Scale(3.0, 3.0)
	test.Error(t, c.Rect(0, 0, 10, 10))

	test.Error(t, c.SetColorScale(1.0))
	test.Error(t, c.Fill(0.0, 1.0, 0.0))
	c.NoStroke()
	test.Error(t, c.Line(0, 0, 10, 10))

	shapes := c.Shapes()
	test.T(t, len(shapes), 2)
	test.That(t, shapes[0].Style.Fill.Equals(Red))
	test.That(t, shapes[0].Style.Stroke.Equals(Color{0.0, 0.0, 1.0, 128.0 / 255.0}))
	test.Float(t, shapes[0].Style.StrokeWidth, 6.0)
	test.That(t, shapes[0].Path.Equals(MustParseSVGPath("M0 0L30 0L30 30L0 30z")))
	test.That(t, shapes[1].Style.Fill.Equals(Lime))
	test.That(t, shapes[1].Style.NoStroke)

	test.That(t, errors.Is(c.StrokeWeight(-1.0), ErrInvalidArgument))
	test.That(t, errors.Is(c.SetColorScale(0.0), ErrInvalidArgument))
	test.That(t, errors.Is(c.SetTension(1.5), ErrInvalidArgument))
}

func TestCanvasBackground(t *testing.T) {
	c, _ := New(10, 10)
	test.Error(t, c.Rect(0, 0, 5, 5))
	test.Error(t, c.BeginShape())
	test.Error(t, c.Vertex(1, 1))

	test.Error(t, c.Background(0, 0, 255))
	test.T(t, len(c.Shapes()), 0)
	test.That(t, c.ShapeOpen(), "open shape survives background")
	test.T(t, c.Frame(), 1)
	test.T(t, c.Image().RGBAAt(5, 5), color.RGBA{0, 0, 255, 255})
	test.T(t, c.Image().RGBAAt(0, 0), color.RGBA{0, 0, 255, 255})

	test.That(t, errors.Is(c.Background(1, 2, 3, 4, 5), ErrInvalidArgument))
}

func TestCanvasShapeReplay(t *testing.T) {
	c, _ := New(100, 100)
	paths := []*Path{MustParseSVGPath("M0 0L10 0"), nil, MustParseSVGPath("M0 0L0 10z")}
	c.Translate(5, 5)
	test.Error(t, c.Shape(paths...))

	shapes := c.Shapes()
	test.T(t, len(shapes), 2)
	test.T(t, shapes[0].Path, MustParseSVGPath("M5 5L15 5"))
	test.T(t, shapes[1].Path, MustParseSVGPath("M5 5L5 15z"))
	test.T(t, paths[0], MustParseSVGPath("M0 0L10 0"))
}

func TestCanvasTensionAppliesToOpenShape(t *testing.T) {
	c, _ := New(100, 100)
	test.Error(t, c.BeginShape())
	for _, pt := range []Point{{10, 10}, {50, 90}, {90, 10}} {
		test.Error(t, c.CurveVertex(pt.X, pt.Y))
	}
	test.Error(t, c.SetTension(0.25))
	test.Error(t, c.EndShape(false))
	test.Float(t, c.Shapes()[0].Tension, 0.25)
}

func TestCanvasDrawsImmediately(t *testing.T) {
	c, _ := New(20, 20)
	test.Error(t, c.Background(255))
	c.NoStroke()
	test.Error(t, c.Fill(255, 0, 0))
	test.Error(t, c.Rect(5, 5, 10, 10))
	test.T(t, c.Image().RGBAAt(10, 10), color.RGBA{255, 0, 0, 255})
	test.T(t, c.Image().RGBAAt(2, 2), color.RGBA{255, 255, 255, 255})

	// later shapes paint over earlier ones
	test.Error(t, c.Fill(0, 0, 255))
	test.Error(t, c.Rect(8, 8, 4, 4))
	test.T(t, c.Image().RGBAAt(10, 10), color.RGBA{0, 0, 255, 255})
	test.T(t, c.Image().RGBAAt(6, 6), color.RGBA{255, 0, 0, 255})
}

type recorder struct {
	w, h   float64
	bg     []Color
	paths  []*Path
	styles []Style
	images int
}

func (r *recorder) Size() (float64, float64)        { return r.w, r.h }
func (r *recorder) RenderBackground(col Color)      { r.bg = append(r.bg, col) }
func (r *recorder) RenderImage(image.Image, Matrix) { r.images++ }
func (r *recorder) RenderPath(p *Path, style Style) {
	r.paths = append(r.paths, p)
	r.styles = append(r.styles, style)
}

func TestCanvasRender(t *testing.T) {
	c, _ := New(100, 50)
	test.Error(t, c.Background(0))
	test.Error(t, c.StrokeWeight(2.0))
	test.Error(t, c.Line(0, 0, 100, 50))
	c.DrawImage(image.NewRGBA(image.Rect(0, 0, 4, 4)), 10, 10)

	r := &recorder{w: 200, h: 100}
	c.Render(r)
	test.T(t, len(r.bg), 1)
	test.T(t, len(r.paths), 1)
	test.T(t, r.paths[0], MustParseSVGPath("M0 0L200 100"))
	test.Float(t, r.styles[0].StrokeWidth, 4.0)
	test.T(t, r.images, 1)
}
