package canvas

import (
	"errors"
	"math"
	"testing"

	"github.com/tdewolff/test"
)

func TestShapeBuilderStraight(t *testing.T) {
	b, err := NewShapeBuilder(0.5)
	test.Error(t, err)
	b.Vertex(Point{0, 0})
	b.Vertex(Point{10, 0})
	b.Vertex(Point{10, 10})
	test.T(t, b.Len(), 3)

	p, err := b.Resolve(false)
	test.Error(t, err)
	test.T(t, p, MustParseSVGPath("M0 0L10 0L10 10"))

	p, err = b.Resolve(true)
	test.Error(t, err)
	test.T(t, p, MustParseSVGPath("M0 0L10 0L10 10z"))
}

func TestShapeBuilderZeroValue(t *testing.T) {
	b := &ShapeBuilder{}
	test.Float(t, b.Tension(), 0.0)
	b.Vertex(Point{0, 0})
	b.Vertex(Point{5, 5})

	p, err := b.Resolve(false)
	test.Error(t, err)
	test.T(t, p, MustParseSVGPath("M0 0L5 5"))
}

func TestShapeBuilderCurves(t *testing.T) {
	b, _ := NewShapeBuilder(0.5)
	b.Vertex(Point{0, 0})
	b.CurveVertex(Point{10, 0})
	b.CurveVertex(Point{20, 10})
	b.CurveVertex(Point{30, 0})
	b.Vertex(Point{40, 0})

	p, err := b.Resolve(false)
	test.Error(t, err)
	test.That(t, 5 < len(p.Coords()))
	test.T(t, p.StartPos(), Point{0, 0})
	test.T(t, p.Pos(), Point{40, 0})
	test.That(t, containsPoint(p, Point{10, 0}))
	test.That(t, containsPoint(p, Point{20, 10}))
	test.That(t, containsPoint(p, Point{30, 0}))
	test.T(t, len(p.Subpaths()), 1)
}

func TestShapeBuilderPeriodic(t *testing.T) {
	b, _ := NewShapeBuilder(1.0)
	points := []Point{{0, 0}, {10, 0}, {10, 10}, {0, 10}}
	for _, pt := range points {
		b.CurveVertex(pt)
	}

	p, err := b.Resolve(true)
	test.Error(t, err)
	test.That(t, p.Closed())
	for _, pt := range points {
		test.That(t, containsPoint(p, pt), pt)
	}

	// the closed curve bulges outside the control polygon
	bounds := p.Bounds()
	test.That(t, bounds.X < 0.0 && 10.0 < bounds.X+bounds.W, bounds)
}

func TestShapeBuilderTension(t *testing.T) {
	_, err := NewShapeBuilder(2.0)
	test.That(t, errors.Is(err, ErrInvalidArgument))

	b, _ := NewShapeBuilder(1.0)
	for _, pt := range []Point{{0, 0}, {10, 10}, {20, 0}} {
		b.CurveVertex(pt)
	}
	test.That(t, errors.Is(b.SetTension(-1.0), ErrInvalidArgument))
	test.Error(t, b.SetTension(0.0))
	test.Float(t, b.Tension(), 0.0)

	p, err := b.Resolve(false)
	test.Error(t, err)
	for _, coord := range p.Coords() {
		// zero tension yields straight segments between control points
		test.That(t, Equal(coord.Y, 10.0-math.Abs(coord.X-10.0)), coord)
	}
	test.That(t, containsPoint(p, Point{10, 10}))
	test.T(t, p.Pos(), Point{20, 0})
}

func TestShapeBuilderSingleCurveVertex(t *testing.T) {
	b, _ := NewShapeBuilder(0.5)
	b.Vertex(Point{0, 0})
	b.CurveVertex(Point{10, 0})
	b.Vertex(Point{10, 10})

	p, err := b.Resolve(false)
	test.Error(t, err)
	test.T(t, p, MustParseSVGPath("M0 0L10 0L10 10"))
}

func TestVertexKind(t *testing.T) {
	test.String(t, StraightVertex.String(), "StraightVertex")
	test.String(t, CurveVertex.String(), "CurveVertex")
	test.String(t, VertexKind(5).String(), "VertexKind(5)")
}
