package canvas

import (
	"testing"

	"github.com/tdewolff/test"
)

func TestPathEmpty(t *testing.T) {
	p := &Path{}
	test.That(t, p.Empty())

	p.MoveTo(5, 2)
	test.That(t, p.Empty())

	p.LineTo(6, 2)
	test.That(t, !p.Empty())
}

func TestPathEquals(t *testing.T) {
	test.That(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0")))
	test.That(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0M5 10")))
	test.That(t, !MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 9")))
	test.That(t, MustParseSVGPath("M5 0L5 10").Equals(MustParseSVGPath("M5 0L5 10")))
}

func TestPathClosed(t *testing.T) {
	test.That(t, !MustParseSVGPath("M5 0L5 10").Closed())
	test.That(t, MustParseSVGPath("M5 0L5 10z").Closed())
	test.That(t, !MustParseSVGPath("M5 0L5 10zM5 10").Closed())
	test.That(t, MustParseSVGPath("M5 0L5 10zM5 10L10 10z").Closed())
}

func TestPathAppend(t *testing.T) {
	test.T(t, MustParseSVGPath("M5 0L5 10").Append(nil), MustParseSVGPath("M5 0L5 10"))
	test.T(t, (&Path{}).Append(MustParseSVGPath("M5 0L5 10")), MustParseSVGPath("M5 0L5 10"))

	p := MustParseSVGPath("M5 0L5 10").Append(MustParseSVGPath("M5 15L10 15"))
	test.T(t, p, MustParseSVGPath("M5 0L5 10M5 15L10 15"))
}

func TestPathCommands(t *testing.T) {
	p := &Path{}
	p.LineTo(5, 0)
	test.String(t, p.ToSVG(), "M0 0L5 0")

	p.MoveTo(10, 0)
	p.MoveTo(20, 0)
	test.String(t, p.ToSVG(), "M0 0L5 0M20 0")

	p.LineTo(30, 0)
	p.LineTo(30, 10)
	p.LineTo(20, 0)
	p.Close()
	p.Close()
	test.String(t, p.ToSVG(), "M0 0L5 0M20 0L30 0L30 10z")
	test.T(t, p.Pos(), Point{20, 0})
	test.T(t, p.StartPos(), Point{20, 0})

	p.LineTo(20, 20)
	test.String(t, p.ToSVG(), "M0 0L5 0M20 0L30 0L30 10zM20 0L20 20")
	test.T(t, p.Len(), 8)
}

func TestPathTransform(t *testing.T) {
	defer setEpsilon(1e-9)()

	p := MustParseSVGPath("M0 0L10 0L10 10z")
	test.T(t, p.Translate(5, 5), MustParseSVGPath("M5 5L15 5L15 15z"))
	q := p.Transform(Identity.Rotate(90))
	test.That(t, q.Equals(MustParseSVGPath("M0 0L0 10L-10 10z")), q)
	test.T(t, p, MustParseSVGPath("M0 0L10 0L10 10z"))
}

func TestPathBounds(t *testing.T) {
	test.T(t, (&Path{}).Bounds(), Rect{})
	test.T(t, MustParseSVGPath("M5 0L15 5L10 -5z").Bounds(), Rect{5, -5, 10, 10})
}

func TestPathCoords(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0L10 10zM20 20L30 30")
	test.T(t, p.Coords(), []Point{{0, 0}, {10, 0}, {10, 10}, {20, 20}, {30, 30}})

	subs := p.Subpaths()
	test.T(t, len(subs), 2)
	test.T(t, subs[0], MustParseSVGPath("M0 0L10 0L10 10z"))
	test.T(t, subs[1], MustParseSVGPath("M20 20L30 30"))
}

func TestPathCopy(t *testing.T) {
	p := MustParseSVGPath("M0 0L10 0")
	q := p.Copy()
	q.LineTo(10, 10)
	test.T(t, p, MustParseSVGPath("M0 0L10 0"))
}

func TestPathToSVG(t *testing.T) {
	test.String(t, MustParseSVGPath("M0.5 1e-3L12345678.9 -2z").ToSVG(), "M0.5 0.001L12345679 -2z")
	test.String(t, (&Path{}).String(), "")
}
