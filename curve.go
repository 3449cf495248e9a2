package canvas

import (
	"fmt"
	"math"

	"honnef.co/go/curve"
)

// DefaultTension is the tension of a new canvas.
const DefaultTension = 0.5

func checkTension(tension float64) error {
	if !(0.0 <= tension && tension <= 1.0) {
		return fmt.Errorf("tension must be in [0,1], got %v: %w", tension, ErrInvalidArgument)
	}
	return nil
}

// CatmullRom returns a polyline that interpolates the control points with a cardinal spline of the given tension. A tension of zero yields straight segments between the control points and a tension of one yields a classic Catmull-Rom spline. Each span between two consecutive control points only depends on its four nearest control points. Open curves start and end at the first and last control point, closed curves wrap around and the returned path is closed. Every control point is reproduced exactly at the end of its span. Two control points yield a straight segment.
func CatmullRom(points []Point, tension float64, closed bool) (*Path, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("curve needs at least 2 control points, got %d: %w", len(points), ErrInvalidArgument)
	} else if err := checkTension(tension); err != nil {
		return nil, err
	}

	p := &Path{}
	p.MoveTo(points[0].X, points[0].Y)
	if len(points) == 2 {
		p.LineTo(points[1].X, points[1].Y)
		if closed {
			p.Close()
		}
		return p, nil
	}

	n := len(points)
	at := func(i int) Point {
		if closed {
			return points[((i%n)+n)%n]
		} else if i < 0 {
			return points[0]
		} else if n <= i {
			return points[n-1]
		}
		return points[i]
	}
	tangent := func(i int) Point {
		return at(i + 1).Sub(at(i - 1)).Mul(tension / 2.0)
	}

	spans := n - 1
	if closed {
		spans = n
	}
	for i := 0; i < spans; i++ {
		p0, p3 := at(i), at(i+1)
		p1 := p0.Add(tangent(i).Div(3.0))
		p2 := p3.Sub(tangent(i + 1).Div(3.0))
		flattenCubic(p, p0, p1, p2, p3)
	}
	if closed {
		p.Close()
	}
	return p, nil
}

// flattenCubic appends the line segments approximating the cubic Bézier p0-p3 to p, which must end at p0.
func flattenCubic(p *Path, p0, p1, p2, p3 Point) {
	var bez curve.BezPath
	bez.MoveTo(curve.Point{X: p0.X, Y: p0.Y})
	bez.CubicTo(curve.Point{X: p1.X, Y: p1.Y}, curve.Point{X: p2.X, Y: p2.Y}, curve.Point{X: p3.X, Y: p3.Y})

	var pts []Point
	for el := range bez.Flatten(Tolerance) {
		if el.Kind == curve.LineToKind {
			pts = append(pts, Point{el.P0.X, el.P0.Y})
		}
	}
	if len(pts) == 0 {
		pts = append(pts, p3)
	}
	pts[len(pts)-1] = p3
	for _, pt := range pts {
		if !pt.Equals(p.Pos()) && !math.IsNaN(pt.X) && !math.IsNaN(pt.Y) {
			p.LineTo(pt.X, pt.Y)
		}
	}
}
