package canvas

import (
	"fmt"
	"math"
)

// Rectangle returns a rectangle of width w and height h.
func Rectangle(w, h float64) *Path {
	if Equal(w, 0.0) || Equal(h, 0.0) {
		return &Path{}
	}

	p := &Path{}
	p.LineTo(w, 0.0)
	p.LineTo(w, h)
	p.LineTo(0.0, h)
	p.Close()
	return p
}

// Polygon returns the path through the given points, closed if close is set.
func Polygon(points []Point, close bool) *Path {
	p := &Path{}
	for i, pt := range points {
		if i == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else {
			p.LineTo(pt.X, pt.Y)
		}
	}
	if close && 1 < len(points) {
		p.Close()
	}
	return p
}

// CirclePoints returns steps points evenly spaced on a circle of radius r around the origin, starting at angle zero and running in the direction of positive rotation. steps must be 3 or more.
func CirclePoints(r float64, steps int) ([]Point, error) {
	if steps < 3 {
		return nil, fmt.Errorf("circle needs at least 3 steps, got %d: %w", steps, ErrInvalidArgument)
	}
	points := make([]Point, steps)
	dtheta := 2.0 * math.Pi / float64(steps)
	for i := range points {
		sintheta, costheta := math.Sincos(float64(i) * dtheta)
		points[i] = Point{r * costheta, r * sintheta}
	}
	return points, nil
}

// Circle returns a closed polygon approximating a circle of radius r with steps vertices. steps must be 3 or more.
func Circle(r float64, steps int) (*Path, error) {
	points, err := CirclePoints(r, steps)
	if err != nil {
		return nil, err
	}
	return Polygon(points, true), nil
}

// Ellipse returns a closed polygon with steps vertices approximating an ellipse of radii rx and ry around the origin. steps must be 3 or more.
func Ellipse(rx, ry float64, steps int) (*Path, error) {
	points, err := CirclePoints(1.0, steps)
	if err != nil {
		return nil, err
	}
	m := Identity.Scale(rx, ry)
	for i := range points {
		points[i] = m.Dot(points[i])
	}
	return Polygon(points, true), nil
}

// StarPoints returns the 2n vertices of a star with n points around the origin, alternating between the outer and inner radius. The first point lies at the outer radius straight up the screen. n must be 3 or more.
func StarPoints(n int, outer, inner float64) ([]Point, error) {
	if n < 3 {
		return nil, fmt.Errorf("star needs at least 3 points, got %d: %w", n, ErrInvalidArgument)
	}
	points := make([]Point, 2*n)
	dtheta := math.Pi / float64(n)
	for i := range points {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		sintheta, costheta := math.Sincos(float64(i)*dtheta - math.Pi/2.0)
		points[i] = Point{r * costheta, r * sintheta}
	}
	return points, nil
}

// Star returns a closed star polygon with n points around the origin. n must be 3 or more.
func Star(n int, outer, inner float64) (*Path, error) {
	points, err := StarPoints(n, outer, inner)
	if err != nil {
		return nil, err
	}
	return Polygon(points, true), nil
}
