package canvas

import (
	"math/rand/v2"

	"github.com/tdewolff/test"
)

// setEpsilon sets Epsilon for both this package and the test package, and returns a function that restores the previous values.
func setEpsilon(eps float64) func() {
	prev, prevTest := Epsilon, test.Epsilon
	Epsilon, test.Epsilon = eps, eps
	return func() {
		Epsilon, test.Epsilon = prev, prevTest
	}
}

func randomPoints(r *rand.Rand, n int) []Point {
	points := make([]Point, n)
	for i := range points {
		points[i] = Point{100.0 * r.Float64(), 100.0 * r.Float64()}
	}
	return points
}

// containsPoint returns true if p has a vertex at q.
func containsPoint(p *Path, q Point) bool {
	for _, coord := range p.Coords() {
		if coord.Equals(q) {
			return true
		}
	}
	return false
}
