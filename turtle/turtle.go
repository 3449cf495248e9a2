// Package turtle implements a cursor-based path generator driven by relative turn and move commands.
//
// The heading is measured in degrees. A heading of zero points up the screen (negative y) and Right turns clockwise on screen, which matches the direction of a positive canvas rotation. Starting at the origin with heading zero, Right(90) followed by Forward(10) ends at (10,0).
package turtle

import (
	"fmt"
	"math"

	"github.com/colormotor/canvas"
)

// Turtle is a cursor with a position, a heading and a pen. While the pen is down every movement extends the current path. Finished paths accumulate and are never discarded unless Clear is called.
type Turtle struct {
	pos     canvas.Point
	heading float64
	down    bool

	cur   *canvas.ShapeBuilder
	paths []*canvas.Path
}

// New returns a turtle at the origin with heading zero and the pen down.
func New() *Turtle {
	return &Turtle{
		down: true,
	}
}

// Position returns the current position.
func (t *Turtle) Position() canvas.Point {
	return t.pos
}

// Heading returns the current heading in degrees in [0,360).
func (t *Turtle) Heading() float64 {
	h := math.Mod(t.heading, 360.0)
	if h < 0.0 {
		h += 360.0
	}
	return h
}

// IsDown returns true if the pen is down.
func (t *Turtle) IsDown() bool {
	return t.down
}

// direction returns the unit vector of the heading.
func (t *Turtle) direction() canvas.Point {
	sin, cos := math.Sincos(t.heading * math.Pi / 180.0)
	return canvas.Point{X: sin, Y: -cos}
}

// Right turns the heading clockwise by deg degrees.
func (t *Turtle) Right(deg float64) {
	t.heading += deg
}

// Left turns the heading counter clockwise by deg degrees.
func (t *Turtle) Left(deg float64) {
	t.heading -= deg
}

// SetHeading sets the absolute heading in degrees.
func (t *Turtle) SetHeading(deg float64) {
	t.heading = deg
}

// Forward moves d units along the heading.
func (t *Turtle) Forward(d float64) {
	t.moveTo(t.pos.Add(t.direction().Mul(d)))
}

// Back moves d units against the heading.
func (t *Turtle) Back(d float64) {
	t.Forward(-d)
}

// Goto moves to (x,y) without changing the heading.
func (t *Turtle) Goto(x, y float64) {
	t.moveTo(canvas.Point{X: x, Y: y})
}

// Home moves to the origin and resets the heading.
func (t *Turtle) Home() {
	t.Goto(0.0, 0.0)
	t.heading = 0.0
}

func (t *Turtle) moveTo(p canvas.Point) {
	if t.down {
		if t.cur == nil {
			t.cur = &canvas.ShapeBuilder{}
			t.cur.Vertex(t.pos)
		}
		t.cur.Vertex(p)
	}
	t.pos = p
}

// PenUp lifts the pen, finishing the current path.
func (t *Turtle) PenUp() {
	t.finish()
	t.down = false
}

// PenDown lowers the pen, the next movement starts a new path.
func (t *Turtle) PenDown() {
	t.down = true
}

func (t *Turtle) finish() {
	if t.cur == nil {
		return
	}
	if p, err := t.cur.Resolve(false); err == nil && !p.Empty() {
		t.paths = append(t.paths, p)
	}
	t.cur = nil
}

// Circle walks a regular polygon with steps chords approximating a circle of radius r. The center lies r units to the left of the turtle, for a negative radius it lies to the right and the turtle turns clockwise. The turtle ends at its starting position and heading. steps must be 3 or more.
func (t *Turtle) Circle(r float64, steps int) error {
	if steps < 3 {
		return fmt.Errorf("turtle circle needs at least 3 steps, got %d: %w", steps, canvas.ErrInvalidArgument)
	}
	t.arc(r, 360.0, steps)
	return nil
}

// Arc walks steps chords along a circular arc of radius r spanning extent degrees. The center lies r units to the left of the turtle. steps must be 1 or more.
func (t *Turtle) Arc(r, extent float64, steps int) error {
	if steps < 1 {
		return fmt.Errorf("turtle arc needs at least 1 step, got %d: %w", steps, canvas.ErrInvalidArgument)
	}
	t.arc(r, extent, steps)
	return nil
}

func (t *Turtle) arc(r, extent float64, steps int) {
	w := extent / float64(steps)
	w2 := w / 2.0
	l := 2.0 * r * math.Sin(w2*math.Pi/180.0)
	if r < 0.0 {
		l, w, w2 = -l, -w, -w2
	}

	t.Left(w2)
	for i := 0; i < steps; i++ {
		t.Forward(l)
		t.Left(w)
	}
	t.Left(-w2)
}

// Paths returns the finished paths followed by the path being drawn, if any. The returned paths are independent of further turtle movement.
func (t *Turtle) Paths() []*canvas.Path {
	paths := make([]*canvas.Path, 0, len(t.paths)+1)
	paths = append(paths, t.paths...)
	if t.cur != nil {
		if p, err := t.cur.Resolve(false); err == nil && !p.Empty() {
			paths = append(paths, p)
		}
	}
	return paths
}

// Clear discards all paths, the position, heading and pen are kept.
func (t *Turtle) Clear() {
	t.paths = t.paths[:0]
	t.cur = nil
}
