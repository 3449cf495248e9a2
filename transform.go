package canvas

import (
	"fmt"
	"math"
)

// TransformStack holds the current affine transformation and the snapshots saved by Push.
type TransformStack struct {
	m     Matrix
	saved []Matrix
}

// NewTransformStack returns an empty stack with the identity transformation.
func NewTransformStack() *TransformStack {
	return &TransformStack{
		m:     Identity,
		saved: make([]Matrix, 0, 8),
	}
}

// Matrix returns the current transformation.
func (s *TransformStack) Matrix() Matrix {
	return s.m
}

// Depth returns the number of saved snapshots.
func (s *TransformStack) Depth() int {
	return len(s.saved)
}

// Push saves a snapshot of the current transformation.
func (s *TransformStack) Push() {
	s.saved = append(s.saved, s.m)
}

// Pop restores the most recently saved transformation and removes it from the stack.
func (s *TransformStack) Pop() error {
	if len(s.saved) == 0 {
		return fmt.Errorf("pop without matching push: %w", ErrStackUnderflow)
	}
	s.m = s.saved[len(s.saved)-1]
	s.saved = s.saved[:len(s.saved)-1]
	return nil
}

// Reset sets the current transformation to the identity without touching saved snapshots.
func (s *TransformStack) Reset() {
	s.m = Identity
}

// Apply composes m onto the current transformation so that it applies first to subsequently drawn geometry.
func (s *TransformStack) Apply(m Matrix) {
	s.m = s.m.Mul(m)
}

// Translate composes a translation onto the current transformation.
func (s *TransformStack) Translate(x, y float64) {
	s.m = s.m.Translate(x, y)
}

// Scale composes a scaling onto the current transformation.
func (s *TransformStack) Scale(sx, sy float64) {
	s.m = s.m.Scale(sx, sy)
}

// Rotate composes a rotation of theta radians onto the current transformation. Positive angles rotate clockwise on screen.
func (s *TransformStack) Rotate(theta float64) {
	s.m = s.m.Rotate(theta * 180.0 / math.Pi)
}

// Dot transforms a point from local coordinates to canvas coordinates.
func (s *TransformStack) Dot(p Point) Point {
	return s.m.Dot(p)
}
