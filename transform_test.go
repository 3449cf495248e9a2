package canvas

import (
	"errors"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/tdewolff/test"
)

func TestTransformStack(t *testing.T) {
	defer setEpsilon(1e-9)()

	s := NewTransformStack()
	s.Translate(10.0, 20.0)
	s.Rotate(math.Pi / 2.0)
	test.T(t, s.Dot(Point{1.0, 0.0}), Point{10.0, 21.0})

	s.Push()
	s.Scale(2.0, 2.0)
	test.T(t, s.Dot(Point{1.0, 0.0}), Point{10.0, 22.0})
	test.T(t, s.Depth(), 1)

	test.Error(t, s.Pop())
	test.T(t, s.Dot(Point{1.0, 0.0}), Point{10.0, 21.0})
	test.T(t, s.Depth(), 0)

	err := s.Pop()
	test.That(t, errors.Is(err, ErrStackUnderflow))
	test.T(t, s.Dot(Point{1.0, 0.0}), Point{10.0, 21.0})

	s.Reset()
	test.T(t, s.Matrix(), Identity)
}

func TestTransformStackBalanced(t *testing.T) {
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 100; i++ {
		s := NewTransformStack()
		s.Translate(r.Float64(), r.Float64())
		before := s.Matrix()

		depth := 0
		for j := 0; j < 20; j++ {
			switch op := r.IntN(5); {
			case op == 0 || depth == 0:
				s.Push()
				depth++
			case op == 1:
				test.Error(t, s.Pop())
				depth--
			case op == 2:
				s.Rotate(r.Float64())
			case op == 3:
				s.Scale(r.Float64()+0.5, r.Float64()+0.5)
			default:
				s.Translate(r.Float64(), r.Float64())
			}
		}
		for ; 0 < depth; depth-- {
			test.Error(t, s.Pop())
		}
		test.T(t, s.Matrix(), before)
		test.That(t, errors.Is(s.Pop(), ErrStackUnderflow))
	}
}
