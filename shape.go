package canvas

import (
	"fmt"
)

// VertexKind tags a vertex of a shape under construction.
type VertexKind int

// Vertex kinds.
const (
	StraightVertex VertexKind = iota
	CurveVertex
)

func (k VertexKind) String() string {
	switch k {
	case StraightVertex:
		return "StraightVertex"
	case CurveVertex:
		return "CurveVertex"
	}
	return fmt.Sprintf("VertexKind(%d)", int(k))
}

// Vertex is a point of a shape under construction, stored in canvas coordinates.
type Vertex struct {
	Kind VertexKind
	Point
}

// ShapeBuilder accumulates the vertices of one shape between BeginShape and EndShape. Curve vertices are control points that are only resolved into line segments by Resolve, so the tension may still change until then. The zero value is an empty builder with tension zero.
type ShapeBuilder struct {
	vertices []Vertex
	tension  float64
}

// NewShapeBuilder returns an empty builder with the given tension.
func NewShapeBuilder(tension float64) (*ShapeBuilder, error) {
	if err := checkTension(tension); err != nil {
		return nil, err
	}
	return &ShapeBuilder{tension: tension}, nil
}

// Vertices returns the vertices added so far.
func (b *ShapeBuilder) Vertices() []Vertex {
	return b.vertices
}

// Len returns the number of vertices.
func (b *ShapeBuilder) Len() int {
	return len(b.vertices)
}

// Tension returns the tension used to resolve curve vertices.
func (b *ShapeBuilder) Tension() float64 {
	return b.tension
}

// SetTension sets the tension used to resolve curve vertices, it must be in [0,1].
func (b *ShapeBuilder) SetTension(tension float64) error {
	if err := checkTension(tension); err != nil {
		return err
	}
	b.tension = tension
	return nil
}

// Vertex appends a straight vertex.
func (b *ShapeBuilder) Vertex(p Point) {
	b.vertices = append(b.vertices, Vertex{StraightVertex, p})
}

// CurveVertex appends a curve control point.
func (b *ShapeBuilder) CurveVertex(p Point) {
	b.vertices = append(b.vertices, Vertex{CurveVertex, p})
}

// Resolve converts the vertices into a path. Each maximal run of consecutive curve vertices is interpolated by a Catmull-Rom spline, straight vertices are connected by line segments. A closed shape that consists of curve vertices only is resolved as a periodic spline. A single curve vertex is treated as a straight vertex.
func (b *ShapeBuilder) Resolve(close bool) (*Path, error) {
	p := &Path{}
	if len(b.vertices) == 0 {
		return p, nil
	}

	allCurves := true
	for _, v := range b.vertices {
		if v.Kind != CurveVertex {
			allCurves = false
			break
		}
	}
	if allCurves && close && 2 < len(b.vertices) {
		points := make([]Point, len(b.vertices))
		for i, v := range b.vertices {
			points[i] = v.Point
		}
		return CatmullRom(points, b.tension, true)
	}

	for i := 0; i < len(b.vertices); {
		j := i + 1
		if b.vertices[i].Kind == CurveVertex {
			for j < len(b.vertices) && b.vertices[j].Kind == CurveVertex {
				j++
			}
		}

		if 1 < j-i {
			points := make([]Point, j-i)
			for k := i; k < j; k++ {
				points[k-i] = b.vertices[k].Point
			}
			run, err := CatmullRom(points, b.tension, false)
			if err != nil {
				return nil, err
			}
			joinPath(p, run)
		} else {
			v := b.vertices[i].Point
			if p.Len() == 0 {
				p.MoveTo(v.X, v.Y)
			} else {
				p.LineTo(v.X, v.Y)
			}
		}
		i = j
	}
	if close {
		p.Close()
	}
	return p, nil
}

// joinPath continues p with the segments of the single subpath q, connecting both with a line segment.
func joinPath(p, q *Path) {
	q.Iterate(func(cmd PathCmd, pt Point) {
		if cmd == MoveToCmd && p.Len() == 0 {
			p.MoveTo(pt.X, pt.Y)
		} else if cmd != CloseCmd && (cmd == LineToCmd || !pt.Equals(p.Pos())) {
			p.LineTo(pt.X, pt.Y)
		}
	})
}

////////////////////////////////////////////////////////////////

// Shape is a committed path together with the style it was committed with. Its geometry is in canvas coordinates. Shapes are immutable once committed.
type Shape struct {
	Path    *Path
	Style   Style
	Tension float64
}

func (s Shape) String() string {
	return fmt.Sprintf("Shape{%v fill=%v stroke=%v width=%g}", s.Path, s.Style.Fill, s.Style.Stroke, s.Style.StrokeWidth)
}
