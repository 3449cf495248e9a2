package canvas

import (
	"bytes"
	"fmt"
	"math"
	"strconv"
)

// PathCmd is a path segment command.
type PathCmd int

// Path commands. Curves are resolved into line segments before they become part of a Path.
const (
	MoveToCmd PathCmd = iota
	LineToCmd
	CloseCmd
)

// Path is a resolved polyline geometry consisting of one or more subpaths. Each subpath starts with MoveTo, continues with LineTo, and may end with Close. Coordinates are absolute.
type Path struct {
	cmds []PathCmd
	d    []float64 // x,y per command, Close repeats the subpath's start
}

// Empty returns true if the path has no segments, i.e. nothing would be drawn.
func (p *Path) Empty() bool {
	for _, cmd := range p.cmds {
		if cmd != MoveToCmd {
			return false
		}
	}
	return true
}

// Len returns the number of commands.
func (p *Path) Len() int {
	return len(p.cmds)
}

// Closed returns true if the last subpath is closed.
func (p *Path) Closed() bool {
	return 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == CloseCmd
}

// Pos returns the current position of the path, i.e. the end point of the last command.
func (p *Path) Pos() Point {
	if len(p.d) == 0 {
		return Point{}
	}
	return Point{p.d[len(p.d)-2], p.d[len(p.d)-1]}
}

// StartPos returns the start point of the current subpath.
func (p *Path) StartPos() Point {
	for i := len(p.cmds) - 1; 0 <= i; i-- {
		if p.cmds[i] == MoveToCmd {
			return Point{p.d[2*i], p.d[2*i+1]}
		}
	}
	return Point{}
}

// Copy returns a copy of the path.
func (p *Path) Copy() *Path {
	return &Path{
		cmds: append([]PathCmd(nil), p.cmds...),
		d:    append([]float64(nil), p.d...),
	}
}

// Equals returns true if p and q are equal within tolerance Epsilon.
func (p *Path) Equals(q *Path) bool {
	if len(p.cmds) != len(q.cmds) {
		return false
	}
	for i := range p.cmds {
		if p.cmds[i] != q.cmds[i] {
			return false
		}
	}
	for i := range p.d {
		if !Equal(p.d[i], q.d[i]) {
			return false
		}
	}
	return true
}

// Append appends path q to p and returns p, each subpath of q remains a separate subpath.
func (p *Path) Append(q *Path) *Path {
	if q == nil || len(q.cmds) == 0 {
		return p
	}
	p.cmds = append(p.cmds, q.cmds...)
	p.d = append(p.d, q.d...)
	return p
}

////////////////////////////////////////////////////////////////

// MoveTo starts a new subpath at (x,y).
func (p *Path) MoveTo(x, y float64) {
	if 0 < len(p.cmds) && p.cmds[len(p.cmds)-1] == MoveToCmd {
		p.d[len(p.d)-2], p.d[len(p.d)-1] = x, y
		return
	}
	p.cmds = append(p.cmds, MoveToCmd)
	p.d = append(p.d, x, y)
}

// LineTo adds a linear segment to (x,y). An empty path starts at the origin, and a segment after Close starts a new subpath at the closed subpath's start.
func (p *Path) LineTo(x, y float64) {
	if len(p.cmds) == 0 || p.cmds[len(p.cmds)-1] == CloseCmd {
		start := p.Pos()
		p.cmds = append(p.cmds, MoveToCmd)
		p.d = append(p.d, start.X, start.Y)
	}
	p.cmds = append(p.cmds, LineToCmd)
	p.d = append(p.d, x, y)
}

// Close closes the current subpath with a segment back to its start. Closing an empty or already closed subpath has no effect.
func (p *Path) Close() {
	if len(p.cmds) == 0 || p.cmds[len(p.cmds)-1] == CloseCmd {
		return
	}
	start := p.StartPos()
	if 1 < len(p.cmds) && p.cmds[len(p.cmds)-1] == LineToCmd && p.Pos().Equals(start) {
		// last vertex coincides with the start
		p.cmds = p.cmds[:len(p.cmds)-1]
		p.d = p.d[:len(p.d)-2]
	}
	p.cmds = append(p.cmds, CloseCmd)
	p.d = append(p.d, start.X, start.Y)
}

////////////////////////////////////////////////////////////////

// Transform transforms the path by the given transformation matrix and returns a new path.
func (p *Path) Transform(m Matrix) *Path {
	q := p.Copy()
	for i := 0; i < len(q.d); i += 2 {
		pt := m.Dot(Point{q.d[i], q.d[i+1]})
		q.d[i], q.d[i+1] = pt.X, pt.Y
	}
	return q
}

// Translate translates the path by (x,y) and returns a new path.
func (p *Path) Translate(x, y float64) *Path {
	return p.Transform(Identity.Translate(x, y))
}

// Bounds returns the bounding box of the path.
func (p *Path) Bounds() Rect {
	if len(p.d) == 0 {
		return Rect{}
	}
	xmin, ymin := math.Inf(1), math.Inf(1)
	xmax, ymax := math.Inf(-1), math.Inf(-1)
	for i := 0; i < len(p.d); i += 2 {
		xmin = math.Min(xmin, p.d[i])
		xmax = math.Max(xmax, p.d[i])
		ymin = math.Min(ymin, p.d[i+1])
		ymax = math.Max(ymax, p.d[i+1])
	}
	return Rect{xmin, ymin, xmax - xmin, ymax - ymin}
}

// Coords returns the vertices of all subpaths in order. The closing segment of a closed subpath does not produce an extra vertex.
func (p *Path) Coords() []Point {
	coords := make([]Point, 0, len(p.cmds))
	for i, cmd := range p.cmds {
		if cmd != CloseCmd {
			coords = append(coords, Point{p.d[2*i], p.d[2*i+1]})
		}
	}
	return coords
}

// Subpaths returns the subpaths of the path as separate paths.
func (p *Path) Subpaths() []*Path {
	ps := []*Path{}
	var q *Path
	for i, cmd := range p.cmds {
		if cmd == MoveToCmd {
			q = &Path{}
			ps = append(ps, q)
		}
		q.cmds = append(q.cmds, cmd)
		q.d = append(q.d, p.d[2*i], p.d[2*i+1])
	}
	return ps
}

// Iterate calls fn for each command with its end point.
func (p *Path) Iterate(fn func(cmd PathCmd, pt Point)) {
	for i, cmd := range p.cmds {
		fn(cmd, Point{p.d[2*i], p.d[2*i+1]})
	}
}

// ToSVG returns a string that represents the path in the SVG path data format. Only absolute M, L and z commands are used.
func (p *Path) ToSVG() string {
	sb := bytes.Buffer{}
	for i, cmd := range p.cmds {
		switch cmd {
		case MoveToCmd:
			fmt.Fprintf(&sb, "M%v %v", num(p.d[2*i]), num(p.d[2*i+1]))
		case LineToCmd:
			fmt.Fprintf(&sb, "L%v %v", num(p.d[2*i]), num(p.d[2*i+1]))
		case CloseCmd:
			fmt.Fprintf(&sb, "z")
		}
	}
	return sb.String()
}

func (p *Path) String() string {
	return p.ToSVG()
}

type num float64

func (f num) String() string {
	return strconv.FormatFloat(float64(f), 'g', Precision, 64)
}
