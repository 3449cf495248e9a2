package canvas

import (
	"fmt"
	"image"
)

type layer struct {
	shape *Shape
	img   image.Image
	m     Matrix
}

// Canvas is an immediate-mode drawing surface. It holds the current transformation, paint style and at most one open shape. Committed shapes are drawn into the frame buffer immediately and are retained in a draw log until the next call to Background, so that the current frame can be exported by any Renderer.
type Canvas struct {
	width, height int
	img           *image.RGBA
	ras           *Rasterizer

	style     StyleState
	transform *TransformStack
	tension   float64
	open      *ShapeBuilder

	background    Color
	hasBackground bool
	layers        []layer
	frame         int
}

// New returns a canvas of width by height pixels.
func New(width, height int) (*Canvas, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("canvas size must be positive, got %dx%d: %w", width, height, ErrInvalidArgument)
	}
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	Logger().Info("canvas created", "width", width, "height", height)
	return &Canvas{
		width:     width,
		height:    height,
		img:       img,
		ras:       NewRasterizer(img, 1.0),
		style:     NewStyleState(),
		transform: NewTransformStack(),
		tension:   DefaultTension,
	}, nil
}

// Width returns the width in pixels.
func (c *Canvas) Width() int {
	return c.width
}

// Height returns the height in pixels.
func (c *Canvas) Height() int {
	return c.height
}

// Size returns the width and height in canvas units.
func (c *Canvas) Size() (float64, float64) {
	return float64(c.width), float64(c.height)
}

// Image returns the frame buffer. It is the same image for the lifetime of the canvas.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Frame returns the number of frames started by Background.
func (c *Canvas) Frame() int {
	return c.frame
}

////////////////////////////////////////////////////////////////

// Background fills the frame buffer with a color given in the current color scale and starts a new frame, discarding the draw log. An open shape is left untouched.
func (c *Canvas) Background(col ...float64) error {
	bg, err := c.style.Color(col...)
	if err != nil {
		return err
	}
	c.BackgroundColor(bg)
	return nil
}

// BackgroundColor is like Background but takes a resolved color.
func (c *Canvas) BackgroundColor(col Color) {
	c.ras.RenderBackground(col)
	c.background = col
	c.hasBackground = true
	c.layers = c.layers[:0]
	c.frame++
	Logger().Debug("frame started", "frame", c.frame, "background", col)
}

// Stroke sets the stroke color in the current color scale, see ScaledColor for the accepted arguments.
func (c *Canvas) Stroke(col ...float64) error {
	return c.style.SetStroke(col...)
}

// Fill sets the fill color in the current color scale, see ScaledColor for the accepted arguments.
func (c *Canvas) Fill(col ...float64) error {
	return c.style.SetFill(col...)
}

// SetStrokeColor sets a resolved stroke color.
func (c *Canvas) SetStrokeColor(col Color) {
	c.style.SetStrokeColor(col)
}

// SetFillColor sets a resolved fill color.
func (c *Canvas) SetFillColor(col Color) {
	c.style.SetFillColor(col)
}

// NoStroke disables stroking.
func (c *Canvas) NoStroke() {
	c.style.DisableStroke()
}

// NoFill disables filling.
func (c *Canvas) NoFill() {
	c.style.DisableFill()
}

// StrokeWeight sets the stroke width in local units.
func (c *Canvas) StrokeWeight(w float64) error {
	return c.style.SetStrokeWidth(w)
}

// SetColorScale sets the value that corresponds to full intensity in color arguments.
func (c *Canvas) SetColorScale(scale float64) error {
	return c.style.SetColorScale(scale)
}

// ColorScale returns the current color scale.
func (c *Canvas) ColorScale() float64 {
	return c.style.ColorScale()
}

// Style returns the current paint style.
func (c *Canvas) Style() Style {
	return c.style.Style
}

// SetStyle replaces the current paint style.
func (c *Canvas) SetStyle(style Style) error {
	if err := c.style.SetStrokeWidth(style.StrokeWidth); err != nil {
		return err
	}
	c.style.Style = style
	return nil
}

////////////////////////////////////////////////////////////////

// Push saves the current transformation.
func (c *Canvas) Push() {
	c.transform.Push()
}

// Pop restores the last saved transformation.
func (c *Canvas) Pop() error {
	return c.transform.Pop()
}

// Translate moves the origin of subsequently drawn geometry.
func (c *Canvas) Translate(x, y float64) {
	c.transform.Translate(x, y)
}

// Scale scales subsequently drawn geometry.
func (c *Canvas) Scale(sx, sy float64) {
	c.transform.Scale(sx, sy)
}

// Rotate rotates subsequently drawn geometry by theta radians, clockwise on screen.
func (c *Canvas) Rotate(theta float64) {
	c.transform.Rotate(theta)
}

// ApplyMatrix composes m onto the current transformation.
func (c *Canvas) ApplyMatrix(m Matrix) {
	c.transform.Apply(m)
}

// ResetMatrix sets the current transformation to the identity.
func (c *Canvas) ResetMatrix() {
	c.transform.Reset()
}

// Matrix returns the current transformation.
func (c *Canvas) Matrix() Matrix {
	return c.transform.Matrix()
}

////////////////////////////////////////////////////////////////

// Tension returns the tension used for curve vertices.
func (c *Canvas) Tension() float64 {
	return c.tension
}

// SetTension sets the tension used for curve vertices, it must be in [0,1]. It also applies to an open shape.
func (c *Canvas) SetTension(tension float64) error {
	if err := checkTension(tension); err != nil {
		return err
	}
	c.tension = tension
	if c.open != nil {
		return c.open.SetTension(tension)
	}
	return nil
}

// ShapeOpen returns true between BeginShape and EndShape.
func (c *Canvas) ShapeOpen() bool {
	return c.open != nil
}

// BeginShape opens a new shape. Only one shape can be open at a time.
func (c *Canvas) BeginShape() error {
	if c.open != nil {
		return fmt.Errorf("begin shape while another shape is open: %w", ErrInvalidState)
	}
	open, err := NewShapeBuilder(c.tension)
	if err != nil {
		return err
	}
	c.open = open
	return nil
}

// Vertex appends a straight vertex to the open shape.
func (c *Canvas) Vertex(x, y float64) error {
	if c.open == nil {
		return fmt.Errorf("vertex without open shape: %w", ErrInvalidState)
	}
	c.open.Vertex(c.transform.Dot(Point{x, y}))
	return nil
}

// CurveVertex appends a curve control point to the open shape.
func (c *Canvas) CurveVertex(x, y float64) error {
	if c.open == nil {
		return fmt.Errorf("curve vertex without open shape: %w", ErrInvalidState)
	}
	c.open.CurveVertex(c.transform.Dot(Point{x, y}))
	return nil
}

// EndShape resolves the open shape, closing it if close is set, and commits it with the current style.
func (c *Canvas) EndShape(close bool) error {
	if c.open == nil {
		return fmt.Errorf("end shape without open shape: %w", ErrInvalidState)
	}
	open := c.open
	c.open = nil

	p, err := open.Resolve(close)
	if err != nil {
		return err
	}
	c.commit(p, open.Tension())
	return nil
}

// commit draws the path, which is in canvas coordinates, and appends it to the draw log.
func (c *Canvas) commit(p *Path, tension float64) {
	style := c.style.Style
	style.StrokeWidth *= c.transform.Matrix().ScaleFactor()
	shape := &Shape{
		Path:    p,
		Style:   style,
		Tension: tension,
	}
	c.layers = append(c.layers, layer{shape: shape})
	c.ras.RenderPath(p, style)
	Logger().Debug("shape committed", "commands", p.Len(), "closed", p.Closed())
}

////////////////////////////////////////////////////////////////

// Polygon draws a polygon through the given points in local coordinates.
func (c *Canvas) Polygon(points []Point, close bool) error {
	if err := c.BeginShape(); err != nil {
		return err
	}
	for _, pt := range points {
		c.Vertex(pt.X, pt.Y)
	}
	return c.EndShape(close)
}

// Circle draws a closed polygon with steps vertices on a circle of radius r centered at (x,y). steps must be 3 or more.
func (c *Canvas) Circle(x, y, r float64, steps int) error {
	points, err := CirclePoints(r, steps)
	if err != nil {
		return err
	}
	for i := range points {
		points[i] = points[i].Add(Point{x, y})
	}
	return c.Polygon(points, true)
}

// Ellipse draws a closed polygon with steps vertices on an ellipse of radii rx and ry centered at (x,y). steps must be 3 or more.
func (c *Canvas) Ellipse(x, y, rx, ry float64, steps int) error {
	points, err := CirclePoints(1.0, steps)
	if err != nil {
		return err
	}
	m := Identity.Translate(x, y).Scale(rx, ry)
	for i := range points {
		points[i] = m.Dot(points[i])
	}
	return c.Polygon(points, true)
}

// Star draws a closed star with n points centered at (x,y), alternating between the outer and inner radius. n must be 3 or more.
func (c *Canvas) Star(x, y float64, n int, outer, inner float64) error {
	points, err := StarPoints(n, outer, inner)
	if err != nil {
		return err
	}
	for i := range points {
		points[i] = points[i].Add(Point{x, y})
	}
	return c.Polygon(points, true)
}

// Line draws a line segment from (x0,y0) to (x1,y1).
func (c *Canvas) Line(x0, y0, x1, y1 float64) error {
	return c.Polygon([]Point{{x0, y0}, {x1, y1}}, false)
}

// Rect draws a rectangle with its top-left corner at (x,y).
func (c *Canvas) Rect(x, y, w, h float64) error {
	return c.Polygon([]Point{{x, y}, {x + w, y}, {x + w, y + h}, {x, y + h}}, true)
}

// Shape replays resolved paths, such as those produced by a turtle, under the current transformation and style. Each path is committed as its own shape.
func (c *Canvas) Shape(paths ...*Path) error {
	if c.open != nil {
		return fmt.Errorf("shape replay while a shape is open: %w", ErrInvalidState)
	}
	m := c.transform.Matrix()
	for _, p := range paths {
		if p == nil || p.Len() == 0 {
			continue
		}
		c.commit(p.Transform(m), c.tension)
	}
	return nil
}

// DrawImage draws a pixel image with its top-left corner at (x,y) in local coordinates, one pixel per local unit.
func (c *Canvas) DrawImage(img image.Image, x, y float64) {
	m := c.transform.Matrix().Translate(x, y)
	c.layers = append(c.layers, layer{img: img, m: m})
	c.ras.RenderImage(img, m)
}

////////////////////////////////////////////////////////////////

// Shapes returns the shapes committed in the current frame in commit order.
func (c *Canvas) Shapes() []Shape {
	shapes := []Shape{}
	for _, l := range c.layers {
		if l.shape != nil {
			shapes = append(shapes, *l.shape)
		}
	}
	return shapes
}

// Empty returns true if nothing was drawn in the current frame.
func (c *Canvas) Empty() bool {
	return !c.hasBackground && len(c.layers) == 0
}

// Render replays the current frame onto a renderer, scaling the canvas to fit the renderer's size.
func (c *Canvas) Render(r Renderer) {
	rw, rh := r.Size()
	m := Identity
	if w, h := c.Size(); !Equal(rw, w) || !Equal(rh, h) {
		m = m.Scale(rw/w, rh/h)
	}
	c.RenderViewTo(r, m)
}

// RenderViewTo replays the current frame onto a renderer, transforming all geometry by view.
func (c *Canvas) RenderViewTo(r Renderer, view Matrix) {
	if c.hasBackground {
		r.RenderBackground(c.background)
	}
	scale := view.ScaleFactor()
	for _, l := range c.layers {
		if l.shape != nil {
			style := l.shape.Style
			style.StrokeWidth *= scale
			r.RenderPath(l.shape.Path.Transform(view), style)
		} else if l.img != nil {
			r.RenderImage(l.img, view.Mul(l.m))
		}
	}
}
