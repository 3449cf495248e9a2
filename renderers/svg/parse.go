package svg

import (
	"encoding/hex"
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/colormotor/canvas"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/strconv"
	"github.com/tdewolff/parse/v2/xml"
)

// Document is the drawing read back from an SVG document: its view box size, an optional background and the shapes in document order.
type Document struct {
	Width, Height float64
	Background    *canvas.Color
	Shapes        []canvas.Shape
}

// Render replays the document onto a renderer, scaling the view box to fit the renderer's size.
func (d *Document) Render(r canvas.Renderer) {
	rw, rh := r.Size()
	m := canvas.Identity
	if 0.0 < d.Width && 0.0 < d.Height {
		m = m.Scale(rw/d.Width, rh/d.Height)
	}
	if d.Background != nil {
		r.RenderBackground(*d.Background)
	}
	for _, shape := range d.Shapes {
		style := shape.Style
		style.StrokeWidth *= m.ScaleFactor()
		r.RenderPath(shape.Path.Transform(m), style)
	}
}

// Canvas replays the document onto a new canvas the size of the view box, rounded up to whole pixels.
func (d *Document) Canvas() (*canvas.Canvas, error) {
	c, err := canvas.New(int(math.Ceil(d.Width)), int(math.Ceil(d.Height)))
	if err != nil {
		return nil, err
	}
	if d.Background != nil {
		c.BackgroundColor(*d.Background)
	}
	for _, shape := range d.Shapes {
		if err := c.SetStyle(shape.Style); err != nil {
			return nil, err
		}
		if err := c.Shape(shape.Path); err != nil {
			return nil, err
		}
	}
	return c, nil
}

type svgParser struct {
	z   *parse.Input
	doc *Document
	err error
}

// Parse reads an SVG document consisting of path and rect elements with presentation attributes, such as those written by this package. Transforms, groups, CSS and curved path segments are not supported. Unknown elements are skipped.
func Parse(r io.Reader) (*Document, error) {
	z := parse.NewInput(r)
	defer z.Restore()

	l := xml.NewLexer(z)
	svg := svgParser{
		z: z,
	}
	for {
		tt, _ := l.Next()
		switch tt {
		case xml.ErrorToken:
			if l.Err() != io.EOF {
				return nil, l.Err()
			} else if svg.err != nil {
				return nil, svg.err
			} else if svg.doc == nil {
				return nil, fmt.Errorf("expected SVG tag")
			}
			canvas.Logger().Debug("svg parsed", "shapes", len(svg.doc.Shapes))
			return svg.doc, nil
		case xml.StartTagToken:
			tag := string(l.Text())
			attrs := map[string]string{}
			for {
				tt, _ = l.Next()
				if tt != xml.AttributeToken {
					break
				}
				val := l.AttrVal()
				if 2 <= len(val) && (val[0] == '"' || val[0] == '\'') {
					val = val[1 : len(val)-1]
				}
				attrs[string(l.Text())] = string(val)
			}

			if tag == "svg" && svg.doc == nil {
				svg.parseRoot(attrs)
			} else if svg.doc == nil {
				if svg.err == nil {
					svg.err = parse.NewErrorLexer(svg.z, "expected SVG tag, got %s", tag)
				}
			} else if tag == "rect" {
				svg.parseRect(attrs)
			} else if tag == "path" {
				svg.parsePath(attrs)
			}
		}
	}
}

func (svg *svgParser) setErr(format string, args ...interface{}) {
	if svg.err == nil {
		svg.err = parse.NewErrorLexer(svg.z, format, args...)
	}
}

func (svg *svgParser) parseFloat(v string) float64 {
	b := []byte(strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(v), "px")))
	f, n := strconv.ParseFloat(b)
	if n == 0 || n != len(b) {
		svg.setErr("bad number: %s", v)
		return 0.0
	}
	return f
}

func (svg *svgParser) parseRoot(attrs map[string]string) {
	svg.doc = &Document{}
	if viewBox, ok := attrs["viewBox"]; ok {
		vals := strings.Fields(strings.ReplaceAll(viewBox, ",", " "))
		if len(vals) != 4 {
			svg.setErr("bad viewBox: %s", viewBox)
			return
		}
		svg.doc.Width = svg.parseFloat(vals[2])
		svg.doc.Height = svg.parseFloat(vals[3])
	} else {
		svg.doc.Width = svg.parseFloat(attrs["width"])
		svg.doc.Height = svg.parseFloat(attrs["height"])
	}
}

func (svg *svgParser) parseRect(attrs map[string]string) {
	x, y := 0.0, 0.0
	if v, ok := attrs["x"]; ok {
		x = svg.parseFloat(v)
	}
	if v, ok := attrs["y"]; ok {
		y = svg.parseFloat(v)
	}
	w := svg.parseFloat(attrs["width"])
	h := svg.parseFloat(attrs["height"])
	style := svg.parseStyle(attrs)

	// a rectangle covering the view box before any shape is the background
	if len(svg.doc.Shapes) == 0 && svg.doc.Background == nil && x == 0.0 && y == 0.0 && canvas.Equal(w, svg.doc.Width) && canvas.Equal(h, svg.doc.Height) && style.HasFill() && !style.HasStroke() {
		bg := style.Fill
		svg.doc.Background = &bg
		return
	}
	svg.doc.Shapes = append(svg.doc.Shapes, canvas.Shape{
		Path:  canvas.Rectangle(w, h).Translate(x, y),
		Style: style,
	})
}

func (svg *svgParser) parsePath(attrs map[string]string) {
	p, err := canvas.ParseSVGPath(attrs["d"])
	if err != nil {
		svg.setErr("bad path: %v", err)
		return
	}
	svg.doc.Shapes = append(svg.doc.Shapes, canvas.Shape{
		Path:  p,
		Style: svg.parseStyle(attrs),
	})
}

// parseStyle returns the style of the presentation attributes, with SVG defaults of a black fill and no stroke.
func (svg *svgParser) parseStyle(attrs map[string]string) canvas.Style {
	style := canvas.Style{
		Fill:        canvas.Black,
		Stroke:      canvas.Black,
		StrokeWidth: 1.0,
		NoStroke:    true,
	}
	if v, ok := attrs["fill"]; ok {
		if v == "none" {
			style.NoFill = true
		} else {
			style.Fill = svg.parseColor(v)
		}
	}
	if v, ok := attrs["fill-opacity"]; ok {
		style.Fill.A = svg.parseFloat(v)
	}
	if v, ok := attrs["stroke"]; ok && v != "none" {
		style.Stroke = svg.parseColor(v)
		style.NoStroke = false
	}
	if v, ok := attrs["stroke-opacity"]; ok {
		style.Stroke.A = svg.parseFloat(v)
	}
	if v, ok := attrs["stroke-width"]; ok {
		style.StrokeWidth = svg.parseFloat(v)
	}
	return style
}

var namedColors = map[string]canvas.Color{
	"black": canvas.Black,
	"white": canvas.White,
	"gray":  canvas.Gray,
	"red":   canvas.Red,
	"green": canvas.Green,
	"lime":  canvas.Lime,
	"blue":  canvas.Blue,
}

func (svg *svgParser) parseColor(v string) canvas.Color {
	v = strings.ToLower(strings.TrimSpace(v))
	if col, ok := namedColors[v]; ok {
		return col
	} else if 0 < len(v) && v[0] == '#' {
		h := v[1:]
		if len(h) == 3 {
			h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		}
		if b, err := hex.DecodeString(h); err == nil && len(b) == 3 {
			return canvas.Color{
				R: float64(b[0]) / 255.0,
				G: float64(b[1]) / 255.0,
				B: float64(b[2]) / 255.0,
				A: 1.0,
			}
		}
	}
	svg.setErr("unsupported color: %s", v)
	return canvas.Black
}
