package canvas

import (
	"encoding/hex"
	"fmt"
	"image/color"
	"math"
)

// Color is a non-premultiplied color with components in the range [0,1]. It implements color.Color.
type Color struct {
	R, G, B, A float64
}

// Named colors.
var (
	Transparent = Color{0.0, 0.0, 0.0, 0.0}
	Black       = Color{0.0, 0.0, 0.0, 1.0}
	White       = Color{1.0, 1.0, 1.0, 1.0}
	Gray        = Color{0.5, 0.5, 0.5, 1.0}
	Red         = Color{1.0, 0.0, 0.0, 1.0}
	Green       = Color{0.0, 0.5, 0.0, 1.0}
	Lime        = Color{0.0, 1.0, 0.0, 1.0}
	Blue        = Color{0.0, 0.0, 1.0, 1.0}
	Yellow      = Color{1.0, 1.0, 0.0, 1.0}
	Magenta     = Color{1.0, 0.0, 1.0, 1.0}
	Cyan        = Color{0.0, 1.0, 1.0, 1.0}
)

// GrayLevel returns an opaque gray color of intensity v in [0,1].
func GrayLevel(v float64) Color {
	v = clamp01(v)
	return Color{v, v, v, 1.0}
}

// RGB returns an opaque color with components in [0,1].
func RGB(r, g, b float64) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b), 1.0}
}

// RGBA returns a color with components in [0,1].
func RGBA(r, g, b, a float64) Color {
	return Color{clamp01(r), clamp01(g), clamp01(b), clamp01(a)}
}

// FromColor converts any color.Color to a Color.
func FromColor(col color.Color) Color {
	if c, ok := col.(Color); ok {
		return c
	}
	r, g, b, a := col.RGBA()
	if a == 0 {
		return Transparent
	}
	return Color{
		float64(r) / float64(a),
		float64(g) / float64(a),
		float64(b) / float64(a),
		float64(a) / 0xffff,
	}
}

// ScaledColor resolves color arguments given in the range [0,scale] to a Color. One argument is a gray level, two are gray and alpha, three are RGB and four are RGBA. Values are clamped to the valid range.
func ScaledColor(scale float64, c ...float64) (Color, error) {
	if !(0.0 < scale) || math.IsInf(scale, 0) {
		return Color{}, fmt.Errorf("color scale %v: %w", scale, ErrInvalidArgument)
	}
	c = append([]float64(nil), c...)
	for i := range c {
		c[i] /= scale
	}
	switch len(c) {
	case 1:
		return GrayLevel(c[0]), nil
	case 2:
		v := clamp01(c[0])
		return Color{v, v, v, clamp01(c[1])}, nil
	case 3:
		return RGB(c[0], c[1], c[2]), nil
	case 4:
		return RGBA(c[0], c[1], c[2], c[3]), nil
	}
	return Color{}, fmt.Errorf("color takes 1 to 4 components, got %d: %w", len(c), ErrInvalidArgument)
}

// RGBA returns the alpha-premultiplied 16-bit components, implementing color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	alpha := clamp01(c.A)
	a = uint32(alpha*0xffff + 0.5)
	r = uint32(clamp01(c.R)*alpha*0xffff + 0.5)
	g = uint32(clamp01(c.G)*alpha*0xffff + 0.5)
	b = uint32(clamp01(c.B)*alpha*0xffff + 0.5)
	return
}

// Bytes returns the non-premultiplied 8-bit components.
func (c Color) Bytes() (r, g, b, a uint8) {
	return toByte(c.R), toByte(c.G), toByte(c.B), toByte(c.A)
}

func toByte(f float64) uint8 {
	return uint8(clamp01(f)*255.0 + 0.5)
}

// Opaque is true if the color has full alpha.
func (c Color) Opaque() bool {
	return toByte(c.A) == 255
}

// Equals returns true if both colors are the same at 8-bit precision.
func (c Color) Equals(d Color) bool {
	r0, g0, b0, a0 := c.Bytes()
	r1, g1, b1, a1 := d.Bytes()
	return r0 == r1 && g0 == g1 && b0 == b1 && a0 == a1
}

// Hex returns the CSS hexadecimal notation of the color, ignoring alpha.
func (c Color) Hex() string {
	r, g, b, _ := c.Bytes()
	buf := make([]byte, 7)
	buf[0] = '#'
	hex.Encode(buf[1:], []byte{r, g, b})
	return string(buf)
}

// CSS returns the CSS notation of the color, using rgba() for translucent colors.
func (c Color) CSS() string {
	if c.Opaque() {
		return c.Hex()
	}
	r, g, b, a := c.Bytes()
	return fmt.Sprintf("rgba(%d,%d,%d,%.*g)", r, g, b, 5, float64(a)/255.0)
}

func (c Color) String() string {
	return c.CSS()
}
