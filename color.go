package canvas2d

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
	"strings"
)

// RGBA is a non-premultiplied color with components in [0, 1]. It
// implements image/color.Color so it can be used anywhere the standard
// library expects a color.
type RGBA struct {
	R, G, B, A float64
}

var _ color.Color = RGBA{}

// RGBA implements color.Color, returning premultiplied 16-bit components
// as the interface requires.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	a = uint32(clamp01(c.A) * 0xffff)
	r = uint32(clamp01(c.R) * float64(a))
	g = uint32(clamp01(c.G) * float64(a))
	b = uint32(clamp01(c.B) * float64(a))
	return
}

// FromColor converts any color.Color into an RGBA.
func FromColor(c color.Color) RGBA {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return RGBA{}
	}
	return RGBA{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
		A: float64(a) / 0xffff,
	}
}

// RGB creates an opaque RGBA color from components in [0,1].
func RGB(r, g, b float64) RGBA { return RGBA{r, g, b, 1} }

// RGBA2 creates an RGBA color from components in [0,1].
func RGBA2(r, g, b, a float64) RGBA { return RGBA{r, g, b, a} }

// Lerp linearly interpolates between c and other in (non-premultiplied)
// sRGB space. Used directly by gradient color-stop interpolation per
// spec.md §9 Open Question (a).
func (c RGBA) Lerp(other RGBA, t float64) RGBA {
	return RGBA{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
		A: c.A + (other.A-c.A)*t,
	}
}

// Premultiply returns the premultiplied-alpha form of c.
func (c RGBA) Premultiply() RGBA {
	return RGBA{R: c.R * c.A, G: c.G * c.A, B: c.B * c.A, A: c.A}
}

// Unpremultiply returns the non-premultiplied form of a premultiplied c.
func (c RGBA) Unpremultiply() RGBA {
	if c.A <= 0 {
		return RGBA{}
	}
	return RGBA{R: c.R / c.A, G: c.G / c.A, B: c.B / c.A, A: c.A}
}

// WithAlpha returns c with its alpha replaced.
func (c RGBA) WithAlpha(a float64) RGBA { return RGBA{c.R, c.G, c.B, a} }

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Hex parses a CSS-style hex color ("#rgb", "#rgba", "#rrggbb",
// "#rrggbbaa", with or without the leading '#'). Invalid input yields
// opaque black, matching the teacher's permissive convenience API.
func Hex(s string) RGBA {
	c, err := parseHex(s)
	if err != nil {
		return Black
	}
	return c
}

func parseHex(s string) (RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	expand := func(c byte) string { return string([]byte{c, c}) }

	var rs, gs, bs, as string
	switch len(s) {
	case 3:
		rs, gs, bs, as = expand(s[0]), expand(s[1]), expand(s[2]), "ff"
	case 4:
		rs, gs, bs, as = expand(s[0]), expand(s[1]), expand(s[2]), expand(s[3])
	case 6:
		rs, gs, bs, as = s[0:2], s[2:4], s[4:6], "ff"
	case 8:
		rs, gs, bs, as = s[0:2], s[2:4], s[4:6], s[6:8]
	default:
		return RGBA{}, fmt.Errorf("canvas2d: invalid hex color %q", s)
	}
	r, err := strconv.ParseUint(rs, 16, 8)
	if err != nil {
		return RGBA{}, err
	}
	g, err := strconv.ParseUint(gs, 16, 8)
	if err != nil {
		return RGBA{}, err
	}
	b, err := strconv.ParseUint(bs, 16, 8)
	if err != nil {
		return RGBA{}, err
	}
	a, err := strconv.ParseUint(as, 16, 8)
	if err != nil {
		return RGBA{}, err
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

// HSL creates an opaque RGBA from hue (degrees), saturation and lightness
// (both in [0,1]).
func HSL(h, s, l float64) RGBA {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	c := (1 - math.Abs(2*l-1)) * s
	x := c * (1 - math.Abs(math.Mod(h/60, 2)-1))
	m := l - c/2

	var r, g, b float64
	switch {
	case h < 60:
		r, g, b = c, x, 0
	case h < 120:
		r, g, b = x, c, 0
	case h < 180:
		r, g, b = 0, c, x
	case h < 240:
		r, g, b = 0, x, c
	case h < 300:
		r, g, b = x, 0, c
	default:
		r, g, b = c, 0, x
	}
	return RGBA{R: r + m, G: g + m, B: b + m, A: 1}
}

// Named colors. Green is full-intensity (0, 1, 0), the color CSS calls
// "lime"; CSS "green" is #008000.
var (
	Black       = RGBA{0, 0, 0, 1}
	White       = RGBA{1, 1, 1, 1}
	Red         = RGBA{1, 0, 0, 1}
	Green       = RGBA{0, 1, 0, 1}
	Blue        = RGBA{0, 0, 1, 1}
	Yellow      = RGBA{1, 1, 0, 1}
	Cyan        = RGBA{0, 1, 1, 1}
	Magenta     = RGBA{1, 0, 1, 1}
	Transparent = RGBA{0, 0, 0, 0}
)
