// Package colorcodec packs three 8-bit color components into a single ARGB
// value and back, under either an RGB or an HSB interpretation.
//
// Hue, saturation and brightness are all expressed on a 0..255 scale; hue 255
// is a full turn and wraps back to red.
package colorcodec

import (
	"fmt"
	"math"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Mode selects how the three components of a color are interpreted.
type Mode int

const (
	ModeRGB Mode = iota + 1
	ModeHSB
)

// Valid reports whether m is one of the supported modes.
func (m Mode) Valid() bool {
	return m == ModeRGB || m == ModeHSB
}

// Letters returns the one-letter component labels for the mode.
func (m Mode) Letters() [3]string {
	switch m {
	case ModeRGB:
		return [3]string{"R", "G", "B"}
	case ModeHSB:
		return [3]string{"H", "S", "B"}
	}
	return [3]string{}
}

func (m Mode) String() string {
	switch m {
	case ModeRGB:
		return "rgb"
	case ModeHSB:
		return "hsb"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Color is a packed 0xAARRGGBB value. Colors produced by this package are
// always opaque.
type Color uint32

const opaque Color = 0xFF000000

// FromRGB packs 8-bit channels into an opaque Color.
func FromRGB(r, g, b uint8) Color {
	return opaque | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// RGB returns the 8-bit red, green and blue channels.
func (c Color) RGB() (r, g, b uint8) {
	return uint8(c >> 16), uint8(c >> 8), uint8(c)
}

// Hex renders the color as #rrggbb.
func (c Color) Hex() string {
	return c.colorful().Hex()
}

func (c Color) colorful() colorful.Color {
	r, g, b := c.RGB()
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// Codec converts between component triples and packed colors.
type Codec interface {
	Pack(c1, c2, c3 int, mode Mode) Color
	Unpack(c Color, mode Mode) (c1, c2, c3 int)
}

type defaultCodec struct{}

var std Codec = defaultCodec{}

// Default returns the stateless codec used when callers do not supply one.
func Default() Codec {
	return std
}

// Pack clamps each component to [0, 255] before encoding. Unknown modes
// encode as opaque black.
func (defaultCodec) Pack(c1, c2, c3 int, mode Mode) Color {
	c1, c2, c3 = clampByte(c1), clampByte(c2), clampByte(c3)
	switch mode {
	case ModeRGB:
		return FromRGB(uint8(c1), uint8(c2), uint8(c3))
	case ModeHSB:
		hue := math.Mod(float64(c1)/255*360, 360)
		col := colorful.Hsv(hue, float64(c2)/255, float64(c3)/255).Clamped()
		r, g, b := col.RGB255()
		return FromRGB(r, g, b)
	}
	return opaque
}

// Unpack returns components that Pack maps back to exactly c whenever c is
// a color Pack can produce. Other colors get the nearest rounded components.
func (codec defaultCodec) Unpack(c Color, mode Mode) (int, int, int) {
	switch mode {
	case ModeRGB:
		r, g, b := c.RGB()
		return int(r), int(g), int(b)
	case ModeHSB:
		h, s, v := c.colorful().Hsv()
		hue := scaleByte(h / 360)
		if hue == 255 {
			hue = 0
		}
		sat, val := scaleByte(s), scaleByte(v)
		if hh, ss, ok := codec.settleHSB(c, hue, sat, val); ok {
			return hh, ss, val
		}
		return hue, sat, val
	}
	return 0, 0, 0
}

// settleHSB looks for the hue and saturation nearest to (hue, sat) that pack
// back to exactly c at brightness val. Rounding through 8-bit channels loses
// hue precision for dull colors, so the plain conversion can drift.
func (codec defaultCodec) settleHSB(c Color, hue, sat, val int) (int, int, bool) {
	if codec.Pack(hue, sat, val, ModeHSB) == c {
		return hue, sat, true
	}
	r, g, b := c.RGB()
	low := min(r, g, b)
	for _, ss := range nearest(sat, 256, false) {
		// the smallest channel depends only on saturation and brightness
		if _, p, _ := codec.Pack(0, ss, val, ModeHSB).RGB(); p != low {
			continue
		}
		for _, hh := range nearest(hue, 255, true) {
			if codec.Pack(hh, ss, val, ModeHSB) == c {
				return hh, ss, true
			}
		}
	}
	return 0, 0, false
}

// nearest lists 0..n-1 ordered by distance from start. Hue distance wraps
// around the circle.
func nearest(start, n int, wrap bool) []int {
	out := make([]int, 0, n)
	out = append(out, start)
	for d := 1; len(out) < n; d++ {
		up, down := start+d, start-d
		if wrap {
			up, down = up%n, (down+n)%n
		}
		if up < n {
			out = append(out, up)
		}
		if len(out) < n && down >= 0 && down != up {
			out = append(out, down)
		}
	}
	return out
}
