package lightshow

import (
	"fmt"
	"strconv"

	"github.com/lucasb-eyer/go-colorful"
)

// Layout is the number of colour channels a strip carries per pixel.
type Layout int

const (
	LayoutRGB  Layout = 3
	LayoutRGBW Layout = 4
)

func (l Layout) String() string {
	switch l {
	case LayoutRGB:
		return "rgb"
	case LayoutRGBW:
		return "rgbw"
	}
	return "N/A"
}

// Pixel is the intended state of one LED. W is only meaningful on RGBW strips.
type Pixel struct {
	R, G, B, W uint8
}

var Black = Pixel{}

func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

func RGBW(r, g, b, w uint8) Pixel {
	return Pixel{R: r, G: g, B: b, W: w}
}

// FromUint32 unpacks a 0xWWRRGGBB colour.
func FromUint32(c uint32) Pixel {
	return Pixel{
		R: uint8(c >> 16),
		G: uint8(c >> 8),
		B: uint8(c),
		W: uint8(c >> 24),
	}
}

// Uint32 packs the pixel as 0xWWRRGGBB, the layout used by the ws281x driver.
func (p Pixel) Uint32() uint32 {
	return uint32(p.W)<<24 | uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

func (p Pixel) String() string {
	if p.W != 0 {
		return fmt.Sprintf("#%02x%02x%02x%02x", p.R, p.G, p.B, p.W)
	}
	return fmt.Sprintf("#%02x%02x%02x", p.R, p.G, p.B)
}

// Scaled gets the same colour with every channel multiplied by f, truncated.
// f is clamped to [0, 1].
func (p Pixel) Scaled(f float64) Pixel {
	if f >= 1 {
		return p
	}
	if f <= 0 {
		return Black
	}
	scale := func(c uint8) uint8 {
		return uint8(float64(c) * f)
	}
	return Pixel{R: scale(p.R), G: scale(p.G), B: scale(p.B), W: scale(p.W)}
}

// lerp moves every channel of from towards to by scale, using the truncated
// delta so that a scale of 0 always yields from exactly.
func lerp(from, to Pixel, scale float64) Pixel {
	return Pixel{
		R: lerpChannel(from.R, to.R, scale),
		G: lerpChannel(from.G, to.G, scale),
		B: lerpChannel(from.B, to.B, scale),
		W: lerpChannel(from.W, to.W, scale),
	}
}

func lerpChannel(from, to uint8, scale float64) uint8 {
	v := int(from) + int(float64(int(to)-int(from))*scale)
	if v < 0 {
		return 0
	}
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbww". The leading hash is
// optional.
func ParseHex(s string) (Pixel, error) {
	if len(s) > 0 && s[0] != '#' {
		s = "#" + s
	}

	var w uint8
	if len(s) == 9 {
		v, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return Black, fmt.Errorf("invalid white channel in %q: %w", s, err)
		}
		w = uint8(v)
		s = s[:7]
	}

	if len(s) != 4 && len(s) != 7 {
		return Black, fmt.Errorf("invalid colour %q", s)
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return Black, err
	}
	r, g, b := c.RGB255()
	return RGBW(r, g, b, w), nil
}
