package preview

import (
	"errors"
	"fmt"
	"image/color"
	"strconv"
)

// ErrInvalidColor is returned by ParseHex for malformed colour strings.
var ErrInvalidColor = errors.New("preview: invalid hex color")

// RGB is a colour with components in [0, 1].
type RGB struct {
	R, G, B float64
}

// ParseHex parses "#RGB" or "#RRGGBB" (the leading '#' is optional).
func ParseHex(hex string) (RGB, error) {
	s := hex
	if s != "" && s[0] == '#' {
		s = s[1:]
	}

	var r, g, b uint64
	var err error
	switch len(s) {
	case 3:
		r, g, b, err = parse3(s)
		r, g, b = r*17, g*17, b*17
	case 6:
		r, g, b, err = parse6(s)
	default:
		err = strconv.ErrSyntax
	}
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	return RGB{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
	}, nil
}

func parse3(s string) (r, g, b uint64, err error) {
	if r, err = strconv.ParseUint(s[0:1], 16, 8); err != nil {
		return
	}
	if g, err = strconv.ParseUint(s[1:2], 16, 8); err != nil {
		return
	}
	b, err = strconv.ParseUint(s[2:3], 16, 8)
	return
}

func parse6(s string) (r, g, b uint64, err error) {
	if r, err = strconv.ParseUint(s[0:2], 16, 8); err != nil {
		return
	}
	if g, err = strconv.ParseUint(s[2:4], 16, 8); err != nil {
		return
	}
	b, err = strconv.ParseUint(s[4:6], 16, 8)
	return
}

// Lerp interpolates from c to other by t.
func (c RGB) Lerp(other RGB, t float64) RGB {
	return RGB{
		R: c.R + (other.R-c.R)*t,
		G: c.G + (other.G-c.G)*t,
		B: c.B + (other.B-c.B)*t,
	}
}

// NRGBA converts c with alpha a to a non-premultiplied 8-bit colour.
func (c RGB) NRGBA(a float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(a * 255)),
	}
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x + 0.5
}
