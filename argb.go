package gcolor

import (
	"github.com/RustVis/jiao-sub000/internal/blend"
)

// ARGB is a color packed into 32 bits as 0xAARRGGBB.
type ARGB uint32

// NewRGB packs an opaque color.
func NewRGB(r, g, b uint8) ARGB {
	return NewRGBA(r, g, b, 0xff)
}

// NewRGBA packs a color with alpha.
func NewRGBA(r, g, b, a uint8) ARGB {
	return ARGB(uint32(a)<<24 | uint32(r)<<16 | uint32(g)<<8 | uint32(b))
}

// Alpha returns the alpha byte.
func (p ARGB) Alpha() uint8 { return uint8(p >> 24) }

// Red returns the red byte.
func (p ARGB) Red() uint8 { return uint8(p >> 16) }

// Green returns the green byte.
func (p ARGB) Green() uint8 { return uint8(p >> 8) }

// Blue returns the blue byte.
func (p ARGB) Blue() uint8 { return uint8(p) }

// Opaque returns p with alpha forced to 0xff.
func (p ARGB) Opaque() ARGB { return p | 0xff000000 }

// Gray returns the weighted luminance (11*r + 16*g + 5*b) / 32.
func (p ARGB) Gray() uint8 {
	//nolint:gosec // G115: the weights sum to 32, so the result fits in a byte
	return uint8((uint32(p.Red())*11 + uint32(p.Green())*16 + uint32(p.Blue())*5) / 32)
}

// IsGray reports whether all three color channels are equal.
func (p ARGB) IsGray() bool {
	return p.Red() == p.Green() && p.Green() == p.Blue()
}

// Premultiply scales the color channels by alpha.
func (p ARGB) Premultiply() ARGB {
	a := p.Alpha()
	switch a {
	case 0xff:
		return p
	case 0:
		return 0
	}
	return NewRGBA(blend.MulDiv255(p.Red(), a), blend.MulDiv255(p.Green(), a), blend.MulDiv255(p.Blue(), a), a)
}

// Uint32 returns the packed value.
func (p ARGB) Uint32() uint32 { return uint32(p) }

// RGB returns the color packed as an opaque ARGB value.
func (c Color) RGB() ARGB {
	r, g, b, _ := c.GetRGB()
	return NewRGB(r, g, b)
}

// ARGB returns the color packed with its alpha.
func (c Color) ARGB() ARGB {
	r, g, b, a := c.GetRGB()
	return NewRGBA(r, g, b, a)
}

// FromARGB unpacks an ARGB value into an RGB color.
func FromARGB(p ARGB) Color {
	return FromRGBA(p.Red(), p.Green(), p.Blue(), p.Alpha())
}

// SetARGB replaces the color with the unpacked RGB color.
func (c *Color) SetARGB(p ARGB) { *c = FromARGB(p) }
