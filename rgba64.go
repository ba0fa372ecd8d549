package gcolor

import (
	"github.com/RustVis/jiao-sub000/internal/blend"
)

// RGBA64 is a color packed into 64 bits with 16 bits per channel.
// Red occupies the lowest 16 bits, followed by green, blue and alpha.
type RGBA64 uint64

const (
	redShift   = 0
	greenShift = 16
	blueShift  = 32
	alphaShift = 48
)

// NewRGBA64 packs four 16-bit channels.
func NewRGBA64(r, g, b, a uint16) RGBA64 {
	return RGBA64(uint64(r)<<redShift | uint64(g)<<greenShift | uint64(b)<<blueShift | uint64(a)<<alphaShift)
}

// RGBA64From8 widens four 8-bit channels so that 0xff maps to 0xffff.
func RGBA64From8(r, g, b, a uint8) RGBA64 {
	return NewRGBA64(blend.Expand8(r), blend.Expand8(g), blend.Expand8(b), blend.Expand8(a))
}

// RGBA64FromARGB widens a packed 8-bit color.
func RGBA64FromARGB(p ARGB) RGBA64 {
	return RGBA64From8(p.Red(), p.Green(), p.Blue(), p.Alpha())
}

func (p RGBA64) channel(shift uint) uint16 { return uint16(p >> shift) }

func (p *RGBA64) setChannel(shift uint, v uint16) {
	*p = *p&^(RGBA64(0xffff)<<shift) | RGBA64(v)<<shift
}

// Red returns the 16-bit red channel.
func (p RGBA64) Red() uint16 { return p.channel(redShift) }

// Green returns the 16-bit green channel.
func (p RGBA64) Green() uint16 { return p.channel(greenShift) }

// Blue returns the 16-bit blue channel.
func (p RGBA64) Blue() uint16 { return p.channel(blueShift) }

// Alpha returns the 16-bit alpha channel.
func (p RGBA64) Alpha() uint16 { return p.channel(alphaShift) }

// SetRed replaces the red channel.
func (p *RGBA64) SetRed(v uint16) { p.setChannel(redShift, v) }

// SetGreen replaces the green channel.
func (p *RGBA64) SetGreen(v uint16) { p.setChannel(greenShift, v) }

// SetBlue replaces the blue channel.
func (p *RGBA64) SetBlue(v uint16) { p.setChannel(blueShift, v) }

// SetAlpha replaces the alpha channel.
func (p *RGBA64) SetAlpha(v uint16) { p.setChannel(alphaShift, v) }

// Red8 returns the red channel narrowed to 8 bits.
func (p RGBA64) Red8() uint8 { return blend.Div257(p.Red()) }

// Green8 returns the green channel narrowed to 8 bits.
func (p RGBA64) Green8() uint8 { return blend.Div257(p.Green()) }

// Blue8 returns the blue channel narrowed to 8 bits.
func (p RGBA64) Blue8() uint8 { return blend.Div257(p.Blue()) }

// Alpha8 returns the alpha channel narrowed to 8 bits.
func (p RGBA64) Alpha8() uint8 { return blend.Div257(p.Alpha()) }

// IsOpaque reports whether alpha is 0xffff.
func (p RGBA64) IsOpaque() bool { return p.Alpha() == 0xffff }

// IsTransparent reports whether alpha is zero.
func (p RGBA64) IsTransparent() bool { return p.Alpha() == 0 }

// Premultiplied scales the color channels by alpha.
func (p RGBA64) Premultiplied() RGBA64 {
	switch {
	case p.IsOpaque():
		return p
	case p.IsTransparent():
		return 0
	}
	a := p.Alpha()
	return NewRGBA64(blend.MulDiv65535(p.Red(), a), blend.MulDiv65535(p.Green(), a), blend.MulDiv65535(p.Blue(), a), a)
}

// Unpremultiplied divides the color channels by alpha.
// Opaque and fully transparent values are returned unchanged.
func (p RGBA64) Unpremultiplied() RGBA64 {
	if p.IsOpaque() || p.IsTransparent() {
		return p
	}
	a := p.Alpha()
	return NewRGBA64(blend.Unpremultiply16(p.Red(), a), blend.Unpremultiply16(p.Green(), a), blend.Unpremultiply16(p.Blue(), a), a)
}

// ARGB narrows the value to a packed 8-bit color.
func (p RGBA64) ARGB() ARGB {
	return NewRGBA(p.Red8(), p.Green8(), p.Blue8(), p.Alpha8())
}

// RGB16 packs the color channels as 5:6:5, dropping alpha.
func (p RGBA64) RGB16() uint16 {
	return p.Red()&0xf800 | (p.Green()>>10)<<5 | p.Blue()>>11
}

// Uint64 returns the packed value.
func (p RGBA64) Uint64() uint64 { return uint64(p) }

// RGBA64 returns the color widened to 16 bits per channel.
func (c Color) RGBA64() RGBA64 {
	r, g, b, a := c.GetRGB()
	return RGBA64From8(r, g, b, a)
}

// FromRGBA64 narrows a 16-bit value into an RGB color.
func FromRGBA64(p RGBA64) Color {
	return FromRGBA(p.Red8(), p.Green8(), p.Blue8(), p.Alpha8())
}

// SetRGBA64 replaces the color with the narrowed RGB color.
func (c *Color) SetRGBA64(p RGBA64) { *c = FromRGBA64(p) }
