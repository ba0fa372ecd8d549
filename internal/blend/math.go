// Package blend provides the integer math behind packed-pixel compositing.
//
// The div255 and div257 families avoid integer division by using shifts
// and addition. They back premultiplication of the packed ARGB and RGBA64
// forms and the 16-bit ↔ 8-bit channel mapping.
//
// References:
//   - Alpha blending without division: https://arxiv.org/abs/2202.02864
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// MulDiv255 multiplies two bytes and divides by 255, rounding to nearest.
//
// Formula: t = a*b + 128; (t + (t >> 8)) >> 8
//
// This is the rounding used when premultiplying an 8-bit channel by alpha.
func MulDiv255(a, b uint8) uint8 {
	t := uint32(a)*uint32(b) + 128
	return uint8((t + (t >> 8)) >> 8)
}

// Div257Floor divides x by 257, truncating. Valid for x < 65536+128.
//
// Formula: (x - (x >> 8)) >> 8
func Div257Floor(x uint32) uint8 {
	return uint8((x - (x >> 8)) >> 8)
}

// Div257 maps a 16-bit channel to 8 bits, rounding to nearest.
// It is the inverse of Expand8: Div257(Expand8(b)) == b for every b.
func Div257(x uint16) uint8 {
	return Div257Floor(uint32(x) + 128)
}

// Expand8 maps an 8-bit channel to 16 bits so that 0x00 becomes 0x0000 and
// 0xff becomes 0xffff (multiplication by 257).
func Expand8(b uint8) uint16 {
	return uint16(b)<<8 | uint16(b)
}

// MulDiv65535 multiplies two 16-bit channels and divides by 65535,
// rounding to nearest.
//
// Formula: x = a*b; (x + (x >> 16) + 0x8000) >> 16
func MulDiv65535(a, b uint16) uint16 {
	x := uint64(a) * uint64(b)
	return uint16((x + (x >> 16) + 0x8000) >> 16)
}

// Unpremultiply16 divides a premultiplied 16-bit channel by alpha, rounding
// to nearest. alpha must be non-zero.
func Unpremultiply16(c, alpha uint16) uint16 {
	a := uint32(alpha)
	v := (uint32(c)*0xffff + a/2) / a
	if v > 0xffff {
		return 0xffff
	}
	return uint16(v)
}

// Unpremultiply8 divides a premultiplied 8-bit channel by alpha, rounding
// to nearest. alpha must be non-zero.
func Unpremultiply8(c, alpha uint8) uint8 {
	a := uint32(alpha)
	v := (uint32(c)*0xff + a/2) / a
	if v > 0xff {
		return 0xff
	}
	return uint8(v)
}
