package gcolor

import (
	"image/color"

	icolor "github.com/RustVis/jiao-sub000/internal/color"
)

// RGBA implements color.Color. It returns alpha-premultiplied 16-bit
// channels computed from the RGB projection.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8, a8 := c.GetRGB()
	return color.NRGBA{R: r8, G: g8, B: b8, A: a8}.RGBA()
}

// NRGBA returns the RGB projection as a color.NRGBA.
func (c Color) NRGBA() color.NRGBA {
	r, g, b, a := c.GetRGB()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

// Model converts any color.Color into a Color.
var Model color.Model = color.ModelFunc(model)

func model(c color.Color) color.Color {
	return FromColor(c)
}

// FromColor converts a standard color.Color to an RGB Color.
// A Color is returned unchanged.
func FromColor(c color.Color) Color {
	switch v := c.(type) {
	case Color:
		return v
	case color.NRGBA:
		return FromRGBA(v.R, v.G, v.B, v.A)
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA) //nolint:errcheck // NRGBAModel always yields NRGBA
	return FromRGBA(n.R, n.G, n.B, n.A)
}

// Lerp interpolates linearly between c and other in RGB, including alpha.
// t is clamped to [0, 1]; the result is an RGB color.
func (c Color) Lerp(other Color, t float64) Color {
	t = min(max(t, 0), 1)
	r0, g0, b0, a0 := c.GetRGBF()
	r1, g1, b1, a1 := other.GetRGBF()
	return FromRGBA(
		icolor.Quantize(r0+(r1-r0)*t),
		icolor.Quantize(g0+(g1-g0)*t),
		icolor.Quantize(b0+(b1-b0)*t),
		icolor.Quantize(a0+(a1-a0)*t),
	)
}

// Premultiply returns the RGB projection with the color channels scaled
// by alpha.
func (c Color) Premultiply() Color {
	return FromARGB(c.ARGB().Premultiply())
}
