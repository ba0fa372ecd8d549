package gcolor

import (
	"math"

	icolor "github.com/RustVis/jiao-sub000/internal/color"
)

// LerpGamma interpolates between c and other in RGB with gamma correction:
// each color channel is raised to gamma, interpolated, and raised back to
// 1/gamma. Alpha is interpolated linearly. t is clamped to [0, 1].
//
// A gamma of 1 is Lerp. Non-positive or NaN gamma also falls back to Lerp.
func (c Color) LerpGamma(other Color, t, gamma float64) Color {
	if !(gamma > 0) || gamma == 1 {
		return c.Lerp(other, t)
	}
	t = min(max(t, 0), 1)
	r0, g0, b0, a0 := c.GetRGBF()
	r1, g1, b1, a1 := other.GetRGBF()
	return FromRGBA(
		icolor.Quantize(exponential(r0, r1, t, gamma)),
		icolor.Quantize(exponential(g0, g1, t, gamma)),
		icolor.Quantize(exponential(b0, b1, t, gamma)),
		icolor.Quantize(linear(a0, a1, t)),
	)
}

// LerpHSV interpolates in HSV along the shorter hue arc, so 350° to 10°
// passes through 0°. When one endpoint has no hue the other endpoint's hue
// is used throughout; when neither has one the result has none.
// Saturation, value and alpha are interpolated linearly. t is clamped to
// [0, 1] and the result is an HSV color.
func (c Color) LerpHSV(other Color, t float64) Color {
	t = min(max(t, 0), 1)
	h0, s0, v0, a0 := c.GetHSVF()
	h1, s1, v1, a1 := other.GetHSVF()
	return Color{
		spec:  SpecHSV,
		alpha: icolor.Quantize(linear(a0, a1, t)),
		hsv: hsvValue{
			hue:        lerpHue(h0, h1, t),
			saturation: icolor.Quantize(linear(s0, s1, t)),
			value:      icolor.Quantize(linear(v0, v1, t)),
		},
	}
}

// LerpHSL is LerpHSV in the HSL model. The result is an HSL color.
func (c Color) LerpHSL(other Color, t float64) Color {
	t = min(max(t, 0), 1)
	h0, s0, l0, a0 := c.GetHSLF()
	h1, s1, l1, a1 := other.GetHSLF()
	return Color{
		spec:  SpecHSL,
		alpha: icolor.Quantize(linear(a0, a1, t)),
		hsl: hslValue{
			hue:        lerpHue(h0, h1, t),
			saturation: icolor.Quantize(linear(s0, s1, t)),
			lightness:  icolor.Quantize(linear(l0, l1, t)),
		},
	}
}

func linear(a, b, t float64) float64 {
	return a + (b-a)*t
}

func exponential(a, b, t, y float64) float64 {
	if a == b {
		return a
	}
	ay := math.Pow(a, y)
	return math.Pow(ay+t*(math.Pow(b, y)-ay), 1/y)
}

// lerpHue takes hues as fractions of a turn, -1 meaning undefined.
func lerpHue(f0, f1, t float64) hue {
	switch {
	case f0 < 0 && f1 < 0:
		return hue{}
	case f0 < 0:
		f0 = f1
	case f1 < 0:
		f1 = f0
	}
	a, b := f0*360, f1*360
	d := b - a
	if d > 180 || d < -180 {
		d -= 360 * math.Round(d/360)
	}
	h := math.Mod(a+d*t, 360)
	if h < 0 {
		h += 360
	}
	return definedHue(icolor.HueFromDegrees(h))
}
