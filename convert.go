package gcolor

import (
	"math"

	icolor "github.com/RustVis/jiao-sub000/internal/color"
)

// ConvertTo returns the color re-expressed in the given model. Alpha is
// carried over unchanged. Converting to the current model, or to an unknown
// one, returns the color as is.
func (c Color) ConvertTo(s Spec) Color {
	switch s {
	case SpecRGB:
		return c.ToRGB()
	case SpecHSV:
		return c.ToHSV()
	case SpecHSL:
		return c.ToHSL()
	case SpecCMYK:
		return c.ToCMYK()
	default:
		return c
	}
}

// ToRGB returns the color in the RGB model.
func (c Color) ToRGB() Color {
	var v rgbValue
	switch c.spec {
	case SpecHSV:
		v = hsvToRGB(c.hsv)
	case SpecHSL:
		v = hslToRGB(c.hsl)
	case SpecCMYK:
		v = cmykToRGB(c.cmyk)
	default:
		return c
	}
	return Color{spec: SpecRGB, alpha: c.alpha, rgb: v}
}

// ToHSV returns the color in the HSV model. Other models pass through RGB.
func (c Color) ToHSV() Color {
	if c.spec == SpecHSV {
		return c
	}
	return Color{spec: SpecHSV, alpha: c.alpha, hsv: rgbToHSV(c.ToRGB().rgb)}
}

// ToHSL returns the color in the HSL model. Other models pass through RGB.
func (c Color) ToHSL() Color {
	if c.spec == SpecHSL {
		return c
	}
	return Color{spec: SpecHSL, alpha: c.alpha, hsl: rgbToHSL(c.ToRGB().rgb)}
}

// ToCMYK returns the color in the CMYK model. Other models pass through RGB.
func (c Color) ToCMYK() Color {
	if c.spec == SpecCMYK {
		return c
	}
	return Color{spec: SpecCMYK, alpha: c.alpha, cmyk: rgbToCMYK(c.ToRGB().rgb)}
}

func (v rgbValue) unit() (r, g, b float64) {
	return icolor.Unit(v.red), icolor.Unit(v.green), icolor.Unit(v.blue)
}

func quantizeRGB(r, g, b float64) rgbValue {
	return rgbValue{red: icolor.Quantize(r), green: icolor.Quantize(g), blue: icolor.Quantize(b)}
}

// chromaticHue computes the hue of a color whose channel spread delta is
// non-zero. Ties between equal maxima resolve red, then green, then blue.
func chromaticHue(r, g, b, maxC, delta float64) hue {
	var h float64
	switch {
	case icolor.FuzzyCompare(r, maxC):
		h = (g - b) / delta
	case icolor.FuzzyCompare(g, maxC):
		h = 2 + (b-r)/delta
	default:
		h = 4 + (r-g)/delta
	}
	h *= 60
	if h < 0 {
		h += 360
	}
	return definedHue(icolor.HueFromDegrees(h))
}

func rgbToHSV(v rgbValue) hsvValue {
	r, g, b := v.unit()
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC

	out := hsvValue{value: icolor.Quantize(maxC)}
	if icolor.FuzzyIsZero(delta) {
		return out
	}
	out.saturation = icolor.Quantize(delta / maxC)
	out.hue = chromaticHue(r, g, b, maxC, delta)
	return out
}

func rgbToHSL(v rgbValue) hslValue {
	r, g, b := v.unit()
	maxC := math.Max(r, math.Max(g, b))
	minC := math.Min(r, math.Min(g, b))
	delta := maxC - minC
	l := (maxC + minC) / 2

	out := hslValue{lightness: icolor.Quantize(l)}
	if icolor.FuzzyIsZero(delta) {
		return out
	}
	if l < 0.5 {
		out.saturation = icolor.Quantize(delta / (maxC + minC))
	} else {
		out.saturation = icolor.Quantize(delta / (2 - maxC - minC))
	}
	out.hue = chromaticHue(r, g, b, maxC, delta)
	return out
}

// rgbToCMYK maps any color with a zero channel to pure black ink.
func rgbToCMYK(v rgbValue) cmykValue {
	if v.red == 0 || v.green == 0 || v.blue == 0 {
		return cmykValue{black: icolor.MaxChannel}
	}
	r, g, b := v.unit()
	c, m, y := 1-r, 1-g, 1-b
	k := math.Min(c, math.Min(m, y))
	keep := 1 - k
	return cmykValue{
		cyan:    icolor.Quantize((c - k) / keep),
		magenta: icolor.Quantize((m - k) / keep),
		yellow:  icolor.Quantize((y - k) / keep),
		black:   icolor.Quantize(k),
	}
}

func cmykToRGB(v cmykValue) rgbValue {
	c, m, y, k := icolor.Unit(v.cyan), icolor.Unit(v.magenta), icolor.Unit(v.yellow), icolor.Unit(v.black)
	keep := 1 - k
	return quantizeRGB(
		1-(c*keep+k),
		1-(m*keep+k),
		1-(y*keep+k),
	)
}

func hsvToRGB(v hsvValue) rgbValue {
	s, val := icolor.Unit(v.saturation), icolor.Unit(v.value)
	if v.saturation == 0 || !v.hue.defined {
		return quantizeRGB(val, val, val)
	}

	h := float64(v.hue.centi) / (60 * icolor.HueScale)
	sector := int(h)
	f := h - float64(sector)
	p := val * (1 - s)

	if sector&1 == 1 {
		q := val * (1 - s*f)
		switch sector {
		case 1:
			return quantizeRGB(q, val, p)
		case 3:
			return quantizeRGB(p, q, val)
		default:
			return quantizeRGB(val, p, q)
		}
	}

	t := val * (1 - s*(1-f))
	switch sector {
	case 0:
		return quantizeRGB(val, t, p)
	case 2:
		return quantizeRGB(p, val, t)
	default:
		return quantizeRGB(t, p, val)
	}
}

func hslToRGB(v hslValue) rgbValue {
	s, l := icolor.Unit(v.saturation), icolor.Unit(v.lightness)
	if v.saturation == 0 || !v.hue.defined {
		return quantizeRGB(l, l, l)
	}
	if v.lightness == 0 {
		return rgbValue{}
	}

	var hi float64
	if l < 0.5 {
		hi = l * (1 + s)
	} else {
		hi = l + s - l*s
	}
	lo := 2*l - hi
	h := v.hue.fraction()

	return quantizeRGB(
		hueToChannel(lo, hi, h+1.0/3),
		hueToChannel(lo, hi, h),
		hueToChannel(lo, hi, h-1.0/3),
	)
}

// hueToChannel evaluates one RGB channel of an HSL color from the
// piecewise-linear ramp between lo and hi.
func hueToChannel(lo, hi, t float64) float64 {
	switch {
	case t < 0:
		t++
	case t > 1:
		t--
	}
	switch {
	case 6*t < 1:
		return lo + (hi-lo)*6*t
	case 2*t < 1:
		return hi
	case 3*t < 2:
		return lo + (hi-lo)*(2.0/3-t)*6
	default:
		return lo
	}
}
