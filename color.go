package gcolor

import (
	"fmt"

	icolor "github.com/RustVis/jiao-sub000/internal/color"
)

// Spec identifies the color model a Color is stored in.
type Spec uint8

// Supported color models. SpecRGB is the zero value.
const (
	SpecRGB Spec = iota
	SpecHSV
	SpecHSL
	SpecCMYK
)

// String returns the lowercase model name.
func (s Spec) String() string {
	switch s {
	case SpecRGB:
		return "rgb"
	case SpecHSV:
		return "hsv"
	case SpecHSL:
		return "hsl"
	case SpecCMYK:
		return "cmyk"
	default:
		return fmt.Sprintf("Spec(%d)", uint8(s))
	}
}

// ParseSpec resolves a model name as printed by Spec.String.
func ParseSpec(name string) (Spec, bool) {
	for _, s := range []Spec{SpecRGB, SpecHSV, SpecHSL, SpecCMYK} {
		if s.String() == name {
			return s, true
		}
	}
	return SpecRGB, false
}

// hue is an optional hue angle stored in hundredths of a degree.
// The zero value is the undefined hue of an achromatic color.
type hue struct {
	centi   uint16
	defined bool
}

func definedHue(centi uint16) hue { return hue{centi: centi, defined: true} }

// hueFromDegrees accepts -1 (undefined) or any non-negative number of
// degrees, which wraps into [0, 360).
func hueFromDegrees(deg int) (hue, error) {
	switch {
	case deg == -1:
		return hue{}, nil
	case deg < -1:
		return hue{}, outOfRange("hue", deg)
	}
	//nolint:gosec // G115: wrapped degrees are below 360
	return definedHue(uint16(icolor.WrapDegrees(deg) * icolor.HueScale)), nil
}

// hueFromFraction accepts -1.0 (undefined) or a fraction of a turn in
// [0, 1]. A full turn wraps to 0.
func hueFromFraction(f float64) (hue, error) {
	if icolor.FuzzyCompare(f, -1) {
		return hue{}, nil
	}
	if !icolor.InUnitRange(f) {
		return hue{}, outOfRange("hue", f)
	}
	return definedHue(icolor.HueFromFraction(f)), nil
}

func (h hue) degrees() int {
	if !h.defined {
		return -1
	}
	return int(h.centi) / icolor.HueScale
}

func (h hue) fraction() float64 {
	if !h.defined {
		return -1
	}
	return float64(h.centi) / icolor.HueTurn
}

type rgbValue struct {
	red, green, blue uint8
}

type hsvValue struct {
	hue        hue
	saturation uint8
	value      uint8
}

type hslValue struct {
	hue        hue
	saturation uint8
	lightness  uint8
}

type cmykValue struct {
	cyan, magenta, yellow, black uint8
}

// Color is an 8-bit color stored in exactly one of the RGB, HSV, HSL or
// CMYK models, plus an alpha channel.
//
// Color is a small value type; copies are independent. Two colors compare
// equal with == only when they are stored in the same model with the same
// components. The zero Color is transparent black in RGB.
type Color struct {
	spec  Spec
	alpha uint8
	rgb   rgbValue
	hsv   hsvValue
	hsl   hslValue
	cmyk  cmykValue
}

// Common colors.
var (
	Transparent = Color{}
	Black       = FromRGB(0, 0, 0)
	White       = FromRGB(255, 255, 255)
	Red         = FromRGB(255, 0, 0)
	Green       = FromRGB(0, 255, 0)
	Blue        = FromRGB(0, 0, 255)
	Yellow      = FromRGB(255, 255, 0)
	Cyan        = FromRGB(0, 255, 255)
	Magenta     = FromRGB(255, 0, 255)
	Gray        = FromRGB(128, 128, 128)
)

// FromRGB creates an opaque RGB color.
func FromRGB(r, g, b uint8) Color {
	return FromRGBA(r, g, b, icolor.MaxChannel)
}

// FromRGBA creates an RGB color with the given alpha.
func FromRGBA(r, g, b, a uint8) Color {
	return Color{spec: SpecRGB, alpha: a, rgb: rgbValue{red: r, green: g, blue: b}}
}

// FromHSV creates an HSV color. The hue is in degrees: -1 marks an
// achromatic color, and values of 360 or more wrap around.
func FromHSV(h int, s, v, a uint8) (Color, error) {
	hh, err := hueFromDegrees(h)
	if err != nil {
		return Color{}, err
	}
	return Color{spec: SpecHSV, alpha: a, hsv: hsvValue{hue: hh, saturation: s, value: v}}, nil
}

// FromHSL creates an HSL color. The hue follows the same rules as FromHSV.
func FromHSL(h int, s, l, a uint8) (Color, error) {
	hh, err := hueFromDegrees(h)
	if err != nil {
		return Color{}, err
	}
	return Color{spec: SpecHSL, alpha: a, hsl: hslValue{hue: hh, saturation: s, lightness: l}}, nil
}

// FromCMYK creates a CMYK color.
func FromCMYK(c, m, y, k, a uint8) Color {
	return Color{spec: SpecCMYK, alpha: a, cmyk: cmykValue{cyan: c, magenta: m, yellow: y, black: k}}
}

// FromRGBF creates an opaque RGB color from components in [0, 1].
func FromRGBF(r, g, b float64) (Color, error) {
	return FromRGBAF(r, g, b, 1)
}

// FromRGBAF creates an RGB color from components in [0, 1].
func FromRGBAF(r, g, b, a float64) (Color, error) {
	if err := checkUnit(component{"red", r}, component{"green", g}, component{"blue", b}, component{"alpha", a}); err != nil {
		return Color{}, err
	}
	q := icolor.ChannelsFToU8(icolor.ChannelsF{R: r, G: g, B: b, A: a})
	return FromRGBA(q.R, q.G, q.B, q.A), nil
}

// FromHSVF creates an HSV color from float components. The hue is a
// fraction of a full turn in [0, 1], or -1.0 for an achromatic color.
func FromHSVF(h, s, v, a float64) (Color, error) {
	hh, err := hueFromFraction(h)
	if err != nil {
		return Color{}, err
	}
	if err := checkUnit(component{"saturation", s}, component{"value", v}, component{"alpha", a}); err != nil {
		return Color{}, err
	}
	return Color{
		spec:  SpecHSV,
		alpha: icolor.Quantize(a),
		hsv:   hsvValue{hue: hh, saturation: icolor.Quantize(s), value: icolor.Quantize(v)},
	}, nil
}

// FromHSLF creates an HSL color from float components.
func FromHSLF(h, s, l, a float64) (Color, error) {
	hh, err := hueFromFraction(h)
	if err != nil {
		return Color{}, err
	}
	if err := checkUnit(component{"saturation", s}, component{"lightness", l}, component{"alpha", a}); err != nil {
		return Color{}, err
	}
	return Color{
		spec:  SpecHSL,
		alpha: icolor.Quantize(a),
		hsl:   hslValue{hue: hh, saturation: icolor.Quantize(s), lightness: icolor.Quantize(l)},
	}, nil
}

// FromCMYKF creates a CMYK color from components in [0, 1].
func FromCMYKF(c, m, y, k, a float64) (Color, error) {
	if err := checkUnit(component{"cyan", c}, component{"magenta", m}, component{"yellow", y},
		component{"black", k}, component{"alpha", a}); err != nil {
		return Color{}, err
	}
	return FromCMYK(icolor.Quantize(c), icolor.Quantize(m), icolor.Quantize(y), icolor.Quantize(k), icolor.Quantize(a)), nil
}

type component struct {
	name  string
	value float64
}

// checkUnit reports the first component outside [0, 1].
func checkUnit(cs ...component) error {
	for _, c := range cs {
		if !icolor.InUnitRange(c.value) {
			return outOfRange(c.name, c.value)
		}
	}
	return nil
}

// Spec returns the model the color is stored in.
func (c Color) Spec() Spec { return c.spec }
