package gcolor

import (
	icolor "github.com/RustVis/jiao-sub000/internal/color"
)

// Integer getters read the stored model directly when it owns the channel
// and otherwise convert a copy first. Float getters divide by 255, or by
// 36000 for hue, which yields -1 when the hue is undefined.

// Alpha returns the alpha channel.
func (c Color) Alpha() uint8 { return c.alpha }

// AlphaF returns the alpha channel in [0, 1].
func (c Color) AlphaF() float64 { return icolor.Unit(c.alpha) }

// Red returns the red channel.
func (c Color) Red() uint8 { return c.ToRGB().rgb.red }

// Green returns the green channel.
func (c Color) Green() uint8 { return c.ToRGB().rgb.green }

// Blue returns the blue channel.
func (c Color) Blue() uint8 { return c.ToRGB().rgb.blue }

// RedF returns the red channel in [0, 1].
func (c Color) RedF() float64 { return icolor.Unit(c.Red()) }

// GreenF returns the green channel in [0, 1].
func (c Color) GreenF() float64 { return icolor.Unit(c.Green()) }

// BlueF returns the blue channel in [0, 1].
func (c Color) BlueF() float64 { return icolor.Unit(c.Blue()) }

// Hue returns the HSV hue in degrees, or -1 for an achromatic color.
func (c Color) Hue() int { return c.HSVHue() }

// HueF returns the HSV hue as a fraction of a turn, or -1.
func (c Color) HueF() float64 { return c.HSVHueF() }

// Saturation returns the HSV saturation.
func (c Color) Saturation() uint8 { return c.HSVSaturation() }

// SaturationF returns the HSV saturation in [0, 1].
func (c Color) SaturationF() float64 { return c.HSVSaturationF() }

// HSVHue returns the HSV hue in degrees, or -1 for an achromatic color.
func (c Color) HSVHue() int { return c.ToHSV().hsv.hue.degrees() }

// HSVHueF returns the HSV hue as a fraction of a turn, or -1.
func (c Color) HSVHueF() float64 { return c.ToHSV().hsv.hue.fraction() }

// HSVSaturation returns the HSV saturation.
func (c Color) HSVSaturation() uint8 { return c.ToHSV().hsv.saturation }

// HSVSaturationF returns the HSV saturation in [0, 1].
func (c Color) HSVSaturationF() float64 { return icolor.Unit(c.HSVSaturation()) }

// Value returns the HSV value.
func (c Color) Value() uint8 { return c.ToHSV().hsv.value }

// ValueF returns the HSV value in [0, 1].
func (c Color) ValueF() float64 { return icolor.Unit(c.Value()) }

// HSLHue returns the HSL hue in degrees, or -1 for an achromatic color.
func (c Color) HSLHue() int { return c.ToHSL().hsl.hue.degrees() }

// HSLHueF returns the HSL hue as a fraction of a turn, or -1.
func (c Color) HSLHueF() float64 { return c.ToHSL().hsl.hue.fraction() }

// HSLSaturation returns the HSL saturation.
func (c Color) HSLSaturation() uint8 { return c.ToHSL().hsl.saturation }

// HSLSaturationF returns the HSL saturation in [0, 1].
func (c Color) HSLSaturationF() float64 { return icolor.Unit(c.HSLSaturation()) }

// Lightness returns the HSL lightness.
func (c Color) Lightness() uint8 { return c.ToHSL().hsl.lightness }

// LightnessF returns the HSL lightness in [0, 1].
func (c Color) LightnessF() float64 { return icolor.Unit(c.Lightness()) }

// Cyan returns the CMYK cyan channel.
func (c Color) Cyan() uint8 { return c.ToCMYK().cmyk.cyan }

// Magenta returns the CMYK magenta channel.
func (c Color) Magenta() uint8 { return c.ToCMYK().cmyk.magenta }

// Yellow returns the CMYK yellow channel.
func (c Color) Yellow() uint8 { return c.ToCMYK().cmyk.yellow }

// Black returns the CMYK black channel.
func (c Color) Black() uint8 { return c.ToCMYK().cmyk.black }

// CyanF returns the CMYK cyan channel in [0, 1].
func (c Color) CyanF() float64 { return icolor.Unit(c.Cyan()) }

// MagentaF returns the CMYK magenta channel in [0, 1].
func (c Color) MagentaF() float64 { return icolor.Unit(c.Magenta()) }

// YellowF returns the CMYK yellow channel in [0, 1].
func (c Color) YellowF() float64 { return icolor.Unit(c.Yellow()) }

// BlackF returns the CMYK black channel in [0, 1].
func (c Color) BlackF() float64 { return icolor.Unit(c.Black()) }

// GetRGB returns the RGB channels and alpha.
func (c Color) GetRGB() (r, g, b, a uint8) {
	v := c.ToRGB().rgb
	return v.red, v.green, v.blue, c.alpha
}

// GetRGBF returns the RGB channels and alpha in [0, 1].
func (c Color) GetRGBF() (r, g, b, a float64) {
	r8, g8, b8, a8 := c.GetRGB()
	f := icolor.Channels8ToF(icolor.Channels8{R: r8, G: g8, B: b8, A: a8})
	return f.R, f.G, f.B, f.A
}

// GetHSV returns the HSV components and alpha. h is -1 when undefined.
func (c Color) GetHSV() (h int, s, v, a uint8) {
	hsv := c.ToHSV().hsv
	return hsv.hue.degrees(), hsv.saturation, hsv.value, c.alpha
}

// GetHSVF returns the HSV components and alpha as floats.
func (c Color) GetHSVF() (h, s, v, a float64) {
	hsv := c.ToHSV().hsv
	return hsv.hue.fraction(), icolor.Unit(hsv.saturation), icolor.Unit(hsv.value), icolor.Unit(c.alpha)
}

// GetHSL returns the HSL components and alpha. h is -1 when undefined.
func (c Color) GetHSL() (h int, s, l, a uint8) {
	hsl := c.ToHSL().hsl
	return hsl.hue.degrees(), hsl.saturation, hsl.lightness, c.alpha
}

// GetHSLF returns the HSL components and alpha as floats.
func (c Color) GetHSLF() (h, s, l, a float64) {
	hsl := c.ToHSL().hsl
	return hsl.hue.fraction(), icolor.Unit(hsl.saturation), icolor.Unit(hsl.lightness), icolor.Unit(c.alpha)
}

// GetCMYK returns the CMYK channels and alpha.
func (c Color) GetCMYK() (cy, m, y, k, a uint8) {
	v := c.ToCMYK().cmyk
	return v.cyan, v.magenta, v.yellow, v.black, c.alpha
}

// GetCMYKF returns the CMYK channels and alpha in [0, 1].
func (c Color) GetCMYKF() (cy, m, y, k, a float64) {
	v := c.ToCMYK().cmyk
	return icolor.Unit(v.cyan), icolor.Unit(v.magenta), icolor.Unit(v.yellow), icolor.Unit(v.black), icolor.Unit(c.alpha)
}

// Setters first move the color into the model that owns the channel, so a
// color stored as HSL becomes RGB after SetRed. Failed setters leave the
// color untouched.

// SetAlpha sets the alpha channel.
func (c *Color) SetAlpha(a uint8) { c.alpha = a }

// SetAlphaF sets the alpha channel from a value in [0, 1].
func (c *Color) SetAlphaF(a float64) error {
	if err := checkUnit(component{"alpha", a}); err != nil {
		return err
	}
	c.alpha = icolor.Quantize(a)
	return nil
}

func (c *Color) asRGB() *rgbValue {
	*c = c.ToRGB()
	return &c.rgb
}

func (c *Color) asHSV() *hsvValue {
	*c = c.ToHSV()
	return &c.hsv
}

func (c *Color) asHSL() *hslValue {
	*c = c.ToHSL()
	return &c.hsl
}

func (c *Color) asCMYK() *cmykValue {
	*c = c.ToCMYK()
	return &c.cmyk
}

// setUnit validates a float channel before moving the color into its model.
func (c *Color) setUnit(name string, v float64, dst func() *uint8) error {
	if err := checkUnit(component{name, v}); err != nil {
		return err
	}
	*dst() = icolor.Quantize(v)
	return nil
}

// SetRed sets the red channel.
func (c *Color) SetRed(r uint8) { c.asRGB().red = r }

// SetGreen sets the green channel.
func (c *Color) SetGreen(g uint8) { c.asRGB().green = g }

// SetBlue sets the blue channel.
func (c *Color) SetBlue(b uint8) { c.asRGB().blue = b }

// SetRedF sets the red channel from a value in [0, 1].
func (c *Color) SetRedF(r float64) error {
	return c.setUnit("red", r, func() *uint8 { return &c.asRGB().red })
}

// SetGreenF sets the green channel from a value in [0, 1].
func (c *Color) SetGreenF(g float64) error {
	return c.setUnit("green", g, func() *uint8 { return &c.asRGB().green })
}

// SetBlueF sets the blue channel from a value in [0, 1].
func (c *Color) SetBlueF(b float64) error {
	return c.setUnit("blue", b, func() *uint8 { return &c.asRGB().blue })
}

// SetHue sets the HSV hue in degrees. -1 clears it.
func (c *Color) SetHue(h int) error {
	hh, err := hueFromDegrees(h)
	if err != nil {
		return err
	}
	c.asHSV().hue = hh
	return nil
}

// SetHueF sets the HSV hue as a fraction of a turn. -1 clears it.
func (c *Color) SetHueF(h float64) error {
	hh, err := hueFromFraction(h)
	if err != nil {
		return err
	}
	c.asHSV().hue = hh
	return nil
}

// SetSaturation sets the HSV saturation.
func (c *Color) SetSaturation(s uint8) { c.asHSV().saturation = s }

// SetSaturationF sets the HSV saturation from a value in [0, 1].
func (c *Color) SetSaturationF(s float64) error {
	return c.setUnit("saturation", s, func() *uint8 { return &c.asHSV().saturation })
}

// SetValue sets the HSV value.
func (c *Color) SetValue(v uint8) { c.asHSV().value = v }

// SetValueF sets the HSV value from a value in [0, 1].
func (c *Color) SetValueF(v float64) error {
	return c.setUnit("value", v, func() *uint8 { return &c.asHSV().value })
}

// SetLightness sets the HSL lightness.
func (c *Color) SetLightness(l uint8) { c.asHSL().lightness = l }

// SetLightnessF sets the HSL lightness from a value in [0, 1].
func (c *Color) SetLightnessF(l float64) error {
	return c.setUnit("lightness", l, func() *uint8 { return &c.asHSL().lightness })
}

// SetCyan sets the CMYK cyan channel.
func (c *Color) SetCyan(v uint8) { c.asCMYK().cyan = v }

// SetMagenta sets the CMYK magenta channel.
func (c *Color) SetMagenta(v uint8) { c.asCMYK().magenta = v }

// SetYellow sets the CMYK yellow channel.
func (c *Color) SetYellow(v uint8) { c.asCMYK().yellow = v }

// SetBlack sets the CMYK black channel.
func (c *Color) SetBlack(v uint8) { c.asCMYK().black = v }

// SetRGB replaces the color with an RGB one.
func (c *Color) SetRGB(r, g, b, a uint8) { *c = FromRGBA(r, g, b, a) }

// SetRGBF replaces the color with an RGB one built from floats.
func (c *Color) SetRGBF(r, g, b, a float64) error {
	return c.replace(FromRGBAF(r, g, b, a))
}

// SetHSV replaces the color with an HSV one.
func (c *Color) SetHSV(h int, s, v, a uint8) error {
	return c.replace(FromHSV(h, s, v, a))
}

// SetHSVF replaces the color with an HSV one built from floats.
func (c *Color) SetHSVF(h, s, v, a float64) error {
	return c.replace(FromHSVF(h, s, v, a))
}

// SetHSL replaces the color with an HSL one.
func (c *Color) SetHSL(h int, s, l, a uint8) error {
	return c.replace(FromHSL(h, s, l, a))
}

// SetHSLF replaces the color with an HSL one built from floats.
func (c *Color) SetHSLF(h, s, l, a float64) error {
	return c.replace(FromHSLF(h, s, l, a))
}

// SetCMYK replaces the color with a CMYK one.
func (c *Color) SetCMYK(cy, m, y, k, a uint8) { *c = FromCMYK(cy, m, y, k, a) }

// SetCMYKF replaces the color with a CMYK one built from floats.
func (c *Color) SetCMYKF(cy, m, y, k, a float64) error {
	return c.replace(FromCMYKF(cy, m, y, k, a))
}

func (c *Color) replace(v Color, err error) error {
	if err != nil {
		return err
	}
	*c = v
	return nil
}
