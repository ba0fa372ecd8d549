package gcolor

import (
	"math"

	icolor "github.com/RustVis/jiao-sub000/internal/color"
)

// Default tone factors.
const (
	DefaultLighterFactor = 150
	DefaultDarkerFactor  = 200
)

// Lighter returns the color lightened by DefaultLighterFactor.
func (c Color) Lighter() Color { return c.LighterBy(DefaultLighterFactor) }

// Darker returns the color darkened by DefaultDarkerFactor.
func (c Color) Darker() Color { return c.DarkerBy(DefaultDarkerFactor) }

// LighterBy scales the HSV value by factor/100 and returns the result in
// the original model. When the value would pass 255 the excess is taken
// out of the saturation instead. A factor below 100 darkens by 10000/factor;
// a factor of zero or less returns the color unchanged.
func (c Color) LighterBy(factor int) Color {
	if factor <= 0 {
		Logger().Debug("gcolor: ignoring tone factor", "op", "lighter", "factor", factor)
		return c
	}
	if factor < 100 {
		return c.DarkerBy(10000 / factor)
	}

	hsv := c.ToHSV()
	s, v := int(hsv.hsv.saturation), int(hsv.hsv.value)
	if v != 0 && factor > math.MaxInt/v {
		v = math.MaxInt
	} else {
		v = factor * v / 100
	}
	if v > icolor.MaxChannel {
		s = max(s-(v-icolor.MaxChannel), 0)
		v = icolor.MaxChannel
	}
	//nolint:gosec // G115: s and v are within [0, 255] here
	hsv.hsv.saturation, hsv.hsv.value = uint8(s), uint8(v)
	return hsv.ConvertTo(c.spec)
}

// DarkerBy scales the HSV value by 100/factor, truncating, and returns the
// result in the original model. A factor below 100 lightens by
// 10000/factor; a factor of zero or less returns the color unchanged.
func (c Color) DarkerBy(factor int) Color {
	if factor <= 0 {
		Logger().Debug("gcolor: ignoring tone factor", "op", "darker", "factor", factor)
		return c
	}
	if factor < 100 {
		return c.LighterBy(10000 / factor)
	}

	hsv := c.ToHSV()
	//nolint:gosec // G115: factor >= 100 so the result never grows
	hsv.hsv.value = uint8(int(hsv.hsv.value) * 100 / factor)
	return hsv.ConvertTo(c.spec)
}
