package color

import "math"

// Quantize maps a unit-interval value to an 8-bit channel.
// Formula: round(x * 255), half away from zero. Values that drift outside
// [0,1] through floating point error are clamped.
func Quantize(x float64) uint8 {
	return clampAndRound(x * MaxChannelF)
}

// InUnitRange reports whether x lies in [0, 1]. NaN is never in range.
func InUnitRange(x float64) bool {
	return x >= 0 && x <= 1
}

// Channels8ToF converts Channels8 to ChannelsF.
// Each uint8 component [0,255] is mapped to float64 [0,1].
func Channels8ToF(c Channels8) ChannelsF {
	return ChannelsF{
		R: Unit(c.R),
		G: Unit(c.G),
		B: Unit(c.B),
		A: Unit(c.A),
	}
}

// ChannelsFToU8 converts ChannelsF to Channels8 with rounding.
func ChannelsFToU8(c ChannelsF) Channels8 {
	return Channels8{
		R: Quantize(c.R),
		G: Quantize(c.G),
		B: Quantize(c.B),
		A: Quantize(c.A),
	}
}

// HueFromFraction converts a fraction of a full turn ([0,1]) to stored hue
// units. A full turn wraps to 0.
func HueFromFraction(f float64) uint16 {
	h := int(math.Round(f * HueTurn))
	//nolint:gosec // G115: h is reduced modulo HueTurn, well inside uint16
	return uint16(WrapHueUnits(h))
}

// HueFromDegrees converts degrees (any non-negative float) to stored hue
// units, wrapping 360 to 0.
func HueFromDegrees(deg float64) uint16 {
	h := int(math.Round(deg * HueScale))
	//nolint:gosec // G115: h is reduced modulo HueTurn, well inside uint16
	return uint16(WrapHueUnits(h))
}

// WrapHueUnits reduces hue units into [0, HueTurn).
func WrapHueUnits(h int) int {
	h %= HueTurn
	if h < 0 {
		h += HueTurn
	}
	return h
}

// WrapDegrees reduces whole degrees into [0, 360).
// 360 and 720 become 0, 540 becomes 180.
func WrapDegrees(deg int) int {
	deg %= 360
	if deg < 0 {
		deg += 360
	}
	return deg
}

// clampAndRound clamps to [0,255] and converts to uint8 with rounding.
func clampAndRound(v float64) uint8 {
	if !(v > 0) {
		return 0
	}
	if v >= MaxChannelF {
		return MaxChannel
	}
	return uint8(math.Round(v))
}
