package color

// unitLUT maps every 8-bit channel value to its unit-interval float.
// Pre-computed 256 entries, 2KB memory cost. Entry i is exactly i/255.
var unitLUT [256]float64

func init() {
	for i := 0; i < 256; i++ {
		unitLUT[i] = float64(i) / MaxChannelF
	}
}

// Unit converts an 8-bit channel to [0,1] using the lookup table.
//
// Example:
//
//	u := Unit(51) // 0.2
func Unit(b uint8) float64 {
	return unitLUT[b]
}

// UnitSlow converts an 8-bit channel to [0,1] by division.
//
// This is the reference implementation; used for testing only.
func UnitSlow(b uint8) float64 {
	return float64(b) / MaxChannelF
}
