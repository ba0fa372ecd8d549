package gcolor

import (
	"fmt"
)

// NameFormat selects the hex layout produced by NameWithFormat.
type NameFormat uint8

// Hex layouts.
const (
	// HexRGB is "#rrggbb"; alpha is dropped.
	HexRGB NameFormat = iota

	// HexARGB is "#aarrggbb".
	HexARGB
)

// Name returns the color as "#rrggbb".
func (c Color) Name() string {
	return c.NameWithFormat(HexRGB)
}

// NameWithFormat returns the color as lowercase hex in the given layout.
// Unknown layouts fall back to HexRGB.
func (c Color) NameWithFormat(f NameFormat) string {
	p := c.ARGB()
	if f == HexARGB {
		return fmt.Sprintf("#%08x", uint32(p))
	}
	return fmt.Sprintf("#%06x", uint32(p)&0xffffff)
}

// String returns the color in the functional "rgba(r, g, b, a)" form.
// Parse reads it back to an equal RGB color.
func (c Color) String() string {
	r, g, b, a := c.GetRGB()
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", r, g, b, a)
}

// MarshalText implements encoding.TextMarshaler using the String form.
func (c Color) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Any form accepted by
// Parse is read.
func (c *Color) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return fmt.Errorf("gcolor: cannot unmarshal color: %w", err)
	}
	*c = v
	return nil
}
