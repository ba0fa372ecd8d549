// Package gcolor provides an 8-bit color value that can be stored in the
// RGB, HSV, HSL or CMYK model, with conversions between them.
//
// # Overview
//
// A [Color] remembers which model it was built in. Accessors such as
// [Color.Red] or [Color.Hue] read the stored model when it owns the
// channel and otherwise convert a copy, so reading never changes the
// value. Setters move the color into the model that owns the channel.
//
// # Quick Start
//
//	import gcolor "github.com/RustVis/jiao-sub000"
//
//	c := gcolor.MustParse("#ffeeaa")
//	h, s, v, _ := c.GetHSV()
//
//	dark := c.Darker()         // HSV value halved, back in RGB
//	fmt.Println(dark.Name())   // "#7f7755"
//	fmt.Println(dark.String()) // "rgba(127, 119, 85, 255)"
//
// # Hue
//
// Hue is kept in hundredths of a degree. Achromatic colors carry no hue;
// the integer accessors report it as -1 and the float accessors as -1.0.
// Integer hues of 360 or more wrap around.
//
// # Text
//
// [Parse] reads "#rgb", "#rrggbb", "#rrggbbaa", "rgb(r,g,b)",
// "rgba(r,g,b,a)" and SVG color keywords. Spaces, tabs and letter case are
// ignored. [Color.String] writes the "rgba(r, g, b, a)" form, which is also
// the encoding used by MarshalText, so colors travel through JSON, YAML
// and TOML as strings.
//
// # Packed Forms
//
// [ARGB] and [RGBA64] are integer pixel layouts for compositing code.
// They are always computed from the RGB projection.
//
// # Concurrency
//
// Color values are immutable apart from their setters and carry no shared
// state. The named color table is built once and then only read.
package gcolor

// Version information
const (
	// Version is the current version of the library
	Version = "0.1.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 1

	// VersionPatch is the patch version
	VersionPatch = 0
)
