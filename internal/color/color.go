// Package color provides the channel arithmetic shared by the gcolor engine.
//
// Stored colors keep every channel as an 8-bit integer and every hue as
// hundredths of a degree. All conversion math happens in float64 on the
// unit interval; this package owns the mapping between the two domains.
package color

// MaxChannel is the largest value an 8-bit channel can hold.
const MaxChannel = 255

// MaxChannelF is MaxChannel as a float64.
const MaxChannelF = float64(MaxChannel)

// Hue fixed-point layout: degrees are stored multiplied by HueScale,
// so a full turn is HueTurn units (0-35999 are valid stored values).
const (
	HueScale = 100
	HueTurn  = 360 * HueScale
)

// Channels8 holds four 8-bit channels in RGBA order.
// Alpha is never touched by color model conversions.
type Channels8 struct {
	R, G, B, A uint8
}

// ChannelsF holds four channels on the unit interval in RGBA order.
type ChannelsF struct {
	R, G, B, A float64
}
