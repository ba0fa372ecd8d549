package gcolor

import (
	"github.com/RustVis/jiao-sub000/internal/blend"
)

// CompositeOp is a Porter-Duff compositing operator.
type CompositeOp uint8

// Compositing operators. Source is the receiver, destination the argument.
const (
	OpClear    = CompositeOp(blend.OpClear)
	OpSrc      = CompositeOp(blend.OpSrc)
	OpDst      = CompositeOp(blend.OpDst)
	OpSrcOver  = CompositeOp(blend.OpSrcOver)
	OpDstOver  = CompositeOp(blend.OpDstOver)
	OpSrcIn    = CompositeOp(blend.OpSrcIn)
	OpDstIn    = CompositeOp(blend.OpDstIn)
	OpSrcOut   = CompositeOp(blend.OpSrcOut)
	OpDstOut   = CompositeOp(blend.OpDstOut)
	OpSrcAtop  = CompositeOp(blend.OpSrcAtop)
	OpDstAtop  = CompositeOp(blend.OpDstAtop)
	OpXor      = CompositeOp(blend.OpXor)
	OpPlus     = CompositeOp(blend.OpPlus)
	OpModulate = CompositeOp(blend.OpModulate)
)

// String returns the operator name, e.g. "src-over".
func (op CompositeOp) String() string { return blend.Op(op).String() }

// ParseCompositeOp looks an operator up by name.
func ParseCompositeOp(name string) (CompositeOp, bool) {
	op, ok := blend.ParseOp(name)
	return CompositeOp(op), ok
}

// Unpremultiply divides the color channels by alpha. It is the inverse of
// Premultiply up to rounding.
func (p ARGB) Unpremultiply() ARGB {
	a := p.Alpha()
	switch a {
	case 0xff:
		return p
	case 0:
		return 0
	}
	return NewRGBA(blend.Unpremultiply8(p.Red(), a), blend.Unpremultiply8(p.Green(), a), blend.Unpremultiply8(p.Blue(), a), a)
}

// Composite combines premultiplied p (source) with premultiplied dst.
func (p ARGB) Composite(dst ARGB, op CompositeOp) ARGB {
	r, g, b, a := blend.FuncFor(blend.Op(op))(
		p.Red(), p.Green(), p.Blue(), p.Alpha(),
		dst.Red(), dst.Green(), dst.Blue(), dst.Alpha())
	return NewRGBA(r, g, b, a)
}

// Over composites premultiplied p over premultiplied dst.
func (p ARGB) Over(dst ARGB) ARGB { return p.Composite(dst, OpSrcOver) }

// CompositeWith combines c (source) with dst using op and returns the
// result as an RGB color. Both colors carry straight alpha.
func (c Color) CompositeWith(dst Color, op CompositeOp) Color {
	out := c.ARGB().Premultiply().Composite(dst.ARGB().Premultiply(), op)
	return FromARGB(out.Unpremultiply())
}

// Over composites c over dst.
func (c Color) Over(dst Color) Color { return c.CompositeWith(dst, OpSrcOver) }
