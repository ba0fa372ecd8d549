package blend

// Op is a Porter-Duff compositing operator.
//
// Every operator works on premultiplied channels in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - W3C Compositing and Blending Level 1: https://www.w3.org/TR/compositing-1/
type Op uint8

const (
	OpClear    Op = iota // 0
	OpSrc                // S
	OpDst                // D
	OpSrcOver            // S + D*(1-Sa)
	OpDstOver            // S*(1-Da) + D
	OpSrcIn              // S*Da
	OpDstIn              // D*Sa
	OpSrcOut             // S*(1-Da)
	OpDstOut             // D*(1-Sa)
	OpSrcAtop            // S*Da + D*(1-Sa)
	OpDstAtop            // S*(1-Da) + D*Sa
	OpXor                // S*(1-Da) + D*(1-Sa)
	OpPlus               // min(S + D, 255)
	OpModulate           // S*D
)

var opNames = [...]string{
	OpClear:    "clear",
	OpSrc:      "src",
	OpDst:      "dst",
	OpSrcOver:  "src-over",
	OpDstOver:  "dst-over",
	OpSrcIn:    "src-in",
	OpDstIn:    "dst-in",
	OpSrcOut:   "src-out",
	OpDstOut:   "dst-out",
	OpSrcAtop:  "src-atop",
	OpDstAtop:  "dst-atop",
	OpXor:      "xor",
	OpPlus:     "plus",
	OpModulate: "modulate",
}

// String returns the operator's CSS-style name.
func (op Op) String() string {
	if int(op) < len(opNames) {
		return opNames[op]
	}
	return "src-over"
}

// ParseOp looks an operator up by the name String returns.
func ParseOp(name string) (Op, bool) {
	for i, n := range opNames {
		if n == name {
			return Op(i), true
		}
	}
	return OpSrcOver, false
}

// Func composites a premultiplied source pixel onto a premultiplied
// destination pixel.
type Func func(sr, sg, sb, sa, dr, dg, db, da uint8) (r, g, b, a uint8)

// FuncFor returns the compositing function for op. Unknown operators fall
// back to source-over.
func FuncFor(op Op) Func {
	switch op {
	case OpClear:
		return clearOp
	case OpSrc:
		return srcOp
	case OpDst:
		return dstOp
	case OpDstOver:
		return dstOverOp
	case OpSrcIn:
		return srcInOp
	case OpDstIn:
		return dstInOp
	case OpSrcOut:
		return srcOutOp
	case OpDstOut:
		return dstOutOp
	case OpSrcAtop:
		return srcAtopOp
	case OpDstAtop:
		return dstAtopOp
	case OpXor:
		return xorOp
	case OpPlus:
		return plusOp
	case OpModulate:
		return modulateOp
	default:
		return srcOverOp
	}
}

func clearOp(_, _, _, _, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return 0, 0, 0, 0
}

func srcOp(sr, sg, sb, sa, _, _, _, _ uint8) (uint8, uint8, uint8, uint8) {
	return sr, sg, sb, sa
}

func dstOp(_, _, _, _, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return dr, dg, db, da
}

func srcOverOp(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return addClamp(sr, MulDiv255(dr, inv)),
		addClamp(sg, MulDiv255(dg, inv)),
		addClamp(sb, MulDiv255(db, inv)),
		addClamp(sa, MulDiv255(da, inv))
}

func dstOverOp(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return srcOverOp(dr, dg, db, da, sr, sg, sb, sa)
}

func srcInOp(sr, sg, sb, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
	return MulDiv255(sr, da), MulDiv255(sg, da), MulDiv255(sb, da), MulDiv255(sa, da)
}

func dstInOp(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return srcInOp(dr, dg, db, da, sr, sg, sb, sa)
}

func srcOutOp(sr, sg, sb, sa, _, _, _, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - da
	return MulDiv255(sr, inv), MulDiv255(sg, inv), MulDiv255(sb, inv), MulDiv255(sa, inv)
}

func dstOutOp(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return srcOutOp(dr, dg, db, da, sr, sg, sb, sa)
}

// srcAtopOp keeps the destination alpha.
func srcAtopOp(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	inv := 255 - sa
	return addClamp(MulDiv255(sr, da), MulDiv255(dr, inv)),
		addClamp(MulDiv255(sg, da), MulDiv255(dg, inv)),
		addClamp(MulDiv255(sb, da), MulDiv255(db, inv)),
		da
}

func dstAtopOp(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return srcAtopOp(dr, dg, db, da, sr, sg, sb, sa)
}

func xorOp(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	invS, invD := 255-sa, 255-da
	return addClamp(MulDiv255(sr, invD), MulDiv255(dr, invS)),
		addClamp(MulDiv255(sg, invD), MulDiv255(dg, invS)),
		addClamp(MulDiv255(sb, invD), MulDiv255(db, invS)),
		addClamp(MulDiv255(sa, invD), MulDiv255(da, invS))
}

func plusOp(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return addClamp(sr, dr), addClamp(sg, dg), addClamp(sb, db), addClamp(sa, da)
}

func modulateOp(sr, sg, sb, sa, dr, dg, db, da uint8) (uint8, uint8, uint8, uint8) {
	return MulDiv255(sr, dr), MulDiv255(sg, dg), MulDiv255(sb, db), MulDiv255(sa, da)
}

// addClamp adds two channels, saturating at 255.
func addClamp(a, b uint8) uint8 {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return uint8(sum)
}
