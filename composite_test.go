package gcolor

import "testing"

func TestColorOver(t *testing.T) {
	halfRed := FromRGBA(255, 0, 0, 128)
	tests := []struct {
		name     string
		src, dst Color
		want     Color
	}{
		{"opaque source wins", Red, Blue, Red},
		{"transparent source", Transparent, Blue, Blue},
		{"half over opaque", halfRed, Blue, FromRGB(128, 0, 127)},
		{"half over nothing", halfRed, Transparent, halfRed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.src.Over(tt.dst); got != tt.want {
				t.Errorf("Over() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestCompositeWith(t *testing.T) {
	hsv, _ := FromHSV(120, 255, 255, 255)
	if got := hsv.CompositeWith(Blue, OpClear); got != Transparent {
		t.Errorf("clear = %v", got)
	}
	if got := hsv.CompositeWith(Blue, OpDst); got != Blue {
		t.Errorf("dst = %v", got)
	}
	if got := hsv.CompositeWith(Blue, OpSrc); got != Green {
		t.Errorf("src = %v", got)
	}
	if got := Red.CompositeWith(Blue, OpXor); got != Transparent {
		t.Errorf("xor of opaque colors = %v", got)
	}
}

func TestARGBComposite(t *testing.T) {
	src := NewRGBA(255, 0, 0, 128).Premultiply()
	if src != NewRGBA(128, 0, 0, 128) {
		t.Fatalf("Premultiply() = %#08x", uint32(src))
	}
	if got := src.Over(NewRGB(0, 0, 255)); got != NewRGBA(128, 0, 127, 255) {
		t.Errorf("Over() = %#08x", uint32(got))
	}
	if got := NewRGBA(200, 1, 0, 200).Composite(NewRGBA(100, 2, 0, 100), OpPlus); got != NewRGBA(255, 3, 0, 255) {
		t.Errorf("plus = %#08x", uint32(got))
	}
}

func TestARGBUnpremultiply(t *testing.T) {
	if got := NewRGBA(64, 0, 0, 128).Unpremultiply(); got != NewRGBA(128, 0, 0, 128) {
		t.Errorf("Unpremultiply() = %#08x", uint32(got))
	}
	if got := NewRGBA(9, 9, 9, 0).Unpremultiply(); got != 0 {
		t.Errorf("Unpremultiply() of clear = %#08x", uint32(got))
	}
	if got := NewRGB(1, 2, 3).Unpremultiply(); got != NewRGB(1, 2, 3) {
		t.Errorf("Unpremultiply() of opaque = %#08x", uint32(got))
	}
}

func TestCompositeOpNames(t *testing.T) {
	op, ok := ParseCompositeOp("dst-atop")
	if !ok || op != OpDstAtop {
		t.Errorf("ParseCompositeOp(dst-atop) = %v, %v", op, ok)
	}
	if OpSrcOver.String() != "src-over" {
		t.Errorf("OpSrcOver.String() = %q", OpSrcOver.String())
	}
	if _, ok := ParseCompositeOp("screen"); ok {
		t.Error("ParseCompositeOp(screen) succeeded")
	}
}
