package gcolor

import (
	"math"
	"testing"
)

func TestDarker(t *testing.T) {
	c := FromRGB(255, 238, 170)
	if got := c.Darker(); got != FromRGB(127, 119, 85) {
		t.Errorf("Darker() = %v, want rgba(127, 119, 85, 255)", got)
	}
	if got := c.Darker(); got != c.DarkerBy(DefaultDarkerFactor) {
		t.Errorf("Darker() != DarkerBy(%d)", DefaultDarkerFactor)
	}
}

func TestToneIgnoresNonPositiveFactor(t *testing.T) {
	hsl, _ := FromHSL(30, 40, 50, 60)
	for _, c := range []Color{FromRGB(10, 20, 30), hsl} {
		for _, f := range []int{0, -1, math.MinInt} {
			if got := c.DarkerBy(f); got != c {
				t.Errorf("DarkerBy(%d) = %#v, want %#v", f, got, c)
			}
			if got := c.LighterBy(f); got != c {
				t.Errorf("LighterBy(%d) = %#v, want %#v", f, got, c)
			}
		}
	}
}

func TestToneInversion(t *testing.T) {
	c := FromRGB(90, 140, 200)
	if c.DarkerBy(50) != c.LighterBy(200) {
		t.Error("DarkerBy(50) != LighterBy(200)")
	}
	if c.LighterBy(50) != c.DarkerBy(200) {
		t.Error("LighterBy(50) != DarkerBy(200)")
	}
	if c.LighterBy(80) != c.DarkerBy(125) {
		t.Error("LighterBy(80) != DarkerBy(125)")
	}
}

func TestTonePreservesSpec(t *testing.T) {
	hsl, _ := FromHSL(30, 40, 50, 60)
	hsv, _ := FromHSV(30, 40, 50, 60)
	for _, c := range []Color{FromRGBA(10, 20, 30, 60), hsv, hsl, FromCMYK(1, 2, 3, 4, 60)} {
		for _, got := range []Color{c.Lighter(), c.Darker(), c.LighterBy(120), c.DarkerBy(300)} {
			if got.Spec() != c.Spec() {
				t.Errorf("tone changed spec %v to %v", c.Spec(), got.Spec())
			}
			if got.Alpha() != 60 {
				t.Errorf("tone changed alpha to %d", got.Alpha())
			}
		}
	}
}

func TestDarkerByScalesValue(t *testing.T) {
	c, _ := FromHSV(120, 100, 200, 255)
	want, _ := FromHSV(120, 100, 66, 255)
	if got := c.DarkerBy(300); got != want {
		t.Errorf("DarkerBy(300) = %#v, want %#v", got, want)
	}
}

func TestLighterByOverflowDrainsSaturation(t *testing.T) {
	tests := []struct {
		name   string
		s, v   uint8
		factor int
		wantS  uint8
		wantV  uint8
	}{
		{"no overflow", 200, 100, 150, 200, 150},
		{"overflow", 200, 200, 150, 155, 255},
		{"saturation floor", 10, 200, 400, 0, 255},
		{"huge factor", 200, 1, math.MaxInt, 0, 255},
		{"black stays black", 200, 0, math.MaxInt, 200, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := FromHSV(0, tt.s, tt.v, 255)
			want, _ := FromHSV(0, tt.wantS, tt.wantV, 255)
			if got := c.LighterBy(tt.factor); got != want {
				t.Errorf("LighterBy(%d) = %#v, want %#v", tt.factor, got, want)
			}
		})
	}
}

func TestToneExtremes(t *testing.T) {
	if got := White.Lighter(); got != White {
		t.Errorf("White.Lighter() = %v", got)
	}
	if got := Black.Darker(); got != Black {
		t.Errorf("Black.Darker() = %v", got)
	}
	if v := Gray.Lighter().Value(); v != 192 {
		t.Errorf("Gray.Lighter().Value() = %d, want 192", v)
	}
}
