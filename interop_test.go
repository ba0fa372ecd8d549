package gcolor

import (
	"image"
	"image/color"
	"image/draw"
	"testing"
)

// Verify at compile time that Color implements color.Color.
var _ color.Color = Color{}

func TestColorInterface(t *testing.T) {
	tests := []struct {
		name                       string
		c                          Color
		wantR, wantG, wantB, wantA uint32
	}{
		{"opaque black", Black, 0, 0, 0, 0xffff},
		{"opaque white", White, 0xffff, 0xffff, 0xffff, 0xffff},
		{"opaque red", Red, 0xffff, 0, 0, 0xffff},
		{"transparent", Transparent, 0, 0, 0, 0},
		{"half red", FromRGBA(255, 0, 0, 128), 0x8080, 0, 0, 0x8080},
		{"hsv stored", Red.ToHSV(), 0xffff, 0, 0, 0xffff},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r, g, b, a := tt.c.RGBA()
			if r != tt.wantR || g != tt.wantG || b != tt.wantB || a != tt.wantA {
				t.Errorf("RGBA() = (%d, %d, %d, %d), want (%d, %d, %d, %d)",
					r, g, b, a, tt.wantR, tt.wantG, tt.wantB, tt.wantA)
			}
		})
	}
}

func TestFromColor(t *testing.T) {
	tests := []struct {
		name string
		in   color.Color
		want Color
	}{
		{"nrgba", color.NRGBA{R: 1, G: 2, B: 3, A: 4}, FromRGBA(1, 2, 3, 4)},
		{"premultiplied", color.RGBA{R: 128, A: 128}, FromRGBA(255, 0, 0, 128)},
		{"gray", color.Gray{Y: 77}, FromRGB(77, 77, 77)},
		{"opaque rgba64", color.RGBA64{R: 0xffff, G: 0x8080, B: 0, A: 0xffff}, FromRGB(255, 128, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FromColor(tt.in); got != tt.want {
				t.Errorf("FromColor(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}

	hsl, _ := FromHSL(10, 20, 30, 40)
	if got := FromColor(hsl); got != hsl {
		t.Errorf("FromColor kept %#v, want the original HSL color", got)
	}
}

func TestModel(t *testing.T) {
	got := Model.Convert(color.Gray{Y: 9})
	c, ok := got.(Color)
	if !ok {
		t.Fatalf("Model.Convert returned %T", got)
	}
	if c != FromRGB(9, 9, 9) {
		t.Errorf("Model.Convert = %v", c)
	}
}

func TestDrawWithColor(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 2, 2))
	hsv, _ := FromHSV(100, 101, 102, 255)
	draw.Draw(img, img.Bounds(), image.NewUniform(hsv), image.Point{}, draw.Src)
	if got := img.NRGBAAt(1, 1); got != hsv.NRGBA() {
		t.Errorf("pixel = %v, want %v", got, hsv.NRGBA())
	}
}

func TestLerp(t *testing.T) {
	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"start", 0, Black},
		{"mid", 0.5, FromRGB(128, 128, 128)},
		{"end", 1, White},
		{"clamped low", -3, Black},
		{"clamped high", 3, White},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Black.Lerp(White, tt.t); got != tt.want {
				t.Errorf("Lerp(%v) = %v, want %v", tt.t, got, tt.want)
			}
		})
	}
	if got := Transparent.Lerp(FromRGBA(0, 0, 0, 255), 0.5).Alpha(); got != 128 {
		t.Errorf("alpha lerp = %d, want 128", got)
	}
}

func TestPremultiply(t *testing.T) {
	if got := FromRGBA(255, 128, 0, 128).Premultiply(); got != FromRGBA(128, 64, 0, 128) {
		t.Errorf("Premultiply() = %v", got)
	}
}
