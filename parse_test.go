package gcolor

import (
	"errors"
	"strings"
	"sync"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Color
	}{
		{"#fea", FromRGB(255, 238, 170)},
		{"#ffeeaa", FromRGB(255, 238, 170)},
		{"#FFEEAA", FromRGB(255, 238, 170)},
		{"#ffeeaa99", FromRGBA(255, 238, 170, 153)},
		{"#000", FromRGB(0, 0, 0)},
		{"rgb ( 255, 255, 200)", FromRGB(255, 255, 200)},
		{"RGB(1,2,3)", FromRGB(1, 2, 3)},
		{"rgba(1, 2, 3, 4)", FromRGBA(1, 2, 3, 4)},
		{"\trgba(0,0,0,0)\n", FromRGBA(0, 0, 0, 0)},
		{"aliceblue", FromRGB(240, 248, 255)},
		{"Alice Blue", FromRGB(240, 248, 255)},
		{"transparent", Transparent},
		{"＃ＦＦＥＥＡＡ", FromRGB(255, 238, 170)},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if err != nil {
				t.Fatalf("Parse(%q) error = %v", tt.in, err)
			}
			if got != tt.want {
				t.Errorf("Parse(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseInvalid(t *testing.T) {
	tests := []string{
		"",
		" ",
		"red",
		"rgb ( 255)",
		"#4432",
		"#ffeea",
		"#ffeeaa9",
		"#ggg",
		"#ffeeag",
		"rgb(1,2,3,4)",
		"rgba(1,2,3)",
		"rgba(1,2,3,256)",
		"rgb(-1,2,3)",
		"rgb(1,2,three)",
		"rgb(1,2,3",
		"notacolor",
	}
	for _, in := range tests {
		t.Run(in, func(t *testing.T) {
			_, err := Parse(in)
			if !errors.Is(err, ErrInvalidFormat) {
				t.Fatalf("Parse(%q) error = %v, want ErrInvalidFormat", in, err)
			}
			var pe *ParseError
			if !errors.As(err, &pe) {
				t.Fatalf("Parse(%q) error %T is not *ParseError", in, err)
			}
			if pe.Input != in {
				t.Errorf("ParseError.Input = %q, want %q", pe.Input, in)
			}
		})
	}
}

func TestParseErrorMessage(t *testing.T) {
	_, err := Parse("#4432")
	want := `gcolor: invalid color format: "#4432"`
	if err == nil || err.Error() != want {
		t.Errorf("error = %v, want %s", err, want)
	}
}

func TestParseAlwaysRGB(t *testing.T) {
	for _, in := range []string{"#abc", "rgb(1,2,3)", "navy"} {
		c := MustParse(in)
		if c.Spec() != SpecRGB {
			t.Errorf("Parse(%q).Spec() = %v, want rgb", in, c.Spec())
		}
	}
}

func TestMustParsePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MustParse did not panic")
		}
	}()
	MustParse("#12")
}

func TestFromNameAndSetNamedColor(t *testing.T) {
	c, err := FromName("cornflowerblue")
	if err != nil {
		t.Fatal(err)
	}
	if c != FromRGB(100, 149, 237) {
		t.Errorf("FromName(cornflowerblue) = %v", c)
	}

	orig := FromRGB(9, 9, 9)
	c = orig
	if err := c.SetNamedColor("nope!"); err == nil {
		t.Error("SetNamedColor(nope!) succeeded")
	}
	if c != orig {
		t.Errorf("failed SetNamedColor changed color to %v", c)
	}
	if err := c.SetNamedColor("#ffeeaa"); err != nil {
		t.Fatal(err)
	}
	if c != FromRGB(255, 238, 170) {
		t.Errorf("SetNamedColor(#ffeeaa) = %v", c)
	}
}

func TestIsValidColor(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"#fff", true},
		{"rgba(1,1,1,1)", true},
		{"darkslategray", true},
		{"#4432", false},
		{"tan", false},
		{"", false},
	}
	for _, tt := range tests {
		if got := IsValidColor(tt.in); got != tt.want {
			t.Errorf("IsValidColor(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseStringRoundTrip(t *testing.T) {
	hsv, _ := FromHSV(100, 101, 102, 103)
	for _, c := range []Color{FromRGBA(0, 0, 0, 0), FromRGBA(1, 2, 3, 4), White, hsv, FromCMYK(5, 6, 7, 8, 9)} {
		got, err := Parse(c.String())
		if err != nil {
			t.Fatalf("Parse(%q) error = %v", c.String(), err)
		}
		if got != c.ToRGB() {
			t.Errorf("Parse(%q) = %v, want %v", c.String(), got, c.ToRGB())
		}
		argb, err := Parse(c.Name())
		if err != nil {
			t.Fatal(err)
		}
		if r, g, b, _ := argb.GetRGB(); FromRGB(r, g, b) != argb {
			t.Errorf("Parse(Name()) not opaque: %v", argb)
		}
	}
}

func TestParseConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := range 32 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			inputs := []string{"Alice Blue", "#fea", "rgb(1,2,3)", strings.Repeat("x", i)}
			for _, in := range inputs {
				_, _ = Parse(in)
			}
			if c := MustParse("navy"); c != FromRGB(0, 0, 128) {
				t.Errorf("navy = %v", c)
			}
		}()
	}
	wg.Wait()
}

func BenchmarkParseHex(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("#ffeeaa")
	}
}

func BenchmarkParseName(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = Parse("cornflowerblue")
	}
}

func TestHexNibble(t *testing.T) {
	tests := []struct {
		in   byte
		want uint8
		ok   bool
	}{
		{'0', 0, true},
		{'9', 9, true},
		{'a', 10, true},
		{'f', 15, true},
		{'g', 0, false},
		{'A', 0, false},
		{'#', 0, false},
	}
	for _, tt := range tests {
		got, ok := hexNibble(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("hexNibble(%q) = %d, %v; want %d, %v", tt.in, got, ok, tt.want, tt.ok)
		}
	}
	if got := MustParse("#ABCDEF"); got != FromRGB(0xab, 0xcd, 0xef) {
		t.Errorf("upper-case hex = %v", got)
	}
}
