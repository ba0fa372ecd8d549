package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	gcolor "github.com/RustVis/jiao-sub000"
)

var colorEqual = cmp.Comparer(func(a, b gcolor.Color) bool { return a == b })

func TestAtCycles(t *testing.T) {
	p := New("abc", gcolor.Red, gcolor.Green, gcolor.Blue)
	tests := []struct {
		i    int
		want gcolor.Color
	}{
		{0, gcolor.Red},
		{2, gcolor.Blue},
		{3, gcolor.Red},
		{7, gcolor.Green},
		{-1, gcolor.Blue},
		{-3, gcolor.Red},
		{-4, gcolor.Blue},
	}
	for _, tt := range tests {
		if got := p.At(tt.i); got != tt.want {
			t.Errorf("At(%d) = %v, want %v", tt.i, got, tt.want)
		}
	}
	if got := (Palette{}).At(5); got != gcolor.Transparent {
		t.Errorf("empty At(5) = %v, want transparent", got)
	}
}

func TestNewCopies(t *testing.T) {
	colors := []gcolor.Color{gcolor.Red}
	p := New("one", colors...)
	colors[0] = gcolor.Blue
	if p.At(0) != gcolor.Red {
		t.Error("New did not copy its input")
	}
}

func TestHex(t *testing.T) {
	p := New("mixed", gcolor.FromRGB(1, 2, 3), gcolor.FromRGBA(1, 2, 3, 4))
	want := []string{"#010203", "rgba(1, 2, 3, 4)"}
	if diff := cmp.Diff(want, p.Hex()); diff != "" {
		t.Errorf("Hex() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuiltin(t *testing.T) {
	wantNames := []string{
		"accent", "category10", "dark2", "paired", "pastel1",
		"pastel2", "set1", "set2", "set3", "tableau10",
	}
	if diff := cmp.Diff(wantNames, BuiltinNames()); diff != "" {
		t.Errorf("BuiltinNames() mismatch (-want +got):\n%s", diff)
	}

	sizes := map[string]int{
		"accent": 8, "category10": 10, "dark2": 8, "paired": 12, "pastel1": 9,
		"pastel2": 8, "set1": 9, "set2": 8, "set3": 12, "tableau10": 10,
	}
	for _, p := range Builtin() {
		if p.Len() != sizes[p.Name] {
			t.Errorf("%s has %d colors, want %d", p.Name, p.Len(), sizes[p.Name])
		}
		for i, c := range p.Colors {
			if c.Alpha() != 0xff || c.Spec() != gcolor.SpecRGB {
				t.Errorf("%s[%d] = %v, want opaque RGB", p.Name, i, c)
			}
		}
	}
}

func TestByName(t *testing.T) {
	p, err := ByName(" Category10 ")
	if err != nil {
		t.Fatal(err)
	}
	if got := p.At(0).Name(); got != "#1f77b4" {
		t.Errorf("category10[0] = %s, want #1f77b4", got)
	}
	if got := p.At(-1).Name(); got != "#17becf" {
		t.Errorf("category10[-1] = %s, want #17becf", got)
	}

	p.Colors[0] = gcolor.Black
	again, _ := ByName("category10")
	if again.At(0) == gcolor.Black {
		t.Error("ByName returned shared storage")
	}

	if _, err := ByName("viridis"); !errors.Is(err, ErrUnknownPalette) {
		t.Errorf("ByName(viridis) error = %v, want ErrUnknownPalette", err)
	}
}

func TestBuiltinMatchesByName(t *testing.T) {
	for _, p := range Builtin() {
		got, err := ByName(p.Name)
		if err != nil {
			t.Fatal(err)
		}
		if diff := cmp.Diff(p, got, colorEqual); diff != "" {
			t.Errorf("%s mismatch (-builtin +byname):\n%s", p.Name, diff)
		}
	}
}
