// Package palette provides named, ordered sets of colors.
//
// Ten categorical schemes are built in (see [Builtin]). Further palettes
// are read from YAML, TOML or JSON files with [Load]:
//
//	name: brand
//	colors:
//	  - "#ffeeaa"
//	  - cornflowerblue
//	  - rgba(10, 20, 30, 128)
//
// Each color entry accepts any form gcolor.Parse reads.
package palette

import (
	"fmt"
	"slices"
	"strings"

	gcolor "github.com/RustVis/jiao-sub000"
)

// Palette is a named, ordered list of colors.
type Palette struct {
	Name   string
	Colors []gcolor.Color
}

// New creates a palette from colors. The slice is copied.
func New(name string, colors ...gcolor.Color) Palette {
	return Palette{Name: name, Colors: slices.Clone(colors)}
}

// Len returns the number of colors.
func (p Palette) Len() int { return len(p.Colors) }

// At returns the color at index i, cycling through the palette so that
// any index is valid. Negative indexes count back from the end. An empty
// palette yields gcolor.Transparent.
func (p Palette) At(i int) gcolor.Color {
	n := len(p.Colors)
	if n == 0 {
		return gcolor.Transparent
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p.Colors[i]
}

// Hex returns each color in the shortest text form that reads back to the
// same RGB value: "#rrggbb" when opaque, "rgba(...)" otherwise.
func (p Palette) Hex() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = colorText(c)
	}
	return out
}

func colorText(c gcolor.Color) string {
	if c.Alpha() == 0xff {
		return c.Name()
	}
	return c.String()
}

// Builtin returns copies of the built-in palettes sorted by name.
func Builtin() []Palette {
	out := make([]Palette, 0, len(builtins))
	for _, name := range BuiltinNames() {
		p, _ := ByName(name)
		out = append(out, p)
	}
	return out
}

// BuiltinNames returns the names of the built-in palettes, sorted.
func BuiltinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// ByName returns a copy of the built-in palette with the given name.
// Matching ignores case.
func ByName(name string) (Palette, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	p, ok := builtins[key]
	if !ok {
		return Palette{}, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
	}
	return New(p.Name, p.Colors...), nil
}
