package gcolor

import (
	"maps"
	"slices"
	"sync"

	"golang.org/x/image/colornames"
)

// NameTable resolves color keywords. Keys are lowercase ASCII without
// spaces, matching the normalized text the parser looks up.
type NameTable interface {
	Lookup(name string) (Color, bool)
	Names() []string
}

// MapNames is a NameTable backed by a map.
type MapNames map[string]Color

// Lookup returns the color registered under name.
func (m MapNames) Lookup(name string) (Color, bool) {
	c, ok := m[name]
	return c, ok
}

// Names returns the registered keywords in sorted order.
func (m MapNames) Names() []string {
	return slices.Sorted(maps.Keys(m))
}

// svgNames builds the SVG 1.1 keyword table on first use.
var svgNames = sync.OnceValue(func() MapNames {
	m := make(MapNames, len(colornames.Map)+1)
	for name, c := range colornames.Map {
		m[name] = FromRGBA(c.R, c.G, c.B, c.A)
	}
	m["transparent"] = Transparent
	Logger().Debug("gcolor: named color table ready", "entries", len(m))
	return m
})

// SVGNames returns the SVG 1.1 color keywords plus "transparent".
// The returned table is shared and must not be modified.
func SVGNames() NameTable { return svgNames() }

// ColorNames returns every keyword the default parser accepts, sorted.
func ColorNames() []string {
	return slices.DeleteFunc(svgNames().Names(), func(name string) bool {
		return len(name) < minColorLen
	})
}
