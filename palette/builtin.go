package palette

import (
	gcolor "github.com/RustVis/jiao-sub000"
)

// Categorical schemes from ColorBrewer and Tableau, as distributed with d3.
var builtins = map[string]Palette{
	"accent":     hexPalette("accent", "7fc97f", "beaed4", "fdc086", "ffff99", "386cb0", "f0027f", "bf5b17", "666666"),
	"category10": hexPalette("category10", "1f77b4", "ff7f0e", "2ca02c", "d62728", "9467bd", "8c564b", "e377c2", "7f7f7f", "bcbd22", "17becf"),
	"dark2":      hexPalette("dark2", "1b9e77", "d95f02", "7570b3", "e7298a", "66a61e", "e6ab02", "a6761d", "666666"),
	"paired": hexPalette("paired", "a6cee3", "1f78b4", "b2df8a", "33a02c", "fb9a99", "e31a1c",
		"fdbf6f", "ff7f00", "cab2d6", "6a3d9a", "ffff99", "b15928"),
	"pastel1": hexPalette("pastel1", "fbb4ae", "b3cde3", "ccebc5", "decbe4", "fed9a6", "ffffcc", "e5d8bd", "fddaec", "f2f2f2"),
	"pastel2": hexPalette("pastel2", "b3e2cd", "fdcdac", "cbd5e8", "f4cae4", "e6f5c9", "fff2ae", "f1e2cc", "cccccc"),
	"set1":    hexPalette("set1", "e41a1c", "377eb8", "4daf4a", "984ea3", "ff7f00", "ffff33", "a65628", "f781bf", "999999"),
	"set2":    hexPalette("set2", "66c2a5", "fc8d62", "8da0cb", "e78ac3", "a6d854", "ffd92f", "e5c494", "b3b3b3"),
	"set3": hexPalette("set3", "8dd3c7", "ffffb3", "bebada", "fb8072", "80b1d3", "fdb462",
		"b3de69", "fccde5", "d9d9d9", "bc80bd", "ccebc5", "ffed6f"),
	"tableau10": hexPalette("tableau10", "4e79a7", "f28e2c", "e15759", "76b7b2", "59a14f", "edc949", "af7aa1", "ff9da7", "9c755f", "bab0ab"),
}

func hexPalette(name string, hex ...string) Palette {
	colors := make([]gcolor.Color, len(hex))
	for i, h := range hex {
		colors[i] = gcolor.MustParse("#" + h)
	}
	return Palette{Name: name, Colors: colors}
}
