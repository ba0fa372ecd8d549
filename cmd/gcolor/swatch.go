package main

import (
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	gcolor "github.com/RustVis/jiao-sub000"
)

const swatchWidth = 4

// swatchEnabled reports whether w is a terminal that should get swatches.
func swatchEnabled(w io.Writer, flags *rootFlags) bool {
	if flags.noSwatch {
		return false
	}
	if file, ok := w.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

// swatch renders a block of the color followed by a space, or nothing
// when swatches are off.
func swatch(c gcolor.Color, enabled bool) string {
	if !enabled {
		return ""
	}
	block := lipgloss.NewStyle().
		Background(lipgloss.Color(c.Name())).
		Width(swatchWidth).
		Render("")
	return block + " "
}
