package main

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	"image/png"
	"os"

	"github.com/spf13/cobra"

	"github.com/RustVis/jiao-sub000/palette"
)

type paletteFlags struct {
	format string
	png    string
	cell   int
}

func newPaletteCmd(root *rootFlags) *cobra.Command {
	flags := &paletteFlags{}

	cmd := &cobra.Command{
		Use:   "palette [name|file]",
		Short: "List built-in palettes or show one palette",
		Long: "Without arguments, list the built-in palettes. With a built-in name or a\n" +
			"path to a .yaml, .toml or .json palette file, print its colors.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if len(args) == 0 {
				for _, p := range palette.Builtin() {
					fmt.Fprintf(out, "%-12s %d colors\n", p.Name, p.Len())
				}
				return nil
			}

			p, err := resolvePalette(args[0])
			if err != nil {
				return err
			}

			if flags.png != "" {
				if err := writeSwatchPNG(flags.png, p, flags.cell); err != nil {
					return err
				}
			}

			if flags.format != "" {
				f, err := palette.ParseFormat(flags.format)
				if err != nil {
					return err
				}
				return palette.Encode(out, p, f)
			}

			sw := swatchEnabled(out, root)
			for i, text := range p.Hex() {
				fmt.Fprintf(out, "%s%s\n", swatch(p.Colors[i], sw), text)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.format, "format", "", "Print the palette as a yaml, toml or json document")
	cmd.Flags().StringVar(&flags.png, "png", "", "Also write a swatch strip to this PNG file")
	cmd.Flags().IntVar(&flags.cell, "cell", 32, "Swatch cell size in pixels for --png")

	return cmd
}

// resolvePalette tries the built-in names first, then a file path.
func resolvePalette(arg string) (palette.Palette, error) {
	p, err := palette.ByName(arg)
	if err == nil {
		return p, nil
	}
	if !errors.Is(err, palette.ErrUnknownPalette) {
		return palette.Palette{}, err
	}
	if _, statErr := os.Stat(arg); statErr != nil {
		return palette.Palette{}, fmt.Errorf("%w (and no such file)", err)
	}
	return palette.Load(arg)
}

// writeSwatchPNG draws one square cell per color, left to right.
func writeSwatchPNG(path string, p palette.Palette, cell int) error {
	if cell <= 0 {
		return fmt.Errorf("cell size must be positive, got %d", cell)
	}
	if p.Len() == 0 {
		return errors.New("palette has no colors")
	}

	img := image.NewNRGBA(image.Rect(0, 0, cell*p.Len(), cell))
	for i, c := range p.Colors {
		r := image.Rect(i*cell, 0, (i+1)*cell, cell)
		draw.Draw(img, r, image.NewUniform(c), image.Point{}, draw.Src)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}
