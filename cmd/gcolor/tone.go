package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gcolor "github.com/RustVis/jiao-sub000"
)

func newToneCmd(root *rootFlags, use string, defaultFactor int, adjust func(gcolor.Color, int) gcolor.Color) *cobra.Command {
	var factor int

	cmd := &cobra.Command{
		Use:   use + " <color>",
		Short: fmt.Sprintf("Make a color %s by a percentage factor", use),
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := gcolor.Parse(args[0])
			if err != nil {
				return err
			}
			adjusted := adjust(c, factor)
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s%s\n", swatch(adjusted, swatchEnabled(out, root)), adjusted.Name())
			return nil
		},
	}

	cmd.Flags().IntVar(&factor, "factor", defaultFactor, "Percentage factor; 100 leaves the color as is")

	return cmd
}
