package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gcolor "github.com/RustVis/jiao-sub000"
)

func newNameCmd(root *rootFlags) *cobra.Command {
	var argb bool

	cmd := &cobra.Command{
		Use:   "name <color>",
		Short: "Print a color as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := gcolor.Parse(args[0])
			if err != nil {
				return err
			}
			format := gcolor.HexRGB
			if argb {
				format = gcolor.HexARGB
			}
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s%s\n", swatch(c, swatchEnabled(out, root)), c.NameWithFormat(format))
			return nil
		},
	}

	cmd.Flags().BoolVar(&argb, "argb", false, "Include alpha as #aarrggbb")

	return cmd
}
