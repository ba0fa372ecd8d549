package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gcolor "github.com/RustVis/jiao-sub000"
)

func newCompositeCmd(root *rootFlags) *cobra.Command {
	var opName string

	cmd := &cobra.Command{
		Use:   "composite <source> <destination>",
		Short: "Composite one color onto another with a Porter-Duff operator",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := gcolor.ParseCompositeOp(opName)
			if !ok {
				return fmt.Errorf("unknown operator %q", opName)
			}
			src, err := gcolor.Parse(args[0])
			if err != nil {
				return err
			}
			dst, err := gcolor.Parse(args[1])
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			c := src.CompositeWith(dst, op)
			fmt.Fprintf(out, "%s%s\n", swatch(c, swatchEnabled(out, root)), c)
			return nil
		},
	}

	cmd.Flags().StringVar(&opName, "op", gcolor.OpSrcOver.String(), "Operator: src-over, dst-over, src-in, xor, plus, ...")

	return cmd
}
