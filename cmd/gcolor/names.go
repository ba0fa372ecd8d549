package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gcolor "github.com/RustVis/jiao-sub000"
)

func newNamesCmd() *cobra.Command {
	var filter string

	cmd := &cobra.Command{
		Use:   "names",
		Short: "List the color keywords the parser accepts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			filter = strings.ToLower(filter)
			for _, name := range gcolor.ColorNames() {
				if !strings.Contains(name, filter) {
					continue
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%-22s %s\n", name, gcolor.MustParse(name).Name())
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&filter, "filter", "", "Only list names containing this text")

	return cmd
}
