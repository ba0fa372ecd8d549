package main

import (
	"fmt"

	"github.com/spf13/cobra"

	gcolor "github.com/RustVis/jiao-sub000"
)

var (
	commit = "none"
	date   = "unknown"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display build information",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprintf(cmd.OutOrStdout(), "gcolor %s\ncommit: %s\nbuilt: %s\n", gcolor.Version, commit, date)
			return nil
		},
	}
}
