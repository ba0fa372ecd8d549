package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	gcolor "github.com/RustVis/jiao-sub000"
)

type rootFlags struct {
	verbose  bool
	noSwatch bool
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "gcolor",
		Short:         "Convert, name and adjust colors",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if !flags.verbose {
				gcolor.SetLogger(nil)
				return
			}
			gcolor.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Log parser and palette diagnostics to stderr")
	cmd.PersistentFlags().BoolVar(&flags.noSwatch, "no-swatch", false, "Never print color swatches")

	cmd.AddCommand(newConvertCmd(flags))
	cmd.AddCommand(newNameCmd(flags))
	cmd.AddCommand(newToneCmd(flags, "lighter", gcolor.DefaultLighterFactor, gcolor.Color.LighterBy))
	cmd.AddCommand(newToneCmd(flags, "darker", gcolor.DefaultDarkerFactor, gcolor.Color.DarkerBy))
	cmd.AddCommand(newCompositeCmd(flags))
	cmd.AddCommand(newNamesCmd())
	cmd.AddCommand(newPaletteCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
