package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	gcolor "github.com/RustVis/jiao-sub000"
)

type convertFlags struct {
	to    string
	float bool
}

func newConvertCmd(root *rootFlags) *cobra.Command {
	flags := &convertFlags{}

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Show a color in the RGB, HSV, HSL and CMYK models",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := gcolor.Parse(args[0])
			if err != nil {
				return err
			}

			specs := []gcolor.Spec{gcolor.SpecRGB, gcolor.SpecHSV, gcolor.SpecHSL, gcolor.SpecCMYK}
			if flags.to != "" {
				s, ok := gcolor.ParseSpec(strings.ToLower(flags.to))
				if !ok {
					return fmt.Errorf("unknown model %q (want rgb, hsv, hsl or cmyk)", flags.to)
				}
				specs = []gcolor.Spec{s}
			}

			out := cmd.OutOrStdout()
			sw := swatch(c, swatchEnabled(out, root))
			for _, s := range specs {
				fmt.Fprintf(out, "%s%s\n", sw, formatIn(c, s, flags.float))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&flags.to, "to", "", "Only print this model: rgb, hsv, hsl or cmyk")
	cmd.Flags().BoolVar(&flags.float, "float", false, "Print components as fractions in [0, 1]")

	return cmd
}

// formatIn renders c in the given model as "model(a, b, c, alpha)".
func formatIn(c gcolor.Color, s gcolor.Spec, float bool) string {
	var ints []int
	var floats []float64
	switch s {
	case gcolor.SpecHSV:
		h, sat, v, a := c.GetHSV()
		ints = []int{h, int(sat), int(v), int(a)}
		hf, sf, vf, af := c.GetHSVF()
		floats = []float64{hf, sf, vf, af}
	case gcolor.SpecHSL:
		h, sat, l, a := c.GetHSL()
		ints = []int{h, int(sat), int(l), int(a)}
		hf, sf, lf, af := c.GetHSLF()
		floats = []float64{hf, sf, lf, af}
	case gcolor.SpecCMYK:
		cy, m, y, k, a := c.GetCMYK()
		ints = []int{int(cy), int(m), int(y), int(k), int(a)}
		cf, mf, yf, kf, af := c.GetCMYKF()
		floats = []float64{cf, mf, yf, kf, af}
	default:
		r, g, b, a := c.GetRGB()
		ints = []int{int(r), int(g), int(b), int(a)}
		rf, gf, bf, af := c.GetRGBF()
		floats = []float64{rf, gf, bf, af}
	}

	parts := make([]string, 0, len(ints))
	if float {
		for _, f := range floats {
			parts = append(parts, fmt.Sprintf("%.4f", f))
		}
	} else {
		for _, i := range ints {
			parts = append(parts, fmt.Sprint(i))
		}
	}
	return fmt.Sprintf("%s(%s)", s, strings.Join(parts, ", "))
}
