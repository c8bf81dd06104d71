package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huey/internal/color"
)

func newColorCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "color",
		Short: "Convert, compare and name colors",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newColorConvertCmd())
	cmd.AddCommand(newColorContrastCmd())
	cmd.AddCommand(newColorNameCmd())
	cmd.AddCommand(newColorMixCmd())

	return cmd
}

func parseColorArg(operation, arg string) (color.Color, error) {
	c, err := color.Parse(arg)
	if err != nil {
		return color.Color{}, newCommandError(operation, fmt.Sprintf("parsing %q", arg), err, "Use a hex value, rgb(), hsv() or a CSS color name.")
	}
	return c, nil
}

type colorConvertOptions struct {
	to         string
	jsonOutput bool
}

type colorJSON struct {
	Hex  string    `json:"hex"`
	RGB  color.RGB `json:"rgb"`
	HSV  color.HSV `json:"hsv"`
	Name string    `json:"name,omitempty"`
}

func newColorConvertCmd() *cobra.Command {
	opts := &colorConvertOptions{}

	cmd := &cobra.Command{
		Use:   "convert <color>",
		Short: "Show a color as hex, rgb and hsv",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColorArg("convert color", args[0])
			if err != nil {
				return err
			}
			name, _ := color.Name(c.RGB)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), colorJSON{Hex: c.Hex, RGB: c.RGB, HSV: c.HSV, Name: name})
			}

			if opts.to != "" {
				mode, err := color.ParseMode(opts.to)
				if err != nil {
					return newCommandError("convert color", "parsing --to", err, "Use hex, rgb or hsv.")
				}
				fmt.Fprintln(cmd.OutOrStdout(), color.Format(c, mode))
				return nil
			}

			writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintf(writer, "hex\t%s\n", c.Hex)
			fmt.Fprintf(writer, "rgb\t%s\n", color.FormatRGB(c.RGB))
			fmt.Fprintf(writer, "hsv\t%s\n", color.FormatHSV(c.HSV))
			if name != "" {
				fmt.Fprintf(writer, "name\t%s\n", name)
			}
			return writer.Flush()
		},
	}

	cmd.Flags().StringVar(&opts.to, "to", "", "Print only this representation: hex, rgb or hsv")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type colorContrastOptions struct {
	jsonOutput bool
}

type contrastJSON struct {
	Foreground string  `json:"foreground"`
	Background string  `json:"background"`
	Ratio      float64 `json:"ratio"`
	Rating     string  `json:"rating"`
	Score      int     `json:"score"`
}

func newColorContrastCmd() *cobra.Command {
	opts := &colorContrastOptions{}

	cmd := &cobra.Command{
		Use:   "contrast <foreground> <background>",
		Short: "Compute the WCAG contrast ratio of two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fg, err := parseColorArg("compute contrast", args[0])
			if err != nil {
				return err
			}
			bg, err := parseColorArg("compute contrast", args[1])
			if err != nil {
				return err
			}

			ratio := color.Contrast(fg.RGB, bg.RGB)
			rating := color.Rate(ratio)

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), contrastJSON{
					Foreground: fg.Hex,
					Background: bg.Hex,
					Ratio:      ratio,
					Rating:     rating.Label,
					Score:      rating.Score,
				})
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s on %s: %.2f:1 (%s)\n", fg.Hex, bg.Hex, ratio, rating.Label)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newColorNameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "name <color>",
		Short: "Print the CSS name of a color",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColorArg("name color", args[0])
			if err != nil {
				return err
			}
			name, ok := color.Name(c.RGB)
			if !ok {
				return newCommandError("name color", c.Hex, fmt.Errorf("no CSS color is exactly %s", c.Hex), "Only the 148 CSS named colors have names.")
			}
			fmt.Fprintln(cmd.OutOrStdout(), name)
			return nil
		},
	}
}

type colorMixOptions struct {
	amount float64
	space  string
}

func newColorMixCmd() *cobra.Command {
	opts := &colorMixOptions{}

	cmd := &cobra.Command{
		Use:   "mix <color> <color>",
		Short: "Blend two colors",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := parseColorArg("mix colors", args[0])
			if err != nil {
				return err
			}
			b, err := parseColorArg("mix colors", args[1])
			if err != nil {
				return err
			}
			space, err := color.ParseSpace(opts.space)
			if err != nil {
				return newCommandError("mix colors", "parsing --space", err, "Use rgb, linear-rgb, lab, luv or hcl.")
			}
			if opts.amount < 0 || opts.amount > 100 {
				return newCommandError("mix colors", "parsing --amount", fmt.Errorf("amount %g out of range", opts.amount), "Use a percentage between 0 and 100.")
			}

			fmt.Fprintln(cmd.OutOrStdout(), color.Blend(a.RGB, b.RGB, opts.amount/100, space).String())
			return nil
		},
	}

	cmd.Flags().Float64VarP(&opts.amount, "amount", "a", 50, "Percentage of the second color")
	cmd.Flags().StringVar(&opts.space, "space", "rgb", "Blend space: rgb, linear-rgb, lab, luv or hcl")

	return cmd
}
