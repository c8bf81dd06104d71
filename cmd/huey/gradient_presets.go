package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huey/internal/gradient"
)

type gradientPresetsOptions struct {
	jsonOutput bool
}

func newGradientPresetsCmd() *cobra.Command {
	opts := &gradientPresetsOptions{}

	cmd := &cobra.Command{
		Use:   "presets",
		Short: "List the built-in gradients",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			presets := gradient.Presets()
			if opts.jsonOutput {
				return renderPresetsJSON(cmd, presets)
			}
			return renderPresetsTable(cmd, presets)
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func renderPresetsTable(cmd *cobra.Command, presets []gradient.Value) error {
	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)

	fmt.Fprintln(writer, "#\tTYPE\tROTATION\tSTOPS")
	for i, v := range presets {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", i+1, v.Type, rotationLabel(v), stopsLabel(v))
	}

	return writer.Flush()
}

type presetJSON struct {
	Index int            `json:"index"`
	Value gradient.Value `json:"value"`
	CSS   string         `json:"css"`
}

type presetsJSONPayload struct {
	Count   int          `json:"count"`
	Presets []presetJSON `json:"presets"`
}

func renderPresetsJSON(cmd *cobra.Command, presets []gradient.Value) error {
	payload := presetsJSONPayload{
		Count:   len(presets),
		Presets: make([]presetJSON, len(presets)),
	}
	for i, v := range presets {
		payload.Presets[i] = presetJSON{Index: i + 1, Value: v, CSS: gradient.CSSColor(v)}
	}
	return writeJSON(cmd.OutOrStdout(), payload)
}

func rotationLabel(v gradient.Value) string {
	if v.Type == gradient.TypeRadial {
		return "-"
	}
	return fmt.Sprintf("%gdeg", v.Rotation)
}

func stopsLabel(v gradient.Value) string {
	parts := make([]string, 0, len(v.Stops))
	for _, s := range v.Stops {
		parts = append(parts, fmt.Sprintf("%s@%g", strings.ToLower(s.Color), s.Offset))
	}
	return strings.Join(parts, " ")
}
