package main

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huey/internal/color"
	"github.com/alexisbeaulieu97/huey/internal/palette"
	"github.com/alexisbeaulieu97/huey/internal/tui"
)

type uiOptions struct {
	format string
}

func newUICmd(app *appContext) *cobra.Command {
	opts := &uiOptions{}

	cmd := &cobra.Command{
		Use:   "ui",
		Short: "Open the interactive palette generator",
		Long: `Open the interactive palette generator.

Colors typed into the screen are saved as you go, so 'huey palette' without
flags reproduces the last palette you built.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runUI(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Initial output format")

	return cmd
}

func runUI(cmd *cobra.Command, app *appContext, opts *uiOptions) error {
	if !supportsUnicode(os.Stdout) {
		return newCommandError("open palette generator", "stdout", errors.New("not a terminal"), "Use 'huey palette' in scripts and pipes.")
	}

	format, err := palette.ParseFormat(firstNonEmpty(opts.format, app.cfg.Palette.Format))
	if err != nil {
		return newCommandError("open palette generator", "parsing --format", err, "Use css, chakra, text, yaml, toml or json.")
	}
	space, err := color.ParseSpace(app.cfg.Palette.Space)
	if err != nil {
		return newCommandError("open palette generator", "palette.space", err, "Use rgb, linear-rgb, lab, luv or hcl.")
	}

	backends, err := app.openBackends("open palette generator")
	if err != nil {
		return err
	}
	defer backends.Close()

	final, err := tui.Run(cmd.Context(), newPaletteSettings(app, backends), tui.Options{
		Format: format,
		Space:  space,
		Logger: app.log,
	})
	if err != nil {
		return newCommandError("open palette generator", "running the screen", err, "Try a different terminal or use 'huey palette'.")
	}
	app.log.Debug("palette generator closed", "name", final.Palette().Name)
	return nil
}
