package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huey/internal/color"
	"github.com/alexisbeaulieu97/huey/internal/palette"
	"github.com/alexisbeaulieu97/huey/internal/store"
	"github.com/alexisbeaulieu97/huey/internal/tui/components"
	"github.com/alexisbeaulieu97/huey/pkg/diff"
)

type paletteOptions struct {
	base   string
	bg     string
	theme  string
	format string
	space  string
	out    string
	save   bool
	diff   bool
}

func newPaletteCmd(app *appContext) *cobra.Command {
	opts := &paletteOptions{}

	cmd := &cobra.Command{
		Use:   "palette",
		Short: "Generate a 12 step palette from a base and background color",
		Long: `Generate a 12 step palette from a base and background color.

Without flags the palette is built from the stored generator settings, the
same ones the interactive 'huey ui' screen edits.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPalette(cmd, app, opts)
		},
	}

	cmd.Flags().StringVarP(&opts.base, "base", "b", "", "Base (step 9) color")
	cmd.Flags().StringVar(&opts.bg, "bg", "", "Background color")
	cmd.Flags().StringVarP(&opts.theme, "theme", "t", "", "Theme: light or dark")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Output format: css, chakra, text, yaml, toml or json")
	cmd.Flags().StringVar(&opts.space, "space", "", "Interpolation space: rgb, linear-rgb, lab, luv or hcl")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Write the output to a file instead of stdout")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Remember the colors and theme as the generator settings")
	cmd.Flags().BoolVar(&opts.diff, "diff", false, "With --out, show how the file would change without writing it")

	return cmd
}

func newPaletteSettings(app *appContext, backends *store.Backends) *store.Preference[palette.Settings] {
	return store.NewPreference(backends, palette.SettingsKey, palette.DefaultSettings(), store.WithKind(app.storageKind()))
}

func runPalette(cmd *cobra.Command, app *appContext, opts *paletteOptions) error {
	ctx := cmd.Context()

	backends, err := app.openBackends("generate palette")
	if err != nil {
		return err
	}
	defer backends.Close()

	pref := newPaletteSettings(app, backends)
	settings, err := pref.Get(ctx)
	if err != nil {
		app.log.Warn("ignoring stored palette settings", "error", err.Error())
	}
	if stored, err := pref.Exists(ctx); err == nil && !stored {
		settings.Theme = palette.Theme(app.cfg.Palette.Theme)
	}

	if opts.theme != "" {
		theme, err := palette.ParseTheme(opts.theme)
		if err != nil {
			return newCommandError("generate palette", "parsing --theme", err, "Use light or dark.")
		}
		settings.Theme = theme
	}

	active := settings.Active()
	for _, override := range []struct {
		value  string
		target *string
		flag   string
	}{
		{app.cfg.Palette.Primary, &active.Primary, "palette.primary"},
		{app.cfg.Palette.Background, &active.Background, "palette.background"},
		{opts.base, &active.Primary, "--base"},
		{opts.bg, &active.Background, "--bg"},
	} {
		if override.value == "" {
			continue
		}
		c, err := color.Parse(override.value)
		if err != nil {
			return newCommandError("generate palette", "parsing "+override.flag, err, "Use a hex value, rgb(), hsv() or a CSS color name.")
		}
		*override.target = c.Hex
	}
	settings = settings.WithActive(active)

	format, err := palette.ParseFormat(firstNonEmpty(opts.format, app.cfg.Palette.Format))
	if err != nil {
		return newCommandError("generate palette", "parsing --format", err, "Use css, chakra, text, yaml, toml or json.")
	}
	space, err := color.ParseSpace(firstNonEmpty(opts.space, app.cfg.Palette.Space))
	if err != nil {
		return newCommandError("generate palette", "parsing --space", err, "Use rgb, linear-rgb, lab, luv or hcl.")
	}

	p, err := palette.GenerateWith(palette.Options{Base: active.Primary, Background: active.Background, Space: space})
	if err != nil {
		return newCommandError("generate palette", fmt.Sprintf("base %s on %s", active.Primary, active.Background), err, "Check both colors are valid.")
	}
	output, err := palette.Serialize(format, p, active.Background, settings.Theme)
	if err != nil {
		return newCommandError("generate palette", "serialising "+format.Label(), err, "Try another --format.")
	}
	app.log.Debug("palette generated", "name", p.Name, "format", string(format), "space", string(space))

	if opts.diff {
		return previewPaletteFile(cmd, opts.out, output)
	}

	if opts.save {
		if err := pref.Set(ctx, settings); err != nil {
			return newCommandError("generate palette", "saving generator settings", err, "Check the preference store is writable.")
		}
	}

	if opts.out != "" {
		if err := os.WriteFile(opts.out, []byte(output), 0o644); err != nil {
			return newCommandError("generate palette", "writing "+opts.out, err, "Check the destination directory exists and is writable.")
		}
		fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s palette %q to %s\n", format.Label(), p.Name, opts.out)
		return nil
	}

	if supportsUnicode(cmd.OutOrStdout()) {
		fmt.Fprintln(cmd.OutOrStdout(), components.NewSwatchRow(p.Slice()).View())
		fmt.Fprintln(cmd.OutOrStdout())
	}
	printBlock(cmd, output)
	return nil
}

// previewPaletteFile prints the changes writing output to path would make.
// Nothing is written and the settings are not saved.
func previewPaletteFile(cmd *cobra.Command, path, output string) error {
	if path == "" {
		return newCommandError("preview palette", "--diff", errors.New("no file to compare against"), "Pass --out with the file to compare.")
	}

	before, err := os.ReadFile(path)
	beforeLabel := path
	if errors.Is(err, fs.ErrNotExist) {
		before, beforeLabel = nil, "/dev/null"
	} else if err != nil {
		return newCommandError("preview palette", "reading "+path, err, "Check the file is readable.")
	}

	unified := diff.Unified(before, []byte(output), beforeLabel, path)
	if unified == "" {
		fmt.Fprintf(cmd.OutOrStdout(), "%s is up to date\n", path)
		return nil
	}
	inserted, deleted := diff.Stat(before, []byte(output))
	fmt.Fprint(cmd.OutOrStdout(), unified)
	fmt.Fprintf(cmd.OutOrStdout(), "\n%d insertions(+), %d deletions(-)\n", inserted, deleted)
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
