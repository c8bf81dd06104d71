package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huey/internal/gradient"
)

type gradientEditOptions struct {
	source  gradientSource
	reset   bool
	sel     int
	addStop float64
	color   string
	offset  float64
	remove  bool
}

func newGradientEditCmd(app *appContext) *cobra.Command {
	opts := &gradientEditOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Change the stored gradient",
		Long: `Change the stored gradient and print the result.

Edits apply in this order: --reset, source flags (--preset, --file, --stop,
--type, --rotation), --select, --add-stop, --color and --offset, --remove.
--color, --offset and --remove act on the selected stop, which is the first
stop unless --select or --add-stop picks another one.`,
		Example: `  huey gradient edit --preset 3
  huey gradient edit --add-stop 30 --color tomato
  huey gradient edit --select 2 --offset 65
  huey gradient edit --select 2 --remove`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGradientEdit(cmd, app, opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().BoolVar(&opts.reset, "reset", false, "Start over from the default gradient")
	cmd.Flags().IntVar(&opts.sel, "select", 0, "Select stop N, counted from 1 in offset order")
	cmd.Flags().Float64Var(&opts.addStop, "add-stop", 0, "Add a white stop at this offset and select it")
	cmd.Flags().StringVar(&opts.color, "color", "", "Recolor the selected stop")
	cmd.Flags().Float64Var(&opts.offset, "offset", 0, "Move the selected stop")
	cmd.Flags().BoolVar(&opts.remove, "remove", false, "Remove the selected stop")

	return cmd
}

func runGradientEdit(cmd *cobra.Command, app *appContext, opts *gradientEditOptions) error {
	ctx := cmd.Context()

	backends, err := app.openBackends("edit gradient")
	if err != nil {
		return err
	}
	defer backends.Close()

	pref := newGradientPreference(app, backends)
	stored, err := pref.Get(ctx)
	if err != nil {
		app.log.Warn("ignoring stored gradient", "error", err.Error())
	}
	if opts.reset {
		stored = gradient.Default()
	}

	editor := gradient.NewEditor(stored)
	v, err := opts.source.resolve(cmd, stored)
	if err != nil {
		return newCommandError("edit gradient", "building gradient", err, "Check --preset, --file, --stop, --type and --rotation.")
	}
	editor.SetValue(v)
	if err := applyEdits(cmd, editor, opts); err != nil {
		return newCommandError("edit gradient", "applying edits", err, "Run 'huey gradient edit' without flags to see the stop numbers.")
	}

	result := editor.Value()
	if err := pref.Set(ctx, result); err != nil {
		return newCommandError("edit gradient", "saving gradient", err, "Check the preference store is writable.")
	}
	app.log.Debug("gradient saved", "stops", len(result.Stops), "type", string(result.Type))

	current, _ := editor.Current()
	return renderEditedGradient(cmd, result, current.ID)
}

func applyEdits(cmd *cobra.Command, editor *gradient.Editor, opts *gradientEditOptions) error {
	if opts.sel != 0 {
		stops := editor.Value().Stops
		if opts.sel < 1 || opts.sel > len(stops) {
			return fmt.Errorf("stop %d out of range (1-%d)", opts.sel, len(stops))
		}
		if err := editor.Select(stops[opts.sel-1].ID); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("add-stop") {
		editor.AddStopAt(opts.addStop)
	}

	if opts.color != "" {
		if err := editor.SetColor(opts.color); err != nil {
			return err
		}
	}

	if cmd.Flags().Changed("offset") {
		if err := editor.SetOffset(opts.offset); err != nil {
			return err
		}
	}

	if opts.remove {
		current, ok := editor.Current()
		if !ok {
			return gradient.ErrStopNotFound
		}
		if err := editor.Remove(current.ID); err != nil {
			return err
		}
	}

	return nil
}

func renderEditedGradient(cmd *cobra.Command, v gradient.Value, currentID string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s gradient, %s\n\n", v.Type, rotationLabel(v))

	writer := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, " \t#\tCOLOR\tOFFSET")
	for i, s := range v.Stops {
		marker := " "
		if s.ID == currentID {
			marker = "*"
		}
		fmt.Fprintf(writer, "%s\t%d\t%s\t%g%%\n", marker, i+1, s.Color, s.Offset)
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	fmt.Fprintln(out)
	printBlock(cmd, gradient.CSS(v))
	return nil
}
