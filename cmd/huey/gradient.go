package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/huey/internal/color"
	"github.com/alexisbeaulieu97/huey/internal/gradient"
	"github.com/alexisbeaulieu97/huey/internal/store"
)

func newGradientCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "gradient",
		Short: "Build, preview and export CSS gradients",
		Long: `Build, preview and export CSS gradients.

Subcommands work on the stored gradient unless a source is given with
--preset, --file or --stop. Use 'huey gradient edit' to change the stored
gradient.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newGradientCSSCmd(app))
	cmd.AddCommand(newGradientRenderCmd(app))
	cmd.AddCommand(newGradientPresetsCmd())
	cmd.AddCommand(newGradientEditCmd(app))

	return cmd
}

// gradientSource collects the flags that describe a gradient on the command
// line. Flags override the stored gradient in the order preset, file, stops,
// type, rotation.
type gradientSource struct {
	preset   int
	file     string
	typ      string
	rotation float64
	stops    []string
}

func (s *gradientSource) register(cmd *cobra.Command) {
	cmd.Flags().IntVarP(&s.preset, "preset", "p", 0, "Start from built-in preset N (see 'huey gradient presets')")
	cmd.Flags().StringVar(&s.file, "file", "", "Read the gradient from a YAML or JSON file")
	cmd.Flags().StringVar(&s.typ, "type", "", "Gradient type: linear or radial")
	cmd.Flags().Float64VarP(&s.rotation, "rotation", "r", 0, "Linear gradient angle in degrees")
	cmd.Flags().StringArrayVarP(&s.stops, "stop", "s", nil, "Color stop as COLOR[@OFFSET], repeatable")
}

func (s *gradientSource) resolve(cmd *cobra.Command, base gradient.Value) (gradient.Value, error) {
	v := base

	if s.preset != 0 {
		presets := gradient.Presets()
		if s.preset < 1 || s.preset > len(presets) {
			return gradient.Value{}, fmt.Errorf("preset %d out of range (1-%d)", s.preset, len(presets))
		}
		v = presets[s.preset-1]
	}

	if s.file != "" {
		loaded, err := readGradientFile(s.file)
		if err != nil {
			return gradient.Value{}, err
		}
		v = loaded
	}

	if len(s.stops) > 0 {
		stops, err := parseStops(s.stops)
		if err != nil {
			return gradient.Value{}, err
		}
		v.Stops = stops
	}

	if s.typ != "" {
		t, err := gradient.ParseType(s.typ)
		if err != nil {
			return gradient.Value{}, err
		}
		v.Type = t
	}

	if cmd.Flags().Changed("rotation") {
		v = v.SetRotation(s.rotation)
	}

	return gradient.New(v.Type, v.Rotation, v.Stops...)
}

func readGradientFile(path string) (gradient.Value, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return gradient.Value{}, err
	}

	var v gradient.Value
	if err := yaml.Unmarshal(data, &v); err != nil {
		return gradient.Value{}, fmt.Errorf("decode %s: %w", path, err)
	}
	for i, stop := range v.Stops {
		if stop.ID == "" {
			v.Stops[i] = gradient.NewStop(stop.Color, stop.Offset)
		}
	}
	return v, nil
}

// parseStops reads COLOR[@OFFSET] specs. Stops without an offset are spread
// evenly across the track.
func parseStops(specs []string) ([]gradient.Stop, error) {
	stops := make([]gradient.Stop, 0, len(specs))
	for i, spec := range specs {
		colorPart, offsetPart, hasOffset := strings.Cut(spec, "@")

		c, err := color.Parse(colorPart)
		if err != nil {
			return nil, fmt.Errorf("stop %q: %w", spec, err)
		}

		offset := 0.0
		switch {
		case hasOffset:
			offset, err = strconv.ParseFloat(strings.TrimSuffix(strings.TrimSpace(offsetPart), "%"), 64)
			if err != nil {
				return nil, fmt.Errorf("stop %q: invalid offset: %w", spec, err)
			}
		case len(specs) > 1:
			offset = float64(i) * 100 / float64(len(specs)-1)
		}

		stops = append(stops, gradient.NewStop(c.Hex, offset))
	}
	return stops, nil
}

func newGradientPreference(app *appContext, backends *store.Backends) *store.Preference[gradient.Value] {
	return store.NewPreference(backends, gradient.StoreKey, gradient.Default(), store.WithKind(app.storageKind()))
}

// loadGradient resolves the gradient a command works on: the stored one with
// any source flags applied.
func loadGradient(cmd *cobra.Command, app *appContext, src *gradientSource, operation string) (gradient.Value, error) {
	backends, err := app.openBackends(operation)
	if err != nil {
		return gradient.Value{}, err
	}
	defer backends.Close()

	stored, err := newGradientPreference(app, backends).Get(cmd.Context())
	if err != nil {
		app.log.Warn("ignoring stored gradient", "error", err.Error())
	}

	v, err := src.resolve(cmd, stored)
	if err != nil {
		return gradient.Value{}, newCommandError(operation, "building gradient", err, "Check --preset, --file, --stop, --type and --rotation.")
	}
	return v, nil
}

type gradientCSSOptions struct {
	source    gradientSource
	imageOnly bool
}

func newGradientCSSCmd(app *appContext) *cobra.Command {
	opts := &gradientCSSOptions{}

	cmd := &cobra.Command{
		Use:   "css",
		Short: "Print the CSS for a gradient",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := loadGradient(cmd, app, &opts.source, "build gradient css")
			if err != nil {
				return err
			}
			if opts.imageOnly {
				printBlock(cmd, gradient.CSSColor(v))
				return nil
			}
			printBlock(cmd, gradient.CSS(v))
			return nil
		},
	}

	opts.source.register(cmd)
	cmd.Flags().BoolVar(&opts.imageOnly, "image-only", false, "Print only the gradient image value")

	return cmd
}
