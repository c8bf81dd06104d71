package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huey/internal/gradient"
)

type gradientRenderOptions struct {
	source  gradientSource
	width   int
	height  int
	format  string
	out     string
	dataURI bool
}

func newGradientRenderCmd(app *appContext) *cobra.Command {
	opts := &gradientRenderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Rasterise a gradient to PNG, JPEG or WebP",
		Long: `Rasterise a gradient to PNG, JPEG or WebP.

The image is written to gradient_<width>x<height>.<ext> unless --out is
given. Use --out - to write the image to stdout, or --data-uri to print a
base64 data URI instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGradientRender(cmd, app, opts)
		},
	}

	opts.source.register(cmd)
	cmd.Flags().IntVarP(&opts.width, "width", "W", 0, "Image width in pixels (default from config)")
	cmd.Flags().IntVarP(&opts.height, "height", "H", 0, "Image height in pixels (default from config)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "Image format: png, jpeg or webp (default from --out or config)")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "Output file, or - for stdout")
	cmd.Flags().BoolVar(&opts.dataURI, "data-uri", false, "Print a data URI instead of writing a file")

	return cmd
}

func runGradientRender(cmd *cobra.Command, app *appContext, opts *gradientRenderOptions) error {
	v, err := loadGradient(cmd, app, &opts.source, "render gradient")
	if err != nil {
		return err
	}

	width, height := opts.width, opts.height
	if width == 0 {
		width = app.cfg.Gradient.Width
	}
	if height == 0 {
		height = app.cfg.Gradient.Height
	}

	format, err := gradient.ParseImageFormat(renderFormatName(opts, app.cfg.Gradient.Format))
	if err != nil {
		return newCommandError("render gradient", "parsing --format", err, "Use png, jpeg or webp.")
	}

	if opts.dataURI {
		uri, err := gradient.ToImage(v, width, height, format)
		if err != nil {
			return newCommandError("render gradient", fmt.Sprintf("%dx%d %s", width, height, format), err, fmt.Sprintf("Width and height must be between 1 and %d.", gradient.MaxDimension))
		}
		fmt.Fprintln(cmd.OutOrStdout(), uri)
		return nil
	}

	var buf bytes.Buffer
	if err := gradient.RenderTo(&buf, v, width, height, format); err != nil {
		return newCommandError("render gradient", fmt.Sprintf("%dx%d %s", width, height, format), err, fmt.Sprintf("Width and height must be between 1 and %d.", gradient.MaxDimension))
	}

	if opts.out == "-" {
		_, err := cmd.OutOrStdout().Write(buf.Bytes())
		return err
	}

	path := opts.out
	if path == "" {
		path = gradient.DefaultFileName(width, height, format)
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return newCommandError("render gradient", "writing "+path, err, "Check the destination directory exists and is writable.")
	}
	app.log.Debug("gradient rendered", "path", path, "bytes", buf.Len())
	fmt.Fprintf(cmd.OutOrStdout(), "Wrote %dx%d %s to %s\n", width, height, strings.ToUpper(string(format)), path)
	return nil
}

// renderFormatName picks the format from --format, then the --out extension,
// then the configured default.
func renderFormatName(opts *gradientRenderOptions, fallback string) string {
	if opts.format != "" {
		return opts.format
	}
	if opts.out != "" && opts.out != "-" {
		if ext := strings.TrimPrefix(filepath.Ext(opts.out), "."); ext != "" {
			if _, err := gradient.ParseImageFormat(ext); err == nil {
				return ext
			}
		}
	}
	return fallback
}
