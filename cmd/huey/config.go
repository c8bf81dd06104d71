package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/huey/internal/config"
)

func newConfigCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show or create the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newConfigShowCmd(app))
	cmd.AddCommand(newConfigInitCmd(app))

	return cmd
}

type configShowOptions struct {
	jsonOutput bool
}

func newConfigShowCmd(app *appContext) *cobra.Command {
	opts := &configShowOptions{}

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{
					"path":   app.configPath,
					"store":  app.cfg.Storage.StorePath(),
					"config": app.cfg,
				})
			}

			data, err := yaml.Marshal(app.cfg)
			if err != nil {
				return newCommandError("show configuration", app.configPath, err, "Report this as a bug.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "# %s\n# preferences: %s\n", app.configPath, app.cfg.Storage.StorePath())
			printBlock(cmd, string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

type configInitOptions struct {
	force bool
}

func newConfigInitCmd(app *appContext) *cobra.Command {
	opts := &configInitOptions{}

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Write a configuration file with the default settings",
		Long: `Write a configuration file with the default settings.

The file is written to the --config path, or to the given path. A .toml
extension selects TOML; anything else is written as YAML.`,
		Args: cobra.MaximumNArgs(1),
		// An unreadable existing file must not stop init --force from
		// replacing it.
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := app.load(cmd); err != nil {
				app.loadDefaults(cmd)
				app.log.Debug("ignoring unreadable configuration", "error", err.Error())
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			path := app.configPath
			if len(args) == 1 {
				path = args[0]
			}

			if _, err := os.Stat(path); err == nil && !opts.force {
				return newCommandError("initialise configuration", path, errors.New("file already exists"), "Pass --force to overwrite it.")
			}

			if err := config.Save(config.Default(), path); err != nil {
				return newCommandError("initialise configuration", path, err, "Check the directory is writable.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote default configuration to %s\n", path)
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.force, "force", false, "Overwrite an existing file")

	return cmd
}
