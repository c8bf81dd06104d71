package main

import (
	"github.com/spf13/cobra"
)

type rootFlags struct {
	verbose    bool
	configPath string
}

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}
	app := &appContext{flags: flags}

	cmd := &cobra.Command{
		Use:           "huey",
		Short:         "Huey generates color palettes and gradients",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return app.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().BoolVarP(&flags.verbose, "verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Configuration file (default is $XDG_CONFIG_HOME/huey/config.yaml)")

	cmd.AddCommand(newPaletteCmd(app))
	cmd.AddCommand(newGradientCmd(app))
	cmd.AddCommand(newColorCmd())
	cmd.AddCommand(newPrefsCmd(app))
	cmd.AddCommand(newConfigCmd(app))
	cmd.AddCommand(newUICmd(app))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
