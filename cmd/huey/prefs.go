package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huey/internal/store"
)

func newPrefsCmd(app *appContext) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "prefs",
		Short: "Inspect and edit stored preferences",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.AddCommand(newPrefsListCmd(app))
	cmd.AddCommand(newPrefsGetCmd(app))
	cmd.AddCommand(newPrefsSetCmd(app))
	cmd.AddCommand(newPrefsRemoveCmd(app))
	cmd.AddCommand(newPrefsStorageCmd(app))

	return cmd
}

type prefsListOptions struct {
	jsonOutput bool
}

func newPrefsListCmd(app *appContext) *cobra.Command {
	opts := &prefsListOptions{}

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored preference keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			backends, err := app.openBackends("list preferences")
			if err != nil {
				return err
			}
			defer backends.Close()

			keys, err := backends.Local.Keys(cmd.Context())
			if err != nil {
				return newCommandError("list preferences", app.cfg.Storage.StorePath(), err, "Check the preference store is readable.")
			}

			if opts.jsonOutput {
				return writeJSON(cmd.OutOrStdout(), map[string]any{"count": len(keys), "keys": keys})
			}
			if len(keys) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No preferences stored yet.")
				return nil
			}
			for _, key := range keys {
				fmt.Fprintln(cmd.OutOrStdout(), key)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func newPrefsGetCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "get <key>",
		Short: "Print a stored preference as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			key := args[0]
			backends, err := app.openBackends("read preference")
			if err != nil {
				return err
			}
			defer backends.Close()

			raw, ok, err := backends.Local.Get(cmd.Context(), key)
			if err != nil {
				return newCommandError("read preference", key, err, "Check the preference store is readable.")
			}
			if !ok {
				return newCommandError("read preference", key, errors.New("not set"), "Run 'huey prefs list' to see stored keys.")
			}

			var buf bytes.Buffer
			if err := json.Indent(&buf, raw, "", "  "); err != nil {
				return newCommandError("read preference", key, err, "Remove the value with 'huey prefs rm' and set it again.")
			}
			printBlock(cmd, buf.String())
			return nil
		},
	}
}

func newPrefsSetCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "set <key> <json>",
		Short: "Store a JSON value under a key",
		Example: `  huey prefs set user-storage-pref '"session"'
  huey prefs set palette-generator '{"theme":"dark","light":{"primaryColor":"#3b82f6","bgColor":"#f2f2f2"},"dark":{"primaryColor":"#e11d48","bgColor":"#000000"}}'`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			key, value := args[0], []byte(args[1])
			if !json.Valid(value) {
				return newCommandError("store preference", key, errors.New("value is not valid JSON"), `Quote strings, e.g. '"dark"'.`)
			}

			backends, err := app.openBackends("store preference")
			if err != nil {
				return err
			}
			defer backends.Close()

			if err := backends.Local.Set(cmd.Context(), key, value); err != nil {
				return newCommandError("store preference", key, err, "Check the preference store is writable.")
			}
			app.log.Debug("preference stored", "key", key)
			return nil
		},
	}
}

func newPrefsRemoveCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:     "rm <key>",
		Aliases: []string{"remove"},
		Short:   "Remove a stored preference",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			backends, err := app.openBackends("remove preference")
			if err != nil {
				return err
			}
			defer backends.Close()

			if err := backends.Local.Remove(cmd.Context(), args[0]); err != nil {
				return newCommandError("remove preference", args[0], err, "Check the preference store is writable.")
			}
			return nil
		},
	}
}

func newPrefsStorageCmd(app *appContext) *cobra.Command {
	return &cobra.Command{
		Use:   "storage [local|session|memory]",
		Short: "Show or change where inferred preferences are kept",
		Long: `Show or change where inferred preferences are kept.

Preferences whose storage kind is infer follow this setting. local persists
across runs, session lasts for a single process and memory is never stored.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			backends, err := app.openBackends("change storage preference")
			if err != nil {
				return err
			}
			defer backends.Close()

			if len(args) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), backends.PreferredKind(ctx))
				return nil
			}

			kind, err := store.ParseKind(args[0])
			if err == nil && kind == store.KindInfer {
				err = errors.New("infer is not a storage location")
			}
			if err != nil {
				return newCommandError("change storage preference", args[0], err, "Use local, session or memory.")
			}
			if err := backends.SetPreferredKind(ctx, kind); err != nil {
				return newCommandError("change storage preference", string(kind), err, "Check the preference store is writable.")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Preferences are now kept in %s storage\n", kind)
			return nil
		},
	}
}
