package main

import (
	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/huey/internal/config"
	"github.com/alexisbeaulieu97/huey/internal/logger"
	"github.com/alexisbeaulieu97/huey/internal/store"
)

// appContext bundles the services every command shares. It is filled in by
// the root command before any subcommand runs.
type appContext struct {
	flags *rootFlags

	configPath string
	cfg        *config.Config
	log        *logger.Logger
}

func (a *appContext) load(cmd *cobra.Command) error {
	a.configPath = a.flags.configPath
	if a.configPath == "" {
		a.configPath = config.DefaultPath()
	}

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return newCommandError("load configuration", a.configPath, err, "Fix the reported field or run 'huey config init --force' to start over.")
	}
	a.cfg = cfg

	level := cfg.Log.Level
	if a.flags.verbose {
		level = "debug"
	}
	log, err := logger.New(logger.Options{Level: level, HumanReadable: cfg.Log.Human, Writer: cmd.ErrOrStderr()})
	if err != nil {
		return newCommandError("create logger", "level "+level, err, "Use one of trace, debug, info, warn or error for log.level.")
	}
	a.log = log.WithFields(map[string]any{"command": cmd.Name()})
	a.log.Debug("configuration loaded", "path", a.configPath, "storage", cfg.Storage.Backend)
	return nil
}

// loadDefaults falls back to the built-in configuration and a stderr logger.
func (a *appContext) loadDefaults(cmd *cobra.Command) {
	if a.configPath == "" {
		a.configPath = config.DefaultPath()
	}
	a.cfg = config.Default()
	log, err := logger.New(logger.Options{Level: a.cfg.Log.Level, HumanReadable: a.cfg.Log.Human, Writer: cmd.ErrOrStderr()})
	if err != nil {
		log = logger.Nop()
	}
	a.log = log
}

// openBackends opens the configured persistent store. The caller owns the
// returned backends and must close them.
func (a *appContext) openBackends(operation string) (*store.Backends, error) {
	path := a.cfg.Storage.StorePath()
	local, err := store.Open(a.cfg.Storage.Backend, path, store.WithLogger(a.log))
	if err != nil {
		return nil, newCommandError(operation, "opening preference store "+path, err, "Check storage.backend and storage.path in your configuration.")
	}
	a.log.Debug("preference store opened", "backend", a.cfg.Storage.Backend, "path", path)
	return store.NewBackends(local), nil
}

// storageKind is the configured kind for generator preferences.
func (a *appContext) storageKind() store.Kind {
	kind, err := store.ParseKind(a.cfg.Storage.Kind)
	if err != nil {
		return store.KindInfer
	}
	return kind
}
