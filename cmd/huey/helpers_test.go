package main

import (
	"bytes"
	"path/filepath"
	"testing"
)

// setupHome points HOME and the XDG config directory at a temporary
// directory and returns huey's config directory inside it.
func setupHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, ".config"))
	for _, key := range []string{"HUEY_PALETTE_THEME", "HUEY_PALETTE_FORMAT", "HUEY_STORAGE_BACKEND", "HUEY_STORAGE_KIND", "HUEY_STORAGE_PATH"} {
		t.Setenv(key, "")
	}
	return filepath.Join(home, ".config", "huey")
}

// executeCommand runs the root command with args and returns stdout and
// stderr separately.
func executeCommand(args ...string) (string, string, error) {
	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
