package main

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huey/internal/config"
)

func TestConfigShowCommand(t *testing.T) {
	dir := setupHome(t)

	stdout, _, err := executeCommand("config", "show")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, "# "+filepath.Join(dir, "config.yaml")+"\n"))
	require.Contains(t, stdout, "# preferences: "+filepath.Join(dir, "prefs.json"))
	require.Contains(t, stdout, "theme: light")
	require.Contains(t, stdout, "width: 300")

	stdout, _, err = executeCommand("config", "show", "--json")
	require.NoError(t, err)

	var payload struct {
		Path   string        `json:"path"`
		Store  string        `json:"store"`
		Config config.Config `json:"config"`
	}
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, *config.Default(), payload.Config)
	require.Equal(t, filepath.Join(dir, "prefs.json"), payload.Store)
}

func TestConfigInitCommand(t *testing.T) {
	dir := setupHome(t)
	path := filepath.Join(dir, "config.yaml")

	stdout, _, err := executeCommand("config", "init")
	require.NoError(t, err)
	require.Equal(t, "Wrote default configuration to "+path+"\n", stdout)

	loaded, err := config.Load(path)
	require.NoError(t, err)
	require.Equal(t, config.Default(), loaded)

	_, _, err = executeCommand("config", "init")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Pass --force to overwrite it.")

	_, _, err = executeCommand("config", "init", "--force")
	require.NoError(t, err)
}

func TestConfigInitCommand_TOMLPath(t *testing.T) {
	setupHome(t)
	path := filepath.Join(t.TempDir(), "huey.toml")

	_, _, err := executeCommand("config", "init", path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "[palette]")
}

func TestConfigInitCommand_ReplacesBrokenFile(t *testing.T) {
	dir := setupHome(t)
	writeHueyConfig(t, dir, "palette:\n  theme: sepia\n")

	_, _, err := executeCommand("palette")
	require.Error(t, err)
	require.Contains(t, err.Error(), "Failed to load configuration")

	_, _, err = executeCommand("config", "init", "--force")
	require.NoError(t, err)

	_, _, err = executeCommand("palette")
	require.NoError(t, err)
}

func TestConfigFlagSelectsFile(t *testing.T) {
	setupHome(t)
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("palette:\n  theme: dark\n"), 0o644))

	stdout, _, err := executeCommand("--config", path, "config", "show")
	require.NoError(t, err)
	require.Contains(t, stdout, "theme: dark")
}

func TestVerboseFlagEnablesDebugLogging(t *testing.T) {
	setupHome(t)

	_, stderr, err := executeCommand("--verbose", "color", "name", "red")
	require.NoError(t, err)
	require.Contains(t, stderr, "configuration loaded")
}
