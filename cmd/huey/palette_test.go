package main

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/huey/internal/palette"
)

func writeHueyConfig(t *testing.T, dir, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(dir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(contents), 0o644))
}

func TestPaletteCommand_TextFormat(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("palette", "--base", "#3b82f6", "--bg", "#f2f2f2", "--format", "text")
	require.NoError(t, err)

	p, err := palette.Generate("#3b82f6", "#f2f2f2")
	require.NoError(t, err)
	want := palette.ToText(p.Name, p.Slice(), "#f2f2f2") + "\n"
	require.Equal(t, want, stdout)
}

func TestPaletteCommand_DefaultsToStoredSettings(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("palette")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, ":root, .light {\n"))
	require.Contains(t, stdout, "  --blue-9: #3b82f6;")
	require.Contains(t, stdout, "  --background: #f2f2f2;")
}

func TestPaletteCommand_SaveRemembersSettings(t *testing.T) {
	dir := setupHome(t)

	_, _, err := executeCommand("palette", "--theme", "dark", "--base", "red", "--save")
	require.NoError(t, err)
	require.FileExists(t, filepath.Join(dir, "prefs.json"))

	stdout, _, err := executeCommand("palette")
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(stdout, ".dark {\n"))
	require.Contains(t, stdout, "  --red-9: #ff0000;")
	require.Contains(t, stdout, "  --background: #000000;")

	stdout, _, err = executeCommand("prefs", "get", palette.SettingsKey)
	require.NoError(t, err)

	var stored palette.Settings
	require.NoError(t, json.Unmarshal([]byte(stdout), &stored))
	require.Equal(t, palette.ThemeDark, stored.Theme)
	require.Equal(t, "#ff0000", stored.Dark.Primary)
	require.Equal(t, "#3b82f6", stored.Light.Primary)
}

func TestPaletteCommand_UsesConfiguredFormat(t *testing.T) {
	dir := setupHome(t)
	writeHueyConfig(t, dir, "palette:\n  format: json\n")

	stdout, _, err := executeCommand("palette", "--base", "#e11d48")
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(stdout)))
}

func TestPaletteCommand_WritesFile(t *testing.T) {
	setupHome(t)
	out := filepath.Join(t.TempDir(), "tokens.yaml")

	stdout, _, err := executeCommand("palette", "--format", "yaml", "--out", out)
	require.NoError(t, err)
	require.Contains(t, stdout, "Wrote YAML palette \"Blue\" to "+out)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	scheme, err := palette.DecodeYAML(data)
	require.NoError(t, err)
	require.Equal(t, "#3b82f6", scheme.Solid[palette.BaseIndex])
}

func TestPaletteCommand_InvalidColor(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("palette", "--base", "not-a-color")
	require.Error(t, err)

	var cmdErr *commandError
	require.True(t, errors.As(err, &cmdErr))
	require.Contains(t, err.Error(), "Failed to generate palette: parsing --base")
	require.Contains(t, err.Error(), "Suggestion:")
}

func TestPaletteCommand_InvalidFormat(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("palette", "--format", "svg")
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing --format")
}

func TestPaletteCommand_DiffPreviewsChanges(t *testing.T) {
	setupHome(t)
	out := filepath.Join(t.TempDir(), "palette.css")

	stdout, _, err := executeCommand("palette", "--out", out, "--diff")
	require.NoError(t, err)
	require.Contains(t, stdout, "--- /dev/null\n+++ "+out+"\n")
	require.Contains(t, stdout, "+  --blue-9: #3b82f6;\n")
	require.NoFileExists(t, out)

	_, _, err = executeCommand("palette", "--out", out)
	require.NoError(t, err)

	stdout, _, err = executeCommand("palette", "--out", out, "--diff")
	require.NoError(t, err)
	require.Equal(t, out+" is up to date\n", stdout)

	stdout, _, err = executeCommand("palette", "--out", out, "--diff", "--base", "red")
	require.NoError(t, err)
	require.Contains(t, stdout, "-  --blue-9: #3b82f6;\n")
	require.Contains(t, stdout, "+  --red-9: #ff0000;\n")
	require.Contains(t, stdout, "insertions(+)")

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	require.Contains(t, string(data), "--blue-9: #3b82f6;")
}

func TestPaletteCommand_DiffRequiresOut(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("palette", "--diff")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no file to compare against")
}
