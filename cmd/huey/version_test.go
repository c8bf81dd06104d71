package main

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/require"
)

func overrideBuildInfo(t *testing.T) {
	t.Helper()
	originalVersion, originalCommit, originalDate := version, commit, date
	t.Cleanup(func() {
		version, commit, date = originalVersion, originalCommit, originalDate
	})
	version, commit, date = "1.2.3", "abcdef1", "2025-10-03"
}

func TestVersionCommandOutputsBuildInfo(t *testing.T) {
	setupHome(t)
	overrideBuildInfo(t)

	stdout, _, err := executeCommand("version")
	require.NoError(t, err)
	require.Contains(t, stdout, "Huey 1.2.3")
	require.Contains(t, stdout, "commit: abcdef1")
	require.Contains(t, stdout, "built: 2025-10-03")
	require.Contains(t, stdout, runtime.Version())
}

func TestVersionCommandJSON(t *testing.T) {
	setupHome(t)
	overrideBuildInfo(t)

	stdout, _, err := executeCommand("version", "--json")
	require.NoError(t, err)

	var info buildInfo
	require.NoError(t, json.Unmarshal([]byte(stdout), &info))
	require.Equal(t, buildInfo{Version: "1.2.3", Commit: "abcdef1", Date: "2025-10-03", Go: runtime.Version()}, info)
}
