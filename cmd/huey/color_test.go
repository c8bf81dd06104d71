package main

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestColorConvertCommand(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("color", "convert", "red")
	require.NoError(t, err)
	require.Regexp(t, `hex\s+#ff0000`, stdout)
	require.Contains(t, stdout, "rgb(255, 0, 0)")
	require.Contains(t, stdout, "hsv(0, 100, 100, 1)")
	require.Regexp(t, `name\s+red`, stdout)

	stdout, _, err = executeCommand("color", "convert", "#3b82f6", "--to", "rgb")
	require.NoError(t, err)
	require.Equal(t, "rgb(59, 130, 246)\n", stdout)

	stdout, _, err = executeCommand("color", "convert", "rgba(255, 0, 0, 0.5)", "--to", "hex")
	require.NoError(t, err)
	require.Equal(t, "#ff000080\n", stdout)
}

func TestColorConvertCommand_JSON(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("color", "convert", "#ff0000", "--json")
	require.NoError(t, err)

	var payload colorJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "#ff0000", payload.Hex)
	require.Equal(t, "red", payload.Name)
	require.InDelta(t, 255, payload.RGB.R, 1e-9)
	require.InDelta(t, 100, payload.HSV.S, 1e-9)
}

func TestColorContrastCommand(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("color", "contrast", "black", "white")
	require.NoError(t, err)
	require.Equal(t, "#000000 on #ffffff: 21.00:1 (Excellent)\n", stdout)

	stdout, _, err = executeCommand("color", "contrast", "#777777", "#ffffff", "--json")
	require.NoError(t, err)

	var payload contrastJSON
	require.NoError(t, json.Unmarshal([]byte(stdout), &payload))
	require.Equal(t, "Poor", payload.Rating)
	require.Equal(t, 2, payload.Score)
	require.InDelta(t, 4.48, payload.Ratio, 0.01)
}

func TestColorNameCommand(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("color", "name", "#00ffff")
	require.NoError(t, err)
	require.Equal(t, "cyan\n", stdout)

	_, _, err = executeCommand("color", "name", "#123456")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no CSS color is exactly #123456")
}

func TestColorMixCommand(t *testing.T) {
	setupHome(t)

	stdout, _, err := executeCommand("color", "mix", "red", "blue")
	require.NoError(t, err)
	require.Equal(t, "#800080\n", stdout)

	stdout, _, err = executeCommand("color", "mix", "red", "blue", "--amount", "0")
	require.NoError(t, err)
	require.Equal(t, "#ff0000\n", stdout)

	_, _, err = executeCommand("color", "mix", "red", "blue", "--space", "cmyk")
	require.Error(t, err)

	_, _, err = executeCommand("color", "mix", "red", "blue", "--amount", "150")
	require.Error(t, err)
}

func TestColorCommand_InvalidColor(t *testing.T) {
	setupHome(t)

	_, _, err := executeCommand("color", "convert", "bogus")
	var cmdErr *commandError
	require.True(t, errors.As(err, &cmdErr))
	require.Contains(t, err.Error(), `Failed to convert color: parsing "bogus"`)
}
