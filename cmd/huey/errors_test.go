package main

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCommandError(t *testing.T) {
	t.Parallel()

	cause := errors.New("boom")
	err := newCommandError("render gradient", "300x150 png", cause, "Try again.")

	require.Equal(t, "Failed to render gradient: 300x150 png\n\nError: boom\n\nSuggestion: Try again.", err.Error())
	require.ErrorIs(t, err, cause)
}
