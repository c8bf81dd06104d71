package errors

import (
	stdErrors "errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorWrapsUnderlying(t *testing.T) {
	t.Parallel()

	underlying := fmt.Errorf("unexpected character 'z'")
	err := NewParseError("#zzz", "hex color", underlying)

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, "#zzz", parseErr.Input)
	require.Equal(t, "hex color", parseErr.Format)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "hex color")
}

func TestParseErrorAtIncludesLine(t *testing.T) {
	t.Parallel()

	err := NewParseErrorAt("huey.yaml", 7, stdErrors.New("mapping values are not allowed"))

	var parseErr *ParseError
	require.ErrorAs(t, err, &parseErr)
	require.Equal(t, 7, parseErr.Line)
	require.Contains(t, err.Error(), "huey.yaml:7")
}

func TestValidationErrorIncludesField(t *testing.T) {
	t.Parallel()

	err := NewValidationError("gradient.stops[0].offset", "must be at most 100", nil)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, "gradient.stops[0].offset", validationErr.Field)
	require.Contains(t, validationErr.Message, "at most 100")
	require.Contains(t, err.Error(), "gradient.stops[0].offset")
}

func TestRenderErrorIncludesOperation(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("width must be positive")
	err := NewRenderError("rasterise", underlying)

	var renderErr *RenderError
	require.ErrorAs(t, err, &renderErr)
	require.Equal(t, "rasterise", renderErr.Operation)
	require.True(t, stdErrors.Is(err, underlying))
}

func TestStoreErrorIncludesBackendAndKey(t *testing.T) {
	t.Parallel()

	underlying := stdErrors.New("database is locked")
	err := NewStoreError("sqlite", "palette-generator", underlying)

	var storeErr *StoreError
	require.ErrorAs(t, err, &storeErr)
	require.Equal(t, "sqlite", storeErr.Backend)
	require.Equal(t, "palette-generator", storeErr.Key)
	require.True(t, stdErrors.Is(err, underlying))
	require.Contains(t, err.Error(), "palette-generator")
}

func TestNilErrorsRenderEmpty(t *testing.T) {
	t.Parallel()

	var parseErr *ParseError
	var renderErr *RenderError
	require.Empty(t, parseErr.Error())
	require.Nil(t, renderErr.Unwrap())
}
