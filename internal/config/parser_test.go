package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	hueyerrors "github.com/alexisbeaulieu97/huey/pkg/errors"
)

func writeConfig(t *testing.T, name, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Parallel()

	validYAML := `log:
  level: debug
palette:
  theme: dark
  format: chakra
  primary: "#ff0000"
gradient:
  width: 640
`

	validTOML := `[storage]
backend = "sqlite"
path = "/tmp/huey/prefs.db"

[gradient]
format = "webp"
`

	invalidYAML := `palette:
  theme: dark
   format: css
`

	badTheme := `palette:
  theme: sepia
`

	badColor := `palette:
  primary: "red"
`

	cases := []struct {
		name     string
		file     string
		contents string
		assert   func(t *testing.T, cfg *Config, err error)
	}{
		{
			name:     "yaml overrides are merged with defaults",
			file:     "config.yaml",
			contents: validYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "debug", cfg.Log.Level)
				require.True(t, cfg.Log.Human)
				require.Equal(t, "dark", cfg.Palette.Theme)
				require.Equal(t, "chakra", cfg.Palette.Format)
				require.Equal(t, "rgb", cfg.Palette.Space)
				require.Equal(t, "#ff0000", cfg.Palette.Primary)
				require.Equal(t, 640, cfg.Gradient.Width)
				require.Equal(t, 150, cfg.Gradient.Height)
			},
		},
		{
			name:     "toml is recognised by extension",
			file:     "config.toml",
			contents: validTOML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.NoError(t, err)
				require.Equal(t, "sqlite", cfg.Storage.Backend)
				require.Equal(t, "/tmp/huey/prefs.db", cfg.Storage.StorePath())
				require.Equal(t, "webp", cfg.Gradient.Format)
			},
		},
		{
			name:     "malformed yaml reports a parse error",
			file:     "config.yaml",
			contents: invalidYAML,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var pe *hueyerrors.ParseError
				require.True(t, errors.As(err, &pe))
			},
		},
		{
			name:     "unknown theme fails validation",
			file:     "config.yaml",
			contents: badTheme,
			assert: func(t *testing.T, cfg *Config, err error) {
				require.Nil(t, cfg)
				var ve *hueyerrors.ValidationError
				require.True(t, errors.As(err, &ve))
				require.Equal(t, "palette.theme", ve.Field)
			},
		},
		{
			name:     "primary must be a six digit hex color",
			file:     "config.yaml",
			contents: badColor,
			assert: func(t *testing.T, cfg *Config, err error) {
				var ve *hueyerrors.ValidationError
				require.True(t, errors.As(err, &ve))
				require.Equal(t, "palette.primary", ve.Field)
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := Load(writeConfig(t, tc.file, tc.contents))
			tc.assert(t, cfg, err)
		})
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Parallel()

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	require.Equal(t, Default(), cfg)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("HUEY_PALETTE_THEME", "dark")
	t.Setenv("HUEY_GRADIENT_WIDTH", "800")
	t.Setenv("HUEY_LOG_HUMAN", "false")

	cfg, err := Load("")
	require.NoError(t, err)
	require.Equal(t, "dark", cfg.Palette.Theme)
	require.Equal(t, 800, cfg.Gradient.Width)
	require.False(t, cfg.Log.Human)
}

func TestSaveRoundTrip(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Palette.Theme = "dark"
	cfg.Palette.Background = "#101010"
	cfg.Gradient.Format = "jpeg"

	for _, name := range []string{"config.yaml", "config.toml"} {
		path := filepath.Join(t.TempDir(), "nested", name)
		require.NoError(t, Save(cfg, path), name)

		loaded, err := Load(path)
		require.NoError(t, err, name)
		require.Equal(t, cfg, loaded, name)
	}
}

func TestSaveRejectsInvalidConfig(t *testing.T) {
	t.Parallel()

	cfg := Default()
	cfg.Gradient.Width = 0

	err := Save(cfg, filepath.Join(t.TempDir(), "config.yaml"))
	var ve *hueyerrors.ValidationError
	require.True(t, errors.As(err, &ve))
	require.Equal(t, "gradient.width", ve.Field)
}

func TestExtractLine(t *testing.T) {
	t.Parallel()

	require.Equal(t, 3, extractLine(errors.New("yaml: line 3: mapping values are not allowed")))
	require.Equal(t, 0, extractLine(errors.New("no position")))
	require.Equal(t, 0, extractLine(nil))
}

func TestStorePath(t *testing.T) {
	t.Parallel()

	require.Equal(t, "prefs.json", filepath.Base(StorageConfig{Backend: "file"}.StorePath()))
	require.Equal(t, "prefs.db", filepath.Base(StorageConfig{Backend: "sqlite"}.StorePath()))
	require.Equal(t, "/x/y.json", StorageConfig{Backend: "file", Path: "/x/y.json"}.StorePath())
}
