package config

// Config represents the full huey configuration document.
type Config struct {
	Log      LogConfig      `mapstructure:"log" json:"log" yaml:"log" toml:"log"`
	Storage  StorageConfig  `mapstructure:"storage" json:"storage" yaml:"storage" toml:"storage"`
	Palette  PaletteConfig  `mapstructure:"palette" json:"palette" yaml:"palette" toml:"palette"`
	Gradient GradientConfig `mapstructure:"gradient" json:"gradient" yaml:"gradient" toml:"gradient"`
}

// LogConfig controls diagnostic output on stderr.
type LogConfig struct {
	Level string `mapstructure:"level" json:"level" yaml:"level" toml:"level" validate:"required,oneof=trace debug info warn error"`
	Human bool   `mapstructure:"human" json:"human" yaml:"human" toml:"human"`
}

// StorageConfig selects where preferences are persisted. An empty path
// resolves to a file under the user's config directory.
type StorageConfig struct {
	Backend string `mapstructure:"backend" json:"backend" yaml:"backend" toml:"backend" validate:"required,oneof=file sqlite"`
	Path    string `mapstructure:"path" json:"path,omitempty" yaml:"path,omitempty" toml:"path,omitempty" validate:"omitempty,store_path"`
	Kind    string `mapstructure:"kind" json:"kind" yaml:"kind" toml:"kind" validate:"required,oneof=local session memory infer"`
}

// PaletteConfig holds palette command defaults. Primary and Background
// override the stored generator settings when set.
type PaletteConfig struct {
	Theme      string `mapstructure:"theme" json:"theme" yaml:"theme" toml:"theme" validate:"required,theme"`
	Format     string `mapstructure:"format" json:"format" yaml:"format" toml:"format" validate:"required,oneof=css chakra text yaml toml json"`
	Space      string `mapstructure:"space" json:"space" yaml:"space" toml:"space" validate:"required,oneof=rgb linear-rgb lab luv hcl"`
	Primary    string `mapstructure:"primary" json:"primary,omitempty" yaml:"primary,omitempty" toml:"primary,omitempty" validate:"omitempty,hexcolor6"`
	Background string `mapstructure:"background" json:"background,omitempty" yaml:"background,omitempty" toml:"background,omitempty" validate:"omitempty,hexcolor6"`
}

// GradientConfig holds raster export defaults.
type GradientConfig struct {
	Width  int    `mapstructure:"width" json:"width" yaml:"width" toml:"width" validate:"min=1,max=4000"`
	Height int    `mapstructure:"height" json:"height" yaml:"height" toml:"height" validate:"min=1,max=4000"`
	Format string `mapstructure:"format" json:"format" yaml:"format" toml:"format" validate:"required,oneof=png jpeg webp"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		Log:      LogConfig{Level: "info", Human: true},
		Storage:  StorageConfig{Backend: "file", Kind: "infer"},
		Palette:  PaletteConfig{Theme: "light", Format: "css", Space: "rgb"},
		Gradient: GradientConfig{Width: 300, Height: 150, Format: "png"},
	}
}

// defaults flattens Default into viper keys.
func defaults() map[string]any {
	d := Default()
	return map[string]any{
		"log.level":          d.Log.Level,
		"log.human":          d.Log.Human,
		"storage.backend":    d.Storage.Backend,
		"storage.path":       d.Storage.Path,
		"storage.kind":       d.Storage.Kind,
		"palette.theme":      d.Palette.Theme,
		"palette.format":     d.Palette.Format,
		"palette.space":      d.Palette.Space,
		"palette.primary":    d.Palette.Primary,
		"palette.background": d.Palette.Background,
		"gradient.width":     d.Gradient.Width,
		"gradient.height":    d.Gradient.Height,
		"gradient.format":    d.Gradient.Format,
	}
}
