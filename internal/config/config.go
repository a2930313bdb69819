// Package config holds the typed application configuration loaded from the
// config file, environment, and flags via viper.
package config

// Config holds all application configuration.
type Config struct {
	Log   LogConfig   `mapstructure:"log"`
	Theme ThemeConfig `mapstructure:"theme"`
	CSS   CSSConfig   `mapstructure:"css"`
	Store StoreConfig `mapstructure:"store"`
	Serve ServeConfig `mapstructure:"serve"`
	Watch WatchConfig `mapstructure:"watch"`
}

// LogConfig configures logging behavior.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// ThemeConfig configures palette assignment.
type ThemeConfig struct {
	// Strict makes generation fail when an image yields no usable colors
	// instead of falling back to the default palette seed.
	Strict    bool `mapstructure:"strict"`
	MaxColors int  `mapstructure:"max_colors"`
	// FixedRadius pins the border radius (in rem) instead of drawing it
	// randomly. Zero means random.
	FixedRadius float64 `mapstructure:"fixed_radius"`
}

// CSSConfig configures stylesheet patching.
type CSSConfig struct {
	Path string `mapstructure:"path"`
}

// StoreConfig configures theme history persistence.
type StoreConfig struct {
	Path string `mapstructure:"path"`
}

// ServeConfig configures the preview server.
type ServeConfig struct {
	Host        string   `mapstructure:"host"`
	Port        int      `mapstructure:"port"`
	CORSOrigins []string `mapstructure:"cors_origins"`
}

// WatchConfig configures watch mode.
type WatchConfig struct {
	Debounce string `mapstructure:"debounce"`
}
