package config

import "github.com/spf13/viper"

// SetDefaults registers every configuration default with viper. Called
// before reading the config file so file values win.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "auto")

	v.SetDefault("theme.strict", false)
	v.SetDefault("theme.max_colors", 16)
	v.SetDefault("theme.fixed_radius", 0.0)

	v.SetDefault("css.path", "")

	v.SetDefault("store.path", "")

	v.SetDefault("serve.host", "localhost")
	v.SetDefault("serve.port", 4512)
	v.SetDefault("serve.cors_origins", []string{"http://localhost:5173"})

	v.SetDefault("watch.debounce", "400ms")
}
