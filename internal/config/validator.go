package config

import (
	"fmt"
	"time"

	"github.com/davidlopes/tinge/internal/core"
)

var (
	validLevels  = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	validFormats = map[string]bool{"auto": true, "text": true, "json": true}
)

// Validate checks the configuration for values that would fail later in a
// less obvious place.
func (c *Config) Validate() error {
	if !validLevels[c.Log.Level] {
		return core.ErrValidation(core.CodeInvalidConfig,
			fmt.Sprintf("invalid log level %q (debug, info, warn, error)", c.Log.Level))
	}
	if !validFormats[c.Log.Format] {
		return core.ErrValidation(core.CodeInvalidConfig,
			fmt.Sprintf("invalid log format %q (auto, text, json)", c.Log.Format))
	}
	if c.Theme.MaxColors < 1 || c.Theme.MaxColors > 256 {
		return core.ErrValidation(core.CodeInvalidConfig,
			fmt.Sprintf("theme.max_colors %d out of range [1,256]", c.Theme.MaxColors))
	}
	if c.Theme.FixedRadius < 0 || c.Theme.FixedRadius > 4 {
		return core.ErrValidation(core.CodeInvalidConfig,
			fmt.Sprintf("theme.fixed_radius %v out of range [0,4]", c.Theme.FixedRadius))
	}
	if c.Serve.Port < 0 || c.Serve.Port > 65535 {
		return core.ErrValidation(core.CodeInvalidConfig,
			fmt.Sprintf("serve.port %d out of range", c.Serve.Port))
	}
	if c.Watch.Debounce != "" {
		if _, err := time.ParseDuration(c.Watch.Debounce); err != nil {
			return core.ErrValidation(core.CodeInvalidConfig,
				fmt.Sprintf("invalid watch.debounce %q", c.Watch.Debounce)).WithCause(err)
		}
	}
	return nil
}

// DebounceDuration parses the watch debounce, falling back to 400ms.
func (c *Config) DebounceDuration() time.Duration {
	d, err := time.ParseDuration(c.Watch.Debounce)
	if err != nil || d <= 0 {
		return 400 * time.Millisecond
	}
	return d
}
