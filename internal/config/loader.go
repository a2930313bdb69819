package config

import (
	"github.com/spf13/viper"

	"github.com/davidlopes/tinge/internal/core"
)

// Load unmarshals the current viper state into a validated Config.
func Load(v *viper.Viper) (*Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, core.ErrValidation(core.CodeInvalidConfig, "unmarshaling config").WithCause(err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}
