package cmd

import (
	"context"
	"os"

	"github.com/spf13/viper"

	"github.com/davidlopes/tinge/internal/color"
	"github.com/davidlopes/tinge/internal/config"
	"github.com/davidlopes/tinge/internal/extract"
	"github.com/davidlopes/tinge/internal/finder"
	"github.com/davidlopes/tinge/internal/logging"
	"github.com/davidlopes/tinge/internal/store"
	"github.com/davidlopes/tinge/internal/theme"
	"github.com/davidlopes/tinge/internal/tui"
)

// loadConfig applies defaults and unmarshals the viper state built up by
// flags, environment, and the config file.
func loadConfig() (*config.Config, error) {
	config.SetDefaults(viper.GetViper())
	return config.Load(viper.GetViper())
}

func newLogger(cfg *config.Config) *logging.Logger {
	format := cfg.Log.Format
	if noColor && format == "auto" {
		format = "text"
	}
	level := cfg.Log.Level
	if quiet {
		level = "error"
	}
	return logging.New(logging.Config{
		Level:  level,
		Format: format,
		Output: os.Stderr,
	})
}

// openStore opens the history database at the configured path.
func openStore(cfg *config.Config) (*store.Store, error) {
	path := cfg.Store.Path
	if path == "" {
		path = store.DefaultPath()
	}
	return store.Open(path)
}

// resolveImage returns the image to use: the explicit argument if given,
// otherwise an interactive pick over the images found under the current
// directory.
func resolveImage(args []string) (string, error) {
	if len(args) > 0 {
		return args[0], nil
	}
	paths, err := finder.Find(".")
	if err != nil {
		return "", err
	}
	return tui.PickImage(paths)
}

// generateTheme runs the extraction and assignment pipeline for one image.
func generateTheme(cfg *config.Config, log *logging.Logger, imagePath string) (theme.Theme, error) {
	candidates, err := extract.Extract(imagePath)
	if err != nil {
		return theme.Theme{}, err
	}
	if max := cfg.Theme.MaxColors; max > 0 && len(candidates) > max {
		candidates = candidates[:max]
	}
	log.Debug("extracted candidates", "count", len(candidates))

	opts := assignOptions(cfg)
	return theme.Assign(candidates, opts...)
}

func assignOptions(cfg *config.Config) []theme.Option {
	var opts []theme.Option
	if cfg.Theme.Strict {
		opts = append(opts, theme.WithStrict())
	}
	if r := cfg.Theme.FixedRadius; r > 0 {
		// FixedRadius is in rem; invert the radius mapping so the output
		// lands exactly on the configured value.
		u := color.Clamp01((r - 0.25) / 0.75)
		opts = append(opts, theme.WithRadiusSource(func() float64 { return u }))
	}
	return opts
}

// saveTheme records a generated theme in history. Failures are logged, not
// fatal: history is a convenience, not part of generation.
func saveTheme(ctx context.Context, cfg *config.Config, log *logging.Logger, source string, th theme.Theme) {
	st, err := openStore(cfg)
	if err != nil {
		log.Warn("history unavailable", "error", err)
		return
	}
	defer st.Close()

	rec, err := st.Save(ctx, source, th)
	if err != nil {
		log.Warn("saving theme to history", "error", err)
		return
	}
	log.Debug("saved theme", "id", rec.ID)
}
