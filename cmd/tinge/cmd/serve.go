package cmd

import (
	"context"
	"errors"
	"os/signal"
	"sync"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/davidlopes/tinge/internal/theme"
	"github.com/davidlopes/tinge/internal/watch"
	"github.com/davidlopes/tinge/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve [image]",
	Short: "Serve a live browser preview of the theme",
	Long: `Start a local HTTP server with an HTML swatch preview and a JSON API.
With an image argument the server watches the image and regenerates on
every save; without one it serves the most recent theme from history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

// themeCache holds the last generated theme for the preview server,
// refreshed by the watcher.
type themeCache struct {
	mu     sync.RWMutex
	theme  theme.Theme
	source string
	ok     bool
}

func (c *themeCache) set(th theme.Theme, source string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.theme, c.source, c.ok = th, source, true
}

func (c *themeCache) Current(context.Context) (theme.Theme, string, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if !c.ok {
		return theme.Theme{}, "", errors.New("no theme generated yet")
	}
	return c.theme, c.source, nil
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	cache := &themeCache{}
	if len(args) > 0 {
		th, err := generateTheme(cfg, log.WithSource(args[0]), args[0])
		if err != nil {
			return err
		}
		cache.set(th, args[0])
	} else {
		st, err := openStore(cfg)
		if err != nil {
			return err
		}
		rec, err := st.Latest(cmd.Context())
		_ = st.Close()
		if err != nil {
			return err
		}
		cache.set(rec.Theme, rec.Source)
	}

	srvCfg := web.DefaultConfig()
	srvCfg.Host = cfg.Serve.Host
	srvCfg.Port = cfg.Serve.Port
	srvCfg.CORSOrigins = cfg.Serve.CORSOrigins
	server := web.New(srvCfg, log, cache)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return server.Start(ctx)
	})
	if len(args) > 0 {
		imagePath := args[0]
		g.Go(func() error {
			err := watch.Run(ctx, imagePath, cfg.DebounceDuration(), log,
				func(context.Context) error {
					th, err := generateTheme(cfg, log.WithSource(imagePath), imagePath)
					if err != nil {
						return err
					}
					cache.set(th, imagePath)
					log.Info("theme refreshed", "mode", string(th.Mode))
					return nil
				})
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		})
	}

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
