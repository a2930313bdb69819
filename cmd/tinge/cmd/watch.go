package cmd

import (
	"context"
	"errors"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/davidlopes/tinge/internal/css"
	"github.com/davidlopes/tinge/internal/watch"
)

var watchCmd = &cobra.Command{
	Use:   "watch <image>",
	Short: "Regenerate the theme whenever the image changes",
	Long: `Watch the source image and re-run generation after every save,
patching the stylesheet each time. Stop with Ctrl-C.`,
	Args: cobra.ExactArgs(1),
	RunE: runWatch,
}

func init() {
	rootCmd.AddCommand(watchCmd)
	watchCmd.Flags().StringVar(&cssPath, "css", "",
		"stylesheet to patch (default: probe conventional locations)")
}

func runWatch(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if cssPath != "" {
		cfg.CSS.Path = cssPath
	}
	imagePath := args[0]
	log := newLogger(cfg).WithSource(imagePath)

	target, err := css.Locate(".", cfg.CSS.Path)
	if err != nil {
		return err
	}

	regenerate := func(ctx context.Context) error {
		th, err := generateTheme(cfg, log, imagePath)
		if err != nil {
			return err
		}
		if _, err := css.Patch(target, th.Declarations()); err != nil {
			return err
		}
		log.Info("patched stylesheet", "path", target, "mode", string(th.Mode))
		saveTheme(ctx, cfg, log, imagePath, th)
		return nil
	}

	// Generate once up front so the stylesheet reflects the current image
	// before the first change arrives.
	if err := regenerate(cmd.Context()); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	err = watch.Run(ctx, imagePath, cfg.DebounceDuration(), log, regenerate)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
