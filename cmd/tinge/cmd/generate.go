package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/davidlopes/tinge/internal/css"
	"github.com/davidlopes/tinge/internal/theme"
	"github.com/davidlopes/tinge/internal/tui"
)

var (
	cssPath    string
	strictMode bool
	dryRun     bool
	noSave     bool
	exportPath string
)

var generateCmd = &cobra.Command{
	Use:   "generate [image]",
	Short: "Generate a theme and patch the stylesheet",
	Long: `Extract colors from an image, assign them to theme roles, and merge
the resulting CSS custom properties into the stylesheet's :root block.
Without an image argument an interactive picker opens.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	addGenerateFlags(generateCmd)
}

func addGenerateFlags(c *cobra.Command) {
	c.Flags().StringVar(&cssPath, "css", "",
		"stylesheet to patch (default: probe conventional locations)")
	c.Flags().BoolVar(&strictMode, "strict", false,
		"fail instead of falling back when no colors can be extracted")
	c.Flags().BoolVar(&dryRun, "dry-run", false,
		"print the theme without touching the stylesheet")
	c.Flags().BoolVar(&noSave, "no-save", false,
		"skip recording the theme in history")
	c.Flags().StringVar(&exportPath, "export", "",
		"write the theme as YAML to this file ('-' for stdout)")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	// Flags are registered on both the root and generate commands and back
	// the same variables, so they apply whichever way the command was
	// invoked.
	if cssPath != "" {
		cfg.CSS.Path = cssPath
	}
	if strictMode {
		cfg.Theme.Strict = true
	}
	log := newLogger(cfg)

	imagePath, err := resolveImage(args)
	if err != nil {
		return err
	}
	log = log.WithSource(imagePath)

	th, err := generateTheme(cfg, log, imagePath)
	if err != nil {
		return err
	}
	log.Info("generated theme", "mode", string(th.Mode), "roles", len(th.Roles))

	if !quiet {
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTheme(th))
	}

	if exportPath != "" {
		if err := exportTheme(cmd, th); err != nil {
			return err
		}
	}

	if !dryRun {
		target, err := css.Locate(".", cfg.CSS.Path)
		if err != nil {
			return err
		}
		backup, err := css.Patch(target, th.Declarations())
		if err != nil {
			return err
		}
		log.Info("patched stylesheet", "path", target, "backup", backup)
	}

	if !noSave && !dryRun {
		saveTheme(cmd.Context(), cfg, log, imagePath, th)
	}
	return nil
}

func exportTheme(cmd *cobra.Command, th theme.Theme) error {
	out, err := th.YAML()
	if err != nil {
		return err
	}
	if exportPath == "-" {
		_, err = cmd.OutOrStdout().Write(out)
		return err
	}
	return os.WriteFile(exportPath, out, 0o644)
}
