package cmd

import (
	"fmt"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/davidlopes/tinge/internal/css"
	"github.com/davidlopes/tinge/internal/finder"
	"github.com/davidlopes/tinge/internal/store"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the working directory and environment",
	Long:  "Verify that configuration, stylesheet, history, and clipboard are usable.",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Checking environment...")
	fmt.Fprintln(out)

	check := func(name string, ok bool, detail string) {
		icon := "✓"
		if !ok {
			icon = "✗"
		}
		if detail != "" {
			fmt.Fprintf(out, "  %s %s (%s)\n", icon, name, detail)
		} else {
			fmt.Fprintf(out, "  %s %s\n", icon, name)
		}
	}

	cfg, err := loadConfig()
	check("config", err == nil, errDetail(err))
	if err != nil {
		return nil
	}

	target, err := css.Locate(".", cfg.CSS.Path)
	check("stylesheet", err == nil, orElse(target, errDetail(err)))

	images, err := finder.Find(".")
	check("images", err == nil && len(images) > 0,
		fmt.Sprintf("%d found", len(images)))

	st, err := openStore(cfg)
	if err == nil {
		_ = st.Close()
	}
	check("history database", err == nil, orElse(storePath(cfg.Store.Path), errDetail(err)))

	check("clipboard", !clipboard.Unsupported, "")
	check("terminal", term.IsTerminal(int(os.Stdout.Fd())), "")

	fmt.Fprintln(out)
	return nil
}

func errDetail(err error) string {
	if err == nil {
		return ""
	}
	return err.Error()
}

func orElse(value, fallback string) string {
	if fallback != "" {
		return fallback
	}
	return value
}

func storePath(configured string) string {
	if configured != "" {
		return configured
	}
	return store.DefaultPath()
}
