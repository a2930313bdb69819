package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidlopes/tinge/internal/tui"
)

var previewCmd = &cobra.Command{
	Use:   "preview [image]",
	Short: "Show a theme without touching any files",
	Long: `Render the theme as terminal swatches. With an image argument the theme
is generated fresh; without one the most recent theme from history is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPreview,
}

func init() {
	rootCmd.AddCommand(previewCmd)
}

func runPreview(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	log := newLogger(cfg)

	if len(args) > 0 {
		th, err := generateTheme(cfg, log.WithSource(args[0]), args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTheme(th))
		return nil
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	rec, err := st.Latest(cmd.Context())
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "from %s (%s)\n\n", rec.Source,
		rec.CreatedAt.Local().Format("2006-01-02 15:04"))
	fmt.Fprintln(cmd.OutOrStdout(), tui.RenderTheme(rec.Theme))
	return nil
}
