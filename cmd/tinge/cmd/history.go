package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List previously generated themes",
	RunE:  runHistory,
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20,
		"maximum number of themes to list")
}

func runHistory(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	st, err := openStore(cfg)
	if err != nil {
		return err
	}
	defer st.Close()

	records, err := st.List(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No themes generated yet.")
		return nil
	}

	for _, rec := range records {
		fmt.Fprintf(cmd.OutOrStdout(), "%s  %-5s  %-40s  %s\n",
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
			rec.Theme.Mode, rec.Source, rec.ID)
	}
	return nil
}
