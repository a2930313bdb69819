package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/davidlopes/tinge/internal/clip"
	"github.com/davidlopes/tinge/internal/core"
	"github.com/davidlopes/tinge/internal/theme"
)

var copyCmd = &cobra.Command{
	Use:   "copy <role>",
	Short: "Copy a role's color from the latest theme to the clipboard",
	Long: `Copy the color assigned to a role (for example "primary" or
"background") in the most recently generated theme to the system clipboard.`,
	Args: cobra.ExactArgs(1),
	RunE: runCopy,
}

func init() {
	rootCmd.AddCommand(copyCmd)
}

func runCopy(cmd *cobra.Command, args []string) error {
	role := args[0]
	if !theme.IsRole(role) {
		return core.ErrValidation(core.CodeUnknownRole,
			fmt.Sprintf("unknown role %q", role))
	}

	cfg, err := loadConfig()
	if err != nil {
		return err
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

	value, ok := rec.Theme.Roles[theme.Role(role)]
	if !ok {
		return core.ErrNotFound("role", role)
	}
	res, err := clip.WriteAll(value)
	if err != nil {
		return core.ErrIO("CLIPBOARD", "writing to clipboard").WithCause(err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), res.Summary(role, value))
	return nil
}
