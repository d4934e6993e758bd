package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/zjrosen/cellar/internal/grid"
)

var getCmd = &cobra.Command{
	Use:   "get <label>",
	Short: "Print one saved cell",
	Long: `Print the text of one cell of the saved grid.

Examples:
  cellar get B3
  cellar get a1 --store sqlite`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		at, err := grid.ParseLabel(strings.TrimSpace(args[0]))
		if err != nil {
			return err
		}

		st, err := openStore(cfg.Storage)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		rec, err := loadRecord(cmd.Context(), st.Slot)
		if err != nil {
			return err
		}
		if !rec.Grid.InBounds(at) {
			return fmt.Errorf("%s: %w (grid is %dx%d)", at.Label(), grid.ErrOutOfBounds, rec.Grid.Rows(), rec.Grid.Cols())
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), rec.Grid.Get(at))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(getCmd)
}
