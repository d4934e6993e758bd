package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/interchange"
)

var diffCmd = &cobra.Command{
	Use:   "diff <other>",
	Short: "Show cell changes between the saved grid and a file",
	Long: `List every cell that differs between the saved grid and another
grid file (.json, .xlsx or .tsv). Changed text is shown word-diff style:
[-removed-]{+added+}.

Examples:
  cellar export before.json
  cellar diff before.json`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		other, err := interchange.ReadFile(ctx, args[0])
		if err != nil {
			return err
		}

		st, err := openStore(cfg.Storage)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		rec, err := loadRecord(ctx, st.Slot)
		if err != nil {
			return err
		}

		changes := interchange.Changes(matrixGrid(other), rec.Grid)
		out := cmd.OutOrStdout()
		if len(changes) == 0 {
			_, _ = fmt.Fprintln(out, "No differences")
			return nil
		}
		_, _ = fmt.Fprint(out, interchange.Render(changes))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(diffCmd)
}

// matrixGrid sizes a grid to hold a possibly ragged matrix.
func matrixGrid(m [][]string) grid.Grid {
	cols := 0
	for _, row := range m {
		cols = max(cols, len(row))
	}
	return grid.New(len(m), cols).Overlay(m)
}
