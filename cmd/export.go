package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/cellar/internal/interchange"
)

var exportCmd = &cobra.Command{
	Use:   "export <file>",
	Short: "Write the saved grid to .xlsx, .tsv or .json",
	Long: `Write the saved grid to a file. The format follows the extension:
.xlsx (one sheet), .tsv (clipboard layout) or .json (record layout).

Examples:
  cellar export ledger.xlsx
  cellar export ledger.tsv`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := args[0]
		if _, err := interchange.FormatOf(target); err != nil {
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
		if err := interchange.WriteFile(target, rec.Grid); err != nil {
			return err
		}
		_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Exported %dx%d grid to %s\n", rec.Grid.Rows(), rec.Grid.Cols(), target)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(exportCmd)
}
