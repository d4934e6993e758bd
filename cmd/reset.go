package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/zjrosen/cellar/internal/persist"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Erase the saved grid",
	Long: `Erase the saved grid. The next start synthesizes a fresh sheet from
the template and any --init values.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		st, err := openStore(cfg.Storage)
		if err != nil {
			return err
		}
		defer func() { _ = st.Close() }()

		eraser, ok := st.Slot.(persist.Eraser)
		if !ok {
			return fmt.Errorf("the %s store cannot be erased", cfg.Storage.Backend)
		}
		if err := eraser.Erase(cmd.Context()); err != nil && !errors.Is(err, persist.ErrNotFound) {
			return fmt.Errorf("erasing record: %w", err)
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Record erased")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
