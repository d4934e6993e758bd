package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/persist"
	"github.com/zjrosen/cellar/internal/watcher"
)

var showFollow bool

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the saved grid",
	Long: `Print the saved grid as a table.

With --follow the table is printed again every time the record changes,
until interrupted.

Examples:
  cellar show
  cellar show --store sqlite --follow`,
	Args: cobra.NoArgs,
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVarP(&showFollow, "follow", "f", false, "re-print when the record changes")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, _ []string) error {
	_, cleanupLog, err := initDebug("cellar-show")
	if err != nil {
		return err
	}
	defer cleanupLog()

	st, err := openStore(cfg.Storage)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	if err := printRecord(ctx, out, st.Slot); err != nil {
		if !showFollow {
			return err
		}
		_, _ = fmt.Fprintln(out, err)
	}
	if !showFollow {
		return nil
	}
	if st.Path == "" {
		return fmt.Errorf("--follow needs a file or sqlite store")
	}
	return follow(ctx, out, st)
}

// follow re-prints the record on every settled change until ctx ends.
func follow(ctx context.Context, out io.Writer, st *store) error {
	w, err := watcher.New(watcher.DefaultConfig(st.Path))
	if err != nil {
		return err
	}
	changes, err := w.Start()
	if err != nil {
		return err
	}
	defer func() { _ = w.Stop() }()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-changes:
			_, _ = fmt.Fprintln(out)
			if err := printRecord(ctx, out, st.Slot); err != nil {
				log.ErrorErr(log.CatWatcher, "reload after change failed", err, "path", st.Path)
				_, _ = fmt.Fprintln(out, err)
			}
		}
	}
}

// printRecord writes the revision line and the grid table.
func printRecord(ctx context.Context, out io.Writer, slot persist.Slot) error {
	rec, err := loadRecord(ctx, slot)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(out, "revision %s  saved %s\n", rec.Revision, rec.UpdatedAt.Local().Format("2006-01-02 15:04:05"))
	_, _ = fmt.Fprintln(out, renderTable(rec.Grid))
	return nil
}

// loadRecord reads the record, turning a missing one into a readable error.
func loadRecord(ctx context.Context, slot persist.Slot) (persist.Record, error) {
	rec, err := slot.Load(ctx)
	if errors.Is(err, persist.ErrNotFound) {
		return persist.Record{}, fmt.Errorf("nothing saved yet: %w", err)
	}
	if err != nil {
		return persist.Record{}, fmt.Errorf("loading record: %w", err)
	}
	return rec, nil
}

// renderTable lays g out with column letters across the top and row
// numbers down the side.
func renderTable(g grid.Grid) string {
	headers := make([]string, 0, g.Cols()+1)
	headers = append(headers, "")
	for c := range g.Cols() {
		headers = append(headers, string(rune('A'+c)))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			s := lipgloss.NewStyle().Padding(0, 1)
			if row == table.HeaderRow || col == 0 {
				return s.Bold(true)
			}
			return s
		})
	for r := range g.Rows() {
		row := make([]string, 0, g.Cols()+1)
		row = append(row, strconv.Itoa(r+1))
		row = append(row, g.Row(r)...)
		t.Row(row...)
	}
	return t.Render()
}
