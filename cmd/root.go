package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/zjrosen/cellar/internal/app"
	"github.com/zjrosen/cellar/internal/config"
	"github.com/zjrosen/cellar/internal/flags"
	"github.com/zjrosen/cellar/internal/interchange"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/paths"
	"github.com/zjrosen/cellar/internal/sheet"
	"github.com/zjrosen/cellar/internal/tracing"
	"github.com/zjrosen/cellar/internal/ui/gridview"
)

func init() {
	// Query the terminal background before Bubble Tea owns stdin so the
	// OSC 11 reply does not leak into the cell editor.
	_ = lipgloss.HasDarkBackground()
}

// localConfigPath is checked before the user config directory and is where
// a default config is written when neither exists.
const localConfigPath = ".cellar/config.yaml"

var (
	version   = "dev"
	cfgFile   string
	debugFlag bool
	cfg       = config.Defaults()
)

var rootCmd = &cobra.Command{
	Use:   "cellar",
	Short: "A small spreadsheet for the terminal",
	Long: `cellar edits a fixed-size grid of text cells in the terminal.

Cells are selected with the keyboard or mouse, edited inline, copied and
pasted as tab-separated text, and saved after every committed change.`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runApp,
}

func init() {
	cobra.OnInitialize(initConfig)

	defaults := config.Defaults()
	pf := rootCmd.PersistentFlags()
	pf.StringVarP(&cfgFile, "config", "c", "",
		"config file (default: .cellar/config.yaml, then ~/.config/cellar/config.yaml)")
	pf.BoolVar(&debugFlag, "debug", false, "write a debug log (also CELLAR_DEBUG)")
	pf.String("store", defaults.Storage.Backend, "record backend: file, sqlite or memory")
	pf.StringP("path", "p", "", "project dir, .cellar dir or record file")

	rootCmd.Flags().Int("rows", defaults.Grid.Rows, "number of rows")
	rootCmd.Flags().Int("columns", defaults.Grid.Columns, "number of columns (1-26)")
	rootCmd.Flags().String("clipboard", defaults.Clipboard.Strategy, "clipboard strategy: system or buffer")
	rootCmd.Flags().String("template", defaults.Grid.Template.Kind, "template region: none or accounting")
	rootCmd.Flags().String("init", "", ".xlsx or .tsv of initial values for a new sheet")

	_ = viper.BindPFlag("storage.backend", pf.Lookup("store"))
	_ = viper.BindPFlag("storage.path", pf.Lookup("path"))
	_ = viper.BindPFlag("grid.rows", rootCmd.Flags().Lookup("rows"))
	_ = viper.BindPFlag("grid.columns", rootCmd.Flags().Lookup("columns"))
	_ = viper.BindPFlag("clipboard.strategy", rootCmd.Flags().Lookup("clipboard"))
	_ = viper.BindPFlag("grid.template.kind", rootCmd.Flags().Lookup("template"))
	_ = viper.BindPFlag("grid.init", rootCmd.Flags().Lookup("init"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if _, err := os.Stat(localConfigPath); err == nil {
		viper.SetConfigFile(localConfigPath)
	} else {
		viper.AddConfigPath(paths.ConfigDir())
		viper.SetConfigName("config")
		viper.SetConfigType("yaml")
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			if writeErr := config.WriteDefaultConfig(localConfigPath); writeErr == nil {
				viper.SetConfigFile(localConfigPath)
				_ = viper.ReadInConfig()
			}
		}
	}

	cfg = config.Defaults()
	_ = viper.Unmarshal(&cfg)
}

// configPath is where theme changes are written back.
func configPath() string {
	if used := viper.ConfigFileUsed(); used != "" {
		return used
	}
	return localConfigPath
}

// initDebug starts the file log when --debug or CELLAR_DEBUG asks for it.
// The returned cleanup is never nil.
func initDebug(prefix string) (bool, func(), error) {
	if !debugFlag && os.Getenv(log.EnvDebug) == "" {
		return false, func() {}, nil
	}
	logPath := os.Getenv("CELLAR_LOG")
	if logPath == "" {
		logPath = filepath.Join(paths.ResolveDataDir(cfg.Storage.Path), "debug.log")
		if err := os.MkdirAll(filepath.Dir(logPath), 0o750); err != nil {
			return false, func() {}, fmt.Errorf("creating log directory: %w", err)
		}
	}
	cleanup, err := log.InitWithTeaLog(logPath, prefix)
	if err != nil {
		return false, func() {}, fmt.Errorf("initializing logging: %w", err)
	}
	log.Info(log.CatConfig, "cellar starting", "version", version, "logPath", logPath)
	return true, cleanup, nil
}

func runApp(_ *cobra.Command, _ []string) error {
	if err := config.Validate(cfg); err != nil {
		return err
	}

	debug, cleanupLog, err := initDebug("cellar")
	if err != nil {
		return err
	}
	defer cleanupLog()

	if err := app.ApplyTheme(cfg.Theme); err != nil {
		return fmt.Errorf("applying theme: %w", err)
	}

	tcfg := cfg.Tracing
	if tcfg.Enabled && tcfg.Exporter == "file" && tcfg.FilePath == "" {
		tcfg.FilePath = paths.DefaultTracesFile()
	}
	provider, err := tracing.NewProvider(tcfg)
	if err != nil {
		return fmt.Errorf("starting tracing: %w", err)
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := provider.Shutdown(ctx); err != nil {
			log.ErrorErr(log.CatTrace, "tracing shutdown failed", err)
		}
	}()

	ctx := context.Background()
	st, err := openStore(cfg.Storage)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	var initial [][]string
	if cfg.Grid.Init != "" {
		initial, err = interchange.ReadFile(ctx, cfg.Grid.Init)
		if err != nil {
			return fmt.Errorf("reading initial values: %w", err)
		}
	}

	s, err := sheet.New(ctx, sheet.Config{
		Rows:      cfg.Grid.Rows,
		Cols:      cfg.Grid.Columns,
		Template:  cfg.GridTemplate(),
		Initial:   initial,
		Slot:      st.Slot,
		Sink:      newSink(cfg.Clipboard),
		UndoDepth: cfg.Undo.Depth,
		Flags:     flags.New(cfg.Flags),
		Tracer:    provider.Tracer(),
	})
	if err != nil {
		return fmt.Errorf("opening sheet: %w", err)
	}

	zone.NewGlobal()
	model := app.New(app.Options{
		Sheet: s,
		Grid: gridview.Config{
			CellWidth:     cfg.UI.CellWidth,
			ShowStatusBar: cfg.UI.ShowStatusBar,
			DoubleClick:   time.Duration(cfg.UI.DoubleClickMs) * time.Millisecond,
		},
		Theme:         cfg.Theme,
		ConfigPath:    configPath(),
		MarkdownStyle: cfg.UI.MarkdownStyle,
		Debug:         debug,
	})
	p := tea.NewProgram(
		model,
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	)

	final, err := p.Run()
	if m, ok := final.(app.Model); ok {
		m.Close()
	} else {
		model.Close()
	}
	if err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version string (called from main with ldflags).
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}
