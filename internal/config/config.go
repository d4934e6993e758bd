// Package config provides configuration types and defaults for cellar.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/zjrosen/cellar/internal/flags"
	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/history"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/persist"
	"github.com/zjrosen/cellar/internal/tracing"
)

// ErrInvalid marks a configuration value that cellar cannot run with.
var ErrInvalid = errors.New("invalid configuration")

// Template kinds.
const (
	TemplateNone       = "none"
	TemplateAccounting = "accounting"
)

// Storage backends.
const (
	BackendFile   = "file"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Clipboard strategies.
const (
	ClipboardBuffer = "buffer"
	ClipboardSystem = "system"
)

// Config holds all configuration options for cellar.
type Config struct {
	Grid      GridConfig      `mapstructure:"grid"`
	Storage   StorageConfig   `mapstructure:"storage"`
	Clipboard ClipboardConfig `mapstructure:"clipboard"`
	Undo      UndoConfig      `mapstructure:"undo"`
	UI        UIConfig        `mapstructure:"ui"`
	Theme     ThemeConfig     `mapstructure:"theme"`
	Tracing   tracing.Config  `mapstructure:"tracing"`
	Flags     map[string]bool `mapstructure:"flags"`
}

// GridConfig sizes the sheet and describes its pre-populated region.
type GridConfig struct {
	Rows     int            `mapstructure:"rows"`
	Columns  int            `mapstructure:"columns"`
	Template TemplateConfig `mapstructure:"template"`
	// Init is an .xlsx or .tsv file supplying initial values. It is only
	// read when no record exists yet.
	Init string `mapstructure:"init"`
}

// TemplateConfig declares the protected template region.
type TemplateConfig struct {
	Kind      string   `mapstructure:"kind"` // "none" (default) or "accounting"
	Fields    []string `mapstructure:"fields"`
	HeaderRow int      `mapstructure:"header_row"`
	HeaderCol int      `mapstructure:"header_col"`
	Headers   []string `mapstructure:"headers"` // defaults to the accounting headers
}

// StorageConfig selects where the grid record lives.
type StorageConfig struct {
	Backend string `mapstructure:"backend"` // "file" (default), "sqlite" or "memory"
	Path    string `mapstructure:"path"`    // project dir, .cellar dir or record file
	Key     string `mapstructure:"key"`
}

// ClipboardConfig selects the copy/paste sink.
type ClipboardConfig struct {
	Strategy string `mapstructure:"strategy"` // "system" (default) or "buffer"
	OSC52    bool   `mapstructure:"osc52"`    // use OSC 52 over SSH and inside tmux/screen
}

// UndoConfig bounds the undo history.
type UndoConfig struct {
	Depth int `mapstructure:"depth"`
}

// UIConfig holds user interface options.
type UIConfig struct {
	CellWidth     int    `mapstructure:"cell_width"`
	ShowStatusBar bool   `mapstructure:"show_status_bar"`
	MarkdownStyle string `mapstructure:"markdown_style"` // dark (default), light, notty or ascii
	DoubleClickMs int    `mapstructure:"double_click_ms"`
}

// ThemeConfig holds all theme customization options.
type ThemeConfig struct {
	// Preset loads a built-in theme as the base. Valid values: "default",
	// "catppuccin-mocha", "catppuccin-latte", "dracula", "nord",
	// "high-contrast".
	Preset string `mapstructure:"preset" yaml:"preset,omitempty"`

	// Mode forces "light" or "dark"; empty uses terminal detection.
	Mode string `mapstructure:"mode" yaml:"mode,omitempty"`

	// Colors overrides individual tokens, either nested
	//   colors:
	//     cell:
	//       protected: "#FF0000"
	// or in quoted dot notation
	//   colors:
	//     "cell.protected": "#FF0000"
	Colors map[string]any `mapstructure:"colors" yaml:"colors,omitempty"`
}

// FlattenedColors returns Colors flattened to dot-notation keys.
func (t ThemeConfig) FlattenedColors() map[string]string {
	result := make(map[string]string)
	flattenColors("", t.Colors, result)
	return result
}

func flattenColors(prefix string, m map[string]any, result map[string]string) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + "." + k
		}

		switch val := v.(type) {
		case string:
			result[key] = val
		case map[string]any:
			flattenColors(key, val, result)
		case map[any]any:
			converted := make(map[string]any, len(val))
			for mk, mv := range val {
				if s, ok := mk.(string); ok {
					converted[s] = mv
				}
			}
			flattenColors(key, converted, result)
		}
	}
}

// Defaults returns a Config with sensible default values.
func Defaults() Config {
	return Config{
		Grid: GridConfig{
			Rows:     30,
			Columns:  15,
			Template: TemplateConfig{Kind: TemplateNone},
		},
		Storage: StorageConfig{
			Backend: BackendFile,
			Key:     persist.DefaultKey,
		},
		Clipboard: ClipboardConfig{
			Strategy: ClipboardSystem,
			OSC52:    true,
		},
		Undo: UndoConfig{Depth: history.DefaultDepth},
		UI: UIConfig{
			CellWidth:     12,
			ShowStatusBar: true,
			MarkdownStyle: "dark",
			DoubleClickMs: 500,
		},
		Tracing: tracing.DefaultConfig(),
		Flags: map[string]bool{
			flags.FlagUndoParity:        false,
			flags.FlagDerivedProtection: false,
		},
	}
}

// GridTemplate converts the template section into a grid.Template.
func (c Config) GridTemplate() grid.Template {
	t := c.Grid.Template
	if t.Kind != TemplateAccounting {
		return grid.Template{}
	}
	headers := t.Headers
	if len(headers) == 0 {
		headers = grid.AccountingHeaders
	}
	return grid.Template{
		Fields:    slices.Clone(t.Fields),
		HeaderRow: t.HeaderRow,
		HeaderCol: t.HeaderCol,
		Headers:   slices.Clone(headers),
	}
}

// Validate reports every problem with c, each wrapped with ErrInvalid.
func Validate(c Config) error {
	return errors.Join(
		validateGrid(c),
		validateStorage(c.Storage),
		validateClipboard(c.Clipboard),
		validateUndo(c.Undo),
		ValidateTracing(c.Tracing),
		validateFlags(c.Flags),
	)
}

func validateGrid(c Config) error {
	g := c.Grid
	if g.Rows <= 0 {
		return fmt.Errorf("grid.rows must be positive, got %d: %w", g.Rows, ErrInvalid)
	}
	if g.Columns <= 0 || g.Columns > grid.MaxColumns {
		return fmt.Errorf("grid.columns must be 1-%d, got %d: %w", grid.MaxColumns, g.Columns, ErrInvalid)
	}
	switch g.Template.Kind {
	case "", TemplateNone, TemplateAccounting:
	default:
		return fmt.Errorf("grid.template.kind %q: must be none or accounting: %w", g.Template.Kind, ErrInvalid)
	}
	if err := c.GridTemplate().Validate(g.Rows, g.Columns); err != nil {
		return fmt.Errorf("grid.template: %w: %w", ErrInvalid, err)
	}
	if g.Init != "" {
		switch filepath.Ext(g.Init) {
		case ".xlsx", ".tsv", ".txt":
		default:
			return fmt.Errorf("grid.init %q: expected .xlsx or .tsv: %w", g.Init, ErrInvalid)
		}
	}
	return nil
}

func validateStorage(s StorageConfig) error {
	switch s.Backend {
	case BackendFile, BackendSQLite, BackendMemory:
	default:
		return fmt.Errorf("storage.backend %q: must be file, sqlite or memory: %w", s.Backend, ErrInvalid)
	}
	if s.Key == "" {
		return fmt.Errorf("storage.key is required: %w", ErrInvalid)
	}
	return nil
}

func validateClipboard(c ClipboardConfig) error {
	switch c.Strategy {
	case ClipboardBuffer, ClipboardSystem:
		return nil
	default:
		return fmt.Errorf("clipboard.strategy %q: must be buffer or system: %w", c.Strategy, ErrInvalid)
	}
}

func validateUndo(u UndoConfig) error {
	if u.Depth < 1 {
		return fmt.Errorf("undo.depth must be at least 1, got %d: %w", u.Depth, ErrInvalid)
	}
	return nil
}

// ValidateTracing checks exporter and sample rate. Disabled tracing is
// always valid.
func ValidateTracing(t tracing.Config) error {
	if !t.Enabled {
		return nil
	}
	switch t.Exporter {
	case "none", "file", "stdout", "otlp":
	default:
		return fmt.Errorf("tracing.exporter %q: must be none, file, stdout or otlp: %w", t.Exporter, ErrInvalid)
	}
	if t.SampleRate < 0 || t.SampleRate > 1 {
		return fmt.Errorf("tracing.sample_rate must be between 0 and 1, got %v: %w", t.SampleRate, ErrInvalid)
	}
	if t.Exporter == "otlp" && t.OTLPEndpoint == "" {
		return fmt.Errorf("tracing.otlp_endpoint is required for the otlp exporter: %w", ErrInvalid)
	}
	return nil
}

func validateFlags(m map[string]bool) error {
	known := []string{flags.FlagUndoParity, flags.FlagDerivedProtection}
	for name := range m {
		if !slices.Contains(known, name) {
			log.Warn(log.CatConfig, "Ignoring unknown feature flag", "flag", name)
		}
	}
	return nil
}

// DefaultConfigTemplate returns the default config as commented YAML.
func DefaultConfigTemplate() string {
	return `# Cellar Configuration

# Sheet size and template region
grid:
  rows: 30
  columns: 15          # 1-26, one letter per column
  # init: opening.xlsx # .xlsx or .tsv of initial values, used only before the first save
  template:
    kind: none         # none or accounting
    # Accounting example: field labels down column A, headers on row 5 from column B
    # kind: accounting
    # fields: [Ledger, Journal, Period]
    # header_row: 4    # zero-based
    # header_col: 1    # zero-based
    # headers: [Account, Entity, Product Group, Transaction Type, Current, Debit/Credit, Amount]

# Where the grid record is kept
storage:
  backend: file        # file, sqlite or memory
  # path: .cellar      # project dir, .cellar dir or record file
  key: spreadsheetGrid

# Copy/paste
clipboard:
  strategy: system     # system or buffer (in-process only)
  osc52: true          # copy through the terminal over SSH and in tmux/screen

# Undo history
undo:
  depth: 5

# UI settings
ui:
  cell_width: 12
  show_status_bar: true
  # markdown_style: dark  # help overlay style: dark (default), light, notty or ascii
  double_click_ms: 500

# Theme configuration
theme:
  # preset: catppuccin-mocha
  #
  # Available presets:
  #   default           - Default cellar theme
  #   catppuccin-mocha  - Warm, cozy dark theme
  #   catppuccin-latte  - Warm, cozy light theme
  #   dracula           - Dark theme with vibrant colors
  #   nord              - Arctic, north-bluish palette
  #   high-contrast     - High contrast for accessibility
  #
  # colors:
  #   cell.protected: "#CBA6F7"
  #   selection.background: "#45475A"

# Tracing of sheet commands
# tracing:
#   enabled: false
#   exporter: file                 # none, file, stdout, otlp
#   file_path: ~/.config/cellar/traces/traces.jsonl
#   otlp_endpoint: localhost:4317
#   sample_rate: 1.0

# Feature flags
flags:
  undo-parity: false         # each undo after the first skips back two states
  derived-protection: false  # protect template cells whenever they hold their label
`
}

// WriteDefaultConfig creates a config file at configPath with default
// settings and comments, creating the parent directory if needed.
func WriteDefaultConfig(configPath string) error {
	log.Debug(log.CatConfig, "Writing default config", "path", configPath)

	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to create config directory", err, "dir", dir)
		return fmt.Errorf("creating config directory: %w", err)
	}

	if err := os.WriteFile(configPath, []byte(DefaultConfigTemplate()), 0o600); err != nil {
		log.ErrorErr(log.CatConfig, "Failed to write config file", err, "path", configPath)
		return fmt.Errorf("writing config file: %w", err)
	}

	log.Info(log.CatConfig, "Created default config", "path", configPath)
	return nil
}
