// Package app contains the root application model.
package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/cellar/internal/config"
	"github.com/zjrosen/cellar/internal/keys"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/pubsub"
	"github.com/zjrosen/cellar/internal/sheet"
	"github.com/zjrosen/cellar/internal/ui/gridview"
	"github.com/zjrosen/cellar/internal/ui/help"
	"github.com/zjrosen/cellar/internal/ui/logpane"
	"github.com/zjrosen/cellar/internal/ui/styles"
	"github.com/zjrosen/cellar/internal/ui/toaster"
)

// Options configures the root model.
type Options struct {
	Sheet *sheet.Sheet
	Grid  gridview.Config
	// Theme is the theme currently applied; ctrl+t advances its preset.
	Theme config.ThemeConfig
	// ConfigPath receives theme changes. Empty disables saving.
	ConfigPath    string
	MarkdownStyle string
	// Debug enables the log pane.
	Debug bool
}

// themeSavedMsg reports the outcome of writing the theme section.
type themeSavedMsg struct {
	preset string
	err    error
}

// Model is the root application state.
type Model struct {
	ctx    context.Context
	cancel context.CancelFunc

	grid     gridview.Model
	help     help.Model
	showHelp bool
	logs     logpane.Model
	toaster  toaster.Model

	notices *pubsub.ContinuousListener[sheet.Notice]
	logFeed *pubsub.ContinuousListener[string]

	theme      config.ThemeConfig
	configPath string
	debug      bool

	width  int
	height int
}

// New builds the root model around an open sheet.
func New(opts Options) Model {
	ctx, cancel := context.WithCancel(context.Background())
	m := Model{
		ctx:        ctx,
		cancel:     cancel,
		grid:       gridview.New(opts.Sheet, opts.Grid),
		help:       help.New(opts.MarkdownStyle),
		logs:       logpane.New(),
		toaster:    toaster.New(),
		notices:    pubsub.NewContinuousListener[sheet.Notice](ctx, opts.Sheet.Broker()),
		theme:      opts.Theme,
		configPath: opts.ConfigPath,
		debug:      opts.Debug,
	}
	if opts.Debug {
		m.logFeed = log.NewListener(ctx)
	}
	return m
}

// ApplyTheme installs a configured theme into the shared styles.
func ApplyTheme(t config.ThemeConfig) error {
	return styles.ApplyTheme(styles.ThemeConfig{
		Preset: t.Preset,
		Mode:   t.Mode,
		Colors: t.FlattenedColors(),
	})
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	cmds := []tea.Cmd{m.notices.Listen()}
	if m.logFeed != nil {
		cmds = append(cmds, m.logFeed.Listen())
	}
	return tea.Batch(cmds...)
}

// Grid returns the grid view.
func (m Model) Grid() gridview.Model {
	return m.grid
}

// Toast returns the visible toast text, or "".
func (m Model) Toast() string {
	if !m.toaster.Visible() {
		return ""
	}
	return m.toaster.Message()
}

// HelpVisible reports whether the key reference is open.
func (m Model) HelpVisible() bool {
	return m.showHelp
}

// Theme returns the current theme configuration.
func (m Model) Theme() config.ThemeConfig {
	return m.theme
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.grid = m.grid.SetSize(msg.Width, msg.Height)
		m.help = m.help.SetSize(msg.Width, msg.Height)
		m.logs = m.logs.SetSize(msg.Width, msg.Height)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		if m.showHelp || m.logs.Open() {
			return m, nil
		}

	case pubsub.Event[sheet.Notice]:
		return m.handleNotice(msg)

	case pubsub.Event[string]:
		if m.logFeed == nil {
			return m, nil
		}
		m.logs = m.logs.Append()
		return m, m.logFeed.Listen()

	case sheet.CopiedMsg:
		if msg.Err == nil {
			return m.toast(fmt.Sprintf("Copied %s", msg.Label), toaster.StyleSuccess)
		}
		return m, nil

	case sheet.PastedMsg:
		if msg.Err != nil {
			return m, nil
		}
		return m.toast(pasteSummary(msg), toaster.StyleSuccess)

	case gridview.EditRefusedMsg:
		return m.toast(fmt.Sprintf("%s is protected", msg.At.Label()), toaster.StyleWarn)

	case gridview.DeletedMsg:
		if msg.Report.Skipped > 0 {
			return m.toast(fmt.Sprintf("Cleared %s, skipped %d protected", msg.Label, msg.Report.Skipped), toaster.StyleInfo)
		}
		return m, nil

	case gridview.UndoneMsg:
		if !msg.Restored {
			return m.toast("Nothing to undo", toaster.StyleInfo)
		}
		return m, nil

	case themeSavedMsg:
		if msg.err != nil {
			log.ErrorErr(log.CatConfig, "theme not saved", msg.err, "preset", msg.preset)
			return m.toast("Theme not saved: "+msg.err.Error(), toaster.StyleError)
		}
		return m, nil

	case toaster.DismissMsg:
		m.toaster = m.toaster.Update(msg)
		return m, nil

	case logpane.CloseMsg:
		return m, nil
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.logs.Open() {
		var cmd tea.Cmd
		m.logs, cmd = m.logs.Update(msg)
		return m, cmd
	}
	if m.showHelp {
		if key.Matches(msg, keys.Sheet.Help, keys.Sheet.Escape) {
			m.showHelp = false
		}
		if key.Matches(msg, keys.Sheet.Quit) {
			return m, tea.Quit
		}
		return m, nil
	}
	if m.grid.Editing() {
		var cmd tea.Cmd
		m.grid, cmd = m.grid.Update(msg)
		return m, cmd
	}

	switch {
	case key.Matches(msg, keys.Sheet.Quit):
		return m, tea.Quit
	case key.Matches(msg, keys.Sheet.Help):
		m.showHelp = true
		return m, nil
	case m.debug && key.Matches(msg, keys.Sheet.Logs):
		m.logs = m.logs.Toggle()
		return m, nil
	case key.Matches(msg, keys.Sheet.CycleTheme):
		return m.cycleTheme()
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m Model) handleNotice(ev pubsub.Event[sheet.Notice]) (tea.Model, tea.Cmd) {
	listen := m.notices.Listen()
	switch ev.Type {
	case pubsub.DiagnosticEvent:
		if errors.Is(ev.Payload.Err, sheet.ErrSuperseded) || errors.Is(ev.Payload.Err, sheet.ErrClosed) {
			return m, listen
		}
		m2, cmd := m.toast(ev.Payload.String(), toaster.StyleError)
		return m2, tea.Batch(cmd, listen)
	case pubsub.RecordEvent:
		log.Debug(log.CatPersist, "record saved", "revision", ev.Payload.Revision, "cause", ev.Payload.Message)
	}
	return m, listen
}

func pasteSummary(msg sheet.PastedMsg) string {
	r := msg.Report
	s := fmt.Sprintf("Pasted %d cell", r.Written)
	if r.Written != 1 {
		s += "s"
	}
	s += " at " + msg.Anchor.Label()
	if r.Skipped > 0 {
		s += fmt.Sprintf(", skipped %d", r.Skipped)
	}
	return s
}

func (m Model) toast(text string, style toaster.Style) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	m.toaster, cmd = m.toaster.Show(text, style)
	return m, cmd
}

// cycleTheme applies the next preset and writes it to the config file.
// Per-token overrides are kept.
func (m Model) cycleTheme() (tea.Model, tea.Cmd) {
	next := m.theme
	next.Preset = styles.NextPreset(m.theme.Preset)
	if err := ApplyTheme(next); err != nil {
		return m.toast("Theme error: "+err.Error(), toaster.StyleError)
	}
	m.theme = next
	log.Info(log.CatUI, "theme changed", "preset", next.Preset)

	m2, toastCmd := m.toast("Theme: "+next.Preset, toaster.StyleInfo)
	if m.configPath == "" {
		return m2, toastCmd
	}
	path := m.configPath
	save := func() tea.Msg {
		return themeSavedMsg{preset: next.Preset, err: config.SaveTheme(path, next)}
	}
	return m2, tea.Batch(toastCmd, save)
}

// View implements tea.Model.
func (m Model) View() string {
	view := m.grid.View()
	if m.showHelp {
		view = m.help.Overlay(view)
	}
	view = m.toaster.Overlay(view, m.width, m.height)
	if m.logs.Open() {
		view = m.logs.Overlay(view)
	}
	return zone.Scan(view)
}

// Close stops listeners and the sheet.
func (m Model) Close() {
	m.cancel()
	m.grid.Close()
	m.grid.Sheet().Close()
}
