// Package keys contains keybinding definitions.
package keys

import "github.com/charmbracelet/bubbles/key"

// SheetKeyMap holds the bindings active while the grid has focus and no
// cell is being edited.
type SheetKeyMap struct {
	// Navigation
	Up    key.Binding
	Down  key.Binding
	Left  key.Binding
	Right key.Binding

	// Range extension
	ExtendUp    key.Binding
	ExtendDown  key.Binding
	ExtendLeft  key.Binding
	ExtendRight key.Binding

	// Actions
	Edit   key.Binding
	Delete key.Binding
	Copy   key.Binding
	Paste  key.Binding
	Undo   key.Binding

	// General
	Escape     key.Binding
	CycleTheme key.Binding
	Logs       key.Binding
	Help       key.Binding
	Quit       key.Binding
}

// EditKeyMap holds the bindings active while a cell is open for editing.
// Everything else is typed into the cell.
type EditKeyMap struct {
	Commit key.Binding
	Leave  key.Binding
	Quit   key.Binding
}

// Sheet is the grid keymap.
var Sheet = SheetKeyMap{
	Up: key.NewBinding(
		key.WithKeys("up"),
		key.WithHelp("↑", "move up"),
	),
	Down: key.NewBinding(
		key.WithKeys("down"),
		key.WithHelp("↓", "move down"),
	),
	Left: key.NewBinding(
		key.WithKeys("left"),
		key.WithHelp("←", "move left"),
	),
	Right: key.NewBinding(
		key.WithKeys("right", "tab"),
		key.WithHelp("→/tab", "move right"),
	),

	ExtendUp: key.NewBinding(
		key.WithKeys("shift+up"),
		key.WithHelp("shift+↑", "extend up"),
	),
	ExtendDown: key.NewBinding(
		key.WithKeys("shift+down"),
		key.WithHelp("shift+↓", "extend down"),
	),
	ExtendLeft: key.NewBinding(
		key.WithKeys("shift+left"),
		key.WithHelp("shift+←", "extend left"),
	),
	ExtendRight: key.NewBinding(
		key.WithKeys("shift+right"),
		key.WithHelp("shift+→", "extend right"),
	),

	Edit: key.NewBinding(
		key.WithKeys("enter", "f2"),
		key.WithHelp("enter/f2", "edit cell"),
	),
	Delete: key.NewBinding(
		key.WithKeys("delete", "backspace"),
		key.WithHelp("del", "clear selection"),
	),
	Copy: key.NewBinding(
		key.WithKeys("ctrl+c"),
		key.WithHelp("ctrl+c", "copy"),
	),
	Paste: key.NewBinding(
		key.WithKeys("ctrl+v"),
		key.WithHelp("ctrl+v", "paste"),
	),
	Undo: key.NewBinding(
		key.WithKeys("ctrl+z"),
		key.WithHelp("ctrl+z", "undo"),
	),

	Escape: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "collapse range"),
	),
	CycleTheme: key.NewBinding(
		key.WithKeys("ctrl+t"),
		key.WithHelp("ctrl+t", "next theme"),
	),
	Logs: key.NewBinding(
		key.WithKeys("ctrl+x"),
		key.WithHelp("ctrl+x", "debug log"),
	),
	Help: key.NewBinding(
		key.WithKeys("?"),
		key.WithHelp("?", "toggle help"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("ctrl+q", "quit"),
	),
}

// Edit is the in-cell editor keymap.
var Edit = EditKeyMap{
	Commit: key.NewBinding(
		key.WithKeys("enter"),
		key.WithHelp("enter", "commit"),
	),
	Leave: key.NewBinding(
		key.WithKeys("esc"),
		key.WithHelp("esc", "leave cell"),
	),
	Quit: key.NewBinding(
		key.WithKeys("ctrl+q"),
		key.WithHelp("ctrl+q", "quit"),
	),
}

// ShortHelp returns keybindings for the short help view.
func (k SheetKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Edit, k.Copy, k.Paste, k.Undo, k.Help, k.Quit}
}

// FullHelp returns keybindings grouped for the help overlay.
func (k SheetKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Left, k.Right},
		{k.ExtendUp, k.ExtendDown, k.ExtendLeft, k.ExtendRight},
		{k.Edit, k.Delete, k.Copy, k.Paste, k.Undo},
		{k.Escape, k.CycleTheme, k.Logs, k.Help, k.Quit},
	}
}

// ShortHelp returns keybindings for the short help view.
func (k EditKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Commit, k.Leave}
}

// FullHelp returns the editor bindings.
func (k EditKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Commit, k.Leave, k.Quit}}
}
