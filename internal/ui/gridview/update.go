package gridview

import (
	"unicode"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/keys"
	"github.com/zjrosen/cellar/internal/log"
	"github.com/zjrosen/cellar/internal/sheet"
)

func emit(msg tea.Msg) tea.Cmd {
	return func() tea.Msg { return msg }
}

// Update routes input to the sheet. Keys handled here are consumed; the
// rest (help, theme, quit) are left to the caller.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.Editing() {
			m, cmd = m.updateEditing(msg)
		} else {
			m, cmd = m.updateIdle(msg)
		}
	case tea.MouseMsg:
		m, cmd = m.updateMouse(msg)
		if tea.MouseEvent(msg).IsWheel() {
			return m, cmd
		}
	case sheet.PasteResultMsg:
		cmd = emit(m.sheet.ApplyPaste(msg))
	default:
		if m.Editing() {
			m.editor, cmd = m.editor.Update(msg)
		}
		return m, cmd
	}
	m.follow()
	return m, cmd
}

func (m Model) updateIdle(msg tea.KeyMsg) (Model, tea.Cmd) {
	s := m.sheet
	switch {
	case msg.Paste:
		return m, emit(sheet.PastedMsg{Anchor: m.anchor(), Report: s.PasteText(string(msg.Runes))})
	case key.Matches(msg, keys.Sheet.Up):
		s.Move(-1, 0)
	case key.Matches(msg, keys.Sheet.Down):
		s.Move(1, 0)
	case key.Matches(msg, keys.Sheet.Left):
		s.Move(0, -1)
	case key.Matches(msg, keys.Sheet.Right):
		s.Move(0, 1)
	case key.Matches(msg, keys.Sheet.ExtendUp):
		s.Extend(-1, 0)
	case key.Matches(msg, keys.Sheet.ExtendDown):
		s.Extend(1, 0)
	case key.Matches(msg, keys.Sheet.ExtendLeft):
		s.Extend(0, -1)
	case key.Matches(msg, keys.Sheet.ExtendRight):
		s.Extend(0, 1)
	case key.Matches(msg, keys.Sheet.Edit):
		return m.openEditor("")
	case key.Matches(msg, keys.Sheet.Delete):
		label := s.Label()
		return m, emit(DeletedMsg{Label: label, Report: s.Delete()})
	case key.Matches(msg, keys.Sheet.Copy):
		return m, s.Copy()
	case key.Matches(msg, keys.Sheet.Paste):
		return m, s.Paste()
	case key.Matches(msg, keys.Sheet.Undo):
		restored := s.Undo()
		return m, emit(UndoneMsg{Restored: restored, Depth: s.UndoDepth()})
	case key.Matches(msg, keys.Sheet.Escape):
		s.Escape()
	case msg.Type == tea.KeyRunes && printable(msg.Runes):
		// Typing over a selected cell replaces its text.
		return m.openEditor(string(msg.Runes))
	}
	return m, nil
}

func printable(rs []rune) bool {
	if len(rs) == 0 {
		return false
	}
	for _, r := range rs {
		if !unicode.IsPrint(r) {
			return false
		}
	}
	return true
}

func (m Model) anchor() grid.Address {
	a, _ := m.sheet.Selection().Cell()
	return a
}

// openEditor starts an edit session on the selected cell. With replace
// non-empty the cell text is replaced by it, otherwise the editor starts
// from the current text.
func (m Model) openEditor(replace string) (Model, tea.Cmd) {
	s := m.sheet
	a, ok := s.Selection().Cell()
	if !ok {
		return m, nil
	}
	if err := s.BeginEdit(); err != nil {
		return m, emit(EditRefusedMsg{At: a, Err: err})
	}
	return m.startEditor(replace)
}

func (m Model) startEditor(replace string) (Model, tea.Cmd) {
	text := m.sheet.Draft()
	if replace != "" {
		text = replace
		m.sheet.Input(text)
	}
	m.editor.SetValue(text)
	m.editor.CursorEnd()
	cmd := m.editor.Focus()
	log.Debug(log.CatUI, "editor opened", "cell", m.sheet.Label())
	return m, cmd
}

func (m Model) closeEditor() Model {
	m.editor.Blur()
	m.editor.SetValue("")
	return m
}

func (m Model) updateEditing(msg tea.KeyMsg) (Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Edit.Commit):
		m.sheet.Commit()
		return m.closeEditor(), nil
	case key.Matches(msg, keys.Edit.Leave):
		m.sheet.Escape()
		return m.closeEditor(), nil
	case key.Matches(msg, keys.Edit.Quit):
		m.sheet.Commit()
		return m.closeEditor(), tea.Quit
	case key.Matches(msg, keys.Sheet.Copy, keys.Sheet.Paste, keys.Sheet.Undo):
		m.sheet.Commit()
		return m.closeEditor().updateIdle(msg)
	}

	var cmd tea.Cmd
	before := m.editor.Value()
	m.editor, cmd = m.editor.Update(msg)
	if v := m.editor.Value(); v != before {
		m.sheet.Input(v)
	}
	return m, cmd
}

func (m Model) updateMouse(msg tea.MouseMsg) (Model, tea.Cmd) {
	switch msg.Button {
	case tea.MouseButtonWheelUp:
		m.rowOff--
		m.clampOffsets()
		return m, nil
	case tea.MouseButtonWheelDown:
		m.rowOff++
		m.clampOffsets()
		return m, nil
	}

	switch msg.Action {
	case tea.MouseActionRelease:
		m.dragging = false
		return m, nil
	case tea.MouseActionMotion:
		if !m.dragging || msg.Button != tea.MouseButtonLeft {
			return m, nil
		}
		if a, ok := m.cellAt(msg); ok && a != m.dragAt {
			m.dragAt = a
			m.sheet.DragTo(a)
		}
		return m, nil
	}

	if msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	a, ok := m.cellAt(msg)
	if !ok {
		return m, nil
	}
	if m.Editing() {
		// The click blurs the editor; the sheet commits on the next command.
		m = m.closeEditor()
	}

	now := m.cfg.Now()
	if msg.Shift {
		m.sheet.ShiftClick(a)
		m.lastClick = click{}
		return m, nil
	}
	if m.lastClick.at == a && !m.lastClick.when.IsZero() && now.Sub(m.lastClick.when) <= m.cfg.DoubleClick {
		m.lastClick = click{}
		if err := m.sheet.DoubleClick(a); err != nil {
			return m, emit(EditRefusedMsg{At: a, Err: err})
		}
		return m.startEditor("")
	}

	m.sheet.Click(a)
	m.lastClick = click{at: a, when: now}
	m.dragging, m.dragAt = true, a
	return m, nil
}
