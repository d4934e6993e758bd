package gridview

import (
	"github.com/zjrosen/cellar/internal/grid"
	"github.com/zjrosen/cellar/internal/sheet"
)

// EditRefusedMsg reports a double-click, enter or typed key on a cell that
// cannot be edited.
type EditRefusedMsg struct {
	At  grid.Address
	Err error
}

// DeletedMsg reports a Delete/Backspace over the selection.
type DeletedMsg struct {
	Label  string
	Report sheet.Report
}

// UndoneMsg reports an undo request. Restored is false when the stack was
// empty.
type UndoneMsg struct {
	Restored bool
	Depth    int
}
