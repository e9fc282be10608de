// Package editor holds the editor state, draws frames and dispatches keys.
//
// The state is an explicit value owned by the caller. Cursor coordinates are
// 0-based and always stay inside the screen resolved at startup.
package editor

import (
	"log/slog"

	"github.com/lixenwraith/kilo/terminal"
)

// Version is shown in the welcome banner
const Version = "0.0.1"

// Editor is the whole editor state
type Editor struct {
	cx, cy int // cursor column and row, 0-based

	rows int
	cols int

	log *slog.Logger
}

// New creates an editor for a screen of the given size with the cursor at the origin
func New(size terminal.Size, log *slog.Logger) *Editor {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Editor{
		rows: size.Rows,
		cols: size.Cols,
		log:  log,
	}
}

// Cursor returns the 0-based cursor column and row
func (e *Editor) Cursor() (x, y int) {
	return e.cx, e.cy
}
