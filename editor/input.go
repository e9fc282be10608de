package editor

import (
	"io"

	"github.com/lixenwraith/kilo/terminal"
)

// quitKey is Ctrl+Q
var quitKey = terminal.CtrlKey('q')

// ProcessKey applies one key to the editor state
// Quit clears the screen on w and returns ErrQuit; keys without a binding are ignored
func (e *Editor) ProcessKey(w io.Writer, ev terminal.Event) error {
	switch ev.Key {
	case terminal.KeyByte:
		if ev.Byte == quitKey {
			if err := terminal.ClearScreen(w); err != nil {
				return Fatal("clear screen", err)
			}
			e.log.Debug("quit requested")
			return ErrQuit
		}

	case terminal.KeyUp, terminal.KeyDown, terminal.KeyLeft, terminal.KeyRight:
		e.moveCursor(ev.Key)

	case terminal.KeyPageUp, terminal.KeyPageDown:
		dir := terminal.KeyUp
		if ev.Key == terminal.KeyPageDown {
			dir = terminal.KeyDown
		}
		for range e.rows {
			e.moveCursor(dir)
		}
	}
	return nil
}

// moveCursor steps one cell, movement past an edge is a no-op
func (e *Editor) moveCursor(k terminal.Key) {
	switch k {
	case terminal.KeyLeft:
		if e.cx > 0 {
			e.cx--
		}
	case terminal.KeyRight:
		if e.cx < e.cols-1 {
			e.cx++
		}
	case terminal.KeyUp:
		if e.cy > 0 {
			e.cy--
		}
	case terminal.KeyDown:
		if e.cy < e.rows-1 {
			e.cy++
		}
	}
}
