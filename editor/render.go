package editor

import (
	"io"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/lixenwraith/kilo/terminal"
)

// welcomeMessage is the banner drawn a third of the way down an empty screen
var welcomeMessage = "Kilo editor -- version " + Version

// Refresh redraws the whole screen in a single write
// The frame buffer does not outlive the call
func (e *Editor) Refresh(w io.Writer) error {
	ab := terminal.NewAppendBuffer()
	defer ab.Release()

	ab.Append(terminal.SeqCursorHide)
	ab.Append(terminal.SeqCursorHome)

	e.drawRows(ab)

	ab.AppendCursorPos(e.cx, e.cy)
	ab.Append(terminal.SeqCursorShow)

	return ab.Flush(w)
}

// drawRows emits one line per screen row, erasing leftovers of wider frames
func (e *Editor) drawRows(ab *terminal.AppendBuffer) {
	bannerRow := e.rows / 3
	for y := 0; y < e.rows; y++ {
		if y == bannerRow {
			ab.AppendString(welcomeLine(e.cols))
		} else {
			ab.AppendByte('~')
		}

		ab.Append(terminal.SeqEraseEOL)
		if y < e.rows-1 {
			ab.Append(terminal.SeqCRLF)
		}
	}
}

// welcomeLine centers the banner within cols display cells
// The leading tilde takes one cell of the left padding
func welcomeLine(cols int) string {
	if cols <= 0 {
		return ""
	}

	msg := welcomeMessage
	if runewidth.StringWidth(msg) > cols {
		msg = runewidth.Truncate(msg, cols, "")
	}

	padding := (cols - runewidth.StringWidth(msg)) / 2

	var sb strings.Builder
	sb.Grow(padding + len(msg))
	if padding > 0 {
		sb.WriteByte('~')
		padding--
	}
	sb.WriteString(strings.Repeat(" ", padding))
	sb.WriteString(msg)
	return sb.String()
}
