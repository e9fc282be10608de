package editor

import (
	"io"

	"github.com/lixenwraith/kilo/terminal"
)

// Terminal is what the steady loop needs from the terminal session
type Terminal interface {
	io.Writer
	ReadKey() (terminal.Event, error)
}

// Run alternates render and dispatch until quit or a fatal error
// It returns ErrQuit on quit and a *FatalError otherwise; it never returns nil
func Run(t Terminal, e *Editor) error {
	for {
		// Output errors inside a frame are best-effort
		if err := e.Refresh(t); err != nil {
			e.log.Warn("refresh failed", "error", err)
		}

		ev, err := t.ReadKey()
		if err != nil {
			return Fatal("read key", err)
		}
		e.log.Debug("key", "event", ev)

		if err := e.ProcessKey(t, ev); err != nil {
			return err
		}
	}
}
