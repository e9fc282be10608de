//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"io"
	"os"

	"golang.org/x/sys/unix"
)

// syncer is satisfied by *os.File and *Session
type syncer interface {
	Sync() error
}

// EmergencyReset attempts to restore terminal to sane state
// Call this from panic recovery if Session.Close cannot be relied on
func EmergencyReset(w io.Writer) {
	w.Write(csiCursorShow)
	w.Write(csiSGR0)
	w.Write(csiClear)
	w.Write(csiHome)

	// Flush if the writer is backed by a file
	if s, ok := w.(syncer); ok {
		s.Sync()
	}

	// Escape sequences alone don't restore termios
	// This is best-effort; ignore errors in crash context
	resetTerminalMode()
}

// resetTerminalMode attempts to restore terminal to cooked mode
// Best-effort for crash recovery; errors ignored
func resetTerminalMode() {
	// Try to restore via /dev/tty (works even if stdin redirected)
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	termios, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	termios.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	termios.Iflag |= unix.ICRNL | unix.IXON | unix.BRKINT
	termios.Oflag |= unix.OPOST
	unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, termios)
}
