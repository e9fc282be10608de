//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"sync"

	"golang.org/x/sys/unix"
)

// readTimeoutDeciseconds is the VTIME value: a read returns after 100ms without input
const readTimeoutDeciseconds = 1

// RawMode owns the termios snapshot captured before raw mode was applied
// The snapshot is never modified; Restore writes it back exactly once
type RawMode struct {
	fd   int
	orig unix.Termios

	once       sync.Once
	restoreErr error
}

// EnterRawMode captures the current attributes of fd and switches it to raw mode
// Pending output is drained and unread input discarded before the change takes effect
func EnterRawMode(fd int) (*RawMode, error) {
	orig, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return nil, fmt.Errorf("tcgetattr: %w", err)
	}

	m := &RawMode{fd: fd, orig: *orig}

	raw := makeRaw(*orig)
	if err := unix.IoctlSetTermios(fd, ioctlSetTermiosFlush, &raw); err != nil {
		return nil, fmt.Errorf("tcsetattr: %w", err)
	}
	return m, nil
}

// makeRaw derives the raw attribute set from a captured snapshot
func makeRaw(t unix.Termios) unix.Termios {
	// No break SIGINT, no CR->NL, no parity check, no 8th bit strip, no XON/XOFF
	t.Iflag &^= unix.BRKINT | unix.ICRNL | unix.INPCK | unix.ISTRIP | unix.IXON
	// No output post-processing ("\n" is not translated to "\r\n")
	t.Oflag &^= unix.OPOST
	t.Cflag |= unix.CS8
	// No echo, no line buffering, no Ctrl-V, no Ctrl-C/Ctrl-Z signals
	t.Lflag &^= unix.ECHO | unix.ICANON | unix.IEXTEN | unix.ISIG

	t.Cc[unix.VMIN] = 0
	t.Cc[unix.VTIME] = readTimeoutDeciseconds
	return t
}

// Original returns a copy of the captured attributes
func (m *RawMode) Original() unix.Termios {
	return m.orig
}

// Restore writes back the captured attributes; repeated calls return the first result
func (m *RawMode) Restore() error {
	m.once.Do(func() {
		orig := m.orig
		if err := unix.IoctlSetTermios(m.fd, ioctlSetTermiosFlush, &orig); err != nil {
			m.restoreErr = fmt.Errorf("tcsetattr: %w", err)
		}
	})
	return m.restoreErr
}
