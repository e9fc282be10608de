package terminal

import "errors"

var (
	// ErrNotTerminal is returned when raw mode is requested on a non-tty descriptor
	ErrNotTerminal = errors.New("not a terminal")

	// ErrWindowSize is returned when no strategy could determine the screen dimensions
	ErrWindowSize = errors.New("unable to determine window size")

	// ErrBadCursorReply is returned for a malformed or truncated device status report reply
	ErrBadCursorReply = errors.New("malformed cursor position reply")
)
