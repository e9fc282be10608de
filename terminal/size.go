package terminal

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
)

// MaxCursorReplyLen bounds the device status report reply, terminator included
// A reply that has not produced 'R' within this many bytes is rejected
const MaxCursorReplyLen = 32

// Size holds terminal dimensions in cells
type Size struct {
	Rows int
	Cols int
}

// readCursorReply reads one byte at a time until 'R' or MaxCursorReplyLen bytes
// A zero-byte read ends the reply early; the parser rejects what is missing
func readCursorReply(in io.Reader) ([]byte, error) {
	reply := make([]byte, 0, MaxCursorReplyLen)
	var one [1]byte
	for len(reply) < MaxCursorReplyLen {
		n, err := in.Read(one[:])
		if n != 1 {
			if err != nil && err != io.EOF {
				return nil, fmt.Errorf("cursor probe read: %w", err)
			}
			break
		}
		reply = append(reply, one[0])
		if one[0] == 'R' {
			break
		}
	}
	return reply, nil
}

// parseCursorReply parses "ESC [ rows ; cols R" strictly
func parseCursorReply(reply []byte) (rows, cols int, err error) {
	if len(reply) < 2 || reply[0] != 0x1b || reply[1] != '[' {
		return 0, 0, fmt.Errorf("%w: missing escape prefix in %q", ErrBadCursorReply, reply)
	}
	if reply[len(reply)-1] != 'R' {
		return 0, 0, fmt.Errorf("%w: unterminated reply %q", ErrBadCursorReply, reply)
	}

	body := reply[2 : len(reply)-1]
	rowPart, colPart, ok := bytes.Cut(body, []byte{';'})
	if !ok {
		return 0, 0, fmt.Errorf("%w: no separator in %q", ErrBadCursorReply, reply)
	}
	if rows, err = parseDecimal(rowPart); err != nil {
		return 0, 0, err
	}
	if cols, err = parseDecimal(colPart); err != nil {
		return 0, 0, err
	}
	return rows, cols, nil
}

// parseDecimal accepts only a non-empty run of ASCII digits
func parseDecimal(b []byte) (int, error) {
	if len(b) == 0 {
		return 0, fmt.Errorf("%w: empty number", ErrBadCursorReply)
	}
	for _, c := range b {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: invalid digit %q", ErrBadCursorReply, c)
		}
	}
	n, err := strconv.Atoi(string(b))
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrBadCursorReply, err)
	}
	return n, nil
}
