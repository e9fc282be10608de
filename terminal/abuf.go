package terminal

import (
	"io"
)

// defaultFrameCap is the initial capacity of a frame buffer, large enough for an 80x24 frame of tildes
const defaultFrameCap = 4096

// AppendBuffer batches frame output so a refresh reaches the terminal in one write
// A buffer lives for one refresh: append, Flush, Release
type AppendBuffer struct {
	b []byte
}

// NewAppendBuffer returns an empty buffer with room for a typical frame
func NewAppendBuffer() *AppendBuffer {
	return &AppendBuffer{b: make([]byte, 0, defaultFrameCap)}
}

// Append adds raw bytes to the buffer
func (a *AppendBuffer) Append(p []byte) {
	a.b = append(a.b, p...)
}

// AppendString adds a string to the buffer
func (a *AppendBuffer) AppendString(s string) {
	a.b = append(a.b, s...)
}

// AppendByte adds a single byte to the buffer
func (a *AppendBuffer) AppendByte(c byte) {
	a.b = append(a.b, c)
}

// AppendCursorPos adds a cursor position sequence for 0-indexed column x and row y
func (a *AppendBuffer) AppendCursorPos(x, y int) {
	a.b = appendCursorPos(a.b, x, y)
}

// Len returns the number of accumulated bytes
func (a *AppendBuffer) Len() int {
	return len(a.b)
}

// Flush writes all accumulated bytes in a single Write call
func (a *AppendBuffer) Flush(w io.Writer) error {
	if len(a.b) == 0 {
		return nil
	}
	n, err := w.Write(a.b)
	if err != nil {
		return err
	}
	if n < len(a.b) {
		return io.ErrShortWrite
	}
	return nil
}

// Release drops the backing storage; the buffer is empty afterwards
func (a *AppendBuffer) Release() {
	a.b = nil
}
