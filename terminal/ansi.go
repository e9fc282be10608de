package terminal

import "io"

// Pre-allocated ANSI sequence fragments (avoid allocations during render)
var (
	// CSI sequences
	csi         = []byte("\x1b[")
	csiClear    = []byte("\x1b[2J")
	csiHome     = []byte("\x1b[H")
	csiEraseEOL = []byte("\x1b[K")
	csiSGR0     = []byte("\x1b[0m")

	// Cursor control
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	// Window size probe: forward/down clamp at the screen edge, then device status report
	csiCursorFarCorner = []byte("\x1b[999C\x1b[999B")
	csiDeviceStatus    = []byte("\x1b[6n")

	crlf = []byte("\r\n")
)

// Exported sequences for callers composing frames
var (
	SeqCursorHome = csiHome
	SeqCursorHide = csiCursorHide
	SeqCursorShow = csiCursorShow
	SeqEraseEOL   = csiEraseEOL
	SeqCRLF       = crlf
)

// appendInt appends an integer without allocation
// Optimized for terminal values (0-999 typical max)
func appendInt(b []byte, n int) []byte {
	if n < 0 {
		n = 0
	}
	if n < 10 {
		return append(b, byte(n)+'0')
	}
	if n < 100 {
		return append(b, byte(n/10)+'0', byte(n%10)+'0')
	}
	if n < 1000 {
		return append(b, byte(n/100)+'0', byte(n/10%10)+'0', byte(n%10)+'0')
	}
	// Fallback for >999 (rare)
	var buf [20]byte
	i := len(buf)
	for n > 0 {
		i--
		buf[i] = byte(n%10) + '0'
		n /= 10
	}
	return append(b, buf[i:]...)
}

// appendCursorPos appends cursor positioning sequence (0-indexed input, 1-indexed on the wire)
func appendCursorPos(b []byte, x, y int) []byte {
	b = append(b, csi...)
	b = appendInt(b, y+1)
	b = append(b, ';')
	b = appendInt(b, x+1)
	return append(b, 'H')
}

// ClearScreen writes erase-display and cursor-home in one write
func ClearScreen(w io.Writer) error {
	b := make([]byte, 0, len(csiClear)+len(csiHome))
	b = append(b, csiClear...)
	b = append(b, csiHome...)
	_, err := w.Write(b)
	return err
}
