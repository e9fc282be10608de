package terminal

// Key represents a parsed input key
type Key uint8

// Key constants; the named set is closed, everything else arrives as KeyByte
const (
	KeyByte Key = iota // Literal byte (check Event.Byte)

	KeyEscape

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyPageUp
	KeyPageDown
)

// Event is one decoded keypress
type Event struct {
	Key  Key
	Byte byte // For KeyByte
}

// CtrlKey returns the byte produced by Ctrl+k, which strips bits 5 and 6
func CtrlKey(k byte) byte {
	return k & 0x1f
}

// IsCtrl reports whether the event is the literal Ctrl+k byte
func (e Event) IsCtrl(k byte) bool {
	return e.Key == KeyByte && e.Byte == CtrlKey(k)
}

// String renders the event for logs
func (e Event) String() string {
	if e.Key != KeyByte {
		return KeyName(e.Key)
	}
	return ByteName(e.Byte)
}
