package terminal

import "strconv"

// keyToName maps named Key constants to canonical log names
var keyToName = map[Key]string{
	KeyEscape:   "escape",
	KeyUp:       "up",
	KeyDown:     "down",
	KeyLeft:     "left",
	KeyRight:    "right",
	KeyPageUp:   "page_up",
	KeyPageDown: "page_down",
}

// KeyName returns the canonical string name for a Key constant
// Returns empty string for KeyByte
func KeyName(k Key) string {
	return keyToName[k]
}

// ByteName renders a literal byte: printable ASCII as itself, control bytes as ctrl_x, the rest as decimal
func ByteName(b byte) string {
	switch {
	case b >= 0x20 && b < 0x7f:
		return string(rune(b))
	case b == 0x7f:
		return "del"
	case b < 0x20:
		return "ctrl_" + string(rune(b|0x60))
	}
	return strconv.Itoa(int(b))
}
