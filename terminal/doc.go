// Package terminal provides direct ANSI terminal control for a single-process editor.
//
// Features:
//   - Raw mode entry and guaranteed restoration of the captured termios
//   - Window size resolution with a cursor-position probe fallback
//   - Byte-level key decoding with VT100 escape sequence handling
//   - Append buffer for single-write frame output
//   - Clean terminal restoration on exit/panic
//
// This package bypasses terminfo/termcap entirely, emitting direct ANSI sequences.
// Target environments: Linux, macOS, BSDs with xterm-compatible terminals.
package terminal
