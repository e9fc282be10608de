//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"io"
	"log/slog"

	"golang.org/x/sys/unix"
)

// SizeResolver determines the screen dimensions
// The ioctl is tried first; the cursor probe over In/Out is the fallback
type SizeResolver struct {
	Fd  int
	In  io.Reader
	Out io.Writer

	// Default is used when both strategies fail; zero value disables it
	Default Size

	Log *slog.Logger

	// getWinsize is swapped in tests
	getWinsize func(fd int) (*unix.Winsize, error)
}

// Resolve returns the window size or an error wrapping ErrWindowSize
func (r *SizeResolver) Resolve() (Size, error) {
	log := r.Log
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	size, err := r.fromIoctl()
	if err == nil {
		log.Debug("window size from ioctl", "rows", size.Rows, "cols", size.Cols)
		return size, nil
	}
	log.Debug("window size ioctl failed, probing cursor", "error", err)

	size, probeErr := r.fromCursorProbe()
	if probeErr == nil {
		log.Debug("window size from cursor probe", "rows", size.Rows, "cols", size.Cols)
		return size, nil
	}

	if r.Default.Rows > 0 && r.Default.Cols > 0 {
		log.Warn("window size unresolved, using configured default",
			"rows", r.Default.Rows, "cols", r.Default.Cols, "error", probeErr)
		return r.Default, nil
	}
	return Size{}, fmt.Errorf("%w: ioctl: %v; probe: %v", ErrWindowSize, err, probeErr)
}

func (r *SizeResolver) fromIoctl() (Size, error) {
	get := r.getWinsize
	if get == nil {
		get = func(fd int) (*unix.Winsize, error) {
			return unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
		}
	}
	ws, err := get(r.Fd)
	if err != nil {
		return Size{}, err
	}
	if ws.Col == 0 {
		return Size{}, fmt.Errorf("ioctl reported zero columns")
	}
	return Size{Rows: int(ws.Row), Cols: int(ws.Col)}, nil
}

// fromCursorProbe pushes the cursor to the bottom-right corner and asks where it landed
func (r *SizeResolver) fromCursorProbe() (Size, error) {
	if r.In == nil || r.Out == nil {
		return Size{}, fmt.Errorf("cursor probe: no terminal streams")
	}

	probe := make([]byte, 0, len(csiCursorFarCorner)+len(csiDeviceStatus))
	probe = append(probe, csiCursorFarCorner...)
	probe = append(probe, csiDeviceStatus...)
	if _, err := r.Out.Write(probe); err != nil {
		return Size{}, fmt.Errorf("cursor probe: %w", err)
	}

	reply, err := readCursorReply(r.In)
	if err != nil {
		return Size{}, err
	}
	rows, cols, err := parseCursorReply(reply)
	if err != nil {
		return Size{}, err
	}
	if rows == 0 || cols == 0 {
		return Size{}, fmt.Errorf("%w: zero dimension %dx%d", ErrBadCursorReply, rows, cols)
	}
	return Size{Rows: rows, Cols: cols}, nil
}
