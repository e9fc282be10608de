//go:build unix

package terminal

import (
	"golang.org/x/sys/unix"
)

// FdReader reads a raw descriptor directly, bypassing os.File's EOF translation
// EINTR and EAGAIN surface as zero-byte reads so callers see the idle timeout uniformly
type FdReader struct {
	Fd int
}

// Read implements io.Reader
func (f FdReader) Read(p []byte) (int, error) {
	n, err := unix.Read(f.Fd, p)
	if err != nil {
		if err == unix.EINTR || err == unix.EAGAIN {
			return 0, nil
		}
		return 0, err
	}
	if n < 0 {
		n = 0
	}
	return n, nil
}
