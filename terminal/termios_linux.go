package terminal

import "golang.org/x/sys/unix"

// TCSETSF is tcsetattr(TCSAFLUSH)
const (
	ioctlGetTermios      = unix.TCGETS
	ioctlSetTermiosFlush = unix.TCSETSF
)
