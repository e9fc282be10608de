package terminal

import (
	"bytes"
	"fmt"
	"os"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

// openPTY returns a master/slave pair, skipping when the system has no ptys
func openPTY(t *testing.T) (master, slave *os.File) {
	t.Helper()

	m, err := os.OpenFile("/dev/ptmx", os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		t.Skipf("no pty available: %v", err)
	}
	mfd := int(m.Fd())
	if err := unix.IoctlSetPointerInt(mfd, unix.TIOCSPTLCK, 0); err != nil {
		m.Close()
		t.Skipf("unlockpt: %v", err)
	}
	n, err := unix.IoctlGetInt(mfd, unix.TIOCGPTN)
	if err != nil {
		m.Close()
		t.Skipf("ptsname: %v", err)
	}
	s, err := os.OpenFile(fmt.Sprintf("/dev/pts/%d", n), os.O_RDWR|unix.O_NOCTTY, 0)
	if err != nil {
		m.Close()
		t.Skipf("open slave: %v", err)
	}

	t.Cleanup(func() {
		s.Close()
		m.Close()
	})
	return m, s
}

func getTermios(t *testing.T, f *os.File) unix.Termios {
	t.Helper()
	tio, err := unix.IoctlGetTermios(int(f.Fd()), ioctlGetTermios)
	require.NoError(t, err)
	return *tio
}

func TestRawMode_RoundTripIsBitIdentical(t *testing.T) {
	_, slave := openPTY(t)
	before := getTermios(t, slave)

	m, err := EnterRawMode(int(slave.Fd()))
	require.NoError(t, err)

	during := getTermios(t, slave)
	assert.Zero(t, during.Lflag&(unix.ECHO|unix.ICANON|unix.ISIG|unix.IEXTEN))
	assert.Zero(t, during.Oflag&unix.OPOST)
	assert.Equal(t, uint8(0), during.Cc[unix.VMIN])
	assert.Equal(t, uint8(1), during.Cc[unix.VTIME])

	if diff := cmp.Diff(before, m.Original()); diff != "" {
		t.Errorf("captured snapshot differs (-want +got):\n%s", diff)
	}

	require.NoError(t, m.Restore())
	after := getTermios(t, slave)
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("attributes not restored (-want +got):\n%s", diff)
	}

	// Second restore is a no-op with the same result
	assert.NoError(t, m.Restore())
}

func TestSession_OnPTY(t *testing.T) {
	master, slave := openPTY(t)
	before := getTermios(t, slave)

	s := newSession(slave, slave, nil)
	require.NoError(t, s.Init())
	require.NoError(t, s.Init(), "second Init is a no-op")

	require.NoError(t, unix.IoctlSetWinsize(int(master.Fd()), unix.TIOCSWINSZ, &unix.Winsize{Row: 40, Col: 132}))
	size, err := s.Size(Size{})
	require.NoError(t, err)
	assert.Equal(t, Size{Rows: 40, Cols: 132}, size)

	_, err = master.Write([]byte("\x1b[Ax"))
	require.NoError(t, err)

	ev, err := s.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Event{Key: KeyUp}, ev)

	ev, err = s.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, Event{Key: KeyByte, Byte: 'x'}, ev)

	require.NoError(t, s.Close())
	require.NoError(t, s.Close(), "second Close is a no-op")

	if diff := cmp.Diff(before, getTermios(t, slave)); diff != "" {
		t.Errorf("attributes not restored (-want +got):\n%s", diff)
	}
}

func TestSession_SizeProbeOnPTY(t *testing.T) {
	master, slave := openPTY(t)

	s := newSession(slave, slave, nil)
	require.NoError(t, s.Init())
	defer s.Close()

	// A fresh pty reports 0x0, forcing the cursor probe; queue the reply a terminal would send
	_, err := master.Write([]byte("\x1b[24;80R"))
	require.NoError(t, err)

	done := make(chan []byte, 1)
	go func() {
		var seen []byte
		buf := make([]byte, 64)
		for !bytes.Contains(seen, csiDeviceStatus) {
			n, err := master.Read(buf)
			if err != nil {
				break
			}
			seen = append(seen, buf[:n]...)
		}
		done <- seen
	}()

	size, err := s.Size(Size{})
	require.NoError(t, err)
	assert.Equal(t, Size{Rows: 24, Cols: 80}, size)

	select {
	case seen := <-done:
		assert.Equal(t, "\x1b[999C\x1b[999B\x1b[6n", string(seen))
	case <-time.After(2 * time.Second):
		t.Fatal("probe never reached the master side")
	}
}

func TestSession_NotATerminal(t *testing.T) {
	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()

	s := newSession(r, w, nil)
	assert.ErrorIs(t, s.Init(), ErrNotTerminal)
	assert.NoError(t, s.Close(), "Close without Init is a no-op")
}
