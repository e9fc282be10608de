package editor

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kilo/terminal"
)

// fakeTerminal replays events and records output
// The first failWrites writes return writeErr and record nothing
type fakeTerminal struct {
	bytes.Buffer
	events []terminal.Event
	err    error
	writes int

	failWrites int
	writeErr   error
}

func (f *fakeTerminal) Write(p []byte) (int, error) {
	f.writes++
	if f.writes <= f.failWrites {
		return 0, f.writeErr
	}
	return f.Buffer.Write(p)
}

func (f *fakeTerminal) ReadKey() (terminal.Event, error) {
	if len(f.events) == 0 {
		return terminal.Event{}, f.err
	}
	ev := f.events[0]
	f.events = f.events[1:]
	return ev, nil
}

func TestRun_QuitAfterMoves(t *testing.T) {
	ft := &fakeTerminal{
		events: []terminal.Event{
			{Key: terminal.KeyDown},
			{Key: terminal.KeyRight},
			{Key: terminal.KeyRight},
			{Key: terminal.KeyByte, Byte: terminal.CtrlKey('q')},
		},
		err: errors.New("read past quit"),
	}
	e := New(terminal.Size{Rows: 24, Cols: 80}, nil)

	err := Run(ft, e)
	assert.ErrorIs(t, err, ErrQuit)

	// One frame per key plus the clear on quit
	assert.Equal(t, 5, ft.writes)
	assert.True(t, strings.HasSuffix(ft.String(), "\x1b[2J\x1b[H"))
	// Last frame shows the moved cursor
	assert.Contains(t, ft.String(), "\x1b[2;3H\x1b[?25h\x1b[2J\x1b[H")

	x, y := e.Cursor()
	assert.Equal(t, 2, x)
	assert.Equal(t, 1, y)
}

func TestRun_RefreshFailureIsNotFatal(t *testing.T) {
	ft := &fakeTerminal{
		events: []terminal.Event{
			{Key: terminal.KeyRight},
			{Key: terminal.KeyByte, Byte: terminal.CtrlKey('q')},
		},
		err:        errors.New("read past quit"),
		failWrites: 1,
		writeErr:   errors.New("input/output error"),
	}
	var logs bytes.Buffer
	log := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelWarn}))
	e := New(terminal.Size{Rows: 24, Cols: 80}, log)

	err := Run(ft, e)
	assert.ErrorIs(t, err, ErrQuit)
	assert.False(t, IsFatal(err))

	x, y := e.Cursor()
	assert.Equal(t, 1, x, "key after the failed frame still applied")
	assert.Equal(t, 0, y)

	// Failed frame, frame after the move, clear on quit
	assert.Equal(t, 3, ft.writes)
	assert.True(t, strings.HasSuffix(ft.String(), "\x1b[2J\x1b[H"))
	assert.Contains(t, logs.String(), "level=WARN")
	assert.Contains(t, logs.String(), "refresh failed")
}

func TestRun_ReadErrorIsFatal(t *testing.T) {
	boom := errors.New("input/output error")
	ft := &fakeTerminal{err: boom}

	err := Run(ft, New(terminal.Size{Rows: 2, Cols: 2}, nil))
	require.True(t, IsFatal(err))
	assert.ErrorIs(t, err, boom)

	var fe *FatalError
	require.ErrorAs(t, err, &fe)
	assert.Equal(t, "read key", fe.Op)
	assert.Equal(t, 1, ft.writes, "frame drawn before the failed read")
}

func TestFatal(t *testing.T) {
	assert.NoError(t, Fatal("op", nil))

	inner := Fatal("read key", errors.New("eio"))
	assert.EqualError(t, inner, "read key: eio")

	// Already fatal errors are not wrapped twice
	assert.Same(t, inner, Fatal("outer", inner))
	assert.False(t, IsFatal(ErrQuit))
}
