//go:build linux || darwin || dragonfly || freebsd || netbsd || openbsd

package terminal

import (
	"fmt"
	"log/slog"
	"os"
	"sync"

	"golang.org/x/term"
)

// Session owns the controlling terminal for the lifetime of the process
// Init acquires raw mode; Close releases it and is safe to call multiple times
type Session struct {
	in    *os.File
	out   *os.File
	inFd  int
	outFd int

	raw     *RawMode
	decoder *Decoder
	log     *slog.Logger

	mu          sync.Mutex
	initialized bool
	finalized   bool
}

// NewSession creates a session over stdin/stdout
func NewSession(log *slog.Logger) *Session {
	return newSession(os.Stdin, os.Stdout, log)
}

func newSession(in, out *os.File, log *slog.Logger) *Session {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	inFd := int(in.Fd())
	return &Session{
		in:      in,
		out:     out,
		inFd:    inFd,
		outFd:   int(out.Fd()),
		decoder: NewDecoder(FdReader{Fd: inFd}),
		log:     log,
	}
}

// Init enters raw mode on the input descriptor
func (s *Session) Init() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.initialized {
		return nil
	}

	if !term.IsTerminal(s.inFd) {
		return fmt.Errorf("stdin: %w", ErrNotTerminal)
	}

	raw, err := EnterRawMode(s.inFd)
	if err != nil {
		return fmt.Errorf("enter raw mode: %w", err)
	}
	s.raw = raw
	s.initialized = true
	s.log.Debug("raw mode enabled", "fd", s.inFd)
	return nil
}

// Close restores the captured terminal attributes
func (s *Session) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.initialized || s.finalized {
		return nil
	}
	s.finalized = true

	if err := s.raw.Restore(); err != nil {
		return fmt.Errorf("restore terminal: %w", err)
	}
	s.log.Debug("terminal restored", "fd", s.inFd)
	return nil
}

// Size resolves the window size; def is used only when both strategies fail
func (s *Session) Size(def Size) (Size, error) {
	r := &SizeResolver{
		Fd:      s.outFd,
		In:      FdReader{Fd: s.inFd},
		Out:     s.out,
		Default: def,
		Log:     s.log,
	}
	return r.Resolve()
}

// ReadKey blocks until the next keypress
func (s *Session) ReadKey() (Event, error) {
	return s.decoder.ReadKey()
}

// Write sends bytes to the terminal output unmodified
func (s *Session) Write(p []byte) (int, error) {
	return s.out.Write(p)
}

// Sync flushes the terminal output to the device
func (s *Session) Sync() error {
	return s.out.Sync()
}

// ClearScreen erases the display and homes the cursor
func (s *Session) ClearScreen() error {
	return ClearScreen(s.out)
}
