package editor

import (
	"errors"
	"fmt"
)

// ErrQuit signals the user asked to leave; it is the only non-fatal way out of Run
var ErrQuit = errors.New("quit")

// FatalError is an unrecoverable failure of a terminal operation
// The process boundary catches it once, cleans up the terminal and exits non-zero
type FatalError struct {
	Op  string
	Err error
}

func (e *FatalError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *FatalError) Unwrap() error {
	return e.Err
}

// Fatal wraps err as a FatalError for op; a nil err stays nil
func Fatal(op string, err error) error {
	if err == nil {
		return nil
	}
	var fe *FatalError
	if errors.As(err, &fe) {
		return err
	}
	return &FatalError{Op: op, Err: err}
}

// IsFatal reports whether err carries a FatalError
func IsFatal(err error) bool {
	var fe *FatalError
	return errors.As(err, &fe)
}
