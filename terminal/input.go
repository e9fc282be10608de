package terminal

import (
	"fmt"
	"io"
)

// Decoder turns the raw byte stream of a terminal in raw mode into key events
// The reader is expected to return (0, nil) when the raw-mode read timeout expires
type Decoder struct {
	r   io.Reader
	one [1]byte
}

// NewDecoder creates a decoder over r
func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

// ReadKey blocks until one complete key is available
// Idle timeouts are retried; any read error is returned and is not recoverable
func (d *Decoder) ReadKey() (Event, error) {
	b, err := d.waitByte()
	if err != nil {
		return Event{}, err
	}
	if b != 0x1b {
		return Event{Key: KeyByte, Byte: b}, nil
	}
	return d.decodeEscape(), nil
}

// decodeEscape reads what follows ESC; anything short or unknown resolves to a bare Escape
func (d *Decoder) decodeEscape() Event {
	var seq [MaxEscapeSeqLen]byte
	n := 0

	for n < 2 {
		c, ok := d.tryByte()
		if !ok {
			return Event{Key: KeyEscape}
		}
		seq[n] = c
		n++
	}

	// "[5~" style sequences carry a trailing '~'
	if seq[0] == '[' && seq[1] >= '0' && seq[1] <= '9' {
		c, ok := d.tryByte()
		if !ok {
			return Event{Key: KeyEscape}
		}
		seq[n] = c
		n++
	}

	if key, ok := lookupCSI(seq[:n]); ok {
		return Event{Key: key}
	}
	return Event{Key: KeyEscape}
}

// waitByte reads until a byte arrives, retrying zero-byte reads
func (d *Decoder) waitByte() (byte, error) {
	for {
		n, err := d.r.Read(d.one[:])
		if n == 1 {
			return d.one[0], nil
		}
		if err != nil {
			return 0, fmt.Errorf("read input: %w", err)
		}
	}
}

// tryByte performs a single bounded read, ok is false unless exactly one byte arrived
func (d *Decoder) tryByte() (byte, bool) {
	n, _ := d.r.Read(d.one[:])
	if n != 1 {
		return 0, false
	}
	return d.one[0], true
}
