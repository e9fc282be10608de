// Command kilo-keys echoes decoded keypresses in raw mode, one per line, until Ctrl+Q
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/lixenwraith/kilo/terminal"
)

type keySource interface {
	ReadKey() (terminal.Event, error)
}

func main() {
	sess := terminal.NewSession(slog.New(slog.DiscardHandler))
	if err := sess.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init failed: %v\n", err)
		os.Exit(1)
	}

	err := echoKeys(sess, sess)
	if cerr := sess.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "kilo-keys: %v\n", err)
		os.Exit(1)
	}
}

// echoKeys writes one line per event; OPOST is off so lines end in CRLF
func echoKeys(src keySource, w io.Writer) error {
	if _, err := io.WriteString(w, "Press keys, Ctrl+Q to quit"+string(terminal.SeqCRLF)); err != nil {
		return err
	}
	for {
		ev, err := src.ReadKey()
		if err != nil {
			return err
		}
		if _, err := io.WriteString(w, formatKeyEvent(ev)+string(terminal.SeqCRLF)); err != nil {
			return err
		}
		if ev.IsCtrl('q') {
			return nil
		}
	}
}

func formatKeyEvent(ev terminal.Event) string {
	if ev.Key != terminal.KeyByte {
		return "KEY: " + terminal.KeyName(ev.Key)
	}
	return fmt.Sprintf("BYTE: %d (%s)", ev.Byte, terminal.ByteName(ev.Byte))
}
