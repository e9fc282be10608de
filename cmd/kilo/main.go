package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/lixenwraith/kilo/config"
	"github.com/lixenwraith/kilo/editor"
	"github.com/lixenwraith/kilo/terminal"
)

// session is the terminal as the exit routine sees it
type session interface {
	editor.Terminal
	Init() error
	Close() error
	Size(def terminal.Size) (terminal.Size, error)
	ClearScreen() error
}

func main() {
	os.Exit(execute(os.Args[1:]))
}

// execute parses the command line and returns the process exit code
func execute(args []string) int {
	code := 0
	cmd := newRootCmd(func(cfg config.Config) error {
		log, logFile, err := setupLogging(cfg.LogFile, cfg.LogLevel())
		if err != nil {
			return err
		}
		if logFile != nil {
			defer logFile.Close()
		}

		code = run(terminal.NewSession(log), cfg.DefaultSize, log, os.Stderr)
		return nil
	})
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "kilo: %v\n", err)
		return 1
	}
	return code
}

func newRootCmd(start func(config.Config) error) *cobra.Command {
	var logFile string

	cmd := &cobra.Command{
		Use:           "kilo",
		Short:         "A minimal terminal text editor",
		Version:       editor.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("log-file") {
				cfg.LogFile = logFile
			}
			return start(cfg)
		},
	}
	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug log to `path` (overrides KILO_LOG)")
	return cmd
}

// run is the single exit routine: every path out of the editor ends here
// The terminal is restored before the diagnostic is printed
func run(sess session, def terminal.Size, log *slog.Logger, stderr io.Writer) int {
	err := runSession(sess, def, log)
	if errors.Is(err, editor.ErrQuit) {
		log.Info("exit", "code", 0)
		return 0
	}

	log.Error("fatal", "error", err)
	fmt.Fprintf(stderr, "kilo: %v\n", err)
	return 1
}

// runSession holds raw mode for exactly its own duration
func runSession(sess session, def terminal.Size, log *slog.Logger) (err error) {
	if err := sess.Init(); err != nil {
		sess.ClearScreen()
		return editor.Fatal("init terminal", err)
	}

	defer func() {
		if cerr := sess.Close(); cerr != nil && !editor.IsFatal(err) {
			err = editor.Fatal("restore terminal", cerr)
		}
	}()

	// Panic recovery: ensure terminal is reset even if the editor crashes
	defer func() {
		if r := recover(); r != nil {
			terminal.EmergencyReset(sess)
			err = editor.Fatal("panic", fmt.Errorf("%v\n%s", r, debug.Stack()))
		}
	}()

	defer func() {
		if editor.IsFatal(err) {
			sess.ClearScreen()
		}
	}()

	size, err := sess.Size(def)
	if err != nil {
		return editor.Fatal("window size", err)
	}
	log.Info("start", "rows", size.Rows, "cols", size.Cols)

	return editor.Run(sess, editor.New(size, log))
}
