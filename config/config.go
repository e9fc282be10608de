// Package config reads optional settings from the environment.
//
// Nothing here is required: with an empty environment the editor runs with
// logging discarded and no default window size.
//
// Variables:
//   - KILO_LOG: debug log file path
//   - KILO_DEBUG: debug level logging when truthy
//   - KILO_DEFAULT_SIZE: "<rows>x<cols>" used when the window size cannot be resolved
package config

import (
	"fmt"
	"log/slog"
	"os"
	"strconv"
	"strings"

	"github.com/lixenwraith/kilo/terminal"
)

// Config is the resolved settings for one run
type Config struct {
	LogFile     string
	Debug       bool
	DefaultSize terminal.Size
}

// Load reads all variables; a malformed value is reported, not ignored
func Load() (Config, error) {
	size, err := DefaultSize()
	if err != nil {
		return Config{}, err
	}
	return Config{
		LogFile:     LogFile(),
		Debug:       Debug(),
		DefaultSize: size,
	}, nil
}

// LogLevel maps Debug to a slog level
func (c Config) LogLevel() slog.Level {
	if c.Debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// LogFile returns the log destination, empty when logging is disabled
// Configurable via KILO_LOG
func LogFile() string {
	return Var("KILO_LOG")
}

// Debug enables debug level logs
// Configurable via KILO_DEBUG
var Debug = Bool("KILO_DEBUG")

// DefaultSize returns the fallback window size, zero when unset
// Configurable via KILO_DEFAULT_SIZE, e.g. "24x80"
func DefaultSize() (terminal.Size, error) {
	s := Var("KILO_DEFAULT_SIZE")
	if s == "" {
		return terminal.Size{}, nil
	}
	return ParseSize(s)
}

// ParseSize parses "<rows>x<cols>" with both values positive
func ParseSize(s string) (terminal.Size, error) {
	rows, cols, ok := strings.Cut(strings.ToLower(s), "x")
	if !ok {
		return terminal.Size{}, fmt.Errorf("invalid size %q: want <rows>x<cols>", s)
	}
	r, err := strconv.Atoi(strings.TrimSpace(rows))
	if err != nil || r <= 0 {
		return terminal.Size{}, fmt.Errorf("invalid size %q: bad rows", s)
	}
	c, err := strconv.Atoi(strings.TrimSpace(cols))
	if err != nil || c <= 0 {
		return terminal.Size{}, fmt.Errorf("invalid size %q: bad cols", s)
	}
	return terminal.Size{Rows: r, Cols: c}, nil
}

// Bool returns a lookup for a boolean variable; unset is false, set but unparsable is true
func Bool(k string) func() bool {
	return func() bool {
		if s := Var(k); s != "" {
			b, err := strconv.ParseBool(s)
			if err != nil {
				return true
			}
			return b
		}
		return false
	}
}

// Var returns an environment variable stripped of leading and trailing quotes or spaces
func Var(key string) string {
	return strings.Trim(strings.TrimSpace(os.Getenv(key)), "\"'")
}
