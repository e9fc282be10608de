package config

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lixenwraith/kilo/terminal"
)

func TestLoad_EmptyEnvironment(t *testing.T) {
	t.Setenv("KILO_LOG", "")
	t.Setenv("KILO_DEBUG", "")
	t.Setenv("KILO_DEFAULT_SIZE", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, Config{}, cfg)
	assert.Equal(t, slog.LevelInfo, cfg.LogLevel())
}

func TestLoad_AllSet(t *testing.T) {
	t.Setenv("KILO_LOG", `"/tmp/kilo.log"`)
	t.Setenv("KILO_DEBUG", "1")
	t.Setenv("KILO_DEFAULT_SIZE", " 24x80 ")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "/tmp/kilo.log", cfg.LogFile)
	assert.True(t, cfg.Debug)
	assert.Equal(t, terminal.Size{Rows: 24, Cols: 80}, cfg.DefaultSize)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel())
}

func TestLoad_BadSize(t *testing.T) {
	t.Setenv("KILO_DEFAULT_SIZE", "big")
	_, err := Load()
	assert.Error(t, err)
}

func TestParseSize(t *testing.T) {
	cases := map[string]struct {
		want terminal.Size
		ok   bool
	}{
		"24x80":   {terminal.Size{Rows: 24, Cols: 80}, true},
		"40X132":  {terminal.Size{Rows: 40, Cols: 132}, true},
		"24 x 80": {terminal.Size{Rows: 24, Cols: 80}, true},
		"0x80":    {ok: false},
		"24x-1":   {ok: false},
		"24":      {ok: false},
		"x":       {ok: false},
		"axb":     {ok: false},
	}
	for in, tc := range cases {
		got, err := ParseSize(in)
		if !tc.ok {
			assert.Error(t, err, in)
			continue
		}
		require.NoError(t, err, in)
		assert.Equal(t, tc.want, got, in)
	}
}

func TestBool(t *testing.T) {
	cases := map[string]bool{
		"":      false,
		"0":     false,
		"false": false,
		"1":     true,
		"true":  true,
		"yes":   true, // unparsable but set
	}
	for v, want := range cases {
		t.Setenv("KILO_TEST_BOOL", v)
		assert.Equal(t, want, Bool("KILO_TEST_BOOL")(), "value %q", v)
	}
}
