package logging

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	clog "github.com/charmbracelet/log"
	"github.com/cristianoliveira/artisan-ref/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTest(t *testing.T) string {
	t.Helper()
	tmp := t.TempDir()
	t.Setenv("XDG_STATE_HOME", tmp)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(tmp, "config"))
	t.Setenv("HOME", tmp)
	t.Setenv("ARTISAN_REF_DEBUG", "false")
	config.Load()
	t.Cleanup(func() { _ = ShutdownGlobal() })
	return tmp
}

func logFiles(t *testing.T, dir string) []string {
	t.Helper()
	matches, err := filepath.Glob(filepath.Join(dir, filePrefix+"*.log"))
	require.NoError(t, err)
	return matches
}

func readEntries(t *testing.T, path string) []map[string]any {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	var entries []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
		entries = append(entries, entry)
	}
	return entries
}

func TestConfigFromGlobal(t *testing.T) {
	setupTest(t)
	t.Setenv("ARTISAN_REF_LOGGING_ENABLED", "true")
	t.Setenv("ARTISAN_REF_LOGGING_LEVEL", "warn")
	t.Setenv("ARTISAN_REF_LOGGING_MAX_FILES", "5")
	config.Load()

	cfg := FromGlobalConfig()
	assert.True(t, cfg.Enabled)
	assert.Equal(t, "warn", cfg.Level)
	assert.Equal(t, 5, cfg.MaxFiles)
	assert.Equal(t, filepath.Base(os.Args[0]), cfg.Command)
	assert.Equal(t, os.Getpid(), cfg.PID)
}

func TestDebugForcesDebugLevel(t *testing.T) {
	setupTest(t)
	t.Setenv("ARTISAN_REF_DEBUG", "1")
	t.Setenv("ARTISAN_REF_LOGGING_LEVEL", "error")
	config.Load()

	assert.Equal(t, "debug", FromGlobalConfig().Level)
}

func TestLogDir(t *testing.T) {
	tmp := setupTest(t)

	dir, err := LogDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(tmp, "artisan-ref", "logs"), dir)
	assert.DirExists(t, dir)
}

func TestInitDisabled(t *testing.T) {
	setupTest(t)

	l, err := Init(Config{Enabled: false})
	require.NoError(t, err)
	assert.IsType(t, noopLogger{}, l)
	assert.NoError(t, l.Shutdown())
}

func TestLoggingWritesJSON(t *testing.T) {
	setupTest(t)
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "debug"

	l, err := Init(cfg)
	require.NoError(t, err)
	l.Info("catalog loaded", "categories", 14)
	l.With("component", "tui").Debug("selection changed", "command", "about")
	require.NoError(t, l.Shutdown())

	dir, err := LogDir()
	require.NoError(t, err)
	files := logFiles(t, dir)
	require.Len(t, files, 1)

	entries := readEntries(t, files[0])
	require.Len(t, entries, 2)
	assert.Equal(t, "catalog loaded", entries[0]["msg"])
	assert.Equal(t, float64(14), entries[0]["categories"])
	assert.Equal(t, "tui", entries[1]["component"])
	assert.Equal(t, float64(cfg.PID), entries[1]["pid"])
}

func TestLevelFiltering(t *testing.T) {
	setupTest(t)
	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.Level = "warn"

	l, err := Init(cfg)
	require.NoError(t, err)
	l.Info("hidden")
	l.Warn("shown")
	require.NoError(t, l.Shutdown())

	dir, _ := LogDir()
	entries := readEntries(t, logFiles(t, dir)[0])
	require.Len(t, entries, 1)
	assert.Equal(t, "shown", entries[0]["msg"])
}

func TestRedaction(t *testing.T) {
	setupTest(t)
	cfg := DefaultConfig()
	cfg.Enabled = true

	l, err := Init(cfg)
	require.NoError(t, err)
	l.Info("copy", "api_key", "abc", "keyboard", "qwerty", "text", "php artisan down --secret=x")
	require.NoError(t, l.Shutdown())

	dir, _ := LogDir()
	entries := readEntries(t, logFiles(t, dir)[0])
	require.Len(t, entries, 1)
	assert.Equal(t, redacted, entries[0]["api_key"])
	assert.Equal(t, "qwerty", entries[0]["keyboard"])
	assert.Equal(t, "php artisan down --secret=x", entries[0]["text"])
}

func TestRedactorEdgeCases(t *testing.T) {
	r := newRedactor()

	assert.Empty(t, r.redact(nil))
	odd := r.redact([]any{"token"})
	assert.Equal(t, []any{"token"}, odd)
	nonString := r.redact([]any{42, "secret"})
	assert.Equal(t, []any{42, "secret"}, nonString)

	original := []any{"password", "hunter2"}
	out := r.redact(original)
	assert.Equal(t, redacted, out[1])
	assert.Equal(t, "hunter2", original[1], "input must not be modified")
}

func TestRotation(t *testing.T) {
	setupTest(t)
	dir, err := LogDir()
	require.NoError(t, err)

	old := time.Now().Add(-time.Hour)
	for i, name := range []string{"a", "b", "c"} {
		path := filepath.Join(dir, filePrefix+name+".log")
		require.NoError(t, os.WriteFile(path, nil, 0600))
		mod := old.Add(time.Duration(i) * time.Minute)
		require.NoError(t, os.Chtimes(path, mod, mod))
	}
	other := filepath.Join(dir, "unrelated.log")
	require.NoError(t, os.WriteFile(other, nil, 0600))

	cfg := DefaultConfig()
	cfg.Enabled = true
	cfg.MaxFiles = 2
	l, err := Init(cfg)
	require.NoError(t, err)
	require.NoError(t, l.Shutdown())

	files := logFiles(t, dir)
	assert.Len(t, files, 2)
	assert.NotContains(t, files, filepath.Join(dir, filePrefix+"a.log"))
	assert.NotContains(t, files, filepath.Join(dir, filePrefix+"b.log"))
	assert.Contains(t, files, filepath.Join(dir, filePrefix+"c.log"))
	assert.FileExists(t, other)
}

func TestRotationDisabled(t *testing.T) {
	dir := t.TempDir()
	for _, name := range []string{"a", "b"} {
		require.NoError(t, os.WriteFile(filepath.Join(dir, filePrefix+name+".log"), nil, 0600))
	}

	require.NoError(t, rotate(dir, -1))
	assert.Len(t, logFiles(t, dir), 2)

	require.NoError(t, rotate(dir, 0))
	assert.Empty(t, logFiles(t, dir))
}

func TestGlobalLogger(t *testing.T) {
	setupTest(t)
	assert.IsType(t, noopLogger{}, GetGlobal())
	assert.Equal(t, "", CurrentLogFile())

	t.Setenv("ARTISAN_REF_LOGGING_ENABLED", "true")
	config.Load()
	require.NoError(t, InitGlobal())

	path := CurrentLogFile()
	require.NotEmpty(t, path)
	Info("global message", "query", "prod")
	require.NoError(t, ShutdownGlobal())

	entries := readEntries(t, path)
	require.NotEmpty(t, entries)
	assert.Equal(t, "global message", entries[len(entries)-1]["msg"])
	assert.Equal(t, "", CurrentLogFile())
}

func TestLevelParsing(t *testing.T) {
	tests := map[string]clog.Level{
		"debug":   clog.DebugLevel,
		"INFO":    clog.InfoLevel,
		"warn":    clog.WarnLevel,
		"warning": clog.WarnLevel,
		"error":   clog.ErrorLevel,
		"bogus":   clog.InfoLevel,
	}
	for in, want := range tests {
		assert.Equal(t, want, parseLevel(in), in)
	}
}
