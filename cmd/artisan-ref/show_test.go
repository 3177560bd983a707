package main

import (
	"encoding/json"
	"io"
	"strings"
	"testing"

	"github.com/cristianoliveira/artisan-ref/internal/clipboard"
	"github.com/cristianoliveira/artisan-ref/internal/colors"
	"github.com/cristianoliveira/artisan-ref/internal/config"
	"github.com/cristianoliveira/artisan-ref/internal/format"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestShowCommand(t *testing.T) {
	setupConfig(t)

	out, _, err := executeCmd(t, NewShowCmd(newFakeClient()), "Generales", "down")
	require.NoError(t, err)

	assert.Contains(t, out, "down  [Generales]")
	assert.Contains(t, out, "Pone la aplicación en mantenimiento")
	assert.Contains(t, out, "1. php artisan down")
	assert.Contains(t, out, format.LabelOptions)
	assert.Contains(t, out, "--secret")
	assert.Contains(t, out, "Tags: producción")
}

func TestShowOmitsOptionsWhenAbsent(t *testing.T) {
	setupConfig(t)

	out, _, err := executeCmd(t, NewShowCmd(newFakeClient()), "Generales", "about")
	require.NoError(t, err)
	assert.NotContains(t, out, format.LabelOptions)
}

func TestShowNotFound(t *testing.T) {
	setupConfig(t)

	tests := []struct {
		name string
		args []string
	}{
		{name: "unknown category", args: []string{"Nope", "about"}},
		{name: "unknown command", args: []string{"Generales", "nope"}},
		{name: "case sensitive", args: []string{"generales", "about"}},
		{name: "command in other category", args: []string{"Generales", "migrate"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, _, err := executeCmd(t, NewShowCmd(newFakeClient()), tt.args...)
			require.ErrorIs(t, err, ErrCommandNotFound)
			assert.Empty(t, out)
		})
	}
}

func TestShowRequiresTwoArgs(t *testing.T) {
	setupConfig(t)

	_, _, err := executeCmd(t, NewShowCmd(newFakeClient()), "Generales")
	require.Error(t, err)
}

func TestShowYAML(t *testing.T) {
	setupConfig(t)

	out, _, err := executeCmd(t, NewShowCmd(newFakeClient()), "Database & Migrate", "migrate:fresh", "--format", "yaml")
	require.NoError(t, err)

	var view format.CommandView
	require.NoError(t, yaml.Unmarshal([]byte(out), &view))
	assert.Equal(t, "migrate:fresh", view.Name)
	assert.Equal(t, "Database & Migrate", view.Category)
	assert.True(t, view.Dangerous)
	assert.False(t, view.Production)
}

func TestShowCopy(t *testing.T) {
	setupConfig(t)
	client := newFakeClient()

	_, errOut, err := executeCmd(t, NewShowCmd(client), "Generales", "about", "--copy", "2")
	require.NoError(t, err)

	assert.Equal(t, []string{"php artisan about --json"}, client.copier.Copied())
	assert.Contains(t, errOut, "Copiado: php artisan about --json")
	// Buffers are not terminals, so no OSC 52 writer is handed out.
	assert.Equal(t, []io.Writer{nil}, client.copierOut)
}

func TestShowCopyKeepsStdoutClean(t *testing.T) {
	setupConfig(t)
	t.Setenv("ARTISAN_REF_CLIPBOARD_BACKEND", "osc52")
	config.Load()

	out, errOut, err := executeCmd(t, NewShowCmd(defaultClient{}), "Generales", "about", "--format", "json", "--copy", "1")
	require.ErrorIs(t, err, clipboard.ErrUnavailable)

	assert.NotContains(t, out, "\x1b")
	assert.NotContains(t, errOut, "\x1b")
	assert.NotContains(t, errOut, "Copiado")

	var view format.CommandView
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "about", view.Name)
}

func TestShowCopyOutOfRange(t *testing.T) {
	setupConfig(t)

	for _, n := range []string{"0", "3", "-1"} {
		client := newFakeClient()
		_, _, err := executeCmd(t, NewShowCmd(client), "Generales", "about", "--copy="+n)
		require.ErrorIs(t, err, ErrExampleOutOfRange, "copy %s", n)
		assert.Empty(t, client.copier.Copied())
	}
}

func TestShowCopyFailure(t *testing.T) {
	setupConfig(t)
	client := newFakeClient()
	client.copier.Err = clipboard.ErrUnavailable

	out, _, err := executeCmd(t, NewShowCmd(client), "Generales", "about", "--copy", "1")
	require.ErrorIs(t, err, clipboard.ErrUnavailable)
	assert.Contains(t, out, "about")
}

func TestShowCopyFailureLogsWarning(t *testing.T) {
	setupConfig(t)
	_, logOut := captureColors(t)
	colors.SetDebug(true)
	defer colors.SetDebug(false)

	client := newFakeClient()
	client.copier.Err = clipboard.ErrUnavailable

	_, _, err := executeCmd(t, NewShowCmd(client), "Generales", "about", "--copy", "1")
	require.Error(t, err)

	line := strings.TrimSpace(logOut.String())
	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(line), &entry), line)
	assert.Equal(t, "warn", entry["level"])
	assert.Equal(t, "show", entry["component"])
	assert.Equal(t, "failed", entry["status"])
	assert.Equal(t, "about", entry["command"])
}
