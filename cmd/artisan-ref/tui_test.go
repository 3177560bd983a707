package main

import (
	"errors"
	"os"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/cristianoliveira/artisan-ref/internal/config"
	"github.com/cristianoliveira/artisan-ref/internal/search"
	"github.com/cristianoliveira/artisan-ref/internal/tui/state"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// captureRunner records the model instead of starting a program.
type captureRunner struct {
	model *state.Model
	err   error
}

func (r *captureRunner) run(m tea.Model) error {
	r.model, _ = m.(*state.Model)
	return r.err
}

func TestModelOptionsFromConfig(t *testing.T) {
	setupConfig(t)
	t.Setenv("ARTISAN_REF_COPY_FEEDBACK_MS", "500")
	t.Setenv("ARTISAN_REF_SIDEBAR_WIDTH", "40")
	t.Setenv("ARTISAN_REF_DEFAULT_COMMAND", "down")
	config.Load()

	client := newFakeClient()
	opts, err := modelOptions(client, tuiFlags{query: "migr"})
	require.NoError(t, err)

	assert.Equal(t, client.catalog, opts.Catalog)
	assert.Equal(t, client.copier, opts.Copier)
	assert.Equal(t, "migr", opts.Query)
	assert.Equal(t, search.Selection{Category: "Generales", Command: "down"}, opts.Home)
	assert.True(t, opts.Selection.IsZero())
	assert.Equal(t, 500*time.Millisecond, opts.CopyFeedback)
	assert.Equal(t, 40, opts.SidebarWidth)

	// OSC 52 may only reach the terminal through stderr; stdout is the renderer's.
	require.Len(t, client.copierOut, 1)
	if w := client.copierOut[0]; w != nil {
		assert.Same(t, os.Stderr, w)
	}
}

func TestModelOptionsCatalogError(t *testing.T) {
	setupConfig(t)
	client := newFakeClient()
	client.err = errCatalogUnavailable

	_, err := modelOptions(client, tuiFlags{})
	require.ErrorIs(t, err, errCatalogUnavailable)
}

func TestTUICommandBuildsModel(t *testing.T) {
	setupConfig(t)
	runner := &captureRunner{}

	_, _, err := executeCmd(t, NewTUICmd(newFakeClient(), runner.run),
		"--query", "fresh", "--category", "Database & Migrate", "--command", "migrate:fresh")
	require.NoError(t, err)
	require.NotNil(t, runner.model)

	assert.Equal(t, "fresh", runner.model.Query())
	assert.Equal(t, search.Selection{Category: "Database & Migrate", Command: "migrate:fresh"}, runner.model.Selection())
	cmd, ok := runner.model.ActiveCommand()
	require.True(t, ok)
	assert.Equal(t, "migrate:fresh", cmd.Name)
	assert.Equal(t, 1, runner.model.Filtered().CountAll())
}

func TestTUICommandDefaultsToHome(t *testing.T) {
	setupConfig(t)
	runner := &captureRunner{}

	_, _, err := executeCmd(t, NewTUICmd(newFakeClient(), runner.run))
	require.NoError(t, err)
	require.NotNil(t, runner.model)
	assert.Equal(t, search.Selection{Category: "Generales", Command: "about"}, runner.model.Selection())
}

func TestTUICommandRunnerError(t *testing.T) {
	setupConfig(t)
	boom := errors.New("no tty")
	runner := &captureRunner{err: boom}

	_, _, err := executeCmd(t, NewTUICmd(newFakeClient(), runner.run))
	require.ErrorIs(t, err, boom)
}

func TestNewTUICmdPanicsWithoutDependencies(t *testing.T) {
	assert.Panics(t, func() { NewTUICmd(nil, runProgram) })
	assert.Panics(t, func() { NewTUICmd(newFakeClient(), nil) })
}
