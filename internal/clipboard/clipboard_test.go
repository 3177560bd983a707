package clipboard

import (
	"bytes"
	"encoding/base64"
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOSC52CopierWritesSequence(t *testing.T) {
	var buf bytes.Buffer
	c := &OSC52Copier{Out: &buf}

	require.NoError(t, c.Copy("php artisan about"))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "\x1b]52;c;"), "got %q", out)
	assert.Contains(t, out, base64.StdEncoding.EncodeToString([]byte("php artisan about")))
}

func TestOSC52CopierTmuxPassthrough(t *testing.T) {
	var buf bytes.Buffer
	c := &OSC52Copier{Out: &buf, Tmux: true}

	require.NoError(t, c.Copy("x"))
	assert.True(t, strings.HasPrefix(buf.String(), "\x1bPtmux;"), "got %q", buf.String())
}

func TestOSC52CopierWithoutWriter(t *testing.T) {
	err := (&OSC52Copier{}).Copy("x")
	assert.ErrorIs(t, err, ErrUnavailable)
}

func TestNewOSC52CopierDetectsTmux(t *testing.T) {
	t.Setenv("TMUX", "/tmp/tmux-1000/default,1,0")
	assert.True(t, NewOSC52Copier(&bytes.Buffer{}).Tmux)

	t.Setenv("TMUX", "")
	assert.False(t, NewOSC52Copier(&bytes.Buffer{}).Tmux)
}

func TestFallbackCopier(t *testing.T) {
	failing := &MockCopier{Err: errors.New("boom")}
	ok := &MockCopier{}

	require.NoError(t, FallbackCopier{failing, ok}.Copy("hello"))
	assert.Equal(t, []string{"hello"}, ok.Copied())

	err := FallbackCopier{failing, failing}.Copy("hello")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "boom")

	assert.ErrorIs(t, FallbackCopier{}.Copy("hello"), ErrUnavailable)
}

func TestTerminalWriterRejectsNonTerminals(t *testing.T) {
	assert.Nil(t, TerminalWriter(&bytes.Buffer{}))
	assert.Nil(t, TerminalWriter(nil))
	assert.Nil(t, TerminalWriter((*os.File)(nil)))

	r, w, err := os.Pipe()
	require.NoError(t, err)
	defer r.Close()
	defer w.Close()
	assert.Nil(t, TerminalWriter(w))
}

func TestAutoWithoutTerminalWritesNothing(t *testing.T) {
	c := New(BackendOSC52, TerminalWriter(&bytes.Buffer{}))
	assert.ErrorIs(t, c.Copy("php artisan about"), ErrUnavailable)
}

func TestFallbackCopierStopsAtFirstSuccess(t *testing.T) {
	first, second := &MockCopier{}, &MockCopier{}

	require.NoError(t, FallbackCopier{first, second}.Copy("a"))
	assert.Equal(t, []string{"a"}, first.Copied())
	assert.Empty(t, second.Copied())
}

func TestNopCopier(t *testing.T) {
	assert.ErrorIs(t, NopCopier{}.Copy("x"), ErrUnavailable)
}

func TestNew(t *testing.T) {
	var buf bytes.Buffer
	tests := []struct {
		backend string
		check   func(t *testing.T, c Copier)
	}{
		{BackendSystem, func(t *testing.T, c Copier) { assert.IsType(t, SystemCopier{}, c) }},
		{BackendOSC52, func(t *testing.T, c Copier) { assert.IsType(t, &OSC52Copier{}, c) }},
		{"OSC52", func(t *testing.T, c Copier) { assert.IsType(t, &OSC52Copier{}, c) }},
		{BackendNone, func(t *testing.T, c Copier) { assert.IsType(t, NopCopier{}, c) }},
		{BackendAuto, func(t *testing.T, c Copier) { assert.IsType(t, FallbackCopier{}, c) }},
		{"bogus", func(t *testing.T, c Copier) { assert.IsType(t, FallbackCopier{}, c) }},
	}

	for _, tt := range tests {
		t.Run(tt.backend, func(t *testing.T) {
			tt.check(t, New(tt.backend, &buf))
		})
	}
}

func TestMockCopier(t *testing.T) {
	m := &MockCopier{}
	assert.Equal(t, "", m.Last())

	require.NoError(t, m.Copy("a"))
	require.NoError(t, m.Copy("b"))
	assert.Equal(t, "b", m.Last())
	assert.Equal(t, []string{"a", "b"}, m.Copied())

	m.Err = errors.New("denied")
	assert.EqualError(t, m.Copy("c"), "denied")
	assert.Equal(t, []string{"a", "b"}, m.Copied())
}
