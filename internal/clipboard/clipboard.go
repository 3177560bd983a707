// Package clipboard copies example invocations to the user's clipboard.
//
// Copying is an injected capability: front ends depend on the Copier
// interface and never on a platform mechanism directly.
package clipboard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	osc52 "github.com/aymanbagabas/go-osc52/v2"
	"github.com/mattn/go-isatty"
)

// Backend names accepted by New.
const (
	BackendAuto   = "auto"
	BackendSystem = "system"
	BackendOSC52  = "osc52"
	BackendNone   = "none"
)

// ErrUnavailable is returned when no clipboard mechanism can be used.
var ErrUnavailable = errors.New("clipboard unavailable")

// Copier copies text to a clipboard.
type Copier interface {
	Copy(text string) error
}

// SystemCopier writes to the OS clipboard (pbcopy, xclip/xsel, wl-copy, clip).
type SystemCopier struct{}

// Copy writes text to the system clipboard.
func (SystemCopier) Copy(text string) error {
	if clipboard.Unsupported {
		return fmt.Errorf("system clipboard: %w", ErrUnavailable)
	}
	if err := clipboard.WriteAll(text); err != nil {
		return fmt.Errorf("system clipboard: %w", err)
	}
	return nil
}

// OSC52Copier asks the terminal to set its clipboard through an OSC 52
// escape sequence. It works over SSH and, with passthrough, inside tmux.
type OSC52Copier struct {
	Out  io.Writer
	Tmux bool
}

// NewOSC52Copier returns an OSC52Copier writing to out, detecting tmux from
// the environment.
func NewOSC52Copier(out io.Writer) *OSC52Copier {
	return &OSC52Copier{Out: out, Tmux: os.Getenv("TMUX") != ""}
}

// Copy writes the escape sequence for text.
func (c *OSC52Copier) Copy(text string) error {
	if c.Out == nil {
		return fmt.Errorf("osc52: %w", ErrUnavailable)
	}
	seq := osc52.New(text)
	if c.Tmux {
		seq = seq.Tmux()
	}
	if _, err := seq.WriteTo(c.Out); err != nil {
		return fmt.Errorf("osc52: %w", err)
	}
	return nil
}

// FallbackCopier tries each copier in order until one succeeds.
type FallbackCopier []Copier

// Copy returns nil on the first success, otherwise all errors joined.
func (f FallbackCopier) Copy(text string) error {
	if len(f) == 0 {
		return ErrUnavailable
	}
	var errs []error
	for _, c := range f {
		err := c.Copy(text)
		if err == nil {
			return nil
		}
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// NopCopier discards text and always fails with ErrUnavailable.
type NopCopier struct{}

// Copy reports the clipboard as disabled.
func (NopCopier) Copy(string) error {
	return fmt.Errorf("clipboard disabled: %w", ErrUnavailable)
}

// TerminalWriter returns w when it is a file attached to a terminal and nil
// otherwise, so OSC 52 sequences never end up in pipes or redirected output.
func TerminalWriter(w io.Writer) io.Writer {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return nil
	}
	if !isatty.IsTerminal(f.Fd()) && !isatty.IsCygwinTerminal(f.Fd()) {
		return nil
	}
	return f
}

// New builds the Copier for backend. OSC 52 sequences are written to out; a
// nil out disables them. Unknown backends fall back to auto.
func New(backend string, out io.Writer) Copier {
	switch strings.ToLower(backend) {
	case BackendSystem:
		return SystemCopier{}
	case BackendOSC52:
		return NewOSC52Copier(out)
	case BackendNone:
		return NopCopier{}
	default:
		return FallbackCopier{SystemCopier{}, NewOSC52Copier(out)}
	}
}
