package cliutil

import (
	"io"
	"os"

	"github.com/logrusorgru/aurora/v3"
	"golang.org/x/term"
)

// ColorMode selects when diagnostics are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// ParseColorMode validates a --color flag value.
func ParseColorMode(s string) (ColorMode, bool) {
	switch m := ColorMode(s); m {
	case ColorAuto, ColorAlways, ColorNever:
		return m, true
	}
	return "", false
}

// IsTerminal reports whether w is a file attached to a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// Styler colors diagnostic text. With colors disabled every method returns
// its argument unchanged.
type Styler struct {
	au aurora.Aurora
}

// NewStyler resolves mode against w. ColorAuto colors only terminals and
// honors NO_COLOR.
func NewStyler(w io.Writer, mode ColorMode) *Styler {
	colors := false
	switch mode {
	case ColorAlways:
		colors = true
	case ColorAuto:
		_, noColor := os.LookupEnv("NO_COLOR")
		colors = !noColor && IsTerminal(w)
	}
	return &Styler{au: aurora.NewAurora(colors)}
}

// OK renders a success marker.
func (s *Styler) OK(text string) string { return s.au.Green(text).String() }

// Fail renders a failure marker.
func (s *Styler) Fail(text string) string { return s.au.Bold(s.au.Red(text)).String() }

// Warn renders a warning.
func (s *Styler) Warn(text string) string { return s.au.Yellow(text).String() }

// Label renders a field label in a summary listing.
func (s *Styler) Label(text string) string { return s.au.Bold(text).String() }

// Faint renders secondary detail.
func (s *Styler) Faint(text string) string { return s.au.Faint(text).String() }
