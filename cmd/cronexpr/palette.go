package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"
)

// palette colorizes the verdicts of the text report.
type palette struct {
	valid   lipgloss.Style
	invalid lipgloss.Style
}

// newPalette resolves the --color mode against w. In auto mode colors are
// used only when w is a terminal.
func newPalette(mode string, w io.Writer) (*palette, error) {
	var color bool
	switch mode {
	case "always":
		color = true
	case "never":
	case "auto":
		f, ok := w.(*os.File)
		color = ok && term.IsTerminal(int(f.Fd()))
	default:
		return nil, fmt.Errorf("unknown color mode %q", mode)
	}

	// The profile is set explicitly, lipgloss would otherwise detect it
	// from the environment.
	profile := termenv.Ascii
	if color {
		profile = termenv.ANSI
	}
	renderer := lipgloss.NewRenderer(w, termenv.WithProfile(profile))
	renderer.SetColorProfile(profile)

	return &palette{
		valid:   renderer.NewStyle().Foreground(lipgloss.Color("2")),
		invalid: renderer.NewStyle().Foreground(lipgloss.Color("1")).Bold(true),
	}, nil
}
