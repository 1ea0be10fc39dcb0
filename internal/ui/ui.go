// Package ui styles the CLI's human-facing output with lipgloss.
// Colors degrade to plain text when stdout is not a terminal.
package ui

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

// Palette
var (
	ColorAccent  = lipgloss.Color("#F4D03F")
	ColorSuccess = lipgloss.Color("#2ECC71")
	ColorError   = lipgloss.Color("#E74C3C")
	ColorMuted   = lipgloss.Color("#7F8C8D")
)

// Styles used across commands.
var Styles = struct {
	Header  lipgloss.Style
	Title   lipgloss.Style
	Muted   lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Summary lipgloss.Style
}{
	Header:  lipgloss.NewStyle().Bold(true).Foreground(ColorAccent),
	Title:   lipgloss.NewStyle().Bold(true),
	Muted:   lipgloss.NewStyle().Foreground(ColorMuted),
	Success: lipgloss.NewStyle().Foreground(ColorSuccess),
	Error:   lipgloss.NewStyle().Foreground(ColorError),
	Summary: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorMuted).
		Padding(0, 1),
}

// Icon is a status glyph.
type Icon string

const (
	IconPass Icon = "✓"
	IconFail Icon = "✗"
	IconSkip Icon = "○"
)

// Render returns the icon in its status color.
func (i Icon) Render() string {
	switch i {
	case IconPass:
		return Styles.Success.Render(string(i))
	case IconFail:
		return Styles.Error.Render(string(i))
	default:
		return Styles.Muted.Render(string(i))
	}
}

// DayHeader renders "Day N" with an optional title.
func DayHeader(day int, title string) string {
	h := Styles.Header.Render(fmt.Sprintf("Day %d", day))
	if title == "" {
		return h
	}

	return h + " " + Styles.Muted.Render(title)
}

// Check is one verified answer.
type Check struct {
	Day, Part int
	Got, Want int
}

// OK reports whether the answer matches.
func (c Check) OK() bool { return c.Got == c.Want }

// WriteChecks prints one row per check and a boxed summary, returning the
// number of mismatches.
func WriteChecks(w io.Writer, checks []Check) (int, error) {
	failed := 0
	for _, c := range checks {
		var line string
		if c.OK() {
			line = fmt.Sprintf("%s day %2d part %d  %d", IconPass.Render(), c.Day, c.Part, c.Got)
		} else {
			failed++
			line = fmt.Sprintf("%s day %2d part %d  got %d, want %d",
				IconFail.Render(), c.Day, c.Part, c.Got, c.Want)
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return failed, err
		}
	}

	summary := Styles.Success.Render(fmt.Sprintf("%d/%d correct", len(checks)-failed, len(checks)))
	if failed > 0 {
		summary = Styles.Error.Render(fmt.Sprintf("%d/%d correct", len(checks)-failed, len(checks)))
	}
	_, err := fmt.Fprintln(w, Styles.Summary.Render(summary))

	return failed, err
}
