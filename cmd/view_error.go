package cmd

import (
	"errors"

	"github.com/charmbracelet/lipgloss"
)

var styleErrorWrapper = lipgloss.NewStyle().Padding(0, 0).BorderStyle(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#E1244C"))
var styleErrorHeadingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#E1244C")).Bold(true)
var styleErrorBodyStyle = lipgloss.NewStyle().PaddingLeft(3).Foreground(lipgloss.Color("#E1244C")).Width(80).MaxWidth(80)
var styleErrorHintStyle = lipgloss.NewStyle().PaddingLeft(3).Width(80).MaxWidth(80)

// hintedError attaches a suggestion for the user to a command error.
type hintedError struct {
	err  error
	hint string
}

func (e *hintedError) Error() string {
	return e.err.Error()
}

func (e *hintedError) Unwrap() error {
	return e.err
}

func withHint(err error, hint string) error {
	if err == nil {
		return nil
	}
	return &hintedError{err: err, hint: hint}
}

func renderError(err error) string {
	lines := []string{
		styleErrorHeadingStyle.Render("sdprobe could not complete the command"),
		styleErrorBodyStyle.Render(err.Error()),
	}

	var hinted *hintedError
	if errors.As(err, &hinted) {
		lines = append(lines, "", styleErrorHintStyle.Render("hint: "+hinted.hint))
	}

	return styleErrorWrapper.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
