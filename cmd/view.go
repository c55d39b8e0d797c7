package cmd

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/sensing-dev/sdprobe/internal/config"
)

var colorSuccess = lipgloss.Color("#00B785")

var styleGuarded = lipgloss.NewStyle().Foreground(colorSuccess).Bold(true)
var styleUnguarded = lipgloss.NewStyle().Foreground(lipgloss.Color("#e08dff")).Bold(true)
var styleHighlight = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)
var styleNotSet = lipgloss.NewStyle().Foreground(lipgloss.Color("#5D689C"))

var styleCommand = lipgloss.NewStyle().Foreground(lipgloss.Color("#407FF8")).Bold(true)
var styleCommandBlock = lipgloss.NewStyle().Margin(1, 0).PaddingLeft(2)
var styleParam = lipgloss.NewStyle().Foreground(lipgloss.Color("#00B785"))

var styleListItem = lipgloss.NewStyle().Padding(0, 2)
var styleNameColumn = lipgloss.NewStyle().Width(24)
var styleLeftColumn = lipgloss.NewStyle().Width(20)
var styleDetails = lipgloss.NewStyle().PaddingLeft(2)
var styleInfoBox = lipgloss.NewStyle().
	Padding(0, 1).
	Margin(1, 0).
	BorderStyle(lipgloss.RoundedBorder()).
	Width(80)

func probeLine(p *config.Probe) string {
	guard := styleGuarded.Render("guarded")
	if p.Unguarded {
		guard = styleUnguarded.Render("unguarded")
	}

	return lipgloss.JoinHorizontal(lipgloss.Left,
		styleNameColumn.Render(styleHighlight.Render(p.Name)),
		" (library=", styleHighlight.Render(string(p.Library())),
		"; ", guard,
		"; marker=", wrapNotSet(p.Marker), ")",
	)
}

func detailLine(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Left, styleLeftColumn.Render(label), value)
}

func wrapNotSet(s string) string {
	if s == "" {
		return styleNotSet.Render("<not set>")
	}

	return styleHighlight.Render(s)
}

// withDefault renders the value a probe runs with when the catalog leaves a
// setting empty.
func withDefault(s, defaultValue string) string {
	if s == "" {
		return styleNotSet.Render("<default: " + defaultValue + ">")
	}

	return styleHighlight.Render(s)
}
