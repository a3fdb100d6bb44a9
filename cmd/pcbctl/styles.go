package main

import (
	"time"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var (
	// Color palette
	primaryColor = lipgloss.Color("#7D56F4")
	successColor = lipgloss.Color("#04B575")
	warningColor = lipgloss.Color("#FFA500")
	mutedColor   = lipgloss.Color("#666666")

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	labelStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	verdictStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(successColor)

	tieStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(warningColor)
)

// numbers formats integers with thousands separators.
var numbers = message.NewPrinter(language.English)

// render applies style unless colors are disabled.
func render(style lipgloss.Style, s string) string {
	if noColor {
		return s
	}
	return style.Render(s)
}

// formatNumber renders n with thousands separators.
func formatNumber(n int64) string {
	return numbers.Sprintf("%d", n)
}

// formatNanos renders d as a whole number of nanoseconds.
func formatNanos(d time.Duration) string {
	return formatNumber(d.Nanoseconds()) + " ns"
}
