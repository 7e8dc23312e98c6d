package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + borders.
// Backdrop only contributes its foreground, used for the shade behind a modal.
// All UI helpers pull from `current`.
type Theme struct {
	Title, Muted, Accent, Success, Error lipgloss.Style
	Highlight, Selected, Backdrop        lipgloss.Style
	Border                               lipgloss.Border
	BorderColor                          lipgloss.TerminalColor

	SymOK, SymFail, SymCursor string

	// Gradient turns on per-row title colors.
	Gradient bool
}

var current = classic()

func SetTheme(name string) {
	switch strings.ToLower(name) {
	case "neon":
		current = Theme{
			Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
			Muted:       lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
			Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
			Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("48")),
			Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true),
			Highlight:   lipgloss.NewStyle().Background(lipgloss.Color("54")),
			Selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("213")),
			Backdrop:    lipgloss.NewStyle().Foreground(lipgloss.Color("54")),
			Border:      lipgloss.RoundedBorder(),
			BorderColor: lipgloss.Color("99"),
			SymOK:       "✔", SymFail: "✖", SymCursor: "❯",
			Gradient:    true,
		}
	case "mono":
		plain := lipgloss.NewStyle()
		current = Theme{
			Title: plain.Bold(true), Muted: plain, Accent: plain,
			Success: plain, Error: plain, Highlight: plain.Reverse(true),
			Selected: plain.Bold(true), Backdrop: plain,
			Border:      lipgloss.NormalBorder(),
			BorderColor: lipgloss.NoColor{},
			SymOK:       "+", SymFail: "x", SymCursor: ">",
		}
	default:
		current = classic()
	}
}

func classic() Theme {
	return Theme{
		Title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#c026d3")),
		Muted:       lipgloss.NewStyle().Faint(true),
		Accent:      lipgloss.NewStyle().Foreground(lipgloss.Color("12")),
		Success:     lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		Error:       lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
		Highlight:   lipgloss.NewStyle().Background(lipgloss.Color("#f3e8ff")).Foreground(lipgloss.Color("#3b0764")),
		Selected:    lipgloss.NewStyle().Bold(true).Reverse(true),
		Backdrop:    lipgloss.NewStyle().Foreground(lipgloss.Color("236")),
		Border:      lipgloss.RoundedBorder(),
		BorderColor: lipgloss.Color("8"),
		SymOK:       "✔", SymFail: "✖", SymCursor: ">",
		Gradient:    true,
	}
}

// Expose what renderers need
func Current() Theme { return current }
