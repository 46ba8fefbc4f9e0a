package ui

import (
	"github.com/charmbracelet/lipgloss"

	"partscope/internal/config"
)

// Styles contains all the style definitions for the UI
type Styles struct {
	Prompt    lipgloss.Style
	Status    lipgloss.Style
	Message   lipgloss.Style
	Error     lipgloss.Style
	Primary   lipgloss.Style
	Dim       lipgloss.Style
	Highlight lipgloss.Style
	Separator lipgloss.Style
}

// NewStyles creates the style set; the highlight style comes from config
func NewStyles(hl config.HighlightConfig) *Styles {
	highlight := lipgloss.NewStyle().Foreground(lipgloss.Color(hl.Foreground))
	if hl.Bold {
		highlight = highlight.Bold(true)
	}

	return &Styles{
		Prompt: lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1).
			MarginRight(1),
		Status:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
		Message:   lipgloss.NewStyle().Faint(true).MarginTop(1),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("203")).MarginTop(1),
		Primary:   lipgloss.NewStyle().Bold(true),
		Dim:       lipgloss.NewStyle().Faint(true),
		Highlight: highlight,
		Separator: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
