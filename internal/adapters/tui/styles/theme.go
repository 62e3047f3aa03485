package styles

import (
	"github.com/charmbracelet/lipgloss"

	"pagesync/internal/domain"
)

var (
	// Colors
	Primary   = lipgloss.Color("#7C3AED") // Purple
	Secondary = lipgloss.Color("#10B981") // Green
	Muted     = lipgloss.Color("#6B7280") // Gray
	Error     = lipgloss.Color("#EF4444") // Red

	// Base styles
	App = lipgloss.NewStyle().
		Padding(1, 2)

	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Primary).
		MarginBottom(1)

	Spinner = lipgloss.NewStyle().
		Foreground(Primary)

	// Outcome styles
	OutcomeCreated = lipgloss.NewStyle().
			Foreground(Secondary).
			Bold(true)

	OutcomeSkipped = lipgloss.NewStyle().
			Foreground(Muted)

	OutcomeErrored = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Help styles
	HelpKey = lipgloss.NewStyle().
		Foreground(Primary).
		Bold(true)

	HelpDesc = lipgloss.NewStyle().
			Foreground(Muted)

	// Message styles
	ErrorMsg = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	// Muted text style (for using Muted color as a style)
	MutedText = lipgloss.NewStyle().
			Foreground(Muted)
)

// OutcomeStyle returns the style for an outcome kind
func OutcomeStyle(kind domain.OutcomeKind) lipgloss.Style {
	switch kind {
	case domain.OutcomeCreated:
		return OutcomeCreated
	case domain.OutcomeErrored:
		return OutcomeErrored
	default:
		return OutcomeSkipped
	}
}
