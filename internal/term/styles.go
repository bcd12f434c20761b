package term

import "github.com/charmbracelet/lipgloss"

// Style definitions for the game chrome.
var (
	dimStyle = lipgloss.NewStyle().Faint(true)

	labelStyle = lipgloss.NewStyle().Bold(true)

	keyStyle = lipgloss.NewStyle().Bold(true)

	highScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("5"))

	totalPointsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("6"))

	availablePointsStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#00ff00"))

	correctStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50fa7b")).
			Bold(true)

	incorrectStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ff0033")).
			Bold(true)

	finalScoreStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#50fa7b")).
			Bold(true)

	finalRecordStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("5")).
				Bold(true)
)
