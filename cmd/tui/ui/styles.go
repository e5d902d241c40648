package ui

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	Primary   = lipgloss.Color("#2ECC71") // Money green
	Secondary = lipgloss.Color("#82E0AA") // Light green
	Accent    = lipgloss.Color("#F1C40F") // Gold
	Success   = lipgloss.Color("#00D9A5") // Bright teal
	Warning   = lipgloss.Color("#FFB84D") // Warm orange
	Error     = lipgloss.Color("#FF5A87") // Pink error
	Muted     = lipgloss.Color("#6B7B8C") // Muted blue-gray
	Text      = lipgloss.Color("#ECF0F1") // Near white
	BgDark    = lipgloss.Color("#0B1E13") // Deep green-black

	TitleStyle = lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true).
			Padding(0, 1)

	SubtitleStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Padding(0, 1)

	BoxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Primary).
			Padding(1, 2).
			MarginTop(1)

	SelectedItemStyle = lipgloss.NewStyle().
				Foreground(Accent).
				Bold(true).
				PaddingLeft(2)

	ItemStyle = lipgloss.NewStyle().
			Foreground(Text).
			PaddingLeft(2)

	InfoStyle = lipgloss.NewStyle().
			Foreground(Muted).
			Italic(true)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(Success).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(Error).
			Bold(true)

	InputStyle = lipgloss.NewStyle().
			Foreground(Text).
			Border(lipgloss.NormalBorder()).
			BorderForeground(Secondary).
			Padding(0, 1)

	FocusedInputStyle = lipgloss.NewStyle().
				Foreground(Text).
				Border(lipgloss.NormalBorder()).
				BorderForeground(Accent).
				Padding(0, 1)

	LabelStyle = lipgloss.NewStyle().
			Foreground(Secondary).
			Width(20)

	ValueStyle = lipgloss.NewStyle().
			Foreground(Text).
			Bold(true)
)

func centered(content string) string {
	return lipgloss.NewStyle().Width(80).Align(lipgloss.Center).Render(content)
}
