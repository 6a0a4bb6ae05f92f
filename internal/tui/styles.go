package tui

import "github.com/charmbracelet/lipgloss"

var (
	primary = lipgloss.Color("#9b59b6")
	muted   = lipgloss.Color("8")

	titleStyle       = lipgloss.NewStyle().Bold(true).Foreground(primary)
	boxStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(primary).Padding(0, 1)
	statusStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	promptStyle      = lipgloss.NewStyle().Bold(true).Foreground(primary)
	mutedStyle       = lipgloss.NewStyle().Foreground(muted)
	noticeStyle      = lipgloss.NewStyle().Border(lipgloss.DoubleBorder()).BorderForeground(primary).Padding(1, 3)
	noticeTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(primary)
	errorTitleStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
)
