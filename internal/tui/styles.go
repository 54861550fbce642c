package tui

import "github.com/charmbracelet/lipgloss"

var (
	phaseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(lipgloss.Color("#25A065")).
			Padding(0, 1)

	bannerStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("205")).
			Foreground(lipgloss.Color("205")).
			Bold(true).
			Padding(0, 1)

	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("51")) // Cyan
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	failedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("226"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("63")).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("51")).Padding(0, 1)
	borderColor = lipgloss.NewStyle().Foreground(lipgloss.Color("63"))

	keyStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("51"))
	leafStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)
