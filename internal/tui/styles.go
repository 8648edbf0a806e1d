package tui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	noticeStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#B0B0B0"))
	errorStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))

	coldStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#5AB6E8"))
	hotStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	neutralStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))

	favorableStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6BCB77")).Bold(true)
	unfavorableStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F")).Bold(true)
	evenStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
)
