package ui

import "github.com/charmbracelet/lipgloss"

var (
	// TitleStyle ANSI 6 (Cyan) for cobra help section titles
	TitleStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6")).Bold(true).MarginBottom(1)

	// UsageStyle ANSI 2 (Green) for usage lines
	UsageStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("2"))

	// DescStyle ANSI 8 (Bright Black / Gray) keeps descriptions quieter than names
	DescStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))

	// FlagStyle ANSI 3 (Yellow) for flags
	FlagStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// KeyStyle ANSI 3 (Yellow) for the key column of console tables
	KeyStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))

	// BannerStyle ANSI 4 (Blue) for the startup banner
	BannerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("4"))
)
