package result

import "github.com/charmbracelet/lipgloss"

type styles struct {
	title   lipgloss.Style
	header  lipgloss.Style
	answer  lipgloss.Style
	detail  lipgloss.Style
	empty   lipgloss.Style
	section lipgloss.Style
	column  lipgloss.Style
	days    lipgloss.Style
}

func newStyles() styles {
	return styles{
		title:   lipgloss.NewStyle().Bold(true),
		header:  lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		answer:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		detail:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		empty:   lipgloss.NewStyle().Faint(true),
		section: lipgloss.NewStyle().MarginTop(1),
		column:  lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		days:    lipgloss.NewStyle().Foreground(lipgloss.Color("159")),
	}
}
