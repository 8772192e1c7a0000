package ui

import "github.com/charmbracelet/lipgloss"

// Banner renders title and subtitle in a rounded box bordered with the
// active theme's accent color.
func Banner(title, subtitle string) string {
	t := GetCurrentTheme()
	titleStyle := lipgloss.NewStyle().Bold(t.Name != NoColorTheme.Name)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Accent).
		Padding(0, 2)

	body := titleStyle.Render(title)
	if subtitle != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body, subtitle)
	}
	return box.Render(body)
}
