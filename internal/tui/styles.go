package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha palette, trimmed to what the surfaces use.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorLavender lipgloss.Color = "#b4befe"
	colorText     lipgloss.Color = "#cdd6f4"
	colorMuted    lipgloss.Color = "#6c7086"
	colorSurface  lipgloss.Color = "#313244"
)

const (
	colorAccent  = colorTeal
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

var (
	titleStyle  = lipgloss.NewStyle().Foreground(colorAccent).Bold(true)
	mutedStyle  = lipgloss.NewStyle().Foreground(colorMuted)
	focusStyle  = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	okStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
	warnStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	dangerStyle = lipgloss.NewStyle().Foreground(colorError)
	amountStyle = lipgloss.NewStyle().Foreground(colorPeach).Bold(true)

	tabActiveStyle = lipgloss.NewStyle().Foreground(colorAccent).Bold(true).Underline(true)
	tabIdleStyle   = lipgloss.NewStyle().Foreground(colorMuted)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorSurface).
			Padding(0, 1)

	helpKeyStyle = lipgloss.NewStyle().Foreground(colorBlue).Bold(true)
)

// helpLine renders "[k] Desc" pairs the way the footer shows them.
func helpLine(pairs ...string) string {
	out := ""
	for i := 0; i+1 < len(pairs); i += 2 {
		if i > 0 {
			out += "  "
		}
		out += helpKeyStyle.Render("["+pairs[i]+"]") + " " + mutedStyle.Render(pairs[i+1])
	}
	return out
}
