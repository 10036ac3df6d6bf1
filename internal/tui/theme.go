package tui

import "github.com/charmbracelet/lipgloss"

// Catppuccin Mocha, the subset the app uses.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorLavender lipgloss.Color = "#b4befe"
	colorPink     lipgloss.Color = "#f5c2e7"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorText     lipgloss.Color = "#cdd6f4"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

const (
	colorAccent  = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	nameStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay0)
	oweStyle      = lipgloss.NewStyle().Foreground(colorError)
	owedStyle     = lipgloss.NewStyle().Foreground(colorSuccess)
	labelStyle    = lipgloss.NewStyle().Foreground(colorText)
	statusStyle   = lipgloss.NewStyle().Foreground(colorWarning)
	rowStyle      = lipgloss.NewStyle().Padding(0, 1)
	selectedStyle = rowStyle.Background(colorSurface0)
	cursorStyle   = lipgloss.NewStyle().Foreground(colorFocus).Bold(true)
	paneStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	focusPane     = paneStyle.BorderForeground(colorFocus)

	buttonStyle      = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface1).Padding(0, 1)
	buttonFocusStyle = buttonStyle.Foreground(lipgloss.Color("#1e1e2e")).Background(colorAccent).Bold(true)
)
