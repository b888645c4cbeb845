package tui

import "github.com/charmbracelet/lipgloss"

// ---------------------------------------------------------------------------
// Catppuccin Mocha palette, true-color hex values
// https://catppuccin.com/palette
// ---------------------------------------------------------------------------

const (
	colorPink     lipgloss.Color = "#f5c2e7"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorLavender lipgloss.Color = "#b4befe"

	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay1 lipgloss.Color = "#7f849c"
	colorSurface1 lipgloss.Color = "#45475a"
	colorSurface0 lipgloss.Color = "#313244"
)

// ---------------------------------------------------------------------------
// Semantic color aliases
// ---------------------------------------------------------------------------

const (
	colorBrand   = colorPink
	colorFocus   = colorLavender
	colorSuccess = colorGreen
	colorError   = colorRed
	colorWarning = colorYellow
	colorInfo    = colorTeal
	colorDerived = colorPeach
	colorEditing = colorMauve
)

var (
	titleStyle     = lipgloss.NewStyle().Bold(true).Foreground(colorBrand)
	labelStyle     = lipgloss.NewStyle().Foreground(colorSubtext0).Width(13)
	focusLabel     = lipgloss.NewStyle().Foreground(colorFocus).Bold(true).Width(13)
	derivedStyle   = lipgloss.NewStyle().Foreground(colorDerived)
	panelStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorSurface1).Padding(0, 1)
	editPanelStyle = panelStyle.BorderForeground(colorEditing)
	headerStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorText)
	rowStyle       = lipgloss.NewStyle().Foreground(colorText)
	cursorRowStyle = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface0)
	editRowStyle   = lipgloss.NewStyle().Foreground(colorEditing)
	mutedStyle     = lipgloss.NewStyle().Foreground(colorOverlay1)
	footerStyle    = lipgloss.NewStyle().Foreground(colorSubtext0)
)

// statusStyle colors the status line by severity.
func statusStyle(level statusLevel) lipgloss.Style {
	switch level {
	case statusSuccess:
		return lipgloss.NewStyle().Foreground(colorSuccess)
	case statusWarning:
		return lipgloss.NewStyle().Foreground(colorWarning)
	case statusError:
		return lipgloss.NewStyle().Foreground(colorError)
	}
	return lipgloss.NewStyle().Foreground(colorInfo)
}
