package tui

import (
	"github.com/charmbracelet/lipgloss"

	"biodex/internal/species"
)

// Catppuccin Mocha palette, true-color hex values.
const (
	colorRed      lipgloss.Color = "#f38ba8"
	colorPeach    lipgloss.Color = "#fab387"
	colorYellow   lipgloss.Color = "#f9e2af"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorTeal     lipgloss.Color = "#94e2d5"
	colorSky      lipgloss.Color = "#89dceb"
	colorBlue     lipgloss.Color = "#89b4fa"
	colorMauve    lipgloss.Color = "#cba6f7"
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext  lipgloss.Color = "#a6adc8"
	colorOverlay  lipgloss.Color = "#7f849c"
	colorSurface  lipgloss.Color = "#313244"
)

var (
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorGreen)
	headerStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorSubtext)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorText).Background(colorSurface)
	dimStyle      = lipgloss.NewStyle().Foreground(colorOverlay)
	labelStyle    = lipgloss.NewStyle().Bold(true).Foreground(colorBlue)
	statusStyle   = lipgloss.NewStyle().Foreground(colorTeal)
	errorStyle    = lipgloss.NewStyle().Foreground(colorRed)
	fieldErrStyle = lipgloss.NewStyle().Foreground(colorRed).Italic(true)
	helpStyle     = lipgloss.NewStyle().Foreground(colorOverlay)
)

var kingdomColors = map[species.Kingdom]lipgloss.Color{
	species.KingdomAnimalia: colorPeach,
	species.KingdomPlantae:  colorGreen,
	species.KingdomFungi:    colorRed,
	species.KingdomProtista: colorSky,
	species.KingdomArchaea:  colorYellow,
	species.KingdomBacteria: colorMauve,
}

func kingdomStyle(k species.Kingdom) lipgloss.Style {
	c, ok := kingdomColors[k]
	if !ok {
		c = colorText
	}
	return lipgloss.NewStyle().Foreground(c)
}
