package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// renderPopup composites a bordered dialog over the centre of the base
// view. The base stays visible around the dialog edges.
func renderPopup(base, popup string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	card := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Render(popup)

	cardLines := strings.Split(card, "\n")
	cardW := lipgloss.Width(card)
	if cardW > width {
		cardW = width
	}
	top := (height - len(cardLines)) / 2
	if top < 0 {
		top = 0
	}
	left := (width - cardW) / 2
	if left < 0 {
		left = 0
	}

	baseLines := strings.Split(base, "\n")
	out := make([]string, height)
	for row := 0; row < height; row++ {
		var bg string
		if row < len(baseLines) {
			bg = baseLines[row]
		}
		bg = padToWidth(bg, width)
		ci := row - top
		if ci < 0 || ci >= len(cardLines) {
			out[row] = bg
			continue
		}
		seg := ansi.Truncate(cardLines[ci], cardW, "")
		prefix := ansi.Truncate(bg, left, "")
		suffix := cutLeft(bg, left+cardW)
		out[row] = padToWidth(prefix+padToWidth(seg, cardW)+suffix, width)
	}
	return strings.Join(out, "\n")
}

// cutLeft drops the first cols display columns of s.
func cutLeft(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	kept := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, kept)
}

func padToWidth(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}
