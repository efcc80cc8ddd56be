package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Catppuccin Mocha base colors; the accent is the OniGO orange unless configured.
const (
	colorText     lipgloss.Color = "#cdd6f4"
	colorSubtext0 lipgloss.Color = "#a6adc8"
	colorOverlay0 lipgloss.Color = "#6c7086"
	colorSurface2 lipgloss.Color = "#585b70"
	colorSurface0 lipgloss.Color = "#313244"
	colorMantle   lipgloss.Color = "#181825"
	colorCrust    lipgloss.Color = "#11111b"
	colorGreen    lipgloss.Color = "#a6e3a1"
	colorRed      lipgloss.Color = "#f38ba8"

	DefaultAccent lipgloss.Color = "#EB6419"
)

type Theme struct {
	Accent   lipgloss.Color
	Text     lipgloss.Color
	Muted    lipgloss.Color
	Border   lipgloss.Color
	Surface  lipgloss.Color
	Mantle   lipgloss.Color
	Ink      lipgloss.Color
	Disabled lipgloss.Color
	Success  lipgloss.Color
	Error    lipgloss.Color
}

func DefaultTheme() Theme {
	return Theme{
		Accent:   DefaultAccent,
		Text:     colorText,
		Muted:    colorSubtext0,
		Border:   colorSurface2,
		Surface:  colorSurface0,
		Mantle:   colorMantle,
		Ink:      colorCrust,
		Disabled: colorOverlay0,
		Success:  colorGreen,
		Error:    colorRed,
	}
}

// WithAccent swaps the accent for a "#rrggbb" (or "#rgb") value; anything else is ignored.
func (t Theme) WithAccent(hex string) Theme {
	hex = strings.TrimSpace(hex)
	if !validHex(hex) {
		return t
	}
	t.Accent = lipgloss.Color(hex)
	return t
}

func validHex(s string) bool {
	if len(s) != 4 && len(s) != 7 {
		return false
	}
	if s[0] != '#' {
		return false
	}
	for _, r := range s[1:] {
		switch {
		case r >= '0' && r <= '9', r >= 'a' && r <= 'f', r >= 'A' && r <= 'F':
		default:
			return false
		}
	}
	return true
}
