package widgets

import "github.com/charmbracelet/lipgloss"

// Button renders a label in one of two styles. A disabled button looks inert;
// whether the action runs is decided by the caller.
type Button struct {
	Label         string
	Enabled       bool
	Style         lipgloss.Style
	DisabledStyle lipgloss.Style
}

func (b Button) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	style := b.DisabledStyle
	if b.Enabled {
		style = b.Style
	}
	return style.MaxWidth(width).Render(b.Label)
}
