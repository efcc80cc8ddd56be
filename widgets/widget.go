package widgets

import "github.com/charmbracelet/lipgloss"

type Widget interface {
	Render(width, height int) string
}

// Text renders a fixed string with an optional style.
type Text struct {
	Content string
	Style   lipgloss.Style
}

func (t Text) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	return t.Style.MaxWidth(width).Render(t.Content)
}
