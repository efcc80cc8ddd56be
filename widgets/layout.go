package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// VStack stacks children at their natural height, horizontally centered.
type VStack struct {
	Widgets []Widget
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Widgets) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	parts := make([]string, 0, len(v.Widgets)*2)
	for i, w := range v.Widgets {
		parts = append(parts, w.Render(width, height))
		if i < len(v.Widgets)-1 {
			for s := 0; s < v.Spacing; s++ {
				parts = append(parts, "")
			}
		}
	}
	return lipgloss.JoinVertical(lipgloss.Center, parts...)
}

// Center places its child in the middle of the available area.
type Center struct {
	Child      Widget
	Background lipgloss.TerminalColor
}

func (c Center) Render(width, height int) string {
	if c.Child == nil || width <= 0 || height <= 0 {
		return ""
	}
	inner := clip(c.Child.Render(width, height), width, height)
	opts := []lipgloss.WhitespaceOption{}
	if c.Background != nil {
		opts = append(opts, lipgloss.WithWhitespaceBackground(c.Background))
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, inner, opts...)
}

func clip(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for i, l := range lines {
		if ansi.StringWidth(l) > width {
			lines[i] = ansi.Truncate(l, width, "")
		}
	}
	return strings.Join(lines, "\n")
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
