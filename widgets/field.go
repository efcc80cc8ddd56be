package widgets

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Field draws the chrome around an already rendered text input.
type Field struct {
	Label        string
	Input        string
	Hint         string
	Width        int
	Focused      bool
	LabelStyle   lipgloss.Style
	Style        lipgloss.Style
	FocusedStyle lipgloss.Style
	HintStyle    lipgloss.Style
}

func (f Field) Render(width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	w := f.Width
	if w <= 0 || w > width {
		w = width
	}
	box := f.Style
	if f.Focused {
		box = f.FocusedStyle
	}
	lines := []string{
		f.LabelStyle.Render(padRight(f.Label, w)),
		box.Width(w).Render(f.Input),
	}
	if strings.TrimSpace(f.Hint) != "" {
		lines = append(lines, f.HintStyle.Render(padRight(f.Hint, w)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
