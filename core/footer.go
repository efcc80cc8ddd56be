package core

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// FooterHelp lists the key bindings usable in scope as bubbles help entries.
func FooterHelp(keys *KeyRegistry, scope string) []key.Help {
	bindings := keys.BindingsForScope(scope)
	out := make([]key.Help, 0, len(bindings))
	seen := map[string]bool{}
	for _, b := range bindings {
		if len(b.Keys) == 0 || seen[b.Action] {
			continue
		}
		seen[b.Action] = true
		kb := key.NewBinding(key.WithKeys(b.Keys...), key.WithHelp(b.Keys[0], b.Description))
		h := kb.Help()
		if h.Key == "" && h.Desc == "" {
			continue
		}
		out = append(out, h)
	}
	return out
}

func RenderFooter(m Model) string {
	st := m.styles
	space := st.Footer.Render(" ")
	sep := st.Footer.Render("  ")

	help := FooterHelp(m.keys, m.ActiveScope())
	parts := make([]string, 0, len(help))
	for _, h := range help {
		parts = append(parts, st.Key.Render(h.Key)+space+st.HelpDesc.Render(h.Desc))
	}
	line := strings.Join(parts, sep)
	if line == "" {
		line = st.HelpDesc.Render("No shortcuts")
	}
	return renderBar(st.Footer, max(1, m.width), line)
}

func RenderStatusBar(m Model) string {
	msg := strings.TrimSpace(m.status)
	if msg == "" {
		msg = "Ready"
	}
	if m.statusErr {
		return renderBar(m.styles.StatusErrBar, max(1, m.width), msg)
	}
	return renderBar(m.styles.StatusBar, max(1, m.width), msg)
}

func renderBar(style lipgloss.Style, width int, text string) string {
	line := strings.ReplaceAll(text, "\n", " ")
	line = ansi.Truncate(line, width, "")
	lineW := ansi.StringWidth(line)
	if lineW < width {
		line += style.Render(strings.Repeat(" ", width-lineW))
	}
	return style.
		Width(width).
		MaxWidth(width).
		Render(line)
}
