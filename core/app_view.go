package core

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

func (m Model) View() string {
	if m.quitting {
		return "Goodbye\n"
	}
	header := renderHeader(m)
	status := RenderStatusBar(m)
	footer := RenderFooter(m)
	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(status) - lipgloss.Height(footer)
	if bodyHeight < 0 {
		bodyHeight = 0
	}
	var body string
	if m.screen != nil && bodyHeight > 0 {
		body = m.screen.View(max(1, m.width), bodyHeight)
	}
	body = fitHeight(body, bodyHeight)
	view := strings.Join([]string{header, status, body, footer}, "\n")
	view = fitHeight(view, max(1, m.height))
	return m.styles.App.Width(max(1, m.width)).MaxWidth(max(1, m.width)).Render(view)
}

func renderHeader(m Model) string {
	st := m.styles
	current := m.nav.Current()
	crumbs := make([]string, 0, len(Routes()))
	for _, r := range Routes() {
		if r == current {
			crumbs = append(crumbs, st.CrumbActive.Render(r.Label()))
		} else {
			crumbs = append(crumbs, st.Crumb.Render(r.Label()))
		}
	}
	left := st.HeaderApp.Render(" " + m.AppName)
	right := strings.Join(crumbs, st.CrumbSep.Render("›"))
	right = ansi.Truncate(right, max(1, m.width), "")
	leftW := ansi.StringWidth(left)
	rightW := ansi.StringWidth(right)
	gap := 1
	if leftW+rightW+1 < m.width {
		gap = m.width - leftW - rightW
	}
	line := left + st.HeaderBar.Render(strings.Repeat(" ", gap)) + right
	return renderBar(st.HeaderBar, max(1, m.width), line)
}

func fitHeight(s string, height int) string {
	if height <= 0 {
		return ""
	}
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	return strings.Join(lines, "\n")
}
