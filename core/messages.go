package core

import tea "github.com/charmbracelet/bubbletea"

// NavigateMsg is the only way a screen asks to leave. The model validates it
// against the navigator before swapping screens.
type NavigateMsg struct {
	To Route
}

func NavigateCmd(to Route) tea.Cmd {
	return func() tea.Msg { return NavigateMsg{To: to} }
}
