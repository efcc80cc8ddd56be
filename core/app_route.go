package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case NavigateMsg:
		return m.navigate(msg.To)
	case tea.KeyMsg:
		scope := m.ActiveScope()
		if m.keys.IsAction(msg, ActionQuit, scope) {
			m.log.Info("quit", zap.String("route", string(m.nav.Current())))
			m.quitting = true
			return m, tea.Quit
		}
		if m.keys.IsAction(msg, ActionSubmit, scope) {
			if s, ok := m.screen.(Submitter); ok {
				return m, s.Submit()
			}
		}
	}

	if m.screen == nil {
		return m, nil
	}
	next, cmd := m.screen.Update(msg)
	if next != nil {
		m.screen = next
	}
	return m, cmd
}

// navigate applies a screen's request to move on. Rejected requests keep the
// current screen and surface the error in the status bar.
func (m Model) navigate(to Route) (tea.Model, tea.Cmd) {
	from := m.nav.Current()
	if to == from {
		// a late duplicate of the request that brought us here
		m.log.Debug("navigation already applied", zap.String("route", string(to)))
		return m, nil
	}
	if err := m.nav.GoTo(to); err != nil {
		m.log.Warn("navigation rejected",
			zap.String("from", string(from)),
			zap.String("to", string(to)),
			zap.Error(err),
		)
		m.SetError(err)
		return m, nil
	}
	m.log.Info("navigate", zap.String("from", string(from)), zap.String("to", string(to)))
	if m.factory == nil {
		m.screen = nil
		return m, nil
	}
	m.screen = m.factory(to)
	if m.screen == nil {
		return m, nil
	}
	m.SetStatus(m.screen.Title())
	return m, m.screen.Init()
}
