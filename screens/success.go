package screens

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/onigo/core"
	"github.com/jask/onigo/widgets"
)

type SuccessScreen struct {
	opts Options
}

func NewSuccessScreen(opts Options) *SuccessScreen {
	return &SuccessScreen{opts: opts.normalized()}
}

func (s *SuccessScreen) Init() tea.Cmd                         { return nil }
func (s *SuccessScreen) Route() core.Route                     { return core.RouteSuccess }
func (s *SuccessScreen) Scope() string                         { return core.ScopeSuccess }
func (s *SuccessScreen) Title() string                         { return "Verified" }
func (s *SuccessScreen) Update(tea.Msg) (core.Screen, tea.Cmd) { return s, nil }

func (s *SuccessScreen) View(width, height int) string {
	st := s.opts.Styles
	return widgets.Center{
		Child:      widgets.Text{Content: s.opts.Welcome, Style: st.Banner},
		Background: st.Theme.Accent,
	}.Render(width, height)
}
