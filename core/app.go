package core

import (
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
)

// Screen is one step of the flow. A screen owns its input state for as long as
// it is active; the model builds a new one on every navigation.
type Screen interface {
	Init() tea.Cmd
	Update(msg tea.Msg) (Screen, tea.Cmd)
	View(width, height int) string
	Route() Route
	Scope() string
	Title() string
}

// Submitter is implemented by screens with a gated forward action.
type Submitter interface {
	Submit() tea.Cmd
}

type ScreenFactory func(Route) Screen

type Model struct {
	width     int
	height    int
	nav       *Navigator
	screen    Screen
	factory   ScreenFactory
	keys      *KeyRegistry
	styles    Styles
	status    string
	statusErr bool
	quitting  bool
	log       *zap.Logger

	AppName string
}

func NewModel(nav *Navigator, keys *KeyRegistry, factory ScreenFactory, log *zap.Logger) Model {
	if nav == nil {
		nav = NewNavigator()
	}
	if log == nil {
		log = zap.NewNop()
	}
	m := Model{
		nav:     nav,
		keys:    keys,
		factory: factory,
		styles:  NewStyles(DefaultTheme()),
		log:     log,
		status:  "Ready",
		width:   80,
		height:  24,
		AppName: "OniGO",
	}
	if factory != nil {
		m.screen = factory(nav.Current())
	}
	return m
}

func (m Model) Init() tea.Cmd {
	if m.screen == nil {
		return nil
	}
	return m.screen.Init()
}

func (m *Model) SetStyles(s Styles) {
	m.styles = s
}

func (m *Model) SetStatus(msg string) {
	m.status = msg
	m.statusErr = false
}

func (m *Model) SetError(err error) {
	if err == nil {
		m.status = ""
		m.statusErr = false
		return
	}
	m.status = err.Error()
	m.statusErr = true
}

func (m Model) ActiveScope() string {
	if m.screen != nil {
		return m.screen.Scope()
	}
	return "app"
}

func (m Model) Screen() Screen {
	return m.screen
}

func (m Model) Route() Route {
	return m.nav.Current()
}

func (m Model) Quitting() bool {
	return m.quitting
}

func (m Model) Status() (string, bool) {
	return m.status, m.statusErr
}
