package core

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

type fakeScreen struct {
	route  Route
	scope  string
	hits   int
	submit tea.Cmd
	inits  int
}

func (s *fakeScreen) Init() tea.Cmd        { s.inits++; return nil }
func (s *fakeScreen) Route() Route         { return s.route }
func (s *fakeScreen) Scope() string        { return s.scope }
func (s *fakeScreen) Title() string        { return "fake " + string(s.route) }
func (s *fakeScreen) View(int, int) string { return "screen:" + string(s.route) }
func (s *fakeScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	if _, ok := msg.(tea.KeyMsg); ok {
		s.hits++
	}
	return s, nil
}
func (s *fakeScreen) Submit() tea.Cmd { return s.submit }

type fakeFactory struct {
	built []*fakeScreen
}

func (f *fakeFactory) build(r Route) Screen {
	s := &fakeScreen{route: r, scope: "screen:fake"}
	if r == RoutePhoneNumber {
		s.scope = ScopePhoneReady
		s.submit = NavigateCmd(RouteCode)
	}
	f.built = append(f.built, s)
	return s
}

func newTestModel(t *testing.T) (Model, *fakeFactory, *observer.ObservedLogs) {
	t.Helper()
	obs, logs := observer.New(zap.DebugLevel)
	f := &fakeFactory{}
	m := NewModel(NewNavigator(), NewKeyRegistry(DefaultKeyBindings()), f.build, zap.New(obs))
	return m, f, logs
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	out, ok := next.(Model)
	require.True(t, ok, "unexpected model type %T", next)
	return out, cmd
}

func TestModelStartsOnPhoneScreen(t *testing.T) {
	m, f, _ := newTestModel(t)
	require.Equal(t, RoutePhoneNumber, m.Route())
	require.Len(t, f.built, 1)
	require.Equal(t, RoutePhoneNumber, m.Screen().Route())
}

func TestModelForwardsKeysToScreen(t *testing.T) {
	m, f, _ := newTestModel(t)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'5'}})
	require.Equal(t, 1, f.built[0].hits)
}

func TestModelSubmitGoesThroughScreen(t *testing.T) {
	m, f, logs := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	require.Equal(t, 0, f.built[0].hits, "submit key should not reach the field")

	msg := cmd()
	require.Equal(t, NavigateMsg{To: RouteCode}, msg)
	m, _ = update(t, m, msg)
	require.Equal(t, RouteCode, m.Route())
	require.Len(t, f.built, 2)
	require.Equal(t, 1, f.built[1].inits)
	require.Equal(t, 1, logs.FilterMessage("navigate").Len())
}

func TestModelRejectsIllegalNavigation(t *testing.T) {
	m, f, logs := newTestModel(t)
	m, cmd := update(t, m, NavigateMsg{To: RouteSuccess})
	require.Nil(t, cmd)
	require.Equal(t, RoutePhoneNumber, m.Route())
	require.Len(t, f.built, 1, "screen must be kept on rejection")

	text, isErr := m.Status()
	require.True(t, isErr)
	require.Contains(t, text, ErrInvalidTransition.Error())

	entries := logs.FilterMessage("navigation rejected").All()
	require.Len(t, entries, 1)
	require.Equal(t, zap.WarnLevel, entries[0].Level)
}

func TestModelIgnoresRepeatedNavigation(t *testing.T) {
	m, f, _ := newTestModel(t)
	m, _ = update(t, m, NavigateMsg{To: RouteCode})
	m, _ = update(t, m, NavigateMsg{To: RouteSuccess})
	m, _ = update(t, m, NavigateMsg{To: RouteSuccess})
	require.Equal(t, RouteSuccess, m.Route())
	require.Len(t, f.built, 3)
}

func TestModelQuit(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.True(t, m.Quitting())
	require.NotNil(t, cmd)
	_, ok := cmd().(tea.QuitMsg)
	require.True(t, ok)
	require.Equal(t, "Goodbye\n", m.View())
}

func TestModelDropsNavigationToCurrentRoute(t *testing.T) {
	m, f, logs := newTestModel(t)
	m, _ = update(t, m, NavigateMsg{To: RouteCode})
	m, cmd := update(t, m, NavigateMsg{To: RouteCode})
	require.Nil(t, cmd)
	require.Equal(t, RouteCode, m.Route())
	require.Len(t, f.built, 2, "code screen must not be rebuilt")

	text, isErr := m.Status()
	require.False(t, isErr)
	require.Equal(t, "fake verificationCode", text)
	require.Zero(t, logs.FilterMessage("navigation rejected").Len())
	require.Equal(t, 1, logs.FilterMessage("navigation already applied").Len())
}

func TestModelViewFitsWindow(t *testing.T) {
	m, _, _ := newTestModel(t)
	m, _ = update(t, m, tea.WindowSizeMsg{Width: 60, Height: 12})
	view := m.View()
	require.Equal(t, 12, strings.Count(view, "\n")+1)
	require.Contains(t, view, "screen:phoneNumber")
	require.Contains(t, view, "OniGO")
	require.Contains(t, view, "submit")
}

func TestModelWithoutFactory(t *testing.T) {
	m := NewModel(nil, nil, nil, nil)
	require.Nil(t, m.Init())
	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	require.Nil(t, cmd)
	m, _ = update(t, m, NavigateMsg{To: RouteCode})
	require.Equal(t, RouteCode, m.Route())
	require.Nil(t, m.Screen())
}
