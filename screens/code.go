package screens

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/onigo/core"
	"github.com/jask/onigo/core/input"
	"github.com/jask/onigo/widgets"
)

// CodeScreen collects the SMS code and moves on by itself once CodeLength
// characters are entered. The move is requested at most once.
type CodeScreen struct {
	opts  Options
	def   input.Field
	field textinput.Model
	code  string
	done  bool
}

func NewCodeScreen(opts Options) *CodeScreen {
	opts = opts.normalized()
	def := input.CodeField()
	return &CodeScreen{
		opts:  opts,
		def:   def,
		field: newField(def, opts.CodeLength, opts.CursorBlink),
	}
}

func (s *CodeScreen) Init() tea.Cmd     { return initField(s.opts.CursorBlink) }
func (s *CodeScreen) Route() core.Route { return core.RouteCode }
func (s *CodeScreen) Scope() string     { return core.ScopeCode }
func (s *CodeScreen) Title() string     { return "Enter the code we sent you" }

func (s *CodeScreen) Value() string  { return s.code }
func (s *CodeScreen) Complete() bool { return s.done }

// SetInput stores raw and returns the navigation command the first time the
// code reaches full length.
func (s *CodeScreen) SetInput(raw string) tea.Cmd {
	s.code = s.def.Apply(raw)
	if s.field.Value() != s.code {
		s.field.SetValue(s.code)
	}
	if s.done || !input.Complete(s.code, s.opts.CodeLength) {
		return nil
	}
	s.done = true
	return core.NavigateCmd(core.RouteSuccess)
}

func (s *CodeScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	return s, tea.Batch(cmd, s.SetInput(s.field.Value()))
}

func (s *CodeScreen) View(width, height int) string {
	return widgets.Center{Child: renderField(s.opts, s.def, s.field, "")}.Render(width, height)
}
