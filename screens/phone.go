package screens

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/onigo/core"
	"github.com/jask/onigo/core/input"
	"github.com/jask/onigo/widgets"
)

// PhoneScreen collects a phone number. Only digits are kept and the submit
// action is offered once exactly PhoneLength digits are present.
type PhoneScreen struct {
	opts  Options
	def   input.Field
	field textinput.Model
	phone string
	sent  bool
}

func NewPhoneScreen(opts Options) *PhoneScreen {
	opts = opts.normalized()
	def := input.PhoneField()
	return &PhoneScreen{
		opts:  opts,
		def:   def,
		field: newField(def, 0, opts.CursorBlink),
	}
}

func (s *PhoneScreen) Init() tea.Cmd     { return initField(s.opts.CursorBlink) }
func (s *PhoneScreen) Route() core.Route { return core.RoutePhoneNumber }
func (s *PhoneScreen) Title() string     { return "Enter your phone number" }

func (s *PhoneScreen) Scope() string {
	if s.Valid() {
		return core.ScopePhoneReady
	}
	return core.ScopePhone
}

// SetInput replaces the number with the digits of raw.
func (s *PhoneScreen) SetInput(raw string) {
	s.phone = s.def.Apply(raw)
	if s.field.Value() != s.phone {
		s.field.SetValue(s.phone)
	}
}

func (s *PhoneScreen) Value() string { return s.phone }

func (s *PhoneScreen) Valid() bool {
	return input.Complete(s.phone, s.opts.PhoneLength)
}

// Submit asks to move to the code screen. It is a no-op while invalid and
// after the first accepted submit.
func (s *PhoneScreen) Submit() tea.Cmd {
	if s.sent || !s.def.SubmitOnEnter || !s.Valid() {
		return nil
	}
	s.sent = true
	return core.NavigateCmd(core.RouteCode)
}

func (s *PhoneScreen) Update(msg tea.Msg) (core.Screen, tea.Cmd) {
	var cmd tea.Cmd
	s.field, cmd = s.field.Update(msg)
	s.SetInput(s.field.Value())
	return s, cmd
}

func (s *PhoneScreen) View(width, height int) string {
	st := s.opts.Styles
	hint := fmt.Sprintf("%d/%d digits", len(s.phone), s.opts.PhoneLength)
	body := widgets.VStack{
		Spacing: 1,
		Widgets: []widgets.Widget{
			renderField(s.opts, s.def, s.field, hint),
			widgets.Button{
				Label:         "Submit",
				Enabled:       s.Valid(),
				Style:         st.Button,
				DisabledStyle: st.ButtonDisabled,
			},
		},
	}
	return widgets.Center{Child: body}.Render(width, height)
}
