package screens

import (
	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/onigo/core/input"
	"github.com/jask/onigo/widgets"
)

const fieldWidth = 28

// newField realises an input.Field as a focused bubbles text input.
func newField(def input.Field, limit int, blink bool) textinput.Model {
	inp := textinput.New()
	inp.Prompt = ""
	inp.Placeholder = def.Placeholder
	inp.CharLimit = limit
	inp.Width = fieldWidth - 3
	if def.Mask {
		inp.EchoMode = textinput.EchoPassword
		inp.EchoCharacter = '•'
	}
	if !blink {
		inp.Cursor.SetMode(cursor.CursorStatic)
	}
	inp.Focus()
	return inp
}

func initField(blink bool) tea.Cmd {
	if !blink {
		return nil
	}
	return textinput.Blink
}

func renderField(opts Options, def input.Field, inp textinput.Model, hint string) widgets.Field {
	st := opts.Styles
	return widgets.Field{
		Label:        def.Label,
		Input:        inp.View(),
		Hint:         hint,
		Width:        fieldWidth,
		Focused:      inp.Focused(),
		LabelStyle:   st.Label,
		Style:        st.Field,
		FocusedStyle: st.FieldFocused,
		HintStyle:    st.Hint,
	}
}
