package core

import "github.com/charmbracelet/lipgloss"

// Styles is the rendered form of a Theme, shared by the root model and screens.
type Styles struct {
	App         lipgloss.Style
	HeaderBar   lipgloss.Style
	HeaderApp   lipgloss.Style
	Crumb       lipgloss.Style
	CrumbActive lipgloss.Style
	CrumbSep    lipgloss.Style

	StatusBar    lipgloss.Style
	StatusErrBar lipgloss.Style
	Footer       lipgloss.Style
	Key          lipgloss.Style
	HelpDesc     lipgloss.Style

	Label          lipgloss.Style
	Field          lipgloss.Style
	FieldFocused   lipgloss.Style
	Hint           lipgloss.Style
	Button         lipgloss.Style
	ButtonDisabled lipgloss.Style
	Banner         lipgloss.Style

	Theme Theme
}

func NewStyles(t Theme) Styles {
	return Styles{
		App:       lipgloss.NewStyle().Foreground(t.Text),
		HeaderBar: lipgloss.NewStyle().Background(t.Mantle).Foreground(t.Text),
		HeaderApp: lipgloss.NewStyle().
			Foreground(t.Accent).
			Background(t.Mantle).
			Bold(true),
		Crumb: lipgloss.NewStyle().
			Foreground(t.Disabled).
			Background(t.Mantle).
			Padding(0, 1),
		CrumbActive: lipgloss.NewStyle().
			Foreground(t.Accent).
			Background(t.Surface).
			Bold(true).
			Padding(0, 1),
		CrumbSep: lipgloss.NewStyle().Foreground(t.Border).Background(t.Mantle),

		StatusBar: lipgloss.NewStyle().
			Foreground(t.Success).
			Background(t.Surface),
		StatusErrBar: lipgloss.NewStyle().
			Foreground(t.Error).
			Background(t.Surface),
		Footer:   lipgloss.NewStyle().Background(t.Mantle),
		Key:      lipgloss.NewStyle().Foreground(t.Accent).Bold(true).Background(t.Mantle),
		HelpDesc: lipgloss.NewStyle().Foreground(t.Muted).Background(t.Mantle),

		Label: lipgloss.NewStyle().Foreground(t.Muted),
		Field: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(t.Border).
			Padding(0, 1),
		FieldFocused: lipgloss.NewStyle().
			Border(lipgloss.NormalBorder(), false, false, true, false).
			BorderForeground(t.Accent).
			Padding(0, 1),
		Hint: lipgloss.NewStyle().Foreground(t.Disabled).Italic(true),
		Button: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(t.Accent).
			Bold(true).
			Padding(0, 3),
		ButtonDisabled: lipgloss.NewStyle().
			Foreground(t.Ink).
			Background(t.Disabled).
			Padding(0, 3),
		Banner: lipgloss.NewStyle().
			Foreground(t.Ink).
			Background(t.Accent).
			Bold(true),

		Theme: t,
	}
}
