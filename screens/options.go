package screens

import "github.com/jask/onigo/core"

// Options are the knobs shared by every screen.
type Options struct {
	Styles      core.Styles
	PhoneLength int
	CodeLength  int
	Welcome     string
	CursorBlink bool
}

func DefaultOptions() Options {
	return Options{
		Styles:      core.NewStyles(core.DefaultTheme()),
		PhoneLength: 10,
		CodeLength:  6,
		Welcome:     "Welcome to OniGO!",
		CursorBlink: true,
	}
}

func (o Options) normalized() Options {
	d := DefaultOptions()
	if o.PhoneLength <= 0 {
		o.PhoneLength = d.PhoneLength
	}
	if o.CodeLength <= 0 {
		o.CodeLength = d.CodeLength
	}
	if o.Welcome == "" {
		o.Welcome = d.Welcome
	}
	if o.Styles.Theme.Accent == "" {
		o.Styles = d.Styles
	}
	return o
}

// Factory builds a fresh screen for route. Unknown routes yield nil.
func Factory(opts Options) core.ScreenFactory {
	opts = opts.normalized()
	return func(r core.Route) core.Screen {
		switch r {
		case core.RoutePhoneNumber:
			return NewPhoneScreen(opts)
		case core.RouteCode:
			return NewCodeScreen(opts)
		case core.RouteSuccess:
			return NewSuccessScreen(opts)
		default:
			return nil
		}
	}
}
