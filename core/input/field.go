package input

// Field describes a single-line text input without tying it to a widget toolkit.
type Field struct {
	Label       string
	Placeholder string
	Accept      CharClass
	// SubmitOnEnter exposes the submit action on the field's screen.
	SubmitOnEnter bool
	Mask          bool
}

// Apply sanitizes raw according to the field rules.
func (f Field) Apply(raw string) string {
	return Sanitize(raw, f.Accept)
}

func PhoneField() Field {
	return Field{
		Label:         "Phone number",
		Placeholder:   "0412345678",
		Accept:        Digits,
		SubmitOnEnter: true,
	}
}

func CodeField() Field {
	return Field{
		Label:  "Enter SMS Code",
		Accept: Any,
		Mask:   true,
	}
}
