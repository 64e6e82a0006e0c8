package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/contactbook/internal/contact"
)

type formKind int

const (
	formAdd formKind = iota
	formEdit
)

// contactForm is the add form and the edit modal: one text input per
// contact field plus the messages from the last rejected submit.
type contactForm struct {
	kind   formKind
	fields []contact.Field
	inputs []textinput.Model
	focus  int
	errors contact.FieldErrors
}

func newContactForm(kind formKind, prefill contact.Contact) contactForm {
	fields := contact.Fields()
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		in := textinput.New()
		in.Prompt = ""
		in.Width = 32
		in.CharLimit = 120
		switch f {
		case contact.FieldName:
			in.Placeholder = "Jane Roe"
		case contact.FieldEmail:
			in.Placeholder = "jane@example.com"
		case contact.FieldPhone:
			in.Placeholder = "5551234567"
		}
		in.SetValue(prefill.Value(f))
		inputs[i] = in
	}
	inputs[0].Focus()
	return contactForm{kind: kind, fields: fields, inputs: inputs}
}

func (f *contactForm) move(delta int) {
	f.inputs[f.focus].Blur()
	f.focus = (f.focus + delta + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Focus()
}

// value is the contact typed into the form. Inputs are taken verbatim.
func (f contactForm) value() contact.Contact {
	var c contact.Contact
	for i, field := range f.fields {
		c = c.With(field, f.inputs[i].Value())
	}
	return c
}

func (f *contactForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return cmd
}

func (f contactForm) title() string {
	if f.kind == formEdit {
		return "Edit contact"
	}
	return "Add contact"
}

func (f contactForm) view(th theme) string {
	var b strings.Builder
	b.WriteString(th.title.Render(f.title()))
	b.WriteString("\n")
	for i, field := range f.fields {
		marker := "  "
		if i == f.focus {
			marker = th.cursor.Render("> ")
		}
		b.WriteString("\n")
		b.WriteString(marker + th.label.Render(fit(fieldLabel(field), 7)) + f.inputs[i].View())
		if msg, ok := f.errors[field]; ok {
			b.WriteString("\n         " + th.fieldError.Render(msg))
		}
	}
	return b.String()
}

func fieldLabel(f contact.Field) string {
	switch f {
	case contact.FieldName:
		return "Name"
	case contact.FieldEmail:
		return "Email"
	case contact.FieldPhone:
		return "Phone"
	}
	return string(f)
}
