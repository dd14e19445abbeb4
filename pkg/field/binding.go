package field

import "github.com/goliatone/go-markupfield/pkg/markup"

// Binding pairs a field definition with one record's storage slots. Records
// hand bindings to persistence collaborators so the pre-save hook can run
// against the right slots.
type Binding struct {
	Field *Field
	Slots *markup.Slots
}

// Bind builds a binding for the given slots.
func (f *Field) Bind(s *markup.Slots) Binding {
	return Binding{Field: f, Slots: s}
}
