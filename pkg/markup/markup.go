package markup

import "html/template"

// Slots is the storage backing one markup field on a host record: the three
// values persist as separate columns but are only ever read and written
// together through an accessor. Raw and MarkupType are nil until assigned so
// "no content authored" is distinguishable from an empty string. Rendered is
// refreshed exclusively by the field's pre-save hook.
type Slots struct {
	Raw        *string
	MarkupType *string
	Rendered   string
}

// Accessor is the read/write handle a field read yields. The base *Markup
// view implements it; rich renderer views embed *Markup and add their own
// Render method.
type Accessor interface {
	Raw() string
	SetRaw(string)
	MarkupType() string
	SetMarkupType(string)
	Rendered() string
	HTML() template.HTML
	Slots() *Slots
}

// Markup is the default accessor: a stateless view over one field's slots.
// It holds no values of its own, so any number of views over the same slots
// always observe the latest state.
type Markup struct {
	slots *Slots
}

// New binds an accessor to the given slots.
func New(s *Slots) *Markup {
	return &Markup{slots: s}
}

// Raw returns the raw markup text, or "" when no text has been assigned.
func (m *Markup) Raw() string {
	if m.slots.Raw == nil {
		return ""
	}
	return *m.slots.Raw
}

// SetRaw assigns the raw markup text. The rendered cache is left untouched
// until the next persistence operation.
func (m *Markup) SetRaw(raw string) {
	m.slots.Raw = &raw
}

// MarkupType returns the current markup type, or "" when unset.
func (m *Markup) MarkupType() string {
	if m.slots.MarkupType == nil {
		return ""
	}
	return *m.slots.MarkupType
}

// SetMarkupType assigns the markup type. No validation happens here; an
// invalid type is tolerated in memory and rejected when the record is about
// to persist.
func (m *Markup) SetMarkupType(markupType string) {
	m.slots.MarkupType = &markupType
}

// Rendered returns the cached HTML from the last persistence operation. It
// never triggers a render, so reads are cheap and reflect the last save.
func (m *Markup) Rendered() string {
	return m.slots.Rendered
}

// HTML returns the rendered cache marked as trusted so template layers do
// not escape it again.
func (m *Markup) HTML() template.HTML {
	return template.HTML(m.slots.Rendered)
}

// Slots exposes the underlying storage, letting callers copy a snapshot
// verbatim.
func (m *Markup) Slots() *Slots {
	return m.slots
}

// String yields the rendered HTML so markup values drop into text templates
// without an extra accessor call.
func (m *Markup) String() string {
	return m.slots.Rendered
}
