package markup

import "errors"

// Converter is the plain renderer variant: a pure function from raw markup
// text to HTML.
type Converter func(raw string) (string, error)

// RichMarkup is the accessor a rich renderer yields: the base view plus a
// Render step that reads its own raw text. Implementations embed *Markup.
type RichMarkup interface {
	Accessor
	Render() (string, error)
}

// Factory builds a rich view bound to a markup value.
type Factory func(*Markup) RichMarkup

// Renderer is a registry entry: exactly one of the two variants is set, and
// dispatch between them is explicit rather than reflective.
type Renderer struct {
	convert Converter
	factory Factory
}

// Func wraps a plain conversion function as a registry entry.
func Func(convert Converter) Renderer {
	return Renderer{convert: convert}
}

// Rich wraps a rich view factory as a registry entry.
func Rich(factory Factory) Renderer {
	return Renderer{factory: factory}
}

// Plain reports whether the entry is the plain-function variant.
func (r Renderer) Plain() bool {
	return r.convert != nil
}

// zero reports an entry with neither variant set; Registry.Register rejects
// these.
func (r Renderer) zero() bool {
	return r.convert == nil && r.factory == nil
}

// Render produces HTML for the bound markup value, dispatching over the
// variant: plain entries receive the raw text, rich entries render through
// the view they construct.
func (r Renderer) Render(m *Markup) (string, error) {
	if r.convert != nil {
		return r.convert(m.Raw())
	}
	if r.factory != nil {
		return r.factory(m).Render()
	}
	return "", errors.New("markup: renderer has no variant set")
}

// View returns the accessor kind a field read should yield for this entry:
// the base view for plain functions, the factory-built view for rich
// renderers.
func (r Renderer) View(m *Markup) Accessor {
	if r.factory != nil {
		return r.factory(m)
	}
	return m
}
