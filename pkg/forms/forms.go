// Package forms renders the editing surface for markup fields: a textarea
// for the raw text and, when the field lets records choose their own markup
// type, a select over the registry's keys. The rendered cache never appears
// in a form. Output goes through the template seam so applications can swap
// templates, widgets, or the whole engine.
package forms

import (
	"fmt"
	"strings"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-markupfield/pkg/field"
	"github.com/goliatone/go-markupfield/pkg/forms/gotemplate"
	"github.com/goliatone/go-markupfield/pkg/forms/template"
	"github.com/goliatone/go-markupfield/pkg/markup"
	"github.com/goliatone/go-markupfield/pkg/widgets"
)

// Default inline templates per widget.
const (
	textareaTemplate = `<textarea name="{{ name }}" class="{{ chrome }}" rows="10">{{ value }}</textarea>`
	selectTemplate   = `<select name="{{ name }}" class="{{ chrome }}">{% for choice in choices %}<option value="{{ choice }}"{% if choice == selected %} selected{% endif %}>{{ choice }}</option>{% endfor %}</select>`
	hiddenTemplate   = `<input type="hidden" name="{{ name }}" value="{{ value }}">`
)

// Option configures a form renderer.
type Option func(*Renderer)

// WithTemplates swaps the template engine.
func WithTemplates(templates template.TemplateRenderer) Option {
	return func(r *Renderer) {
		if templates != nil {
			r.templates = templates
		}
	}
}

// WithWidgets swaps the widget registry.
func WithWidgets(registry *widgets.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.widgets = registry
		}
	}
}

// WithTemplateOverride replaces the inline template for one widget.
func WithTemplateOverride(widget, templateContent string) Option {
	return func(r *Renderer) {
		if widget == "" || templateContent == "" {
			return
		}
		r.overrides[widget] = templateContent
	}
}

// WithChromeClass sets the css class rendered on one widget's control.
func WithChromeClass(widget, class string) Option {
	return func(r *Renderer) {
		r.chrome[widget] = class
	}
}

// WithThemeSelector resolves widget chrome classes from a go-theme
// selection: manifest tokens keyed by widget name become the control's css
// class, with variant tokens taking precedence.
func WithThemeSelector(selector theme.ThemeSelector, name, variant string) Option {
	return func(r *Renderer) {
		if selector == nil {
			return
		}
		r.themeSelector = selector
		r.themeName = name
		r.themeVariant = variant
	}
}

// Renderer renders markup field edit controls to HTML.
type Renderer struct {
	templates template.TemplateRenderer
	widgets   *widgets.Registry
	overrides map[string]string
	chrome    map[string]string

	themeSelector theme.ThemeSelector
	themeName     string
	themeVariant  string
}

// New builds a form renderer with the built-in widgets and inline templates.
func New(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		widgets:   widgets.NewRegistry(),
		overrides: make(map[string]string),
		chrome:    make(map[string]string),
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(r)
	}

	if r.templates == nil {
		engine, err := gotemplate.New()
		if err != nil {
			return nil, fmt.Errorf("forms: build template engine: %w", err)
		}
		r.templates = engine
	}

	if r.themeSelector != nil {
		if err := r.applyTheme(); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// RenderField renders the edit controls for one field bound to the given
// slots. Controls come out in widget resolution order, joined by newlines.
func (r *Renderer) RenderField(f *field.Field, s *markup.Slots) (string, error) {
	if s == nil {
		return "", markup.ErrUnbound
	}

	m := markup.New(s)
	var parts []string
	for _, control := range widgets.Controls(f) {
		widget, ok := r.widgets.Resolve(control)
		if !ok {
			continue
		}

		rendered, err := r.templates.RenderString(r.templateFor(widget), r.controlData(control, widget, m))
		if err != nil {
			return "", fmt.Errorf("forms: render %s control for field %q: %w", control.Slot, f.Name(), err)
		}
		parts = append(parts, rendered)
	}
	return strings.Join(parts, "\n"), nil
}

func (r *Renderer) controlData(control widgets.Control, widget string, m *markup.Markup) map[string]any {
	data := map[string]any{
		"name":   control.Name,
		"chrome": r.chrome[widget],
	}
	switch control.Slot {
	case widgets.SlotMarkupType:
		selected := m.MarkupType()
		if selected == "" {
			selected = control.Default
		}
		data["choices"] = control.Choices
		data["selected"] = selected
		data["value"] = selected
	default:
		data["value"] = m.Raw()
	}
	return data
}

func (r *Renderer) templateFor(widget string) string {
	if override := r.overrides[widget]; override != "" {
		return override
	}
	switch widget {
	case widgets.WidgetSelect:
		return selectTemplate
	case widgets.WidgetHidden:
		return hiddenTemplate
	default:
		return textareaTemplate
	}
}

func (r *Renderer) applyTheme() error {
	selection, err := r.themeSelector.Select(r.themeName, r.themeVariant)
	if err != nil {
		return fmt.Errorf("forms: resolve theme %q: %w", r.themeName, err)
	}
	if selection == nil || selection.Manifest == nil {
		return nil
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}

	for widget, class := range tokens {
		if _, explicit := r.chrome[widget]; !explicit {
			r.chrome[widget] = class
		}
	}
	return nil
}
