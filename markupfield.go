// Package markupfield keeps a stored text attribute, its markup-type tag,
// and a derived rendered-HTML cache consistent behind a single accessor.
// Renderers are looked up by markup type in a registry assembled by the
// application; the rendered cache refreshes exactly once per persistence
// operation through the field's pre-save hook.
//
// This file re-exports the core surface so most applications only import the
// module root; the underlying packages stay importable for the pieces with
// their own configuration (renderers, forms, config, store).
package markupfield

import (
	"github.com/goliatone/go-markupfield/pkg/field"
	"github.com/goliatone/go-markupfield/pkg/markup"
)

// Core types re-exported from pkg/markup and pkg/field.
type (
	Field            = field.Field
	Option           = field.Option
	Binding          = field.Binding
	Slots            = markup.Slots
	Markup           = markup.Markup
	Accessor         = markup.Accessor
	Registry         = markup.Registry
	Renderer         = markup.Renderer
	Converter        = markup.Converter
	RichMarkup       = markup.RichMarkup
	Factory          = markup.Factory
	ConfigError      = markup.ConfigError
	InvalidTypeError = markup.InvalidTypeError
)

// ErrUnbound re-exports markup.ErrUnbound.
var ErrUnbound = markup.ErrUnbound

// New builds a validated field definition.
func New(name string, registry *Registry, opts ...Option) (*Field, error) {
	return field.New(name, registry, opts...)
}

// MustNew panics on configuration errors.
func MustNew(name string, registry *Registry, opts ...Option) *Field {
	return field.MustNew(name, registry, opts...)
}

// WithType fixes the field's markup type.
func WithType(markupType string) Option { return field.WithType(markupType) }

// WithChoices overrides the field's registry.
func WithChoices(registry *Registry) Option { return field.WithChoices(registry) }

// WithDefaultType sets the markup type new records start with.
func WithDefaultType(markupType string) Option { return field.WithDefaultType(markupType) }

// NewRegistry creates an empty renderer registry.
func NewRegistry() *Registry { return markup.NewRegistry() }

// Func wraps a plain conversion function as a registry entry.
func Func(convert Converter) Renderer { return markup.Func(convert) }

// Rich wraps a rich view factory as a registry entry.
func Rich(factory Factory) Renderer { return markup.Rich(factory) }
