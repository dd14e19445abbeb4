package field

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-markupfield/pkg/markup"
)

// Field is the immutable definition of one markup field: which registry is
// in effect, whether the markup type is fixed or chosen per record, and what
// the default type is. Construct once per host type and share across records.
type Field struct {
	name         string
	registry     *markup.Registry
	defaultType  string
	typeEditable bool
}

type options struct {
	fixedType   string
	choices     *markup.Registry
	defaultType string
}

// Option configures a field definition before validation runs.
type Option func(*options)

// WithType fixes the markup type for every record of this field. The type
// slot stops being user-editable; combining this with WithChoices or
// WithDefaultType is a configuration error.
func WithType(markupType string) Option {
	return func(o *options) {
		o.fixedType = markupType
	}
}

// WithChoices overrides the base registry with a per-field one. Requires
// WithDefaultType.
func WithChoices(registry *markup.Registry) Option {
	return func(o *options) {
		o.choices = registry
	}
}

// WithDefaultType sets the markup type new records start with. The type slot
// stays user-editable.
func WithDefaultType(markupType string) Option {
	return func(o *options) {
		o.defaultType = markupType
	}
}

// New validates the configuration and builds a field definition. All
// configuration errors surface here, before any record exists.
func New(name string, registry *markup.Registry, opts ...Option) (*Field, error) {
	var cfg options
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if strings.TrimSpace(name) == "" {
		return nil, &markup.ConfigError{Field: name, Reason: "field name is required"}
	}
	if cfg.fixedType != "" && (cfg.choices != nil || cfg.defaultType != "") {
		return nil, &markup.ConfigError{
			Field:  name,
			Reason: "cannot combine a fixed markup type with choices or a default markup type",
		}
	}
	if cfg.choices != nil && cfg.defaultType == "" {
		return nil, &markup.ConfigError{Field: name, Reason: "choices require a default markup type"}
	}

	effective := registry
	if cfg.choices != nil {
		effective = cfg.choices
	}
	if effective == nil {
		return nil, &markup.ConfigError{Field: name, Reason: "a renderer registry is required"}
	}

	defaultType := cfg.defaultType
	if cfg.fixedType != "" {
		defaultType = cfg.fixedType
	}
	if defaultType != "" && !effective.Has(defaultType) {
		return nil, &markup.ConfigError{
			Field: name,
			Reason: fmt.Sprintf("invalid markup type %q, allowed values: %s",
				defaultType, strings.Join(effective.Types(), ", ")),
		}
	}

	return &Field{
		name:         name,
		registry:     effective,
		defaultType:  defaultType,
		typeEditable: cfg.fixedType == "",
	}, nil
}

// MustNew panics on configuration errors. Useful for package-level field
// definitions.
func MustNew(name string, registry *markup.Registry, opts ...Option) *Field {
	f, err := New(name, registry, opts...)
	if err != nil {
		panic(err)
	}
	return f
}

// Name returns the primary field name.
func (f *Field) Name() string { return f.name }

// DefaultType returns the markup type new records start with, "" when the
// field has no default.
func (f *Field) DefaultType() string { return f.defaultType }

// TypeEditable reports whether records may choose their own markup type.
// False means the type was fixed at definition time.
func (f *Field) TypeEditable() bool { return f.typeEditable }

// Registry returns the registry in effect for this field.
func (f *Field) Registry() *markup.Registry { return f.registry }

// Column returns the persisted column name for the raw text.
func (f *Field) Column() string { return f.name }

// MarkupTypeColumn returns the persisted column name for the markup type.
func (f *Field) MarkupTypeColumn() string { return f.name + "_markup_type" }

// RenderedColumn returns the persisted column name for the rendered cache.
// The leading underscore marks it as derived, never user-edited.
func (f *Field) RenderedColumn() string { return "_" + f.name + "_rendered" }

// NewSlots provisions the storage for one record, seeding the markup type
// with the field's default when it has one.
func (f *Field) NewSlots() *markup.Slots {
	slots := &markup.Slots{}
	if f.defaultType != "" {
		defaultType := f.defaultType
		slots.MarkupType = &defaultType
	}
	return slots
}

// Value yields the accessor for the given slots, the read half of the
// descriptor contract. It returns a nil accessor when the markup type is
// unset, or when a plain-function type has no raw text yet — both mean "no
// content authored". Rich renderer types yield their own view kind. A markup
// type missing from the registry still yields the base view so callers can
// correct it in memory; persistence is where it fails.
func (f *Field) Value(s *markup.Slots) (markup.Accessor, error) {
	if s == nil {
		return nil, markup.ErrUnbound
	}
	if s.MarkupType == nil {
		return nil, nil
	}

	m := markup.New(s)
	entry, ok := f.registry.Get(*s.MarkupType)
	if !ok {
		return m, nil
	}
	if entry.Plain() && s.Raw == nil {
		return nil, nil
	}
	return entry.View(m), nil
}

// Set performs the write half of the descriptor contract. Assigning another
// accessor copies its raw text, markup type, and rendered cache verbatim —
// the snapshot's already-rendered content is trusted, no re-render happens.
// Assigning a string writes the raw text only, leaving the markup type
// untouched; nil clears the raw text.
func (f *Field) Set(s *markup.Slots, value any) error {
	if s == nil {
		return markup.ErrUnbound
	}

	switch v := value.(type) {
	case markup.Accessor:
		src := v.Slots()
		s.Raw = copyString(src.Raw)
		s.MarkupType = copyString(src.MarkupType)
		s.Rendered = src.Rendered
	case string:
		s.Raw = &v
	case nil:
		s.Raw = nil
	default:
		return fmt.Errorf("field: cannot assign %T to markup field %q", value, f.name)
	}
	return nil
}

// Validate checks that the current markup type is a registry key. It is the
// deferred validation the accessor skips: failing here aborts the enclosing
// persistence operation.
func (f *Field) Validate(s *markup.Slots) error {
	if s == nil {
		return markup.ErrUnbound
	}

	markupType := ""
	if s.MarkupType != nil {
		markupType = *s.MarkupType
	}
	if !f.registry.Has(markupType) {
		return &markup.InvalidTypeError{Type: markupType, Choices: f.registry.Types()}
	}
	return nil
}

// PreSave is the persistence hook: it validates the markup type, renders the
// current raw text through the registry entry, stores the result in the
// rendered slot, and returns the raw text as the value to persist for the
// primary column. On any error the slots are left untouched.
func (f *Field) PreSave(s *markup.Slots) (string, error) {
	if err := f.Validate(s); err != nil {
		return "", err
	}

	entry, _ := f.registry.Get(*s.MarkupType)
	m := markup.New(s)

	rendered, err := entry.Render(m)
	if err != nil {
		return "", err
	}

	s.Rendered = rendered
	return m.Raw(), nil
}

// ValueToString serializes the field for export: the raw text verbatim. The
// rendered cache is a derived artifact and is never the exported value.
func (f *Field) ValueToString(s *markup.Slots) (string, error) {
	if s == nil {
		return "", markup.ErrUnbound
	}
	if s.Raw == nil {
		return "", nil
	}
	return *s.Raw, nil
}

func copyString(v *string) *string {
	if v == nil {
		return nil
	}
	out := *v
	return &out
}
