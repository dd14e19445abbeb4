// Package widgets resolves which form widget edits each part of a markup
// field. The raw text gets a markup-aware textarea, the markup type gets a
// select when the field lets records choose their own type, and the rendered
// cache is never editable, so it never resolves to a widget at all.
package widgets

import (
	"sort"
	"strings"
	"sync"

	"github.com/goliatone/go-markupfield/pkg/field"
)

// Built-in widget identifiers exposed by the registry.
const (
	WidgetTextarea = "markup-textarea"
	WidgetSelect   = "select"
	WidgetHidden   = "hidden"
)

// Slot identifies which of a field's three storage slots a control edits.
type Slot string

const (
	SlotRaw        Slot = "raw"
	SlotMarkupType Slot = "markup_type"
	SlotRendered   Slot = "rendered"
)

// Control describes one form control derived from a field definition.
type Control struct {
	// Name is the form control name, matching the persisted column.
	Name string
	// Slot says which storage slot the control edits.
	Slot Slot
	// Editable mirrors the field configuration; non-editable controls never
	// resolve to a widget.
	Editable bool
	// Choices carries the selectable markup types for the type control.
	Choices []string
	// Default is the pre-selected choice, when the field has one.
	Default string
	// Widget forces a specific widget, bypassing matcher resolution.
	Widget string
}

// Matcher decides whether a widget should handle the supplied control.
type Matcher func(control Control) bool

type rule struct {
	name     string
	priority int
	match    Matcher
	order    int
}

// Registry selects widgets for controls based on explicit hints or
// registered matchers. Higher priority wins; ties fall back to registration
// order.
type Registry struct {
	mu    sync.RWMutex
	rules []rule
}

// NewRegistry constructs a registry with the built-in matchers registered.
func NewRegistry() *Registry {
	reg := &Registry{}
	reg.registerBuiltins()
	return reg
}

// Register adds a widget matcher with the provided name and priority. Higher
// priority values take precedence.
func (r *Registry) Register(name string, priority int, matcher Matcher) {
	if r == nil || matcher == nil {
		return
	}
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.rules = append(r.rules, rule{
		name:     trimmed,
		priority: priority,
		match:    matcher,
		order:    len(r.rules),
	})
}

// Resolve returns the widget name for a control. An explicit Control.Widget
// is honoured before matcher evaluation; non-editable controls never
// resolve.
func (r *Registry) Resolve(control Control) (string, bool) {
	if !control.Editable {
		return "", false
	}
	if explicit := strings.TrimSpace(control.Widget); explicit != "" {
		return explicit, true
	}
	if r == nil {
		return "", false
	}

	r.mu.RLock()
	rules := append([]rule(nil), r.rules...)
	r.mu.RUnlock()

	sort.SliceStable(rules, func(i, j int) bool {
		if rules[i].priority == rules[j].priority {
			return rules[i].order < rules[j].order
		}
		return rules[i].priority > rules[j].priority
	})
	for _, entry := range rules {
		if entry.match(control) {
			return entry.name, true
		}
	}
	return "", false
}

// Controls derives the form controls for a field definition: the raw-text
// control always, the markup-type control only when records may choose their
// own type. The rendered cache is derived state and is excluded entirely.
func Controls(f *field.Field) []Control {
	controls := []Control{
		{
			Name:     f.Column(),
			Slot:     SlotRaw,
			Editable: true,
		},
	}
	if f.TypeEditable() {
		controls = append(controls, Control{
			Name:     f.MarkupTypeColumn(),
			Slot:     SlotMarkupType,
			Editable: true,
			Choices:  f.Registry().Types(),
			Default:  f.DefaultType(),
		})
	}
	return controls
}

func (r *Registry) registerBuiltins() {
	r.Register(WidgetTextarea, 90, func(control Control) bool {
		return control.Slot == SlotRaw
	})

	r.Register(WidgetSelect, 80, func(control Control) bool {
		return control.Slot == SlotMarkupType && len(control.Choices) > 0
	})

	r.Register(WidgetHidden, 10, func(control Control) bool {
		return control.Slot == SlotMarkupType
	})
}
