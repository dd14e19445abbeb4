package markup

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnbound is returned when a field operation runs without record slots,
// the equivalent of touching the field definition itself instead of an
// instance.
var ErrUnbound = errors.New("markup: field must be accessed through record slots")

// ConfigError reports an invalid field configuration. It surfaces at field
// construction, before any record exists, and makes the field unusable.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("markup: field %q misconfigured: %s", e.Field, e.Reason)
}

// InvalidTypeError reports a markup type that is not a registry key at the
// moment a record is about to persist. The persistence call aborts and
// in-memory state stays untouched, so callers can correct the type and retry.
type InvalidTypeError struct {
	Type    string
	Choices []string
}

func (e *InvalidTypeError) Error() string {
	return fmt.Sprintf("markup: invalid markup type %q, allowed values: %s",
		e.Type, strings.Join(e.Choices, ", "))
}
