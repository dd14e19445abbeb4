// Package field defines the declarative side of a markup field: per-field
// configuration validated at construction, slot provisioning with defaults,
// descriptor-style access that yields bound accessors, the pre-save hook
// that refreshes the rendered cache, and the persisted-shape helpers
// (column names, OpenAPI schema export) persistence and form collaborators
// build on.
package field
