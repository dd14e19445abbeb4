package field

import "github.com/getkin/kin-openapi/openapi3"

// Schema describes the persisted shape of the field as an OpenAPI object
// schema: the raw text, the markup type constrained to the registry's keys,
// and the read-only rendered cache. Form and API generators can merge the
// result into a host record schema.
func (f *Field) Schema() *openapi3.Schema {
	raw := openapi3.NewStringSchema()

	markupType := openapi3.NewStringSchema()
	for _, name := range f.registry.Types() {
		markupType.Enum = append(markupType.Enum, name)
	}
	if f.defaultType != "" {
		markupType.Default = f.defaultType
	}
	if !f.typeEditable {
		markupType.ReadOnly = true
	}

	rendered := openapi3.NewStringSchema()
	rendered.ReadOnly = true

	return openapi3.NewObjectSchema().
		WithProperty(f.Column(), raw).
		WithProperty(f.MarkupTypeColumn(), markupType).
		WithProperty(f.RenderedColumn(), rendered)
}
