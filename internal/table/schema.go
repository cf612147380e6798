// Describes inferred column types as a JSON Schema.

package table

import (
	"github.com/invopop/jsonschema"
)

// JSONSchema returns an object schema with one property per column.
//
// Columns keyed by position are named after their index. Null maps to a
// property without a type.
func (c *ColumnTypes) JSONSchema(title string) *jsonschema.Schema {
	props := jsonschema.NewProperties()
	for col, k := range c.All() {
		name := col.name
		if !col.byName {
			name = col.String()
		}
		props.Set(name, kindSchema(k))
	}
	return &jsonschema.Schema{
		Version:    jsonschema.Version,
		Title:      title,
		Type:       "object",
		Properties: props,
	}
}

func kindSchema(k Kind) *jsonschema.Schema {
	switch k {
	case KindInt:
		return &jsonschema.Schema{Type: "integer"}
	case KindFloat:
		return &jsonschema.Schema{Type: "number"}
	case KindBool:
		return &jsonschema.Schema{Type: "boolean"}
	case KindDate:
		return &jsonschema.Schema{Type: "string", Format: "date"}
	case KindString:
		return &jsonschema.Schema{Type: "string"}
	default:
		return &jsonschema.Schema{}
	}
}
