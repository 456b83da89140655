package catalog

// JSON schema construction for structured backend output. Schemas are
// built as raw maps so every provider can consume them: OpenAI takes them
// under response_format.json_schema, Gemini under responseJsonSchema.

func scalarType(k Kind) string {
	switch k {
	case KindInt:
		return "integer"
	case KindFloat:
		return "number"
	case KindBool:
		return "boolean"
	default:
		return "string"
	}
}

func columnSchema(c Column) map[string]any {
	return map[string]any{
		"type":        scalarType(c.Kind),
		"description": c.Description,
	}
}

func fieldSchema(f Field) map[string]any {
	switch f.Kind {
	case KindStringList:
		return map[string]any{
			"type":        "array",
			"items":       map[string]any{"type": "string"},
			"description": f.Description,
		}
	case KindTable:
		props := make(map[string]any, len(f.Columns))
		required := make([]string, 0, len(f.Columns))
		for _, c := range f.Columns {
			props[c.Name] = columnSchema(c)
			required = append(required, c.Name)
		}
		return map[string]any{
			"type": "array",
			"items": map[string]any{
				"type":                 "object",
				"properties":           props,
				"required":             required,
				"additionalProperties": false,
			},
			"description": f.Description,
		}
	default:
		return map[string]any{
			"type":        scalarType(f.Kind),
			"description": f.Description,
		}
	}
}

// JSONSchema returns the category's field schema as a strict JSON schema
// object. Every field is required; providers running in strict mode need
// the full property list enumerated.
func (d Descriptor) JSONSchema() map[string]any {
	props := make(map[string]any, len(d.Fields))
	required := make([]string, 0, len(d.Fields))
	for _, f := range d.Fields {
		props[f.Name] = fieldSchema(f)
		required = append(required, f.Name)
	}
	return map[string]any{
		"type":                 "object",
		"properties":           props,
		"required":             required,
		"additionalProperties": false,
	}
}

// FieldNames returns the schema's field names in declaration order.
func (d Descriptor) FieldNames() []string {
	names := make([]string, len(d.Fields))
	for i, f := range d.Fields {
		names[i] = f.Name
	}
	return names
}

// FieldByName returns the field schema entry with the given name.
func (d Descriptor) FieldByName(name string) (Field, bool) {
	for _, f := range d.Fields {
		if f.Name == name {
			return f, true
		}
	}
	return Field{}, false
}
