package schema

import (
	"encoding/json"
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

// JSONSchema is the subset of a JSON Schema document the generator emits.
type JSONSchema struct {
	Schema      string                 `json:"$schema,omitempty"`
	ID          string                 `json:"$id,omitempty"`
	Title       string                 `json:"title,omitempty"`
	Description string                 `json:"description,omitempty"`
	Type        string                 `json:"type"`
	Required    []string               `json:"required,omitempty"`
	Properties  map[string]*JSONSchema `json:"properties,omitempty"`
	Items       *JSONSchema            `json:"items,omitempty"`
	Enum        []any                  `json:"enum,omitempty"`
	Default     any                    `json:"default,omitempty"`
	Pattern     string                 `json:"pattern,omitempty"`
	MinItems    *int                   `json:"minItems,omitempty"`

	AdditionalProperties *bool `json:"additionalProperties,omitempty"`
}

const schemaRef = "https://json-schema.org/draft/2020-12/schema"

// Generator builds JSON schemas for YAML config structs. Property names come
// from yaml tags. The schema tag takes a comma list of required, enum=a|b,
// default=v, pattern=re and minItems=n; the description tag sets the
// description.
type Generator struct {
	idBase string
}

func NewGenerator(idBase string) *Generator {
	return &Generator{idBase: strings.TrimSuffix(idBase, "/")}
}

func (g *Generator) GenerateSchema(t reflect.Type) (*JSONSchema, error) {
	s, err := g.schemaFor(t)
	if err != nil {
		return nil, err
	}
	s.Schema = schemaRef
	s.Title = t.Name()
	if g.idBase != "" {
		s.ID = fmt.Sprintf("%s/%s.schema.json", g.idBase, strings.ToLower(t.Name()))
	}
	return s, nil
}

// GenerateJSONSchema renders the schema of v's type as indented JSON.
func (g *Generator) GenerateJSONSchema(v any) ([]byte, error) {
	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	s, err := g.GenerateSchema(t)
	if err != nil {
		return nil, err
	}

	out, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal schema to JSON: %w", err)
	}
	return out, nil
}

func (g *Generator) schemaFor(t reflect.Type) (*JSONSchema, error) {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	switch t.Kind() {
	case reflect.Struct:
		return g.structSchema(t)
	case reflect.Slice:
		items, err := g.schemaFor(t.Elem())
		if err != nil {
			return nil, fmt.Errorf("array items: %w", err)
		}
		return &JSONSchema{Type: "array", Items: items}, nil
	case reflect.String:
		return &JSONSchema{Type: "string"}, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return &JSONSchema{Type: "integer"}, nil
	case reflect.Float32, reflect.Float64:
		return &JSONSchema{Type: "number"}, nil
	case reflect.Bool:
		return &JSONSchema{Type: "boolean"}, nil
	default:
		return nil, fmt.Errorf("unsupported type: %s", t.Kind())
	}
}

func (g *Generator) structSchema(t reflect.Type) (*JSONSchema, error) {
	closed := false
	s := &JSONSchema{
		Type:                 "object",
		Properties:           make(map[string]*JSONSchema),
		AdditionalProperties: &closed,
	}

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}
		name := fieldName(field)
		if name == "" {
			continue
		}

		fs, err := g.schemaFor(field.Type)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", field.Name, err)
		}
		if desc := field.Tag.Get("description"); desc != "" {
			fs.Description = desc
		}
		required := applyTag(field.Tag.Get("schema"), fs)

		s.Properties[name] = fs
		if required {
			s.Required = append(s.Required, name)
		}
	}

	return s, nil
}

// fieldName returns the yaml key of field, or "" when the field is skipped.
func fieldName(field reflect.StructField) string {
	tag := field.Tag.Get("yaml")
	if tag == "-" {
		return ""
	}
	name, _, _ := strings.Cut(tag, ",")
	if name == "" {
		return strings.ToLower(field.Name)
	}
	return name
}

// applyTag sets the constraints of tag on s. Enum values apply to the items
// of an array. It reports whether the field is required.
func applyTag(tag string, s *JSONSchema) bool {
	required := false
	for _, part := range strings.Split(tag, ",") {
		key, val, _ := strings.Cut(strings.TrimSpace(part), "=")
		switch key {
		case "required":
			required = true
		case "enum":
			target := s
			if s.Type == "array" && s.Items != nil {
				target = s.Items
			}
			for _, e := range strings.Split(val, "|") {
				target.Enum = append(target.Enum, e)
			}
		case "default":
			s.Default = typedDefault(s.Type, val)
		case "pattern":
			s.Pattern = val
		case "minItems":
			if n, err := strconv.Atoi(val); err == nil {
				s.MinItems = &n
			}
		}
	}
	return required
}

func typedDefault(typ, val string) any {
	switch typ {
	case "integer":
		if n, err := strconv.Atoi(val); err == nil {
			return n
		}
	case "number":
		if f, err := strconv.ParseFloat(val, 64); err == nil {
			return f
		}
	case "boolean":
		if b, err := strconv.ParseBool(val); err == nil {
			return b
		}
	}
	return val
}
