package jsonschema

import (
	"fmt"
	"log/slog"
	"reflect"
	"strconv"
	"strings"
)

// Schema represents the structure of JSON Schema used for defining arguments and responses.
// It follows the JSON Schema standard, supporting various types, properties, and validation rules.
// This structure is typically used to define the expected format of arguments for tools
// and to validate that incoming data conforms to the expected structure.
type Schema struct {
	// Type specifies the data type (e.g., "object", "array", "string", "number")
	Type        string   `json:"type,omitempty"`
	Description string   `json:"description,omitempty"`
	Required    []string `json:"required,omitempty"`
	// Properties of the arguments, each with its own schema
	Properties map[string]*Schema `json:"properties,omitempty"`
	// For array types, defines the schema of items in the array
	Items *Schema `json:"items,omitempty"`
	// AdditionalProperties controls whether properties not defined in Properties are allowed
	AdditionalProperties any `json:"additionalProperties,omitempty"`
	// Default value for the parameter
	Default any `json:"default,omitempty"`
	// Enum contains the list of allowed values for the parameter
	Enum []any `json:"enum,omitempty"`
}

// GenerateJSONSchema generates a JSON schema for the type T.
// Pointer fields dereference to the schema of their element type and are
// treated as optional; value fields are required unless tagged omitempty.
func GenerateJSONSchema[T any]() (*Schema, error) {
	return generateSchema(reflect.TypeFor[T]()), nil
}

// generateSchema dispatches on the kind of t.
func generateSchema(t reflect.Type) *Schema {
	switch t.Kind() {
	case reflect.Struct:
		return generateStructSchema(t)

	case reflect.Ptr:
		// Tool parameters are typically value types; unwrap to the element schema.
		return generateSchema(t.Elem())

	case reflect.Slice, reflect.Array:
		return &Schema{Type: "array", Items: generateSchema(t.Elem())}

	case reflect.Map:
		return &Schema{Type: "object", AdditionalProperties: generateSchema(t.Elem())}

	case reflect.String:
		return &Schema{Type: "string"}

	case reflect.Bool:
		return &Schema{Type: "boolean"}

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return &Schema{Type: "integer"}

	case reflect.Float32, reflect.Float64:
		return &Schema{Type: "number"}

	case reflect.Interface:
		// No constraint can be derived for interface values.
		return &Schema{}

	default:
		return &Schema{Type: "string"}
	}
}

// generateStructSchema builds an object schema from the exported fields of t.
func generateStructSchema(t reflect.Type) *Schema {
	schema := &Schema{Type: "object"}
	properties := map[string]*Schema{}
	required := make([]string, 0)

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if !field.IsExported() {
			continue
		}

		// Get JSON tag or use field name.
		jsonTag := field.Tag.Get("json")
		if jsonTag == "-" {
			continue // Skip fields marked with json:"-"
		}

		fieldName := field.Name
		isOmitEmpty := false

		if jsonTag != "" {
			// Parse json tag (handle omitempty, etc.)
			if commaIdx := strings.Index(jsonTag, ","); commaIdx != -1 {
				fieldName = jsonTag[:commaIdx]
				isOmitEmpty = strings.Contains(jsonTag[commaIdx:], "omitempty")
			} else {
				fieldName = jsonTag
			}
		}

		fieldSchema := generateSchema(field.Type)
		properties[fieldName] = fieldSchema

		// Parse jsonschema tag to customize the schema.
		isRequiredByTag, err := parseJSONSchemaTag(field.Type, field.Tag, fieldSchema)
		if err != nil {
			slog.Error("parseJSONSchemaTag error", "field", fieldName, "error", err)
			// Continue execution with the field schema as is
		}

		// A field is required when it is a non-pointer without omitempty,
		// or when the jsonschema tag marks it required explicitly.
		if (field.Type.Kind() != reflect.Ptr && !isOmitEmpty) || isRequiredByTag {
			required = append(required, fieldName)
		}
	}

	schema.Properties = properties
	if len(required) > 0 {
		schema.Required = required
	}
	return schema
}

// parseJSONSchemaTag parses the jsonschema struct tag and applies the settings to the schema.
// Supported struct tags:
// 1. jsonschema: "description=xxx"
// 2. jsonschema: "enum=xxx,enum=yyy", or "enum=1,enum=2", or "enum=3.14,enum=3.15", etc.
// NOTE: enum values are converted to the actual field type defined in the struct.
// NOTE: enum only supports string, integer, float, and bool field types.
// 3. jsonschema: "required"
// 4. jsonschema: "default=xxx"
func parseJSONSchemaTag(fieldType reflect.Type, tag reflect.StructTag, schema *Schema) (bool, error) {
	jsonSchemaTag := tag.Get("jsonschema")
	if len(jsonSchemaTag) == 0 {
		return false, nil
	}

	isRequiredByTag := false
	tags := strings.Split(jsonSchemaTag, ",")
	for _, tagItem := range tags {
		kv := strings.SplitN(tagItem, "=", 2)
		if len(kv) == 2 {
			key, value := kv[0], kv[1]
			switch key {
			case "description":
				schema.Description = value
			case "default":
				schema.Default = value
			case "enum":
				enumValue, err := convertEnumValue(fieldType, value)
				if err != nil {
					return isRequiredByTag, err
				}
				schema.Enum = append(schema.Enum, enumValue)
			}
		} else if len(kv) == 1 && kv[0] == "required" {
			isRequiredByTag = true
		}
	}

	return isRequiredByTag, nil
}

// convertEnumValue converts a raw enum tag value to the Go type of the field.
func convertEnumValue(fieldType reflect.Type, value string) (any, error) {
	switch fieldType.Kind() {
	case reflect.String:
		return value, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v, err := strconv.ParseInt(value, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to int64 failed: %w", value, err)
		}
		return v, nil
	case reflect.Float32, reflect.Float64:
		v, err := strconv.ParseFloat(value, 64)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to float64 failed: %w", value, err)
		}
		return v, nil
	case reflect.Bool:
		v, err := strconv.ParseBool(value)
		if err != nil {
			return nil, fmt.Errorf("parse enum value %v to bool failed: %w", value, err)
		}
		return v, nil
	default:
		return nil, fmt.Errorf("enum tag unsupported for field type: %v", fieldType)
	}
}
