package openapi_schema

import (
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
)

// IsObject returns true if the given OpenAPI schema represents an object type
func IsObject(prop *openapi3.Schema) bool {
	return prop != nil && prop.Type != nil && len(*prop.Type) > 0 && (*prop.Type)[0] == openapi3.TypeObject
}

// IsFreeFormObject returns true for objects without declared properties,
// which map to map[string]any.
func IsFreeFormObject(prop *openapi3.Schema) bool {
	return IsObject(prop) && len(prop.Properties) == 0
}

// IsPrimitive returns true if the given OpenAPI schema represents a primitive type
// (string, integer, number, or boolean).
func IsPrimitive(prop *openapi3.Schema) bool {
	switch GetSchemaType(prop) {
	case openapi3.TypeString,
		openapi3.TypeInteger,
		openapi3.TypeNumber,
		openapi3.TypeBoolean:
		return true
	default:
		return false
	}
}

// GetSchemaType returns the type string of the given OpenAPI schema
func GetSchemaType(s *openapi3.Schema) string {
	if s == nil || s.Type == nil || len(*s.Type) == 0 {
		return ""
	}
	return (*s.Type)[0]
}

// PropertyNames returns the declared property names of an object schema.
func PropertyNames(s *openapi3.Schema) []string {
	if s == nil {
		return nil
	}
	names := make([]string, 0, len(s.Properties))
	for name := range s.Properties {
		names = append(names, name)
	}
	return names
}

var initialisms = map[string]string{
	"id":  "ID",
	"url": "URL",
}

// FieldName converts a wire name to the accessor name used in messages:
// "workspace_id" becomes "workspaceId".
func FieldName(wire string) string {
	parts := strings.Split(wire, "_")
	for i := 1; i < len(parts); i++ {
		parts[i] = upperFirst(parts[i])
	}
	return strings.Join(parts, "")
}

// GoName converts a wire name or operation id to an exported Go identifier:
// "workspace_id" becomes "WorkspaceID", "listValues" becomes "ListValues".
func GoName(name string) string {
	var b strings.Builder
	for _, part := range strings.Split(name, "_") {
		if part == "" {
			continue
		}
		if up, ok := initialisms[strings.ToLower(part)]; ok {
			b.WriteString(up)
			continue
		}
		b.WriteString(upperFirst(part))
	}
	return b.String()
}

// LowerGoName is GoName with a lower-case first letter, for parameter names.
// A name that is a single initialism is lowered entirely ("ID" becomes "id").
func LowerGoName(name string) string {
	g := GoName(name)
	for _, initialism := range initialisms {
		if g == initialism {
			return strings.ToLower(g)
		}
	}
	if g == "" {
		return g
	}
	return strings.ToLower(g[:1]) + g[1:]
}

func upperFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
