// Package optionsgen renders the typed options, builders and service methods
// of a service package from its OpenAPI definition.
package optionsgen

import (
	"bytes"
	"fmt"
	"go/format"
	"go/token"
	"net/http"
	"sort"
	"strings"
	"text/template"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
	"github.com/watson-developer-cloud/assistant-go-sdk/openapi_schema"
)

// Param is one field of an operation as rendered in Go.
type Param struct {
	Field   core.Field
	GoName  string // setter and accessor name, e.g. "WorkspaceID"
	ArgName string // setter argument name, e.g. "workspaceID"
	GoType  string
	Doc     string
}

// InName is the Go expression of the field location.
func (p Param) InName() string {
	switch p.Field.In {
	case core.InPath:
		return "core.InPath"
	case core.InQuery:
		return "core.InQuery"
	}
	return "core.InBody"
}

// Op is one operation as rendered in Go.
type Op struct {
	ID       string
	Name     string // e.g. "ListValues"
	Method   string // net/http constant, e.g. "MethodGet"
	Verb     string
	Path     string
	Summary  string
	Title    string // section divider, e.g. "LIST VALUES"
	Params   []Param
	Required []Param
	Response string // result model, empty for operations without a payload
}

// File is the content of one generated file, one per tag.
type File struct {
	Name    string
	Package string
	Ops     []Op
}

var httpConstants = map[string]string{
	http.MethodGet:    "MethodGet",
	http.MethodPost:   "MethodPost",
	http.MethodPut:    "MethodPut",
	http.MethodPatch:  "MethodPatch",
	http.MethodDelete: "MethodDelete",
}

// Generate renders every file of pkg from api. The result maps file names to
// gofmt-ed sources and always contains "operations.go".
func Generate(api openapi_schema.API, pkg string) (map[string][]byte, error) {
	infos, err := openapi_schema.Operations(api)
	if err != nil {
		return nil, err
	}
	filesByTag := map[string]*File{}
	var order []string
	var all []Op
	for _, info := range infos {
		op, err := newOp(info)
		if err != nil {
			return nil, err
		}
		name := fileName(info.Tag)
		f, ok := filesByTag[name]
		if !ok {
			f = &File{Name: name, Package: pkg}
			filesByTag[name] = f
			order = append(order, name)
		}
		f.Ops = append(f.Ops, op)
		all = append(all, op)
	}

	out := make(map[string][]byte, len(order)+1)
	for _, name := range order {
		src, err := render(fileTemplate, filesByTag[name])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		out[name] = src
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Name < all[j].Name })
	src, err := render(operationsTemplate, &File{Name: "operations.go", Package: pkg, Ops: all})
	if err != nil {
		return nil, fmt.Errorf("operations.go: %w", err)
	}
	out["operations.go"] = src
	return out, nil
}

func fileName(tag string) string {
	if tag == "" {
		return "default.go"
	}
	return strings.ToLower(strings.ReplaceAll(tag, " ", "_")) + ".go"
}

func newOp(info *openapi_schema.OperationInfo) (Op, error) {
	method, ok := httpConstants[info.Operation.Method]
	if !ok {
		return Op{}, fmt.Errorf("%s: unsupported method %s", info.Operation.ID, info.Operation.Method)
	}
	op := Op{
		ID:       info.Operation.ID,
		Name:     openapi_schema.GoName(info.Operation.ID),
		Method:   method,
		Verb:     info.Operation.Method,
		Path:     info.Operation.Path,
		Summary:  firstSentence(info.Summary),
		Response: info.Response,
	}
	op.Title = strings.ToUpper(splitWords(op.Name))
	for _, p := range info.Params {
		goType, err := GoType(p.Schema)
		if err != nil {
			return Op{}, fmt.Errorf("%s.%s: %w", op.ID, p.Field.Wire, err)
		}
		param := Param{
			Field:   p.Field,
			GoName:  openapi_schema.GoName(p.Field.Wire),
			ArgName: argName(p.Field.Wire),
			GoType:  goType,
			Doc:     firstSentence(p.Description),
		}
		op.Params = append(op.Params, param)
		if p.Field.Required {
			op.Required = append(op.Required, param)
		}
	}
	return op, nil
}

// GoType maps a schema to the Go type used by setters and accessors.
// Referenced objects become the model type of the same name.
func GoType(ref *openapi3.SchemaRef) (string, error) {
	if ref == nil || ref.Value == nil {
		return "", fmt.Errorf("missing schema")
	}
	if ref.Ref != "" {
		if openapi_schema.IsFreeFormObject(ref.Value) {
			return "map[string]any", nil
		}
		return openapi_schema.ComponentName(ref.Ref), nil
	}
	s := ref.Value
	switch openapi_schema.GetSchemaType(s) {
	case openapi3.TypeString:
		return "string", nil
	case openapi3.TypeInteger:
		return "int64", nil
	case openapi3.TypeNumber:
		return "float64", nil
	case openapi3.TypeBoolean:
		return "bool", nil
	case openapi3.TypeArray:
		item, err := GoType(s.Items)
		if err != nil {
			return "", fmt.Errorf("array items: %w", err)
		}
		return "[]" + item, nil
	case openapi3.TypeObject:
		if openapi_schema.IsFreeFormObject(s) {
			return "map[string]any", nil
		}
		return "", fmt.Errorf("inline object schemas need a component")
	}
	return "", fmt.Errorf("unsupported schema type %q", openapi_schema.GetSchemaType(s))
}

func argName(wire string) string {
	name := openapi_schema.LowerGoName(wire)
	if token.IsKeyword(name) {
		return name + "Value"
	}
	return name
}

// firstSentence keeps the text up to the first full stop.
func firstSentence(s string) string {
	s = strings.TrimSpace(s)
	if i := strings.Index(s, ". "); i >= 0 {
		return s[:i+1]
	}
	return s
}

// splitWords turns "ListValues" into "List Values".
func splitWords(name string) string {
	var b strings.Builder
	for i, r := range name {
		if i > 0 && r >= 'A' && r <= 'Z' {
			b.WriteByte(' ')
		}
		b.WriteRune(r)
	}
	return b.String()
}

func render(tmpl *template.Template, f *File) ([]byte, error) {
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, f); err != nil {
		return nil, err
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format generated source: %w\n%s", err, buf.String())
	}
	return src, nil
}
