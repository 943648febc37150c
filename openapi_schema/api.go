package openapi_schema

import (
	"embed"
	"fmt"
	"net/http"
	"sort"
	"strconv"
	"strings"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

// API names one of the embedded service definitions.
type API string

const (
	AssistantV1 API = "assistant-v1"
	AssistantV2 API = "assistant-v2"
)

// versionParam is sent by the session on every call and is not part of any options type.
const versionParam = "version"

var (
	//go:embed assistant-v1.json assistant-v2.json
	FS embed.FS

	docs = map[API]*loadedDoc{
		AssistantV1: {},
		AssistantV2: {},
	}
)

type loadedDoc struct {
	once sync.Once
	doc  *openapi3.T
	err  error
}

// Load parses the embedded OpenAPI document of api exactly once.
// Errors encountered during the first load are returned on every later call.
func Load(api API) (*openapi3.T, error) {
	entry, ok := docs[api]
	if !ok {
		return nil, fmt.Errorf("unknown API %q", api)
	}
	entry.once.Do(func() {
		data, err := FS.ReadFile(string(api) + ".json")
		if err != nil {
			entry.err = fmt.Errorf("read embedded %s.json: %w", api, err)
			return
		}
		loader := openapi3.NewLoader()
		entry.doc, entry.err = loader.LoadFromData(data)
	})
	return entry.doc, entry.err
}

// ParamInfo pairs a field descriptor with the schema it was read from.
type ParamInfo struct {
	Field       core.Field
	Description string
	Schema      *openapi3.SchemaRef
}

// OperationInfo is everything the definition says about one operation.
type OperationInfo struct {
	Operation  *core.Operation
	Tag        string
	Summary    string
	Params     []ParamInfo // same order as Operation.Fields
	Response   string      // component name of the success payload, empty when there is none
	StatusCode int
}

var methodOrder = map[string]int{
	http.MethodGet:    0,
	http.MethodPost:   1,
	http.MethodPut:    2,
	http.MethodPatch:  3,
	http.MethodDelete: 4,
}

// Operations returns every operation of api, ordered by path then method.
func Operations(api API) ([]*OperationInfo, error) {
	doc, err := Load(api)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	var out []*OperationInfo
	for path, item := range doc.Paths.Map() {
		for method, op := range item.Operations() {
			info, err := operationInfo(path, method, op)
			if err != nil {
				return nil, err
			}
			out = append(out, info)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		a, b := out[i].Operation, out[j].Operation
		if a.Path != b.Path {
			return a.Path < b.Path
		}
		return methodOrder[a.Method] < methodOrder[b.Method]
	})
	return out, nil
}

// Operation looks up a single operation by its id.
func Operation(api API, operationID string) (*OperationInfo, error) {
	ops, err := Operations(api)
	if err != nil {
		return nil, err
	}
	var available []string
	for _, info := range ops {
		if info.Operation.ID == operationID {
			return info, nil
		}
		available = append(available, info.Operation.ID)
	}
	return nil, &core.NotFoundError{Resource: "operation", Name: operationID, Scope: string(api), Available: available}
}

// Descriptor returns the field table of an operation.
func Descriptor(api API, operationID string) (*core.Operation, error) {
	info, err := Operation(api, operationID)
	if err != nil {
		return nil, err
	}
	return info.Operation, nil
}

func operationInfo(path, method string, op *openapi3.Operation) (*OperationInfo, error) {
	if op.OperationID == "" {
		return nil, fmt.Errorf("%s %s has no operationId", method, path)
	}
	info := &OperationInfo{
		Operation: &core.Operation{ID: op.OperationID, Method: strings.ToUpper(method), Path: path},
		Summary:   op.Summary,
	}
	if len(op.Tags) > 0 {
		info.Tag = op.Tags[0]
	}

	for _, ref := range op.Parameters {
		p := ref.Value
		if p == nil || p.Name == versionParam {
			continue
		}
		var in core.Location
		switch p.In {
		case openapi3.ParameterInPath:
			in = core.InPath
		case openapi3.ParameterInQuery:
			in = core.InQuery
		default:
			return nil, fmt.Errorf("%s: parameter %q in %s is not supported", op.OperationID, p.Name, p.In)
		}
		info.add(p.Name, in, p.Required || in == core.InPath, p.Description, p.Schema)
	}

	if body := requestBodySchema(op); body != nil {
		required := make(map[string]bool, len(body.Required))
		for _, name := range body.Required {
			required[name] = true
		}
		names := make([]string, 0, len(body.Properties))
		for name := range body.Properties {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			prop := body.Properties[name]
			var description string
			if prop.Value != nil {
				description = prop.Value.Description
			}
			info.add(name, core.InBody, required[name], description, prop)
		}
	}

	info.StatusCode, info.Response = successResponse(op)
	return info, nil
}

func (info *OperationInfo) add(wire string, in core.Location, required bool, description string, schema *openapi3.SchemaRef) {
	f := core.Field{Name: FieldName(wire), Wire: wire, In: in, Required: required}
	info.Operation.Fields = append(info.Operation.Fields, f)
	info.Params = append(info.Params, ParamInfo{Field: f, Description: description, Schema: schema})
}

func requestBodySchema(op *openapi3.Operation) *openapi3.Schema {
	if op.RequestBody == nil || op.RequestBody.Value == nil {
		return nil
	}
	media := op.RequestBody.Value.Content.Get(core.ContentTypeJSON)
	if media == nil || media.Schema == nil {
		return nil
	}
	return media.Schema.Value
}

// successResponse returns the lowest 2xx status and the component it carries.
func successResponse(op *openapi3.Operation) (int, string) {
	if op.Responses == nil {
		return http.StatusOK, ""
	}
	best := 0
	component := ""
	for code, ref := range op.Responses.Map() {
		status, err := strconv.Atoi(code)
		if err != nil || status < 200 || status > 299 {
			continue
		}
		if best != 0 && status > best {
			continue
		}
		best = status
		component = ""
		if ref.Value == nil {
			continue
		}
		if media := ref.Value.Content.Get(core.ContentTypeJSON); media != nil && media.Schema != nil {
			component = ComponentName(media.Schema.Ref)
		}
	}
	if best == 0 {
		best = http.StatusOK
	}
	return best, component
}

// ComponentSchema returns a schema of the components section by name.
func ComponentSchema(api API, name string) (*openapi3.SchemaRef, error) {
	doc, err := Load(api)
	if err != nil {
		return nil, fmt.Errorf("failed to load OpenAPI document: %w", err)
	}
	if doc.Components == nil {
		return nil, fmt.Errorf("OpenAPI document has no components defined")
	}
	schemaRef, ok := doc.Components.Schemas[ComponentName(name)]
	if !ok {
		return nil, &core.NotFoundError{Resource: "component schema", Name: name, Scope: string(api)}
	}
	return schemaRef, nil
}

// ComponentName strips the "#/components/schemas/" prefix of a reference.
func ComponentName(ref string) string {
	parts := strings.Split(ref, "/")
	return parts[len(parts)-1]
}
