package assistantv1

import (
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/watson-developer-cloud/assistant-go-sdk/openapi_schema"
)

func TestOperationsMatchDefinition(t *testing.T) {
	infos, err := openapi_schema.Operations(openapi_schema.AssistantV1)
	if err != nil {
		t.Fatalf("Operations() error = %v", err)
	}
	generated := Operations()
	if len(generated) != len(infos) {
		t.Fatalf("%d generated operations, definition has %d", len(generated), len(infos))
	}
	for _, op := range generated {
		want, err := openapi_schema.Descriptor(openapi_schema.AssistantV1, op.ID)
		if err != nil {
			t.Errorf("%s: %v", op.ID, err)
			continue
		}
		if diff := cmp.Diff(want, op); diff != "" {
			t.Errorf("%s is stale, run go generate (-definition +generated):\n%s", op.ID, diff)
		}
	}
}

// jsonFields returns the json names of a struct and which of them are required.
func jsonFields(typ reflect.Type) (names []string, required []string) {
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		names = append(names, name)
		if f.Tag.Get("required") == "true" {
			required = append(required, name)
		}
	}
	sort.Strings(names)
	sort.Strings(required)
	return names, required
}

func TestModelsMatchComponents(t *testing.T) {
	models := []any{
		CreateWorkspace{}, UpdateWorkspace{}, Workspace{}, WorkspaceCollection{},
		CreateIntent{}, Intent{}, IntentCollection{}, Example{},
		CreateEntity{}, Entity{}, EntityCollection{},
		CreateValue{}, UpdateValue{}, Value{}, ValueCollection{},
		Synonym{}, SynonymCollection{},
		MessageInput{}, MessageRequest{}, RuntimeIntent{}, RuntimeEntity{}, MessageResponse{},
		Log{}, LogPagination{}, LogCollection{}, Pagination{},
	}
	for _, model := range models {
		typ := reflect.TypeOf(model)
		ref, err := openapi_schema.ComponentSchema(openapi_schema.AssistantV1, typ.Name())
		if err != nil {
			t.Errorf("%s: %v", typ.Name(), err)
			continue
		}
		wantNames := openapi_schema.PropertyNames(ref.Value)
		sort.Strings(wantNames)
		wantRequired := append([]string(nil), ref.Value.Required...)
		sort.Strings(wantRequired)

		names, required := jsonFields(typ)
		if diff := cmp.Diff(wantNames, names); diff != "" {
			t.Errorf("%s properties mismatch (-component +model):\n%s", typ.Name(), diff)
		}
		if diff := cmp.Diff(wantRequired, required, cmpopts.EquateEmpty()); diff != "" {
			t.Errorf("%s required mismatch (-component +model):\n%s", typ.Name(), diff)
		}
	}
}
