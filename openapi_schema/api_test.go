package openapi_schema

import (
	"net/http"
	"slices"
	"testing"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/google/go-cmp/cmp"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

func mustLoadDoc(t *testing.T, api API) *openapi3.T {
	t.Helper()
	doc, err := Load(api)
	if err != nil {
		t.Fatalf("failed to load OpenAPI doc: %v", err)
	}
	if doc == nil {
		t.Fatalf("openapi doc is nil")
	}
	return doc
}

func TestLoad(t *testing.T) {
	for _, api := range []API{AssistantV1, AssistantV2} {
		doc := mustLoadDoc(t, api)
		if doc.Components == nil || len(doc.Components.Schemas) == 0 {
			t.Errorf("%s: no component schemas", api)
		}
		again, _ := Load(api)
		if again != doc {
			t.Errorf("%s: document loaded twice", api)
		}
	}
	if _, err := Load("assistant-v9"); err == nil {
		t.Error("Load() accepted an unknown API")
	}
}

func TestListValuesDescriptor(t *testing.T) {
	op, err := Descriptor(AssistantV1, "listValues")
	if err != nil {
		t.Fatalf("Descriptor() error = %v", err)
	}
	want := &core.Operation{
		ID:     "listValues",
		Method: http.MethodGet,
		Path:   "/v1/workspaces/{workspace_id}/entities/{entity}/values",
		Fields: []core.Field{
			{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
			{Name: "entity", Wire: "entity", In: core.InPath, Required: true},
			{Name: "export", Wire: "export", In: core.InQuery},
			{Name: "pageLimit", Wire: "page_limit", In: core.InQuery},
			{Name: "includeCount", Wire: "include_count", In: core.InQuery},
			{Name: "sort", Wire: "sort", In: core.InQuery},
			{Name: "cursor", Wire: "cursor", In: core.InQuery},
			{Name: "includeAudit", Wire: "include_audit", In: core.InQuery},
		},
	}
	if diff := cmp.Diff(want, op); diff != "" {
		t.Errorf("Descriptor() mismatch (-want +got):\n%s", diff)
	}
}

func TestCreateValueBodyFields(t *testing.T) {
	info, err := Operation(AssistantV1, "createValue")
	if err != nil {
		t.Fatalf("Operation() error = %v", err)
	}
	if info.StatusCode != http.StatusCreated || info.Response != "Value" || info.Tag != "Values" {
		t.Errorf("Operation() = status %d, response %q, tag %q", info.StatusCode, info.Response, info.Tag)
	}
	if diff := cmp.Diff([]string{"workspace_id", "entity", "value"}, info.Operation.RequiredFields()); diff != "" {
		t.Errorf("RequiredFields() mismatch (-want +got):\n%s", diff)
	}
	var body []string
	for _, p := range info.Params {
		if p.Field.In == core.InBody {
			body = append(body, p.Field.Wire)
		}
	}
	if diff := cmp.Diff([]string{"metadata", "patterns", "synonyms", "type", "value"}, body); diff != "" {
		t.Errorf("body fields mismatch (-want +got):\n%s", diff)
	}
}

func TestDeleteHasNoResponse(t *testing.T) {
	info, err := Operation(AssistantV2, "deleteSession")
	if err != nil {
		t.Fatalf("Operation() error = %v", err)
	}
	if info.Response != "" || info.Operation.Method != http.MethodDelete {
		t.Errorf("deleteSession = %s response %q", info.Operation.Method, info.Response)
	}
}

func TestOperationsNeverExposeVersion(t *testing.T) {
	for _, api := range []API{AssistantV1, AssistantV2} {
		ops, err := Operations(api)
		if err != nil {
			t.Fatalf("Operations() error = %v", err)
		}
		if len(ops) == 0 {
			t.Fatalf("%s: no operations", api)
		}
		seen := map[string]bool{}
		for _, info := range ops {
			if seen[info.Operation.ID] {
				t.Errorf("%s: duplicate operation id %q", api, info.Operation.ID)
			}
			seen[info.Operation.ID] = true
			if _, ok := info.Operation.Field(versionParam); ok {
				t.Errorf("%s: %s exposes the version parameter", api, info.Operation.ID)
			}
			if len(info.Params) != len(info.Operation.Fields) {
				t.Errorf("%s: params and fields disagree", info.Operation.ID)
			}
		}
	}
}

func TestOperationNotFound(t *testing.T) {
	_, err := Operation(AssistantV2, "listWorkspaces")
	if !core.IsNotFoundErr(err) {
		t.Fatalf("Operation() error = %v, want NotFoundError", err)
	}
	if nfErr := err.(*core.NotFoundError); nfErr.Scope != string(AssistantV2) || !slices.Contains(nfErr.Available, "createSession") {
		t.Errorf("NotFoundError = %+v", nfErr)
	}
}

func TestComponentSchema(t *testing.T) {
	ref, err := ComponentSchema(AssistantV1, "#/components/schemas/Pagination")
	if err != nil {
		t.Fatalf("ComponentSchema() error = %v", err)
	}
	if !IsObject(ref.Value) {
		t.Error("Pagination is not an object")
	}
	if _, err := ComponentSchema(AssistantV1, "Nope"); !core.IsNotFoundErr(err) {
		t.Error("ComponentSchema() found a missing component")
	}
}

func TestNames(t *testing.T) {
	tests := []struct {
		in, field, goName, lower string
	}{
		{"workspace_id", "workspaceId", "WorkspaceID", "workspaceID"},
		{"page_limit", "pageLimit", "PageLimit", "pageLimit"},
		{"entity", "entity", "Entity", "entity"},
		{"id", "id", "ID", "id"},
		{"listValues", "listValues", "ListValues", "listValues"},
		{"next_url", "nextUrl", "NextURL", "nextURL"},
	}
	for _, tt := range tests {
		if got := FieldName(tt.in); got != tt.field {
			t.Errorf("FieldName(%q) = %q, want %q", tt.in, got, tt.field)
		}
		if got := GoName(tt.in); got != tt.goName {
			t.Errorf("GoName(%q) = %q, want %q", tt.in, got, tt.goName)
		}
		if got := LowerGoName(tt.in); got != tt.lower {
			t.Errorf("LowerGoName(%q) = %q, want %q", tt.in, got, tt.lower)
		}
	}
}
