package rest

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/watson-developer-cloud/assistant-go-sdk/assistantv1"
	"github.com/watson-developer-cloud/assistant-go-sdk/core"
	"github.com/watson-developer-cloud/assistant-go-sdk/openapi_schema"
)

func newClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	timeout := 5 * time.Second
	client, err := NewClient(&core.ServiceConfig{
		URL:       server.URL,
		Version:   "2018-07-10",
		IAMApiKey: "key",
		IAMURL:    server.URL + "/identity/token",
		Timeout:   &timeout,
	})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	return client
}

func TestOptions(t *testing.T) {
	opts, err := Options(openapi_schema.AssistantV1, "listValues", core.Params{
		"workspace_id": "ws-123",
		"entity":       "color",
		"page_limit":   int64(10),
	})
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	typed, err := assistantv1.NewListValuesOptionsBuilder("ws-123", "color").PageLimit(10).Build()
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(typed.Options().Values(), opts.Values()); diff != "" {
		t.Errorf("Options() mismatch (-typed +untyped):\n%s", diff)
	}

	if _, err := Options(openapi_schema.AssistantV1, "listValues", core.Params{"entity": "color"}); err == nil ||
		err.Error() != "listValues: workspaceId cannot be empty" {
		t.Errorf("Options() error = %v", err)
	}
	if _, err := Options(openapi_schema.AssistantV1, "listValues", core.Params{
		"workspace_id": "ws", "entity": "color", "zeta": 1, "alpha": 2,
	}); !core.IsValidationErr(err) || err.(*core.ValidationError).Field != "alpha" {
		t.Errorf("Options() error = %v, want alpha rejected", err)
	}
	if _, err := Options(openapi_schema.AssistantV2, "listValues", nil); !core.IsNotFoundErr(err) {
		t.Errorf("Options() error = %v, want v1 operation not found in v2", err)
	}

	params := core.Params{"workspace_id": "ws-123", "entity": "color", "version": "2017-05-26"}
	withVersion, err := Options(openapi_schema.AssistantV1, "listValues", params)
	if err != nil {
		t.Fatalf("Options() error = %v", err)
	}
	if withVersion.IsSet("version") {
		t.Error("Options() kept the version parameter")
	}
	if _, ok := params["version"]; !ok {
		t.Error("Options() modified the caller's params")
	}
}

func TestClientSharesSession(t *testing.T) {
	var paths []string
	client := newClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/identity/token" {
			io.WriteString(w, `{"access_token": "t", "expires_in": 3600, "expiration": 4102444800}`)
			return
		}
		paths = append(paths, r.Method+" "+r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/v2/assistants/a-1/sessions":
			io.WriteString(w, `{"session_id": "s-1"}`)
		default:
			io.WriteString(w, `{"workspaces": [{"name": "demo", "language": "en", "workspace_id": "ws-1", "learning_opt_out": false}], "pagination": {"refresh_url": "/r"}}`)
		}
	})
	ctx := context.Background()

	listOpts, _ := assistantv1.NewListWorkspacesOptionsBuilder().Build()
	workspaces, err := client.V1.ListWorkspaces(ctx, listOpts)
	if err != nil {
		t.Fatalf("ListWorkspaces() error = %v", err)
	}
	if len(workspaces.Workspaces) != 1 || workspaces.Workspaces[0].WorkspaceID != "ws-1" {
		t.Errorf("Workspaces = %+v", workspaces.Workspaces)
	}

	result, err := client.Call(ctx, openapi_schema.AssistantV2, "createSession", core.Params{"assistant_id": "a-1"})
	if err != nil {
		t.Fatalf("Call() error = %v", err)
	}
	record, ok := result.(core.Record)
	if !ok || record["session_id"] != "s-1" {
		t.Errorf("Call() = %#v", result)
	}
	if diff := cmp.Diff([]string{"GET /v1/workspaces", "POST /v2/assistants/a-1/sessions"}, paths); diff != "" {
		t.Errorf("requests mismatch (-want +got):\n%s", diff)
	}
	if client.V1.Session != client.V2.Session {
		t.Error("services do not share the session")
	}
}
