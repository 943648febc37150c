package assistantv1

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

type recordedCall struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   map[string]any
}

func newTestService(t *testing.T, status int, response string) (*Service, *recordedCall) {
	t.Helper()
	call := &recordedCall{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		call.Method = r.Method
		call.Path = r.URL.EscapedPath()
		call.Query = r.URL.Query()
		call.Header = r.Header.Clone()
		call.Body = nil
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			if err := json.Unmarshal(raw, &call.Body); err != nil {
				t.Errorf("request body is not JSON: %s", raw)
			}
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		io.WriteString(w, response)
	}))
	t.Cleanup(server.Close)

	timeout := 5 * time.Second
	service, err := NewService(&core.ServiceConfig{
		URL:      server.URL + "/assistant/api",
		Version:  "2018-07-10",
		Username: "user",
		Password: "pass",
		Timeout:  &timeout,
	})
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	return service, call
}

func TestListValues_Request(t *testing.T) {
	service, call := newTestService(t, http.StatusOK, `{
		"values": [{"value": "red", "type": "synonyms", "synonyms": ["crimson"]}],
		"pagination": {"refresh_url": "/v1/x", "next_cursor": "n-1"}
	}`)
	opts, err := NewListValuesOptionsBuilder("ws-123", "color").PageLimit(10).Sort("-name").Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	values, err := service.ListValues(context.Background(), opts)
	if err != nil {
		t.Fatalf("ListValues() error = %v", err)
	}
	if call.Method != http.MethodGet {
		t.Errorf("method = %s", call.Method)
	}
	if want := "/assistant/api/v1/workspaces/ws-123/entities/color/values"; call.Path != want {
		t.Errorf("path = %q, want %q", call.Path, want)
	}
	wantQuery := url.Values{"version": {"2018-07-10"}, "page_limit": {"10"}, "sort": {"-name"}}
	if diff := cmp.Diff(wantQuery, call.Query); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	if call.Body != nil {
		t.Errorf("GET sent a body: %v", call.Body)
	}
	if len(values.Values) != 1 || values.Values[0].Value != "red" {
		t.Errorf("Values = %+v", values.Values)
	}
	if !values.Pagination.HasMore() || values.Pagination.NextCursor != "n-1" {
		t.Errorf("Pagination = %+v", values.Pagination)
	}
}

func TestPathValuesAreEscaped(t *testing.T) {
	service, call := newTestService(t, http.StatusOK, `{"value": "a/b", "type": "synonyms"}`)
	opts, _ := NewGetValueOptionsBuilder("ws-123", "color", "a/b").Build()
	if _, err := service.GetValue(context.Background(), opts); err != nil {
		t.Fatalf("GetValue() error = %v", err)
	}
	if want := "/assistant/api/v1/workspaces/ws-123/entities/color/values/a%2Fb"; call.Path != want {
		t.Errorf("path = %q, want %q", call.Path, want)
	}
}

func TestCreateValue_Request(t *testing.T) {
	service, call := newTestService(t, http.StatusCreated, `{
		"value": "red", "type": "synonyms", "synonyms": ["crimson"], "created": "2018-07-10T10:00:00Z"
	}`)
	opts, _ := NewCreateValueOptionsBuilder("ws-123", "color", "red").
		Synonyms([]string{"crimson"}).
		Type("synonyms").
		Build()

	value, err := service.CreateValue(context.Background(), opts, http.Header{core.HeaderWatsonTest: {"1"}})
	if err != nil {
		t.Fatalf("CreateValue() error = %v", err)
	}
	wantBody := map[string]any{"value": "red", "type": "synonyms", "synonyms": []any{"crimson"}}
	if diff := cmp.Diff(wantBody, call.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(url.Values{"version": {"2018-07-10"}}, call.Query); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	if call.Header.Get(core.HeaderWatsonTest) != "1" {
		t.Error("per-call header not sent")
	}
	if call.Header.Get(core.HeaderContentType) != core.ContentTypeJSON {
		t.Errorf("Content-Type = %q", call.Header.Get(core.HeaderContentType))
	}
	if value.Created == nil || !value.Created.Equal(time.Date(2018, 7, 10, 10, 0, 0, 0, time.UTC)) {
		t.Errorf("Created = %v", value.Created)
	}
}

func TestUpdateValue_RenamesThroughBody(t *testing.T) {
	service, call := newTestService(t, http.StatusOK, `{"value": "blue", "type": "synonyms"}`)
	opts, _ := NewUpdateValueOptionsBuilder("ws-123", "color", "red").NewValue("blue").Build()
	value, err := service.UpdateValue(context.Background(), opts)
	if err != nil {
		t.Fatalf("UpdateValue() error = %v", err)
	}
	if call.Method != http.MethodPost || call.Path != "/assistant/api/v1/workspaces/ws-123/entities/color/values/red" {
		t.Errorf("request = %s %s", call.Method, call.Path)
	}
	if diff := cmp.Diff(map[string]any{"new_value": "blue"}, call.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if value.Value != "blue" {
		t.Errorf("Value = %q", value.Value)
	}
}

func TestDeleteValue_NoPayload(t *testing.T) {
	service, call := newTestService(t, http.StatusOK, `{}`)
	opts, _ := NewDeleteValueOptionsBuilder("ws-123", "color", "red").Build()
	if err := service.DeleteValue(context.Background(), opts); err != nil {
		t.Fatalf("DeleteValue() error = %v", err)
	}
	if call.Method != http.MethodDelete {
		t.Errorf("method = %s", call.Method)
	}
}

func TestMessage_Request(t *testing.T) {
	service, call := newTestService(t, http.StatusOK, `{
		"input": {"text": "hi"},
		"intents": [{"intent": "greeting", "confidence": 0.97}],
		"entities": [],
		"context": {"conversation_id": "c-1"},
		"output": {"text": ["Hello!"]}
	}`)
	opts, _ := NewMessageOptionsBuilder("ws-123").Input(MessageInput{Text: "hi"}).NodesVisitedDetails(true).Build()

	response, err := service.Message(context.Background(), opts)
	if err != nil {
		t.Fatalf("Message() error = %v", err)
	}
	if call.Query.Get("nodes_visited_details") != "true" {
		t.Errorf("query = %v", call.Query)
	}
	if diff := cmp.Diff(map[string]any{"input": map[string]any{"text": "hi"}}, call.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if len(response.Intents) != 1 || response.Intents[0].Intent != "greeting" {
		t.Errorf("Intents = %+v", response.Intents)
	}
	if response.Context["conversation_id"] != "c-1" {
		t.Errorf("Context = %v", response.Context)
	}
}

func TestServiceErrors(t *testing.T) {
	service, _ := newTestService(t, http.StatusNotFound, `{"error": "Workspace not found", "code": 404}`)
	opts, _ := NewGetWorkspaceOptionsBuilder("missing").Build()
	_, err := service.GetWorkspace(context.Background(), opts)
	if !core.ExpectStatusCodes(err, http.StatusNotFound) {
		t.Fatalf("GetWorkspace() error = %v, want 404", err)
	}

	if _, err := service.ListValues(context.Background(), nil); !core.IsValidationErr(err) {
		t.Errorf("ListValues(nil) error = %v, want ValidationError", err)
	}
}

func TestNewService(t *testing.T) {
	if _, err := NewService(nil); err == nil {
		t.Error("NewService(nil) succeeded")
	}
	if _, err := NewService(&core.ServiceConfig{Version: "2018-07-10"}); err == nil {
		t.Error("NewService() succeeded without credentials")
	}
	config := &core.ServiceConfig{Version: "2018-07-10", IAMApiKey: "key"}
	service, err := NewService(config)
	if err != nil {
		t.Fatalf("NewService() error = %v", err)
	}
	if got := service.Session.GetConfig().URL; got != DefaultServiceURL {
		t.Errorf("URL = %q, want %q", got, DefaultServiceURL)
	}
}
