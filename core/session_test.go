package core

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

type capturedRequest struct {
	Method string
	Path   string
	Query  map[string][]string
	Body   map[string]any
	Header http.Header
}

// newCaptureServer records the last request and answers with status and body.
func newCaptureServer(t *testing.T, status int, body string) (*httptest.Server, *capturedRequest) {
	t.Helper()
	captured := &capturedRequest{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured.Method = r.Method
		captured.Path = r.URL.EscapedPath()
		captured.Query = r.URL.Query()
		captured.Header = r.Header.Clone()
		captured.Body = nil
		if raw, _ := io.ReadAll(r.Body); len(raw) > 0 {
			_ = json.Unmarshal(raw, &captured.Body)
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(body))
	}))
	t.Cleanup(server.Close)
	return server, captured
}

func newTestSession(t *testing.T, url string) *Session {
	t.Helper()
	timeout := 5 * time.Second
	session, err := NewSession(&ServiceConfig{
		URL:      url,
		Version:  "2018-07-10",
		Username: "user",
		Password: "pass",
		Timeout:  &timeout,
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	return session
}

var testCreateValueOp = &Operation{
	ID:     "createValue",
	Method: http.MethodPost,
	Path:   "/v1/workspaces/{workspace_id}/entities/{entity}/values",
	Fields: []Field{
		{Name: "workspaceId", Wire: "workspace_id", In: InPath, Required: true},
		{Name: "entity", Wire: "entity", In: InPath, Required: true},
		{Name: "value", Wire: "value", In: InBody, Required: true},
		{Name: "synonyms", Wire: "synonyms", In: InBody},
		{Name: "metadata", Wire: "metadata", In: InBody},
	},
}

func TestSession_RequestMapsQueryFields(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusOK, `{"values": [{"value": "red"}], "pagination": {"refresh_url": "/x"}}`)
	session := newTestSession(t, server.URL+"/api")

	opts, err := NewBuilder(testValuesOp).
		Set("workspace_id", "ws-123").
		Set("entity", "color").
		Set("page_limit", int64(10)).
		Set("sort", "-name").
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	response, err := session.Request(context.Background(), opts, nil)
	if err != nil {
		t.Fatalf("Request() error = %v", err)
	}
	if captured.Method != http.MethodGet {
		t.Errorf("method = %s", captured.Method)
	}
	if captured.Path != "/api/v1/workspaces/ws-123/entities/color/values" {
		t.Errorf("path = %s", captured.Path)
	}
	wantQuery := map[string][]string{
		"page_limit": {"10"},
		"sort":       {"-name"},
		"version":    {"2018-07-10"},
	}
	if diff := cmp.Diff(wantQuery, captured.Query); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	if captured.Body != nil {
		t.Errorf("GET sent a body: %v", captured.Body)
	}
	if captured.Header.Get(HeaderContentType) != "" {
		t.Errorf("GET sent Content-Type %q", captured.Header.Get(HeaderContentType))
	}
	rec, ok := response.(Record)
	if !ok || rec[ResourceTypeKey] != "listValues" {
		t.Errorf("response = %#v", response)
	}
}

func TestSession_InvokeMapsBodyFields(t *testing.T) {
	server, captured := newCaptureServer(t, http.StatusCreated, `{"value": "red", "type": "synonyms", "synonyms": ["crimson"]}`)
	session := newTestSession(t, server.URL)

	opts, err := NewBuilder(testCreateValueOp).
		Set("workspace_id", "ws-123").
		Set("entity", "color").
		Set("value", "red").
		Set("synonyms", []string{"crimson"}).
		Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}

	var result testValue
	if err := session.Invoke(context.Background(), opts, http.Header{"X-Watson-Test": {"1"}}, &result); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	wantBody := map[string]any{"value": "red", "synonyms": []any{"crimson"}}
	if diff := cmp.Diff(wantBody, captured.Body); diff != "" {
		t.Errorf("body mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff(map[string][]string{"version": {"2018-07-10"}}, captured.Query); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
	if captured.Header.Get(HeaderContentType) != ContentTypeJSON {
		t.Errorf("Content-Type = %q", captured.Header.Get(HeaderContentType))
	}
	if captured.Header.Get(HeaderWatsonTest) != "1" {
		t.Error("per-call header not sent")
	}
	if captured.Header.Get(HeaderAuthorization) == "" {
		t.Error("Authorization header not sent")
	}
	if diff := cmp.Diff(testValue{Value: "red", Type: "synonyms", Synonyms: []string{"crimson"}}, result); diff != "" {
		t.Errorf("result mismatch (-want +got):\n%s", diff)
	}
}

func TestSession_ApiError(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusNotFound, `{"error": "Resource not found", "code": 404}`)
	session := newTestSession(t, server.URL)

	opts, _ := NewBuilder(testValuesOp).Set("workspace_id", "nope").Set("entity", "color").Build()
	err := session.Invoke(context.Background(), opts, nil, nil)
	if !IsNotFoundErr(err) {
		t.Fatalf("Invoke() error = %v, want 404", err)
	}
	if apiErr := err.(*ApiError); apiErr.Message != "Resource not found" {
		t.Errorf("Message = %q", apiErr.Message)
	}
}

func TestSession_NilOptions(t *testing.T) {
	session := newTestSession(t, "https://example.com")
	_, err := session.Request(context.Background(), nil, nil)
	if !IsValidationErr(err) {
		t.Errorf("Request(nil) error = %v, want ValidationError", err)
	}
}

func TestSession_ReauthorizesOn401(t *testing.T) {
	var tokenCalls, apiCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/identity/token" {
			n := atomic.AddInt32(&tokenCalls, 1)
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": map[int32]string{1: "stale", 2: "fresh"}[n],
				"expires_in":   3600,
				"expiration":   time.Now().Unix() + 3600,
			})
			return
		}
		atomic.AddInt32(&apiCalls, 1)
		if r.Header.Get(HeaderAuthorization) != "Bearer fresh" {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"error": "Unauthorized"}`))
			return
		}
		w.Write([]byte(`{"session_id": "s-1"}`))
	}))
	defer server.Close()

	session, err := NewSession(&ServiceConfig{
		URL:       server.URL,
		Version:   "2018-09-20",
		IAMApiKey: "key",
		IAMURL:    server.URL + "/identity/token",
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	op := &Operation{ID: "createSession", Method: http.MethodPost, Path: "/v2/assistants/{assistant_id}/sessions", Fields: []Field{
		{Name: "assistantId", Wire: "assistant_id", In: InPath, Required: true},
	}}
	opts, _ := NewBuilder(op).Set("assistant_id", "a-1").Build()

	var result struct {
		SessionID string `json:"session_id"`
	}
	if err := session.Invoke(context.Background(), opts, nil, &result); err != nil {
		t.Fatalf("Invoke() error = %v", err)
	}
	if result.SessionID != "s-1" {
		t.Errorf("session_id = %q", result.SessionID)
	}
	if tokenCalls != 2 || apiCalls != 2 {
		t.Errorf("token calls = %d, api calls = %d, want 2 and 2", tokenCalls, apiCalls)
	}
}

func TestSession_PersistentUnauthorizedRetriesOnce(t *testing.T) {
	var tokenCalls, apiCalls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/identity/token" {
			atomic.AddInt32(&tokenCalls, 1)
			json.NewEncoder(w).Encode(map[string]any{
				"access_token": "revoked",
				"expires_in":   3600,
				"expiration":   time.Now().Unix() + 3600,
			})
			return
		}
		atomic.AddInt32(&apiCalls, 1)
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error": "Unauthorized"}`))
	}))
	defer server.Close()

	session, err := NewSession(&ServiceConfig{
		URL:       server.URL,
		Version:   "2018-09-20",
		IAMApiKey: "key",
		IAMURL:    server.URL + "/identity/token",
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	opts, _ := NewBuilder(testValuesOp).Set("workspace_id", "ws").Set("entity", "e").Build()
	err = session.Invoke(context.Background(), opts, nil, nil)
	if !ExpectStatusCodes(err, http.StatusUnauthorized) {
		t.Fatalf("Invoke() error = %v, want 401", err)
	}
	if apiCalls != 2 || tokenCalls != 2 {
		t.Errorf("api calls = %d, token calls = %d, want 2 and 2", apiCalls, tokenCalls)
	}
}

func TestSession_BasicAuthDoesNotRetry(t *testing.T) {
	var calls int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	session := newTestSession(t, server.URL)
	opts, _ := NewBuilder(testValuesOp).Set("workspace_id", "ws").Set("entity", "e").Build()
	err := session.Invoke(context.Background(), opts, nil, nil)
	if !ExpectStatusCodes(err, http.StatusUnauthorized) {
		t.Fatalf("Invoke() error = %v, want 401", err)
	}
	if calls != 1 {
		t.Errorf("calls = %d, want 1", calls)
	}
}

func TestSession_FillFnStaysWithItsSession(t *testing.T) {
	server, _ := newCaptureServer(t, http.StatusOK, `{"value": "red", "type": "synonyms"}`)
	var customCalls int32
	timeout := 5 * time.Second
	custom, err := NewSession(&ServiceConfig{
		URL:      server.URL,
		Version:  "2018-07-10",
		Username: "user",
		Password: "pass",
		Timeout:  &timeout,
		FillFn: func(r Record, container any) error {
			atomic.AddInt32(&customCalls, 1)
			container.(*testValue).Value = "from custom fill"
			return nil
		},
	})
	if err != nil {
		t.Fatalf("NewSession() error = %v", err)
	}
	plain := newTestSession(t, server.URL)
	opts, _ := NewBuilder(testValuesOp).Set("workspace_id", "ws").Set("entity", "color").Build()

	var fromCustom, fromPlain testValue
	if err := custom.Invoke(context.Background(), opts, nil, &fromCustom); err != nil {
		t.Fatalf("custom Invoke() error = %v", err)
	}
	if err := plain.Invoke(context.Background(), opts, nil, &fromPlain); err != nil {
		t.Fatalf("plain Invoke() error = %v", err)
	}
	if fromCustom.Value != "from custom fill" || customCalls != 1 {
		t.Errorf("custom session filled %+v with %d calls", fromCustom, customCalls)
	}
	if diff := cmp.Diff(testValue{Value: "red", Type: "synonyms"}, fromPlain); diff != "" {
		t.Errorf("plain session result mismatch (-want +got):\n%s", diff)
	}
}

func TestNewSession_Errors(t *testing.T) {
	if _, err := NewSession(&ServiceConfig{URL: "https://example.com"}); err == nil {
		t.Error("NewSession() without credentials should fail")
	}
	session := newTestSession(t, "https://example.com")
	if session.GetConfig().UserAgent == "" {
		t.Error("NewSession() did not fill the User-Agent")
	}
	if session.GetAuthenticator() == nil {
		t.Error("NewSession() did not create an authenticator")
	}
}
