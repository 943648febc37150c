package assistant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestNewClient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`{"error": "Invalid value"}`))
	}))
	defer server.Close()

	client, err := NewClient(&ServiceConfig{URL: server.URL, Version: "2018-07-10", Username: "u", Password: "p"})
	if err != nil {
		t.Fatalf("NewClient() error = %v", err)
	}
	_, err = client.Call(context.Background(), AssistantV1, "getWorkspace", Params{"workspace_id": "ws-1"})
	if !IsApiError(err) {
		t.Fatalf("Call() error = %v, want ApiError", err)
	}
	if apiErr := err.(*ApiError); apiErr.StatusCode != http.StatusBadRequest || apiErr.Message != "Invalid value" {
		t.Errorf("ApiError = %+v", apiErr)
	}

	_, err = client.Call(context.Background(), AssistantV1, "getWorkspace", nil)
	if !IsValidationErr(err) {
		t.Errorf("Call() error = %v, want ValidationError", err)
	}
}

func TestNewClientRequiresVersion(t *testing.T) {
	if _, err := NewClient(&ServiceConfig{Username: "u", Password: "p"}); err == nil {
		t.Error("NewClient() succeeded without a version date")
	}
}
