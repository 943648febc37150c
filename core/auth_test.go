package core

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// newIAMTestServer answers token requests with a token named after the call count.
func newIAMTestServer(t *testing.T, calls *int32, expiresIn int64) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if r.Form.Get("grant_type") != iamGrantType || r.Form.Get("apikey") != "test-key" {
			w.WriteHeader(http.StatusBadRequest)
			w.Write([]byte(`{"errorMessage": "Provided API key could not be found"}`))
			return
		}
		n := atomic.AddInt32(calls, 1)
		now := time.Now().Unix()
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]any{
			"access_token":  "token-" + string(rune('0'+n)),
			"refresh_token": "refresh",
			"token_type":    "Bearer",
			"expires_in":    expiresIn,
			"expiration":    now + expiresIn,
		})
	}))
}

func TestIAMAuthenticatorCachesToken(t *testing.T) {
	var calls int32
	server := newIAMTestServer(t, &calls, 3600)
	defer server.Close()

	auth := newIAMAuthenticator("test-key", server.URL, server.Client())

	// Verify no token request has been made on creation
	if count := atomic.LoadInt32(&calls); count != 0 {
		t.Errorf("Expected 0 token calls after creation, got %d", count)
	}

	for i := 0; i < 3; i++ {
		if err := auth.prepare(context.Background()); err != nil {
			t.Fatalf("prepare() error = %v", err)
		}
	}
	if count := atomic.LoadInt32(&calls); count != 1 {
		t.Errorf("Expected 1 token call, got %d", count)
	}

	headers := http.Header{}
	auth.setAuthHeader(&headers)
	if got := headers.Get(HeaderAuthorization); got != "Bearer token-1" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer token-1")
	}
}

func TestIAMAuthenticatorRefreshesStaleToken(t *testing.T) {
	var calls int32
	server := newIAMTestServer(t, &calls, 3600)
	defer server.Close()

	auth := newIAMAuthenticator("test-key", server.URL, server.Client())
	if err := auth.prepare(context.Background()); err != nil {
		t.Fatalf("prepare() error = %v", err)
	}

	// 50 minutes in, past the 80% mark of a one hour token
	auth.now = func() time.Time { return time.Now().Add(50 * time.Minute) }
	if err := auth.prepare(context.Background()); err != nil {
		t.Fatalf("prepare() error = %v", err)
	}
	if count := atomic.LoadInt32(&calls); count != 2 {
		t.Errorf("Expected 2 token calls, got %d", count)
	}
	headers := http.Header{}
	auth.setAuthHeader(&headers)
	if got := headers.Get(HeaderAuthorization); got != "Bearer token-2" {
		t.Errorf("Authorization = %q, want refreshed token", got)
	}
}

func TestIAMAuthenticatorInvalidate(t *testing.T) {
	var calls int32
	server := newIAMTestServer(t, &calls, 3600)
	defer server.Close()

	auth := newIAMAuthenticator("test-key", server.URL, server.Client())
	if !auth.refreshable() {
		t.Error("IAM authenticator should be refreshable")
	}
	_ = auth.prepare(context.Background())
	auth.invalidate()

	headers := http.Header{}
	auth.setAuthHeader(&headers)
	if got := headers.Get(HeaderAuthorization); got != "" {
		t.Errorf("Authorization = %q after invalidate, want empty", got)
	}
	_ = auth.prepare(context.Background())
	if count := atomic.LoadInt32(&calls); count != 2 {
		t.Errorf("Expected 2 token calls after invalidate, got %d", count)
	}
}

func TestIAMAuthenticatorRejectedKey(t *testing.T) {
	var calls int32
	server := newIAMTestServer(t, &calls, 3600)
	defer server.Close()

	auth := newIAMAuthenticator("wrong-key", server.URL, server.Client())
	err := auth.prepare(context.Background())
	if !ExpectStatusCodes(err, http.StatusBadRequest) {
		t.Fatalf("prepare() error = %v, want 400 ApiError", err)
	}
	apiErr := err.(*ApiError)
	if apiErr.Message != "Provided API key could not be found" {
		t.Errorf("ApiError.Message = %q", apiErr.Message)
	}
}

func TestIAMAuthenticatorDefaultURL(t *testing.T) {
	auth := newIAMAuthenticator("key", "", nil)
	if auth.URL != DefaultIAMURL {
		t.Errorf("URL = %q, want %q", auth.URL, DefaultIAMURL)
	}
	if auth.client == nil {
		t.Error("client should default to a new http.Client")
	}
}

func TestConcurrentIAMPrepare(t *testing.T) {
	var calls int32
	server := newIAMTestServer(t, &calls, 3600)
	defer server.Close()

	auth := newIAMAuthenticator("test-key", server.URL, server.Client())

	const numGoroutines = 10
	var wg sync.WaitGroup
	errs := make(chan error, numGoroutines)
	for i := 0; i < numGoroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			errs <- auth.prepare(context.Background())
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		if err != nil {
			t.Errorf("prepare() error = %v", err)
		}
	}
	if count := atomic.LoadInt32(&calls); count != 1 {
		t.Errorf("Expected a single token call for concurrent prepare, got %d", count)
	}
}

func TestBasicAuthenticator(t *testing.T) {
	auth := &BasicAuthenticator{Username: "user", Password: "pass"}
	if err := auth.prepare(context.Background()); err != nil {
		t.Fatalf("prepare() error = %v", err)
	}
	headers := http.Header{}
	headers.Set(HeaderAuthorization, "stale")
	auth.setAuthHeader(&headers)

	want := "Basic " + base64.StdEncoding.EncodeToString([]byte("user:pass"))
	if got := headers.Values(HeaderAuthorization); len(got) != 1 || got[0] != want {
		t.Errorf("Authorization = %v, want [%q]", got, want)
	}
	if auth.refreshable() {
		t.Error("basic authenticator should not be refreshable")
	}
}

func TestBearerTokenAuthenticator(t *testing.T) {
	auth := &BearerTokenAuthenticator{Token: "abc"}
	headers := http.Header{}
	auth.setAuthHeader(&headers)
	if got := headers.Get(HeaderAuthorization); got != "Bearer abc" {
		t.Errorf("Authorization = %q, want %q", got, "Bearer abc")
	}
	auth.invalidate()
	if auth.Token != "abc" {
		t.Error("invalidate() should keep caller-owned token")
	}
}

func TestCreateAuthenticator(t *testing.T) {
	tests := []struct {
		name    string
		config  *ServiceConfig
		want    string
		wantErr bool
	}{
		{name: "bearer wins", config: &ServiceConfig{BearerToken: "t", IAMApiKey: "k", Username: "u", Password: "p"}, want: "*core.BearerTokenAuthenticator"},
		{name: "iam api key", config: &ServiceConfig{IAMApiKey: "k", Username: "u", Password: "p"}, want: "*core.IAMAuthenticator"},
		{name: "apikey username", config: &ServiceConfig{Username: "apikey", Password: "k"}, want: "*core.IAMAuthenticator"},
		{name: "basic", config: &ServiceConfig{Username: "u", Password: "p"}, want: "*core.BasicAuthenticator"},
		{name: "nothing", config: &ServiceConfig{}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth, err := createAuthenticator(tt.config, nil)
			if (err != nil) != tt.wantErr {
				t.Fatalf("createAuthenticator() error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}
			if got := fmt.Sprintf("%T", auth); got != tt.want {
				t.Errorf("createAuthenticator() = %s, want %s", got, tt.want)
			}
		})
	}

	auth, _ := createAuthenticator(&ServiceConfig{Username: "apikey", Password: "secret"}, nil)
	if iam := auth.(*IAMAuthenticator); iam.ApiKey != "secret" {
		t.Errorf("apikey username should use the password as API key, got %q", iam.ApiKey)
	}
}
