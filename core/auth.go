package core

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"strings"
	"sync"
	"time"
)

type Authenticator interface {
	// prepare makes sure credentials are ready to be attached to a request.
	prepare(ctx context.Context) error
	setAuthHeader(headers *http.Header)
	// invalidate drops cached credentials after the service rejected them.
	invalidate()
	// refreshable reports whether invalidate followed by prepare can yield new credentials.
	refreshable() bool
}

// createAuthenticator creates a new Authenticator instance based on the provided ServiceConfig.
// Priority: BearerToken > IAMApiKey > "apikey" username > basic auth.
func createAuthenticator(config *ServiceConfig, client *http.Client) (Authenticator, error) {
	switch {
	case config.BearerToken != "":
		return &BearerTokenAuthenticator{Token: config.BearerToken}, nil
	case config.IAMApiKey != "":
		return newIAMAuthenticator(config.IAMApiKey, config.IAMURL, client), nil
	case config.Username == iamApiKeyUsername && config.Password != "":
		return newIAMAuthenticator(config.Password, config.IAMURL, client), nil
	case config.Username != "" && config.Password != "":
		auth := &BasicAuthenticator{Username: config.Username, Password: config.Password}
		auth.encode()
		return auth, nil
	}
	return nil, fmt.Errorf("createAuthenticator: neither username/password, iam api key nor bearer token are provided")
}

//  ######################################################
//              BASIC AUTH
//  ######################################################

type BasicAuthenticator struct {
	Username    string
	Password    string
	encodedAuth string // Cached Base64-encoded credentials
}

func (auth *BasicAuthenticator) encode() {
	authStr := auth.Username + ":" + auth.Password
	auth.encodedAuth = base64.StdEncoding.EncodeToString([]byte(authStr))
}

func (auth *BasicAuthenticator) prepare(_ context.Context) error {
	if auth.encodedAuth == "" {
		auth.encode()
	}
	return nil
}

func (auth *BasicAuthenticator) setAuthHeader(headers *http.Header) {
	headers.Set(HeaderAuthorization, AuthTypeBasic+" "+auth.encodedAuth)
}

func (auth *BasicAuthenticator) invalidate() {
	// No-op: static credentials
}

func (auth *BasicAuthenticator) refreshable() bool {
	return false
}

//  ######################################################
//              BEARER TOKEN
//  ######################################################

type BearerTokenAuthenticator struct {
	Token string
}

func (auth *BearerTokenAuthenticator) prepare(_ context.Context) error {
	return nil
}

func (auth *BearerTokenAuthenticator) setAuthHeader(headers *http.Header) {
	headers.Set(HeaderAuthorization, AuthTypeBearer+" "+auth.Token)
}

func (auth *BearerTokenAuthenticator) invalidate() {
	// No-op: the caller owns token lifecycle
}

func (auth *BearerTokenAuthenticator) refreshable() bool {
	return false
}

//  ######################################################
//              IAM
//  ######################################################

const iamGrantType = "urn:ibm:params:oauth:grant-type:apikey"

type iamToken struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	TokenType    string `json:"token_type"`
	ExpiresIn    int64  `json:"expires_in"`
	Expiration   int64  `json:"expiration"`
}

// refreshAt is the moment after which the token is considered stale,
// 80% into its lifetime.
func (t *iamToken) refreshAt() time.Time {
	return time.Unix(t.Expiration-t.ExpiresIn/5, 0)
}

// IAMAuthenticator exchanges an IBM Cloud API key for short-lived access tokens.
// It is safe for concurrent use.
type IAMAuthenticator struct {
	ApiKey string
	URL    string

	client *http.Client
	now    func() time.Time
	mu     sync.Mutex
	token  *iamToken
}

func newIAMAuthenticator(apiKey, iamURL string, client *http.Client) *IAMAuthenticator {
	if iamURL == "" {
		iamURL = DefaultIAMURL
	}
	if client == nil {
		client = &http.Client{Timeout: 20 * time.Second}
	}
	return &IAMAuthenticator{ApiKey: apiKey, URL: iamURL, client: client, now: time.Now}
}

func (auth *IAMAuthenticator) prepare(ctx context.Context) error {
	auth.mu.Lock()
	defer auth.mu.Unlock()
	if auth.token != nil && auth.now().Before(auth.token.refreshAt()) {
		return nil
	}
	token, err := auth.requestToken(ctx)
	if err != nil {
		return err
	}
	auth.token = token
	return nil
}

func (auth *IAMAuthenticator) requestToken(ctx context.Context) (*iamToken, error) {
	form := urlpkg.Values{}
	form.Set("grant_type", iamGrantType)
	form.Set("apikey", auth.ApiKey)
	form.Set("response_type", "cloud_iam")

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, auth.URL, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, err
	}
	req.Header.Set(HeaderContentType, ContentTypeFormURLEncoded)
	req.Header.Set(HeaderAccept, ContentTypeJSON)

	resp, err := auth.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request IAM token from %s: %w", auth.URL, err)
	}
	defer resp.Body.Close()
	if err = validateResponse(resp); err != nil {
		return nil, err
	}
	out, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	var token iamToken
	if err = json.Unmarshal(out, &token); err != nil {
		return nil, fmt.Errorf("failed to decode IAM token response: %w", err)
	}
	if token.AccessToken == "" {
		return nil, fmt.Errorf("IAM token response from %s has no access_token", auth.URL)
	}
	return &token, nil
}

func (auth *IAMAuthenticator) setAuthHeader(headers *http.Header) {
	auth.mu.Lock()
	defer auth.mu.Unlock()
	if auth.token != nil {
		headers.Set(HeaderAuthorization, AuthTypeBearer+" "+auth.token.AccessToken)
	}
}

func (auth *IAMAuthenticator) invalidate() {
	auth.mu.Lock()
	defer auth.mu.Unlock()
	auth.token = nil
}

func (auth *IAMAuthenticator) refreshable() bool {
	return true
}
