package core

import (
	"bytes"
	"context"
	"crypto/tls"
	"fmt"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// maxAttempts bounds the calls made for one request: the first attempt and a
// single retry after re-authorization.
const maxAttempts int = 2

// RESTSession is the transport consumed by the service packages.
type RESTSession interface {
	Invoke(ctx context.Context, opts *Options, headers http.Header, result any) error
	Request(ctx context.Context, opts *Options, headers http.Header) (Renderable, error)
	GetConfig() *ServiceConfig
	GetAuthenticator() Authenticator
}

type Session struct {
	config       *ServiceConfig
	client       *http.Client
	auth         Authenticator
	interceptors []RequestInterceptor
}

// NewSession creates the HTTP client and authenticator for config.
// Missing transport defaults are filled in; credentials must already be present.
func NewSession(config *ServiceConfig) (*Session, error) {
	if err := config.ValidateE(WithTimeout(30*time.Second), WithMaxConnections(10), WithUserAgent, WithLogger, WithFillFn); err != nil {
		return nil, err
	}
	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.TLSClientConfig = &tls.Config{InsecureSkipVerify: config.DisableSSLVerification}
	transport.MaxConnsPerHost = config.MaxConnections
	client := &http.Client{Transport: transport, Timeout: *config.Timeout}
	authenticator, err := createAuthenticator(config, client)
	if err != nil {
		return nil, err
	}
	return &Session{
		config: config,
		client: client,
		auth:   authenticator,
	}, nil
}

// AddInterceptor registers an interceptor run on every request of this session.
func (s *Session) AddInterceptor(interceptor RequestInterceptor) {
	s.interceptors = append(s.interceptors, interceptor)
}

func (s *Session) GetConfig() *ServiceConfig {
	return s.config
}

func (s *Session) GetAuthenticator() Authenticator {
	return s.auth
}

func (s *Session) logger() *zap.Logger {
	if s.config.Logger == nil {
		return zap.NewNop()
	}
	return s.config.Logger
}

// Invoke performs the call described by opts and decodes the response into
// result (a pointer to a struct for object responses, or to a slice of
// structs for array responses). A nil result discards the body.
func (s *Session) Invoke(ctx context.Context, opts *Options, headers http.Header, result any) error {
	response, err := s.Request(ctx, opts, headers)
	if err != nil {
		return err
	}
	if result == nil {
		return nil
	}
	fill := s.config.FillFn
	if fill == nil {
		fill = defaultFill
	}
	switch typed := response.(type) {
	case Record:
		return typed.fillWith(fill, result)
	case RecordSet:
		return typed.fillWith(fill, result)
	}
	return fmt.Errorf("unexpected response type %T", response)
}

// Request maps opts onto an HTTP request: path fields expand the path
// template, supplied query fields and the version date form the query string,
// supplied body fields form the JSON payload. Unset optional fields are never sent.
func (s *Session) Request(ctx context.Context, opts *Options, headers http.Header) (Renderable, error) {
	if opts == nil {
		return nil, &ValidationError{Field: "options", Reason: "cannot be nil"}
	}
	if ctx == nil {
		ctx = context.Background()
	}
	op := opts.Operation()
	path, err := expandPath(op.Path, opts.PathParams())
	if err != nil {
		return nil, &ValidationError{Operation: op.ID, Field: "path", Reason: err.Error()}
	}
	query := opts.QueryParams()
	if s.config.Version != "" {
		query.Update(Params{VersionQueryParam: s.config.Version}, true)
	}
	url, err := buildUrl(s.config.URL, path, query.ToQuery())
	if err != nil {
		return nil, err
	}
	var body []byte
	if params := opts.BodyParams(); params != nil {
		if body, err = params.ToBody(); err != nil {
			return nil, fmt.Errorf("%s: failed to encode request body: %w", op.ID, err)
		}
	}
	return s.doRequestWithRetries(ctx, op, url, body, headers)
}

// consolidateHeaders merges config default headers, per-call overrides and
// the SDK defaults, in increasing order of precedence for the first two.
func (s *Session) consolidateHeaders(customHeaders http.Header, hasBody bool) http.Header {
	finalHeaders := make(http.Header)
	for key, values := range s.config.DefaultHeaders {
		finalHeaders[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	for key, values := range customHeaders {
		finalHeaders[http.CanonicalHeaderKey(key)] = append([]string(nil), values...)
	}
	if finalHeaders.Get(HeaderAccept) == "" {
		finalHeaders.Set(HeaderAccept, ContentTypeJSON)
	}
	if hasBody && finalHeaders.Get(HeaderContentType) == "" {
		finalHeaders.Set(HeaderContentType, ContentTypeJSON)
	}
	if finalHeaders.Get(HeaderUserAgent) == "" {
		finalHeaders.Set(HeaderUserAgent, s.config.UserAgent)
	}
	return finalHeaders
}

// doRequest Create and process the new HTTP request using the context
func (s *Session) doRequest(ctx context.Context, op *Operation, url string, body []byte, headers http.Header) (Renderable, error) {
	verb := strings.ToUpper(op.Method)
	if err := s.auth.prepare(ctx); err != nil {
		return nil, err
	}
	var requestData *bytes.Reader
	if body == nil {
		requestData = bytes.NewReader(nil)
	} else {
		requestData = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, verb, url, requestData)
	if err != nil {
		return nil, err
	}
	req.Header = s.consolidateHeaders(headers, body != nil)
	s.auth.setAuthHeader(&req.Header)

	if err = s.doBeforeRequest(ctx, req, verb, url, body); err != nil {
		return nil, err
	}
	response, responseErr := s.client.Do(req)
	if responseErr != nil {
		return nil, fmt.Errorf("failed to perform %s request to %s: %w", verb, url, responseErr)
	}
	if err = validateResponse(response); err != nil {
		response.Body.Close()
		return nil, err
	}
	result, err := unmarshalToRecordUnion(response)
	if err != nil {
		return nil, fmt.Errorf("%s: failed to decode response: %w", op.ID, err)
	}
	return s.doAfterRequest(ctx, op.ID, result)
}

// doRequestWithRetries performs the request. When a token-based
// authenticator gets a 401 the token is dropped and the request is sent once
// more; a second 401 is returned to the caller.
func (s *Session) doRequestWithRetries(ctx context.Context, op *Operation, url string, body []byte, headers http.Header) (Renderable, error) {
	var (
		err    error
		result Renderable
	)
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		result, err = s.doRequest(ctx, op, url, body, headers)
		if attempt == maxAttempts || !ExpectStatusCodes(err, http.StatusUnauthorized) || !s.auth.refreshable() {
			break
		}
		s.logger().Info("access token rejected, re-authorizing", zap.String("operation", op.ID), zap.Int("attempt", attempt))
		s.auth.invalidate()
	}
	return result, err
}
