package core

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	urlpkg "net/url"
	"runtime"
	"strings"
	"time"

	"go.uber.org/zap"
)

const (
	DefaultIAMURL = "https://iam.cloud.ibm.com/identity/token"
	// iamApiKeyUsername is the username Watson services accept when the password is an IAM API key.
	iamApiKeyUsername = "apikey"
)

// ServiceConfig represents the configuration required to create a service session.
type ServiceConfig struct {
	URL                    string         // Service endpoint, including the "/api" suffix of the instance.
	Version                string         // API version date (YYYY-MM-DD), sent as the "version" query parameter.
	Username               string         // The username for basic authentication (used with Password).
	Password               string         // The password for basic authentication, or an IAM API key when Username is "apikey".
	IAMApiKey              string         // Optional IAM API key (alternative to Username/Password).
	IAMURL                 string         // IAM token endpoint. Defaults to DefaultIAMURL.
	BearerToken            string         // Optional caller-managed access token. Takes precedence over every other credential.
	DisableSSLVerification bool           // Skip TLS certificate verification.
	Timeout                *time.Duration // HTTP client timeout. If nil, a default is applied by validators.
	MaxConnections         int            // Maximum number of concurrent HTTP connections per host.
	UserAgent              string         // Optional custom User-Agent header. If empty, a default is applied.
	DefaultHeaders         http.Header    // Headers added to every request; per-call headers override them.
	Logger                 *zap.Logger    // Request/response logger. If nil, one is built from ASSISTANT_LOG.

	// BeforeRequestFn is an optional function hook executed before an API request is sent.
	// It allows for request inspection, mutation, or logging.
	//
	// Parameters:
	//   - ctx: The request context for managing deadlines and cancellations.
	//   - r: Request object
	//   - verb: The HTTP method (e.g., GET, POST, PUT).
	//   - url: The target URL (path and query parameters).
	//   - body: The request body reader, typically containing JSON payload.
	//
	// Return:
	//   - error: Any error returned will abort the request.
	BeforeRequestFn func(ctx context.Context, r *http.Request, verb, url string, body io.Reader) error

	// AfterRequestFn is an optional function hook executed after receiving an API response.
	// It can be used for post-processing, transformation, or logging of the response.
	//
	// Returns:
	//   - A potentially modified Renderable object.
	//   - An error, if processing the response fails.
	AfterRequestFn func(ctx context.Context, response Renderable) (Renderable, error)

	// FillFn optionally overrides the default function used to populate
	// response models from generic Record maps, for this session only.
	FillFn FillFunc
}

// ServiceConfigFunc defines a function that can modify or validate a ServiceConfig.
type ServiceConfigFunc func(*ServiceConfig) error

// Validate applies the given validators to the config.
// Panics if any validator returns an error.
func (config *ServiceConfig) Validate(validators ...ServiceConfigFunc) {
	if err := config.ValidateE(validators...); err != nil {
		panic(err)
	}
}

// ValidateE applies the given validators and returns the first error.
func (config *ServiceConfig) ValidateE(validators ...ServiceConfigFunc) error {
	for _, fn := range validators {
		if err := fn(config); err != nil {
			return err
		}
	}
	return nil
}

// WithTimeout returns a ServiceConfigFunc that sets a default timeout if none is provided.
func WithTimeout(timeout time.Duration) ServiceConfigFunc {
	return func(config *ServiceConfig) error {
		if config.Timeout == nil {
			config.Timeout = &timeout
		}
		return nil
	}
}

// WithMaxConnections returns a ServiceConfigFunc that sets the maximum number of connections
// if not explicitly provided.
func WithMaxConnections(maxConnections int) ServiceConfigFunc {
	return func(config *ServiceConfig) error {
		if config.MaxConnections == 0 {
			config.MaxConnections = maxConnections
		}
		return nil
	}
}

// WithURL fills in defaultURL when no endpoint is configured and checks the
// result is an absolute http(s) URL. Trailing slashes are removed.
func WithURL(defaultURL string) ServiceConfigFunc {
	return func(config *ServiceConfig) error {
		if config.URL == "" {
			config.URL = defaultURL
		}
		if config.URL == "" {
			return errors.New("service URL cannot be empty")
		}
		u, err := urlpkg.Parse(config.URL)
		if err != nil {
			return fmt.Errorf("invalid service URL %q: %w", config.URL, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("invalid service URL %q: scheme must be http or https", config.URL)
		}
		if u.Host == "" {
			return fmt.Errorf("invalid service URL %q: host cannot be empty", config.URL)
		}
		config.URL = strings.TrimRight(config.URL, "/")
		return nil
	}
}

// WithVersionDate validates that Version is a well-formed YYYY-MM-DD date.
func WithVersionDate(config *ServiceConfig) error {
	if config.Version == "" {
		return errors.New("version cannot be empty")
	}
	_, err := ParseVersionDate(config.Version)
	return err
}

// WithAuth validates that some form of credentials is configured and fills
// in the IAM endpoint default.
func WithAuth(config *ServiceConfig) error {
	hasUserPass := config.Username != "" && config.Password != ""
	hasIAM := config.IAMApiKey != ""
	hasToken := config.BearerToken != ""
	if !hasUserPass && !hasIAM && !hasToken {
		return errors.New("either username/password, iam api key or bearer token must be provided")
	}
	if config.IAMURL == "" {
		config.IAMURL = DefaultIAMURL
	}
	return nil
}

// WithUserAgent sets a default User-Agent header if none is provided in the config.
func WithUserAgent(config *ServiceConfig) error {
	if config.UserAgent == "" {
		config.UserAgent = fmt.Sprintf(
			"%s,os:%s,arch:%s",
			fmt.Sprintf("watson-assistant-go-sdk-%s", ClientVersion()),
			runtime.GOOS,
			runtime.GOARCH,
		)
	}
	return nil
}

// WithLogger installs the environment-driven logger when none is provided.
func WithLogger(config *ServiceConfig) error {
	if config.Logger == nil {
		config.Logger = NewLogger()
	}
	return nil
}

// WithFillFn falls back to JSON round-tripping when no FillFn is provided.
// The function only applies to sessions built from this config.
func WithFillFn(config *ServiceConfig) error {
	if config.FillFn == nil {
		config.FillFn = defaultFill
	}
	return nil
}

// DefaultValidators returns the validator chain used by the service constructors.
func DefaultValidators(defaultURL string) []ServiceConfigFunc {
	return []ServiceConfigFunc{
		WithURL(defaultURL),
		WithVersionDate,
		WithAuth,
		WithUserAgent,
		WithTimeout(time.Second * 30),
		WithMaxConnections(10),
		WithLogger,
		WithFillFn,
	}
}
