package assistantv1

import (
	"context"
	"errors"
	"net/http"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

// DefaultServiceURL is used when the config carries no URL.
const DefaultServiceURL = "https://gateway.watsonplatform.net/assistant/api"

// Service is the Assistant v1 client.
type Service struct {
	Session core.RESTSession
}

// NewService validates config, filling in defaults, and opens a session.
func NewService(config *core.ServiceConfig) (*Service, error) {
	if config == nil {
		return nil, errors.New("assistantv1: config cannot be nil")
	}
	if err := config.ValidateE(core.DefaultValidators(DefaultServiceURL)...); err != nil {
		return nil, err
	}
	session, err := core.NewSession(config)
	if err != nil {
		return nil, err
	}
	return &Service{Session: session}, nil
}

// NewServiceWithSession wraps an existing session, e.g. one shared with another service version.
func NewServiceWithSession(session core.RESTSession) *Service {
	return &Service{Session: session}
}

func (s *Service) invoke(ctx context.Context, opts *core.Options, headers []http.Header, result any) error {
	return s.Session.Invoke(ctx, opts, core.MergeHeaders(headers...), result)
}
