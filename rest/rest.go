// Package rest bundles the Assistant service clients over one session and
// exposes an untyped entry point that calls any operation by its id.
package rest

import (
	"context"
	"errors"
	"net/http"
	"sort"

	"github.com/watson-developer-cloud/assistant-go-sdk/assistantv1"
	"github.com/watson-developer-cloud/assistant-go-sdk/assistantv2"
	"github.com/watson-developer-cloud/assistant-go-sdk/core"
	"github.com/watson-developer-cloud/assistant-go-sdk/openapi_schema"
)

// Client shares one authenticated session between the v1 and v2 services.
type Client struct {
	Session core.RESTSession
	V1      *assistantv1.Service
	V2      *assistantv2.Service
}

func NewClient(config *core.ServiceConfig) (*Client, error) {
	if config == nil {
		return nil, errors.New("config cannot be nil")
	}
	if err := config.ValidateE(core.DefaultValidators(assistantv1.DefaultServiceURL)...); err != nil {
		return nil, err
	}
	session, err := core.NewSession(config)
	if err != nil {
		return nil, err
	}
	return NewClientWithSession(session), nil
}

func NewClientWithSession(session core.RESTSession) *Client {
	return &Client{
		Session: session,
		V1:      assistantv1.NewServiceWithSession(session),
		V2:      assistantv2.NewServiceWithSession(session),
	}
}

// Options builds the options of operationID from params keyed by wire name.
// Params that the operation does not declare are rejected, except "version",
// which the session always sends from the config and is dropped here.
func Options(api openapi_schema.API, operationID string, params core.Params) (*core.Options, error) {
	op, err := openapi_schema.Descriptor(api, operationID)
	if err != nil {
		return nil, err
	}
	values := core.Params{}
	values.Update(params, true)
	values.Without(core.VersionQueryParam)

	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	b := core.NewBuilder(op)
	for _, name := range names {
		b.Set(name, values[name])
	}
	return b.Build()
}

// Call performs operationID of api without typed options or models.
func (c *Client) Call(ctx context.Context, api openapi_schema.API, operationID string, params core.Params, headers ...http.Header) (core.Renderable, error) {
	opts, err := Options(api, operationID, params)
	if err != nil {
		return nil, err
	}
	return c.Session.Request(ctx, opts, core.MergeHeaders(headers...))
}
