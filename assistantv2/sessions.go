package assistantv2

import (
	"context"
	"net/http"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

// -----------------------------------------------------
// CREATE SESSION
// -----------------------------------------------------

var createSessionOperation = &core.Operation{
	ID:     "createSession",
	Method: http.MethodPost,
	Path:   "/v2/assistants/{assistant_id}/sessions",
	Fields: []core.Field{
		{Name: "assistantId", Wire: "assistant_id", In: core.InPath, Required: true},
	},
}

// CreateSessionOperation returns a copy of the descriptor of POST /v2/assistants/{assistant_id}/sessions.
func CreateSessionOperation() *core.Operation {
	return createSessionOperation.Clone()
}

// CreateSessionOptions holds the parameters of a createSession call.
// It is immutable; build one with NewCreateSessionOptionsBuilder.
// The zero value holds no parameters.
type CreateSessionOptions struct {
	opts *core.Options
}

// CreateSessionOptionsBuilder stages CreateSessionOptions. The zero value is an empty builder.
type CreateSessionOptionsBuilder struct {
	b *core.Builder
}

// NewCreateSessionOptionsBuilder returns a builder with the required parameters set.
func NewCreateSessionOptionsBuilder(assistantID string) *CreateSessionOptionsBuilder {
	return new(CreateSessionOptionsBuilder).
		AssistantID(assistantID)
}

func (b *CreateSessionOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(createSessionOperation)
	}
	return b.b
}

// AssistantID sets assistant_id. Unique identifier of the assistant.
func (b *CreateSessionOptionsBuilder) AssistantID(assistantID string) *CreateSessionOptionsBuilder {
	b.builder().Set("assistant_id", assistantID)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *CreateSessionOptionsBuilder) Clear(wireNames ...string) *CreateSessionOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable CreateSessionOptions.
func (b *CreateSessionOptionsBuilder) Build() (*CreateSessionOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &CreateSessionOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *CreateSessionOptions) NewBuilder() *CreateSessionOptionsBuilder {
	return &CreateSessionOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *CreateSessionOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *CreateSessionOptions) String() string {
	return o.opts.String()
}

// AssistantID returns assistant_id.
func (o *CreateSessionOptions) AssistantID() string {
	return core.Require[string](o.opts, "assistant_id")
}

// CreateSession performs POST /v2/assistants/{assistant_id}/sessions.
//
// Create a session
func (s *Service) CreateSession(ctx context.Context, opts *CreateSessionOptions, headers ...http.Header) (*SessionResponse, error) {
	var result SessionResponse
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// -----------------------------------------------------
// DELETE SESSION
// -----------------------------------------------------

var deleteSessionOperation = &core.Operation{
	ID:     "deleteSession",
	Method: http.MethodDelete,
	Path:   "/v2/assistants/{assistant_id}/sessions/{session_id}",
	Fields: []core.Field{
		{Name: "assistantId", Wire: "assistant_id", In: core.InPath, Required: true},
		{Name: "sessionId", Wire: "session_id", In: core.InPath, Required: true},
	},
}

// DeleteSessionOperation returns a copy of the descriptor of DELETE /v2/assistants/{assistant_id}/sessions/{session_id}.
func DeleteSessionOperation() *core.Operation {
	return deleteSessionOperation.Clone()
}

// DeleteSessionOptions holds the parameters of a deleteSession call.
// It is immutable; build one with NewDeleteSessionOptionsBuilder.
// The zero value holds no parameters.
type DeleteSessionOptions struct {
	opts *core.Options
}

// DeleteSessionOptionsBuilder stages DeleteSessionOptions. The zero value is an empty builder.
type DeleteSessionOptionsBuilder struct {
	b *core.Builder
}

// NewDeleteSessionOptionsBuilder returns a builder with the required parameters set.
func NewDeleteSessionOptionsBuilder(assistantID string, sessionID string) *DeleteSessionOptionsBuilder {
	return new(DeleteSessionOptionsBuilder).
		AssistantID(assistantID).
		SessionID(sessionID)
}

func (b *DeleteSessionOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(deleteSessionOperation)
	}
	return b.b
}

// AssistantID sets assistant_id. Unique identifier of the assistant.
func (b *DeleteSessionOptionsBuilder) AssistantID(assistantID string) *DeleteSessionOptionsBuilder {
	b.builder().Set("assistant_id", assistantID)
	return b
}

// SessionID sets session_id. Unique identifier of the session.
func (b *DeleteSessionOptionsBuilder) SessionID(sessionID string) *DeleteSessionOptionsBuilder {
	b.builder().Set("session_id", sessionID)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *DeleteSessionOptionsBuilder) Clear(wireNames ...string) *DeleteSessionOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable DeleteSessionOptions.
func (b *DeleteSessionOptionsBuilder) Build() (*DeleteSessionOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &DeleteSessionOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *DeleteSessionOptions) NewBuilder() *DeleteSessionOptionsBuilder {
	return &DeleteSessionOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *DeleteSessionOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *DeleteSessionOptions) String() string {
	return o.opts.String()
}

// AssistantID returns assistant_id.
func (o *DeleteSessionOptions) AssistantID() string {
	return core.Require[string](o.opts, "assistant_id")
}

// SessionID returns session_id.
func (o *DeleteSessionOptions) SessionID() string {
	return core.Require[string](o.opts, "session_id")
}

// DeleteSession performs DELETE /v2/assistants/{assistant_id}/sessions/{session_id}.
//
// Delete session
func (s *Service) DeleteSession(ctx context.Context, opts *DeleteSessionOptions, headers ...http.Header) error {
	return s.invoke(ctx, opts.Options(), headers, nil)
}
