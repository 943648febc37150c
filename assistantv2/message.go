package assistantv2

import (
	"context"
	"net/http"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

// -----------------------------------------------------
// MESSAGE
// -----------------------------------------------------

var messageOperation = &core.Operation{
	ID:     "message",
	Method: http.MethodPost,
	Path:   "/v2/assistants/{assistant_id}/sessions/{session_id}/message",
	Fields: []core.Field{
		{Name: "assistantId", Wire: "assistant_id", In: core.InPath, Required: true},
		{Name: "sessionId", Wire: "session_id", In: core.InPath, Required: true},
		{Name: "context", Wire: "context", In: core.InBody},
		{Name: "input", Wire: "input", In: core.InBody},
	},
}

// MessageOperation returns a copy of the descriptor of POST /v2/assistants/{assistant_id}/sessions/{session_id}/message.
func MessageOperation() *core.Operation {
	return messageOperation.Clone()
}

// MessageOptions holds the parameters of a message call.
// It is immutable; build one with NewMessageOptionsBuilder.
// The zero value holds no parameters.
type MessageOptions struct {
	opts *core.Options
}

// MessageOptionsBuilder stages MessageOptions. The zero value is an empty builder.
type MessageOptionsBuilder struct {
	b *core.Builder
}

// NewMessageOptionsBuilder returns a builder with the required parameters set.
func NewMessageOptionsBuilder(assistantID string, sessionID string) *MessageOptionsBuilder {
	return new(MessageOptionsBuilder).
		AssistantID(assistantID).
		SessionID(sessionID)
}

func (b *MessageOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(messageOperation)
	}
	return b.b
}

// AssistantID sets assistant_id. Unique identifier of the assistant.
func (b *MessageOptionsBuilder) AssistantID(assistantID string) *MessageOptionsBuilder {
	b.builder().Set("assistant_id", assistantID)
	return b
}

// SessionID sets session_id. Unique identifier of the session.
func (b *MessageOptionsBuilder) SessionID(sessionID string) *MessageOptionsBuilder {
	b.builder().Set("session_id", sessionID)
	return b
}

// Context sets context. State information for the conversation.
func (b *MessageOptionsBuilder) Context(context MessageContext) *MessageOptionsBuilder {
	b.builder().Set("context", context)
	return b
}

// Input sets input. An input object that includes the input text.
func (b *MessageOptionsBuilder) Input(input MessageInput) *MessageOptionsBuilder {
	b.builder().Set("input", input)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *MessageOptionsBuilder) Clear(wireNames ...string) *MessageOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable MessageOptions.
func (b *MessageOptionsBuilder) Build() (*MessageOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &MessageOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *MessageOptions) NewBuilder() *MessageOptionsBuilder {
	return &MessageOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *MessageOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *MessageOptions) String() string {
	return o.opts.String()
}

// AssistantID returns assistant_id.
func (o *MessageOptions) AssistantID() string {
	return core.Require[string](o.opts, "assistant_id")
}

// SessionID returns session_id.
func (o *MessageOptions) SessionID() string {
	return core.Require[string](o.opts, "session_id")
}

// Context returns context, unset when it was not supplied.
func (o *MessageOptions) Context() core.Optional[MessageContext] {
	return core.Get[MessageContext](o.opts, "context")
}

// Input returns input, unset when it was not supplied.
func (o *MessageOptions) Input() core.Optional[MessageInput] {
	return core.Get[MessageInput](o.opts, "input")
}

// Message performs POST /v2/assistants/{assistant_id}/sessions/{session_id}/message.
//
// Send user input to assistant
func (s *Service) Message(ctx context.Context, opts *MessageOptions, headers ...http.Header) (*MessageResponse, error) {
	var result MessageResponse
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
