package assistantv1

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
	Path:   "/v1/workspaces/{workspace_id}/message",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "nodesVisitedDetails", Wire: "nodes_visited_details", In: core.InQuery},
		{Name: "alternateIntents", Wire: "alternate_intents", In: core.InBody},
		{Name: "context", Wire: "context", In: core.InBody},
		{Name: "input", Wire: "input", In: core.InBody},
	},
}

// MessageOperation returns a copy of the descriptor of POST /v1/workspaces/{workspace_id}/message.
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
func NewMessageOptionsBuilder(workspaceID string) *MessageOptionsBuilder {
	return new(MessageOptionsBuilder).
		WorkspaceID(workspaceID)
}

func (b *MessageOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(messageOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *MessageOptionsBuilder) WorkspaceID(workspaceID string) *MessageOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// NodesVisitedDetails sets nodes_visited_details. Whether to include additional diagnostic information about the dialog nodes that were visited during processing of the message.
func (b *MessageOptionsBuilder) NodesVisitedDetails(nodesVisitedDetails bool) *MessageOptionsBuilder {
	b.builder().Set("nodes_visited_details", nodesVisitedDetails)
	return b
}

// AlternateIntents sets alternate_intents. Whether to return more than one intent.
func (b *MessageOptionsBuilder) AlternateIntents(alternateIntents bool) *MessageOptionsBuilder {
	b.builder().Set("alternate_intents", alternateIntents)
	return b
}

// Context sets context. State information for the conversation.
func (b *MessageOptionsBuilder) Context(context map[string]any) *MessageOptionsBuilder {
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

// WorkspaceID returns workspace_id.
func (o *MessageOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// NodesVisitedDetails returns nodes_visited_details, unset when it was not supplied.
func (o *MessageOptions) NodesVisitedDetails() core.Optional[bool] {
	return core.Get[bool](o.opts, "nodes_visited_details")
}

// AlternateIntents returns alternate_intents, unset when it was not supplied.
func (o *MessageOptions) AlternateIntents() core.Optional[bool] {
	return core.Get[bool](o.opts, "alternate_intents")
}

// Context returns context, unset when it was not supplied.
func (o *MessageOptions) Context() core.Optional[map[string]any] {
	return core.Get[map[string]any](o.opts, "context")
}

// Input returns input, unset when it was not supplied.
func (o *MessageOptions) Input() core.Optional[MessageInput] {
	return core.Get[MessageInput](o.opts, "input")
}

// Message performs POST /v1/workspaces/{workspace_id}/message.
//
// Get response to user input
func (s *Service) Message(ctx context.Context, opts *MessageOptions, headers ...http.Header) (*MessageResponse, error) {
	var result MessageResponse
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
