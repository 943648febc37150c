package assistantv1

import (
	"context"
	"net/http"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

// -----------------------------------------------------
// LIST INTENTS
// -----------------------------------------------------

var listIntentsOperation = &core.Operation{
	ID:     "listIntents",
	Method: http.MethodGet,
	Path:   "/v1/workspaces/{workspace_id}/intents",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "export", Wire: "export", In: core.InQuery},
		{Name: "pageLimit", Wire: "page_limit", In: core.InQuery},
		{Name: "includeCount", Wire: "include_count", In: core.InQuery},
		{Name: "sort", Wire: "sort", In: core.InQuery},
		{Name: "cursor", Wire: "cursor", In: core.InQuery},
		{Name: "includeAudit", Wire: "include_audit", In: core.InQuery},
	},
}

// ListIntentsOperation returns a copy of the descriptor of GET /v1/workspaces/{workspace_id}/intents.
func ListIntentsOperation() *core.Operation {
	return listIntentsOperation.Clone()
}

// ListIntentsOptions holds the parameters of a listIntents call.
// It is immutable; build one with NewListIntentsOptionsBuilder.
// The zero value holds no parameters.
type ListIntentsOptions struct {
	opts *core.Options
}

// ListIntentsOptionsBuilder stages ListIntentsOptions. The zero value is an empty builder.
type ListIntentsOptionsBuilder struct {
	b *core.Builder
}

// NewListIntentsOptionsBuilder returns a builder with the required parameters set.
func NewListIntentsOptionsBuilder(workspaceID string) *ListIntentsOptionsBuilder {
	return new(ListIntentsOptionsBuilder).
		WorkspaceID(workspaceID)
}

func (b *ListIntentsOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(listIntentsOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *ListIntentsOptionsBuilder) WorkspaceID(workspaceID string) *ListIntentsOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Export sets export. Whether to include all element content in the returned data.
func (b *ListIntentsOptionsBuilder) Export(export bool) *ListIntentsOptionsBuilder {
	b.builder().Set("export", export)
	return b
}

// PageLimit sets page_limit. The number of records to return in each page of results.
func (b *ListIntentsOptionsBuilder) PageLimit(pageLimit int64) *ListIntentsOptionsBuilder {
	b.builder().Set("page_limit", pageLimit)
	return b
}

// IncludeCount sets include_count. Whether to include information about the number of records returned.
func (b *ListIntentsOptionsBuilder) IncludeCount(includeCount bool) *ListIntentsOptionsBuilder {
	b.builder().Set("include_count", includeCount)
	return b
}

// Sort sets sort. The attribute by which returned results will be sorted.
func (b *ListIntentsOptionsBuilder) Sort(sort string) *ListIntentsOptionsBuilder {
	b.builder().Set("sort", sort)
	return b
}

// Cursor sets cursor. A token identifying the page of results to retrieve.
func (b *ListIntentsOptionsBuilder) Cursor(cursor string) *ListIntentsOptionsBuilder {
	b.builder().Set("cursor", cursor)
	return b
}

// IncludeAudit sets include_audit. Whether to include the audit properties (`created` and `updated` timestamps) in the response.
func (b *ListIntentsOptionsBuilder) IncludeAudit(includeAudit bool) *ListIntentsOptionsBuilder {
	b.builder().Set("include_audit", includeAudit)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *ListIntentsOptionsBuilder) Clear(wireNames ...string) *ListIntentsOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable ListIntentsOptions.
func (b *ListIntentsOptionsBuilder) Build() (*ListIntentsOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &ListIntentsOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *ListIntentsOptions) NewBuilder() *ListIntentsOptionsBuilder {
	return &ListIntentsOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *ListIntentsOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *ListIntentsOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *ListIntentsOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Export returns export, unset when it was not supplied.
func (o *ListIntentsOptions) Export() core.Optional[bool] {
	return core.Get[bool](o.opts, "export")
}

// PageLimit returns page_limit, unset when it was not supplied.
func (o *ListIntentsOptions) PageLimit() core.Optional[int64] {
	return core.Get[int64](o.opts, "page_limit")
}

// IncludeCount returns include_count, unset when it was not supplied.
func (o *ListIntentsOptions) IncludeCount() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_count")
}

// Sort returns sort, unset when it was not supplied.
func (o *ListIntentsOptions) Sort() core.Optional[string] {
	return core.Get[string](o.opts, "sort")
}

// Cursor returns cursor, unset when it was not supplied.
func (o *ListIntentsOptions) Cursor() core.Optional[string] {
	return core.Get[string](o.opts, "cursor")
}

// IncludeAudit returns include_audit, unset when it was not supplied.
func (o *ListIntentsOptions) IncludeAudit() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_audit")
}

// ListIntents performs GET /v1/workspaces/{workspace_id}/intents.
//
// List intents
func (s *Service) ListIntents(ctx context.Context, opts *ListIntentsOptions, headers ...http.Header) (*IntentCollection, error) {
	var result IntentCollection
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// -----------------------------------------------------
// CREATE INTENT
// -----------------------------------------------------

var createIntentOperation = &core.Operation{
	ID:     "createIntent",
	Method: http.MethodPost,
	Path:   "/v1/workspaces/{workspace_id}/intents",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "description", Wire: "description", In: core.InBody},
		{Name: "examples", Wire: "examples", In: core.InBody},
		{Name: "intent", Wire: "intent", In: core.InBody, Required: true},
	},
}

// CreateIntentOperation returns a copy of the descriptor of POST /v1/workspaces/{workspace_id}/intents.
func CreateIntentOperation() *core.Operation {
	return createIntentOperation.Clone()
}

// CreateIntentOptions holds the parameters of a createIntent call.
// It is immutable; build one with NewCreateIntentOptionsBuilder.
// The zero value holds no parameters.
type CreateIntentOptions struct {
	opts *core.Options
}

// CreateIntentOptionsBuilder stages CreateIntentOptions. The zero value is an empty builder.
type CreateIntentOptionsBuilder struct {
	b *core.Builder
}

// NewCreateIntentOptionsBuilder returns a builder with the required parameters set.
func NewCreateIntentOptionsBuilder(workspaceID string, intent string) *CreateIntentOptionsBuilder {
	return new(CreateIntentOptionsBuilder).
		WorkspaceID(workspaceID).
		Intent(intent)
}

func (b *CreateIntentOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(createIntentOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *CreateIntentOptionsBuilder) WorkspaceID(workspaceID string) *CreateIntentOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Description sets description. The description of the intent.
func (b *CreateIntentOptionsBuilder) Description(description string) *CreateIntentOptionsBuilder {
	b.builder().Set("description", description)
	return b
}

// Examples sets examples. An array of user input examples for the intent.
func (b *CreateIntentOptionsBuilder) Examples(examples []Example) *CreateIntentOptionsBuilder {
	b.builder().Set("examples", examples)
	return b
}

// Intent sets intent. The name of the intent.
func (b *CreateIntentOptionsBuilder) Intent(intent string) *CreateIntentOptionsBuilder {
	b.builder().Set("intent", intent)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *CreateIntentOptionsBuilder) Clear(wireNames ...string) *CreateIntentOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable CreateIntentOptions.
func (b *CreateIntentOptionsBuilder) Build() (*CreateIntentOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &CreateIntentOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *CreateIntentOptions) NewBuilder() *CreateIntentOptionsBuilder {
	return &CreateIntentOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *CreateIntentOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *CreateIntentOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *CreateIntentOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Description returns description, unset when it was not supplied.
func (o *CreateIntentOptions) Description() core.Optional[string] {
	return core.Get[string](o.opts, "description")
}

// Examples returns examples, unset when it was not supplied.
func (o *CreateIntentOptions) Examples() core.Optional[[]Example] {
	return core.Get[[]Example](o.opts, "examples")
}

// Intent returns intent.
func (o *CreateIntentOptions) Intent() string {
	return core.Require[string](o.opts, "intent")
}

// CreateIntent performs POST /v1/workspaces/{workspace_id}/intents.
//
// Create intent
func (s *Service) CreateIntent(ctx context.Context, opts *CreateIntentOptions, headers ...http.Header) (*Intent, error) {
	var result Intent
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
