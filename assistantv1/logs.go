package assistantv1

import (
	"context"
	"net/http"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

// -----------------------------------------------------
// LIST LOGS
// -----------------------------------------------------

var listLogsOperation = &core.Operation{
	ID:     "listLogs",
	Method: http.MethodGet,
	Path:   "/v1/workspaces/{workspace_id}/logs",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "sort", Wire: "sort", In: core.InQuery},
		{Name: "filter", Wire: "filter", In: core.InQuery},
		{Name: "pageLimit", Wire: "page_limit", In: core.InQuery},
		{Name: "cursor", Wire: "cursor", In: core.InQuery},
	},
}

// ListLogsOperation returns a copy of the descriptor of GET /v1/workspaces/{workspace_id}/logs.
func ListLogsOperation() *core.Operation {
	return listLogsOperation.Clone()
}

// ListLogsOptions holds the parameters of a listLogs call.
// It is immutable; build one with NewListLogsOptionsBuilder.
// The zero value holds no parameters.
type ListLogsOptions struct {
	opts *core.Options
}

// ListLogsOptionsBuilder stages ListLogsOptions. The zero value is an empty builder.
type ListLogsOptionsBuilder struct {
	b *core.Builder
}

// NewListLogsOptionsBuilder returns a builder with the required parameters set.
func NewListLogsOptionsBuilder(workspaceID string) *ListLogsOptionsBuilder {
	return new(ListLogsOptionsBuilder).
		WorkspaceID(workspaceID)
}

func (b *ListLogsOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(listLogsOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *ListLogsOptionsBuilder) WorkspaceID(workspaceID string) *ListLogsOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Sort sets sort. How to sort the returned log events.
func (b *ListLogsOptionsBuilder) Sort(sort string) *ListLogsOptionsBuilder {
	b.builder().Set("sort", sort)
	return b
}

// Filter sets filter. A cacheable parameter that limits the results to those matching the specified filter.
func (b *ListLogsOptionsBuilder) Filter(filter string) *ListLogsOptionsBuilder {
	b.builder().Set("filter", filter)
	return b
}

// PageLimit sets page_limit. The number of records to return in each page of results.
func (b *ListLogsOptionsBuilder) PageLimit(pageLimit int64) *ListLogsOptionsBuilder {
	b.builder().Set("page_limit", pageLimit)
	return b
}

// Cursor sets cursor. A token identifying the page of results to retrieve.
func (b *ListLogsOptionsBuilder) Cursor(cursor string) *ListLogsOptionsBuilder {
	b.builder().Set("cursor", cursor)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *ListLogsOptionsBuilder) Clear(wireNames ...string) *ListLogsOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable ListLogsOptions.
func (b *ListLogsOptionsBuilder) Build() (*ListLogsOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &ListLogsOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *ListLogsOptions) NewBuilder() *ListLogsOptionsBuilder {
	return &ListLogsOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *ListLogsOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *ListLogsOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *ListLogsOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Sort returns sort, unset when it was not supplied.
func (o *ListLogsOptions) Sort() core.Optional[string] {
	return core.Get[string](o.opts, "sort")
}

// Filter returns filter, unset when it was not supplied.
func (o *ListLogsOptions) Filter() core.Optional[string] {
	return core.Get[string](o.opts, "filter")
}

// PageLimit returns page_limit, unset when it was not supplied.
func (o *ListLogsOptions) PageLimit() core.Optional[int64] {
	return core.Get[int64](o.opts, "page_limit")
}

// Cursor returns cursor, unset when it was not supplied.
func (o *ListLogsOptions) Cursor() core.Optional[string] {
	return core.Get[string](o.opts, "cursor")
}

// ListLogs performs GET /v1/workspaces/{workspace_id}/logs.
//
// List log events in a workspace
func (s *Service) ListLogs(ctx context.Context, opts *ListLogsOptions, headers ...http.Header) (*LogCollection, error) {
	var result LogCollection
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
