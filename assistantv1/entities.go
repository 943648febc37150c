package assistantv1

import (
	"context"
	"net/http"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

// -----------------------------------------------------
// LIST ENTITIES
// -----------------------------------------------------

var listEntitiesOperation = &core.Operation{
	ID:     "listEntities",
	Method: http.MethodGet,
	Path:   "/v1/workspaces/{workspace_id}/entities",
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

// ListEntitiesOperation returns a copy of the descriptor of GET /v1/workspaces/{workspace_id}/entities.
func ListEntitiesOperation() *core.Operation {
	return listEntitiesOperation.Clone()
}

// ListEntitiesOptions holds the parameters of a listEntities call.
// It is immutable; build one with NewListEntitiesOptionsBuilder.
// The zero value holds no parameters.
type ListEntitiesOptions struct {
	opts *core.Options
}

// ListEntitiesOptionsBuilder stages ListEntitiesOptions. The zero value is an empty builder.
type ListEntitiesOptionsBuilder struct {
	b *core.Builder
}

// NewListEntitiesOptionsBuilder returns a builder with the required parameters set.
func NewListEntitiesOptionsBuilder(workspaceID string) *ListEntitiesOptionsBuilder {
	return new(ListEntitiesOptionsBuilder).
		WorkspaceID(workspaceID)
}

func (b *ListEntitiesOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(listEntitiesOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *ListEntitiesOptionsBuilder) WorkspaceID(workspaceID string) *ListEntitiesOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Export sets export. Whether to include all element content in the returned data.
func (b *ListEntitiesOptionsBuilder) Export(export bool) *ListEntitiesOptionsBuilder {
	b.builder().Set("export", export)
	return b
}

// PageLimit sets page_limit. The number of records to return in each page of results.
func (b *ListEntitiesOptionsBuilder) PageLimit(pageLimit int64) *ListEntitiesOptionsBuilder {
	b.builder().Set("page_limit", pageLimit)
	return b
}

// IncludeCount sets include_count. Whether to include information about the number of records returned.
func (b *ListEntitiesOptionsBuilder) IncludeCount(includeCount bool) *ListEntitiesOptionsBuilder {
	b.builder().Set("include_count", includeCount)
	return b
}

// Sort sets sort. The attribute by which returned results will be sorted.
func (b *ListEntitiesOptionsBuilder) Sort(sort string) *ListEntitiesOptionsBuilder {
	b.builder().Set("sort", sort)
	return b
}

// Cursor sets cursor. A token identifying the page of results to retrieve.
func (b *ListEntitiesOptionsBuilder) Cursor(cursor string) *ListEntitiesOptionsBuilder {
	b.builder().Set("cursor", cursor)
	return b
}

// IncludeAudit sets include_audit. Whether to include the audit properties (`created` and `updated` timestamps) in the response.
func (b *ListEntitiesOptionsBuilder) IncludeAudit(includeAudit bool) *ListEntitiesOptionsBuilder {
	b.builder().Set("include_audit", includeAudit)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *ListEntitiesOptionsBuilder) Clear(wireNames ...string) *ListEntitiesOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable ListEntitiesOptions.
func (b *ListEntitiesOptionsBuilder) Build() (*ListEntitiesOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &ListEntitiesOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *ListEntitiesOptions) NewBuilder() *ListEntitiesOptionsBuilder {
	return &ListEntitiesOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *ListEntitiesOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *ListEntitiesOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *ListEntitiesOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Export returns export, unset when it was not supplied.
func (o *ListEntitiesOptions) Export() core.Optional[bool] {
	return core.Get[bool](o.opts, "export")
}

// PageLimit returns page_limit, unset when it was not supplied.
func (o *ListEntitiesOptions) PageLimit() core.Optional[int64] {
	return core.Get[int64](o.opts, "page_limit")
}

// IncludeCount returns include_count, unset when it was not supplied.
func (o *ListEntitiesOptions) IncludeCount() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_count")
}

// Sort returns sort, unset when it was not supplied.
func (o *ListEntitiesOptions) Sort() core.Optional[string] {
	return core.Get[string](o.opts, "sort")
}

// Cursor returns cursor, unset when it was not supplied.
func (o *ListEntitiesOptions) Cursor() core.Optional[string] {
	return core.Get[string](o.opts, "cursor")
}

// IncludeAudit returns include_audit, unset when it was not supplied.
func (o *ListEntitiesOptions) IncludeAudit() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_audit")
}

// ListEntities performs GET /v1/workspaces/{workspace_id}/entities.
//
// List entities
func (s *Service) ListEntities(ctx context.Context, opts *ListEntitiesOptions, headers ...http.Header) (*EntityCollection, error) {
	var result EntityCollection
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
