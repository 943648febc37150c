package assistantv1

import (
	"context"
	"net/http"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

// -----------------------------------------------------
// LIST SYNONYMS
// -----------------------------------------------------

var listSynonymsOperation = &core.Operation{
	ID:     "listSynonyms",
	Method: http.MethodGet,
	Path:   "/v1/workspaces/{workspace_id}/entities/{entity}/values/{value}/synonyms",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "entity", Wire: "entity", In: core.InPath, Required: true},
		{Name: "value", Wire: "value", In: core.InPath, Required: true},
		{Name: "pageLimit", Wire: "page_limit", In: core.InQuery},
		{Name: "includeCount", Wire: "include_count", In: core.InQuery},
		{Name: "sort", Wire: "sort", In: core.InQuery},
		{Name: "cursor", Wire: "cursor", In: core.InQuery},
		{Name: "includeAudit", Wire: "include_audit", In: core.InQuery},
	},
}

// ListSynonymsOperation returns a copy of the descriptor of GET /v1/workspaces/{workspace_id}/entities/{entity}/values/{value}/synonyms.
func ListSynonymsOperation() *core.Operation {
	return listSynonymsOperation.Clone()
}

// ListSynonymsOptions holds the parameters of a listSynonyms call.
// It is immutable; build one with NewListSynonymsOptionsBuilder.
// The zero value holds no parameters.
type ListSynonymsOptions struct {
	opts *core.Options
}

// ListSynonymsOptionsBuilder stages ListSynonymsOptions. The zero value is an empty builder.
type ListSynonymsOptionsBuilder struct {
	b *core.Builder
}

// NewListSynonymsOptionsBuilder returns a builder with the required parameters set.
func NewListSynonymsOptionsBuilder(workspaceID string, entity string, value string) *ListSynonymsOptionsBuilder {
	return new(ListSynonymsOptionsBuilder).
		WorkspaceID(workspaceID).
		Entity(entity).
		Value(value)
}

func (b *ListSynonymsOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(listSynonymsOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *ListSynonymsOptionsBuilder) WorkspaceID(workspaceID string) *ListSynonymsOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Entity sets entity. The name of the entity.
func (b *ListSynonymsOptionsBuilder) Entity(entity string) *ListSynonymsOptionsBuilder {
	b.builder().Set("entity", entity)
	return b
}

// Value sets value. The text of the entity value.
func (b *ListSynonymsOptionsBuilder) Value(value string) *ListSynonymsOptionsBuilder {
	b.builder().Set("value", value)
	return b
}

// PageLimit sets page_limit. The number of records to return in each page of results.
func (b *ListSynonymsOptionsBuilder) PageLimit(pageLimit int64) *ListSynonymsOptionsBuilder {
	b.builder().Set("page_limit", pageLimit)
	return b
}

// IncludeCount sets include_count. Whether to include information about the number of records returned.
func (b *ListSynonymsOptionsBuilder) IncludeCount(includeCount bool) *ListSynonymsOptionsBuilder {
	b.builder().Set("include_count", includeCount)
	return b
}

// Sort sets sort. The attribute by which returned results will be sorted.
func (b *ListSynonymsOptionsBuilder) Sort(sort string) *ListSynonymsOptionsBuilder {
	b.builder().Set("sort", sort)
	return b
}

// Cursor sets cursor. A token identifying the page of results to retrieve.
func (b *ListSynonymsOptionsBuilder) Cursor(cursor string) *ListSynonymsOptionsBuilder {
	b.builder().Set("cursor", cursor)
	return b
}

// IncludeAudit sets include_audit. Whether to include the audit properties (`created` and `updated` timestamps) in the response.
func (b *ListSynonymsOptionsBuilder) IncludeAudit(includeAudit bool) *ListSynonymsOptionsBuilder {
	b.builder().Set("include_audit", includeAudit)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *ListSynonymsOptionsBuilder) Clear(wireNames ...string) *ListSynonymsOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable ListSynonymsOptions.
func (b *ListSynonymsOptionsBuilder) Build() (*ListSynonymsOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &ListSynonymsOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *ListSynonymsOptions) NewBuilder() *ListSynonymsOptionsBuilder {
	return &ListSynonymsOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *ListSynonymsOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *ListSynonymsOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *ListSynonymsOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Entity returns entity.
func (o *ListSynonymsOptions) Entity() string {
	return core.Require[string](o.opts, "entity")
}

// Value returns value.
func (o *ListSynonymsOptions) Value() string {
	return core.Require[string](o.opts, "value")
}

// PageLimit returns page_limit, unset when it was not supplied.
func (o *ListSynonymsOptions) PageLimit() core.Optional[int64] {
	return core.Get[int64](o.opts, "page_limit")
}

// IncludeCount returns include_count, unset when it was not supplied.
func (o *ListSynonymsOptions) IncludeCount() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_count")
}

// Sort returns sort, unset when it was not supplied.
func (o *ListSynonymsOptions) Sort() core.Optional[string] {
	return core.Get[string](o.opts, "sort")
}

// Cursor returns cursor, unset when it was not supplied.
func (o *ListSynonymsOptions) Cursor() core.Optional[string] {
	return core.Get[string](o.opts, "cursor")
}

// IncludeAudit returns include_audit, unset when it was not supplied.
func (o *ListSynonymsOptions) IncludeAudit() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_audit")
}

// ListSynonyms performs GET /v1/workspaces/{workspace_id}/entities/{entity}/values/{value}/synonyms.
//
// List entity value synonyms
func (s *Service) ListSynonyms(ctx context.Context, opts *ListSynonymsOptions, headers ...http.Header) (*SynonymCollection, error) {
	var result SynonymCollection
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}
