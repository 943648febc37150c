package assistantv1

import (
	"context"
	"net/http"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

// -----------------------------------------------------
// LIST VALUES
// -----------------------------------------------------

var listValuesOperation = &core.Operation{
	ID:     "listValues",
	Method: http.MethodGet,
	Path:   "/v1/workspaces/{workspace_id}/entities/{entity}/values",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "entity", Wire: "entity", In: core.InPath, Required: true},
		{Name: "export", Wire: "export", In: core.InQuery},
		{Name: "pageLimit", Wire: "page_limit", In: core.InQuery},
		{Name: "includeCount", Wire: "include_count", In: core.InQuery},
		{Name: "sort", Wire: "sort", In: core.InQuery},
		{Name: "cursor", Wire: "cursor", In: core.InQuery},
		{Name: "includeAudit", Wire: "include_audit", In: core.InQuery},
	},
}

// ListValuesOperation returns a copy of the descriptor of GET /v1/workspaces/{workspace_id}/entities/{entity}/values.
func ListValuesOperation() *core.Operation {
	return listValuesOperation.Clone()
}

// ListValuesOptions holds the parameters of a listValues call.
// It is immutable; build one with NewListValuesOptionsBuilder.
// The zero value holds no parameters.
type ListValuesOptions struct {
	opts *core.Options
}

// ListValuesOptionsBuilder stages ListValuesOptions. The zero value is an empty builder.
type ListValuesOptionsBuilder struct {
	b *core.Builder
}

// NewListValuesOptionsBuilder returns a builder with the required parameters set.
func NewListValuesOptionsBuilder(workspaceID string, entity string) *ListValuesOptionsBuilder {
	return new(ListValuesOptionsBuilder).
		WorkspaceID(workspaceID).
		Entity(entity)
}

func (b *ListValuesOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(listValuesOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *ListValuesOptionsBuilder) WorkspaceID(workspaceID string) *ListValuesOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Entity sets entity. The name of the entity.
func (b *ListValuesOptionsBuilder) Entity(entity string) *ListValuesOptionsBuilder {
	b.builder().Set("entity", entity)
	return b
}

// Export sets export. Whether to include all element content in the returned data.
func (b *ListValuesOptionsBuilder) Export(export bool) *ListValuesOptionsBuilder {
	b.builder().Set("export", export)
	return b
}

// PageLimit sets page_limit. The number of records to return in each page of results.
func (b *ListValuesOptionsBuilder) PageLimit(pageLimit int64) *ListValuesOptionsBuilder {
	b.builder().Set("page_limit", pageLimit)
	return b
}

// IncludeCount sets include_count. Whether to include information about the number of records returned.
func (b *ListValuesOptionsBuilder) IncludeCount(includeCount bool) *ListValuesOptionsBuilder {
	b.builder().Set("include_count", includeCount)
	return b
}

// Sort sets sort. The attribute by which returned results will be sorted.
func (b *ListValuesOptionsBuilder) Sort(sort string) *ListValuesOptionsBuilder {
	b.builder().Set("sort", sort)
	return b
}

// Cursor sets cursor. A token identifying the page of results to retrieve.
func (b *ListValuesOptionsBuilder) Cursor(cursor string) *ListValuesOptionsBuilder {
	b.builder().Set("cursor", cursor)
	return b
}

// IncludeAudit sets include_audit. Whether to include the audit properties (`created` and `updated` timestamps) in the response.
func (b *ListValuesOptionsBuilder) IncludeAudit(includeAudit bool) *ListValuesOptionsBuilder {
	b.builder().Set("include_audit", includeAudit)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *ListValuesOptionsBuilder) Clear(wireNames ...string) *ListValuesOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable ListValuesOptions.
func (b *ListValuesOptionsBuilder) Build() (*ListValuesOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &ListValuesOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *ListValuesOptions) NewBuilder() *ListValuesOptionsBuilder {
	return &ListValuesOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *ListValuesOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *ListValuesOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *ListValuesOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Entity returns entity.
func (o *ListValuesOptions) Entity() string {
	return core.Require[string](o.opts, "entity")
}

// Export returns export, unset when it was not supplied.
func (o *ListValuesOptions) Export() core.Optional[bool] {
	return core.Get[bool](o.opts, "export")
}

// PageLimit returns page_limit, unset when it was not supplied.
func (o *ListValuesOptions) PageLimit() core.Optional[int64] {
	return core.Get[int64](o.opts, "page_limit")
}

// IncludeCount returns include_count, unset when it was not supplied.
func (o *ListValuesOptions) IncludeCount() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_count")
}

// Sort returns sort, unset when it was not supplied.
func (o *ListValuesOptions) Sort() core.Optional[string] {
	return core.Get[string](o.opts, "sort")
}

// Cursor returns cursor, unset when it was not supplied.
func (o *ListValuesOptions) Cursor() core.Optional[string] {
	return core.Get[string](o.opts, "cursor")
}

// IncludeAudit returns include_audit, unset when it was not supplied.
func (o *ListValuesOptions) IncludeAudit() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_audit")
}

// ListValues performs GET /v1/workspaces/{workspace_id}/entities/{entity}/values.
//
// List entity values
func (s *Service) ListValues(ctx context.Context, opts *ListValuesOptions, headers ...http.Header) (*ValueCollection, error) {
	var result ValueCollection
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// -----------------------------------------------------
// CREATE VALUE
// -----------------------------------------------------

var createValueOperation = &core.Operation{
	ID:     "createValue",
	Method: http.MethodPost,
	Path:   "/v1/workspaces/{workspace_id}/entities/{entity}/values",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "entity", Wire: "entity", In: core.InPath, Required: true},
		{Name: "metadata", Wire: "metadata", In: core.InBody},
		{Name: "patterns", Wire: "patterns", In: core.InBody},
		{Name: "synonyms", Wire: "synonyms", In: core.InBody},
		{Name: "type", Wire: "type", In: core.InBody},
		{Name: "value", Wire: "value", In: core.InBody, Required: true},
	},
}

// CreateValueOperation returns a copy of the descriptor of POST /v1/workspaces/{workspace_id}/entities/{entity}/values.
func CreateValueOperation() *core.Operation {
	return createValueOperation.Clone()
}

// CreateValueOptions holds the parameters of a createValue call.
// It is immutable; build one with NewCreateValueOptionsBuilder.
// The zero value holds no parameters.
type CreateValueOptions struct {
	opts *core.Options
}

// CreateValueOptionsBuilder stages CreateValueOptions. The zero value is an empty builder.
type CreateValueOptionsBuilder struct {
	b *core.Builder
}

// NewCreateValueOptionsBuilder returns a builder with the required parameters set.
func NewCreateValueOptionsBuilder(workspaceID string, entity string, value string) *CreateValueOptionsBuilder {
	return new(CreateValueOptionsBuilder).
		WorkspaceID(workspaceID).
		Entity(entity).
		Value(value)
}

func (b *CreateValueOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(createValueOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *CreateValueOptionsBuilder) WorkspaceID(workspaceID string) *CreateValueOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Entity sets entity. The name of the entity.
func (b *CreateValueOptionsBuilder) Entity(entity string) *CreateValueOptionsBuilder {
	b.builder().Set("entity", entity)
	return b
}

// Metadata sets metadata. Any metadata related to the entity value.
func (b *CreateValueOptionsBuilder) Metadata(metadata map[string]any) *CreateValueOptionsBuilder {
	b.builder().Set("metadata", metadata)
	return b
}

// Patterns sets patterns. An array of patterns for the entity value.
func (b *CreateValueOptionsBuilder) Patterns(patterns []string) *CreateValueOptionsBuilder {
	b.builder().Set("patterns", patterns)
	return b
}

// Synonyms sets synonyms. An array of synonyms for the entity value.
func (b *CreateValueOptionsBuilder) Synonyms(synonyms []string) *CreateValueOptionsBuilder {
	b.builder().Set("synonyms", synonyms)
	return b
}

// Type sets type. Specifies the type of entity value.
func (b *CreateValueOptionsBuilder) Type(typeValue string) *CreateValueOptionsBuilder {
	b.builder().Set("type", typeValue)
	return b
}

// Value sets value. The text of the entity value.
func (b *CreateValueOptionsBuilder) Value(value string) *CreateValueOptionsBuilder {
	b.builder().Set("value", value)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *CreateValueOptionsBuilder) Clear(wireNames ...string) *CreateValueOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable CreateValueOptions.
func (b *CreateValueOptionsBuilder) Build() (*CreateValueOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &CreateValueOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *CreateValueOptions) NewBuilder() *CreateValueOptionsBuilder {
	return &CreateValueOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *CreateValueOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *CreateValueOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *CreateValueOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Entity returns entity.
func (o *CreateValueOptions) Entity() string {
	return core.Require[string](o.opts, "entity")
}

// Metadata returns metadata, unset when it was not supplied.
func (o *CreateValueOptions) Metadata() core.Optional[map[string]any] {
	return core.Get[map[string]any](o.opts, "metadata")
}

// Patterns returns patterns, unset when it was not supplied.
func (o *CreateValueOptions) Patterns() core.Optional[[]string] {
	return core.Get[[]string](o.opts, "patterns")
}

// Synonyms returns synonyms, unset when it was not supplied.
func (o *CreateValueOptions) Synonyms() core.Optional[[]string] {
	return core.Get[[]string](o.opts, "synonyms")
}

// Type returns type, unset when it was not supplied.
func (o *CreateValueOptions) Type() core.Optional[string] {
	return core.Get[string](o.opts, "type")
}

// Value returns value.
func (o *CreateValueOptions) Value() string {
	return core.Require[string](o.opts, "value")
}

// CreateValue performs POST /v1/workspaces/{workspace_id}/entities/{entity}/values.
//
// Create entity value
func (s *Service) CreateValue(ctx context.Context, opts *CreateValueOptions, headers ...http.Header) (*Value, error) {
	var result Value
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// -----------------------------------------------------
// GET VALUE
// -----------------------------------------------------

var getValueOperation = &core.Operation{
	ID:     "getValue",
	Method: http.MethodGet,
	Path:   "/v1/workspaces/{workspace_id}/entities/{entity}/values/{value}",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "entity", Wire: "entity", In: core.InPath, Required: true},
		{Name: "value", Wire: "value", In: core.InPath, Required: true},
		{Name: "export", Wire: "export", In: core.InQuery},
		{Name: "includeAudit", Wire: "include_audit", In: core.InQuery},
	},
}

// GetValueOperation returns a copy of the descriptor of GET /v1/workspaces/{workspace_id}/entities/{entity}/values/{value}.
func GetValueOperation() *core.Operation {
	return getValueOperation.Clone()
}

// GetValueOptions holds the parameters of a getValue call.
// It is immutable; build one with NewGetValueOptionsBuilder.
// The zero value holds no parameters.
type GetValueOptions struct {
	opts *core.Options
}

// GetValueOptionsBuilder stages GetValueOptions. The zero value is an empty builder.
type GetValueOptionsBuilder struct {
	b *core.Builder
}

// NewGetValueOptionsBuilder returns a builder with the required parameters set.
func NewGetValueOptionsBuilder(workspaceID string, entity string, value string) *GetValueOptionsBuilder {
	return new(GetValueOptionsBuilder).
		WorkspaceID(workspaceID).
		Entity(entity).
		Value(value)
}

func (b *GetValueOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(getValueOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *GetValueOptionsBuilder) WorkspaceID(workspaceID string) *GetValueOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Entity sets entity. The name of the entity.
func (b *GetValueOptionsBuilder) Entity(entity string) *GetValueOptionsBuilder {
	b.builder().Set("entity", entity)
	return b
}

// Value sets value. The text of the entity value.
func (b *GetValueOptionsBuilder) Value(value string) *GetValueOptionsBuilder {
	b.builder().Set("value", value)
	return b
}

// Export sets export. Whether to include all element content in the returned data.
func (b *GetValueOptionsBuilder) Export(export bool) *GetValueOptionsBuilder {
	b.builder().Set("export", export)
	return b
}

// IncludeAudit sets include_audit. Whether to include the audit properties (`created` and `updated` timestamps) in the response.
func (b *GetValueOptionsBuilder) IncludeAudit(includeAudit bool) *GetValueOptionsBuilder {
	b.builder().Set("include_audit", includeAudit)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *GetValueOptionsBuilder) Clear(wireNames ...string) *GetValueOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable GetValueOptions.
func (b *GetValueOptionsBuilder) Build() (*GetValueOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &GetValueOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *GetValueOptions) NewBuilder() *GetValueOptionsBuilder {
	return &GetValueOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *GetValueOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *GetValueOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *GetValueOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Entity returns entity.
func (o *GetValueOptions) Entity() string {
	return core.Require[string](o.opts, "entity")
}

// Value returns value.
func (o *GetValueOptions) Value() string {
	return core.Require[string](o.opts, "value")
}

// Export returns export, unset when it was not supplied.
func (o *GetValueOptions) Export() core.Optional[bool] {
	return core.Get[bool](o.opts, "export")
}

// IncludeAudit returns include_audit, unset when it was not supplied.
func (o *GetValueOptions) IncludeAudit() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_audit")
}

// GetValue performs GET /v1/workspaces/{workspace_id}/entities/{entity}/values/{value}.
//
// Get entity value
func (s *Service) GetValue(ctx context.Context, opts *GetValueOptions, headers ...http.Header) (*Value, error) {
	var result Value
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// -----------------------------------------------------
// UPDATE VALUE
// -----------------------------------------------------

var updateValueOperation = &core.Operation{
	ID:     "updateValue",
	Method: http.MethodPost,
	Path:   "/v1/workspaces/{workspace_id}/entities/{entity}/values/{value}",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "entity", Wire: "entity", In: core.InPath, Required: true},
		{Name: "value", Wire: "value", In: core.InPath, Required: true},
		{Name: "newMetadata", Wire: "new_metadata", In: core.InBody},
		{Name: "newPatterns", Wire: "new_patterns", In: core.InBody},
		{Name: "newSynonyms", Wire: "new_synonyms", In: core.InBody},
		{Name: "newType", Wire: "new_type", In: core.InBody},
		{Name: "newValue", Wire: "new_value", In: core.InBody},
	},
}

// UpdateValueOperation returns a copy of the descriptor of POST /v1/workspaces/{workspace_id}/entities/{entity}/values/{value}.
func UpdateValueOperation() *core.Operation {
	return updateValueOperation.Clone()
}

// UpdateValueOptions holds the parameters of a updateValue call.
// It is immutable; build one with NewUpdateValueOptionsBuilder.
// The zero value holds no parameters.
type UpdateValueOptions struct {
	opts *core.Options
}

// UpdateValueOptionsBuilder stages UpdateValueOptions. The zero value is an empty builder.
type UpdateValueOptionsBuilder struct {
	b *core.Builder
}

// NewUpdateValueOptionsBuilder returns a builder with the required parameters set.
func NewUpdateValueOptionsBuilder(workspaceID string, entity string, value string) *UpdateValueOptionsBuilder {
	return new(UpdateValueOptionsBuilder).
		WorkspaceID(workspaceID).
		Entity(entity).
		Value(value)
}

func (b *UpdateValueOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(updateValueOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *UpdateValueOptionsBuilder) WorkspaceID(workspaceID string) *UpdateValueOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Entity sets entity. The name of the entity.
func (b *UpdateValueOptionsBuilder) Entity(entity string) *UpdateValueOptionsBuilder {
	b.builder().Set("entity", entity)
	return b
}

// Value sets value. The text of the entity value.
func (b *UpdateValueOptionsBuilder) Value(value string) *UpdateValueOptionsBuilder {
	b.builder().Set("value", value)
	return b
}

// NewMetadata sets new_metadata. Any metadata related to the entity value.
func (b *UpdateValueOptionsBuilder) NewMetadata(newMetadata map[string]any) *UpdateValueOptionsBuilder {
	b.builder().Set("new_metadata", newMetadata)
	return b
}

// NewPatterns sets new_patterns. An array of patterns for the entity value.
func (b *UpdateValueOptionsBuilder) NewPatterns(newPatterns []string) *UpdateValueOptionsBuilder {
	b.builder().Set("new_patterns", newPatterns)
	return b
}

// NewSynonyms sets new_synonyms. An array of synonyms for the entity value.
func (b *UpdateValueOptionsBuilder) NewSynonyms(newSynonyms []string) *UpdateValueOptionsBuilder {
	b.builder().Set("new_synonyms", newSynonyms)
	return b
}

// NewType sets new_type. Specifies the type of entity value.
func (b *UpdateValueOptionsBuilder) NewType(newType string) *UpdateValueOptionsBuilder {
	b.builder().Set("new_type", newType)
	return b
}

// NewValue sets new_value. The text of the entity value.
func (b *UpdateValueOptionsBuilder) NewValue(newValue string) *UpdateValueOptionsBuilder {
	b.builder().Set("new_value", newValue)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *UpdateValueOptionsBuilder) Clear(wireNames ...string) *UpdateValueOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable UpdateValueOptions.
func (b *UpdateValueOptionsBuilder) Build() (*UpdateValueOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &UpdateValueOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *UpdateValueOptions) NewBuilder() *UpdateValueOptionsBuilder {
	return &UpdateValueOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *UpdateValueOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *UpdateValueOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *UpdateValueOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Entity returns entity.
func (o *UpdateValueOptions) Entity() string {
	return core.Require[string](o.opts, "entity")
}

// Value returns value.
func (o *UpdateValueOptions) Value() string {
	return core.Require[string](o.opts, "value")
}

// NewMetadata returns new_metadata, unset when it was not supplied.
func (o *UpdateValueOptions) NewMetadata() core.Optional[map[string]any] {
	return core.Get[map[string]any](o.opts, "new_metadata")
}

// NewPatterns returns new_patterns, unset when it was not supplied.
func (o *UpdateValueOptions) NewPatterns() core.Optional[[]string] {
	return core.Get[[]string](o.opts, "new_patterns")
}

// NewSynonyms returns new_synonyms, unset when it was not supplied.
func (o *UpdateValueOptions) NewSynonyms() core.Optional[[]string] {
	return core.Get[[]string](o.opts, "new_synonyms")
}

// NewType returns new_type, unset when it was not supplied.
func (o *UpdateValueOptions) NewType() core.Optional[string] {
	return core.Get[string](o.opts, "new_type")
}

// NewValue returns new_value, unset when it was not supplied.
func (o *UpdateValueOptions) NewValue() core.Optional[string] {
	return core.Get[string](o.opts, "new_value")
}

// UpdateValue performs POST /v1/workspaces/{workspace_id}/entities/{entity}/values/{value}.
//
// Update entity value
func (s *Service) UpdateValue(ctx context.Context, opts *UpdateValueOptions, headers ...http.Header) (*Value, error) {
	var result Value
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// -----------------------------------------------------
// DELETE VALUE
// -----------------------------------------------------

var deleteValueOperation = &core.Operation{
	ID:     "deleteValue",
	Method: http.MethodDelete,
	Path:   "/v1/workspaces/{workspace_id}/entities/{entity}/values/{value}",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "entity", Wire: "entity", In: core.InPath, Required: true},
		{Name: "value", Wire: "value", In: core.InPath, Required: true},
	},
}

// DeleteValueOperation returns a copy of the descriptor of DELETE /v1/workspaces/{workspace_id}/entities/{entity}/values/{value}.
func DeleteValueOperation() *core.Operation {
	return deleteValueOperation.Clone()
}

// DeleteValueOptions holds the parameters of a deleteValue call.
// It is immutable; build one with NewDeleteValueOptionsBuilder.
// The zero value holds no parameters.
type DeleteValueOptions struct {
	opts *core.Options
}

// DeleteValueOptionsBuilder stages DeleteValueOptions. The zero value is an empty builder.
type DeleteValueOptionsBuilder struct {
	b *core.Builder
}

// NewDeleteValueOptionsBuilder returns a builder with the required parameters set.
func NewDeleteValueOptionsBuilder(workspaceID string, entity string, value string) *DeleteValueOptionsBuilder {
	return new(DeleteValueOptionsBuilder).
		WorkspaceID(workspaceID).
		Entity(entity).
		Value(value)
}

func (b *DeleteValueOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(deleteValueOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *DeleteValueOptionsBuilder) WorkspaceID(workspaceID string) *DeleteValueOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Entity sets entity. The name of the entity.
func (b *DeleteValueOptionsBuilder) Entity(entity string) *DeleteValueOptionsBuilder {
	b.builder().Set("entity", entity)
	return b
}

// Value sets value. The text of the entity value.
func (b *DeleteValueOptionsBuilder) Value(value string) *DeleteValueOptionsBuilder {
	b.builder().Set("value", value)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *DeleteValueOptionsBuilder) Clear(wireNames ...string) *DeleteValueOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable DeleteValueOptions.
func (b *DeleteValueOptionsBuilder) Build() (*DeleteValueOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &DeleteValueOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *DeleteValueOptions) NewBuilder() *DeleteValueOptionsBuilder {
	return &DeleteValueOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *DeleteValueOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *DeleteValueOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *DeleteValueOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Entity returns entity.
func (o *DeleteValueOptions) Entity() string {
	return core.Require[string](o.opts, "entity")
}

// Value returns value.
func (o *DeleteValueOptions) Value() string {
	return core.Require[string](o.opts, "value")
}

// DeleteValue performs DELETE /v1/workspaces/{workspace_id}/entities/{entity}/values/{value}.
//
// Delete entity value
func (s *Service) DeleteValue(ctx context.Context, opts *DeleteValueOptions, headers ...http.Header) error {
	return s.invoke(ctx, opts.Options(), headers, nil)
}
