package assistantv1

import (
	"context"
	"net/http"

	"github.com/watson-developer-cloud/assistant-go-sdk/core"
)

// -----------------------------------------------------
// LIST WORKSPACES
// -----------------------------------------------------

var listWorkspacesOperation = &core.Operation{
	ID:     "listWorkspaces",
	Method: http.MethodGet,
	Path:   "/v1/workspaces",
	Fields: []core.Field{
		{Name: "pageLimit", Wire: "page_limit", In: core.InQuery},
		{Name: "includeCount", Wire: "include_count", In: core.InQuery},
		{Name: "sort", Wire: "sort", In: core.InQuery},
		{Name: "cursor", Wire: "cursor", In: core.InQuery},
		{Name: "includeAudit", Wire: "include_audit", In: core.InQuery},
	},
}

// ListWorkspacesOperation returns a copy of the descriptor of GET /v1/workspaces.
func ListWorkspacesOperation() *core.Operation {
	return listWorkspacesOperation.Clone()
}

// ListWorkspacesOptions holds the parameters of a listWorkspaces call.
// It is immutable; build one with NewListWorkspacesOptionsBuilder.
// The zero value holds no parameters.
type ListWorkspacesOptions struct {
	opts *core.Options
}

// ListWorkspacesOptionsBuilder stages ListWorkspacesOptions. The zero value is an empty builder.
type ListWorkspacesOptionsBuilder struct {
	b *core.Builder
}

// NewListWorkspacesOptionsBuilder returns a builder with the required parameters set.
func NewListWorkspacesOptionsBuilder() *ListWorkspacesOptionsBuilder {
	return new(ListWorkspacesOptionsBuilder)
}

func (b *ListWorkspacesOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(listWorkspacesOperation)
	}
	return b.b
}

// PageLimit sets page_limit. The number of records to return in each page of results.
func (b *ListWorkspacesOptionsBuilder) PageLimit(pageLimit int64) *ListWorkspacesOptionsBuilder {
	b.builder().Set("page_limit", pageLimit)
	return b
}

// IncludeCount sets include_count. Whether to include information about the number of records returned.
func (b *ListWorkspacesOptionsBuilder) IncludeCount(includeCount bool) *ListWorkspacesOptionsBuilder {
	b.builder().Set("include_count", includeCount)
	return b
}

// Sort sets sort. The attribute by which returned results will be sorted.
func (b *ListWorkspacesOptionsBuilder) Sort(sort string) *ListWorkspacesOptionsBuilder {
	b.builder().Set("sort", sort)
	return b
}

// Cursor sets cursor. A token identifying the page of results to retrieve.
func (b *ListWorkspacesOptionsBuilder) Cursor(cursor string) *ListWorkspacesOptionsBuilder {
	b.builder().Set("cursor", cursor)
	return b
}

// IncludeAudit sets include_audit. Whether to include the audit properties (`created` and `updated` timestamps) in the response.
func (b *ListWorkspacesOptionsBuilder) IncludeAudit(includeAudit bool) *ListWorkspacesOptionsBuilder {
	b.builder().Set("include_audit", includeAudit)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *ListWorkspacesOptionsBuilder) Clear(wireNames ...string) *ListWorkspacesOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable ListWorkspacesOptions.
func (b *ListWorkspacesOptionsBuilder) Build() (*ListWorkspacesOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &ListWorkspacesOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *ListWorkspacesOptions) NewBuilder() *ListWorkspacesOptionsBuilder {
	return &ListWorkspacesOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *ListWorkspacesOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *ListWorkspacesOptions) String() string {
	return o.opts.String()
}

// PageLimit returns page_limit, unset when it was not supplied.
func (o *ListWorkspacesOptions) PageLimit() core.Optional[int64] {
	return core.Get[int64](o.opts, "page_limit")
}

// IncludeCount returns include_count, unset when it was not supplied.
func (o *ListWorkspacesOptions) IncludeCount() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_count")
}

// Sort returns sort, unset when it was not supplied.
func (o *ListWorkspacesOptions) Sort() core.Optional[string] {
	return core.Get[string](o.opts, "sort")
}

// Cursor returns cursor, unset when it was not supplied.
func (o *ListWorkspacesOptions) Cursor() core.Optional[string] {
	return core.Get[string](o.opts, "cursor")
}

// IncludeAudit returns include_audit, unset when it was not supplied.
func (o *ListWorkspacesOptions) IncludeAudit() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_audit")
}

// ListWorkspaces performs GET /v1/workspaces.
//
// List workspaces
func (s *Service) ListWorkspaces(ctx context.Context, opts *ListWorkspacesOptions, headers ...http.Header) (*WorkspaceCollection, error) {
	var result WorkspaceCollection
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// -----------------------------------------------------
// CREATE WORKSPACE
// -----------------------------------------------------

var createWorkspaceOperation = &core.Operation{
	ID:     "createWorkspace",
	Method: http.MethodPost,
	Path:   "/v1/workspaces",
	Fields: []core.Field{
		{Name: "description", Wire: "description", In: core.InBody},
		{Name: "entities", Wire: "entities", In: core.InBody},
		{Name: "intents", Wire: "intents", In: core.InBody},
		{Name: "language", Wire: "language", In: core.InBody},
		{Name: "learningOptOut", Wire: "learning_opt_out", In: core.InBody},
		{Name: "metadata", Wire: "metadata", In: core.InBody},
		{Name: "name", Wire: "name", In: core.InBody},
	},
}

// CreateWorkspaceOperation returns a copy of the descriptor of POST /v1/workspaces.
func CreateWorkspaceOperation() *core.Operation {
	return createWorkspaceOperation.Clone()
}

// CreateWorkspaceOptions holds the parameters of a createWorkspace call.
// It is immutable; build one with NewCreateWorkspaceOptionsBuilder.
// The zero value holds no parameters.
type CreateWorkspaceOptions struct {
	opts *core.Options
}

// CreateWorkspaceOptionsBuilder stages CreateWorkspaceOptions. The zero value is an empty builder.
type CreateWorkspaceOptionsBuilder struct {
	b *core.Builder
}

// NewCreateWorkspaceOptionsBuilder returns a builder with the required parameters set.
func NewCreateWorkspaceOptionsBuilder() *CreateWorkspaceOptionsBuilder {
	return new(CreateWorkspaceOptionsBuilder)
}

func (b *CreateWorkspaceOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(createWorkspaceOperation)
	}
	return b.b
}

// Description sets description. The description of the workspace.
func (b *CreateWorkspaceOptionsBuilder) Description(description string) *CreateWorkspaceOptionsBuilder {
	b.builder().Set("description", description)
	return b
}

// Entities sets entities. An array of objects defining the entities for the workspace.
func (b *CreateWorkspaceOptionsBuilder) Entities(entities []CreateEntity) *CreateWorkspaceOptionsBuilder {
	b.builder().Set("entities", entities)
	return b
}

// Intents sets intents. An array of objects defining the intents for the workspace.
func (b *CreateWorkspaceOptionsBuilder) Intents(intents []CreateIntent) *CreateWorkspaceOptionsBuilder {
	b.builder().Set("intents", intents)
	return b
}

// Language sets language. The language of the workspace.
func (b *CreateWorkspaceOptionsBuilder) Language(language string) *CreateWorkspaceOptionsBuilder {
	b.builder().Set("language", language)
	return b
}

// LearningOptOut sets learning_opt_out. Whether training data from the workspace can be used by IBM for general service improvements.
func (b *CreateWorkspaceOptionsBuilder) LearningOptOut(learningOptOut bool) *CreateWorkspaceOptionsBuilder {
	b.builder().Set("learning_opt_out", learningOptOut)
	return b
}

// Metadata sets metadata. Any metadata related to the workspace.
func (b *CreateWorkspaceOptionsBuilder) Metadata(metadata map[string]any) *CreateWorkspaceOptionsBuilder {
	b.builder().Set("metadata", metadata)
	return b
}

// Name sets name. The name of the workspace.
func (b *CreateWorkspaceOptionsBuilder) Name(name string) *CreateWorkspaceOptionsBuilder {
	b.builder().Set("name", name)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *CreateWorkspaceOptionsBuilder) Clear(wireNames ...string) *CreateWorkspaceOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable CreateWorkspaceOptions.
func (b *CreateWorkspaceOptionsBuilder) Build() (*CreateWorkspaceOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &CreateWorkspaceOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *CreateWorkspaceOptions) NewBuilder() *CreateWorkspaceOptionsBuilder {
	return &CreateWorkspaceOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *CreateWorkspaceOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *CreateWorkspaceOptions) String() string {
	return o.opts.String()
}

// Description returns description, unset when it was not supplied.
func (o *CreateWorkspaceOptions) Description() core.Optional[string] {
	return core.Get[string](o.opts, "description")
}

// Entities returns entities, unset when it was not supplied.
func (o *CreateWorkspaceOptions) Entities() core.Optional[[]CreateEntity] {
	return core.Get[[]CreateEntity](o.opts, "entities")
}

// Intents returns intents, unset when it was not supplied.
func (o *CreateWorkspaceOptions) Intents() core.Optional[[]CreateIntent] {
	return core.Get[[]CreateIntent](o.opts, "intents")
}

// Language returns language, unset when it was not supplied.
func (o *CreateWorkspaceOptions) Language() core.Optional[string] {
	return core.Get[string](o.opts, "language")
}

// LearningOptOut returns learning_opt_out, unset when it was not supplied.
func (o *CreateWorkspaceOptions) LearningOptOut() core.Optional[bool] {
	return core.Get[bool](o.opts, "learning_opt_out")
}

// Metadata returns metadata, unset when it was not supplied.
func (o *CreateWorkspaceOptions) Metadata() core.Optional[map[string]any] {
	return core.Get[map[string]any](o.opts, "metadata")
}

// Name returns name, unset when it was not supplied.
func (o *CreateWorkspaceOptions) Name() core.Optional[string] {
	return core.Get[string](o.opts, "name")
}

// CreateWorkspace performs POST /v1/workspaces.
//
// Create workspace
func (s *Service) CreateWorkspace(ctx context.Context, opts *CreateWorkspaceOptions, headers ...http.Header) (*Workspace, error) {
	var result Workspace
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// -----------------------------------------------------
// GET WORKSPACE
// -----------------------------------------------------

var getWorkspaceOperation = &core.Operation{
	ID:     "getWorkspace",
	Method: http.MethodGet,
	Path:   "/v1/workspaces/{workspace_id}",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "export", Wire: "export", In: core.InQuery},
		{Name: "includeAudit", Wire: "include_audit", In: core.InQuery},
		{Name: "sort", Wire: "sort", In: core.InQuery},
	},
}

// GetWorkspaceOperation returns a copy of the descriptor of GET /v1/workspaces/{workspace_id}.
func GetWorkspaceOperation() *core.Operation {
	return getWorkspaceOperation.Clone()
}

// GetWorkspaceOptions holds the parameters of a getWorkspace call.
// It is immutable; build one with NewGetWorkspaceOptionsBuilder.
// The zero value holds no parameters.
type GetWorkspaceOptions struct {
	opts *core.Options
}

// GetWorkspaceOptionsBuilder stages GetWorkspaceOptions. The zero value is an empty builder.
type GetWorkspaceOptionsBuilder struct {
	b *core.Builder
}

// NewGetWorkspaceOptionsBuilder returns a builder with the required parameters set.
func NewGetWorkspaceOptionsBuilder(workspaceID string) *GetWorkspaceOptionsBuilder {
	return new(GetWorkspaceOptionsBuilder).
		WorkspaceID(workspaceID)
}

func (b *GetWorkspaceOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(getWorkspaceOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *GetWorkspaceOptionsBuilder) WorkspaceID(workspaceID string) *GetWorkspaceOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Export sets export. Whether to include all element content in the returned data.
func (b *GetWorkspaceOptionsBuilder) Export(export bool) *GetWorkspaceOptionsBuilder {
	b.builder().Set("export", export)
	return b
}

// IncludeAudit sets include_audit. Whether to include the audit properties (`created` and `updated` timestamps) in the response.
func (b *GetWorkspaceOptionsBuilder) IncludeAudit(includeAudit bool) *GetWorkspaceOptionsBuilder {
	b.builder().Set("include_audit", includeAudit)
	return b
}

// Sort sets sort. Indicates how the returned workspace data will be sorted.
func (b *GetWorkspaceOptionsBuilder) Sort(sort string) *GetWorkspaceOptionsBuilder {
	b.builder().Set("sort", sort)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *GetWorkspaceOptionsBuilder) Clear(wireNames ...string) *GetWorkspaceOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable GetWorkspaceOptions.
func (b *GetWorkspaceOptionsBuilder) Build() (*GetWorkspaceOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &GetWorkspaceOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *GetWorkspaceOptions) NewBuilder() *GetWorkspaceOptionsBuilder {
	return &GetWorkspaceOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *GetWorkspaceOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *GetWorkspaceOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *GetWorkspaceOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Export returns export, unset when it was not supplied.
func (o *GetWorkspaceOptions) Export() core.Optional[bool] {
	return core.Get[bool](o.opts, "export")
}

// IncludeAudit returns include_audit, unset when it was not supplied.
func (o *GetWorkspaceOptions) IncludeAudit() core.Optional[bool] {
	return core.Get[bool](o.opts, "include_audit")
}

// Sort returns sort, unset when it was not supplied.
func (o *GetWorkspaceOptions) Sort() core.Optional[string] {
	return core.Get[string](o.opts, "sort")
}

// GetWorkspace performs GET /v1/workspaces/{workspace_id}.
//
// Get information about a workspace
func (s *Service) GetWorkspace(ctx context.Context, opts *GetWorkspaceOptions, headers ...http.Header) (*Workspace, error) {
	var result Workspace
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// -----------------------------------------------------
// UPDATE WORKSPACE
// -----------------------------------------------------

var updateWorkspaceOperation = &core.Operation{
	ID:     "updateWorkspace",
	Method: http.MethodPost,
	Path:   "/v1/workspaces/{workspace_id}",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
		{Name: "append", Wire: "append", In: core.InQuery},
		{Name: "description", Wire: "description", In: core.InBody},
		{Name: "language", Wire: "language", In: core.InBody},
		{Name: "learningOptOut", Wire: "learning_opt_out", In: core.InBody},
		{Name: "metadata", Wire: "metadata", In: core.InBody},
		{Name: "name", Wire: "name", In: core.InBody},
	},
}

// UpdateWorkspaceOperation returns a copy of the descriptor of POST /v1/workspaces/{workspace_id}.
func UpdateWorkspaceOperation() *core.Operation {
	return updateWorkspaceOperation.Clone()
}

// UpdateWorkspaceOptions holds the parameters of a updateWorkspace call.
// It is immutable; build one with NewUpdateWorkspaceOptionsBuilder.
// The zero value holds no parameters.
type UpdateWorkspaceOptions struct {
	opts *core.Options
}

// UpdateWorkspaceOptionsBuilder stages UpdateWorkspaceOptions. The zero value is an empty builder.
type UpdateWorkspaceOptionsBuilder struct {
	b *core.Builder
}

// NewUpdateWorkspaceOptionsBuilder returns a builder with the required parameters set.
func NewUpdateWorkspaceOptionsBuilder(workspaceID string) *UpdateWorkspaceOptionsBuilder {
	return new(UpdateWorkspaceOptionsBuilder).
		WorkspaceID(workspaceID)
}

func (b *UpdateWorkspaceOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(updateWorkspaceOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *UpdateWorkspaceOptionsBuilder) WorkspaceID(workspaceID string) *UpdateWorkspaceOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Append sets append. Whether the new data is to be appended to the existing data in the workspace.
func (b *UpdateWorkspaceOptionsBuilder) Append(append bool) *UpdateWorkspaceOptionsBuilder {
	b.builder().Set("append", append)
	return b
}

// Description sets description. The description of the workspace.
func (b *UpdateWorkspaceOptionsBuilder) Description(description string) *UpdateWorkspaceOptionsBuilder {
	b.builder().Set("description", description)
	return b
}

// Language sets language. The language of the workspace.
func (b *UpdateWorkspaceOptionsBuilder) Language(language string) *UpdateWorkspaceOptionsBuilder {
	b.builder().Set("language", language)
	return b
}

// LearningOptOut sets learning_opt_out. Whether training data from the workspace can be used by IBM for general service improvements.
func (b *UpdateWorkspaceOptionsBuilder) LearningOptOut(learningOptOut bool) *UpdateWorkspaceOptionsBuilder {
	b.builder().Set("learning_opt_out", learningOptOut)
	return b
}

// Metadata sets metadata. Any metadata related to the workspace.
func (b *UpdateWorkspaceOptionsBuilder) Metadata(metadata map[string]any) *UpdateWorkspaceOptionsBuilder {
	b.builder().Set("metadata", metadata)
	return b
}

// Name sets name. The name of the workspace.
func (b *UpdateWorkspaceOptionsBuilder) Name(name string) *UpdateWorkspaceOptionsBuilder {
	b.builder().Set("name", name)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *UpdateWorkspaceOptionsBuilder) Clear(wireNames ...string) *UpdateWorkspaceOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable UpdateWorkspaceOptions.
func (b *UpdateWorkspaceOptionsBuilder) Build() (*UpdateWorkspaceOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &UpdateWorkspaceOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *UpdateWorkspaceOptions) NewBuilder() *UpdateWorkspaceOptionsBuilder {
	return &UpdateWorkspaceOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *UpdateWorkspaceOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *UpdateWorkspaceOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *UpdateWorkspaceOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// Append returns append, unset when it was not supplied.
func (o *UpdateWorkspaceOptions) Append() core.Optional[bool] {
	return core.Get[bool](o.opts, "append")
}

// Description returns description, unset when it was not supplied.
func (o *UpdateWorkspaceOptions) Description() core.Optional[string] {
	return core.Get[string](o.opts, "description")
}

// Language returns language, unset when it was not supplied.
func (o *UpdateWorkspaceOptions) Language() core.Optional[string] {
	return core.Get[string](o.opts, "language")
}

// LearningOptOut returns learning_opt_out, unset when it was not supplied.
func (o *UpdateWorkspaceOptions) LearningOptOut() core.Optional[bool] {
	return core.Get[bool](o.opts, "learning_opt_out")
}

// Metadata returns metadata, unset when it was not supplied.
func (o *UpdateWorkspaceOptions) Metadata() core.Optional[map[string]any] {
	return core.Get[map[string]any](o.opts, "metadata")
}

// Name returns name, unset when it was not supplied.
func (o *UpdateWorkspaceOptions) Name() core.Optional[string] {
	return core.Get[string](o.opts, "name")
}

// UpdateWorkspace performs POST /v1/workspaces/{workspace_id}.
//
// Update workspace
func (s *Service) UpdateWorkspace(ctx context.Context, opts *UpdateWorkspaceOptions, headers ...http.Header) (*Workspace, error) {
	var result Workspace
	if err := s.invoke(ctx, opts.Options(), headers, &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// -----------------------------------------------------
// DELETE WORKSPACE
// -----------------------------------------------------

var deleteWorkspaceOperation = &core.Operation{
	ID:     "deleteWorkspace",
	Method: http.MethodDelete,
	Path:   "/v1/workspaces/{workspace_id}",
	Fields: []core.Field{
		{Name: "workspaceId", Wire: "workspace_id", In: core.InPath, Required: true},
	},
}

// DeleteWorkspaceOperation returns a copy of the descriptor of DELETE /v1/workspaces/{workspace_id}.
func DeleteWorkspaceOperation() *core.Operation {
	return deleteWorkspaceOperation.Clone()
}

// DeleteWorkspaceOptions holds the parameters of a deleteWorkspace call.
// It is immutable; build one with NewDeleteWorkspaceOptionsBuilder.
// The zero value holds no parameters.
type DeleteWorkspaceOptions struct {
	opts *core.Options
}

// DeleteWorkspaceOptionsBuilder stages DeleteWorkspaceOptions. The zero value is an empty builder.
type DeleteWorkspaceOptionsBuilder struct {
	b *core.Builder
}

// NewDeleteWorkspaceOptionsBuilder returns a builder with the required parameters set.
func NewDeleteWorkspaceOptionsBuilder(workspaceID string) *DeleteWorkspaceOptionsBuilder {
	return new(DeleteWorkspaceOptionsBuilder).
		WorkspaceID(workspaceID)
}

func (b *DeleteWorkspaceOptionsBuilder) builder() *core.Builder {
	if b.b == nil {
		b.b = core.NewBuilder(deleteWorkspaceOperation)
	}
	return b.b
}

// WorkspaceID sets workspace_id. Unique identifier of the workspace.
func (b *DeleteWorkspaceOptionsBuilder) WorkspaceID(workspaceID string) *DeleteWorkspaceOptionsBuilder {
	b.builder().Set("workspace_id", workspaceID)
	return b
}

// Clear unsets the given parameters, named by wire name.
func (b *DeleteWorkspaceOptionsBuilder) Clear(wireNames ...string) *DeleteWorkspaceOptionsBuilder {
	b.builder().Clear(wireNames...)
	return b
}

// Build validates the staged parameters and returns an immutable DeleteWorkspaceOptions.
func (b *DeleteWorkspaceOptionsBuilder) Build() (*DeleteWorkspaceOptions, error) {
	opts, err := b.builder().Build()
	if err != nil {
		return nil, err
	}
	return &DeleteWorkspaceOptions{opts: opts}, nil
}

// NewBuilder returns a builder seeded with a copy of every parameter of o.
func (o *DeleteWorkspaceOptions) NewBuilder() *DeleteWorkspaceOptionsBuilder {
	return &DeleteWorkspaceOptionsBuilder{b: o.opts.NewBuilder()}
}

// Options returns the untyped parameter set sent by the session.
func (o *DeleteWorkspaceOptions) Options() *core.Options {
	if o == nil {
		return nil
	}
	return o.opts
}

func (o *DeleteWorkspaceOptions) String() string {
	return o.opts.String()
}

// WorkspaceID returns workspace_id.
func (o *DeleteWorkspaceOptions) WorkspaceID() string {
	return core.Require[string](o.opts, "workspace_id")
}

// DeleteWorkspace performs DELETE /v1/workspaces/{workspace_id}.
//
// Delete workspace
func (s *Service) DeleteWorkspace(ctx context.Context, opts *DeleteWorkspaceOptions, headers ...http.Header) error {
	return s.invoke(ctx, opts.Options(), headers, nil)
}
