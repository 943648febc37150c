package assistantv1

import "time"

// -----------------------------------------------------
// MODELS
// -----------------------------------------------------

// CreateWorkspace is the payload of createWorkspace.
type CreateWorkspace struct {
	Name           string         `json:"name,omitempty" required:"false"`
	Description    string         `json:"description,omitempty" required:"false"`
	Language       string         `json:"language,omitempty" required:"false"`
	Metadata       map[string]any `json:"metadata,omitempty" required:"false"`
	LearningOptOut *bool          `json:"learning_opt_out,omitempty" required:"false"`
	Intents        []CreateIntent `json:"intents,omitempty" required:"false"`
	Entities       []CreateEntity `json:"entities,omitempty" required:"false"`
}

// UpdateWorkspace is the payload of updateWorkspace.
type UpdateWorkspace struct {
	Name           string         `json:"name,omitempty" required:"false"`
	Description    string         `json:"description,omitempty" required:"false"`
	Language       string         `json:"language,omitempty" required:"false"`
	Metadata       map[string]any `json:"metadata,omitempty" required:"false"`
	LearningOptOut *bool          `json:"learning_opt_out,omitempty" required:"false"`
}

// Workspace is a workspace as returned by the service.
type Workspace struct {
	Name           string         `json:"name" required:"true"`
	Language       string         `json:"language" required:"true"`
	Created        *time.Time     `json:"created,omitempty" required:"false"`
	Updated        *time.Time     `json:"updated,omitempty" required:"false"`
	WorkspaceID    string         `json:"workspace_id" required:"true"`
	Description    string         `json:"description,omitempty" required:"false"`
	Metadata       map[string]any `json:"metadata,omitempty" required:"false"`
	LearningOptOut bool           `json:"learning_opt_out" required:"true"`
	Status         string         `json:"status,omitempty" required:"false"`
	Intents        []Intent       `json:"intents,omitempty" required:"false"`
	Entities       []Entity       `json:"entities,omitempty" required:"false"`
}

// WorkspaceCollection is one page of workspaces.
type WorkspaceCollection struct {
	Workspaces []Workspace `json:"workspaces" required:"true"`
	Pagination Pagination  `json:"pagination" required:"true"`
}

// CreateIntent defines an intent inside a workspace payload.
type CreateIntent struct {
	Intent      string    `json:"intent" required:"true"`
	Description string    `json:"description,omitempty" required:"false"`
	Examples    []Example `json:"examples,omitempty" required:"false"`
}

// Intent is an intent as returned by the service.
type Intent struct {
	Intent      string     `json:"intent" required:"true"`
	Description string     `json:"description,omitempty" required:"false"`
	Created     *time.Time `json:"created,omitempty" required:"false"`
	Updated     *time.Time `json:"updated,omitempty" required:"false"`
	Examples    []Example  `json:"examples,omitempty" required:"false"`
}

// IntentCollection is one page of intents.
type IntentCollection struct {
	Intents    []Intent   `json:"intents" required:"true"`
	Pagination Pagination `json:"pagination" required:"true"`
}

// Example is a user input example of an intent.
type Example struct {
	Text    string     `json:"text" required:"true"`
	Created *time.Time `json:"created,omitempty" required:"false"`
	Updated *time.Time `json:"updated,omitempty" required:"false"`
}

// CreateEntity defines an entity inside a workspace payload.
type CreateEntity struct {
	Entity      string         `json:"entity" required:"true"`
	Description string         `json:"description,omitempty" required:"false"`
	Metadata    map[string]any `json:"metadata,omitempty" required:"false"`
	FuzzyMatch  *bool          `json:"fuzzy_match,omitempty" required:"false"`
	Values      []CreateValue  `json:"values,omitempty" required:"false"`
}

// Entity is an entity as returned by the service.
type Entity struct {
	Entity      string         `json:"entity" required:"true"`
	Description string         `json:"description,omitempty" required:"false"`
	Metadata    map[string]any `json:"metadata,omitempty" required:"false"`
	FuzzyMatch  *bool          `json:"fuzzy_match,omitempty" required:"false"`
	Created     *time.Time     `json:"created,omitempty" required:"false"`
	Updated     *time.Time     `json:"updated,omitempty" required:"false"`
	Values      []Value        `json:"values,omitempty" required:"false"`
}

// EntityCollection is one page of entities.
type EntityCollection struct {
	Entities   []Entity   `json:"entities" required:"true"`
	Pagination Pagination `json:"pagination" required:"true"`
}

// CreateValue defines an entity value inside an entity payload.
type CreateValue struct {
	Value    string         `json:"value" required:"true"`
	Metadata map[string]any `json:"metadata,omitempty" required:"false"`
	Type     string         `json:"type,omitempty" required:"false"`
	Synonyms []string       `json:"synonyms,omitempty" required:"false"`
	Patterns []string       `json:"patterns,omitempty" required:"false"`
}

// UpdateValue is the payload of updateValue.
type UpdateValue struct {
	NewValue    string         `json:"new_value,omitempty" required:"false"`
	NewMetadata map[string]any `json:"new_metadata,omitempty" required:"false"`
	NewType     string         `json:"new_type,omitempty" required:"false"`
	NewSynonyms []string       `json:"new_synonyms,omitempty" required:"false"`
	NewPatterns []string       `json:"new_patterns,omitempty" required:"false"`
}

// Value is an entity value as returned by the service.
type Value struct {
	Value    string         `json:"value" required:"true"`
	Metadata map[string]any `json:"metadata,omitempty" required:"false"`
	Type     string         `json:"type" required:"true"`
	Synonyms []string       `json:"synonyms,omitempty" required:"false"`
	Patterns []string       `json:"patterns,omitempty" required:"false"`
	Created  *time.Time     `json:"created,omitempty" required:"false"`
	Updated  *time.Time     `json:"updated,omitempty" required:"false"`
}

// ValueCollection is one page of entity values.
type ValueCollection struct {
	Values     []Value    `json:"values" required:"true"`
	Pagination Pagination `json:"pagination" required:"true"`
}

// Synonym is a synonym of an entity value.
type Synonym struct {
	Synonym string     `json:"synonym" required:"true"`
	Created *time.Time `json:"created,omitempty" required:"false"`
	Updated *time.Time `json:"updated,omitempty" required:"false"`
}

// SynonymCollection is one page of synonyms.
type SynonymCollection struct {
	Synonyms   []Synonym  `json:"synonyms" required:"true"`
	Pagination Pagination `json:"pagination" required:"true"`
}

// MessageInput carries the user input text.
type MessageInput struct {
	Text string `json:"text,omitempty" required:"false"`
}

// MessageRequest is the payload of message.
type MessageRequest struct {
	Input            *MessageInput  `json:"input,omitempty" required:"false"`
	AlternateIntents *bool          `json:"alternate_intents,omitempty" required:"false"`
	Context          map[string]any `json:"context,omitempty" required:"false"`
}

// RuntimeIntent is an intent recognized in the user input.
type RuntimeIntent struct {
	Intent     string  `json:"intent" required:"true"`
	Confidence float64 `json:"confidence" required:"true"`
}

// RuntimeEntity is an entity detected in the user input.
type RuntimeEntity struct {
	Entity     string   `json:"entity" required:"true"`
	Location   []int64  `json:"location" required:"true"`
	Value      string   `json:"value" required:"true"`
	Confidence *float64 `json:"confidence,omitempty" required:"false"`
}

// MessageResponse is the result of message.
type MessageResponse struct {
	Input            *MessageInput   `json:"input,omitempty" required:"false"`
	Intents          []RuntimeIntent `json:"intents" required:"true"`
	Entities         []RuntimeEntity `json:"entities" required:"true"`
	AlternateIntents *bool           `json:"alternate_intents,omitempty" required:"false"`
	Context          map[string]any  `json:"context" required:"true"`
	Output           map[string]any  `json:"output" required:"true"`
}

// Log is one logged message exchange.
type Log struct {
	Request           MessageRequest  `json:"request" required:"true"`
	Response          MessageResponse `json:"response" required:"true"`
	LogID             string          `json:"log_id" required:"true"`
	RequestTimestamp  string          `json:"request_timestamp" required:"true"`
	ResponseTimestamp string          `json:"response_timestamp" required:"true"`
	WorkspaceID       string          `json:"workspace_id" required:"true"`
	Language          string          `json:"language" required:"true"`
}

// LogPagination is the pagination data of a LogCollection.
type LogPagination struct {
	NextURL    string `json:"next_url,omitempty" required:"false"`
	Matched    *int64 `json:"matched,omitempty" required:"false"`
	NextCursor string `json:"next_cursor,omitempty" required:"false"`
}

// LogCollection is one page of log events.
type LogCollection struct {
	Logs       []Log         `json:"logs" required:"true"`
	Pagination LogPagination `json:"pagination" required:"true"`
}

// Pagination is the pagination data of a collection.
type Pagination struct {
	RefreshURL    string `json:"refresh_url" required:"true"`
	NextURL       string `json:"next_url,omitempty" required:"false"`
	Total         *int64 `json:"total,omitempty" required:"false"`
	Matched       *int64 `json:"matched,omitempty" required:"false"`
	RefreshCursor string `json:"refresh_cursor,omitempty" required:"false"`
	NextCursor    string `json:"next_cursor,omitempty" required:"false"`
}

// HasMore reports whether another page can be requested with NextCursor.
func (p Pagination) HasMore() bool {
	return p.NextCursor != ""
}

// HasMore reports whether another page can be requested with NextCursor.
func (p LogPagination) HasMore() bool {
	return p.NextCursor != ""
}
