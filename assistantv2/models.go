package assistantv2

// -----------------------------------------------------
// MODELS
// -----------------------------------------------------

// SessionResponse is the result of createSession.
type SessionResponse struct {
	SessionID string `json:"session_id" required:"true"`
}

// MessageInputOptions controls how the assistant responds.
type MessageInputOptions struct {
	Debug            *bool `json:"debug,omitempty" required:"false"`
	Restart          *bool `json:"restart,omitempty" required:"false"`
	AlternateIntents *bool `json:"alternate_intents,omitempty" required:"false"`
	ReturnContext    *bool `json:"return_context,omitempty" required:"false"`
}

// MessageInput carries the user input.
type MessageInput struct {
	MessageType string               `json:"message_type,omitempty" required:"false"`
	Text        string               `json:"text,omitempty" required:"false"`
	Options     *MessageInputOptions `json:"options,omitempty" required:"false"`
}

// MessageContext is the state of the conversation.
type MessageContext struct {
	Global map[string]any `json:"global,omitempty" required:"false"`
	Skills map[string]any `json:"skills,omitempty" required:"false"`
}

// MessageRequest is the payload of message.
type MessageRequest struct {
	Input   *MessageInput   `json:"input,omitempty" required:"false"`
	Context *MessageContext `json:"context,omitempty" required:"false"`
}

// RuntimeResponseGeneric is one response of a dialog node.
type RuntimeResponseGeneric struct {
	ResponseType string `json:"response_type" required:"true"`
	Text         string `json:"text,omitempty" required:"false"`
	Time         *int64 `json:"time,omitempty" required:"false"`
	Typing       *bool  `json:"typing,omitempty" required:"false"`
	Source       string `json:"source,omitempty" required:"false"`
	Title        string `json:"title,omitempty" required:"false"`
	Description  string `json:"description,omitempty" required:"false"`
}

// MessageOutput is the assistant output rendered by the client.
type MessageOutput struct {
	Generic  []RuntimeResponseGeneric `json:"generic,omitempty" required:"false"`
	Intents  []map[string]any         `json:"intents,omitempty" required:"false"`
	Entities []map[string]any         `json:"entities,omitempty" required:"false"`
}

// MessageResponse is the result of message.
type MessageResponse struct {
	Output  MessageOutput   `json:"output" required:"true"`
	Context *MessageContext `json:"context,omitempty" required:"false"`
}

// Texts returns the text of every generic text response, in order.
func (r *MessageResponse) Texts() []string {
	var texts []string
	for _, g := range r.Output.Generic {
		if g.ResponseType == "text" {
			texts = append(texts, g.Text)
		}
	}
	return texts
}
