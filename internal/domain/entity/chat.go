package entity

import "time"

// ChatRole is the author of a transcript message.
type ChatRole string

const (
	ChatRoleUser      ChatRole = "user"
	ChatRoleAssistant ChatRole = "assistant"
)

// ChatMessage is one entry of the user-visible transcript. It is never mutated after creation.
type ChatMessage struct {
	ID                 string    `json:"id"`
	Role               ChatRole  `json:"role"`
	Content            string    `json:"content"`
	SuggestedProducts  []Product `json:"suggestedProducts,omitempty"`
	AddedProducts      []Product `json:"addedProducts,omitempty"`
	RemovedProducts    []Product `json:"removedProducts,omitempty"`
	IsRecipeSuggestion bool      `json:"isRecipeSuggestion,omitempty"`
	CreatedAt          time.Time `json:"createdAt"`
}

// HistoryRole tags an entry of the model-facing conversation history.
type HistoryRole string

const (
	HistoryRoleSystem    HistoryRole = "system"
	HistoryRoleUser      HistoryRole = "user"
	HistoryRoleAssistant HistoryRole = "assistant"
	HistoryRoleTool      HistoryRole = "tool"
)

// HistoryEntry mirrors one message exchanged with the language model, including
// tool-call requests and tool results the transcript never renders.
type HistoryEntry struct {
	Role       HistoryRole    `json:"role"`
	Content    *string        `json:"content"`
	ToolCalls  []ToolCallSpec `json:"tool_calls,omitempty"`
	ToolCallID string         `json:"tool_call_id,omitempty"`
}

// ToolCallSpec is a model-issued function call in the OpenAI wire shape.
type ToolCallSpec struct {
	ID       string           `json:"id"`
	Type     string           `json:"type"`
	Function ToolCallFunction `json:"function"`
}

// ToolCallFunction carries the tool name and its raw JSON arguments.
type ToolCallFunction struct {
	Name      string `json:"name"`
	Arguments string `json:"arguments"`
}

// TextEntry builds a history entry with plain text content.
func TextEntry(role HistoryRole, content string) HistoryEntry {
	return HistoryEntry{Role: role, Content: &content}
}

// Text returns the content or "" for a null content.
func (e HistoryEntry) Text() string {
	if e.Content == nil {
		return ""
	}

	return *e.Content
}
