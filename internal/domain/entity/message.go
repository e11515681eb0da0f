package entity

type MessageRole string

const (
	RoleSystem    MessageRole = "system"
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleTool      MessageRole = "tool"
)

type Message struct {
	Role       MessageRole
	Content    string
	ToolCalls  []ToolCall
	ToolCallID string
	Name       string
}

// HasToolCalls reports whether the model asked for at least one function invocation.
func (m Message) HasToolCalls() bool {
	return len(m.ToolCalls) > 0
}

type ToolCall struct {
	ID        string
	Name      ToolName
	Arguments string
}

// ToolResult is the locally produced answer to a single ToolCall.
type ToolResult struct {
	ToolCallID string
	Name       ToolName
	Content    string
}

func (r ToolResult) Message() Message {
	return Message{
		Role:       RoleTool,
		ToolCallID: r.ToolCallID,
		Name:       string(r.Name),
		Content:    r.Content,
	}
}

type ToolDefinition struct {
	Name        ToolName
	Description string
	Parameters  map[string]interface{}
}
