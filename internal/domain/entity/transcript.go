package entity

import "fmt"

// Transcript is the ordered, append-only message history of one conversation.
type Transcript struct {
	messages []Message
}

func NewTranscript(messages ...Message) *Transcript {
	t := &Transcript{}
	for _, m := range messages {
		t.Append(m)
	}
	return t
}

func (t *Transcript) Append(m Message) {
	m.ToolCalls = append([]ToolCall(nil), m.ToolCalls...)
	t.messages = append(t.messages, m)
}

// Messages returns a copy of the history.
func (t *Transcript) Messages() []Message {
	out := make([]Message, len(t.messages))
	copy(out, t.messages)
	return out
}

func (t *Transcript) Len() int {
	return len(t.messages)
}

// Validate checks that every tool message answers exactly one call issued by the
// nearest preceding assistant message, and answers it only once.
func (t *Transcript) Validate() error {
	var pending map[string]bool
	for i, m := range t.messages {
		switch m.Role {
		case RoleAssistant:
			pending = make(map[string]bool, len(m.ToolCalls))
			for _, tc := range m.ToolCalls {
				pending[tc.ID] = false
			}
		case RoleTool:
			if pending == nil {
				return fmt.Errorf("message %d: tool result without a preceding assistant tool call", i)
			}
			answered, ok := pending[m.ToolCallID]
			if !ok {
				return fmt.Errorf("message %d: tool_call_id %q does not match any pending tool call", i, m.ToolCallID)
			}
			if answered {
				return fmt.Errorf("message %d: tool_call_id %q answered twice", i, m.ToolCallID)
			}
			pending[m.ToolCallID] = true
		default:
			pending = nil
		}
	}
	return nil
}
