package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assistantWithCalls(ids ...string) Message {
	msg := Message{Role: RoleAssistant}
	for _, id := range ids {
		msg.ToolCalls = append(msg.ToolCalls, ToolCall{ID: id, Name: ToolGetCurrentWeather, Arguments: "{}"})
	}
	return msg
}

func TestTranscript_ValidateOrdered(t *testing.T) {
	tr := NewTranscript(
		Message{Role: RoleUser, Content: "What's the weather like in Paris?"},
		assistantWithCalls("call_1", "call_2"),
		ToolResult{ToolCallID: "call_2", Name: ToolGetCurrentWeather, Content: "{}"}.Message(),
		ToolResult{ToolCallID: "call_1", Name: ToolGetCurrentWeather, Content: "{}"}.Message(),
	)

	require.NoError(t, tr.Validate())
	assert.Equal(t, 4, tr.Len())
}

func TestTranscript_ValidateToolWithoutAssistant(t *testing.T) {
	tr := NewTranscript(
		Message{Role: RoleUser, Content: "hi"},
		ToolResult{ToolCallID: "call_1", Name: ToolGetCurrentWeather}.Message(),
	)

	assert.Error(t, tr.Validate())
}

func TestTranscript_ValidateUnknownID(t *testing.T) {
	tr := NewTranscript(
		Message{Role: RoleUser, Content: "hi"},
		assistantWithCalls("call_1"),
		ToolResult{ToolCallID: "call_9", Name: ToolGetCurrentWeather}.Message(),
	)

	assert.ErrorContains(t, tr.Validate(), "call_9")
}

func TestTranscript_ValidateDuplicateAnswer(t *testing.T) {
	tr := NewTranscript(
		Message{Role: RoleUser, Content: "hi"},
		assistantWithCalls("call_1"),
		ToolResult{ToolCallID: "call_1", Name: ToolGetCurrentWeather}.Message(),
		ToolResult{ToolCallID: "call_1", Name: ToolGetCurrentWeather}.Message(),
	)

	assert.ErrorContains(t, tr.Validate(), "answered twice")
}

func TestTranscript_MessagesIsCopy(t *testing.T) {
	tr := NewTranscript(Message{Role: RoleUser, Content: "hi"})

	msgs := tr.Messages()
	msgs[0].Content = "changed"

	assert.Equal(t, "hi", tr.Messages()[0].Content)
}

func TestToolResult_Message(t *testing.T) {
	msg := ToolResult{ToolCallID: "call_1", Name: ToolGetCurrentWeather, Content: `{"a":1}`}.Message()

	assert.Equal(t, RoleTool, msg.Role)
	assert.Equal(t, "call_1", msg.ToolCallID)
	assert.Equal(t, "get_current_weather", msg.Name)
	assert.Equal(t, `{"a":1}`, msg.Content)
	assert.False(t, msg.HasToolCalls())
}
