package output

import (
	"context"

	"weather-agent/internal/domain/entity"
)

type LLMPort interface {
	Chat(ctx context.Context, req ChatRequest) (*ChatResponse, error)
}

type ToolChoice string

const (
	ToolChoiceNone ToolChoice = ""
	ToolChoiceAuto ToolChoice = "auto"
)

// ChatRequest is one submission of the transcript. ToolChoice is only sent
// when Tools is non-empty.
type ChatRequest struct {
	Messages   []entity.Message
	Tools      []entity.ToolDefinition
	ToolChoice ToolChoice
}

type ChatResponse struct {
	Message entity.Message
	// Raw is the provider's response object, kept for printing as-is.
	Raw any
}
