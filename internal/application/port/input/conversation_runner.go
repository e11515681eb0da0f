package input

import (
	"context"

	"weather-agent/internal/application/port/output"
	"weather-agent/internal/domain/entity"
)

type ConversationResult struct {
	Final      *output.ChatResponse
	Transcript []entity.Message
	ToolCalls  int
	RoundTrips int
}

type ConversationRunner interface {
	Run(ctx context.Context, query string) (*ConversationResult, error)
}
