package conversation

import (
	"context"
	"fmt"

	"weather-agent/internal/application/port/input"
	"weather-agent/internal/application/port/output"
	"weather-agent/internal/domain/entity"
)

var _ input.ConversationRunner = (*UseCase)(nil)

const DefaultQuery = "What's the weather like in Paris?"

// UseCase runs one function-calling exchange: ask the model with the tools
// attached, run whatever it asks for locally, then ask again without tools.
type UseCase struct {
	llm     output.LLMPort
	tools   output.ToolRegistry
	logger  output.LoggerPort
	console output.ConsolePort
}

func New(
	llm output.LLMPort,
	tools output.ToolRegistry,
	logger output.LoggerPort,
	console output.ConsolePort,
) *UseCase {
	return &UseCase{
		llm:     llm,
		tools:   tools,
		logger:  logger,
		console: console,
	}
}

func (uc *UseCase) Run(ctx context.Context, query string) (*input.ConversationResult, error) {
	if query == "" {
		query = DefaultQuery
	}

	transcript := entity.NewTranscript(entity.Message{Role: entity.RoleUser, Content: query})
	toolDefs := uc.tools.Definitions()

	uc.logger.Info("Sending first request", "query", query, "tools", len(toolDefs))

	first, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages:   transcript.Messages(),
		Tools:      toolDefs,
		ToolChoice: output.ToolChoiceAuto,
	})
	if err != nil {
		return nil, fmt.Errorf("first completion: %w", err)
	}

	if !first.Message.HasToolCalls() {
		uc.logger.Info("Model answered without tool calls")
		transcript.Append(first.Message)
		return &input.ConversationResult{
			Final:      first,
			Transcript: transcript.Messages(),
			RoundTrips: 1,
		}, nil
	}

	transcript.Append(first.Message)

	for _, tc := range first.Message.ToolCalls {
		result, err := uc.executeTool(ctx, tc)
		if err != nil {
			return nil, err
		}
		transcript.Append(result.Message())
	}

	if err := transcript.Validate(); err != nil {
		return nil, fmt.Errorf("invalid transcript: %w", err)
	}

	uc.logger.Info("Sending second request", "messages", transcript.Len())

	second, err := uc.llm.Chat(ctx, output.ChatRequest{
		Messages: transcript.Messages(),
	})
	if err != nil {
		return nil, fmt.Errorf("second completion: %w", err)
	}

	transcript.Append(second.Message)

	return &input.ConversationResult{
		Final:      second,
		Transcript: transcript.Messages(),
		ToolCalls:  len(first.Message.ToolCalls),
		RoundTrips: 2,
	}, nil
}

func (uc *UseCase) executeTool(ctx context.Context, tc entity.ToolCall) (entity.ToolResult, error) {
	tool, ok := uc.tools.Get(tc.Name)
	if !ok {
		uc.logger.Warn("Unknown tool called", "name", tc.Name, "id", tc.ID)
		return entity.ToolResult{}, &entity.UnknownToolError{Name: tc.Name}
	}

	uc.logger.Info("Executing tool", "name", tc.Name, "id", tc.ID, "args", tc.Arguments)
	if uc.console != nil {
		uc.console.ShowToolStart(ctx, tc.Name.String(), tc.Arguments)
	}

	content, err := tool.Execute(ctx, tc.Arguments)
	if err != nil {
		uc.logger.Error("Tool execution failed", "name", tc.Name, "error", err)
		return entity.ToolResult{}, fmt.Errorf("tool %s: %w", tc.Name, err)
	}

	if uc.console != nil {
		uc.console.ShowToolResult(ctx, tc.Name.String(), content)
	}
	uc.logger.Debug("Tool completed", "name", tc.Name, "result", content)

	return entity.ToolResult{
		ToolCallID: tc.ID,
		Name:       tc.Name,
		Content:    content,
	}, nil
}
