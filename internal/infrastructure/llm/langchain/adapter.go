package langchain

import (
	"context"
	"fmt"
	"regexp"
	"strconv"

	"weather-agent/internal/application/port/output"
	"weather-agent/internal/domain/entity"

	"github.com/tmc/langchaingo/llms"
	"github.com/tmc/langchaingo/llms/openai"
)

var _ output.LLMPort = (*Adapter)(nil)

// Adapter serves chat requests through a langchaingo model.
type Adapter struct {
	model  llms.Model
	logger output.LoggerPort
}

type Config struct {
	APIKey  string
	Model   string
	BaseURL string
	Logger  output.LoggerPort
}

func NewAdapter(cfg Config) (*Adapter, error) {
	opts := []openai.Option{openai.WithToken(cfg.APIKey)}
	if cfg.Model != "" {
		opts = append(opts, openai.WithModel(cfg.Model))
	}
	if cfg.BaseURL != "" {
		opts = append(opts, openai.WithBaseURL(cfg.BaseURL))
	}

	llm, err := openai.New(opts...)
	if err != nil {
		return nil, fmt.Errorf("create langchain openai model: %w", err)
	}
	return NewAdapterWithModel(llm, cfg.Logger), nil
}

func NewAdapterWithModel(model llms.Model, logger output.LoggerPort) *Adapter {
	return &Adapter{model: model, logger: logger}
}

func (a *Adapter) Chat(ctx context.Context, req output.ChatRequest) (*output.ChatResponse, error) {
	var options []llms.CallOption
	if len(req.Tools) > 0 {
		options = append(options, llms.WithTools(convertTools(req.Tools)))
		if req.ToolChoice != output.ToolChoiceNone {
			options = append(options, llms.WithToolChoice(string(req.ToolChoice)))
		}
	}

	if a.logger != nil {
		a.logger.Debug("Generating content",
			"messagesCount", len(req.Messages),
			"toolsCount", len(req.Tools))
	}

	resp, err := a.model.GenerateContent(ctx, convertMessages(req.Messages), options...)
	if err != nil {
		return nil, classifyError(err)
	}
	if len(resp.Choices) == 0 {
		return nil, entity.ErrNoChoices
	}

	return &output.ChatResponse{
		Message: convertChoice(resp.Choices[0]),
		Raw:     resp,
	}, nil
}

// The langchaingo OpenAI client reports non-2xx answers only as text.
var statusCodePattern = regexp.MustCompile(`(?s)API returned unexpected status code: (\d{3}): (.*)`)

func classifyError(err error) error {
	if m := statusCodePattern.FindStringSubmatch(err.Error()); m != nil {
		status, convErr := strconv.Atoi(m[1])
		if convErr == nil {
			return &entity.RemoteServiceError{Status: status, Body: m[2]}
		}
	}
	return &entity.NetworkError{Op: "generate content", Err: err}
}

var roleTypes = map[entity.MessageRole]llms.ChatMessageType{
	entity.RoleSystem:    llms.ChatMessageTypeSystem,
	entity.RoleUser:      llms.ChatMessageTypeHuman,
	entity.RoleAssistant: llms.ChatMessageTypeAI,
	entity.RoleTool:      llms.ChatMessageTypeTool,
}

func convertMessages(messages []entity.Message) []llms.MessageContent {
	result := make([]llms.MessageContent, 0, len(messages))
	for _, msg := range messages {
		mc := llms.MessageContent{Role: roleTypes[msg.Role]}

		if msg.Role == entity.RoleTool {
			mc.Parts = append(mc.Parts, llms.ToolCallResponse{
				ToolCallID: msg.ToolCallID,
				Name:       msg.Name,
				Content:    msg.Content,
			})
			result = append(result, mc)
			continue
		}

		if msg.Content != "" {
			mc.Parts = append(mc.Parts, llms.TextPart(msg.Content))
		}
		for _, tc := range msg.ToolCalls {
			mc.Parts = append(mc.Parts, llms.ToolCall{
				ID:   tc.ID,
				Type: "function",
				FunctionCall: &llms.FunctionCall{
					Name:      tc.Name.String(),
					Arguments: tc.Arguments,
				},
			})
		}
		result = append(result, mc)
	}
	return result
}

func convertTools(tools []entity.ToolDefinition) []llms.Tool {
	result := make([]llms.Tool, 0, len(tools))
	for _, t := range tools {
		result = append(result, llms.Tool{
			Type: "function",
			Function: &llms.FunctionDefinition{
				Name:        t.Name.String(),
				Description: t.Description,
				Parameters:  t.Parameters,
			},
		})
	}
	return result
}

func convertChoice(choice *llms.ContentChoice) entity.Message {
	result := entity.Message{
		Role:    entity.RoleAssistant,
		Content: choice.Content,
	}
	for _, tc := range choice.ToolCalls {
		if tc.FunctionCall == nil {
			continue
		}
		result.ToolCalls = append(result.ToolCalls, entity.ToolCall{
			ID:        tc.ID,
			Name:      entity.ToolName(tc.FunctionCall.Name),
			Arguments: tc.FunctionCall.Arguments,
		})
	}
	return result
}
