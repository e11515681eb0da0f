package di

import (
	"context"
	"fmt"

	"weather-agent/internal/adapter/tool"
	"weather-agent/internal/application/port/input"
	"weather-agent/internal/application/port/output"
	"weather-agent/internal/application/service"
	"weather-agent/internal/infrastructure/console"
	"weather-agent/internal/infrastructure/llm/langchain"
	"weather-agent/internal/infrastructure/llm/openaicompat"
	"weather-agent/internal/infrastructure/logger"
	"weather-agent/internal/usecase/conversation"
)

const (
	BackendOpenAI    = "openai"
	BackendLangChain = "langchain"
)

type Container struct {
	LLM          output.LLMPort
	Logger       output.LoggerPort
	Console      output.ConsolePort
	Tools        output.ToolRegistry
	Conversation input.ConversationRunner
}

type Config struct {
	APIKey    string
	Model     string
	BaseURL   string
	Backend   string
	LogLevel  string
	HTTPDebug bool
}

func NewContainer(ctx context.Context, cfg Config) (*Container, error) {
	log, err := logger.NewLoggerAdapter(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	llm, err := newLLM(cfg, log)
	if err != nil {
		_ = log.Close()
		return nil, err
	}

	tools := service.NewToolRegistry(tool.NewWeatherTool(log.WithField("tool", "get_current_weather")))
	out := console.NewConsole()

	return &Container{
		LLM:          llm,
		Logger:       log,
		Console:      out,
		Tools:        tools,
		Conversation: conversation.New(llm, tools, log, out),
	}, nil
}

func newLLM(cfg Config, log output.LoggerPort) (output.LLMPort, error) {
	switch cfg.Backend {
	case "", BackendOpenAI:
		return openaicompat.NewAdapter(openaicompat.Config{
			APIKey:    cfg.APIKey,
			Model:     cfg.Model,
			BaseURL:   cfg.BaseURL,
			HTTPDebug: cfg.HTTPDebug,
			Logger:    log.WithField("backend", BackendOpenAI),
		}), nil
	case BackendLangChain:
		llm, err := langchain.NewAdapter(langchain.Config{
			APIKey:  cfg.APIKey,
			Model:   cfg.Model,
			BaseURL: cfg.BaseURL,
			Logger:  log.WithField("backend", BackendLangChain),
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create langchain backend: %w", err)
		}
		return llm, nil
	default:
		return nil, fmt.Errorf("unknown LLM backend %q", cfg.Backend)
	}
}

func (c *Container) Close() error {
	if c.Logger == nil {
		return nil
	}
	return c.Logger.Close()
}
