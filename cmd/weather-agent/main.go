package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"weather-agent/internal/di"
	"weather-agent/internal/infrastructure/env"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "weather-agent: %v\n", err)
		os.Exit(1)
	}
}

func run() (err error) {
	envService := env.NewEnvService()

	apiKey, err := envService.RequireCredential(env.KeyAPIKey)
	if err != nil {
		return err
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	container, err := di.NewContainer(ctx, di.Config{
		APIKey:    apiKey,
		Model:     envService.Get(env.KeyModel),
		BaseURL:   envService.Get(env.KeyBaseURL),
		Backend:   envService.GetWithDefault(env.KeyBackend, di.BackendOpenAI),
		LogLevel:  envService.GetWithDefault(env.KeyLogLevel, "info"),
		HTTPDebug: envService.GetBool(env.KeyHTTPDebug, false),
	})
	if err != nil {
		return fmt.Errorf("init: %w", err)
	}
	defer func() {
		if closeErr := container.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("close: %w", closeErr)
		}
	}()

	result, err := container.Conversation.Run(ctx, envService.Get(env.KeyQuery))
	if err != nil {
		container.Logger.Error("Conversation failed", "error", err)
		return err
	}

	container.Logger.Info("Conversation completed",
		"roundTrips", result.RoundTrips,
		"toolCalls", result.ToolCalls)

	return container.Console.ShowResponse(ctx, result.Final.Raw)
}
