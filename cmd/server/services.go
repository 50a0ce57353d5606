package main

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/sycord/server/internal/config"
	"github.com/sycord/server/internal/generator"
	"github.com/sycord/server/internal/llm"
	"github.com/sycord/server/internal/logger"
	"github.com/sycord/server/sycord/functions"
)

// creates and configures all service clients
func InitializeServices(_ *config.Config, db *pgxpool.Pool) (*Services, error) {
	llmClient, err := llm.NewFromEnv()

	if err != nil {
		if !errors.Is(err, llm.ErrNotConfigured) {
			return nil, fmt.Errorf("failed to create completion client: %w", err)
		}

		// the server still runs; the generator answers with a marker-wrapped
		// notice instead of generated code
		logger.Warn("completion API key not configured, AI plugin generation disabled")
		llmClient = nil
	}

	functionRepo := functions.NewRepository(db)
	generatorClient := generator.New(llmClient, functionRepo)

	return &Services{
		Generator: generatorClient,
		LLM:       llmClient,
	}, nil
}
