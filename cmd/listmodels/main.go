// Command listmodels prints the Gemini models that support content generation,
// one per line, for choosing a value for GEMINI_MODEL.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/kjstillabower/weather-chat-service/internal/llm"
	"github.com/kjstillabower/weather-chat-service/internal/observability"
)

func main() {
	logger, err := observability.NewLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		logger.Fatal("read .env file", zap.Error(err))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	gen, err := llm.NewGeminiClient(ctx, llm.Config{
		APIKey:  os.Getenv("GEMINI_API_KEY"),
		BaseURL: os.Getenv("GEMINI_BASE_URL"),
	})
	if err != nil {
		logger.Fatal("generation client", zap.Error(err))
	}

	names, err := gen.ListModels(ctx)
	if err != nil {
		logger.Fatal("list models", zap.Error(err))
	}
	for _, name := range names {
		fmt.Println(name)
	}
	logger.Debug("listed models", zap.Int("count", len(names)))
}
