// Package composer turns a weather reading into a short natural-language reply.
package composer

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"github.com/kjstillabower/weather-chat-service/internal/llm"
	"github.com/kjstillabower/weather-chat-service/internal/models"
	"github.com/kjstillabower/weather-chat-service/internal/observability"
)

// FallbackReply is returned whenever text generation fails.
const FallbackReply = "Sorry, I couldn't generate a response."

// Composer phrases weather readings through a TextGenerator.
type Composer struct {
	generator llm.TextGenerator
}

// New returns a Composer backed by generator.
func New(generator llm.TextGenerator) *Composer {
	return &Composer{generator: generator}
}

// Compose returns the generated narrative for r, unmodified. Generator errors, blank
// output and generator panics all produce FallbackReply; Compose never fails.
func (c *Composer) Compose(ctx context.Context, r models.WeatherReading) (reply models.Reply) {
	logger := observability.LoggerFromContext(ctx)
	fallback := models.Reply{Text: FallbackReply, City: r.City, Outcome: models.OutcomeGenerationFailed}

	defer func() {
		if p := recover(); p != nil {
			logger.Error("text generation panicked", zap.Any("panic", p))
			reply = fallback
		}
	}()

	text, err := c.generator.Generate(ctx, BuildPrompt(r))
	if err != nil {
		logger.Warn("text generation failed", zap.String("city", r.City), zap.Error(err))
		return fallback
	}
	if strings.TrimSpace(text) == "" {
		logger.Warn("text generation returned no text", zap.String("city", r.City))
		return fallback
	}
	return models.Reply{Text: text, City: r.City, Outcome: models.OutcomeAnswered}
}
