package service

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/kjstillabower/weather-chat-service/internal/client"
	"github.com/kjstillabower/weather-chat-service/internal/extract"
	"github.com/kjstillabower/weather-chat-service/internal/models"
	"github.com/kjstillabower/weather-chat-service/internal/observability"
)

// UsageHint is the reply when no city could be extracted from the query.
const UsageHint = "Please ask like: What's the weather in <city>?"

// Composer phrases a reading as a reply and never fails.
type Composer interface {
	Compose(ctx context.Context, r models.WeatherReading) models.Reply
}

// ChatService answers one free-text weather question: extract the city, look up the
// weather, compose the reply. Each step either succeeds or ends the pipeline with a
// terminal reply; nothing is retried and nothing is kept between queries.
type ChatService struct {
	weather  client.WeatherClient
	composer Composer
}

// NewChatService returns a ChatService using the given collaborators.
func NewChatService(weather client.WeatherClient, composer Composer) *ChatService {
	return &ChatService{weather: weather, composer: composer}
}

// Handle returns the reply for query. It never returns an error; failures become replies.
func (s *ChatService) Handle(ctx context.Context, query string) models.Reply {
	start := time.Now()
	logger := observability.LoggerFromContext(ctx)

	reply := s.handle(ctx, logger, query)

	observability.RecordChatOutcome(string(reply.Outcome))
	logger.Info("chat query handled",
		zap.String("city", reply.City),
		zap.String("outcome", string(reply.Outcome)),
		zap.Duration("duration", time.Since(start)))
	return reply
}

func (s *ChatService) handle(ctx context.Context, logger *zap.Logger, query string) models.Reply {
	city, ok := extract.City(query)
	if !ok {
		logger.Debug("no city in query")
		return models.Reply{Text: UsageHint, Outcome: models.OutcomeUsageHint}
	}
	observability.RecordCityQuery(city)

	reading, err := s.weather.GetCurrentWeather(ctx, city)
	if err != nil {
		logger.Warn("weather lookup failed",
			zap.String("city", city),
			zap.String("category", string(client.CategorizeError(err))),
			zap.Error(err))
		return models.Reply{Text: NotFoundReply(city), City: city, Outcome: models.OutcomeLookupFailed}
	}
	logger.Debug("weather lookup complete", zap.String("city", city), zap.String("provider_city", reading.City))

	reply := s.composer.Compose(ctx, reading)
	reply.City = city
	return reply
}

// NotFoundReply is the reply when the weather lookup for city fails for any reason.
func NotFoundReply(city string) string {
	return fmt.Sprintf("Could not find weather data for %s.", city)
}
