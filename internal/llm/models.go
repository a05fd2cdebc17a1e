package llm

import (
	"context"
	"fmt"
	"slices"

	"google.golang.org/genai"
)

const generateContentAction = "generateContent"

// ListModels returns the names of models that support content generation, in API order.
func (c *GeminiClient) ListModels(ctx context.Context) ([]string, error) {
	var all []*genai.Model
	for m, err := range c.client.Models.All(ctx) {
		if err != nil {
			return nil, fmt.Errorf("list models: %w", err)
		}
		all = append(all, m)
	}
	return generationModels(all), nil
}

func generationModels(models []*genai.Model) []string {
	var names []string
	for _, m := range models {
		if m != nil && slices.Contains(m.SupportedActions, generateContentAction) {
			names = append(names, m.Name)
		}
	}
	return names
}
