// Package generativeAI wraps the Gemini client used as the last-resort
// collaborator: it fills tourism details when the curated gazetteer and
// Wikipedia both miss. Without an API key the service degrades to
// canned demo data instead of failing.
package generativeAI

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

const defaultModel = "gemini-2.0-flash"

var _ Service = (*AIClient)(nil)

// Service produces generative tourism info for arbitrary place queries.
type Service interface {
	TourismInfo(ctx context.Context, query, location string) (*models.TourismInfo, error)
}

type AIClient struct {
	logger *slog.Logger
	client *genai.Client
	model  string
}

// NewAIClient builds the Gemini-backed client. An empty API key is not
// an error; the client then serves demo responses only.
func NewAIClient(ctx context.Context, apiKey string, logger *slog.Logger) (*AIClient, error) {
	ai := &AIClient{logger: logger, model: defaultModel}
	if apiKey == "" {
		logger.Warn("Gemini API key not configured, generative fallback serves demo data")
		return ai, nil
	}
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  apiKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create genai client: %w", err)
	}
	ai.client = client
	return ai, nil
}

func (ai *AIClient) TourismInfo(ctx context.Context, query, location string) (*models.TourismInfo, error) {
	if ai.client == nil {
		return demoTourismInfo(query, location), nil
	}

	prompt := fmt.Sprintf(`You are a professional tour guide for %s. Provide detailed, accurate information about: %s

Respond with JSON only, using these keys: description (2-3 sentences), highlights (array), best_time, entry_fees, transportation, restaurants (array of 2-3 names), hotels (array of 2-3 names), tips.`, location, query)

	result, err := ai.client.Models.GenerateContent(ctx, ai.model, genai.Text(prompt), &genai.GenerateContentConfig{
		Temperature:     genai.Ptr[float32](0.7),
		TopK:            genai.Ptr[float32](40),
		TopP:            genai.Ptr[float32](0.95),
		MaxOutputTokens: 2048,
	})
	if err != nil {
		return nil, fmt.Errorf("gemini request failed: %w", err)
	}

	info, err := parseTourismInfo(result.Text())
	if err != nil {
		ai.logger.Warn("Could not parse generative response, serving demo data",
			slog.String("query", query), slog.Any("error", err))
		return demoTourismInfo(query, location), nil
	}
	return info, nil
}

// parseTourismInfo tolerates markdown code fences around the JSON body.
func parseTourismInfo(text string) (*models.TourismInfo, error) {
	trimmed := strings.TrimSpace(text)
	if start := strings.Index(trimmed, "{"); start >= 0 {
		if end := strings.LastIndex(trimmed, "}"); end > start {
			trimmed = trimmed[start : end+1]
		}
	}
	var info models.TourismInfo
	if err := json.Unmarshal([]byte(trimmed), &info); err != nil {
		return nil, fmt.Errorf("failed to decode tourism info: %w", err)
	}
	if info.Description == "" {
		return nil, fmt.Errorf("tourism info missing description")
	}
	return &info, nil
}

func demoTourismInfo(query, location string) *models.TourismInfo {
	name := strings.TrimSpace(query)
	if name == "" {
		name = location
	}
	return &models.TourismInfo{
		Description: fmt.Sprintf("%s is a wonderful destination in %s, known for its warm hospitality, rich culture and beautiful scenery.", titleWords(name), location),
		Highlights:  []string{"Local markets and street food", "Cultural and religious sites", "Scenic viewpoints"},
		Restaurants: []string{"Local rice and curry spots", "Seafood restaurants along the coast"},
		Hotels:      []string{"Guesthouses and boutique stays", "Beachside and hillside resorts"},
		BestTime:    "December to April for most of the island",
		Tips:        "Carry small cash, dress modestly at temples, and drink bottled water.",
	}
}

func titleWords(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
