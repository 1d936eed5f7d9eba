// Package travelapi holds the thin HTTP clients for the external travel
// data providers: OpenWeatherMap, Google Geocoding and the Wikipedia
// summary API. Builders call these through narrow interfaces and treat
// every failure as "data unavailable", never as a pipeline error.
package travelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

const (
	openWeatherBaseURL = "https://api.openweathermap.org/data/2.5/weather"
	weatherCacheTTL    = 10 * time.Minute
)

// cityCoords pins the cities we care about to coordinates so lookups do
// not depend on OpenWeatherMap's name disambiguation.
var cityCoords = map[string][2]float64{
	"colombo":      {6.9271, 79.8612},
	"kandy":        {7.2906, 80.6337},
	"galle":        {6.0329, 80.2170},
	"sigiriya":     {7.9575, 80.7603},
	"anuradhapura": {8.3114, 80.4037},
	"negombo":      {7.2086, 79.8358},
	"jaffna":       {9.6615, 80.0255},
	"ella":         {6.8667, 81.0500},
	"nuwara eliya": {6.9497, 80.7891},
	"trincomalee":  {8.5874, 81.2152},
}

var _ WeatherClient = (*OpenWeatherClient)(nil)

// WeatherClient fetches current weather for a named location.
type WeatherClient interface {
	Current(ctx context.Context, location string) (*models.WeatherInfo, error)
}

type OpenWeatherClient struct {
	logger  *slog.Logger
	client  *http.Client
	apiKey  string
	baseURL string
	cache   *cache.Cache
}

func NewOpenWeatherClient(apiKey string, logger *slog.Logger) *OpenWeatherClient {
	return &OpenWeatherClient{
		logger:  logger,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: openWeatherBaseURL,
		cache:   cache.New(weatherCacheTTL, 30*time.Minute),
	}
}

type openWeatherResponse struct {
	Main struct {
		Temp      float64 `json:"temp"`
		FeelsLike float64 `json:"feels_like"`
		Humidity  int     `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Description string `json:"description"`
	} `json:"weather"`
	Wind struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`
}

func (c *OpenWeatherClient) Current(ctx context.Context, location string) (*models.WeatherInfo, error) {
	if c.apiKey == "" {
		return nil, fmt.Errorf("openweathermap api key not configured")
	}

	key := strings.ToLower(strings.TrimSpace(location))
	if cached, ok := c.cache.Get(key); ok {
		return cached.(*models.WeatherInfo), nil
	}

	params := url.Values{}
	params.Set("appid", c.apiKey)
	params.Set("units", "metric")
	if coords, ok := cityCoords[key]; ok {
		params.Set("lat", fmt.Sprintf("%.4f", coords[0]))
		params.Set("lon", fmt.Sprintf("%.4f", coords[1]))
	} else {
		// LK scopes the name search to Sri Lanka.
		params.Set("q", location+",LK")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build weather request: %w", err)
	}
	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("weather request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized {
		return nil, fmt.Errorf("openweathermap rejected the api key")
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("weather request returned status %d", resp.StatusCode)
	}

	var body openWeatherResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode weather response: %w", err)
	}

	condition := "Unknown"
	if len(body.Weather) > 0 && body.Weather[0].Description != "" {
		condition = titleCase(body.Weather[0].Description)
	}
	info := &models.WeatherInfo{
		Temperature: fmt.Sprintf("%.1f°C", body.Main.Temp),
		Condition:   condition,
		Humidity:    fmt.Sprintf("%d%%", body.Main.Humidity),
		WindSpeed:   fmt.Sprintf("%.1f km/h", body.Wind.Speed),
		FeelsLike:   fmt.Sprintf("%.1f°C", body.Main.FeelsLike),
		Description: fmt.Sprintf("Real-time weather in %s", titleCase(location)),
		Source:      "openweather_api",
	}
	c.cache.Set(key, info, cache.DefaultExpiration)
	return info, nil
}

func titleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
