package travelapi

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

const googleGeocodeBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"

var _ Geocoder = (*GoogleGeocoder)(nil)

// Geocoder resolves a place or address to coordinates and a maps link.
// It always produces a usable result: without an API key or on provider
// failure it degrades to a maps search URL with nil coordinates.
type Geocoder interface {
	Geocode(ctx context.Context, query string) (*models.GeoLocation, error)
}

type GoogleGeocoder struct {
	logger  *slog.Logger
	client  *http.Client
	apiKey  string
	baseURL string
}

func NewGoogleGeocoder(apiKey string, logger *slog.Logger) *GoogleGeocoder {
	return &GoogleGeocoder{
		logger:  logger,
		client:  &http.Client{Timeout: 10 * time.Second},
		apiKey:  apiKey,
		baseURL: googleGeocodeBaseURL,
	}
}

type googleGeocodeResponse struct {
	Results []struct {
		FormattedAddress string `json:"formatted_address"`
		Geometry         struct {
			Location struct {
				Lat float64 `json:"lat"`
				Lng float64 `json:"lng"`
			} `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

func (g *GoogleGeocoder) Geocode(ctx context.Context, query string) (*models.GeoLocation, error) {
	if g.apiKey == "" {
		return searchURLFallback(query, "fallback_no_api_key"), nil
	}

	params := url.Values{}
	params.Set("address", query)
	params.Set("key", g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, g.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build geocode request: %w", err)
	}
	resp, err := g.client.Do(req)
	if err != nil {
		g.logger.Warn("Geocoding request failed, using maps search fallback",
			slog.String("query", query), slog.Any("error", err))
		return searchURLFallback(query, "fallback_error"), nil
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return searchURLFallback(query, "fallback_error"), nil
	}
	var body googleGeocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return searchURLFallback(query, "fallback_error"), nil
	}
	if len(body.Results) == 0 {
		return searchURLFallback(query, "fallback_no_results"), nil
	}

	top := body.Results[0]
	lat, lng := top.Geometry.Location.Lat, top.Geometry.Location.Lng
	formatted := top.FormattedAddress
	if formatted == "" {
		formatted = titleCase(query)
	}
	return &models.GeoLocation{
		Lat:              &lat,
		Lng:              &lng,
		FormattedAddress: formatted,
		MapsURL:          fmt.Sprintf("https://www.google.com/maps/search/?api=1&query=%.6f%%2C%.6f", lat, lng),
		Source:           "google_geocoding",
	}, nil
}

func searchURLFallback(query, source string) *models.GeoLocation {
	return &models.GeoLocation{
		FormattedAddress: titleCase(query),
		MapsURL:          "https://www.google.com/maps/search/?api=1&query=" + url.QueryEscape(query),
		Source:           source,
	}
}
