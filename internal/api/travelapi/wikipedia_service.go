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

	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

const wikipediaSummaryBaseURL = "https://en.wikipedia.org/api/rest_v1/page/summary/"

var _ WikiClient = (*WikipediaClient)(nil)

// WikiClient fetches an encyclopedia summary for a place. Summaries that
// do not mention Sri Lanka are discarded so a query like "galle" cannot
// come back describing something else entirely.
type WikiClient interface {
	Summary(ctx context.Context, place string) (*models.WikiSummary, error)
}

type WikipediaClient struct {
	logger  *slog.Logger
	client  *http.Client
	baseURL string
}

func NewWikipediaClient(logger *slog.Logger) *WikipediaClient {
	return &WikipediaClient{
		logger:  logger,
		client:  &http.Client{Timeout: 10 * time.Second},
		baseURL: wikipediaSummaryBaseURL,
	}
}

type wikipediaSummaryResponse struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	Description string `json:"description"`
	ContentURLs struct {
		Desktop struct {
			Page string `json:"page"`
		} `json:"desktop"`
	} `json:"content_urls"`
	Thumbnail struct {
		Source string `json:"source"`
	} `json:"thumbnail"`
}

func (w *WikipediaClient) Summary(ctx context.Context, place string) (*models.WikiSummary, error) {
	// Most specific title first; the bare name last.
	searchTerms := []string{
		place + ", Sri Lanka",
		place + " (Sri Lanka)",
		place,
	}

	var lastErr error
	for _, term := range searchTerms {
		summary, err := w.fetchSummary(ctx, term)
		if err != nil {
			lastErr = err
			continue
		}
		if summary == nil {
			continue
		}
		if !mentionsSriLanka(summary.Extract + " " + summary.Description) {
			continue
		}
		return summary, nil
	}
	if lastErr != nil {
		return nil, lastErr
	}
	return nil, fmt.Errorf("no sri lanka related article for %q", place)
}

func (w *WikipediaClient) fetchSummary(ctx context.Context, title string) (*models.WikiSummary, error) {
	endpoint := w.baseURL + url.PathEscape(strings.ReplaceAll(title, " ", "_"))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build wikipedia request: %w", err)
	}
	resp, err := w.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("wikipedia request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, nil
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("wikipedia returned status %d for %q", resp.StatusCode, title)
	}

	var body wikipediaSummaryResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode wikipedia response: %w", err)
	}
	return &models.WikiSummary{
		Title:       body.Title,
		Extract:     body.Extract,
		Description: body.Description,
		URL:         body.ContentURLs.Desktop.Page,
		Thumbnail:   body.Thumbnail.Source,
	}, nil
}

func mentionsSriLanka(text string) bool {
	lower := strings.ToLower(text)
	return strings.Contains(lower, "sri lanka") ||
		strings.Contains(lower, "lanka") ||
		strings.Contains(lower, "ceylon")
}
