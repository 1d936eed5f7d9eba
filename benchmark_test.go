package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"github.com/FACorreiaa/go-tour-guide/internal/api/classifier"
	"github.com/FACorreiaa/go-tour-guide/internal/api/dialogue"
	"github.com/FACorreiaa/go-tour-guide/internal/api/gazetteer"
	generativeAI "github.com/FACorreiaa/go-tour-guide/internal/api/generative_ai"
	"github.com/FACorreiaa/go-tour-guide/internal/api/guide"
	"github.com/FACorreiaa/go-tour-guide/internal/api/itinerary"
	"github.com/FACorreiaa/go-tour-guide/internal/api/resolver"
	"github.com/FACorreiaa/go-tour-guide/internal/api/safety"
	"github.com/FACorreiaa/go-tour-guide/internal/api/travelapi"
)

// setupBenchmarkService wires the full pipeline with keyless collaborator
// clients, so benchmarks stay in-process.
func setupBenchmarkService(b *testing.B) *guide.ServiceImpl {
	b.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	gaz, err := gazetteer.NewEmbeddedRepository(logger)
	if err != nil {
		b.Fatalf("load gazetteer: %v", err)
	}
	res := resolver.NewService(gaz, resolver.DefaultFuzzyThreshold, logger)
	aiClient, err := generativeAI.NewAIClient(context.Background(), "", logger)
	if err != nil {
		b.Fatalf("generative client: %v", err)
	}

	svc, err := guide.NewService(
		guide.NewCacheSessionStore(logger),
		safety.NewService(logger),
		res,
		classifier.NewService(res, logger),
		dialogue.NewService(logger),
		itinerary.NewService(gaz, logger),
		gaz,
		travelapi.NewOpenWeatherClient("", logger),
		travelapi.NewGoogleGeocoder("", logger),
		travelapi.NewWikipediaClient(logger),
		aiClient,
		logger,
	)
	if err != nil {
		b.Fatalf("wire guide service: %v", err)
	}
	return svc
}

func BenchmarkProcessTurn_Facts(b *testing.B) {
	svc := setupBenchmarkService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		// A fresh session per iteration keeps the turn log from skewing
		// later iterations.
		session := fmt.Sprintf("bench-%d", i)
		if _, err := svc.ProcessTurn(ctx, session, "tell me about sigiriya"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkProcessTurn_ItineraryPlan(b *testing.B) {
	svc := setupBenchmarkService(b)
	ctx := context.Background()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		session := fmt.Sprintf("bench-%d", i)
		if _, err := svc.ProcessTurn(ctx, session, "plan a 3 hour trip to kandy"); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkClassify(b *testing.B) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	gaz, err := gazetteer.NewEmbeddedRepository(logger)
	if err != nil {
		b.Fatalf("load gazetteer: %v", err)
	}
	res := resolver.NewService(gaz, resolver.DefaultFuzzyThreshold, logger)
	cls := classifier.NewService(res, logger)

	queries := []string{
		"plan a 3 hour trip to kandy",
		"weather in colombo",
		"restaurants in galle",
		"tell me about sigiriya",
		"temples in kandy",
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		cls.Classify(queries[i%len(queries)])
	}
}
