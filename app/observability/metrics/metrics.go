package metrics

import (
	"log"
	"sync"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

// AppMetrics holds the application's metric instruments.
type AppMetrics struct {
	TurnsTotal              metric.Int64Counter
	SafetyBlocksTotal       metric.Int64Counter
	TurnDurationSeconds     metric.Float64Histogram
	CollaboratorErrorsTotal metric.Int64Counter
}

var (
	appMetrics *AppMetrics
	once       sync.Once
)

// InitAppMetrics initializes the global metric instruments once, using
// the globally configured MeterProvider.
func InitAppMetrics() {
	once.Do(func() {
		meter := otel.GetMeterProvider().Meter("go-tour-guide")
		var err error
		m := &AppMetrics{}

		m.TurnsTotal, err = meter.Int64Counter(
			"turns_total",
			metric.WithDescription("Total number of conversational turns processed"),
			metric.WithUnit("{turn}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create turns_total: %v", err)
		}

		m.SafetyBlocksTotal, err = meter.Int64Counter(
			"safety_blocks_total",
			metric.WithDescription("Total number of turns blocked by the safety screen"),
			metric.WithUnit("{turn}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create safety_blocks_total: %v", err)
		}

		m.TurnDurationSeconds, err = meter.Float64Histogram(
			"turn_duration_seconds",
			metric.WithDescription("Duration of turn processing in seconds"),
			metric.WithUnit("s"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create turn_duration_seconds: %v", err)
		}

		m.CollaboratorErrorsTotal, err = meter.Int64Counter(
			"collaborator_errors_total",
			metric.WithDescription("Total number of external collaborator failures"),
			metric.WithUnit("{error}"),
		)
		if err != nil {
			log.Fatalf("Metrics: Failed to create collaborator_errors_total: %v", err)
		}

		log.Println("Application metrics instruments initialized.")
		appMetrics = m
	})
}

// Get returns the globally initialized AppMetrics instance, or nil when
// InitAppMetrics was never called (as in tests).
func Get() *AppMetrics {
	return appMetrics
}
