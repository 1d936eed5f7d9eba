// Package itinerary packs gazetteer stops into a visitor's time budget.
package itinerary

import (
	"log/slog"

	"github.com/FACorreiaa/go-tour-guide/internal/api/gazetteer"
	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service builds tour plans for a city and a time budget in minutes.
type Service interface {
	// Plan greedily packs the city's stops in curated order until the
	// budget is spent. It returns false when the city matches nothing
	// in the gazetteer.
	Plan(city string, minutes int) (*models.ItineraryPlan, bool)
	// TripSize suggests how many places fit a budget, for plans backed
	// by external suggestions rather than curated stops.
	TripSize(minutes int) int
}

type ServiceImpl struct {
	logger    *slog.Logger
	gazetteer gazetteer.Repository
}

func NewService(gaz gazetteer.Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger, gazetteer: gaz}
}

func (s *ServiceImpl) Plan(city string, minutes int) (*models.ItineraryPlan, bool) {
	canonical, ok := s.gazetteer.Match(city)
	if !ok {
		return nil, false
	}
	entry, ok := s.gazetteer.Lookup(canonical)
	if !ok {
		return nil, false
	}

	stops := s.stopsFor(entry)
	if len(stops) == 0 {
		return nil, false
	}

	plan := &models.ItineraryPlan{City: entry.Name}
	for _, stop := range stops {
		plan.TotalMinutes += stop.Minutes
		if plan.PlannedMinutes+stop.Minutes <= minutes {
			plan.Stops = append(plan.Stops, stop)
			plan.PlannedMinutes += stop.Minutes
		}
	}

	s.logger.Debug("Itinerary planned",
		slog.String("city", plan.City),
		slog.Int("stops", len(plan.Stops)),
		slog.Int("planned_minutes", plan.PlannedMinutes),
		slog.Int("budget_minutes", minutes))
	return plan, true
}

// stopsFor returns the entry's curated stops, extended with stops of
// other entries in the same city so a long budget keeps filling. The
// extension walks sorted names for stable output.
func (s *ServiceImpl) stopsFor(entry *models.PlaceEntry) []models.Stop {
	stops := make([]models.Stop, 0, len(entry.Stops))
	stops = append(stops, entry.Stops...)

	for _, name := range s.gazetteer.Names() {
		if name == entry.Name {
			continue
		}
		other, ok := s.gazetteer.Lookup(name)
		if !ok || other.City == "" || other.City != entry.City {
			continue
		}
		stops = append(stops, other.Stops...)
	}
	return stops
}

func (s *ServiceImpl) TripSize(minutes int) int {
	hours := float64(minutes) / 60
	switch {
	case hours < 5:
		return 2
	case hours <= 12:
		return 5
	case hours <= 24:
		return 7
	case hours <= 48:
		return 10
	default:
		return 12
	}
}
