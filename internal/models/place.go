package models

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat"`
	Lng float64 `json:"lng"`
}

// Stop is one visitable stop inside a place entry, with a suggested dwell
// time used by the itinerary planner.
type Stop struct {
	Name    string `json:"name"`
	Minutes int    `json:"minutes"`
}

// PlaceEntry is one curated gazetteer record. Entries are built once from
// the embedded dataset at startup and never mutated afterwards, so they can
// be shared across concurrent requests without locking.
type PlaceEntry struct {
	Name         string       `json:"-"` // canonical key, filled at load
	Aliases      []string     `json:"aliases,omitempty"`
	City         string       `json:"city,omitempty"`
	BestTime     string       `json:"best_time,omitempty"`
	OpeningHours string       `json:"opening_hours,omitempty"`
	Website      string       `json:"website,omitempty"`
	Tags         []string     `json:"tags,omitempty"`
	Coords       *Coordinates `json:"coords,omitempty"`
	SafetyNotes  string       `json:"safety_notes,omitempty"`
	Highlights   []string     `json:"highlights,omitempty"`
	Ticket       string       `json:"ticket,omitempty"`
	Facts        []string     `json:"facts,omitempty"`
	Stops        []Stop       `json:"stops,omitempty"`
}

// SearchResult is a scored gazetteer search hit.
type SearchResult struct {
	Name     string `json:"name"`
	City     string `json:"city,omitempty"`
	BestTime string `json:"best_time,omitempty"`
	Score    int    `json:"score"`
}

// ItineraryPlan is the planner's output: stops packed into a time budget.
type ItineraryPlan struct {
	City           string `json:"city"`
	Stops          []Stop `json:"stops"`
	PlannedMinutes int    `json:"planned_minutes"`
	TotalMinutes   int    `json:"total_minutes"`
}
