package models

// WeatherInfo is the collaborator-agnostic current-weather record.
type WeatherInfo struct {
	Temperature string `json:"temperature"`
	Condition   string `json:"condition"`
	Humidity    string `json:"humidity"`
	WindSpeed   string `json:"wind_speed"`
	FeelsLike   string `json:"feels_like"`
	Description string `json:"description"`
	Source      string `json:"source"`
}

// GeoLocation is a geocoding result. Lat/Lng are nil when the provider had
// no coordinates and only a maps search URL could be built.
type GeoLocation struct {
	Lat              *float64 `json:"lat"`
	Lng              *float64 `json:"lng"`
	FormattedAddress string   `json:"formatted_address"`
	MapsURL          string   `json:"maps_url"`
	Source           string   `json:"source"`
}

// WikiSummary is the subset of a Wikipedia page summary the builders use.
type WikiSummary struct {
	Title       string `json:"title"`
	Extract     string `json:"extract"`
	Description string `json:"description"`
	URL         string `json:"url"`
	Thumbnail   string `json:"thumbnail,omitempty"`
}

// TourismInfo is the generative fallback record used when the curated
// gazetteer and Wikipedia both miss.
type TourismInfo struct {
	Description    string   `json:"description"`
	Highlights     []string `json:"highlights"`
	Restaurants    []string `json:"restaurants"`
	Hotels         []string `json:"hotels"`
	BestTime       string   `json:"best_time,omitempty"`
	EntryFees      string   `json:"entry_fees,omitempty"`
	Transportation string   `json:"transportation,omitempty"`
	Tips           string   `json:"tips,omitempty"`
}

// PlaceSuggestion is one ranked nearby-place suggestion.
type PlaceSuggestion struct {
	Name    string  `json:"name"`
	Rating  float64 `json:"rating"`
	Type    string  `json:"type"`
	Address string  `json:"address"`
}
