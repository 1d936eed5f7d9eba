// Package classifier assigns one intent per normalized query using an
// ordered rule cascade. The order is load-bearing: several rules share
// keywords, and the first hit wins, so rules must stay most-specific
// first. Do not reorder or parallelize the cascade.
package classifier

import (
	"log/slog"
	"regexp"
	"strconv"
	"strings"

	"github.com/FACorreiaa/go-tour-guide/internal/api/resolver"
	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

var _ Service = (*ServiceImpl)(nil)

// Service classifies normalized text into an intent plus raw slots.
// Classification is pure; unmatched input degrades to IntentGeneral.
type Service interface {
	Classify(query string) (models.Intent, models.Slots)
}

type rule struct {
	name  string
	match func(query string) (models.Intent, models.Slots, bool)
}

type ServiceImpl struct {
	logger   *slog.Logger
	resolver resolver.Service
	cascade  []rule
}

var (
	tripHourPatterns = []*regexp.Regexp{
		regexp.MustCompile(`plan\s+a\s+(\d+)\s+hour\s+trip\s+(?:to\s+)?(\w+)`),
		regexp.MustCompile(`(\d+)\s+hour\s+trip\s+(?:to\s+)?(\w+)`),
	}
	tripDayPatterns = []*regexp.Regexp{
		regexp.MustCompile(`plan\s+a\s+(\d+)\s+day\s+trip\s+(?:to\s+)?(\w+)`),
		regexp.MustCompile(`(\d+)\s+day\s+trip\s+(?:to\s+)?(\w+)`),
	}
	tripForPattern      = regexp.MustCompile(`trip\s+(?:to\s+)?(\w+)\s+for\s+(\d+)\s+(hours?|days?)`)
	tripCityOnlyPattern = regexp.MustCompile(`(?:plan|organi[sz]e)\s+(?:a\s+)?(?:trip|tour|itinerary|visit)\s+(?:to|in|around)\s+(\w+)`)
	tripBarePattern     = regexp.MustCompile(`plan\s+(?:a\s+|an\s+|my\s+)?(?:trip|tour|itinerary|day)`)

	weatherPatterns = []*regexp.Regexp{
		regexp.MustCompile(`weather\s+(?:in|at|for)\s+(\w+)`),
		regexp.MustCompile(`(\w+)\s+weather`),
		regexp.MustCompile(`temperature\s+(?:in|at)\s+(\w+)`),
		regexp.MustCompile(`climate\s+(?:in|at)\s+(\w+)`),
	}

	factsPatterns = []*regexp.Regexp{
		regexp.MustCompile(`tell\s+me\s+about\s+([\w\s]+)`),
		regexp.MustCompile(`what\s+is\s+([\w\s]+)`),
		regexp.MustCompile(`information\s+about\s+([\w\s]+)`),
		regexp.MustCompile(`(\w+)\s+details`),
		regexp.MustCompile(`about\s+([\w\s]+)`),
	}

	nearPlacePattern    = regexp.MustCompile(`(?:in|at|near)\s+(\w+)`)
	inAtPlacePattern    = regexp.MustCompile(`(?:in|at)\s+(\w+)`)
	toInPlacePattern    = regexp.MustCompile(`(?:to|in)\s+(\w+)`)
	ofInAboutPattern    = regexp.MustCompile(`(?:of|in|about)\s+(\w+)`)
	visitInPattern      = regexp.MustCompile(`(?:to\s+visit|in)\s+(\w+)`)
	ofInForPattern      = regexp.MustCompile(`(?:of|in|for)\s+(\w+)`)
	whereIsPattern      = regexp.MustCompile(`(?:where\s+is|location\s+of|locate)\s+([\w\s]+)`)
	beachesPlacePattern = regexp.MustCompile(`beaches\s+(?:in|at|near)\s+(\w+)`)
	templesPlacePattern = regexp.MustCompile(`temples\s+(?:in|at|near)\s+(\w+)`)
	bareTokensPattern   = regexp.MustCompile(`[a-zA-Z]+(?:\s+[a-zA-Z]+)?`)
)

var chitchatQueries = map[string]string{
	"hello":          "hello",
	"hi":             "hi",
	"hey":            "hi",
	"good morning":   "good morning",
	"good afternoon": "good afternoon",
	"good evening":   "good evening",
	"thanks":         "thanks",
	"thank you":      "thank you",
	"bye":            "bye",
	"goodbye":        "bye",
	"how are you":    "how are you",
	"no":             "no",
}

var helpQueries = map[string]struct{}{
	"help":                {},
	"what can you do":     {},
	"how can you help":    {},
	"how can you help me": {},
}

func NewService(res resolver.Service, logger *slog.Logger) *ServiceImpl {
	s := &ServiceImpl{logger: logger, resolver: res}
	s.cascade = []rule{
		{"chitchat", s.matchChitchat},
		{"help", s.matchHelp},
		{"itinerary", s.matchItinerary},
		{"weather", s.matchWeather},
		{"restaurants", s.matchRestaurants},
		{"hotels", s.matchHotels},
		{"facts", s.matchFacts},
		{"attractions", s.matchAttractions},
		{"transportation", s.matchTransportation},
		{"history", s.matchHistory},
		{"best_time", s.matchBestTime},
		{"cost", s.matchCost},
		{"distance", s.matchDistance},
		{"location_lookup", s.matchLocationLookup},
		{"recommendations", s.matchRecommendations},
		{"comparison", s.matchComparison},
		{"beaches_list", s.matchBeachesList},
		{"temples_list", s.matchTemplesList},
		{"activities", s.matchActivities},
		{"bare_place", s.matchBarePlace},
	}
	return s
}

func (s *ServiceImpl) Classify(query string) (models.Intent, models.Slots) {
	for _, r := range s.cascade {
		if intent, slots, ok := r.match(query); ok {
			s.logger.Debug("Query classified",
				slog.String("rule", r.name),
				slog.String("intent", string(intent)))
			return intent, slots
		}
	}
	slots := models.Slots{models.SlotQuery: query}
	return models.IntentGeneral, slots
}

func (s *ServiceImpl) matchChitchat(query string) (models.Intent, models.Slots, bool) {
	if kind, ok := chitchatQueries[query]; ok {
		return models.IntentChitchat, models.Slots{models.SlotGreeting: kind}, true
	}
	return "", nil, false
}

func (s *ServiceImpl) matchHelp(query string) (models.Intent, models.Slots, bool) {
	if _, ok := helpQueries[query]; ok {
		return models.IntentHelp, models.Slots{}, true
	}
	return "", nil, false
}

func (s *ServiceImpl) matchItinerary(query string) (models.Intent, models.Slots, bool) {
	for _, p := range tripHourPatterns {
		if m := p.FindStringSubmatch(query); m != nil {
			return models.IntentItinerary, s.tripSlots(m[2], m[1], 60), true
		}
	}
	for _, p := range tripDayPatterns {
		if m := p.FindStringSubmatch(query); m != nil {
			return models.IntentItinerary, s.tripSlots(m[2], m[1], 24*60), true
		}
	}
	if m := tripForPattern.FindStringSubmatch(query); m != nil {
		perUnit := 60
		if strings.HasPrefix(m[3], "day") {
			perUnit = 24 * 60
		}
		return models.IntentItinerary, s.tripSlots(m[1], m[2], perUnit), true
	}
	if m := tripCityOnlyPattern.FindStringSubmatch(query); m != nil {
		slots := models.Slots{}
		s.setPlaceSlot(slots, models.SlotCity, m[1])
		return models.IntentItinerary, slots, true
	}
	if tripBarePattern.MatchString(query) {
		return models.IntentItinerary, models.Slots{}, true
	}
	return "", nil, false
}

// tripSlots builds itinerary slots from a raw city token and duration
// count, converting to minutes with the given unit size.
func (s *ServiceImpl) tripSlots(city, count string, minutesPerUnit int) models.Slots {
	slots := models.Slots{}
	n, err := strconv.Atoi(count)
	if err == nil && n > 0 {
		slots.SetInt(models.SlotDurationMinutes, n*minutesPerUnit)
	}
	s.setPlaceSlot(slots, models.SlotCity, city)
	return slots
}

// setPlaceSlot stores a resolved place, or the verbatim token tagged
// unresolved when the resolver cannot place it.
func (s *ServiceImpl) setPlaceSlot(slots models.Slots, name, token string) {
	token = strings.TrimSpace(token)
	if token == "" {
		return
	}
	resolved, ok := s.resolver.CorrectPlace(token)
	slots[name] = resolved
	if !ok {
		slots.MarkUnresolved(name)
	}
}

func (s *ServiceImpl) matchWeather(query string) (models.Intent, models.Slots, bool) {
	for _, p := range weatherPatterns {
		if m := p.FindStringSubmatch(query); m != nil {
			slots := models.Slots{}
			s.setPlaceSlot(slots, models.SlotLocation, m[1])
			return models.IntentWeather, slots, true
		}
	}
	return "", nil, false
}

func containsAny(query string, words ...string) bool {
	for _, w := range words {
		if strings.Contains(query, w) {
			return true
		}
	}
	return false
}

// keywordPlace extracts a place with the given pattern. These intents
// always answer for somewhere, so a query naming no place gets the
// fallback.
func (s *ServiceImpl) keywordPlace(query string, p *regexp.Regexp, slot, fallback string) models.Slots {
	slots := models.Slots{}
	if m := p.FindStringSubmatch(query); m != nil {
		s.setPlaceSlot(slots, slot, m[1])
	} else {
		slots[slot] = fallback
	}
	return slots
}

func (s *ServiceImpl) matchRestaurants(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "restaurant", "food", "eat", "dining") {
		return "", nil, false
	}
	return models.IntentRestaurants, s.keywordPlace(query, nearPlacePattern, models.SlotCity, "colombo"), true
}

func (s *ServiceImpl) matchHotels(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "hotel", "stay", "accommodation", "lodging") {
		return "", nil, false
	}
	return models.IntentHotels, s.keywordPlace(query, nearPlacePattern, models.SlotCity, "colombo"), true
}

func (s *ServiceImpl) matchFacts(query string) (models.Intent, models.Slots, bool) {
	for _, p := range factsPatterns {
		if m := p.FindStringSubmatch(query); m != nil {
			slots := models.Slots{}
			s.setPlaceSlot(slots, models.SlotPlace, m[1])
			return models.IntentFacts, slots, true
		}
	}
	return "", nil, false
}

func (s *ServiceImpl) matchAttractions(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "attractions", "places", "visit", "see", "things to do") {
		return "", nil, false
	}
	return models.IntentAttractions, s.keywordPlace(query, inAtPlacePattern, models.SlotCity, "colombo"), true
}

func (s *ServiceImpl) matchTransportation(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "how to go", "how to reach", "transportation", "travel to", "get to", "go to") {
		return "", nil, false
	}
	return models.IntentTransportation, s.keywordPlace(query, toInPlacePattern, models.SlotPlace, "sri lanka"), true
}

func (s *ServiceImpl) matchHistory(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "history", "historical", "ancient", "heritage") {
		return "", nil, false
	}
	return models.IntentHistory, s.keywordPlace(query, ofInAboutPattern, models.SlotPlace, "sri lanka"), true
}

func (s *ServiceImpl) matchBestTime(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "best time", "when to visit", "season", "climate") {
		return "", nil, false
	}
	return models.IntentBestTime, s.keywordPlace(query, visitInPattern, models.SlotPlace, "sri lanka"), true
}

func (s *ServiceImpl) matchCost(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "cost", "price", "expensive", "budget", "cheap") {
		return "", nil, false
	}
	return models.IntentCost, s.keywordPlace(query, ofInForPattern, models.SlotPlace, "sri lanka"), true
}

func (s *ServiceImpl) matchDistance(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "distance", "how far", "from") {
		return "", nil, false
	}
	return models.IntentDistance, models.Slots{models.SlotQuery: query}, true
}

func (s *ServiceImpl) matchLocationLookup(query string) (models.Intent, models.Slots, bool) {
	m := whereIsPattern.FindStringSubmatch(query)
	if m == nil {
		return "", nil, false
	}
	slots := models.Slots{}
	s.setPlaceSlot(slots, models.SlotPlace, m[1])
	return models.IntentLocationLookup, slots, true
}

func (s *ServiceImpl) matchRecommendations(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "recommend", "suggest", "advise", "best") {
		return "", nil, false
	}
	return models.IntentRecommend, models.Slots{models.SlotQuery: query}, true
}

func (s *ServiceImpl) matchComparison(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "compare", "vs", "versus", "difference") {
		return "", nil, false
	}
	return models.IntentComparison, models.Slots{models.SlotQuery: query}, true
}

func (s *ServiceImpl) matchBeachesList(query string) (models.Intent, models.Slots, bool) {
	if !strings.Contains(query, "beaches") {
		return "", nil, false
	}
	slots := models.Slots{models.SlotPlace: "sri lanka"}
	if m := beachesPlacePattern.FindStringSubmatch(query); m != nil {
		slots[models.SlotPlace] = m[1]
	}
	return models.IntentBeachesList, slots, true
}

func (s *ServiceImpl) matchTemplesList(query string) (models.Intent, models.Slots, bool) {
	if !strings.Contains(query, "temples") {
		return "", nil, false
	}
	slots := models.Slots{models.SlotPlace: "sri lanka"}
	if m := templesPlacePattern.FindStringSubmatch(query); m != nil {
		slots[models.SlotPlace] = m[1]
	}
	return models.IntentTemplesList, slots, true
}

func (s *ServiceImpl) matchActivities(query string) (models.Intent, models.Slots, bool) {
	if !containsAny(query, "hiking", "photography", "nightlife", "shopping") {
		return "", nil, false
	}
	slots := models.Slots{models.SlotActivity: query, models.SlotPlace: "sri lanka"}
	if m := nearPlacePattern.FindStringSubmatch(query); m != nil {
		slots[models.SlotPlace] = m[1]
	}
	return models.IntentActivities, slots, true
}

// matchBarePlace turns a one-or-two-word query that resolves to a known
// place into an attractions request for it.
func (s *ServiceImpl) matchBarePlace(query string) (models.Intent, models.Slots, bool) {
	tokens := bareTokensPattern.FindAllString(query, -1)
	if len(tokens) != 1 {
		return "", nil, false
	}
	corrected, ok := s.resolver.CorrectPlace(strings.TrimSpace(tokens[0]))
	if !ok || !s.resolver.IsKnownPlace(corrected) {
		return "", nil, false
	}
	return models.IntentAttractions, models.Slots{models.SlotCity: corrected}, true
}
