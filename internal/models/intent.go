package models

// Intent is the classified purpose of a user message. The set is closed:
// the dispatcher carries one builder per value and is checked exhaustively
// at startup, so adding a value here is a compile-and-wire change.
type Intent string

const (
	IntentFacts          Intent = "facts"
	IntentItinerary      Intent = "itinerary"
	IntentWeather        Intent = "weather"
	IntentRestaurants    Intent = "restaurants"
	IntentHotels         Intent = "hotels"
	IntentAttractions    Intent = "attractions"
	IntentTransportation Intent = "transportation"
	IntentHistory        Intent = "history"
	IntentBestTime       Intent = "best_time"
	IntentCost           Intent = "cost"
	IntentDistance       Intent = "distance"
	IntentRecommend      Intent = "recommendations"
	IntentComparison     Intent = "comparison"
	IntentActivities     Intent = "activities"
	IntentBeachesList    Intent = "beaches_list"
	IntentTemplesList    Intent = "temples_list"
	IntentLocationLookup Intent = "location_lookup"
	IntentChitchat       Intent = "chitchat"
	IntentHelp           Intent = "help"
	IntentGeneral        Intent = "general"
)

// AllIntents lists every member of the closed enumeration. The dispatcher
// validates its builder table against this at construction time.
var AllIntents = []Intent{
	IntentFacts, IntentItinerary, IntentWeather, IntentRestaurants,
	IntentHotels, IntentAttractions, IntentTransportation, IntentHistory,
	IntentBestTime, IntentCost, IntentDistance, IntentRecommend,
	IntentComparison, IntentActivities, IntentBeachesList, IntentTemplesList,
	IntentLocationLookup, IntentChitchat, IntentHelp, IntentGeneral,
}

// Slot names shared by the classifier, dialogue machine and builders.
const (
	SlotCity            = "city"
	SlotPlace           = "place"
	SlotLocation        = "location"
	SlotQuery           = "query"
	SlotActivity        = "activity"
	SlotGreeting        = "greeting"
	SlotDurationMinutes = "duration_minutes"
)

// UnresolvedSuffix tags a place slot whose value matched nothing in the
// gazetteer even after fuzzy matching. The raw token is kept verbatim so a
// downstream builder can still try an external lookup or apologize.
const UnresolvedSuffix = "__unresolved"
