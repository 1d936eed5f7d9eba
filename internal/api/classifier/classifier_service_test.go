package classifier

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tour-guide/internal/api/gazetteer"
	"github.com/FACorreiaa/go-tour-guide/internal/api/resolver"
	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

func setupClassifierServiceTest(t *testing.T) *ServiceImpl {
	t.Helper()
	gaz, err := gazetteer.NewEmbeddedRepository(slog.Default())
	require.NoError(t, err)
	res := resolver.NewService(gaz, 0, slog.Default())
	return NewService(res, slog.Default())
}

func TestServiceImpl_Classify_Itinerary(t *testing.T) {
	svc := setupClassifierServiceTest(t)

	t.Run("day trip converts to minutes", func(t *testing.T) {
		intent, slots := svc.Classify("plan a 2 day trip to galle")
		assert.Equal(t, models.IntentItinerary, intent)
		assert.Equal(t, "galle", slots[models.SlotCity])
		assert.Equal(t, 2880, slots.Int(models.SlotDurationMinutes))
	})

	t.Run("hour trip converts to minutes", func(t *testing.T) {
		intent, slots := svc.Classify("plan a 3 hour trip to kandy")
		assert.Equal(t, models.IntentItinerary, intent)
		assert.Equal(t, "kandy", slots[models.SlotCity])
		assert.Equal(t, 180, slots.Int(models.SlotDurationMinutes))
	})

	t.Run("trailing duration form", func(t *testing.T) {
		intent, slots := svc.Classify("trip to ella for 2 days")
		assert.Equal(t, models.IntentItinerary, intent)
		assert.Equal(t, "ella", slots[models.SlotCity])
		assert.Equal(t, 2880, slots.Int(models.SlotDurationMinutes))
	})

	t.Run("city without duration", func(t *testing.T) {
		intent, slots := svc.Classify("plan a trip to colombo")
		assert.Equal(t, models.IntentItinerary, intent)
		assert.Equal(t, "colombo", slots[models.SlotCity])
		assert.Zero(t, slots.Int(models.SlotDurationMinutes))
	})

	t.Run("bare planning request", func(t *testing.T) {
		intent, slots := svc.Classify("plan a tour")
		assert.Equal(t, models.IntentItinerary, intent)
		assert.Empty(t, slots[models.SlotCity])
		assert.Zero(t, slots.Int(models.SlotDurationMinutes))
	})

	t.Run("unresolvable city kept verbatim", func(t *testing.T) {
		intent, slots := svc.Classify("plan a 2 hour trip to gotham")
		assert.Equal(t, models.IntentItinerary, intent)
		assert.Equal(t, "gotham", slots[models.SlotCity])
		assert.True(t, slots.IsUnresolved(models.SlotCity))
	})
}

func TestServiceImpl_Classify_Weather(t *testing.T) {
	svc := setupClassifierServiceTest(t)

	t.Run("weather in city", func(t *testing.T) {
		intent, slots := svc.Classify("weather in kandy")
		assert.Equal(t, models.IntentWeather, intent)
		assert.Equal(t, "kandy", slots[models.SlotLocation])
	})

	t.Run("city weather form", func(t *testing.T) {
		intent, slots := svc.Classify("colombo weather")
		assert.Equal(t, models.IntentWeather, intent)
		assert.Equal(t, "colombo", slots[models.SlotLocation])
	})

	t.Run("temperature form", func(t *testing.T) {
		intent, slots := svc.Classify("temperature in jaffna")
		assert.Equal(t, models.IntentWeather, intent)
		assert.Equal(t, "jaffna", slots[models.SlotLocation])
	})
}

func TestServiceImpl_Classify_KeywordIntents(t *testing.T) {
	svc := setupClassifierServiceTest(t)

	tests := []struct {
		name   string
		query  string
		intent models.Intent
		slot   string
		value  string
	}{
		{"restaurants with city", "best food in galle", models.IntentRestaurants, models.SlotCity, "galle"},
		{"restaurants default city", "any good dining spots", models.IntentRestaurants, models.SlotCity, "colombo"},
		{"hotels", "hotels near ella", models.IntentHotels, models.SlotCity, "ella"},
		{"attractions", "places to visit in kandy", models.IntentAttractions, models.SlotCity, "kandy"},
		{"transportation default place", "transportation options please", models.IntentTransportation, models.SlotPlace, "sri lanka"},
		{"transportation with place", "travel to jaffna by train", models.IntentTransportation, models.SlotPlace, "jaffna"},
		{"history", "history of galle", models.IntentHistory, models.SlotPlace, "galle"},
		{"best time", "best season in kandy", models.IntentBestTime, models.SlotPlace, "kandy"},
		{"cost", "ticket price for sigiriya", models.IntentCost, models.SlotPlace, "sigiriya"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			intent, slots := svc.Classify(tc.query)
			assert.Equal(t, tc.intent, intent)
			assert.Equal(t, tc.value, slots[tc.slot])
		})
	}
}

func TestServiceImpl_Classify_OrderingIsPartOfTheContract(t *testing.T) {
	svc := setupClassifierServiceTest(t)

	t.Run("history of galle is history not facts", func(t *testing.T) {
		// "about" style facts patterns would also bite here; history is
		// checked with its own keyword set and must not lose the query.
		intent, _ := svc.Classify("history of galle")
		assert.Equal(t, models.IntentHistory, intent)
	})

	t.Run("itinerary beats weather on shared place words", func(t *testing.T) {
		intent, _ := svc.Classify("plan a 2 day trip to kandy whatever the climate")
		assert.Equal(t, models.IntentItinerary, intent)
	})

	t.Run("restaurants beat hotels when both keyword sets occur", func(t *testing.T) {
		intent, _ := svc.Classify("food and hotels in galle")
		assert.Equal(t, models.IntentRestaurants, intent)
	})

	t.Run("visit keyword routes to attractions before best time", func(t *testing.T) {
		intent, slots := svc.Classify("when to visit ella")
		assert.Equal(t, models.IntentAttractions, intent)
		assert.Equal(t, "colombo", slots[models.SlotCity])
	})

	t.Run("distance needs a distance word, not a bare to", func(t *testing.T) {
		// "top beaches" must fall through the distance rule and be
		// answered as a beach list.
		intent, _ := svc.Classify("top beaches")
		assert.Equal(t, models.IntentBeachesList, intent)

		intent, _ = svc.Classify("how far is ella from kandy")
		assert.Equal(t, models.IntentDistance, intent)
	})
}

func TestServiceImpl_Classify_FactsAndLookup(t *testing.T) {
	svc := setupClassifierServiceTest(t)

	t.Run("tell me about", func(t *testing.T) {
		intent, slots := svc.Classify("tell me about sigiriya")
		assert.Equal(t, models.IntentFacts, intent)
		assert.Equal(t, "sigiriya", slots[models.SlotPlace])
	})

	t.Run("where is", func(t *testing.T) {
		intent, slots := svc.Classify("where is nuwara eliya")
		assert.Equal(t, models.IntentLocationLookup, intent)
		assert.Equal(t, "nuwara eliya", slots[models.SlotPlace])
	})
}

func TestServiceImpl_Classify_Lists(t *testing.T) {
	svc := setupClassifierServiceTest(t)

	t.Run("beaches default", func(t *testing.T) {
		intent, slots := svc.Classify("show me beaches")
		assert.Equal(t, models.IntentBeachesList, intent)
		assert.Equal(t, "sri lanka", slots[models.SlotPlace])
	})

	t.Run("temples near city", func(t *testing.T) {
		intent, slots := svc.Classify("temples near kandy")
		assert.Equal(t, models.IntentTemplesList, intent)
		assert.Equal(t, "kandy", slots[models.SlotPlace])
	})
}

func TestServiceImpl_Classify_BarePlace(t *testing.T) {
	svc := setupClassifierServiceTest(t)

	t.Run("misspelled bare place", func(t *testing.T) {
		intent, slots := svc.Classify("jafna")
		assert.Equal(t, models.IntentAttractions, intent)
		assert.Equal(t, "jaffna", slots[models.SlotCity])
	})

	t.Run("two word place", func(t *testing.T) {
		intent, slots := svc.Classify("arugam bay")
		assert.Equal(t, models.IntentAttractions, intent)
		assert.Equal(t, "arugam bay", slots[models.SlotCity])
	})

	t.Run("unknown bare token is general", func(t *testing.T) {
		intent, slots := svc.Classify("zanzibar")
		assert.Equal(t, models.IntentGeneral, intent)
		assert.Equal(t, "zanzibar", slots[models.SlotQuery])
	})
}

func TestServiceImpl_Classify_ChitchatAndHelp(t *testing.T) {
	svc := setupClassifierServiceTest(t)

	t.Run("greeting", func(t *testing.T) {
		intent, slots := svc.Classify("hi")
		assert.Equal(t, models.IntentChitchat, intent)
		assert.Equal(t, "hi", slots[models.SlotGreeting])
	})

	t.Run("thanks", func(t *testing.T) {
		intent, _ := svc.Classify("thank you")
		assert.Equal(t, models.IntentChitchat, intent)
	})

	t.Run("help", func(t *testing.T) {
		intent, _ := svc.Classify("help")
		assert.Equal(t, models.IntentHelp, intent)
	})
}

func TestServiceImpl_Classify_GeneralFallback(t *testing.T) {
	svc := setupClassifierServiceTest(t)

	intent, slots := svc.Classify("the moon is made of cheese")
	assert.Equal(t, models.IntentGeneral, intent)
	assert.Equal(t, "the moon is made of cheese", slots[models.SlotQuery])
}
