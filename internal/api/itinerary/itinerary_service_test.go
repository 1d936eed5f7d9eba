package itinerary

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tour-guide/internal/api/gazetteer"
)

func setupItineraryServiceTest(t *testing.T) *ServiceImpl {
	t.Helper()
	gaz, err := gazetteer.NewEmbeddedRepository(slog.Default())
	require.NoError(t, err)
	return NewService(gaz, slog.Default())
}

func TestServiceImpl_Plan(t *testing.T) {
	svc := setupItineraryServiceTest(t)

	t.Run("packs within the budget", func(t *testing.T) {
		plan, ok := svc.Plan("kandy", 120)
		require.True(t, ok)
		assert.Equal(t, "Kandy", plan.City)
		require.NotEmpty(t, plan.Stops)
		assert.LessOrEqual(t, plan.PlannedMinutes, 120)
		assert.Greater(t, plan.TotalMinutes, plan.PlannedMinutes)

		sum := 0
		for _, stop := range plan.Stops {
			sum += stop.Minutes
		}
		assert.Equal(t, plan.PlannedMinutes, sum)
	})

	t.Run("greedy order follows curated order", func(t *testing.T) {
		plan, ok := svc.Plan("kandy", 120)
		require.True(t, ok)
		assert.Equal(t, "Temple of the Tooth Relic", plan.Stops[0].Name)
	})

	t.Run("large budget pulls in same-city entries", func(t *testing.T) {
		small, ok := svc.Plan("sigiriya", 90)
		require.True(t, ok)
		big, ok := svc.Plan("sigiriya", 600)
		require.True(t, ok)
		assert.Greater(t, len(big.Stops), len(small.Stops))
		assert.GreaterOrEqual(t, big.PlannedMinutes, small.PlannedMinutes)
	})

	t.Run("matches aliases and loose casing", func(t *testing.T) {
		plan, ok := svc.Plan("Lion Rock", 180)
		require.True(t, ok)
		assert.Equal(t, "Sigiriya", plan.City)
	})

	t.Run("unknown city", func(t *testing.T) {
		_, ok := svc.Plan("gotham", 120)
		assert.False(t, ok)
	})

	t.Run("tiny budget yields empty stop list", func(t *testing.T) {
		plan, ok := svc.Plan("kandy", 10)
		require.True(t, ok)
		assert.Empty(t, plan.Stops)
		assert.Zero(t, plan.PlannedMinutes)
	})
}

func TestServiceImpl_TripSize(t *testing.T) {
	svc := setupItineraryServiceTest(t)

	tests := []struct {
		minutes  int
		expected int
	}{
		{120, 2},
		{299, 2},
		{300, 5},
		{720, 5},
		{721, 7},
		{1440, 7},
		{2880, 10},
		{4320, 12},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.expected, svc.TripSize(tc.minutes))
	}
}
