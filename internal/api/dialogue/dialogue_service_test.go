package dialogue

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

func setupDialogueServiceTest(t *testing.T) *ServiceImpl {
	t.Helper()
	return NewService(slog.Default())
}

func TestServiceImpl_ParseMinutes(t *testing.T) {
	svc := setupDialogueServiceTest(t)

	tests := []struct {
		name    string
		input   string
		minutes int
		ok      bool
	}{
		{"whole hours", "2 hours", 120, true},
		{"hour abbreviation", "3 hr", 180, true},
		{"bare h", "2h", 120, true},
		{"fractional hours", "1.5 hours", 90, true},
		{"hours clamp to 30", "0.1 hours", 30, true},
		{"minutes", "120 minutes", 120, true},
		{"min abbreviation", "150 min", 150, true},
		{"bare m", "45m", 45, true},
		{"minutes clamp to 15", "5 minutes", 15, true},
		{"no duration", "kandy is lovely", 0, false},
		{"empty", "", 0, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := svc.ParseMinutes(tc.input)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.minutes, got)
		})
	}
}

func TestServiceImpl_IsAffirmation(t *testing.T) {
	svc := setupDialogueServiceTest(t)

	for _, word := range []string{"yes", "Yeah", "YEP", "sure", "ok", "okay", "ya", "affirmative", " yes "} {
		assert.True(t, svc.IsAffirmation(word), word)
	}
	for _, word := range []string{"no", "yes please plan it", "maybe", ""} {
		assert.False(t, svc.IsAffirmation(word), word)
	}
}

func TestServiceImpl_SlotFillingSequence(t *testing.T) {
	svc := setupDialogueServiceTest(t)
	state := models.NewDialogueState()

	// Turn 1: itinerary intent with no slots prompts for a city.
	res := svc.Advance(state, models.Slots{})
	require.NotNil(t, res)
	assert.False(t, res.Ready)
	assert.Contains(t, res.Prompt, "city")
	assert.Equal(t, models.AwaitingCity, state.Pending)

	// Turn 2: next message is consumed as the city verbatim.
	res, handled := svc.ConsumePending(state, "kandy")
	require.True(t, handled)
	assert.False(t, res.Ready)
	assert.Contains(t, res.Prompt, "kandy")
	assert.Equal(t, models.AwaitingMinutes, state.Pending)
	assert.Equal(t, "kandy", state.Slots[models.SlotCity])

	// Turn 3: duration completes the machine and returns it to idle.
	res, handled = svc.ConsumePending(state, "2 hours")
	require.True(t, handled)
	assert.True(t, res.Ready)
	assert.Equal(t, "kandy", res.City)
	assert.Equal(t, 120, res.Minutes)
	assert.Equal(t, models.PendingNone, state.Pending)
	assert.Empty(t, state.Slots)
}

func TestServiceImpl_MalformedDurationReprompts(t *testing.T) {
	svc := setupDialogueServiceTest(t)
	state := models.NewDialogueState()
	state.Pending = models.AwaitingMinutes
	state.Slots = models.Slots{models.SlotCity: "galle"}

	res, handled := svc.ConsumePending(state, "a while i guess")
	require.True(t, handled)
	assert.False(t, res.Ready)
	assert.Contains(t, res.Prompt, "2 hours")
	// State is unchanged: still waiting, city kept.
	assert.Equal(t, models.AwaitingMinutes, state.Pending)
	assert.Equal(t, "galle", state.Slots[models.SlotCity])
}

func TestServiceImpl_AdvanceWithCityOnly(t *testing.T) {
	svc := setupDialogueServiceTest(t)
	state := models.NewDialogueState()

	res := svc.Advance(state, models.Slots{models.SlotCity: "galle"})
	assert.False(t, res.Ready)
	assert.Contains(t, res.Prompt, "galle")
	assert.Equal(t, models.AwaitingMinutes, state.Pending)
	// Invariant: awaiting a duration implies the city is collected.
	assert.Equal(t, "galle", state.Slots[models.SlotCity])
}

func TestServiceImpl_AdvanceWithAllSlots(t *testing.T) {
	svc := setupDialogueServiceTest(t)
	state := models.NewDialogueState()

	slots := models.Slots{models.SlotCity: "galle"}
	slots.SetInt(models.SlotDurationMinutes, 2880)
	res := svc.Advance(state, slots)
	assert.True(t, res.Ready)
	assert.Equal(t, "galle", res.City)
	assert.Equal(t, 2880, res.Minutes)
	assert.Equal(t, models.PendingNone, state.Pending)
}

func TestServiceImpl_IdleMachineIgnoresConsume(t *testing.T) {
	svc := setupDialogueServiceTest(t)
	state := models.NewDialogueState()

	res, handled := svc.ConsumePending(state, "weather in kandy")
	assert.False(t, handled)
	assert.Nil(t, res)
}

func TestDialogueState_ResetIdempotence(t *testing.T) {
	svc := setupDialogueServiceTest(t)

	run := func() (models.PendingState, string) {
		state := models.NewDialogueState()
		svc.Advance(state, models.Slots{})
		svc.ConsumePending(state, "ella")
		return state.Pending, state.Slots[models.SlotCity]
	}

	p1, c1 := run()
	p2, c2 := run()
	assert.Equal(t, p1, p2)
	assert.Equal(t, c1, c2)
}
