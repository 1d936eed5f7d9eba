// Package dialogue runs the itinerary slot-filling state machine. A
// session cycles IDLE -> AWAITING_CITY -> AWAITING_DURATION -> IDLE;
// there is no terminal state. AWAITING_DURATION is only ever entered
// with a city already collected.
package dialogue

import (
	"fmt"
	"log/slog"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

const (
	minHoursClampMinutes   = 30
	minMinutesClampMinutes = 15
)

// Accepts "2h", "2 hr", "2 hours", "1.5 hours", "120m", "120 minutes".
var (
	hoursPattern   = regexp.MustCompile(`(?i)(\d+(?:\.\d+)?)\s*(?:hours?|hrs?|h)\b`)
	minutesPattern = regexp.MustCompile(`(?i)(\d+)\s*(?:minutes?|mins?|m)\b`)
)

var confirmWords = map[string]struct{}{
	"yes": {}, "yeah": {}, "yep": {}, "sure": {},
	"ok": {}, "okay": {}, "ya": {}, "affirmative": {},
}

// Result is one step of the machine. When Prompt is set the machine
// already has the user's answer text; when Ready is set the caller owns
// building the itinerary from City and Minutes.
type Result struct {
	Prompt      string
	Suggestions []string
	Ready       bool
	City        string
	Minutes     int
}

var _ Service = (*ServiceImpl)(nil)

// Service advances the slot-filling machine and parses its inputs.
type Service interface {
	// ConsumePending feeds a turn to a non-idle machine. It returns
	// (nil, false) when the machine is idle and the turn should go
	// through the classifier instead.
	ConsumePending(state *models.DialogueState, text string) (*Result, bool)
	// Advance handles a classified itinerary intent, prompting for
	// whichever slot is still missing.
	Advance(state *models.DialogueState, slots models.Slots) *Result
	// ParseMinutes extracts a duration in minutes from free text.
	ParseMinutes(text string) (int, bool)
	// IsAffirmation reports whether a turn is a bare confirmation word.
	IsAffirmation(text string) bool
}

type ServiceImpl struct {
	logger *slog.Logger
}

func NewService(logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{logger: logger}
}

func (s *ServiceImpl) ConsumePending(state *models.DialogueState, text string) (*Result, bool) {
	switch state.Pending {
	case models.AwaitingCity:
		city := strings.TrimSpace(text)
		state.Slots[models.SlotCity] = city
		state.Pending = models.AwaitingMinutes
		return &Result{
			Prompt:      fmt.Sprintf("Great. How much time do you have for **%s**? (e.g., *2 hours* or *120 min*)", city),
			Suggestions: []string{"1 hour", "2 hours", "3 hours"},
		}, true

	case models.AwaitingMinutes:
		minutes, ok := s.ParseMinutes(text)
		if !ok {
			// Re-prompt; the machine stays in AWAITING_DURATION.
			return &Result{
				Prompt:      "Please tell me the time like **2 hours** or **150 min**.",
				Suggestions: []string{"1 hour", "2 hours", "3 hours"},
			}, true
		}
		city := state.Slots[models.SlotCity]
		state.Clear()
		s.logger.Debug("Itinerary slots complete",
			slog.String("city", city), slog.Int("minutes", minutes))
		return &Result{Ready: true, City: city, Minutes: minutes}, true
	}
	return nil, false
}

func (s *ServiceImpl) Advance(state *models.DialogueState, slots models.Slots) *Result {
	city := slots[models.SlotCity]
	minutes := slots.Int(models.SlotDurationMinutes)

	if city == "" {
		state.Pending = models.AwaitingCity
		state.Slots = models.Slots{}
		return &Result{
			Prompt:      "Which **city** would you like a tour for?",
			Suggestions: []string{"Kandy", "Galle", "Ella", "Sigiriya"},
		}
	}
	if minutes == 0 {
		state.Pending = models.AwaitingMinutes
		state.Slots = models.Slots{models.SlotCity: city}
		return &Result{
			Prompt:      fmt.Sprintf("How much **time** do you have for **%s**? (e.g., *2 hours* or *120 min*)", city),
			Suggestions: []string{"1 hour", "2 hours", "3 hours"},
		}
	}

	state.Clear()
	return &Result{Ready: true, City: city, Minutes: minutes}
}

func (s *ServiceImpl) ParseMinutes(text string) (int, bool) {
	lower := strings.ToLower(text)
	if m := hoursPattern.FindStringSubmatch(lower); m != nil {
		hours, err := strconv.ParseFloat(m[1], 64)
		if err == nil {
			minutes := int(math.Round(hours * 60))
			if minutes < minHoursClampMinutes {
				minutes = minHoursClampMinutes
			}
			return minutes, true
		}
	}
	if m := minutesPattern.FindStringSubmatch(lower); m != nil {
		minutes, err := strconv.Atoi(m[1])
		if err == nil {
			if minutes < minMinutesClampMinutes {
				minutes = minMinutesClampMinutes
			}
			return minutes, true
		}
	}
	return 0, false
}

func (s *ServiceImpl) IsAffirmation(text string) bool {
	_, ok := confirmWords[strings.ToLower(strings.TrimSpace(text))]
	return ok
}
