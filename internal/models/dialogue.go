package models

import (
	"strconv"
	"time"
)

// Slots maps a slot name to the raw or resolved value extracted for it.
// A place-valued slot that failed gazetteer resolution keeps its verbatim
// token and gets a companion "<name>__unresolved" marker entry.
type Slots map[string]string

// Int parses a numeric slot, returning 0 when absent or malformed.
func (s Slots) Int(name string) int {
	v, err := strconv.Atoi(s[name])
	if err != nil {
		return 0
	}
	return v
}

// SetInt stores a numeric slot value.
func (s Slots) SetInt(name string, v int) {
	s[name] = strconv.Itoa(v)
}

// MarkUnresolved tags a slot as carrying an unresolved place token.
func (s Slots) MarkUnresolved(name string) {
	s[name+UnresolvedSuffix] = "true"
}

// IsUnresolved reports whether a slot carries an unresolved place token.
func (s Slots) IsUnresolved(name string) bool {
	return s[name+UnresolvedSuffix] == "true"
}

// Merge copies every entry of other into s, overwriting duplicates.
func (s Slots) Merge(other Slots) {
	for k, v := range other {
		s[k] = v
	}
}

// Clone returns an independent copy of s.
func (s Slots) Clone() Slots {
	out := make(Slots, len(s))
	for k, v := range s {
		out[k] = v
	}
	return out
}

// PendingState names the slot the dialogue machine is waiting on.
type PendingState string

const (
	PendingNone     PendingState = ""         // IDLE
	AwaitingCity    PendingState = "city"     // next turn is consumed as the city
	AwaitingMinutes PendingState = "duration" // next turn is parsed as a duration
)

// DialogueState is the per-session mutable slot-filling record. It is owned
// by the session; the core mutates it only inside ProcessTurn and the caller
// is responsible for serializing concurrent requests on the same session.
type DialogueState struct {
	Pending           PendingState `json:"pending"`
	Slots             Slots        `json:"slots"`
	LastPlace         string       `json:"last_place,omitempty"`
	LastItineraryCity string       `json:"last_itinerary_city,omitempty"`
}

// NewDialogueState returns an idle state with empty slots.
func NewDialogueState() *DialogueState {
	return &DialogueState{Pending: PendingNone, Slots: Slots{}}
}

// Clear resets to IDLE and drops collected slots. The last_place /
// last_itinerary_city anchors survive so confirmation shortcuts keep
// working across a slot reset, matching the original behavior.
func (d *DialogueState) Clear() {
	d.Pending = PendingNone
	d.Slots = Slots{}
}

// Reset drops everything including the follow-up anchors.
func (d *DialogueState) Reset() {
	d.Clear()
	d.LastPlace = ""
	d.LastItineraryCity = ""
}

// ConversationTurn is one immutable entry of the per-session log.
type ConversationTurn struct {
	ID        string    `json:"id"`
	Who       string    `json:"who"` // "user" or "bot"
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Intent    Intent    `json:"intent,omitempty"`
	Type      string    `json:"type,omitempty"`
	Slots     Slots     `json:"slots,omitempty"`
	ReplyTo   string    `json:"reply_to,omitempty"`
}

// StructuredResponse is what the dispatcher hands back to the surrounding
// application for rendering.
type StructuredResponse struct {
	Type        string         `json:"type"`
	Text        string         `json:"text"`
	Suggestions []string       `json:"suggestions,omitempty"`
	Data        map[string]any `json:"data,omitempty"`
	Blocked     bool           `json:"blocked,omitempty"`
}
