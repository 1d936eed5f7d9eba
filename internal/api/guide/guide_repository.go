package guide

import (
	"log/slog"
	"strings"
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

const (
	sessionTTL      = 24 * time.Hour
	cleanupInterval = time.Hour

	statePrefix   = "state:"
	historyPrefix = "history:"
)

// greetings that open a bot turn mark the start of a conversation inside
// the flat per-session history log.
var sessionStartGreetings = []string{
	"Hello!", "Good morning", "Good afternoon", "Good evening",
}

var _ SessionStore = (*CacheSessionStore)(nil)

// SessionStore keeps per-session dialogue state and the turn log. The
// dispatcher is the only writer; same-session requests are expected to be
// serialized by the caller.
type SessionStore interface {
	// State returns the session's dialogue state, creating an idle one
	// on first use.
	State(sessionID string) *models.DialogueState
	// SaveState writes the state back and refreshes its TTL.
	SaveState(sessionID string, state *models.DialogueState)
	// AppendTurns adds entries to the session's turn log.
	AppendTurns(sessionID string, turns ...models.ConversationTurn)
	// History returns a copy of the session's turn log.
	History(sessionID string) []models.ConversationTurn
	// ClearHistory drops the turn log and resets the dialogue state.
	ClearHistory(sessionID string)
	// DeleteConversation removes the conversation slice that contains
	// the given message, bounded by session-start bot greetings. It
	// reports whether the message was found.
	DeleteConversation(sessionID, messageID string) bool
}

// CacheSessionStore is an in-memory SessionStore on an expiring cache.
// Nothing survives the TTL; there is no durable persistence.
type CacheSessionStore struct {
	logger *slog.Logger
	cache  *cache.Cache
}

func NewCacheSessionStore(logger *slog.Logger) *CacheSessionStore {
	return &CacheSessionStore{
		logger: logger,
		cache:  cache.New(sessionTTL, cleanupInterval),
	}
}

func (s *CacheSessionStore) State(sessionID string) *models.DialogueState {
	if v, ok := s.cache.Get(statePrefix + sessionID); ok {
		if state, ok := v.(*models.DialogueState); ok {
			return state
		}
	}
	state := models.NewDialogueState()
	s.cache.Set(statePrefix+sessionID, state, cache.DefaultExpiration)
	return state
}

func (s *CacheSessionStore) SaveState(sessionID string, state *models.DialogueState) {
	s.cache.Set(statePrefix+sessionID, state, cache.DefaultExpiration)
}

func (s *CacheSessionStore) AppendTurns(sessionID string, turns ...models.ConversationTurn) {
	history := s.history(sessionID)
	history = append(history, turns...)
	s.cache.Set(historyPrefix+sessionID, history, cache.DefaultExpiration)
}

func (s *CacheSessionStore) History(sessionID string) []models.ConversationTurn {
	history := s.history(sessionID)
	out := make([]models.ConversationTurn, len(history))
	copy(out, history)
	return out
}

func (s *CacheSessionStore) ClearHistory(sessionID string) {
	s.cache.Set(historyPrefix+sessionID, []models.ConversationTurn{}, cache.DefaultExpiration)
	s.cache.Set(statePrefix+sessionID, models.NewDialogueState(), cache.DefaultExpiration)
	s.logger.Debug("cleared session history", slog.String("session_id", sessionID))
}

func (s *CacheSessionStore) DeleteConversation(sessionID, messageID string) bool {
	history := s.history(sessionID)
	if len(history) == 0 {
		return false
	}

	target := -1
	for i, turn := range history {
		if turn.ID == messageID {
			target = i
			break
		}
	}
	if target < 0 {
		return false
	}

	// Walk back to the nearest conversation start, then forward to the
	// start of the next one; the slice between them is the conversation
	// the message belongs to.
	start := 0
	for i := target; i >= 0; i-- {
		if isConversationStart(history[i]) {
			start = i
			break
		}
	}
	end := len(history)
	for i := target + 1; i < len(history); i++ {
		if isConversationStart(history[i]) {
			end = i
			break
		}
	}

	remaining := make([]models.ConversationTurn, 0, len(history)-(end-start))
	remaining = append(remaining, history[:start]...)
	remaining = append(remaining, history[end:]...)
	s.cache.Set(historyPrefix+sessionID, remaining, cache.DefaultExpiration)
	s.logger.Debug("deleted conversation slice",
		slog.String("session_id", sessionID),
		slog.Int("removed", end-start))
	return true
}

func (s *CacheSessionStore) history(sessionID string) []models.ConversationTurn {
	if v, ok := s.cache.Get(historyPrefix + sessionID); ok {
		if history, ok := v.([]models.ConversationTurn); ok {
			return history
		}
	}
	return nil
}

func isConversationStart(turn models.ConversationTurn) bool {
	if turn.Who != "bot" {
		return false
	}
	if turn.Type == "welcome" {
		return true
	}
	for _, greet := range sessionStartGreetings {
		if strings.Contains(turn.Text, greet) {
			return true
		}
	}
	return false
}
