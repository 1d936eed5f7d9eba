// Package guide dispatches classified turns to response builders and owns
// the per-session conversation loop: safety screening, slot-filling
// short-circuits, intent routing and the turn log.
package guide

import (
	"context"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/FACorreiaa/go-tour-guide/app/observability/metrics"
	"github.com/FACorreiaa/go-tour-guide/internal/api/classifier"
	"github.com/FACorreiaa/go-tour-guide/internal/api/dialogue"
	"github.com/FACorreiaa/go-tour-guide/internal/api/gazetteer"
	generativeAI "github.com/FACorreiaa/go-tour-guide/internal/api/generative_ai"
	"github.com/FACorreiaa/go-tour-guide/internal/api/itinerary"
	"github.com/FACorreiaa/go-tour-guide/internal/api/resolver"
	"github.com/FACorreiaa/go-tour-guide/internal/api/safety"
	"github.com/FACorreiaa/go-tour-guide/internal/api/travelapi"
	"github.com/FACorreiaa/go-tour-guide/internal/models"
)

// followUpPhrases are consumed verbatim after an itinerary reply instead of
// going through the classifier.
var followUpPhrases = map[string]struct{}{
	"ticket info":                  {},
	"quick facts":                  {},
	"transportation tips":          {},
	"local dining recommendations": {},
}

var _ Service = (*ServiceImpl)(nil)

// Service is the conversational core. One call per user turn; the caller
// serializes concurrent requests on the same session.
type Service interface {
	// ProcessTurn runs the full pipeline for one user message and
	// returns the bot reply. Collaborator failures degrade to fallback
	// text; only internal invariant violations surface as errors.
	ProcessTurn(ctx context.Context, sessionID, rawText string) (*models.StructuredResponse, error)
	// NewConversation appends a welcome marker to the session log
	// without clearing earlier conversations.
	NewConversation(sessionID string) *models.StructuredResponse
	// History returns the session's turn log.
	History(sessionID string) []models.ConversationTurn
	// ClearHistory drops the turn log and dialogue state.
	ClearHistory(sessionID string)
	// DeleteConversation removes the conversation containing messageID.
	DeleteConversation(sessionID, messageID string) bool
}

type builder func(ctx context.Context, state *models.DialogueState, slots models.Slots, query string) *models.StructuredResponse

type ServiceImpl struct {
	logger     *slog.Logger
	store      SessionStore
	safety     safety.Service
	resolver   resolver.Service
	classifier classifier.Service
	dialogue   dialogue.Service
	planner    itinerary.Service
	gazetteer  gazetteer.Repository
	weather    travelapi.WeatherClient
	geocoder   travelapi.Geocoder
	wiki       travelapi.WikiClient
	generative generativeAI.Service
	metrics    *metrics.AppMetrics

	builders map[models.Intent]builder
}

// NewService wires the dispatcher. It returns an error when the builder
// table does not cover every known intent, so a missing wiring fails at
// startup instead of at runtime.
func NewService(
	store SessionStore,
	saf safety.Service,
	res resolver.Service,
	cls classifier.Service,
	dlg dialogue.Service,
	planner itinerary.Service,
	gaz gazetteer.Repository,
	weather travelapi.WeatherClient,
	geocoder travelapi.Geocoder,
	wiki travelapi.WikiClient,
	generative generativeAI.Service,
	logger *slog.Logger,
) (*ServiceImpl, error) {
	s := &ServiceImpl{
		logger:     logger,
		store:      store,
		safety:     saf,
		resolver:   res,
		classifier: cls,
		dialogue:   dlg,
		planner:    planner,
		gazetteer:  gaz,
		weather:    weather,
		geocoder:   geocoder,
		wiki:       wiki,
		generative: generative,
		metrics:    metrics.Get(),
	}
	s.builders = map[models.Intent]builder{
		models.IntentFacts:          s.buildFacts,
		models.IntentItinerary:      s.buildItinerary,
		models.IntentWeather:        s.buildWeather,
		models.IntentRestaurants:    s.buildRestaurants,
		models.IntentHotels:         s.buildHotels,
		models.IntentAttractions:    s.buildAttractions,
		models.IntentTransportation: s.buildTransportation,
		models.IntentHistory:        s.buildHistory,
		models.IntentBestTime:       s.buildBestTime,
		models.IntentCost:           s.buildCost,
		models.IntentDistance:       s.buildDistance,
		models.IntentRecommend:      s.buildRecommendations,
		models.IntentComparison:     s.buildComparison,
		models.IntentActivities:     s.buildActivities,
		models.IntentBeachesList:    s.buildBeachesList,
		models.IntentTemplesList:    s.buildTemplesList,
		models.IntentLocationLookup: s.buildLocationLookup,
		models.IntentChitchat:       s.buildChitchat,
		models.IntentHelp:           s.buildHelp,
		models.IntentGeneral:        s.buildGeneral,
	}
	for _, intent := range models.AllIntents {
		if _, ok := s.builders[intent]; !ok {
			return nil, fmt.Errorf("no builder registered for intent %q", intent)
		}
	}
	return s, nil
}

func (s *ServiceImpl) ProcessTurn(ctx context.Context, sessionID, rawText string) (*models.StructuredResponse, error) {
	ctx, span := otel.Tracer("GuideService").Start(ctx, "ProcessTurn")
	defer span.End()

	start := time.Now()
	defer func() {
		if s.metrics != nil {
			s.metrics.TurnsTotal.Add(ctx, 1)
			s.metrics.TurnDurationSeconds.Record(ctx, time.Since(start).Seconds())
		}
	}()

	l := s.logger.With(slog.String("session_id", sessionID))

	if ok, category := s.safety.ScreenInput(rawText); !ok {
		l.WarnContext(ctx, "Input blocked by safety screen", slog.String("category", category))
		span.SetAttributes(attribute.String("safety.category", category))
		if s.metrics != nil {
			s.metrics.SafetyBlocksTotal.Add(ctx, 1)
		}
		return &models.StructuredResponse{
			Type:        "safety",
			Text:        s.safety.ViolationResponse(category),
			Suggestions: defaultSuggestions,
			Blocked:     true,
		}, nil
	}
	text := s.safety.Sanitize(rawText)

	state := s.store.State(sessionID)
	resp := s.route(ctx, state, text)

	if ok, category := s.safety.ScreenOutput(resp.Text); !ok {
		l.WarnContext(ctx, "Output blocked by safety screen", slog.String("category", category))
		if s.metrics != nil {
			s.metrics.SafetyBlocksTotal.Add(ctx, 1)
		}
		resp = &models.StructuredResponse{
			Type:        "safety",
			Text:        s.safety.ViolationResponse(category),
			Suggestions: defaultSuggestions,
			Blocked:     true,
		}
		return resp, nil
	}

	s.rememberAnchors(state, resp)
	s.appendLinks(resp)
	s.persist(sessionID, state, text, resp)
	span.SetAttributes(attribute.String("response.type", resp.Type))
	return resp, nil
}

// route handles the pre-classifier short-circuits, then classifies and
// dispatches to the intent's builder.
func (s *ServiceImpl) route(ctx context.Context, state *models.DialogueState, text string) *models.StructuredResponse {
	// A non-idle machine consumes the turn as a slot answer.
	if res, ok := s.dialogue.ConsumePending(state, text); ok {
		if res.Ready {
			return s.planResponse(ctx, res.City, res.Minutes)
		}
		return &models.StructuredResponse{
			Type:        "itinerary",
			Text:        res.Prompt,
			Suggestions: res.Suggestions,
		}
	}

	lower := strings.ToLower(strings.TrimSpace(text))

	// Bare confirmation after a facts card jumps straight to planning.
	if s.dialogue.IsAffirmation(lower) && state.LastPlace != "" {
		slots := models.Slots{models.SlotCity: state.LastPlace}
		return s.buildItinerary(ctx, state, slots, text)
	}

	if _, ok := followUpPhrases[lower]; ok && state.LastItineraryCity != "" {
		return s.followUp(ctx, state, lower)
	}

	normalized := s.resolver.Normalize(text)
	intent, slots := s.classifier.Classify(normalized)
	return s.builders[intent](ctx, state, slots, normalized)
}

// followUp answers the post-itinerary shortcuts for the remembered city.
func (s *ServiceImpl) followUp(ctx context.Context, state *models.DialogueState, phrase string) *models.StructuredResponse {
	city := state.LastItineraryCity
	switch {
	case strings.Contains(phrase, "ticket info"):
		if entry, ok := s.lookupEntry(city); ok {
			text := fmt.Sprintf("**%s Ticket Info:**\n\n%s", entry.Name, entry.Ticket)
			if entry.OpeningHours != "" {
				text += fmt.Sprintf("\n\n**Hours:** %s", entry.OpeningHours)
			}
			if entry.Website != "" {
				text += fmt.Sprintf("\n\n**Website:** %s", entry.Website)
			}
			return &models.StructuredResponse{
				Type:        "facts",
				Text:        text,
				Suggestions: suggestionsFor("facts", entry.Name),
				Data:        map[string]any{"place": entry.Name},
			}
		}
		return s.buildFacts(ctx, state, models.Slots{models.SlotPlace: city}, city)
	case strings.Contains(phrase, "transportation tips"):
		return &models.StructuredResponse{
			Type:        "transportation",
			Text:        transportationTips(city),
			Suggestions: suggestionsFor("facts", city),
			Data:        map[string]any{"place": city},
		}
	case strings.Contains(phrase, "local dining recommendations"):
		return &models.StructuredResponse{
			Type:        "restaurants",
			Text:        diningRecommendations(city),
			Suggestions: suggestionsFor("facts", city),
			Data:        map[string]any{"place": city},
		}
	default: // quick facts
		return s.buildFacts(ctx, state, models.Slots{models.SlotPlace: city}, city)
	}
}

func (s *ServiceImpl) NewConversation(sessionID string) *models.StructuredResponse {
	s.store.AppendTurns(sessionID, models.ConversationTurn{
		ID:        fmt.Sprintf("session_%s_bot", uuid.NewString()),
		Who:       "bot",
		Text:      welcomeMessage,
		Timestamp: time.Now(),
		Type:      "welcome",
	})
	return &models.StructuredResponse{
		Type:        "welcome",
		Text:        welcomeMessage,
		Suggestions: defaultSuggestions,
	}
}

func (s *ServiceImpl) History(sessionID string) []models.ConversationTurn {
	return s.store.History(sessionID)
}

func (s *ServiceImpl) ClearHistory(sessionID string) {
	s.store.ClearHistory(sessionID)
}

func (s *ServiceImpl) DeleteConversation(sessionID, messageID string) bool {
	return s.store.DeleteConversation(sessionID, messageID)
}

// rememberAnchors arms the confirmation and follow-up shortcuts once a
// reply has cleared the output screen; a blocked reply must not leave
// anchors behind.
func (s *ServiceImpl) rememberAnchors(state *models.DialogueState, resp *models.StructuredResponse) {
	switch resp.Type {
	case "facts":
		if place, ok := resp.Data["place"].(string); ok && place != "" {
			state.LastPlace = place
		}
	case "itinerary", "trip_plan":
		if city, ok := resp.Data["city"].(string); ok && city != "" {
			state.LastItineraryCity = city
		}
	}
}

// appendLinks adds maps and image-search links when the reply is about a
// known place.
func (s *ServiceImpl) appendLinks(resp *models.StructuredResponse) {
	place := responsePlace(resp)
	if place == "" {
		return
	}
	q := url.QueryEscape(place)
	resp.Text += fmt.Sprintf(
		"\n\n[See location](https://www.google.com/maps/search/?api=1&query=%s)  |  [Images](https://www.google.com/search?tbm=isch&q=%s)",
		q, q)
}

func responsePlace(resp *models.StructuredResponse) string {
	if resp.Data == nil {
		return ""
	}
	for _, key := range []string{"place", "city", "location"} {
		if v, ok := resp.Data[key].(string); ok && v != "" {
			return v
		}
	}
	return ""
}

func (s *ServiceImpl) persist(sessionID string, state *models.DialogueState, userText string, resp *models.StructuredResponse) {
	turnID := uuid.NewString()
	now := time.Now()
	s.store.AppendTurns(sessionID,
		models.ConversationTurn{
			ID:        turnID,
			Who:       "user",
			Text:      userText,
			Timestamp: now,
		},
		models.ConversationTurn{
			ID:        turnID + "_bot",
			Who:       "bot",
			Text:      resp.Text,
			Timestamp: now,
			Type:      resp.Type,
			ReplyTo:   turnID,
		},
	)
	s.store.SaveState(sessionID, state)
}

func (s *ServiceImpl) lookupEntry(place string) (*models.PlaceEntry, bool) {
	canonical, ok := s.gazetteer.Match(place)
	if !ok {
		return nil, false
	}
	return s.gazetteer.Lookup(canonical)
}
