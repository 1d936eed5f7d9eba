package guide

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-tour-guide/internal/api"
	"github.com/FACorreiaa/go-tour-guide/internal/api/auth"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewGuideHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// chatRequest is the expected JSON body for POST /chat.
type chatRequest struct {
	Message string `json:"message"`
}

// Chat handles POST /chat - one conversational turn.
func (h *Handler) Chat(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GuideHandler").Start(r.Context(), "Chat")
	defer span.End()

	l := h.logger.With(slog.String("method", "Chat"))

	var req chatRequest
	if err := api.DecodeJSONBody(w, r, &req); err != nil {
		l.WarnContext(ctx, "Failed to decode chat request", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Message cannot be empty.")
		return
	}

	resp, err := h.service.ProcessTurn(ctx, sessionID(r), req.Message)
	if err != nil {
		l.ErrorContext(ctx, "Failed to process turn", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Turn processing failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Sorry, I encountered an error processing that.")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, resp)
	span.SetStatus(codes.Ok, "Turn processed")
}

// NewChat handles POST /new-chat - appends a welcome marker to the log
// without clearing earlier conversations.
func (h *Handler) NewChat(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("GuideHandler").Start(r.Context(), "NewChat")
	defer span.End()

	resp := h.service.NewConversation(sessionID(r))
	api.WriteJSONResponse(w, r, http.StatusOK, resp)
	span.SetStatus(codes.Ok, "New conversation started")
}

// GetHistory handles GET /history.
func (h *Handler) GetHistory(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("GuideHandler").Start(r.Context(), "GetHistory")
	defer span.End()

	history := h.service.History(sessionID(r))
	api.WriteJSONResponse(w, r, http.StatusOK, history)
	span.SetStatus(codes.Ok, "History returned")
}

// ClearHistory handles DELETE /history.
func (h *Handler) ClearHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GuideHandler").Start(r.Context(), "ClearHistory")
	defer span.End()

	h.service.ClearHistory(sessionID(r))
	h.logger.InfoContext(ctx, "History cleared", slog.String("session_id", sessionID(r)))
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]bool{"success": true})
	span.SetStatus(codes.Ok, "History cleared")
}

// DeleteMessage handles DELETE /history/{id} - removes the whole
// conversation slice the message belongs to.
func (h *Handler) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("GuideHandler").Start(r.Context(), "DeleteMessage")
	defer span.End()

	messageID := chi.URLParam(r, "id")
	if messageID == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Message id is required")
		return
	}

	found := h.service.DeleteConversation(sessionID(r), messageID)
	if !found {
		h.logger.DebugContext(ctx, "Message not found for deletion",
			slog.String("message_id", messageID))
	}
	// Deleting an unknown message is a no-op, not an error.
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]bool{"success": true})
	span.SetStatus(codes.Ok, "Delete handled")
}

// GetState handles GET /state.
func (h *Handler) GetState(w http.ResponseWriter, r *http.Request) {
	_, span := otel.Tracer("GuideHandler").Start(r.Context(), "GetState")
	defer span.End()

	user, _ := auth.UserFromContext(r.Context())
	if user == "" {
		user = "admin"
	}
	api.WriteJSONResponse(w, r, http.StatusOK, map[string]any{
		"user":          user,
		"history_count": len(h.service.History(sessionID(r))),
		"timestamp":     time.Now().Format("2006-01-02 15:04:05"),
	})
	span.SetStatus(codes.Ok, "State returned")
}

// sessionID scopes conversation state. The authenticated username is the
// session; an explicit header can split one user into parallel sessions.
func sessionID(r *http.Request) string {
	if id := r.Header.Get("X-Session-ID"); id != "" {
		return id
	}
	if user, ok := auth.UserFromContext(r.Context()); ok {
		return user
	}
	return "default"
}
