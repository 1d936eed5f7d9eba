package auth

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/codes"

	"github.com/FACorreiaa/go-tour-guide/internal/api"
)

type Handler struct {
	logger  *slog.Logger
	service Service
}

func NewAuthHandler(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		logger:  logger,
		service: service,
	}
}

// Login handles POST /auth/login.
func (h *Handler) Login(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.Tracer("AuthHandler").Start(r.Context(), "Login")
	defer span.End()

	l := h.logger.With(slog.String("method", "Login"))

	var req LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		l.WarnContext(ctx, "Failed to decode login request", slog.Any("error", err))
		span.SetStatus(codes.Error, "Invalid request body")
		api.ErrorResponse(w, r, http.StatusBadRequest, "Invalid request body")
		return
	}
	if req.Username == "" || req.Password == "" {
		api.ErrorResponse(w, r, http.StatusBadRequest, "Username and password are required")
		return
	}

	token, err := h.service.Login(ctx, req.Username, req.Password)
	if err != nil {
		if errors.Is(err, ErrInvalidCredentials) {
			span.SetStatus(codes.Error, "Invalid credentials")
			api.ErrorResponse(w, r, http.StatusUnauthorized, "Invalid credentials.")
			return
		}
		l.ErrorContext(ctx, "Login failed", slog.Any("error", err))
		span.RecordError(err)
		span.SetStatus(codes.Error, "Login failed")
		api.ErrorResponse(w, r, http.StatusInternalServerError, "Login failed")
		return
	}

	api.WriteJSONResponse(w, r, http.StatusOK, LoginResponse{
		AccessToken: token,
		Message:     "Login successful",
	})
	span.SetStatus(codes.Ok, "Login successful")
}
