package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"

	"github.com/FACorreiaa/go-tour-guide/internal/api/auth"
	"github.com/FACorreiaa/go-tour-guide/internal/api/guide"
)

// Config contains the handlers and middleware the router wires together.
type Config struct {
	AuthHandler            *auth.Handler
	GuideHandler           *guide.Handler
	AuthenticateMiddleware func(http.Handler) http.Handler
}

// SetupRouter initializes the application router. Server-wide middleware
// (request ID, logger, recoverer) are applied in main.go before mounting.
func SetupRouter(cfg *Config) chi.Router {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:5173", "http://localhost:3000"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Session-ID"},
		ExposedHeaders:   []string{"Link"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/ping", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("pong"))
	})

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes.
		r.Group(func(r chi.Router) {
			r.Post("/auth/login", cfg.AuthHandler.Login)
		})

		// Protected conversational surface.
		r.Group(func(r chi.Router) {
			r.Use(cfg.AuthenticateMiddleware)

			r.Post("/chat", cfg.GuideHandler.Chat)
			r.Post("/new-chat", cfg.GuideHandler.NewChat)
			r.Get("/history", cfg.GuideHandler.GetHistory)
			r.Delete("/history", cfg.GuideHandler.ClearHistory)
			r.Delete("/history/{id}", cfg.GuideHandler.DeleteMessage)
			r.Get("/state", cfg.GuideHandler.GetState)
		})
	})

	return r
}
