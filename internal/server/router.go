package server

import (
	"log/slog"
	"net/http"

	"github.com/cloo-solutions/moviescreen/internal/api"
	"github.com/cloo-solutions/moviescreen/internal/api/handlers"
	"github.com/cloo-solutions/moviescreen/internal/api/middleware"
	"github.com/go-chi/chi/v5"
)

type RouterConfig struct {
	Sessions      middleware.SessionLookup
	ScreenHandler *handlers.ScreenHandler
	Logger        *slog.Logger
}

func NewRouter(cfg RouterConfig) http.Handler {
	r := chi.NewRouter()

	const maxBodyBytes int64 = 64 * 1024

	r.Use(middleware.RequestID)
	r.Use(middleware.SentryMiddleware)
	r.Use(middleware.AccessLog(cfg.Logger))
	r.Use(middleware.MaxBodyBytes(maxBodyBytes))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		api.Success(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Post("/sessions", cfg.ScreenHandler.CreateSession)

	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Delete("/", cfg.ScreenHandler.DeleteSession)

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(cfg.Sessions))

			r.Get("/", cfg.ScreenHandler.GetState)
			r.Post("/search", cfg.ScreenHandler.Search)
			r.Get("/results", cfg.ScreenHandler.GetResults)

			r.Get("/selection", cfg.ScreenHandler.GetSelection)
			r.Put("/selection", cfg.ScreenHandler.Select)
			r.Delete("/selection", cfg.ScreenHandler.CloseSelection)

			r.Get("/favorites", cfg.ScreenHandler.GetFavorites)
			r.Post("/favorites", cfg.ScreenHandler.WatchLater)
		})
	})

	return r
}
