package middleware

import (
	"context"
	"net/http"

	"github.com/cloo-solutions/moviescreen/internal/api"
	"github.com/cloo-solutions/moviescreen/internal/service"
	"github.com/go-chi/chi/v5"
)

type contextKey string

const (
	SessionIDKey contextKey = "session_id"
	ScreenKey    contextKey = "screen"
)

// SessionLookup resolves a session ID to its screen.
type SessionLookup interface {
	Get(id string) (*service.Screen, error)
}

// Session loads the screen named by the {id} URL parameter into the request
// context and answers 404 for unknown sessions.
func Session(store SessionLookup) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := chi.URLParam(r, "id")
			if id == "" {
				api.Error(w, http.StatusBadRequest, "missing session id")
				return
			}

			screen, err := store.Get(id)
			if err != nil {
				api.HandleError(w, err)
				return
			}

			ctx := context.WithValue(r.Context(), SessionIDKey, id)
			ctx = context.WithValue(ctx, ScreenKey, screen)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSessionID returns the session ID from context.
func GetSessionID(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}

// GetScreen returns the session's screen from context.
func GetScreen(ctx context.Context) *service.Screen {
	screen, _ := ctx.Value(ScreenKey).(*service.Screen)
	return screen
}
