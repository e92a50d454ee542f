package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/cloo-solutions/moviescreen/internal/api/middleware"
	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/cloo-solutions/moviescreen/internal/logging"
	"github.com/cloo-solutions/moviescreen/internal/service"
	"github.com/cloo-solutions/moviescreen/internal/words"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type MockResolver struct {
	mock.Mock
}

func (m *MockResolver) Resolve(ctx context.Context, term string) ([]domain.MovieDetail, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MovieDetail), args.Error(1)
}

type fixedUUID string

func (f fixedUUID) Generate() string { return string(f) }

var testMovies = []domain.MovieDetail{
	{IMDbID: "tt1", Title: "Ocean One", Year: "2001", Poster: "https://img.example/1.jpg", Plot: "First.", IMDbRating: "10"},
	{IMDbID: "tt2", Title: "Ocean Two", Year: "2004", Poster: "N/A", Plot: "Second.", IMDbRating: "N/A"},
}

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error string          `json:"error"`
}

func setup(t *testing.T, resolver service.Resolver) (http.Handler, *service.SessionStore) {
	t.Helper()
	store := service.NewSessionStore(resolver, words.Static("ocean"), fixedUUID("sess-1"), logging.Discard())
	h := NewScreenHandler(store)

	r := chi.NewRouter()
	r.Post("/sessions", h.CreateSession)
	r.Route("/sessions/{id}", func(r chi.Router) {
		r.Delete("/", h.DeleteSession)
		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(store))
			r.Get("/", h.GetState)
			r.Post("/search", h.Search)
			r.Get("/results", h.GetResults)
			r.Get("/selection", h.GetSelection)
			r.Put("/selection", h.Select)
			r.Delete("/selection", h.CloseSelection)
			r.Get("/favorites", h.GetFavorites)
			r.Post("/favorites", h.WatchLater)
		})
	})
	return r, store
}

func do(t *testing.T, h http.Handler, method, path string, body any) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(method, path, &buf))

	var env envelope
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	}
	return w, env
}

func TestCreateSession(t *testing.T) {
	h, store := setup(t, new(MockResolver))

	w, env := do(t, h, http.MethodPost, "/sessions", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp ScreenResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "sess-1", resp.SessionID)
	assert.Empty(t, resp.Results)
	assert.False(t, resp.DetailVisible)
	assert.Equal(t, 1, store.Len())
}

func TestSearch_WithTerm(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, "ocean").Return(testMovies, nil)
	h, _ := setup(t, resolver)
	do(t, h, http.MethodPost, "/sessions", nil)

	w, env := do(t, h, http.MethodPost, "/sessions/sess-1/search", SearchRequest{Term: "ocean"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "ocean", resp.Term)
	require.Len(t, resp.Results, 2)
	assert.Equal(t, "Ocean One", resp.Results[0].Title)
	assert.Equal(t, "★★★★★", resp.Results[0].Stars)
	assert.True(t, resp.Results[0].HasPoster)
	assert.Equal(t, "☆☆☆☆☆", resp.Results[1].Stars)
	assert.Equal(t, domain.Stars{Empty: 5}, resp.Results[1].StarCounts)
	assert.False(t, resp.Results[1].HasPoster)
}

func TestSearch_EmptyBodyUsesRandomTerm(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, "ocean").Return(testMovies[:1], nil)
	h, _ := setup(t, resolver)
	do(t, h, http.MethodPost, "/sessions", nil)

	w, env := do(t, h, http.MethodPost, "/sessions/sess-1/search", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.Equal(t, "ocean", resp.Term)
	assert.Len(t, resp.Results, 1)
}

func TestSearch_ProviderFailureIsEmptyList(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, "ocean").Return(nil, errors.New("dial tcp: refused"))
	h, _ := setup(t, resolver)
	do(t, h, http.MethodPost, "/sessions", nil)

	w, env := do(t, h, http.MethodPost, "/sessions/sess-1/search", SearchRequest{Term: "ocean"})
	require.Equal(t, http.StatusOK, w.Code)

	var resp SearchResponse
	require.NoError(t, json.Unmarshal(env.Data, &resp))
	assert.NotNil(t, resp.Results)
	assert.Empty(t, resp.Results)
}

func TestSearch_InvalidBody(t *testing.T) {
	h, _ := setup(t, new(MockResolver))
	do(t, h, http.MethodPost, "/sessions", nil)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/sessions/sess-1/search", bytes.NewBufferString("{")))
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUnknownSession(t *testing.T) {
	h, _ := setup(t, new(MockResolver))

	w, env := do(t, h, http.MethodGet, "/sessions/missing/results", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, env.Error, "session not found")
}

func TestSelectionFlow(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, "ocean").Return(testMovies, nil)
	h, _ := setup(t, resolver)
	do(t, h, http.MethodPost, "/sessions", nil)
	do(t, h, http.MethodPost, "/sessions/sess-1/search", SearchRequest{Term: "ocean"})

	w, _ := do(t, h, http.MethodGet, "/sessions/sess-1/selection", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	idx := 1
	w, env := do(t, h, http.MethodPut, "/sessions/sess-1/selection", SelectRequest{Index: &idx})
	require.Equal(t, http.StatusOK, w.Code)
	var movie MovieResponse
	require.NoError(t, json.Unmarshal(env.Data, &movie))
	assert.Equal(t, "tt2", movie.IMDbID)

	w, env = do(t, h, http.MethodGet, "/sessions/sess-1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var state ScreenResponse
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.True(t, state.DetailVisible)
	require.NotNil(t, state.Selected)
	assert.Equal(t, "tt2", state.Selected.IMDbID)

	w, _ = do(t, h, http.MethodDelete, "/sessions/sess-1/selection", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	_, env = do(t, h, http.MethodGet, "/sessions/sess-1", nil)
	require.NoError(t, json.Unmarshal(env.Data, &state))
	assert.False(t, state.DetailVisible)
	assert.Nil(t, state.Selected)
}

func TestSelect_Validation(t *testing.T) {
	h, _ := setup(t, new(MockResolver))
	do(t, h, http.MethodPost, "/sessions", nil)

	w, env := do(t, h, http.MethodPut, "/sessions/sess-1/selection", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "index is required", env.Error)

	idx := 3
	w, env = do(t, h, http.MethodPut, "/sessions/sess-1/selection", SelectRequest{Index: &idx})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "out of range")
}

func TestWatchLater(t *testing.T) {
	resolver := new(MockResolver)
	resolver.On("Resolve", mock.Anything, "ocean").Return(testMovies, nil)
	h, _ := setup(t, resolver)
	do(t, h, http.MethodPost, "/sessions", nil)
	do(t, h, http.MethodPost, "/sessions/sess-1/search", SearchRequest{Term: "ocean"})

	w, env := do(t, h, http.MethodPost, "/sessions/sess-1/favorites", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, env.Error, "no movie selected")

	idx := 0
	do(t, h, http.MethodPut, "/sessions/sess-1/selection", SelectRequest{Index: &idx})
	do(t, h, http.MethodPost, "/sessions/sess-1/favorites", nil)
	w, env = do(t, h, http.MethodPost, "/sessions/sess-1/favorites", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var favs []MovieResponse
	require.NoError(t, json.Unmarshal(env.Data, &favs))
	require.Len(t, favs, 2)
	assert.Equal(t, favs[0].IMDbID, favs[1].IMDbID)

	_, env = do(t, h, http.MethodGet, "/sessions/sess-1/favorites", nil)
	require.NoError(t, json.Unmarshal(env.Data, &favs))
	assert.Len(t, favs, 2)
}

func TestDeleteSession(t *testing.T) {
	h, store := setup(t, new(MockResolver))
	do(t, h, http.MethodPost, "/sessions", nil)

	w, _ := do(t, h, http.MethodDelete, "/sessions/sess-1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, 0, store.Len())

	w, _ = do(t, h, http.MethodDelete, "/sessions/sess-1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
