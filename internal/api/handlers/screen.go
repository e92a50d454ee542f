package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/cloo-solutions/moviescreen/internal/api"
	"github.com/cloo-solutions/moviescreen/internal/api/middleware"
	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/cloo-solutions/moviescreen/internal/service"
	"github.com/go-chi/chi/v5"
)

type SessionService interface {
	Create() (string, *service.Screen)
	Delete(id string) error
}

type ScreenHandler struct {
	sessions SessionService
}

func NewScreenHandler(sessions SessionService) *ScreenHandler {
	return &ScreenHandler{sessions: sessions}
}

type MovieResponse struct {
	IMDbID     string       `json:"imdb_id"`
	Title      string       `json:"title"`
	Year       string       `json:"year"`
	Poster     string       `json:"poster"`
	HasPoster  bool         `json:"has_poster"`
	Plot       string       `json:"plot"`
	IMDbRating string       `json:"imdb_rating"`
	Stars      string       `json:"stars"`
	StarCounts domain.Stars `json:"star_counts"`
	Genre      string       `json:"genre,omitempty"`
	Director   string       `json:"director,omitempty"`
	Actors     string       `json:"actors,omitempty"`
	Runtime    string       `json:"runtime,omitempty"`
}

type ScreenResponse struct {
	SessionID     string           `json:"session_id"`
	Term          string           `json:"term"`
	Results       []*MovieResponse `json:"results"`
	Favorites     []*MovieResponse `json:"favorites"`
	Selected      *MovieResponse   `json:"selected"`
	DetailVisible bool             `json:"detail_visible"`
	Searching     bool             `json:"searching"`
}

type SearchRequest struct {
	Term string `json:"term"`
}

type SearchResponse struct {
	Term    string           `json:"term"`
	Results []*MovieResponse `json:"results"`
}

type SelectRequest struct {
	Index *int `json:"index"`
}

func toMovieResponse(m domain.MovieDetail) *MovieResponse {
	stars := m.Stars()
	return &MovieResponse{
		IMDbID:     m.IMDbID,
		Title:      m.Title,
		Year:       m.Year,
		Poster:     m.Poster,
		HasPoster:  m.HasPoster(),
		Plot:       m.Plot,
		IMDbRating: m.IMDbRating,
		Stars:      stars.String(),
		StarCounts: stars,
		Genre:      m.Genre,
		Director:   m.Director,
		Actors:     m.Actors,
		Runtime:    m.Runtime,
	}
}

func toMovieResponses(ms []domain.MovieDetail) []*MovieResponse {
	out := make([]*MovieResponse, len(ms))
	for i, m := range ms {
		out[i] = toMovieResponse(m)
	}
	return out
}

func toScreenResponse(id string, st service.ViewState) *ScreenResponse {
	resp := &ScreenResponse{
		SessionID:     id,
		Term:          st.Term,
		Results:       toMovieResponses(st.Results),
		Favorites:     toMovieResponses(st.Favorites),
		DetailVisible: st.DetailVisible(),
		Searching:     st.Searching,
	}
	if st.Selected != nil {
		resp.Selected = toMovieResponse(*st.Selected)
	}
	return resp
}

func (h *ScreenHandler) CreateSession(w http.ResponseWriter, r *http.Request) {
	id, screen := h.sessions.Create()
	api.Success(w, http.StatusCreated, toScreenResponse(id, screen.State()))
}

func (h *ScreenHandler) DeleteSession(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Delete(chi.URLParam(r, "id")); err != nil {
		api.HandleError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (h *ScreenHandler) GetState(w http.ResponseWriter, r *http.Request) {
	screen := middleware.GetScreen(r.Context())
	api.Success(w, http.StatusOK, toScreenResponse(middleware.GetSessionID(r.Context()), screen.State()))
}

// Search runs a search for the given term, or for a random word when the
// body or term is empty. Provider failures surface as an empty result list.
func (h *ScreenHandler) Search(w http.ResponseWriter, r *http.Request) {
	screen := middleware.GetScreen(r.Context())

	var req SearchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}

	term := req.Term
	var results []domain.MovieDetail
	if term == "" {
		term, results = screen.SearchRandom(r.Context())
	} else {
		results = screen.Search(r.Context(), term)
	}

	api.Success(w, http.StatusOK, &SearchResponse{
		Term:    term,
		Results: toMovieResponses(results),
	})
}

func (h *ScreenHandler) GetResults(w http.ResponseWriter, r *http.Request) {
	screen := middleware.GetScreen(r.Context())
	api.Success(w, http.StatusOK, toMovieResponses(screen.Results()))
}

func (h *ScreenHandler) Select(w http.ResponseWriter, r *http.Request) {
	screen := middleware.GetScreen(r.Context())

	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.Error(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if req.Index == nil {
		api.Error(w, http.StatusBadRequest, "index is required")
		return
	}

	movie, err := screen.SelectIndex(*req.Index)
	if err != nil {
		api.HandleError(w, err)
		return
	}
	api.Success(w, http.StatusOK, toMovieResponse(movie))
}

func (h *ScreenHandler) GetSelection(w http.ResponseWriter, r *http.Request) {
	screen := middleware.GetScreen(r.Context())

	movie, ok := screen.Selected()
	if !ok {
		api.Error(w, http.StatusNotFound, "no movie selected")
		return
	}
	api.Success(w, http.StatusOK, toMovieResponse(movie))
}

func (h *ScreenHandler) CloseSelection(w http.ResponseWriter, r *http.Request) {
	middleware.GetScreen(r.Context()).Select(nil)
	w.WriteHeader(http.StatusNoContent)
}

// WatchLater adds the selected movie to the session's favorites.
func (h *ScreenHandler) WatchLater(w http.ResponseWriter, r *http.Request) {
	screen := middleware.GetScreen(r.Context())

	if _, err := screen.WatchLater(); err != nil {
		api.HandleError(w, err)
		return
	}
	api.Success(w, http.StatusCreated, toMovieResponses(screen.Favorites()))
}

func (h *ScreenHandler) GetFavorites(w http.ResponseWriter, r *http.Request) {
	screen := middleware.GetScreen(r.Context())
	api.Success(w, http.StatusOK, toMovieResponses(screen.Favorites()))
}
