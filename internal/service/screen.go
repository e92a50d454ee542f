package service

import (
	"context"
	"log/slog"
	"slices"
	"sync"

	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/cloo-solutions/moviescreen/internal/telemetry"
	"github.com/cloo-solutions/moviescreen/internal/words"
)

// Resolver turns a search term into the next ResultSet.
type Resolver interface {
	Resolve(ctx context.Context, term string) ([]domain.MovieDetail, error)
}

// ViewState is everything the movie screen renders.
type ViewState struct {
	Term      string               `json:"term"`
	Results   []domain.MovieDetail `json:"results"`
	Favorites []domain.MovieDetail `json:"favorites"`
	Selected  *domain.MovieDetail  `json:"selected"`
	Searching bool                 `json:"searching"`
}

// DetailVisible reports whether the detail view is open.
func (v ViewState) DetailVisible() bool {
	return v.Selected != nil
}

// Screen owns the view state of one movie screen. All transitions go through
// its methods; it is safe for concurrent use.
type Screen struct {
	resolver Resolver
	words    words.Generator
	logger   *slog.Logger

	mu         sync.Mutex
	state      ViewState
	generation uint64
	inFlight   int
}

func NewScreen(resolver Resolver, gen words.Generator, logger *slog.Logger) *Screen {
	return &Screen{
		resolver: resolver,
		words:    gen,
		logger:   logger,
		state: ViewState{
			Results:   []domain.MovieDetail{},
			Favorites: []domain.MovieDetail{},
		},
	}
}

// Search replaces the ResultSet with the results for term and returns the
// ResultSet as it stands afterwards. Failures are logged and leave an empty
// ResultSet; they never reach the caller. When a newer search was started
// while this one was in flight, its results are discarded.
func (s *Screen) Search(ctx context.Context, term string) []domain.MovieDetail {
	s.mu.Lock()
	s.generation++
	gen := s.generation
	s.state.Term = term
	s.inFlight++
	s.mu.Unlock()

	ctx, span := telemetry.StartSpan(ctx, "screen.search", telemetry.SpanAttributes{Term: term, Generation: gen, Operation: "search"})
	defer span.End()

	results, err := s.resolver.Resolve(ctx, term)
	if err != nil {
		s.logger.Error("search_failed",
			slog.String("term", term),
			slog.Uint64("generation", gen),
			slog.String("error", err.Error()))
		span.SetError(err)
		results = []domain.MovieDetail{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.inFlight--

	if gen != s.generation {
		s.logger.Info("search_discarded",
			slog.String("term", term),
			slog.Uint64("generation", gen),
			slog.Uint64("latest", s.generation))
		return slices.Clone(s.state.Results)
	}

	s.state.Results = results
	return slices.Clone(results)
}

// SearchRandom searches for a freshly generated term.
func (s *Screen) SearchRandom(ctx context.Context) (string, []domain.MovieDetail) {
	term := s.words.Generate()
	return term, s.Search(ctx, term)
}

// Select opens the detail view for movie; nil closes it.
func (s *Screen) Select(movie *domain.MovieDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if movie == nil {
		s.state.Selected = nil
		return
	}
	selected := *movie
	s.state.Selected = &selected
}

// SelectIndex opens the detail view for the i-th result.
func (s *Screen) SelectIndex(i int) (domain.MovieDetail, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i < 0 || i >= len(s.state.Results) {
		return domain.MovieDetail{}, domain.ErrResultIndexOutOfRange
	}
	selected := s.state.Results[i]
	s.state.Selected = &selected
	return selected, nil
}

// Selected returns the movie in the detail view, if any.
func (s *Screen) Selected() (domain.MovieDetail, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state.Selected == nil {
		return domain.MovieDetail{}, false
	}
	return *s.state.Selected, true
}

func (s *Screen) DetailVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state.Selected != nil
}

// AddFavorite appends movie to the watch-later list. Duplicates are kept.
func (s *Screen) AddFavorite(movie domain.MovieDetail) {
	s.mu.Lock()
	s.state.Favorites = append(s.state.Favorites, movie)
	count := len(s.state.Favorites)
	s.mu.Unlock()

	s.logger.Info("favorite_added",
		slog.String("imdb_id", movie.IMDbID),
		slog.String("title", movie.Title),
		slog.Int("favorites", count))
}

// WatchLater adds the selected movie to the favorites.
func (s *Screen) WatchLater() (domain.MovieDetail, error) {
	movie, ok := s.Selected()
	if !ok {
		return domain.MovieDetail{}, domain.ErrNoSelection
	}
	s.AddFavorite(movie)
	return movie, nil
}

func (s *Screen) Results() []domain.MovieDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Results)
}

func (s *Screen) Favorites() []domain.MovieDetail {
	s.mu.Lock()
	defer s.mu.Unlock()
	return slices.Clone(s.state.Favorites)
}

// State returns a copy of the view state.
func (s *Screen) State() ViewState {
	s.mu.Lock()
	defer s.mu.Unlock()

	st := ViewState{
		Term:      s.state.Term,
		Results:   slices.Clone(s.state.Results),
		Favorites: slices.Clone(s.state.Favorites),
		Searching: s.inFlight > 0,
	}
	if s.state.Selected != nil {
		selected := *s.state.Selected
		st.Selected = &selected
	}
	return st
}
