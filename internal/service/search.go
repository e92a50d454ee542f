package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/cloo-solutions/moviescreen/internal/telemetry"
	"golang.org/x/sync/errgroup"
)

// MovieProvider is the movie database the orchestrator talks to.
type MovieProvider interface {
	Search(ctx context.Context, term string) ([]domain.MovieSummary, error)
	Detail(ctx context.Context, imdbID string) (*domain.MovieDetail, error)
}

// SearchService resolves a term to a bounded, ordered list of detail records.
type SearchService struct {
	provider MovieProvider
	logger   *slog.Logger
	limit    int
}

func NewSearchService(provider MovieProvider, logger *slog.Logger) *SearchService {
	return &SearchService{
		provider: provider,
		logger:   logger,
		limit:    domain.MaxResults,
	}
}

// Resolve searches for term, looks up every match concurrently and keeps the
// first domain.MaxResults records in provider order. Zero matches is an empty
// result. A failed detail lookup fails the whole batch.
func (s *SearchService) Resolve(ctx context.Context, term string) ([]domain.MovieDetail, error) {
	ctx, span := telemetry.StartSpan(ctx, "search.resolve", telemetry.SpanAttributes{Term: term, Operation: "resolve"})
	defer span.End()

	start := time.Now()
	s.logger.Debug("search_started", slog.String("term", term))

	hits, err := s.provider.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	if len(hits) == 0 {
		s.logger.Info("search_completed",
			slog.String("term", term),
			slog.Int("matches", 0),
			slog.Int64("duration_ms", time.Since(start).Milliseconds()))
		return []domain.MovieDetail{}, nil
	}

	details := make([]*domain.MovieDetail, len(hits))
	g, gctx := errgroup.WithContext(ctx)
	for i, hit := range hits {
		i, hit := i, hit
		g.Go(func() error {
			detail, err := s.provider.Detail(gctx, hit.IMDbID)
			if err != nil {
				s.logger.Warn("detail_lookup_failed",
					slog.String("term", term),
					slog.String("imdb_id", hit.IMDbID),
					slog.String("error", err.Error()))
				return err
			}
			if err := domain.ValidateMovieDetail(detail); err != nil {
				return fmt.Errorf("detail %s: %w", hit.IMDbID, err)
			}
			details[i] = detail
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	n := min(len(details), s.limit)
	out := make([]domain.MovieDetail, 0, n)
	for _, d := range details[:n] {
		out = append(out, *d)
	}

	s.logger.Info("search_completed",
		slog.String("term", term),
		slog.Int("matches", len(hits)),
		slog.Int("results", len(out)),
		slog.Int64("duration_ms", time.Since(start).Milliseconds()))
	return out, nil
}
