package service

import (
	"context"

	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/stretchr/testify/mock"
)

// MockMovieProvider is a mock implementation of MovieProvider
type MockMovieProvider struct {
	mock.Mock
}

func (m *MockMovieProvider) Search(ctx context.Context, term string) ([]domain.MovieSummary, error) {
	args := m.Called(ctx, term)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.MovieSummary), args.Error(1)
}

func (m *MockMovieProvider) Detail(ctx context.Context, imdbID string) (*domain.MovieDetail, error) {
	args := m.Called(ctx, imdbID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.MovieDetail), args.Error(1)
}

// MockResolver is a mock implementation of Resolver
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

type sequentialUUIDGenerator struct {
	ids []string
	i   int
}

func (g *sequentialUUIDGenerator) Generate() string {
	id := g.ids[g.i%len(g.ids)]
	g.i++
	return id
}
