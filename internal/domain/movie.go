package domain

import (
	"errors"
	"fmt"
)

// MaxResults bounds the ResultSet shown on the screen.
const MaxResults = 10

// NotAvailable is the provider's marker for a missing poster or rating.
const NotAvailable = "N/A"

// MovieSummary is a single search hit. Only IMDbID is used to drive the
// detail lookup; the rest is kept for logging.
type MovieSummary struct {
	IMDbID string
	Title  string
	Year   string
	Type   string
}

// MovieDetail is the record shown in the carousel, the detail view and the
// favorites list.
type MovieDetail struct {
	IMDbID     string `json:"imdb_id"`
	Title      string `json:"title"`
	Year       string `json:"year"`
	Poster     string `json:"poster"`
	Plot       string `json:"plot"`
	IMDbRating string `json:"imdb_rating"`
	Genre      string `json:"genre,omitempty"`
	Director   string `json:"director,omitempty"`
	Actors     string `json:"actors,omitempty"`
	Runtime    string `json:"runtime,omitempty"`
}

// HasPoster reports whether Poster points at an actual image.
func (m *MovieDetail) HasPoster() bool {
	return m.Poster != "" && m.Poster != NotAvailable
}

// Stars renders the movie's IMDb rating.
func (m *MovieDetail) Stars() Stars {
	return StarsFor(m.IMDbRating)
}

// Label is the card title, "Title (Year)".
func (m *MovieDetail) Label() string {
	return fmt.Sprintf("%s (%s)", m.Title, m.Year)
}

// ValidateMovieDetail validates a detail record returned by the provider.
func ValidateMovieDetail(m *MovieDetail) error {
	if m == nil {
		return Wrap(ErrMovieNotFound, errors.New("movie detail cannot be nil"))
	}

	if m.IMDbID == "" {
		return Wrap(ErrMalformedPayload, errors.New("movie detail IMDbID is required"))
	}

	return nil
}
