// Package omdb is a client for the OMDb movie database API.
package omdb

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/cloo-solutions/moviescreen/internal/telemetry"
)

const (
	DefaultBaseURL = "http://www.omdbapi.com/"
	DefaultTimeout = 30 * time.Second

	// maxResponseBytes caps a single provider response.
	maxResponseBytes = 2 << 20
)

// Config configures a Client.
type Config struct {
	BaseURL string
	APIKey  string
	// Timeout applies to each request. Zero means no timeout.
	Timeout    time.Duration
	HTTPClient *http.Client
}

// Client issues search and detail lookups against OMDb.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a Client. A nil HTTPClient gets one with cfg.Timeout.
func NewClient(cfg Config) (*Client, error) {
	if cfg.APIKey == "" {
		return nil, domain.ErrMissingAPIKey
	}
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if _, err := url.Parse(baseURL); err != nil {
		return nil, fmt.Errorf("invalid base URL %q: %w", baseURL, err)
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{Timeout: cfg.Timeout}
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

// APIError represents a non-2xx answer from the provider.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("omdb error (%d): %s", e.StatusCode, e.Message)
}

// envelope carries the fields every OMDb answer may include.
type envelope struct {
	Response string `json:"Response"`
	Error    string `json:"Error"`
}

func (e envelope) failed() bool {
	return strings.EqualFold(e.Response, "False")
}

type searchResponse struct {
	envelope
	Search       []searchItem `json:"Search"`
	TotalResults string       `json:"totalResults"`
}

type searchItem struct {
	Title  string `json:"Title"`
	Year   string `json:"Year"`
	IMDbID string `json:"imdbID"`
	Type   string `json:"Type"`
}

type detailResponse struct {
	envelope
	Title      string `json:"Title"`
	Year       string `json:"Year"`
	Poster     string `json:"Poster"`
	Plot       string `json:"Plot"`
	IMDbRating string `json:"imdbRating"`
	IMDbID     string `json:"imdbID"`
	Genre      string `json:"Genre"`
	Director   string `json:"Director"`
	Actors     string `json:"Actors"`
	Runtime    string `json:"Runtime"`
}

// Search returns the provider's matches for term in provider order. A
// "no match" answer is an empty slice, not an error.
func (c *Client) Search(ctx context.Context, term string) ([]domain.MovieSummary, error) {
	ctx, span := telemetry.StartSpan(ctx, "omdb.search", telemetry.SpanAttributes{Term: term, Operation: "search"})
	defer span.End()

	var resp searchResponse
	if err := c.get(ctx, url.Values{"s": {term}}, &resp); err != nil {
		span.SetError(err)
		return nil, fmt.Errorf("search %q: %w", term, err)
	}

	if resp.failed() || len(resp.Search) == 0 {
		return []domain.MovieSummary{}, nil
	}

	out := make([]domain.MovieSummary, 0, len(resp.Search))
	for _, item := range resp.Search {
		out = append(out, domain.MovieSummary{
			IMDbID: item.IMDbID,
			Title:  item.Title,
			Year:   item.Year,
			Type:   item.Type,
		})
	}
	return out, nil
}

// Detail resolves an IMDb ID to its full record.
func (c *Client) Detail(ctx context.Context, imdbID string) (*domain.MovieDetail, error) {
	ctx, span := telemetry.StartSpan(ctx, "omdb.detail", telemetry.SpanAttributes{IMDbID: imdbID, Operation: "detail"})
	defer span.End()

	var resp detailResponse
	if err := c.get(ctx, url.Values{"i": {imdbID}}, &resp); err != nil {
		span.SetError(err)
		return nil, fmt.Errorf("detail %s: %w", imdbID, err)
	}

	if resp.failed() {
		err := domain.Wrap(domain.ErrMovieNotFound, errors.New(resp.Error))
		return nil, fmt.Errorf("detail %s: %w", imdbID, err)
	}

	detail := &domain.MovieDetail{
		IMDbID:     resp.IMDbID,
		Title:      resp.Title,
		Year:       resp.Year,
		Poster:     resp.Poster,
		Plot:       resp.Plot,
		IMDbRating: resp.IMDbRating,
		Genre:      resp.Genre,
		Director:   resp.Director,
		Actors:     resp.Actors,
		Runtime:    resp.Runtime,
	}
	if detail.IMDbID == "" {
		detail.IMDbID = imdbID
	}
	return detail, nil
}

func (c *Client) get(ctx context.Context, params url.Values, out any) error {
	params.Set("apikey", c.apiKey)
	reqURL := c.baseURL
	if strings.Contains(reqURL, "?") {
		reqURL += "&" + params.Encode()
	} else {
		reqURL += "?" + params.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return domain.Wrap(domain.ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return domain.Wrap(domain.ErrProviderUnavailable, fmt.Errorf("failed to read response body: %w", err))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		message := strings.TrimSpace(string(body))
		var env envelope
		if json.Unmarshal(body, &env) == nil && env.Error != "" {
			message = env.Error
		}
		return &APIError{StatusCode: resp.StatusCode, Message: message}
	}

	if err := json.Unmarshal(body, out); err != nil {
		return domain.Wrap(domain.ErrMalformedPayload, err)
	}
	return nil
}
