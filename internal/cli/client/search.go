package client

import (
	"strings"

	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/spf13/cobra"
)

const noResultsMessage = "No movies found."

// searchOutput is the --output document of the search command.
type searchOutput struct {
	Term    string      `json:"term"`
	Results []movieView `json:"results"`
}

// SearchCmd runs one search and prints the ResultSet.
func SearchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "search [term]",
		Short: "Search movies by title",
		Long: `Search OMDb and show the first 10 matches with their IMDb ratings.

Without a term a random word is used. Multi-word terms are passed through as is.`,
		Example: `  moviescreen search ocean
  moviescreen search "star wars" --output
  moviescreen search`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(cmd, strings.Join(args, " "))
		},
	}
	return cmd
}

func runSearch(cmd *cobra.Command, term string) error {
	a, err := newApp(cmd, nil)
	if err != nil {
		return err
	}
	defer a.Close()

	var results []domain.MovieDetail
	if term == "" {
		term, results = a.screen.SearchRandom(cmd.Context())
	} else {
		results = a.screen.Search(cmd.Context(), term)
	}

	if a.jsonOutput {
		return writeJSON(cmd.OutOrStdout(), searchOutput{Term: term, Results: toMovieViews(results)})
	}

	a.printer.Info("Results for %q", term)
	return printMovies(a.printer, results, noResultsMessage)
}
