package client

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"

	"github.com/cloo-solutions/moviescreen/internal/cli/output"
	"github.com/cloo-solutions/moviescreen/internal/domain"
)

// movieView is the JSON shape of a movie in --output mode.
type movieView struct {
	domain.MovieDetail
	Stars string `json:"stars"`
}

func toMovieViews(movies []domain.MovieDetail) []movieView {
	views := make([]movieView, 0, len(movies))
	for _, m := range movies {
		views = append(views, movieView{MovieDetail: m, Stars: m.Stars().String()})
	}
	return views
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printMovies renders movies as a numbered table. Numbers start at 1 and are
// what `open` takes.
func printMovies(p *output.Printer, movies []domain.MovieDetail, empty string) error {
	if len(movies) == 0 {
		p.Print("%s", empty)
		return nil
	}

	table := output.NewTable(p.Out(), []string{"#", "Title", "Year", "Rating", "Stars"})
	for i, m := range movies {
		table.AddRow([]string{
			strconv.Itoa(i + 1),
			m.Title,
			m.Year,
			m.IMDbRating,
			p.Stars(m.Stars().String()),
		})
	}
	return table.Render()
}

// printDetail renders the detail view of one movie.
func printDetail(p *output.Printer, m domain.MovieDetail) {
	p.Header(m.Label())
	if m.HasPoster() {
		p.Print("Poster: %s", m.Poster)
	} else {
		p.Print("Poster: %s", p.Dim("(no image available)"))
	}
	p.Print("IMDb Rating: %s %s", m.IMDbRating, p.Stars(m.Stars().String()))
	for _, field := range []struct{ label, value string }{
		{"Genre", m.Genre},
		{"Director", m.Director},
		{"Actors", m.Actors},
		{"Runtime", m.Runtime},
	} {
		if field.value != "" && field.value != domain.NotAvailable {
			p.Print("%s: %s", field.label, field.value)
		}
	}
	p.Print("")
	p.Print("%s", m.Plot)
}

func favoritesTitle(n int) string {
	return fmt.Sprintf("Favorites (%d)", n)
}
