package client

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/spf13/cobra"
)

// useTempConfig points the global config at a temporary directory.
func useTempConfig(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	origDir, origPath := getConfigDirFunc, getConfigPathFunc
	getConfigDirFunc = func() (string, error) { return dir, nil }
	getConfigPathFunc = func() (string, error) { return filepath.Join(dir, "config.json"), nil }
	t.Cleanup(func() {
		getConfigDirFunc, getConfigPathFunc = origDir, origPath
	})
	t.Setenv("MOVIESCREEN_OMDB_API_KEY", "")
	t.Setenv("MOVIESCREEN_SENTRY_DSN", "")
	return dir
}

func newTestRoot(cmds ...*cobra.Command) *cobra.Command {
	root := &cobra.Command{Use: "moviescreen", SilenceUsage: true, SilenceErrors: true}
	AddGlobalFlags(root)
	root.AddCommand(cmds...)
	return root
}

func execute(t *testing.T, root *cobra.Command, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetIn(bytes.NewBufferString(stdin))
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), errOut.String(), err
}

// fakeOMDb answers "ocean" with two movies and every other term with no match.
func fakeOMDb(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if q.Get("apikey") != "test-key" {
			w.WriteHeader(http.StatusUnauthorized)
			fmt.Fprint(w, `{"Response":"False","Error":"Invalid API key!"}`)
			return
		}
		switch {
		case q.Get("s") == "ocean":
			fmt.Fprint(w, `{"Search":[{"imdbID":"tt0240772"},{"imdbID":"tt0496806"}],"Response":"True"}`)
		case q.Get("s") != "":
			fmt.Fprint(w, `{"Response":"False","Error":"Movie not found!"}`)
		case q.Get("i") == "tt0240772":
			fmt.Fprint(w, `{"Title":"Ocean's Eleven","Year":"2001","Poster":"https://img.example/11.jpg","Plot":"Danny Ocean plans a heist.","imdbRating":"7.7","imdbID":"tt0240772","Response":"True"}`)
		case q.Get("i") == "tt0496806":
			fmt.Fprint(w, `{"Title":"Ocean's Thirteen","Year":"2007","Poster":"N/A","Plot":"One more heist.","imdbRating":"N/A","imdbID":"tt0496806","Response":"True"}`)
		default:
			fmt.Fprint(w, `{"Response":"False","Error":"Incorrect IMDb ID."}`)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

type fakeResolver map[string][]domain.MovieDetail

func (f fakeResolver) Resolve(_ context.Context, term string) ([]domain.MovieDetail, error) {
	if term == "boom" {
		return nil, errors.New("connection reset")
	}
	if results, ok := f[term]; ok {
		return results, nil
	}
	return []domain.MovieDetail{}, nil
}
