package client

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cloo-solutions/moviescreen/internal/cli/output"
	"github.com/cloo-solutions/moviescreen/internal/domain"
	"github.com/cloo-solutions/moviescreen/internal/service"
	"github.com/cloo-solutions/moviescreen/internal/words"
	"github.com/spf13/cobra"
)

const browseHelp = `Commands:
  search [term], s [term]   search (random word when no term)
  open <n>                  show details of result n
  close                     close the detail view
  later                     add the open movie to favorites
  favorites, fav            list favorites
  state                     show the current screen state
  help                      show this help
  quit, exit, q             leave`

// BrowseCmd starts an interactive movie screen on stdin/stdout.
func BrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse movies interactively",
		Long: `Open an interactive movie screen. A random search runs on start;
open a result to see its details and add it to your favorites with "later".
Favorites live for the duration of the session only.`,
		RunE: runBrowse,
	}
	cmd.Flags().String("term", "", "Initial search term (random when empty)")
	return cmd
}

func runBrowse(cmd *cobra.Command, args []string) error {
	var gen words.Generator
	if term, _ := cmd.Flags().GetString("term"); term != "" {
		gen = words.Static(term)
	}

	a, err := newApp(cmd, gen)
	if err != nil {
		return err
	}
	defer a.Close()

	return NewBrowser(a.screen, a.printer, cmd.InOrStdin()).Run(cmd.Context())
}

// Browser is a line-oriented front end for a Screen.
type Browser struct {
	screen  *service.Screen
	printer *output.Printer
	in      io.Reader
}

func NewBrowser(screen *service.Screen, printer *output.Printer, in io.Reader) *Browser {
	return &Browser{screen: screen, printer: printer, in: in}
}

// Run does the initial random search, then reads commands until quit or EOF.
func (b *Browser) Run(ctx context.Context) error {
	b.printer.Print("moviescreen, type \"help\" for commands")
	if err := b.search(ctx, ""); err != nil {
		return err
	}

	scanner := bufio.NewScanner(b.in)
	for {
		fmt.Fprint(b.printer.Out(), "> ")
		if !scanner.Scan() {
			break
		}
		quit, err := b.Execute(ctx, scanner.Text())
		if err != nil {
			return err
		}
		if quit {
			return nil
		}
	}
	fmt.Fprintln(b.printer.Out())
	return scanner.Err()
}

// Execute runs one command line. It reports whether the session should end.
// User mistakes are printed, not returned; only output failures are errors.
func (b *Browser) Execute(ctx context.Context, line string) (bool, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return false, nil
	}
	cmd, rest := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "search", "s":
		return false, b.search(ctx, strings.Join(rest, " "))
	case "open", "o":
		b.open(rest)
	case "close", "c":
		b.screen.Select(nil)
		b.printer.Print("Detail closed.")
	case "later", "l":
		b.watchLater()
	case "favorites", "fav", "f":
		favorites := b.screen.Favorites()
		b.printer.Header(favoritesTitle(len(favorites)))
		return false, printMovies(b.printer, favorites, "No favorites yet.")
	case "state":
		b.state()
	case "help", "h", "?":
		b.printer.Print("%s", browseHelp)
	case "quit", "exit", "q":
		return true, nil
	default:
		b.printer.Warning("unknown command %q, type \"help\" for commands", cmd)
	}
	return false, nil
}

func (b *Browser) search(ctx context.Context, term string) error {
	var results []domain.MovieDetail
	if term == "" {
		term, results = b.screen.SearchRandom(ctx)
	} else {
		results = b.screen.Search(ctx, term)
	}
	b.printer.Info("Results for %q", term)
	return printMovies(b.printer, results, noResultsMessage)
}

func (b *Browser) open(args []string) {
	if len(args) != 1 {
		b.printer.Warning("usage: open <n>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		b.printer.Warning("usage: open <n>")
		return
	}

	movie, err := b.screen.SelectIndex(n - 1)
	if errors.Is(err, domain.ErrResultIndexOutOfRange) {
		b.printer.Error("no result %d (have %d)", n, len(b.screen.Results()))
		return
	}
	printDetail(b.printer, movie)
	b.printer.Print("")
	b.printer.Print("%s", b.printer.Dim(`"later" to watch later, "close" to close`))
}

func (b *Browser) watchLater() {
	movie, err := b.screen.WatchLater()
	if errors.Is(err, domain.ErrNoSelection) {
		b.printer.Warning("open a movie first")
		return
	}
	b.printer.Success("Added %s to favorites", movie.Label())
}

func (b *Browser) state() {
	st := b.screen.State()
	selected := "none"
	if st.Selected != nil {
		selected = st.Selected.Label()
	}
	b.printer.Print("Term:      %s", st.Term)
	b.printer.Print("Results:   %d", len(st.Results))
	b.printer.Print("Selected:  %s", selected)
	b.printer.Print("Favorites: %d", len(st.Favorites))
}
