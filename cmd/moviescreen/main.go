package main

import (
	"fmt"
	"os"

	"github.com/cloo-solutions/moviescreen/internal/cli"
	"github.com/cloo-solutions/moviescreen/internal/cli/client"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	rootCmd := &cobra.Command{
		Use:   "moviescreen",
		Short: "moviescreen - search movies and keep a watch-later list",
		Long: `moviescreen searches OMDb, shows the first 10 matches with their IMDb
rating as stars, and keeps a watch-later list for the session.

Environment variables:
  MOVIESCREEN_OMDB_API_KEY   OMDb API key (required unless saved with init)
  MOVIESCREEN_OMDB_URL       OMDb base URL (default: http://www.omdbapi.com/)
  MOVIESCREEN_HTTP_TIMEOUT   per-request timeout (default: 30s)`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	client.AddGlobalFlags(rootCmd)
	cli.AddHelpJSONFlag(rootCmd)

	rootCmd.AddCommand(client.InitCmd())
	rootCmd.AddCommand(client.LogoutCmd())
	rootCmd.AddCommand(client.SearchCmd())
	rootCmd.AddCommand(client.BrowseCmd())

	cli.CheckHelpJSON(rootCmd)
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
