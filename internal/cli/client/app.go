package client

import (
	"fmt"
	"log/slog"

	"github.com/cloo-solutions/moviescreen/internal/cli/output"
	"github.com/cloo-solutions/moviescreen/internal/logging"
	"github.com/cloo-solutions/moviescreen/internal/omdb"
	"github.com/cloo-solutions/moviescreen/internal/service"
	"github.com/cloo-solutions/moviescreen/internal/telemetry"
	"github.com/cloo-solutions/moviescreen/internal/words"
	"github.com/spf13/cobra"
)

// app bundles what a command needs to drive one movie screen.
type app struct {
	screen     *service.Screen
	printer    *output.Printer
	logger     *slog.Logger
	jsonOutput bool
	shutdown   func()
}

func newApp(cmd *cobra.Command, gen words.Generator) (*app, error) {
	cfg, err := ResolveConfig(cmd)
	if err != nil {
		return nil, err
	}

	logger := logging.NewCLI(cmd.ErrOrStderr(), cfg.Debug)
	shutdown := telemetry.Init(telemetry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Debug:       cfg.Debug,
	}, logger)

	provider, err := omdb.NewClient(omdb.Config{
		BaseURL: cfg.OMDbURL,
		APIKey:  cfg.OMDbAPIKey,
		Timeout: cfg.HTTPTimeout,
	})
	if err != nil {
		shutdown()
		return nil, fmt.Errorf("failed to create OMDb client: %w", err)
	}

	if gen == nil {
		gen = words.NewFakerGenerator()
	}

	jsonOutput, _ := cmd.Flags().GetBool("output")

	return &app{
		screen:     service.NewScreen(service.NewSearchService(provider, logger), gen, logger),
		printer:    newPrinter(cmd),
		logger:     logger,
		jsonOutput: jsonOutput,
		shutdown:   shutdown,
	}, nil
}

func (a *app) Close() {
	a.shutdown()
}
