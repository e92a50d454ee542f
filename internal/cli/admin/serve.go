package admin

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cloo-solutions/moviescreen/internal/api/handlers"
	"github.com/cloo-solutions/moviescreen/internal/config"
	"github.com/cloo-solutions/moviescreen/internal/jobs"
	"github.com/cloo-solutions/moviescreen/internal/logging"
	"github.com/cloo-solutions/moviescreen/internal/omdb"
	"github.com/cloo-solutions/moviescreen/internal/server"
	"github.com/cloo-solutions/moviescreen/internal/service"
	"github.com/cloo-solutions/moviescreen/internal/telemetry"
	"github.com/cloo-solutions/moviescreen/internal/words"
	"github.com/spf13/cobra"
)

const shutdownTimeout = 30 * time.Second

// ServeCmd returns the serve command
func ServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the API server",
		Long:  "Start the moviescreen API server on the specified port",
		RunE:  runServe,
	}

	cmd.Flags().StringP("port", "p", "8080", "Port to listen on")
	cmd.Flags().String("api-key", "", "OMDb API key (overrides env)")
	cmd.Flags().String("api-url", "", "OMDb API base URL (overrides env)")

	return cmd
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	apiURL, _ := cmd.Flags().GetString("api-url")
	cfg.ApplyOverrides(apiKey, apiURL)

	if cmd.Flags().Changed("port") {
		cfg.Port, _ = cmd.Flags().GetString("port")
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := logging.New(cmd.ErrOrStderr(), cfg.Debug)

	shutdownTelemetry := telemetry.Init(telemetry.Config{
		DSN:         cfg.SentryDSN,
		Environment: cfg.Environment,
		Debug:       cfg.Debug,
	}, logger)
	defer shutdownTelemetry()

	handler, store, err := newHandler(cfg, logger)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if cfg.ExpiresSessions() {
		reaper := newSessionReaper(store, cfg, logger)
		go reaper.Start(ctx)
		defer reaper.Stop()
	}

	serveErr := make(chan error, 1)
	go func() {
		logger.Info("server_starting", slog.String("port", cfg.Port), slog.String("omdb_url", cfg.OMDbURL))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("server_shutting_down", slog.Int("sessions", store.Len()))

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	logger.Info("server_exited")
	return nil
}

// newHandler wires the OMDb client, the session store and the router.
func newHandler(cfg *config.Config, logger *slog.Logger) (http.Handler, *service.SessionStore, error) {
	provider, err := omdb.NewClient(omdb.Config{
		BaseURL: cfg.OMDbURL,
		APIKey:  cfg.OMDbAPIKey,
		Timeout: cfg.HTTPTimeout,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create OMDb client: %w", err)
	}

	store := service.NewSessionStore(
		service.NewSearchService(provider, logger),
		words.NewFakerGenerator(),
		&service.DefaultUUIDGenerator{},
		logger,
	)

	router := server.NewRouter(server.RouterConfig{
		Sessions:      store,
		ScreenHandler: handlers.NewScreenHandler(store),
		Logger:        logger,
	})

	return router, store, nil
}

// newSessionReaper drops sessions idle for longer than the configured TTL.
func newSessionReaper(store *service.SessionStore, cfg *config.Config, logger *slog.Logger) *jobs.Worker {
	return jobs.NewWorker("session_reaper", jobs.TaskFunc(func(ctx context.Context) error {
		if n := store.EvictIdle(cfg.SessionIdleTTL); n > 0 {
			logger.Info("sessions_expired", slog.Int("count", n), slog.Int("remaining", store.Len()))
		}
		return nil
	}), cfg.SessionSweepInterval, logger)
}
