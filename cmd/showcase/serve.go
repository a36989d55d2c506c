package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"showcase.dev/internal/config"
	"showcase.dev/internal/handlers"
	"showcase.dev/internal/log"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the portfolio page over HTTP",
	Long: `Serves the rendered page at /, a JSON view of the projects under /api,
Prometheus metrics at /metrics and local assets under /assets.

The content file is watched and reloaded on change; invalid edits are
logged and the previous content keeps being served.`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default $SERVER_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, _ []string) error {
	logger := log.WithComponent("server")

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	if serveAddr != "" {
		cfg.ServerAddr = serveAddr
	}

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	content := config.NewHolder(cfg.Site, cfg.ContentFile)
	if err := content.StartWatcher(ctx); err != nil {
		logger.Warn().Err(err).Str("event", "content.watcher_failed").Msg("content hot reload disabled")
	}
	defer content.Stop()

	router, err := handlers.SetupRoutes(cfg, content)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       2 * time.Minute,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info().Str("event", "server.start").Str("addr", cfg.ServerAddr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		logger.Info().Str("event", "server.shutdown").Msg("shutting down")
		return srv.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
