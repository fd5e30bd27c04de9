package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/core/config"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/core/container"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/core/logger"
	"github.com/jsphkabil/FRIB-Inventory-Tracker/internal/core/routes"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newServeCmd() *cobra.Command {
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the inventory HTTP API.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.Load(cmd)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}

			log := logger.NewLogger(cfg.LogLevel)
			defer func() { _ = log.Sync() }()

			return serve(cmd.Context(), cfg, log)
		},
	}
	serveCmd.Flags().String("addr", "", "Address to listen on (default :8080)")

	return serveCmd
}

func serve(ctx context.Context, cfg *config.Config, log *zap.Logger) error {
	gin.SetMode(cfg.GinMode)

	c, err := container.NewAppContainer(cfg, log)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	go c.RateLimiter.Run(ctx, time.Minute)
	go c.Sessions.Run(ctx, time.Minute, cfg.SessionTTL)

	server := &http.Server{
		Addr:              cfg.AppHost,
		Handler:           routes.NewRouter(c),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("Starting server",
			zap.String("addr", cfg.AppHost),
			zap.String("version", cfg.AppVersion),
			zap.Int("items", c.Store.Len()),
		)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("Shutting down server")
	c.Health.UpdateHealthStatus("shutting_down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer shutdownCancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown server: %w", err)
	}

	log.Info("Server stopped")
	return nil
}
