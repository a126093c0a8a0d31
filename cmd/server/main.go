// cmd/server/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/catalog-admin/internal/config"
	"github.com/javajoker/catalog-admin/internal/models"
	"github.com/javajoker/catalog-admin/internal/router"
	"github.com/javajoker/catalog-admin/internal/services"
	"github.com/javajoker/catalog-admin/internal/utils"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("Failed to load configuration")
	}
	if err := utils.ConfigureLogger(cfg.Log.Level, cfg.Log.Format); err != nil {
		logrus.WithError(err).Fatal("Failed to configure logging")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// Catalog store, seeded once from the static snapshot
	store := services.NewCatalogStore(cfg.Catalog.PlaceholderImage)
	store.Subscribe(func(state models.CatalogState) {
		logrus.WithFields(logrus.Fields{
			"products":   len(state.Products),
			"categories": len(state.Categories),
		}).Info("Catalog updated")
	})
	services.NewSnapshotService(nil).Seed(ctx, store, cfg.Catalog.SnapshotSource)

	deps := router.NewDependencies(cfg, store)
	go deps.RateLimiter.Run(ctx)
	go deps.Wizards.Run(ctx)

	// Initialize router
	r := router.Initialize(cfg, deps)

	// Create HTTP server
	srv := &http.Server{
		Addr:         cfg.Server.Addr(),
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logrus.WithField("addr", srv.Addr).Info("Starting server")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("Failed to start server")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	<-ctx.Done()
	logrus.Info("Shutting down server...")

	// Create a deadline for shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Server forced to shutdown")
		os.Exit(1)
	}

	logrus.Info("Server exited")
}
