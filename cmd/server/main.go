package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"flyerscan/internal/config"
	"flyerscan/internal/gemini"
	"flyerscan/internal/handler"
	"flyerscan/internal/metrics"
	"flyerscan/internal/places"
	"flyerscan/internal/router"
	"flyerscan/internal/service"
	"flyerscan/internal/storage/tempfile"
)

// @title Flyer Analysis API
// @version 1.0.0
// @description Extracts event data from flyer images and resolves venues to addresses and geocodes.
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.Server.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}
	if cfg.Log.Debug() {
		log.SetFlags(log.LstdFlags | log.Lmicroseconds | log.Lshortfile)
	}
	if cfg.Gemini.APIKey == "" || cfg.Places.APIKey == "" {
		log.Printf("warning: Google API key is not configured; analyses will report errors")
	}

	// Initialize metrics
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize upstream clients
	geminiClient := gemini.NewClient(&cfg.Gemini, m)
	placesClient := places.NewClient(&cfg.Places, m)

	// Initialize storage
	stager, err := tempfile.NewStager(&cfg.Upload)
	if err != nil {
		return fmt.Errorf("failed to initialize upload staging: %w", err)
	}

	// Initialize services
	analyzer := service.NewFlyerAnalyzer(geminiClient)
	resolver := service.NewVenueResolver(placesClient, cfg.Places.MaxCandidates)
	flyerSvc := service.NewFlyerService(analyzer, resolver, stager, &cfg.Upload, m)

	// Setup router
	r := router.Setup(cfg, router.Handlers{
		Flyer:  handler.NewFlyerHandler(flyerSvc),
		Venue:  handler.NewVenueHandler(resolver, m),
		Health: handler.NewHealthHandler(),
	}, m, reg)

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		log.Printf("Server starting on %s (gemini model %s)", cfg.Server.Port, geminiClient.Model())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Printf("Shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}
