package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/user/image-inliner/internal/adapter/browser"
	"github.com/user/image-inliner/internal/adapter/fetch"
	"github.com/user/image-inliner/internal/delivery/cli"
	"github.com/user/image-inliner/internal/usecase"
	"github.com/user/image-inliner/pkg/config"
	"github.com/user/image-inliner/pkg/logger"
	"github.com/user/image-inliner/pkg/metrics"
)

func main() {
	// --- Configuration ---
	cfg := config.Load()

	// --- Logger ---
	// Logs go to stderr so the image subcommand's stdout stays clean.
	logger.Init(os.Stderr, logger.ParseLevel(cfg.LogLevel))

	// --- Metrics ---
	metrics.Init()
	if cfg.MetricsAddr != "" {
		go func() {
			slog.Info("serving metrics", "addr", cfg.MetricsAddr)
			if err := http.ListenAndServe(cfg.MetricsAddr, promhttp.Handler()); err != nil && err != http.ErrServerClosed {
				slog.Error("metrics listener failed", "addr", cfg.MetricsAddr, "error", err)
			}
		}()
	}

	// --- Cancellation ---
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// --- Adapters ---
	fetcher := fetch.New(cfg.HTTPTimeout, cfg.UserAgent)
	renderer := browser.NewChromedpRenderer(browser.Options{
		PageLoadTimeout: cfg.PageLoadTimeout,
		UserAgent:       cfg.UserAgent,
		ViewportWidth:   cfg.ViewportWidth,
		ViewportHeight:  cfg.ViewportHeight,
	})

	// --- Use Cases ---
	imageConverter := usecase.NewImageConverter(fetcher)
	htmlConverter := usecase.NewHTMLConverter(fetcher, renderer)

	// --- Commands ---
	root := cli.NewRootCmd(cli.Dependencies{
		ImageConverter: imageConverter,
		HTMLConverter:  htmlConverter,
	})

	if err := root.ExecuteContext(ctx); err != nil {
		slog.Error("conversion failed", "error", err)
		os.Exit(1)
	}
}
