package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"notion-share-sync/config"
	_ "notion-share-sync/docs" // Swagger docs
	"notion-share-sync/internal/httpserver"
	shareHTTP "notion-share-sync/internal/share/delivery/http"
	shareRepo "notion-share-sync/internal/share/repository/notion"
	shareUC "notion-share-sync/internal/share/usecase"
	"notion-share-sync/pkg/log"
	"notion-share-sync/pkg/notion"
)

// @title       Notion Share Sync API
// @description Shares unshared Notion minutes and manual records into their related project pages.
// @version     1
// @host        localhost:8080
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		os.Exit(1)
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Notion Share Sync...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)
	logger.Infof(ctx, "Notion API: %s (version %s)", cfg.Notion.BaseURL, cfg.Notion.APIVersion)

	// 3. Notion client
	notionClient, err := notion.New(cfg.Notion.APIKey)
	if err != nil {
		logger.Error(ctx, "Failed to initialize Notion client: ", err)
		os.Exit(1)
	}
	notionClient.
		WithBaseURL(cfg.Notion.BaseURL).
		WithAPIVersion(cfg.Notion.APIVersion).
		WithTimeout(cfg.Notion.Timeout)

	// 4. Share domain
	repo := shareRepo.New(notionClient, shareRepo.Properties{
		Status:  cfg.Share.Properties.Status,
		Trigger: cfg.Share.Properties.Trigger,
		Project: cfg.Share.Properties.Project,
	}, cfg.StatusLabels(), logger)
	uc := shareUC.New(logger, repo, cfg.Categories(), cfg.Notion.WorkspaceDomain)

	// 5. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		TrustedProxies: cfg.Trigger.TrustedProxies,
		ShareUseCase:   uc,
		Categories:     cfg.Categories(),
		ShareConfig: shareHTTP.Config{
			SingleFlight: cfg.Trigger.SingleFlight,
			Guard: shareHTTP.GuardConfig{
				AllowedIPs:      cfg.Trigger.AllowedIPs,
				RateLimitPerMin: cfg.Trigger.RateLimitPerMin,
			},
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		os.Exit(1)
	}

	// 6. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		os.Exit(1)
	}

	logger.Info(ctx, "Server stopped gracefully")
}
