package main

import (
	"context"
	"fmt"
	"io"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v2"

	"notion-share-sync/config"
	"notion-share-sync/internal/share"
	shareRepo "notion-share-sync/internal/share/repository/notion"
	shareUC "notion-share-sync/internal/share/usecase"
	"notion-share-sync/pkg/log"
	"notion-share-sync/pkg/notion"
)

// runAction exits non-zero only on config errors or a failed category scan.
// Per-record failures are reported in the summary.
func runAction(c *cli.Context) error {
	cfg, err := config.LoadFile(c.String(flagConfig))
	if err != nil {
		return cli.Exit(fmt.Sprintf("load config: %v", err), 1)
	}

	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	client, err := notion.New(cfg.Notion.APIKey)
	if err != nil {
		return cli.Exit(fmt.Sprintf("notion client: %v", err), 1)
	}
	client.
		WithBaseURL(cfg.Notion.BaseURL).
		WithAPIVersion(cfg.Notion.APIVersion).
		WithTimeout(cfg.Notion.Timeout)

	repo := shareRepo.New(client, shareRepo.Properties{
		Status:  cfg.Share.Properties.Status,
		Trigger: cfg.Share.Properties.Trigger,
		Project: cfg.Share.Properties.Project,
	}, cfg.StatusLabels(), logger)
	uc := shareUC.New(logger, repo, cfg.Categories(), cfg.Notion.WorkspaceDomain)

	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	return execute(ctx, c.App.Writer, uc, c.StringSlice(flagCategory))
}

func execute(ctx context.Context, w io.Writer, uc share.UseCase, categories []string) error {
	out, err := uc.Run(log.WithTraceID(ctx, ""), share.RunInput{Categories: categories})
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}

	printSummary(w, out)
	if out.ScanFailed() {
		return cli.Exit("one or more databases could not be scanned", 1)
	}
	return nil
}

func printSummary(w io.Writer, out share.RunOutput) {
	fmt.Fprintf(w, "%s (trace %s)\n", share.CompletionMessage, out.TraceID)
	for _, db := range out.Databases {
		if db.Err != nil {
			fmt.Fprintf(w, "  %-8s scan failed: %v\n", db.Category, db.Err)
			continue
		}
		fmt.Fprintf(w, "  %-8s records=%d shared=%d failed=%d links=%d\n",
			db.Category, db.Total, db.Shared, db.Failed, db.Links)
	}
}
