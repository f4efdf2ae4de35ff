package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/scpwiki/news-fetch/internal/app"
	"github.com/scpwiki/news-fetch/internal/config"
	"github.com/scpwiki/news-fetch/internal/logger"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <year>-<month>-<day>\n", os.Args[0])
		os.Exit(1)
	}

	if err := run(os.Args[1]); err != nil {
		fmt.Fprintf(os.Stderr, "newsfetch failed: %v\n", err)
		os.Exit(1)
	}
}

func run(startDate string) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	if _, err := logger.Init(cfg); err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer logger.Close()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	job, err := app.NewJob(cfg)
	if err != nil {
		logger.ErrorObj("failed to initialize job", "error", err)
		return err
	}

	return job.Run(ctx, startDate)
}
