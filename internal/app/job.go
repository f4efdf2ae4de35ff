package app

import (
	"context"
	"fmt"
	"time"

	"github.com/scpwiki/news-fetch/internal/config"
	"github.com/scpwiki/news-fetch/internal/domain"
	"github.com/scpwiki/news-fetch/internal/logger"
	"github.com/scpwiki/news-fetch/internal/output"
	"github.com/scpwiki/news-fetch/pkg/crom"
	"github.com/scpwiki/news-fetch/pkg/sources"
)

// Job is one monthly retrieval run. It wires the source registry, the Crom
// client, the pagination walker, and the output writer.
type Job struct {
	cfg    *config.Config
	source sources.Source
	walker *crom.Walker
	writer *output.Writer
}

// NewJob builds a job runtime from config files.
func NewJob(cfg *config.Config) (*Job, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config must not be nil")
	}

	registry, err := sources.LoadRegistry(cfg.SourcesFile)
	if err != nil {
		return nil, fmt.Errorf("load sources registry: %w", err)
	}

	source, ok := registry.ByID(cfg.SourceID)
	if !ok {
		return nil, fmt.Errorf("source %q not found in %s", cfg.SourceID, cfg.SourcesFile)
	}
	logger.InfoObj("source selected", "source_meta", map[string]any{
		"id":        source.ID,
		"name":      source.Name,
		"base_urls": source.BaseURLs,
	})

	client, err := crom.NewClient(
		crom.DefaultHTTPClient(cfg.HTTPTimeout),
		cfg.CromEndpoint,
		source.BaseURLs,
		cfg.PageSize,
	)
	if err != nil {
		return nil, fmt.Errorf("init crom client: %w", err)
	}

	return &Job{
		cfg:    cfg,
		source: source,
		walker: crom.NewWalker(client),
		writer: output.NewWriter(cfg.OutputDir),
	}, nil
}

// Run retrieves every article for the month starting on the given ISO date
// and persists the result set to the JSON and CSV artifacts.
func (j *Job) Run(ctx context.Context, startDate string) error {
	if j == nil || j.walker == nil {
		return fmt.Errorf("job is not initialized")
	}

	span, err := domain.MonthSpan(startDate)
	if err != nil {
		return err
	}

	started := time.Now()
	logger.InfoObj("retrieval started", "run_meta", map[string]any{
		"source":     j.source.ID,
		"span_start": span.Start,
		"span_end":   span.End,
	})

	pages, err := j.walker.FetchAll(ctx, span)
	if err != nil {
		return fmt.Errorf("fetch articles: %w", err)
	}

	if err := j.writer.WriteAll(startDate, pages); err != nil {
		return fmt.Errorf("write results: %w", err)
	}

	logger.InfoObj("retrieval completed", "run_meta", map[string]any{
		"source":     j.source.ID,
		"records":    len(pages),
		"elapsed_ms": time.Since(started).Milliseconds(),
	})
	return nil
}
