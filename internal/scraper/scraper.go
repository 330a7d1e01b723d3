package scraper

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/exp/slog"
)

// RawRow is one extracted result row as produced by a source's extraction
// script, before normalization.
type RawRow struct {
	Category string `json:"category"`
	Value    string `json:"value"`
	Time     string `json:"time"`
}

// Extractor is the per-source-kind parsing strategy: it supplies the fetch
// request for a source URL, turns the raw payload into normalized results
// and decides whether a batch is acceptable. The shared retry/backoff
// driver below composes with any Extractor.
type Extractor[T any] interface {
	Name() string
	Request(sourceURL string) FetchRequest
	// Extract parses and normalizes the raw payload. Unparseable records
	// are skipped silently; only a structurally broken payload is an error.
	Extract(payload string, day time.Time) ([]T, error)
	// Validate accepts a batch only if it is non-empty and every record
	// passes the domain-range and required-field checks.
	Validate(results []T) error
}

// Config bounds one scraping invocation
type Config struct {
	MaxRetries  int
	BackoffBase time.Duration // backoff before attempt n+1 is BackoffBase * 2^n
	Timeout     time.Duration // per-fetch deadline
}

// DefaultConfig mirrors the production scraping parameters
func DefaultConfig() Config {
	return Config{
		MaxRetries:  3,
		BackoffBase: time.Second,
		Timeout:     15 * time.Second,
	}
}

// Scraper drives fetch+extract+validate cycles with bounded retries and
// multi-source fallback. It never returns partial data: an invocation
// yields either one validated batch or a definitive failure.
type Scraper struct {
	fetcher Fetcher
	cfg     Config
	sleep   func(ctx context.Context, d time.Duration) error
}

// New creates a new Scraper around a Fetcher
func New(fetcher Fetcher, cfg Config) *Scraper {
	if cfg.MaxRetries <= 0 {
		cfg.MaxRetries = 1
	}
	return &Scraper{
		fetcher: fetcher,
		cfg:     cfg,
		sleep:   sleepCtx,
	}
}

// ScrapeWithFallback tries the sources strictly in order; within one source
// it runs up to MaxRetries cycles with exponential backoff between them.
// The first validated batch wins and remaining sources are not touched.
// When every attempt on every source fails, the last error is returned.
func ScrapeWithFallback[T any](ctx context.Context, s *Scraper, sources []string, ex Extractor[T]) ([]T, error) {
	if len(sources) == 0 {
		return nil, fmt.Errorf("%s: no sources configured", ex.Name())
	}

	var lastErr error
	for i, source := range sources {
		slog.Info("Trying source", "scraper", ex.Name(), "source", source, "position", i+1, "total", len(sources))

		results, err := scrapeSource(ctx, s, source, ex)
		if err == nil {
			slog.Info("Source succeeded", "scraper", ex.Name(), "source", source, "results", len(results))
			return results, nil
		}
		lastErr = err
		slog.Warn("Source exhausted, falling back", "scraper", ex.Name(), "source", source, "error", err)
	}

	return nil, fmt.Errorf("%s: all %d sources failed: %w", ex.Name(), len(sources), lastErr)
}

// scrapeSource runs the retry loop for a single source
func scrapeSource[T any](ctx context.Context, s *Scraper, source string, ex Extractor[T]) ([]T, error) {
	req := ex.Request(source)
	if req.Timeout == 0 {
		req.Timeout = s.cfg.Timeout
	}

	var lastErr error
	for attempt := 1; attempt <= s.cfg.MaxRetries; attempt++ {
		results, err := attemptScrape(ctx, s, req, ex)
		if err == nil {
			return results, nil
		}
		lastErr = err
		slog.Warn("Scrape attempt failed", "scraper", ex.Name(), "source", source, "attempt", attempt, "error", err)

		if attempt < s.cfg.MaxRetries {
			delay := s.cfg.BackoffBase * time.Duration(1<<attempt) // 2s, 4s, 8s...
			if err := s.sleep(ctx, delay); err != nil {
				return nil, err
			}
		}
	}

	return nil, fmt.Errorf("source %s failed after %d attempts: %w", source, s.cfg.MaxRetries, lastErr)
}

// attemptScrape runs one fetch+extract+validate cycle
func attemptScrape[T any](ctx context.Context, s *Scraper, req FetchRequest, ex Extractor[T]) ([]T, error) {
	payload, err := s.fetcher.Fetch(ctx, req)
	if err != nil {
		return nil, err
	}

	results, err := ex.Extract(payload, time.Now())
	if err != nil {
		return nil, fmt.Errorf("extract: %w", err)
	}
	if err := ex.Validate(results); err != nil {
		return nil, fmt.Errorf("validate: %w", err)
	}
	return results, nil
}

// sleepCtx sleeps for d unless the context is cancelled first
func sleepCtx(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}
