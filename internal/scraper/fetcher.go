package scraper

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/chromedp/chromedp"
	"golang.org/x/exp/slog"
)

// FetchRequest describes one page load plus the in-page extraction script.
// ExtractJS must evaluate to a JSON string (an array of row objects); the
// selectors inside it are per-site configuration, not core logic.
type FetchRequest struct {
	URL          string
	WaitSelector string
	ExtractJS    string
	Timeout      time.Duration
}

// Fetcher performs a single attempt to load one source page and run its
// extraction script. Implementations own no retry logic.
type Fetcher interface {
	Fetch(ctx context.Context, req FetchRequest) (string, error)
}

// ChromeFetcher loads pages in a headless Chrome tab via chromedp. Every
// call allocates its own browser session and releases it on all exit
// paths, including extraction errors and timeouts.
type ChromeFetcher struct {
	userAgent string
}

// NewChromeFetcher creates a new ChromeFetcher
func NewChromeFetcher() *ChromeFetcher {
	return &ChromeFetcher{
		userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36",
	}
}

// Fetch navigates to the URL, waits for the readiness selector and runs the
// extraction script. A deadline overrun is returned as an ordinary error so
// the caller counts it as a failed attempt.
func (f *ChromeFetcher) Fetch(ctx context.Context, req FetchRequest) (string, error) {
	chromeDir, err := os.MkdirTemp("", "loteplay_chrome_")
	if err != nil {
		return "", fmt.Errorf("create chrome temp dir: %w", err)
	}
	defer os.RemoveAll(chromeDir)

	if req.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, req.Timeout)
		defer cancel()
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.UserDataDir(chromeDir),
		chromedp.UserAgent(f.userAgent),
	)

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	slog.Debug("Fetching source page", "url", req.URL)

	actions := []chromedp.Action{chromedp.Navigate(req.URL)}
	if req.WaitSelector != "" {
		actions = append(actions, chromedp.WaitVisible(req.WaitSelector, chromedp.ByQuery))
	}

	var payload string
	actions = append(actions, chromedp.Evaluate(req.ExtractJS, &payload))

	if err := chromedp.Run(tabCtx, actions...); err != nil {
		return "", fmt.Errorf("fetch %s: %w", req.URL, err)
	}

	return payload, nil
}
