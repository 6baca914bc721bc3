// Package browser renders pages in headless Chrome via chromedp, used
// when document conversion needs in-page script execution.
package browser

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/chromedp/cdproto/cdp"
	"github.com/chromedp/cdproto/dom"
	"github.com/chromedp/chromedp"
)

// Options configures the headless browser.
type Options struct {
	PageLoadTimeout time.Duration
	UserAgent       string
	ViewportWidth   int
	ViewportHeight  int
}

// ChromedpRenderer implements repository.PageRenderer using chromedp.
type ChromedpRenderer struct {
	allocatorPool *sync.Pool
	opts          Options
}

// NewChromedpRenderer creates a renderer backed by a pool of exec
// allocator contexts. The browser process itself is started lazily on
// first use.
func NewChromedpRenderer(opts Options) *ChromedpRenderer {
	pool := &sync.Pool{
		New: func() interface{} {
			allocOpts := append(chromedp.DefaultExecAllocatorOptions[:],
				chromedp.Flag("headless", true),
				chromedp.Flag("disable-gpu", true),
				chromedp.Flag("no-sandbox", true),
				chromedp.Flag("disable-dev-shm-usage", true),
				chromedp.UserAgent(opts.UserAgent),
			)
			allocCtx, _ := chromedp.NewExecAllocator(context.Background(), allocOpts...)
			return allocCtx
		},
	}

	return &ChromedpRenderer{
		allocatorPool: pool,
		opts:          opts,
	}
}

// Render navigates to pageURL, scrolls every img and embed element into
// view so lazy-load handlers fire, and returns the resulting outer HTML.
// Per-element scroll failures are logged and never abort the render.
func (r *ChromedpRenderer) Render(ctx context.Context, pageURL string) (string, error) {
	allocCtx := r.allocatorPool.Get().(context.Context)
	defer r.allocatorPool.Put(allocCtx)

	taskCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	taskCtx, cancelTimeout := context.WithTimeout(taskCtx, r.opts.PageLoadTimeout)
	defer cancelTimeout()

	// chromedp contexts must descend from the allocator, so the caller's
	// cancellation is relayed instead of inherited.
	stop := relayCancel(ctx, cancel)
	defer stop()

	var nodes []*cdp.Node
	err := chromedp.Run(taskCtx,
		chromedp.EmulateViewport(int64(r.opts.ViewportWidth), int64(r.opts.ViewportHeight)),
		chromedp.Navigate(pageURL),
		chromedp.WaitVisible("body", chromedp.ByQuery),
		chromedp.Nodes("img, embed", &nodes, chromedp.ByQueryAll, chromedp.AtLeast(0)),
	)
	if err != nil {
		return "", fmt.Errorf("render %s: %w", pageURL, err)
	}

	for _, node := range nodes {
		scrollErr := chromedp.Run(taskCtx, chromedp.ActionFunc(func(c context.Context) error {
			return dom.ScrollIntoViewIfNeeded().WithNodeID(node.NodeID).Do(c)
		}))
		if scrollErr != nil {
			slog.Info("scroll into view failed", "url", pageURL, "node", node.NodeID, "error", scrollErr)
		}
	}

	var html string
	if err := chromedp.Run(taskCtx, chromedp.OuterHTML("html", &html, chromedp.ByQuery)); err != nil {
		return "", fmt.Errorf("capture rendered document %s: %w", pageURL, err)
	}
	return html, nil
}

// relayCancel cancels the chromedp context chain when the caller's
// context is done. The returned stop function releases the watcher.
func relayCancel(ctx context.Context, cancel context.CancelFunc) func() {
	done := make(chan struct{})
	go func() {
		select {
		case <-ctx.Done():
			cancel()
		case <-done:
		}
	}()
	return func() { close(done) }
}
