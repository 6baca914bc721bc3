// Package fetch reads resource bytes from local files or remote HTTP
// servers, dispatching on the location's scheme.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/user/image-inliner/internal/repository"
	"github.com/user/image-inliner/pkg/utils"
)

// HTTPFileFetcher implements repository.ResourceFetcher. The underlying
// HTTP client is safe for concurrent use and shared across all fetches.
type HTTPFileFetcher struct {
	client    *http.Client
	userAgent string
}

// New creates a fetcher with the given request timeout and User-Agent.
func New(timeout time.Duration, userAgent string) *HTTPFileFetcher {
	return &HTTPFileFetcher{
		client:    &http.Client{Timeout: timeout},
		userAgent: userAgent,
	}
}

// Fetch reads the binary content at location. Local paths and file://
// URLs are read from the filesystem; everything else is an HTTP GET.
func (f *HTTPFileFetcher) Fetch(ctx context.Context, location string) ([]byte, error) {
	if utils.IsLocal(location) {
		data, err := os.ReadFile(utils.LocalPath(location))
		if err != nil {
			return nil, fmt.Errorf("read local file: %w", err)
		}
		return data, nil
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return nil, fmt.Errorf("build request for %s: %w", location, err)
	}
	if f.userAgent != "" {
		req.Header.Set("User-Agent", f.userAgent)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", location, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("get %s: status %d: %w", location, resp.StatusCode, repository.ErrRemoteStatus)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body for %s: %w", location, err)
	}
	return data, nil
}

// FetchText reads the content at location as text.
func (f *HTTPFileFetcher) FetchText(ctx context.Context, location string) (string, error) {
	data, err := f.Fetch(ctx, location)
	if err != nil {
		return "", err
	}
	return string(data), nil
}
