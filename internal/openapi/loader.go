// Package openapi resolves source locators to decoded API documents.
package openapi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// maxDocumentSize caps how much of a remote document is read (16 MiB).
// Real-world Swagger files for large APIs run a few megabytes at most.
const maxDocumentSize = 16 << 20

// Loader fetches and decodes OpenAPI/Swagger documents from a source locator.
//
// Supported locator forms:
//   - http:// or https:// URL
//   - github:owner/repo/path/to/spec.yaml[@ref]
//   - anything else is treated as a local file path
type Loader struct {
	httpClient *http.Client
	github     *GitHubSource
	logger     *slog.Logger
}

// NewLoader creates a loader with a shared HTTP client and GitHub source.
// The GitHub client is authenticated when GITHUB_TOKEN is set.
func NewLoader(gh *GitHubSource, logger *slog.Logger) *Loader {
	if logger == nil {
		logger = slog.Default()
	}
	return &Loader{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		github:     gh,
		logger:     logger,
	}
}

// Fetch resolves the locator and decodes the document it points at.
func (l *Loader) Fetch(ctx context.Context, locator string) (map[string]any, error) {
	var (
		data []byte
		err  error
	)

	switch {
	case strings.HasPrefix(locator, "http://"), strings.HasPrefix(locator, "https://"):
		data, err = l.fetchHTTP(ctx, locator)
	case strings.HasPrefix(locator, "github:"):
		if l.github == nil {
			return nil, fmt.Errorf("%w: github source not configured", ErrFetchFailed)
		}
		data, err = l.github.Fetch(ctx, strings.TrimPrefix(locator, "github:"))
	default:
		data, err = os.ReadFile(locator)
		if err != nil {
			err = fmt.Errorf("%w: %v", ErrFetchFailed, err)
		}
	}
	if err != nil {
		return nil, err
	}

	l.logger.Debug("fetched document", "locator", locator, "size", len(data))
	return Decode(data)
}

// fetchHTTP downloads a document over HTTP with exponential backoff on
// transient failures. Client errors (4xx) are permanent and fail immediately;
// network errors and 5xx responses are retried.
func (l *Loader) fetchHTTP(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	operation := func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
		if err != nil {
			return backoff.Permanent(err)
		}
		req.Header.Set("Accept", "application/json, application/yaml, text/yaml, */*")

		resp, err := l.httpClient.Do(req)
		if err != nil {
			return err // Network errors are retryable
		}
		defer resp.Body.Close()

		if resp.StatusCode >= 500 {
			return fmt.Errorf("server returned status %d", resp.StatusCode)
		}
		if resp.StatusCode != http.StatusOK {
			return backoff.Permanent(fmt.Errorf("unexpected status %d", resp.StatusCode))
		}

		body, err = io.ReadAll(io.LimitReader(resp.Body, maxDocumentSize))
		if err != nil {
			return err
		}
		return nil
	}

	// Same backoff envelope the rest of the codebase uses for outbound I/O.
	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 10 * time.Second
	b.MaxElapsedTime = 30 * time.Second

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrFetchFailed, url, err)
	}
	return body, nil
}
