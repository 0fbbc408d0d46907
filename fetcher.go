package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"go.uber.org/zap"
)

// ContentResult represents the result of fetching content
type ContentResult struct {
	Markdown    string
	ContentType string
}

// ContentFetcher handles fetching and processing content from URLs
type ContentFetcher struct {
	handlers []ContentHandler
	client   *http.Client
}

// NewContentFetcher creates a new content fetcher with default handlers
func NewContentFetcher(timeout time.Duration) *ContentFetcher {
	f := &ContentFetcher{
		client: &http.Client{Timeout: timeout},
	}

	// Register handlers (most specific first)
	f.AddHandler(&MarkdownHandler{})
	f.AddHandler(&HTMLHandler{converter: md.NewConverter("", true, nil)}) // fallback

	return f
}

// AddHandler adds a content handler to the chain
func (f *ContentFetcher) AddHandler(handler ContentHandler) {
	f.handlers = append(f.handlers, handler)
}

// FetchContent fetches url and converts it with the first matching handler
func (f *ContentFetcher) FetchContent(ctx context.Context, url string) (*ContentResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building request for %s: %w", url, err)
	}

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", url, err)
	}
	defer resp.Body.Close()

	logger.Debug("Fetched content",
		zap.String("url", url),
		zap.Int("status", resp.StatusCode),
		zap.String("content_type", resp.Header.Get("Content-Type")))

	if resp.StatusCode != http.StatusOK {
		return nil, &HTTPError{StatusCode: resp.StatusCode, URL: url}
	}

	// Find handler based on URL + response headers
	for _, handler := range f.handlers {
		if handler.CanHandle(url, resp) {
			return handler.Handle(url, resp)
		}
	}

	return nil, fmt.Errorf("no handler found for %s", url)
}
