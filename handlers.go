package main

import (
	"fmt"
	"io"
	"net/http"
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

// maxContentBytes caps how much of a response body is read
const maxContentBytes = 10 << 20

// ContentHandler processes URLs based on response inspection
type ContentHandler interface {
	CanHandle(url string, resp *http.Response) bool
	Handle(url string, resp *http.Response) (*ContentResult, error)
}

// MarkdownHandler passes markdown and plain text through unchanged
type MarkdownHandler struct{}

func (h *MarkdownHandler) CanHandle(url string, resp *http.Response) bool {
	lower := strings.ToLower(url)
	if strings.HasSuffix(lower, ".md") || strings.HasSuffix(lower, ".markdown") {
		return true
	}

	contentType := resp.Header.Get("Content-Type")
	return strings.Contains(contentType, "text/markdown") ||
		strings.Contains(contentType, "text/plain")
}

func (h *MarkdownHandler) Handle(url string, resp *http.Response) (*ContentResult, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	return &ContentResult{
		Markdown:    string(body),
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}

// HTMLHandler handles regular HTML content (fallback)
type HTMLHandler struct {
	converter *md.Converter
}

func (h *HTMLHandler) CanHandle(url string, resp *http.Response) bool {
	return true // Always handles as fallback
}

func (h *HTMLHandler) Handle(url string, resp *http.Response) (*ContentResult, error) {
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxContentBytes))
	if err != nil {
		return nil, fmt.Errorf("reading response body: %w", err)
	}

	markdown, err := h.converter.ConvertString(string(body))
	if err != nil {
		return nil, fmt.Errorf("converting HTML to markdown: %w", err)
	}

	return &ContentResult{
		Markdown:    markdown,
		ContentType: resp.Header.Get("Content-Type"),
	}, nil
}
