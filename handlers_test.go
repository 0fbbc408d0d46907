package main

import (
	"io"
	"net/http"
	"strings"
	"testing"

	md "github.com/JohannesKaufmann/html-to-markdown"
)

func newResponse(contentType, body string) *http.Response {
	header := http.Header{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &http.Response{
		StatusCode: http.StatusOK,
		Header:     header,
		Body:       io.NopCloser(strings.NewReader(body)),
	}
}

func TestMarkdownHandlerCanHandle(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		contentType string
		expected    bool
	}{
		{"md extension", "https://example.com/post.md", "", true},
		{"markdown extension", "https://example.com/POST.MARKDOWN", "", true},
		{"markdown content type", "https://example.com/post", "text/markdown; charset=utf-8", true},
		{"plain text", "https://example.com/post", "text/plain", true},
		{"html", "https://example.com/post", "text/html", false},
		{"no content type", "https://example.com/post", "", false},
	}

	h := &MarkdownHandler{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := h.CanHandle(tt.url, newResponse(tt.contentType, ""))
			if result != tt.expected {
				t.Errorf("CanHandle() = %v, want %v", result, tt.expected)
			}
		})
	}
}

func TestMarkdownHandlerPassesThrough(t *testing.T) {
	body := "# Title\n\nSome *markdown*."
	h := &MarkdownHandler{}

	result, err := h.Handle("https://example.com/post.md", newResponse("text/markdown", body))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}
	if result.Markdown != body {
		t.Errorf("Handle() markdown = %q, want %q", result.Markdown, body)
	}
	if result.ContentType != "text/markdown" {
		t.Errorf("Handle() content type = %q", result.ContentType)
	}
}

func TestHTMLHandler(t *testing.T) {
	h := &HTMLHandler{converter: md.NewConverter("", true, nil)}

	if !h.CanHandle("https://example.com", newResponse("", "")) {
		t.Error("HTMLHandler should handle everything as fallback")
	}

	result, err := h.Handle("https://example.com", newResponse("text/html",
		`<h2>Should you use JS classes?</h2><p>See <a href="https://example.com/x">this</a>.</p>`))
	if err != nil {
		t.Fatalf("Handle() error = %v", err)
	}

	if !strings.Contains(result.Markdown, "## Should you use JS classes?") {
		t.Errorf("markdown missing heading: %q", result.Markdown)
	}
	if !strings.Contains(result.Markdown, "[this](https://example.com/x)") {
		t.Errorf("markdown missing link: %q", result.Markdown)
	}
}
