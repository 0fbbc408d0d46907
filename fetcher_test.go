package main

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

// Mock handler for testing
type mockHandler struct {
	canHandleResult bool
	handleResult    *ContentResult
	handleError     error
}

func (m *mockHandler) CanHandle(url string, resp *http.Response) bool {
	return m.canHandleResult
}

func (m *mockHandler) Handle(url string, resp *http.Response) (*ContentResult, error) {
	return m.handleResult, m.handleError
}

func TestNewContentFetcher(t *testing.T) {
	fetcher := NewContentFetcher(10 * time.Second)

	if fetcher == nil {
		t.Fatal("NewContentFetcher() returned nil")
	}

	if fetcher.client == nil {
		t.Fatal("NewContentFetcher() did not initialize HTTP client")
	}

	if fetcher.client.Timeout != 10*time.Second {
		t.Errorf("client timeout = %v, want %v", fetcher.client.Timeout, 10*time.Second)
	}

	expectedHandlerCount := 2 // Markdown, HTML
	if len(fetcher.handlers) != expectedHandlerCount {
		t.Errorf("NewContentFetcher() registered %d handlers, want %d",
			len(fetcher.handlers), expectedHandlerCount)
	}
}

func TestAddHandler(t *testing.T) {
	fetcher := &ContentFetcher{}
	initialCount := len(fetcher.handlers)

	mockH := &mockHandler{canHandleResult: true}
	fetcher.AddHandler(mockH)

	if len(fetcher.handlers) != initialCount+1 {
		t.Errorf("AddHandler() handlers count = %d, want %d",
			len(fetcher.handlers), initialCount+1)
	}

	lastHandler := fetcher.handlers[len(fetcher.handlers)-1]
	if lastHandler != mockH {
		t.Error("AddHandler() did not add handler to the end of the chain")
	}
}

func TestFetchContentHTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	fetcher := &ContentFetcher{
		client: server.Client(),
	}

	result, err := fetcher.FetchContent(context.Background(), server.URL)

	if result != nil {
		t.Error("FetchContent() should return nil result on HTTP error")
	}

	if err == nil {
		t.Fatal("FetchContent() should return error on HTTP 404")
	}

	httpErr, ok := err.(*HTTPError)
	if !ok {
		t.Fatalf("FetchContent() should return HTTPError, got %T", err)
	}
	if httpErr.StatusCode != http.StatusNotFound {
		t.Errorf("HTTPError.StatusCode = %d, want %d", httpErr.StatusCode, http.StatusNotFound)
	}
	if httpErr.URL != server.URL {
		t.Errorf("HTTPError.URL = %q, want %q", httpErr.URL, server.URL)
	}
}

func TestFetchContentHandlerChain(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("<h1>Test HTML</h1>"))
	}))
	defer server.Close()

	handler1 := &mockHandler{canHandleResult: false}
	handler2 := &mockHandler{
		canHandleResult: true,
		handleResult:    &ContentResult{Markdown: "handler2 result"},
	}
	handler3 := &mockHandler{
		canHandleResult: true, // would handle but is never reached
		handleResult:    &ContentResult{Markdown: "handler3 result"},
	}

	fetcher := &ContentFetcher{
		client:   server.Client(),
		handlers: []ContentHandler{handler1, handler2, handler3},
	}

	result, err := fetcher.FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}

	if result.Markdown != "handler2 result" {
		t.Errorf("FetchContent() result.Markdown = %q, want %q", result.Markdown, "handler2 result")
	}
}

func TestFetchContentNoMatchingHandler(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("some content"))
	}))
	defer server.Close()

	fetcher := &ContentFetcher{
		client:   server.Client(),
		handlers: []ContentHandler{&mockHandler{}, &mockHandler{}},
	}

	result, err := fetcher.FetchContent(context.Background(), server.URL)

	if result != nil {
		t.Error("FetchContent() should return nil when no handler matches")
	}

	expectedMsg := "no handler found for " + server.URL
	if err == nil || err.Error() != expectedMsg {
		t.Errorf("FetchContent() error = %v, want %q", err, expectedMsg)
	}
}

func TestFetchContentCanceled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("too late"))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewContentFetcher(5*time.Second).FetchContent(ctx, server.URL)

	if err == nil {
		t.Fatal("FetchContent() should fail with a canceled context")
	}
	if !strings.Contains(err.Error(), "context canceled") {
		t.Errorf("FetchContent() error = %v, want context canceled", err)
	}
}

func TestFetchContentConvertsHTML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte("<html><body><h1>Hello</h1><p>World of <strong>Go</strong></p></body></html>"))
	}))
	defer server.Close()

	result, err := NewContentFetcher(5*time.Second).FetchContent(context.Background(), server.URL)
	if err != nil {
		t.Fatalf("FetchContent() error = %v", err)
	}

	if !strings.Contains(result.Markdown, "# Hello") {
		t.Errorf("markdown missing heading: %q", result.Markdown)
	}
	if !strings.Contains(result.Markdown, "**Go**") {
		t.Errorf("markdown missing bold text: %q", result.Markdown)
	}
}
