package main

import (
	"fmt"
	"strings"
)

// IOError reports a store file that could not be read or written
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }

// ParseError reports a store file that is not a valid article document
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// ValidationError reports article keys that cannot be used as ids. Reason
// is empty for keys that are not canonical integers.
type ValidationError struct {
	Keys   []string
	Reason string
}

func (e *ValidationError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("article ids %s: %s", strings.Join(quoteAll(e.Keys), ", "), e.Reason)
	}
	return fmt.Sprintf("invalid article ids %s (run `blog-admin migrate fix-ids`)",
		strings.Join(quoteAll(e.Keys), ", "))
}

// HTTPError represents an HTTP error with status code
type HTTPError struct {
	StatusCode int
	URL        string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("HTTP %d for %s", e.StatusCode, e.URL)
}

func quoteAll(values []string) []string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return quoted
}
