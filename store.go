package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"sort"
	"strconv"

	"go.uber.org/zap"
)

// LoadStore reads and parses the article document at path
func LoadStore(path string) (*ArticleStore, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &IOError{Op: "reading", Path: path, Err: err}
	}

	var store ArticleStore
	if err := json.Unmarshal(data, &store); err != nil {
		return nil, &ParseError{Path: path, Err: err}
	}

	if store.Articles == nil {
		store.Articles = Articles{}
	}
	if store.Tags == nil {
		store.Tags = []string{}
	}

	logger.Debug("Loaded article store",
		zap.String("path", path),
		zap.Int("articles", len(store.Articles)),
		zap.Int("tags", len(store.Tags)))

	return &store, nil
}

// SaveStore overwrites path with the full pretty-printed document.
//
// The document is written to a temporary file next to path and renamed over
// it, so a failed write leaves the previous document in place.
func SaveStore(path string, store *ArticleStore) error {
	data, err := encodeStore(store)
	if err != nil {
		return err
	}

	mode := fs.FileMode(0644)
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := os.Chmod(tmpName, mode); err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}
	if err := os.Rename(tmpName, path); err != nil {
		return &IOError{Op: "writing", Path: path, Err: err}
	}

	logger.Debug("Saved article store",
		zap.String("path", path),
		zap.Int("articles", len(store.Articles)),
		zap.Int("tags", len(store.Tags)))

	return nil
}

// encodeStore renders the document with two-space indentation and no
// trailing newline, the layout of files the site has always committed.
func encodeStore(store *ArticleStore) ([]byte, error) {
	doc := *store
	if doc.Articles == nil {
		doc.Articles = Articles{}
	}
	if doc.Tags == nil {
		doc.Tags = []string{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return nil, err
	}

	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}

// IDs returns the article ids in ascending order. Keys that are not
// canonical non-negative integers are reported as a ValidationError.
func (s *ArticleStore) IDs() ([]int, error) {
	ids := make([]int, 0, len(s.Articles))
	var invalid []string

	for key := range s.Articles {
		id, ok := parseID(key)
		if !ok {
			invalid = append(invalid, key)
			continue
		}
		ids = append(ids, id)
	}

	if len(invalid) > 0 {
		sort.Strings(invalid)
		return nil, &ValidationError{Keys: invalid}
	}

	sort.Ints(ids)
	return ids, nil
}

// NextID returns the id for a new article: the highest id plus one, or 1
// for an empty store.
func (s *ArticleStore) NextID() (int, error) {
	ids, err := s.IDs()
	if err != nil {
		return 0, err
	}
	if len(ids) == 0 {
		return 1, nil
	}

	last := ids[len(ids)-1]
	if last == math.MaxInt {
		return 0, &ValidationError{Keys: []string{strconv.Itoa(last)}, Reason: "no id left after the highest key"}
	}
	return last + 1, nil
}

// HasTag reports whether tag is in the vocabulary
func (s *ArticleStore) HasTag(tag string) bool {
	for _, t := range s.Tags {
		if t == tag {
			return true
		}
	}
	return false
}

// errNotFound is returned when an id has no record
var errNotFound = errors.New("article not found")
