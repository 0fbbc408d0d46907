package main

import (
	"bytes"
	"encoding/json"
	"sort"
	"strconv"
)

// ArticleStore is the root document of data/articles.json
type ArticleStore struct {
	Articles Articles `json:"articles"`
	Tags     []string `json:"tags"`
}

// ArticleRecord is one article's metadata entry
type ArticleRecord struct {
	ID        int      `json:"id"`
	Path      string   `json:"path"`
	Cover     string   `json:"cover"`
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	Tags      []string `json:"tags"`
	Date      string   `json:"date"`
	Published string   `json:"published"`
}

// Articles maps a string-encoded id to its record.
//
// Keys are serialized in ascending numeric order, the order a browser
// enumerates integer keys when the site reads the file. Keys that are not
// canonical integers follow in lexical order.
type Articles map[string]ArticleRecord

// MarshalJSON writes the map with numerically ordered keys
func (a Articles) MarshalJSON() ([]byte, error) {
	if a == nil {
		return []byte("{}"), nil
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	buf.WriteByte('{')
	for i, key := range orderedKeys(a) {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := enc.Encode(key); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1) // Encode appends a newline
		buf.WriteByte(':')

		record := a[key]
		if record.Tags == nil {
			record.Tags = []string{}
		}
		if err := enc.Encode(record); err != nil {
			return nil, err
		}
		buf.Truncate(buf.Len() - 1)
	}
	buf.WriteByte('}')

	return buf.Bytes(), nil
}

// orderedKeys returns integer keys ascending, then the rest lexically
func orderedKeys(a Articles) []string {
	keys := make([]string, 0, len(a))
	for key := range a {
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool {
		ni, iok := parseID(keys[i])
		nj, jok := parseID(keys[j])
		switch {
		case iok && jok:
			return ni < nj
		case iok != jok:
			return iok
		default:
			return keys[i] < keys[j]
		}
	})

	return keys
}

// parseID reports whether key is a canonical non-negative integer
func parseID(key string) (int, bool) {
	n, err := strconv.Atoi(key)
	if err != nil || n < 0 || strconv.Itoa(n) != key {
		return 0, false
	}
	return n, true
}
