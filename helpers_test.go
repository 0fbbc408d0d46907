package main

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

// scriptedPrompter replays canned answers and records what was asked
type scriptedPrompter struct {
	inputs     []string
	checkboxes [][]string
	confirms   []bool

	asked   []string
	choices [][]string
}

func (p *scriptedPrompter) Input(message string) (string, error) {
	p.asked = append(p.asked, message)
	if len(p.inputs) == 0 {
		return "", io.EOF
	}
	answer := p.inputs[0]
	p.inputs = p.inputs[1:]
	return answer, nil
}

func (p *scriptedPrompter) Checkbox(message string, choices []string) ([]string, error) {
	p.asked = append(p.asked, message)
	p.choices = append(p.choices, choices)
	if len(p.checkboxes) == 0 {
		return nil, io.EOF
	}
	answer := p.checkboxes[0]
	p.checkboxes = p.checkboxes[1:]
	return answer, nil
}

func (p *scriptedPrompter) Confirm(message string) (bool, error) {
	p.asked = append(p.asked, message)
	if len(p.confirms) == 0 {
		return false, io.EOF
	}
	answer := p.confirms[0]
	p.confirms = p.confirms[1:]
	return answer, nil
}

// writeStoreFile writes raw JSON to a fresh articles.json and returns its path
func writeStoreFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "articles.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// storeWithIDs returns a store holding a minimal record for each key
func storeWithIDs(keys ...string) *ArticleStore {
	store := &ArticleStore{Articles: Articles{}, Tags: []string{}}
	for _, key := range keys {
		id, _ := parseID(key)
		store.Articles[key] = ArticleRecord{ID: id, Title: "Article " + key, Tags: []string{}}
	}
	return store
}
