package main

import (
	"fmt"
	"math"
	"slices"
	"sort"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// FixIDs moves records stored under non-integer keys (such as "NaN") to
// fresh ids and makes every record's id field agree with its key. Each
// change is confirmed first. It returns the number of changes made.
func FixIDs(store *ArticleStore, p Prompter) (int, error) {
	var invalid []string
	highest := 0
	for key := range store.Articles {
		if id, ok := parseID(key); ok {
			highest = max(highest, id)
			continue
		}
		invalid = append(invalid, key)
	}
	sort.Strings(invalid)

	changes := 0
	for _, key := range invalid {
		if highest == math.MaxInt {
			return changes, &ValidationError{Keys: []string{key}, Reason: "no id left to renumber to"}
		}
		next := highest + 1
		record := store.Articles[key]
		ok, err := p.Confirm(fmt.Sprintf("RENUMBER %q (%s) -> %d?", key, record.Title, next))
		if err != nil {
			return changes, err
		}
		if !ok {
			continue
		}

		delete(store.Articles, key)
		record.ID = next
		store.Articles[strconv.Itoa(next)] = record
		logger.Info("Renumbered article", zap.String("from", key), zap.Int("to", next))
		highest = next
		changes++
	}

	for _, key := range orderedKeys(store.Articles) {
		id, ok := parseID(key)
		record := store.Articles[key]
		if !ok || record.ID == id {
			continue
		}

		confirmed, err := p.Confirm(fmt.Sprintf("SET id of %q from %d to %d?", key, record.ID, id))
		if err != nil {
			return changes, err
		}
		if !confirmed {
			continue
		}

		record.ID = id
		store.Articles[key] = record
		changes++
	}

	return changes, nil
}

// FixTags sorts and dedupes the vocabulary, then offers to add every tag
// that articles use but the vocabulary lacks. It reports whether the
// vocabulary changed.
func FixTags(store *ArticleStore, p Prompter) (bool, error) {
	before := append([]string(nil), store.Tags...)

	seen := make(map[string]bool, len(store.Tags))
	tags := make([]string, 0, len(store.Tags))
	for _, tag := range store.Tags {
		if !seen[tag] {
			seen[tag] = true
			tags = append(tags, tag)
		}
	}
	sort.Strings(tags)
	store.Tags = tags

	var missing []string
	for _, key := range orderedKeys(store.Articles) {
		for _, tag := range store.Articles[key].Tags {
			if !seen[tag] {
				seen[tag] = true
				missing = append(missing, tag)
			}
		}
	}

	for _, tag := range missing {
		ok, err := p.Confirm(fmt.Sprintf("ADD missing tag %q?", tag))
		if err != nil {
			return false, err
		}
		if ok {
			AddTag(store, tag)
		}
	}

	return !slices.Equal(before, store.Tags), nil
}

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Repair article ids and the tag vocabulary",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "fix-ids",
		Short: "Renumber invalid article keys and sync record ids",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(cfg.DataPath, func(store *ArticleStore) (bool, error) {
				n, err := FixIDs(store, NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
				return n > 0, err
			})
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "tags",
		Short: "Sort and dedupe tags and add tags used by articles",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMigration(cfg.DataPath, func(store *ArticleStore) (bool, error) {
				return FixTags(store, NewLinePrompter(cmd.InOrStdin(), cmd.OutOrStdout()))
			})
		},
	})

	return cmd
}

// runMigration applies fix to the store and saves it if anything changed
func runMigration(dataPath string, fix func(*ArticleStore) (bool, error)) error {
	store, err := LoadStore(dataPath)
	if err != nil {
		return err
	}

	changed, err := fix(store)
	if err != nil {
		return fmt.Errorf("migrating: %w", err)
	}
	if !changed {
		logger.Info("Nothing to migrate")
		return nil
	}

	if err := SaveStore(dataPath, store); err != nil {
		return err
	}
	logger.Info("Saved migrated store", zap.String("path", dataPath))
	return nil
}
