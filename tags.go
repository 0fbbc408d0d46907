package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// AddTag adds tag to the vocabulary and re-sorts it. It reports false and
// leaves the store untouched when the tag is already present.
func AddTag(store *ArticleStore, tag string) bool {
	if store.HasTag(tag) {
		return false
	}

	store.Tags = append(store.Tags, tag)
	sort.Strings(store.Tags)
	return true
}

// runAddTag asks for a tag and saves the store only when it was added
func runAddTag(dataPath string, p Prompter) (string, bool, error) {
	store, err := LoadStore(dataPath)
	if err != nil {
		return "", false, err
	}

	tag, err := p.Input("What tag would you like to add?")
	if err != nil {
		return "", false, err
	}

	tag = strings.TrimSpace(tag)
	if tag == "" {
		logger.Warn("Empty tag, nothing to add")
		return "", false, nil
	}

	if !AddTag(store, tag) {
		return tag, false, nil
	}

	if err := SaveStore(dataPath, store); err != nil {
		return "", false, err
	}
	return tag, true, nil
}

func newAddTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-tag",
		Short: "Add a tag to the vocabulary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tag, added, err := runAddTag(cfg.DataPath, newPrompter(cmd))
			if err != nil {
				return fmt.Errorf("adding tag: %w", err)
			}

			switch {
			case added:
				logger.Info("Added tag", zap.String("tag", tag))
			case tag != "":
				logger.Info("Tag already exists", zap.String("tag", tag))
			}
			return nil
		},
	}
}
