package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Importer writes an article's published content into its directory
type Importer struct {
	fetcher   *ContentFetcher
	settings  *Settings
	overwrite bool
}

// NewImporter creates an importer using settings for paths and timeouts
func NewImporter(settings *Settings) *Importer {
	return &Importer{
		fetcher:  NewContentFetcher(settings.ImportTimeout),
		settings: settings,
	}
}

// SetOverwrite sets the overwrite flag
func (im *Importer) SetOverwrite(overwrite bool) {
	im.overwrite = overwrite
}

// markdownPath returns where the record's markdown lives under the site root
func (im *Importer) markdownPath(record ArticleRecord) string {
	return filepath.Join(im.settings.SiteRoot, filepath.FromSlash(record.Path), im.settings.MarkdownFile)
}

// Import fetches the record's published URL and saves it as markdown. The
// returned bool is false when an existing file was kept.
func (im *Importer) Import(ctx context.Context, record ArticleRecord) (string, bool, error) {
	filename := im.markdownPath(record)

	if !im.overwrite {
		if _, err := os.Stat(filename); err == nil {
			logger.Info("Skipping import: file exists", zap.String("file", filename))
			return filename, false, nil
		}
	}

	if strings.TrimSpace(record.Published) == "" {
		return "", false, fmt.Errorf("article %d has no published URL", record.ID)
	}

	logger.Info("Fetching content", zap.String("url", record.Published))
	content, err := im.fetcher.FetchContent(ctx, record.Published)
	if err != nil {
		return "", false, fmt.Errorf("fetching source: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(filename), 0755); err != nil {
		return "", false, fmt.Errorf("creating article directory: %w", err)
	}

	text := strings.TrimSpace(content.Markdown) + "\n"
	if err := os.WriteFile(filename, []byte(text), 0644); err != nil {
		return "", false, fmt.Errorf("saving article: %w", err)
	}

	return filename, true, nil
}

// findRecord returns the record stored under id
func findRecord(store *ArticleStore, id string) (ArticleRecord, error) {
	record, ok := store.Articles[id]
	if !ok {
		return ArticleRecord{}, fmt.Errorf("id %s: %w", id, errNotFound)
	}
	return record, nil
}

func newImportCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "import <id>",
		Short: "Import an article's published content as markdown",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if _, err := strconv.Atoi(args[0]); err != nil {
				return fmt.Errorf("invalid article id %q", args[0])
			}

			store, err := LoadStore(cfg.DataPath)
			if err != nil {
				return err
			}
			record, err := findRecord(store, args[0])
			if err != nil {
				return err
			}

			im := NewImporter(cfg.Settings)
			im.SetOverwrite(force)

			filename, written, err := im.Import(cmd.Context(), record)
			if err != nil {
				return fmt.Errorf("importing article %s: %w", args[0], err)
			}
			if written {
				logger.Info("Imported article", zap.String("file", filename))
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&force, "force", false, "Overwrite an existing markdown file")

	return cmd
}
