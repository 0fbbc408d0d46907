package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// Rollback removes the record with the highest id and returns it. The
// second result is false when there is nothing to remove.
func Rollback(store *ArticleStore) (ArticleRecord, bool, error) {
	ids, err := store.IDs()
	if err != nil {
		return ArticleRecord{}, false, err
	}
	if len(ids) == 0 {
		return ArticleRecord{}, false, nil
	}

	key := strconv.Itoa(ids[len(ids)-1])
	record := store.Articles[key]
	delete(store.Articles, key)

	return record, true, nil
}

func runRollback(dataPath string) (ArticleRecord, bool, error) {
	store, err := LoadStore(dataPath)
	if err != nil {
		return ArticleRecord{}, false, err
	}

	record, removed, err := Rollback(store)
	if err != nil || !removed {
		return ArticleRecord{}, false, err
	}

	if err := SaveStore(dataPath, store); err != nil {
		return ArticleRecord{}, false, err
	}
	return record, true, nil
}

func newRollbackCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rollback",
		Short: "Remove the most recent article entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, removed, err := runRollback(cfg.DataPath)
			if err != nil {
				return fmt.Errorf("rolling back: %w", err)
			}

			if !removed {
				logger.Info("No articles to roll back")
				return nil
			}
			logger.Info("Removed article",
				zap.Int("id", record.ID),
				zap.String("title", record.Title))
			return nil
		},
	}
}
