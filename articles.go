package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// ArticleAnswers holds the answers given to the add-article questions
type ArticleAnswers struct {
	DirectoryName string
	Title         string
	Subtitle      string
	CoverPhoto    string
	Tags          []string
	DateCreated   string
	PublishURL    string
}

// askArticleQuestions asks the add-article questions in order. Tags can
// only be picked from the existing vocabulary.
func askArticleQuestions(p Prompter, vocabulary []string) (*ArticleAnswers, error) {
	var a ArticleAnswers
	var err error

	inputs := []struct {
		message string
		dest    *string
	}{
		{"Name of the directory where article is located", &a.DirectoryName},
		{"What is the title of the article?", &a.Title},
		{"What is the subtitle of the article?", &a.Subtitle},
		{"Name of cover photo including extension", &a.CoverPhoto},
	}
	for _, q := range inputs {
		if *q.dest, err = p.Input(q.message); err != nil {
			return nil, err
		}
	}

	if a.Tags, err = p.Checkbox("What tags?", vocabulary); err != nil {
		return nil, err
	}

	if a.DateCreated, err = p.Input("When was it created? (yyyy-mm-dd)"); err != nil {
		return nil, err
	}
	if a.PublishURL, err = p.Input("Where was it originally published?"); err != nil {
		return nil, err
	}

	return &a, nil
}

// NewArticleRecord builds the record for id, deriving path and cover from
// the directory and cover photo names
func NewArticleRecord(id int, a *ArticleAnswers) ArticleRecord {
	path := fmt.Sprintf("articles/%s/", a.DirectoryName)

	tags := make([]string, len(a.Tags))
	copy(tags, a.Tags)

	return ArticleRecord{
		ID:        id,
		Path:      path,
		Cover:     path + "images/" + a.CoverPhoto,
		Title:     a.Title,
		Subtitle:  a.Subtitle,
		Tags:      tags,
		Date:      a.DateCreated,
		Published: a.PublishURL,
	}
}

// AddArticle inserts a new record under the next free id
func AddArticle(store *ArticleStore, a *ArticleAnswers) (ArticleRecord, error) {
	id, err := store.NextID()
	if err != nil {
		return ArticleRecord{}, err
	}

	record := NewArticleRecord(id, a)
	if store.Articles == nil {
		store.Articles = Articles{}
	}
	store.Articles[strconv.Itoa(id)] = record

	return record, nil
}

// runAddArticle loads the store, asks the questions, and saves the store
// with the new record. Nothing is written unless every step succeeds.
func runAddArticle(dataPath string, p Prompter) (ArticleRecord, error) {
	store, err := LoadStore(dataPath)
	if err != nil {
		return ArticleRecord{}, err
	}

	// Fail before asking anything if no id can be assigned
	if _, err := store.NextID(); err != nil {
		return ArticleRecord{}, err
	}

	answers, err := askArticleQuestions(p, store.Tags)
	if err != nil {
		return ArticleRecord{}, err
	}

	record, err := AddArticle(store, answers)
	if err != nil {
		return ArticleRecord{}, err
	}

	if err := SaveStore(dataPath, store); err != nil {
		return ArticleRecord{}, err
	}

	return record, nil
}

func newAddArticleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "add-article",
		Short: "Add an article entry",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			record, err := runAddArticle(cfg.DataPath, newPrompter(cmd))
			if err != nil {
				return fmt.Errorf("adding article: %w", err)
			}

			logger.Info("Added article",
				zap.Int("id", record.ID),
				zap.String("title", record.Title),
				zap.String("path", record.Path))
			return nil
		},
	}
}
