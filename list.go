package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	idStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#8BC34A")).Width(5).Align(lipgloss.Right)
	dateStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#6c757d")).Width(12)
	titleStyle = lipgloss.NewStyle().Bold(true)
	tagStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#2196F3"))
)

// renderArticleList lists articles by ascending id, optionally followed by
// the tag vocabulary
func renderArticleList(store *ArticleStore, showTags bool) (string, error) {
	ids, err := store.IDs()
	if err != nil {
		return "", err
	}

	var b strings.Builder
	if len(ids) == 0 {
		b.WriteString("No articles.\n")
	}
	for _, id := range ids {
		record := store.Articles[strconv.Itoa(id)]
		line := lipgloss.JoinHorizontal(lipgloss.Top,
			idStyle.Render(strconv.Itoa(id)), "  ",
			dateStyle.Render(record.Date),
			titleStyle.Render(record.Title))
		if len(record.Tags) > 0 {
			line += "  " + tagStyle.Render("["+strings.Join(record.Tags, ", ")+"]")
		}
		b.WriteString(line + "\n")
	}

	if showTags {
		fmt.Fprintf(&b, "\nTags (%d): %s\n", len(store.Tags),
			tagStyle.Render(strings.Join(store.Tags, ", ")))
	}

	return b.String(), nil
}

func newListCmd() *cobra.Command {
	var showTags bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List articles in id order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := LoadStore(cfg.DataPath)
			if err != nil {
				return err
			}

			out, err := renderArticleList(store, showTags)
			if err != nil {
				return err
			}
			fmt.Fprint(cmd.OutOrStdout(), out)
			return nil
		},
	}
	cmd.Flags().BoolVar(&showTags, "tags", false, "Also print the tag vocabulary")

	return cmd
}
