package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	dataPath     string
	settingsPath string
	plainMode    bool
	verbose      bool

	// cfg is resolved before any subcommand runs
	cfg *Config
)

// newRootCmd builds the command tree. Binding the flags resets them to
// their defaults, so every tree starts clean.
func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "blog-admin",
		Short:         "Edit the blog's article index",
		Long:          `Interactive tools for maintaining data/articles.json, the article index the site renders.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			l, err := newLogger(verbose)
			if err != nil {
				return err
			}
			logger = l

			overrides := &ConfigOverrides{}
			if cmd.Flags().Changed("data") {
				overrides.DataPath = &dataPath
			}
			if cmd.Flags().Changed("settings") {
				overrides.SettingsPath = &settingsPath
			}

			cfg, err = NewConfig(overrides)
			return err
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Sync()
		},
	}

	rootCmd.PersistentFlags().StringVar(&dataPath, "data", "", "Path to articles.json (overrides settings and "+dataPathEnv+")")
	rootCmd.PersistentFlags().StringVar(&settingsPath, "settings", "", "Path to settings file (default "+GetConfigPath("settings.yaml")+")")
	rootCmd.PersistentFlags().BoolVar(&plainMode, "plain", false, "Use line-based prompts instead of the interactive tag list")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newAddArticleCmd(),
		newAddTagCmd(),
		newRollbackCmd(),
		newListCmd(),
		newImportCmd(),
		newMigrateCmd(),
	)

	return rootCmd
}

// newPrompter returns line prompts with --plain or when stdin is not a
// terminal, and the interactive tag list otherwise
func newPrompter(cmd *cobra.Command) Prompter {
	in := cmd.InOrStdin()
	if plainMode || !isTerminal(in) {
		return NewLinePrompter(in, cmd.OutOrStdout())
	}
	return NewTerminalPrompter(in, cmd.OutOrStdout())
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := newRootCmd().ExecuteContext(ctx)
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
