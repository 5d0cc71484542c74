package cli

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

var (
	cfg    *Config
	logger *slog.Logger
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cfg = DefaultConfig()

	rootCmd := &cobra.Command{
		Use:   "wordle",
		Short: "Guess the five letter word in six tries",
		Long: `wordle is a terminal word-guessing game.

A secret word is picked from the word list of the selected language. After
each guess every letter is colored: green if it is in the right place,
yellow if the word contains it elsewhere, grey if it is not in the word.
End input (Ctrl-D) to give up and reveal the word.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cfg.Resolve(cmd.Flags().Changed); err != nil {
				return err
			}

			logger = slog.New(slog.NewJSONHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
				Level: cfg.Level(),
			}))
			return nil
		},
		SilenceUsage: true,
	}

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
	rootCmd.PersistentFlags().StringVar(&cfg.WordsDir, "words-dir", cfg.WordsDir, "Word list folder (env: WORDLE_WORDS_DIR)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Lang, "lang", "l", cfg.Lang, "Word list language: en, es (env: WORDLE_LANG)")
	rootCmd.PersistentFlags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "Output format: text, json")
	rootCmd.PersistentFlags().BoolVarP(&cfg.Verbose, "verbose", "v", cfg.Verbose, "Verbose output")

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd())
	rootCmd.AddCommand(newConfigCmd())
	rootCmd.AddCommand(newWordsCmd())
	rootCmd.AddCommand(newPickCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
