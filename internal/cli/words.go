package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordlegame/internal/factory"
	"github.com/mcoot/wordlegame/internal/model"
)

func newConfigCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "config",
		Short: "Show game dimensions and resolved settings",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			letters, guesses := model.DefaultConfig().Values()

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(ConfigResult{
				NumLetters: letters,
				NumGuesses: guesses,
				Lang:       cfg.Lang,
				WordsDir:   cfg.WordsDir,
				LogLevel:   cfg.Level().String(),
			})
			return nil
		},
	}
}

func newWordsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "words",
		Short: "Show the word list for the selected language",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := cfg.Language()
			if err != nil {
				return err
			}

			app := factory.New(factory.Config{Logger: logger})
			words := app.WordStore.GetWords(cfg.WordsDir, lang)

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(WordsResult{
				Lang:  lang.Code(),
				Path:  app.WordStore.Path(cfg.WordsDir, lang),
				Count: len(words),
			})
			return nil
		},
	}
}

func newPickCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "pick",
		Short: "Print a random word from the word list",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := cfg.Language()
			if err != nil {
				return err
			}

			appCfg := factory.Config{Logger: logger}
			if cmd.Flags().Changed("seed") {
				appCfg.Seed = &seed
			}
			app := factory.New(appCfg)

			words := app.WordStore.GetWords(cfg.WordsDir, lang)
			word, ok := app.Picker.Pick(words)
			if !ok {
				return fmt.Errorf("%s: %w", app.WordStore.Path(cfg.WordsDir, lang), model.ErrNoWords)
			}

			out := NewOutput(cfg.Output, cmd.OutOrStdout())
			out.Print(PickResult{Lang: lang.Code(), Word: word})
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible pick")

	return cmd
}
