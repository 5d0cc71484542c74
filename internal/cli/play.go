package cli

import (
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/wordlegame/internal/dependencies/console"
	"github.com/mcoot/wordlegame/internal/factory"
	"github.com/mcoot/wordlegame/internal/model"
)

func newPlayCmd() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play one round",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			lang, err := cfg.Language()
			if err != nil {
				return err
			}

			appCfg := factory.Config{
				Logger: logger,
				In:     cmd.InOrStdin(),
				Out:    cmd.OutOrStdout(),
				Console: console.Config{
					Width:   cfg.Width,
					NoColor: cfg.NoColor,
					Theme:   console.DefaultTheme(),
				},
			}
			if cmd.Flags().Changed("seed") {
				appCfg.Seed = &seed
			}
			app := factory.New(appCfg)

			// Interrupting ends the round and reveals the word
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			round, err := app.GameController.NewRound(ctx, cfg.WordsDir, lang)
			if err != nil {
				return err
			}

			err = app.GameController.PlayRound(ctx, app.Console, round, model.Alphabet)
			if errors.Is(err, model.ErrInputClosed) || errors.Is(err, model.ErrInterrupted) {
				// Giving up still reveals the word; not a failure
				return nil
			}
			return err
		},
	}

	cmd.Flags().IntVar(&cfg.Width, "width", cfg.Width, "Console width (env: WORDLE_CONSOLE_WIDTH)")
	cmd.Flags().BoolVar(&cfg.NoColor, "no-color", cfg.NoColor, "Disable colors (env: WORDLE_NO_COLOR)")
	cmd.Flags().Uint64Var(&seed, "seed", 0, "Seed for a reproducible secret word")

	return cmd
}
