package main

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/hupe1980/minemind/logging"
	"github.com/hupe1980/minemind/runner"
	"github.com/hupe1980/minemind/stats"
	"github.com/hupe1980/minemind/strategy"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play a batch of simulated games and report the results",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		policy, err := riskPolicy(cfg.Risk.Policy)
		if err != nil {
			return err
		}

		mines := cfg.Board.MineCount()

		seed := cfg.Seed
		if seed == 0 {
			seed = time.Now().UnixNano()
		}

		var store *stats.Store
		if cfg.Database != "" {
			store, err = stats.OpenStore(cfg.Database)
			if err != nil {
				return err
			}
			defer store.Close()
		}

		logger.Info("Starting batch",
			zap.Int("games", cfg.Games),
			zap.String("strategy", cfg.Strategy),
			zap.String("risk_policy", policy.String()),
			zap.Int("width", cfg.Board.Width),
			zap.Int("height", cfg.Board.Height),
			zap.Int("mines", mines),
			zap.Int64("seed", seed),
		)

		r := runner.New(func(o *runner.Options) {
			o.SafeStrategy = cfg.Strategy
			o.RiskPolicy = policy
			o.Rand = rand.New(rand.NewSource(seed))
			o.Store = store
			o.Logger = logging.NewZapAdapter(logger)
		})

		start := time.Now()
		outcomes, err := r.PlayMany(cfg.Games, cfg.Board.Width, cfg.Board.Height, mines)
		if err != nil {
			return err
		}

		printBatchSummary(outcomes, time.Since(start))
		return nil
	},
}

func printBatchSummary(outcomes []*runner.Outcome, elapsed time.Duration) {
	var wins, moves, guesses, inferences int
	for _, out := range outcomes {
		if out.Won {
			wins++
		}
		moves += out.Moves
		guesses += out.Guesses
		inferences += out.Inference.InferencesTotal
	}
	games := len(outcomes)

	fmt.Printf("strategy:    %s\n", outcomes[0].Strategy)
	fmt.Printf("games:       %d\n", games)
	fmt.Printf("wins:        %d (%.1f%%)\n", wins, 100*float64(wins)/float64(games))
	fmt.Printf("avg moves:   %.1f\n", float64(moves)/float64(games))
	fmt.Printf("avg guesses: %.1f\n", float64(guesses)/float64(games))
	fmt.Printf("inferences:  %d\n", inferences)
	fmt.Printf("elapsed:     %s\n", elapsed.Round(time.Millisecond))
}

func init() {
	playCmd.Flags().Int("games", 0, "number of games to play")
	playCmd.Flags().Int("width", 0, "board width")
	playCmd.Flags().Int("height", 0, "board height")
	playCmd.Flags().Int("mines", 0, "mines per board")
	playCmd.Flags().Float64("density", 0, "mine density in [0, 1), overrides --mines")
	playCmd.Flags().String("strategy", "", fmt.Sprintf("safe-cell strategy (%v)", strategy.Names()))
	playCmd.Flags().String("risk-policy", "", "risk aggregation policy (max or mean)")
	playCmd.Flags().Int64("seed", 0, "random seed (0 seeds from the clock)")

	must(viper.BindPFlag("games", playCmd.Flags().Lookup("games")))
	must(viper.BindPFlag("board.width", playCmd.Flags().Lookup("width")))
	must(viper.BindPFlag("board.height", playCmd.Flags().Lookup("height")))
	must(viper.BindPFlag("board.mines", playCmd.Flags().Lookup("mines")))
	must(viper.BindPFlag("board.density", playCmd.Flags().Lookup("density")))
	must(viper.BindPFlag("strategy", playCmd.Flags().Lookup("strategy")))
	must(viper.BindPFlag("risk.policy", playCmd.Flags().Lookup("risk-policy")))
	must(viper.BindPFlag("seed", playCmd.Flags().Lookup("seed")))

	rootCmd.AddCommand(playCmd)
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}
