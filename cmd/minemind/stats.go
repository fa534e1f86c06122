package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hupe1980/minemind/stats"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Summarise recorded games per strategy",
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Database == "" {
			return fmt.Errorf("no database configured, pass --db or set database in the config file")
		}

		store, err := stats.OpenStore(cfg.Database)
		if err != nil {
			return err
		}
		defer store.Close()

		summaries, err := store.StrategySummaries()
		if err != nil {
			return err
		}

		if len(summaries) == 0 {
			fmt.Println("no recorded games")
			return nil
		}

		fmt.Printf("%-10s %8s %8s %10s %12s\n", "strategy", "games", "wins", "win rate", "avg guesses")
		for _, s := range summaries {
			fmt.Printf("%-10s %8d %8d %9.1f%% %12.1f\n", s.Strategy, s.Games, s.Wins, 100*s.WinRate, s.AvgGuesses)
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(statsCmd)
}
