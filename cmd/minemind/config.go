package main

import (
	"fmt"

	"github.com/spf13/viper"

	"github.com/hupe1980/minemind/strategy"
)

// Config is the full CLI configuration, populated from (in order of
// precedence) flags, MINEMIND_* environment variables and the optional
// config file.
type Config struct {
	Board    BoardConfig `mapstructure:"board"`
	Games    int         `mapstructure:"games"`
	Strategy string      `mapstructure:"strategy"`
	Risk     RiskConfig  `mapstructure:"risk"`
	Seed     int64       `mapstructure:"seed"`
	Database string      `mapstructure:"database"`
	Log      LogConfig   `mapstructure:"log"`
}

// BoardConfig describes the boards to generate. Density, when positive,
// overrides Mines as a fraction of the board area.
type BoardConfig struct {
	Width   int     `mapstructure:"width"`
	Height  int     `mapstructure:"height"`
	Mines   int     `mapstructure:"mines"`
	Density float64 `mapstructure:"density"`
}

// MineCount resolves the effective number of mines per board.
func (b BoardConfig) MineCount() int {
	if b.Density > 0 {
		return int(b.Density * float64(b.Width*b.Height))
	}
	return b.Mines
}

// RiskConfig tunes the random-move fallback.
type RiskConfig struct {
	Policy string `mapstructure:"policy"` // "max" or "mean"
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"` // "json" or "console"
}

func setConfigDefaults() {
	viper.SetDefault("board.width", 9)
	viper.SetDefault("board.height", 9)
	viper.SetDefault("board.mines", 10)
	viper.SetDefault("board.density", 0.0)
	viper.SetDefault("games", 100)
	viper.SetDefault("strategy", strategy.NameFIFO)
	viper.SetDefault("risk.policy", "max")
	viper.SetDefault("seed", 0)
	viper.SetDefault("database", "")
	viper.SetDefault("log.level", "info")
	viper.SetDefault("log.format", "console")
}

// Validate rejects configurations the runner would choke on.
func (c *Config) Validate() error {
	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		return fmt.Errorf("invalid board dimensions %dx%d", c.Board.Width, c.Board.Height)
	}
	if c.Board.Density < 0 || c.Board.Density >= 1 {
		return fmt.Errorf("mine density %g out of range [0, 1)", c.Board.Density)
	}
	if mines := c.Board.MineCount(); mines < 0 || mines >= c.Board.Width*c.Board.Height {
		return fmt.Errorf("mine count %d out of range for %dx%d board", mines, c.Board.Width, c.Board.Height)
	}
	if c.Games <= 0 {
		return fmt.Errorf("games must be positive, got %d", c.Games)
	}
	if _, err := riskPolicy(c.Risk.Policy); err != nil {
		return err
	}
	return nil
}

func riskPolicy(name string) (strategy.Policy, error) {
	switch name {
	case "max", "":
		return strategy.PolicyMax, nil
	case "mean":
		return strategy.PolicyMean, nil
	default:
		return strategy.PolicyMax, fmt.Errorf("unknown risk policy %q (want max or mean)", name)
	}
}
