package wordday

import (
	"fmt"
	"time"
)

type Config struct {
	// Blocks between two rounds, one day of bitcoin blocks by default
	RoundInterval int64 `envconfig:"WORDDAY_ROUND_INTERVAL" default:"144"`

	// Blocks between two hints of the same round
	HintInterval int64 `envconfig:"WORDDAY_HINT_INTERVAL" default:"21"`

	// Upper bound of hints per round, 0 keeps posting hints until someone wins
	MaxHints int `envconfig:"WORDDAY_MAX_HINTS" default:"0"`

	// How long replies are collected from each relay
	ReplyWindowSeconds int `envconfig:"WORDDAY_REPLY_WINDOW_SECONDS" default:"5"`

	// substring or explicit-guess-token
	WinPredicate string `envconfig:"WORDDAY_WIN_PREDICATE" default:"substring"`

	// Publish the top N of the leaderboard after every win, 0 disables it
	LeaderboardTop int `envconfig:"WORDDAY_LEADERBOARD_TOP" default:"0"`
}

func DefaultConfig() Config {
	return Config{
		RoundInterval:      144,
		HintInterval:       21,
		ReplyWindowSeconds: 5,
		WinPredicate:       PredicateSubstring,
	}
}

func (c Config) ReplyWindow() time.Duration {
	return time.Duration(c.ReplyWindowSeconds) * time.Second
}

func (c Config) Validate() error {
	if c.RoundInterval <= 0 {
		return fmt.Errorf("round interval must be positive, got %d", c.RoundInterval)
	}
	if c.HintInterval <= 0 {
		return fmt.Errorf("hint interval must be positive, got %d", c.HintInterval)
	}
	if c.MaxHints < 0 {
		return fmt.Errorf("max hints must not be negative, got %d", c.MaxHints)
	}
	if c.LeaderboardTop < 0 {
		return fmt.Errorf("leaderboard top must not be negative, got %d", c.LeaderboardTop)
	}
	if c.ReplyWindowSeconds <= 0 {
		return fmt.Errorf("reply window must be positive, got %d", c.ReplyWindowSeconds)
	}
	if _, err := PredicateByName(c.WinPredicate); err != nil {
		return err
	}
	return nil
}
