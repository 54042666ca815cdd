package app

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/bloops-games/wordday/internal/chain"
	"github.com/bloops-games/wordday/internal/database"
	"github.com/bloops-games/wordday/internal/gemini"
	"github.com/bloops-games/wordday/internal/nostr"
	"github.com/bloops-games/wordday/internal/telegram"
	"github.com/bloops-games/wordday/internal/wordday"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	// Debug level logs
	Debug bool `envconfig:"WORDDAY_DEBUG" default:"false"`

	// How often the server runs a tick, the CLI runs exactly one
	TickInterval time.Duration `envconfig:"WORDDAY_TICK_INTERVAL" default:"10m"`

	// Port on which health check is launched
	Port string `envconfig:"WORDDAY_PORT" default:"1234"`

	// profile port
	ProfPort string `envconfig:"WORDDAY_PROF_PORT" default:"8888"`

	Game     wordday.Config
	Nostr    nostr.Config
	Gemini   gemini.Config
	Telegram telegram.Config
	Clock    chain.Config
	DB       database.Config
}

// Load reads envFiles into the environment when they exist, without overriding
// variables already set, then processes the environment into a Config.
func Load(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	var config Config
	if err := envconfig.Process("", &config); err != nil {
		return Config{}, fmt.Errorf("processing the config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return Config{}, err
	}

	return config, nil
}

func (c Config) Validate() error {
	if err := c.Game.Validate(); err != nil {
		return fmt.Errorf("game config: %w", err)
	}
	if c.Nostr.SecretKey == "" {
		return fmt.Errorf("WORDDAY_NOSTR_SECRET_KEY is required")
	}
	if len(c.Nostr.Relays) == 0 {
		return fmt.Errorf("at least one relay is required")
	}
	if c.TickInterval <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", c.TickInterval)
	}
	return nil
}
