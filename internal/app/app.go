package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/bloops-games/wordday/internal/broadcast"
	"github.com/bloops-games/wordday/internal/cache/cachelru"
	"github.com/bloops-games/wordday/internal/chain"
	gamedb "github.com/bloops-games/wordday/internal/database/game/database"
	"github.com/bloops-games/wordday/internal/gemini"
	"github.com/bloops-games/wordday/internal/logging"
	"github.com/bloops-games/wordday/internal/nostr"
	"github.com/bloops-games/wordday/internal/telegram"
	"github.com/bloops-games/wordday/internal/wordday"
	"github.com/bloops-games/wordday/internal/words"
)

// App is the wired game: a tick manager and the resources it holds.
type App struct {
	Manager *wordday.Manager
	Self    string

	closers []func() error
}

func New(ctx context.Context, config Config) (*App, error) {
	logger := logging.FromContext(ctx).Named("app.New")

	keys, err := nostr.ParseKeys(config.Nostr.SecretKey)
	if err != nil {
		return nil, fmt.Errorf("nostr keys: %w", err)
	}
	logger.Infof("posting as %s", nostr.Mention(keys.PublicKey()))

	verified, err := cachelru.NewLRU(config.Nostr.SeenCacheSize)
	if err != nil {
		return nil, fmt.Errorf("can not create lru cache: %w", err)
	}

	primary, err := nostr.NewPublisher(keys, config.Nostr.Relays, config.Nostr.PublishTimeout)
	if err != nil {
		return nil, fmt.Errorf("nostr publisher: %w", err)
	}

	replies, err := nostr.NewReplySource(config.Nostr.Relays, config.Game.ReplyWindow(), verified)
	if err != nil {
		return nil, fmt.Errorf("nostr reply source: %w", err)
	}

	var mirrors []wordday.Publisher
	if config.Telegram.Enabled() {
		mirror, err := telegram.New(config.Telegram)
		if err != nil {
			// the mirror is optional, the game runs on nostr alone
			logger.Warnf("telegram mirror disabled: %v", err)
		} else {
			mirrors = append(mirrors, mirror)
		}
	}

	var gen generator = words.New(nil)
	if config.Gemini.Enabled() {
		g, err := gemini.NewSource(ctx, config.Gemini)
		if err != nil {
			return nil, fmt.Errorf("gemini source: %w", err)
		}
		gen = &fallback{primary: g, secondary: gen}
	}

	engine, err := wordday.NewEngine(config.Game, wordday.Deps{
		Words:     gen,
		Hints:     gen,
		Publisher: broadcast.New(primary, mirrors...),
		Replies:   replies,
		Self:      keys.PublicKey(),
		Mention:   nostr.Mention,
	})
	if err != nil {
		return nil, fmt.Errorf("new engine: %w", err)
	}

	store, closeStore, err := gamedb.Open(ctx, &config.DB)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}

	return &App{
		Manager: wordday.NewManager(engine, chain.NewClock(config.Clock), store),
		Self:    keys.PublicKey(),
		closers: []func() error{closeStore},
	}, nil
}

func (a *App) Close() error {
	var errs []error
	for _, c := range a.closers {
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}
