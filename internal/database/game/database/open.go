package database

import (
	"context"
	"fmt"

	"github.com/bloops-games/wordday/internal/database"
	"github.com/bloops-games/wordday/internal/database/game/model"
	"github.com/bloops-games/wordday/internal/logging"
	"github.com/redis/go-redis/v9"
)

type Store interface {
	Load(ctx context.Context) (*model.Document, error)
	Save(ctx context.Context, doc *model.Document) error
}

var (
	_ Store = (*File)(nil)
	_ Store = (*Bolt)(nil)
	_ Store = (*Redis)(nil)
)

// Open builds the store selected by config.Driver. The returned close func releases
// whatever connection the driver holds.
func Open(ctx context.Context, config *database.Config) (Store, func() error, error) {
	logger := logging.FromContext(ctx).Named("database.Open")
	logger.Infof("using %s document store", config.Driver)

	switch config.Driver {
	case database.DriverFile, "":
		return NewFile(config.FilePath), func() error { return nil }, nil
	case database.DriverBolt:
		db, err := database.NewFromEnv(ctx, config)
		if err != nil {
			return nil, nil, fmt.Errorf("new database from env: %w", err)
		}
		return NewBolt(db), func() error { return db.Close(ctx) }, nil
	case database.DriverRedis:
		rdb := redis.NewClient(&redis.Options{Addr: config.RedisAddr, DB: config.RedisDB})
		if err := rdb.Ping(ctx).Err(); err != nil {
			_ = rdb.Close()
			return nil, nil, fmt.Errorf("redis ping (%s db=%d): %w", config.RedisAddr, config.RedisDB, err)
		}
		return NewRedis(rdb, config.RedisKey), rdb.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown db driver %q", config.Driver)
	}
}
