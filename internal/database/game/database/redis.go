package database

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/bloops-games/wordday/internal/database/game/model"
	"github.com/redis/go-redis/v9"
)

// Redis stores the document under a single key without expiry.
type Redis struct {
	rdb *redis.Client
	key string
}

func NewRedis(rdb *redis.Client, key string) *Redis {
	return &Redis{rdb: rdb, key: key}
}

func (s *Redis) Load(ctx context.Context) (*model.Document, error) {
	val, err := s.rdb.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return model.NewDocument(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("redis get %s: %w", s.key, err)
	}

	return decode(val)
}

func (s *Redis) Save(ctx context.Context, doc *model.Document) error {
	b, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	if err := s.rdb.Set(ctx, s.key, b, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", s.key, err)
	}

	return nil
}
