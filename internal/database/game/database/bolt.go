package database

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/bloops-games/wordday/internal/database"
	"github.com/bloops-games/wordday/internal/database/game/model"
	bolt "go.etcd.io/bbolt"
)

const (
	bucket      = "state"
	documentKey = "document"
)

var ErrCorrupted = fmt.Errorf("corrupted document")

func NewBolt(db *database.DB) *Bolt {
	return &Bolt{sDB: db}
}

type Bolt struct {
	sDB *database.DB
}

func (db *Bolt) Load(_ context.Context) (*model.Document, error) {
	var bytes []byte
	if err := db.sDB.DB.View(func(tx *bolt.Tx) error {
		b := tx.Bucket([]byte(bucket))
		if b == nil {
			return nil
		}

		if v := b.Get([]byte(documentKey)); v != nil {
			bytes = make([]byte, len(v))
			copy(bytes, v)
		}

		return nil
	}); err != nil {
		return nil, fmt.Errorf("view transaction error: %w", err)
	}

	if len(bytes) == 0 {
		return model.NewDocument(), nil
	}

	return decode(bytes)
}

func (db *Bolt) Save(_ context.Context, doc *model.Document) error {
	bytes, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshal: %w", err)
	}

	tx, err := db.sDB.DB.Begin(true)
	if err != nil {
		return fmt.Errorf("starting transaction: %w", err)
	}

	defer tx.Rollback() //nolint

	b, err := tx.CreateBucketIfNotExists([]byte(bucket))
	if err != nil {
		return fmt.Errorf("can not create bucket: %w", err)
	}

	if err := b.Put([]byte(documentKey), bytes); err != nil {
		return fmt.Errorf("put to bucket error: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing transaction: %w", err)
	}

	return nil
}
