package app

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/bloops-games/wordday/internal/database"
	"github.com/bloops-games/wordday/internal/nostr"
	"github.com/bloops-games/wordday/internal/wordday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) Config {
	t.Helper()

	return Config{
		TickInterval: time.Minute,
		Game:         wordday.DefaultConfig(),
		Nostr: nostr.Config{
			SecretKey:      testSecret,
			Relays:         []string{"ws://127.0.0.1:1"},
			PublishTimeout: time.Second,
			SeenCacheSize:  16,
		},
		DB: database.Config{
			Driver:   database.DriverFile,
			FilePath: filepath.Join(t.TempDir(), "words.json"),
		},
	}
}

func TestNew(t *testing.T) {
	t.Parallel()

	a, err := New(context.Background(), testConfig(t))
	require.NoError(t, err)
	require.NotNil(t, a.Manager)
	assert.Len(t, a.Self, 64)
	assert.NoError(t, a.Close())
}

func TestNewBadKey(t *testing.T) {
	t.Parallel()

	config := testConfig(t)
	config.Nostr.SecretKey = "nope"
	_, err := New(context.Background(), config)
	assert.Error(t, err)
}

func TestNewUnknownDriver(t *testing.T) {
	t.Parallel()

	config := testConfig(t)
	config.DB.Driver = "mongo"
	_, err := New(context.Background(), config)
	assert.Error(t, err)
}

type stubGenerator struct {
	word wordday.Word
	hint string
	err  error
}

func (s stubGenerator) Word(context.Context) (wordday.Word, error) { return s.word, s.err }

func (s stubGenerator) Hint(context.Context, string) (string, error) { return s.hint, s.err }

func TestFallback(t *testing.T) {
	t.Parallel()

	builtin := stubGenerator{word: wordday.Word{Word: "anchor"}, hint: "6 letters"}

	t.Run("primary_ok", func(t *testing.T) {
		t.Parallel()
		f := &fallback{primary: stubGenerator{word: wordday.Word{Word: "harbor"}, hint: "ships"}, secondary: builtin}

		w, err := f.Word(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "harbor", w.Word)

		h, err := f.Hint(context.Background(), "harbor")
		require.NoError(t, err)
		assert.Equal(t, "ships", h)
	})

	t.Run("primary_fails", func(t *testing.T) {
		t.Parallel()
		f := &fallback{primary: stubGenerator{err: fmt.Errorf("quota")}, secondary: builtin}

		w, err := f.Word(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "anchor", w.Word)

		h, err := f.Hint(context.Background(), "anchor")
		require.NoError(t, err)
		assert.Equal(t, "6 letters", h)
	})
}
