package app

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/bloops-games/wordday/internal/database"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "0000000000000000000000000000000000000000000000000000000000000003"

func TestLoadDefaults(t *testing.T) {
	t.Setenv("WORDDAY_NOSTR_SECRET_KEY", testSecret)

	config, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, int64(144), config.Game.RoundInterval)
	assert.Equal(t, int64(21), config.Game.HintInterval)
	assert.Equal(t, 5*time.Second, config.Game.ReplyWindow())
	assert.Equal(t, "substring", config.Game.WinPredicate)
	assert.Equal(t, 10*time.Minute, config.TickInterval)
	assert.Equal(t, []string{"wss://relay.damus.io"}, config.Nostr.Relays)
	assert.Equal(t, database.DriverFile, config.DB.Driver)
	assert.Equal(t, "words.json", config.DB.FilePath)
	assert.Equal(t, "https://blockchain.info/q/getblockcount", config.Clock.URL)
	assert.False(t, config.Gemini.Enabled())
	assert.False(t, config.Telegram.Enabled())
}

func TestLoadEnvFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	content := "WORDDAY_NOSTR_SECRET_KEY=" + testSecret + "\n" +
		"WORDDAY_NOSTR_RELAYS=wss://a.example,wss://b.example\n" +
		"WORDDAY_ROUND_INTERVAL=10\n" +
		"WORDDAY_WIN_PREDICATE=explicit-guess-token\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	// godotenv leaves variables that are already set alone
	t.Setenv("WORDDAY_ROUND_INTERVAL", "20")
	t.Cleanup(func() {
		_ = os.Unsetenv("WORDDAY_NOSTR_SECRET_KEY")
		_ = os.Unsetenv("WORDDAY_NOSTR_RELAYS")
		_ = os.Unsetenv("WORDDAY_WIN_PREDICATE")
	})

	config, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, []string{"wss://a.example", "wss://b.example"}, config.Nostr.Relays)
	assert.Equal(t, int64(20), config.Game.RoundInterval)
	assert.Equal(t, "explicit-guess-token", config.Game.WinPredicate)
}

func TestLoadRequiresSecretKey(t *testing.T) {
	t.Setenv("WORDDAY_NOSTR_SECRET_KEY", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoadRejectsUnknownPredicate(t *testing.T) {
	t.Setenv("WORDDAY_NOSTR_SECRET_KEY", testSecret)
	t.Setenv("WORDDAY_WIN_PREDICATE", "regex")

	_, err := Load()
	assert.Error(t, err)
}
