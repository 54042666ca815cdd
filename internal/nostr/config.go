package nostr

import "time"

type Config struct {
	// nsec1... or 64 hex chars
	SecretKey string `envconfig:"WORDDAY_NOSTR_SECRET_KEY"`

	// Comma separated relay urls
	Relays []string `envconfig:"WORDDAY_NOSTR_RELAYS" default:"wss://relay.damus.io"`

	// How long to wait for a relay to acknowledge a published event
	PublishTimeout time.Duration `envconfig:"WORDDAY_NOSTR_PUBLISH_TIMEOUT" default:"10s"`

	// Reply ids remembered to drop duplicates across relays
	SeenCacheSize int `envconfig:"WORDDAY_NOSTR_SEEN_CACHE_SIZE" default:"4096"`
}
