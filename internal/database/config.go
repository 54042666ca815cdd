package database

import "time"

const (
	DriverFile  = "file"
	DriverBolt  = "bolt"
	DriverRedis = "redis"
)

type Config struct {
	// Where the game document lives: file, bolt or redis
	Driver string `envconfig:"WORDDAY_DB_DRIVER" default:"file"`

	// JSON document path for the file driver
	FilePath string `envconfig:"WORDDAY_DB_FILE_PATH" default:"words.json"`

	// bbolt database path for the bolt driver
	BoltPath    string        `envconfig:"WORDDAY_DB_BOLT_PATH" default:"wordday.db"`
	BoltTimeout time.Duration `envconfig:"WORDDAY_DB_BOLT_TIMEOUT" default:"5s"`

	RedisAddr string `envconfig:"WORDDAY_DB_REDIS_ADDR" default:"localhost:6379"`
	RedisDB   int    `envconfig:"WORDDAY_DB_REDIS_DB" default:"0"`
	RedisKey  string `envconfig:"WORDDAY_DB_REDIS_KEY" default:"wordday:document"`
}
