package telegram

type Config struct {
	// Telegram bot token, the mirror is off when empty
	BotToken string `envconfig:"WORDDAY_TELEGRAM_BOT_TOKEN"`

	// Channel username (@name) the bot posts to, the bot must be an admin there
	Channel string `envconfig:"WORDDAY_TELEGRAM_CHANNEL"`

	// Logging all requests and responses from telegram
	Debug bool `envconfig:"WORDDAY_TELEGRAM_DEBUG" default:"false"`
}

func (c Config) Enabled() bool {
	return c.BotToken != "" && c.Channel != ""
}
