package telegram

import (
	"context"
	"fmt"
	"strconv"

	"github.com/bloops-games/wordday/internal/logging"
	"github.com/bloops-games/wordday/internal/wordday"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api"
)

var _ wordday.Publisher = (*Mirror)(nil)

type sender interface {
	Send(c tgbotapi.Chattable) (tgbotapi.Message, error)
}

// Mirror copies every game message to a Telegram channel. Its ids are never
// used to correlate replies.
type Mirror struct {
	tg      sender
	channel string
}

func New(config Config) (*Mirror, error) {
	bot, err := tgbotapi.NewBotAPI(config.BotToken)
	if err != nil {
		return nil, fmt.Errorf("tg new bot api: %w", err)
	}
	bot.Debug = config.Debug

	return &Mirror{tg: bot, channel: config.Channel}, nil
}

func (m *Mirror) Publish(ctx context.Context, msg wordday.Message) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	// plain text: redacted hints contain underscores markdown would eat
	out := tgbotapi.NewMessageToChannel(m.channel, msg.Content)
	out.DisableWebPagePreview = msg.Kind != wordday.KindPost

	sent, err := m.tg.Send(out)
	if err != nil {
		return "", fmt.Errorf("tg send to %s: %w", m.channel, err)
	}

	logging.FromContext(ctx).Named("telegram.Publish").Debugf("mirrored %s as %d", msg.Kind, sent.MessageID)

	return strconv.Itoa(sent.MessageID), nil
}
