package nostr

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/bloops-games/wordday/internal/logging"
	"github.com/bloops-games/wordday/internal/wordday"
	"golang.org/x/sync/errgroup"
)

var ErrNoRelays = fmt.Errorf("no relays configured")

var _ wordday.Publisher = (*Publisher)(nil)

// Publisher signs a message once and sends it to every relay. A publish
// succeeds when at least one relay accepted the event.
type Publisher struct {
	keys    *Keys
	relays  []string
	timeout time.Duration
	now     func() time.Time
}

func NewPublisher(keys *Keys, relays []string, timeout time.Duration) (*Publisher, error) {
	if len(relays) == 0 {
		return nil, ErrNoRelays
	}

	return &Publisher{keys: keys, relays: relays, timeout: timeout, now: time.Now}, nil
}

func (p *Publisher) Publish(ctx context.Context, msg wordday.Message) (string, error) {
	logger := logging.FromContext(ctx).Named("nostr.Publish")

	ev := p.event(msg)
	if err := ev.Sign(p.keys); err != nil {
		return "", fmt.Errorf("sign event: %w", err)
	}

	deadline := p.now().Add(p.timeout)
	errs := make([]error, len(p.relays))

	g, gctx := errgroup.WithContext(ctx)
	for i, url := range p.relays {
		i, url := i, url
		g.Go(func() error {
			errs[i] = publishTo(gctx, url, ev, deadline)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i, err := range errs {
		if err != nil {
			failed++
			logger.Warnf("relay %s: %v", p.relays[i], err)
		}
	}

	if failed == len(p.relays) {
		return "", fmt.Errorf("every relay failed: %w", errors.Join(errs...))
	}

	logger.Infow("event published", "id", ev.ID, "kind", msg.Kind.String(), "relays", len(p.relays)-failed)

	return ev.ID, nil
}

func (p *Publisher) event(msg wordday.Message) *Event {
	tags := make([]Tag, 0, 1+len(msg.Mentions))
	if msg.CorrelatesWith != "" {
		tags = append(tags, Tag{"e", msg.CorrelatesWith})
	}
	for _, m := range msg.Mentions {
		tags = append(tags, Tag{"p", m})
	}

	return &Event{
		CreatedAt: p.now().Unix(),
		Kind:      KindTextNote,
		Tags:      tags,
		Content:   msg.Content,
	}
}

func publishTo(ctx context.Context, url string, ev *Event, deadline time.Time) error {
	dctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	r, err := Dial(dctx, url)
	if err != nil {
		return err
	}
	defer r.Close()

	return r.Publish(dctx, ev, deadline)
}
