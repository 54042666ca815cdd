package nostr

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bloops-games/wordday/internal/cache"
	"github.com/bloops-games/wordday/internal/logging"
	"github.com/bloops-games/wordday/internal/wordday"
	"golang.org/x/sync/errgroup"
)

var _ wordday.ReplySource = (*ReplySource)(nil)

// ReplySource collects kind 1 notes tagging a message from every relay for a
// bounded window.
type ReplySource struct {
	relays   []string
	window   time.Duration
	verified cache.Cache
	now      func() time.Time
}

// NewReplySource takes the cache of event ids whose signature was already
// checked, relays deliver the same replies again on every tick.
func NewReplySource(relays []string, window time.Duration, verified cache.Cache) (*ReplySource, error) {
	if len(relays) == 0 {
		return nil, ErrNoRelays
	}

	return &ReplySource{relays: relays, window: window, verified: verified, now: time.Now}, nil
}

func (s *ReplySource) Replies(ctx context.Context, messageID string, since int64) ([]wordday.Reply, error) {
	logger := logging.FromContext(ctx).Named("nostr.Replies").With("messageId", messageID)

	filter := Filter{Kinds: []int{KindTextNote}, E: []string{messageID}, Since: since}
	deadline := s.now().Add(s.window)

	results := make([][]*Event, len(s.relays))
	errs := make([]error, len(s.relays))

	g, gctx := errgroup.WithContext(ctx)
	for i, url := range s.relays {
		i, url := i, url
		g.Go(func() error {
			results[i], errs[i] = queryFrom(gctx, url, filter, deadline)
			return nil
		})
	}
	_ = g.Wait()

	var failed int
	for i, err := range errs {
		if err != nil {
			failed++
			logger.Warnf("relay %s: %v", s.relays[i], err)
		}
	}
	if failed == len(s.relays) {
		return nil, fmt.Errorf("every relay failed: %w", errors.Join(errs...))
	}

	var replies []wordday.Reply
	dup := make(map[string]struct{})
	for _, events := range results {
		for _, ev := range events {
			if _, ok := dup[ev.ID]; ok {
				continue
			}
			if ev.Kind != KindTextNote || !ev.Refers(messageID) || ev.CreatedAt < since {
				continue
			}
			if err := s.verify(ev); err != nil {
				logger.Warnf("drop event %s: %v", ev.ID, err)
				continue
			}
			dup[ev.ID] = struct{}{}

			replies = append(replies, wordday.Reply{
				ID:        ev.ID,
				AuthorID:  strings.ToLower(ev.PubKey),
				Content:   ev.Content,
				Timestamp: ev.CreatedAt,
			})
		}
	}

	return replies, nil
}

// verify always recomputes the id, only the schnorr check is cached.
func (s *ReplySource) verify(ev *Event) error {
	if err := ev.CheckID(); err != nil {
		return err
	}

	key := ev.ID + ev.Sig
	if _, ok := s.verified.Get(key); ok {
		return nil
	}
	if err := ev.CheckSignature(); err != nil {
		return err
	}
	s.verified.Add(key, struct{}{})
	return nil
}

// closeGrace leaves room to send CLOSE after the read deadline has passed.
const closeGrace = 500 * time.Millisecond

func queryFrom(ctx context.Context, url string, filter Filter, deadline time.Time) ([]*Event, error) {
	dctx, cancel := context.WithDeadline(ctx, deadline.Add(closeGrace))
	defer cancel()

	r, err := Dial(dctx, url)
	if err != nil {
		return nil, err
	}
	defer r.Close()

	return r.Query(dctx, filter, deadline)
}
