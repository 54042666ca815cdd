package broadcast

import (
	"context"

	"github.com/bloops-games/wordday/internal/logging"
	"github.com/bloops-games/wordday/internal/wordday"
	"golang.org/x/sync/errgroup"
)

var _ wordday.Publisher = (*Fanout)(nil)

// Fanout publishes to the primary and every mirror at once and waits for all of
// them. Only the primary decides the result; mirror failures are logged.
type Fanout struct {
	Primary wordday.Publisher
	Mirrors []wordday.Publisher
}

func New(primary wordday.Publisher, mirrors ...wordday.Publisher) *Fanout {
	return &Fanout{Primary: primary, Mirrors: mirrors}
}

func (f *Fanout) Publish(ctx context.Context, msg wordday.Message) (string, error) {
	if len(f.Mirrors) == 0 {
		return f.Primary.Publish(ctx, msg)
	}

	logger := logging.FromContext(ctx).Named("broadcast.Publish")

	var (
		id  string
		err error
	)

	// plain Group: a failing mirror must not cancel the primary
	var g errgroup.Group
	g.Go(func() error {
		id, err = f.Primary.Publish(ctx, msg)
		return nil
	})
	for i, m := range f.Mirrors {
		i, m := i, m
		g.Go(func() error {
			if _, merr := m.Publish(ctx, msg); merr != nil {
				logger.Warnf("mirror %d: %v", i, merr)
			}
			return nil
		})
	}
	_ = g.Wait()

	return id, err
}
