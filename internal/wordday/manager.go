package wordday

import (
	"context"
	"fmt"
	"time"

	"github.com/bloops-games/wordday/internal/logging"
	"github.com/google/uuid"
)

func NewManager(engine *Engine, clock Clock, store Store) *Manager {
	return &Manager{
		engine: engine,
		clock:  clock,
		store:  store,
		now:    time.Now,
	}
}

// Manager runs ticks: load the document, read the clock, schedule, advance the
// open rounds and save the document once. A tick owns the document for its whole
// duration, ticks must not overlap.
type Manager struct {
	engine *Engine
	clock  Clock
	store  Store
	now    func() time.Time
}

// Tick runs exactly one pass. A non-nil error wrapping ErrClockUnavailable or
// ErrPersistence, or a cancelled ctx, means nothing was saved.
func (m *Manager) Tick(ctx context.Context) error {
	logger := logging.FromContext(ctx).Named("wordday.Tick").With("tick", uuid.New().String())
	ctx = logging.WithLogger(ctx, logger)

	doc, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("%w: load: %v", ErrPersistence, err)
	}

	height, err := m.clock.Height(ctx)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrClockUnavailable, err)
	}

	now := m.now().Unix()
	since := doc.LastCheckedTime
	logger.Infow("tick started", "height", height, "since", since, "rounds", len(doc.Rounds))

	if _, err := m.engine.MaybeStartRound(ctx, doc, height); err != nil {
		logger.Errorf("start round: %v", err)
	}

	report := m.engine.Advance(ctx, doc, height, since)

	// collaborators cut short by cancellation return partial results; saving
	// now would move LastCheckedTime past replies nobody looked at
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("tick interrupted, document not saved: %w", err)
	}

	if now > doc.LastCheckedTime {
		doc.LastCheckedTime = now
	}

	if err := m.store.Save(ctx, doc); err != nil {
		return fmt.Errorf("%w: save: %v", ErrPersistence, err)
	}

	logger.Infow("tick done",
		"hints", report.Hints,
		"winners", report.Winners,
		"errors", len(report.Errs),
		"nextRoundThreshold", doc.NextRoundThreshold,
	)

	return nil
}

// Run ticks immediately and then every interval until ctx is done. Failed ticks
// are logged; the next tick retries from the last saved document.
func (m *Manager) Run(ctx context.Context, every time.Duration) error {
	logger := logging.FromContext(ctx).Named("wordday.Run")
	if every <= 0 {
		return fmt.Errorf("tick interval must be positive, got %s", every)
	}

	ticker := time.NewTicker(every)
	defer ticker.Stop()

	for {
		if err := m.Tick(ctx); err != nil {
			if ctx.Err() != nil {
				return nil
			}
			logger.Errorf("tick: %v", err)
		}

		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}
