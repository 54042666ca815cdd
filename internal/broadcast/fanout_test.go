package broadcast

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/bloops-games/wordday/internal/wordday"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubPublisher struct {
	mu    sync.Mutex
	id    string
	err   error
	delay time.Duration
	got   []wordday.Message
}

func (s *stubPublisher) Publish(ctx context.Context, msg wordday.Message) (string, error) {
	time.Sleep(s.delay)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.got = append(s.got, msg)
	return s.id, s.err
}

func (s *stubPublisher) calls() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.got)
}

func TestFanoutPrimaryOnly(t *testing.T) {
	t.Parallel()

	p := &stubPublisher{id: "p1"}
	id, err := New(p).Publish(context.Background(), wordday.Message{Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "p1", id)
	assert.Equal(t, 1, p.calls())
}

func TestFanoutMirrorFailureIgnored(t *testing.T) {
	t.Parallel()

	p := &stubPublisher{id: "p1"}
	m1 := &stubPublisher{err: fmt.Errorf("down")}
	m2 := &stubPublisher{id: "m2", delay: 50 * time.Millisecond}

	id, err := New(p, m1, m2).Publish(context.Background(), wordday.Message{Content: "x"})
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	// waits for slow mirrors before returning
	assert.Equal(t, 1, m1.calls())
	assert.Equal(t, 1, m2.calls())
}

func TestFanoutPrimaryFailure(t *testing.T) {
	t.Parallel()

	p := &stubPublisher{err: fmt.Errorf("relays down")}
	m := &stubPublisher{id: "m"}

	id, err := New(p, m).Publish(context.Background(), wordday.Message{Content: "x"})
	assert.Error(t, err)
	assert.Empty(t, id)
	assert.Equal(t, 1, m.calls())
}
