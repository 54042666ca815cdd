package wordday

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/bloops-games/wordday/internal/database/game/model"
)

type fakeWords struct {
	word  Word
	err   error
	calls int
}

func (f *fakeWords) Word(_ context.Context) (Word, error) {
	f.calls++
	return f.word, f.err
}

type fakeHints struct {
	hint  string
	err   error
	calls int
}

func (f *fakeHints) Hint(_ context.Context, word string) (string, error) {
	f.calls++
	if f.err != nil {
		return "", f.err
	}
	if f.hint != "" {
		return f.hint, nil
	}
	return fmt.Sprintf("%d letters", len(word)), nil
}

type fakePublisher struct {
	mu   sync.Mutex
	msgs []Message
	// failKinds makes Publish fail for messages of these kinds.
	failKinds map[Kind]bool
	// failAll makes every Publish fail.
	failAll bool
}

func (f *fakePublisher) Publish(_ context.Context, msg Message) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.failAll || f.failKinds[msg.Kind] {
		return "", fmt.Errorf("relay down")
	}
	f.msgs = append(f.msgs, msg)
	return fmt.Sprintf("msg-%d", len(f.msgs)), nil
}

func (f *fakePublisher) byKind(k Kind) []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []Message
	for _, m := range f.msgs {
		if m.Kind == k {
			out = append(out, m)
		}
	}
	return out
}

type fakeReplies struct {
	replies map[string][]Reply
	errs    map[string]error
	calls   []int64
	// during runs inside Replies, before the result is returned.
	during func()
}

func (f *fakeReplies) Replies(_ context.Context, messageID string, since int64) ([]Reply, error) {
	f.calls = append(f.calls, since)
	if f.during != nil {
		f.during()
		// a cancelled window yields whatever arrived so far, here nothing
		return nil, nil
	}
	if err := f.errs[messageID]; err != nil {
		return nil, err
	}
	return f.replies[messageID], nil
}

type fakeClock struct {
	height int64
	err    error
}

func (f *fakeClock) Height(_ context.Context) (int64, error) {
	return f.height, f.err
}

// memStore round-trips through JSON so tests see exactly what would be persisted.
type memStore struct {
	mu      sync.Mutex
	raw     []byte
	loadErr error
	saveErr error
	saves   int
}

func (s *memStore) Load(_ context.Context) (*model.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.loadErr != nil {
		return nil, s.loadErr
	}
	doc := model.NewDocument()
	if s.raw == nil {
		return doc, nil
	}
	if err := json.Unmarshal(s.raw, doc); err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *memStore) Save(_ context.Context, doc *model.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.saveErr != nil {
		return s.saveErr
	}
	b, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.raw = b
	s.saves++
	return nil
}

func (s *memStore) saveCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saves
}

func (s *memStore) doc() *model.Document {
	d, err := s.Load(context.Background())
	if err != nil {
		panic(err)
	}
	return d
}

type testEnv struct {
	words     *fakeWords
	hints     *fakeHints
	publisher *fakePublisher
	replies   *fakeReplies
	engine    *Engine
}

func newTestEnv(config Config) (*testEnv, error) {
	env := &testEnv{
		words:     &fakeWords{word: Word{Word: "lighthouse", Definition: "a tower with a bright light"}},
		hints:     &fakeHints{},
		publisher: &fakePublisher{failKinds: map[Kind]bool{}},
		replies:   &fakeReplies{replies: map[string][]Reply{}, errs: map[string]error{}},
	}

	engine, err := NewEngine(config, Deps{
		Words:     env.words,
		Hints:     env.hints,
		Publisher: env.publisher,
		Replies:   env.replies,
		Self:      "bot",
	})
	if err != nil {
		return nil, err
	}
	env.engine = engine
	return env, nil
}

func openRound(word, messageID string, started int64) *model.Round {
	return &model.Round{
		Word:            word,
		MessageID:       messageID,
		StartedAtHeight: started,
		NextHintHeight:  started + 21,
	}
}
