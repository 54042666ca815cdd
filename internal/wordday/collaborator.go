package wordday

import (
	"context"
	"fmt"

	"github.com/bloops-games/wordday/internal/database/game/model"
)

var (
	ErrClockUnavailable = fmt.Errorf("clock unavailable")
	ErrGeneration       = fmt.Errorf("generation failed")
	ErrPublish          = fmt.Errorf("publish failed")
	ErrReplySource      = fmt.Errorf("reply source failed")
	ErrPersistence      = fmt.Errorf("persistence failed")
)

type Kind uint8

const (
	KindPost Kind = iota + 1
	KindReveal
	KindLeaderboard
)

func (k Kind) String() string {
	switch k {
	case KindPost:
		return "post"
	case KindReveal:
		return "reveal"
	case KindLeaderboard:
		return "leaderboard"
	default:
		return "unknown"
	}
}

// Message is one broadcast. CorrelatesWith is the id of the round announcement a
// hint or reveal answers; empty for the announcement itself.
type Message struct {
	Content        string
	CorrelatesWith string
	Kind           Kind
	// Mentions are author ids the message refers to, e.g. the winner of a reveal.
	Mentions []string
}

type Reply struct {
	ID        string
	AuthorID  string
	Content   string
	Timestamp int64
}

type Word struct {
	Word       string
	Definition string
	ImageURL   string
}

type Clock interface {
	Height(ctx context.Context) (int64, error)
}

type WordSource interface {
	Word(ctx context.Context) (Word, error)
}

// HintSource produces a clue for word. The clue must not contain word itself.
type HintSource interface {
	Hint(ctx context.Context, word string) (string, error)
}

type Publisher interface {
	Publish(ctx context.Context, msg Message) (string, error)
}

// ReplySource returns the public replies to messageID created at or after since
// (unix seconds), in arrival order. The call must return within a bounded time.
type ReplySource interface {
	Replies(ctx context.Context, messageID string, since int64) ([]Reply, error)
}

type Store interface {
	Load(ctx context.Context) (*model.Document, error)
	Save(ctx context.Context, doc *model.Document) error
}
