package wordday

import (
	"fmt"
	"strings"
)

// Deps are the collaborators the engine talks to during a tick.
type Deps struct {
	Words     WordSource
	Hints     HintSource
	Publisher Publisher
	Replies   ReplySource

	// Self is the bot's own author id; its replies are never guesses.
	Self string

	// Mention renders an author id inside a public message.
	Mention func(authorID string) string
}

// Engine holds the round scheduler and the round lifecycle. It keeps no state of
// its own between ticks: everything lives in the document passed to it.
type Engine struct {
	config    Config
	predicate Predicate

	words     WordSource
	hints     HintSource
	publisher Publisher
	replies   ReplySource
	self      string
	mention   func(string) string
}

func NewEngine(config Config, deps Deps) (*Engine, error) {
	if err := config.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}

	predicate, err := PredicateByName(config.WinPredicate)
	if err != nil {
		return nil, err
	}

	if deps.Words == nil || deps.Hints == nil || deps.Publisher == nil || deps.Replies == nil {
		return nil, fmt.Errorf("word source, hint source, publisher and reply source are required")
	}

	mention := deps.Mention
	if mention == nil {
		mention = func(id string) string { return id }
	}

	return &Engine{
		config:    config,
		predicate: predicate,
		words:     deps.Words,
		hints:     deps.Hints,
		publisher: deps.Publisher,
		replies:   deps.Replies,
		self:      strings.ToLower(deps.Self),
		mention:   mention,
	}, nil
}
