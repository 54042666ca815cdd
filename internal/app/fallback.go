package app

import (
	"context"

	"github.com/bloops-games/wordday/internal/logging"
	"github.com/bloops-games/wordday/internal/wordday"
)

type generator interface {
	wordday.WordSource
	wordday.HintSource
}

// fallback asks primary first and secondary when primary fails.
type fallback struct {
	primary   generator
	secondary generator
}

func (f *fallback) Word(ctx context.Context) (wordday.Word, error) {
	w, err := f.primary.Word(ctx)
	if err == nil {
		return w, nil
	}

	logging.FromContext(ctx).Named("app.fallback").Warnf("primary word source: %v, using builtin words", err)
	return f.secondary.Word(ctx)
}

func (f *fallback) Hint(ctx context.Context, word string) (string, error) {
	h, err := f.primary.Hint(ctx, word)
	if err == nil {
		return h, nil
	}

	logging.FromContext(ctx).Named("app.fallback").Warnf("primary hint source: %v, using letter mask", err)
	return f.secondary.Hint(ctx, word)
}
