package wordday

import (
	"context"
	"fmt"
	"strings"

	"github.com/bloops-games/wordday/internal/database/game/model"
	"github.com/bloops-games/wordday/internal/logging"
)

// MaybeStartRound appends a new round when height has reached the document's
// threshold. The next threshold is counted from height, not from the old
// threshold, so a missed tick does not make rounds pile up.
func (e *Engine) MaybeStartRound(ctx context.Context, doc *model.Document, height int64) (bool, error) {
	logger := logging.FromContext(ctx).Named("wordday.MaybeStartRound")
	if height < doc.NextRoundThreshold {
		logger.Debugf("height %d below threshold %d", height, doc.NextRoundThreshold)
		return false, nil
	}

	w, err := e.words.Word(ctx)
	if err != nil {
		return false, fmt.Errorf("%w: word source: %v", ErrGeneration, err)
	}

	w.Word = strings.TrimSpace(w.Word)
	if w.Word == "" {
		return false, fmt.Errorf("%w: word source returned an empty word", ErrGeneration)
	}

	messageID, err := e.publisher.Publish(ctx, Message{Content: renderAnnouncement(w), Kind: KindPost})
	if err != nil {
		return false, fmt.Errorf("%w: announcement: %v", ErrPublish, err)
	}

	doc.AppendRound(&model.Round{
		Word:            w.Word,
		Definition:      w.Definition,
		ImageURL:        w.ImageURL,
		MessageID:       messageID,
		StartedAtHeight: height,
		NextHintHeight:  height + e.config.HintInterval,
	})
	doc.NextRoundThreshold = height + e.config.RoundInterval

	logger.Infow("round started",
		"height", height,
		"messageId", messageID,
		"nextRoundThreshold", doc.NextRoundThreshold,
	)

	return true, nil
}
