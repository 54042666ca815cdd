package wordday

import (
	"context"
	"fmt"
	"strings"

	"github.com/bloops-games/wordday/internal/database/game/model"
	"github.com/bloops-games/wordday/internal/logging"
)

// Report sums up what Advance did. Errs holds the per-round failures that were
// logged and skipped.
type Report struct {
	Hints   int
	Winners []string
	Errs    []error
}

// Advance runs the hint step and then the resolution step for every open round,
// oldest first. since is the lower bound for replies, the document's
// LastCheckedTime as it was before this tick.
func (e *Engine) Advance(ctx context.Context, doc *model.Document, height, since int64) Report {
	var report Report
	for _, r := range doc.OpenRounds() {
		posted, err := e.hintStep(ctx, r, height)
		if err != nil {
			report.Errs = append(report.Errs, err)
		}
		if posted {
			report.Hints++
		}

		winner, err := e.resolveStep(ctx, doc, r, since)
		if err != nil {
			report.Errs = append(report.Errs, err)
		}
		if winner != "" {
			report.Winners = append(report.Winners, winner)
		}
	}

	return report
}

// hintStep posts at most one hint per call. When several intervals have passed the
// round catches up one interval per tick.
func (e *Engine) hintStep(ctx context.Context, r *model.Round, height int64) (bool, error) {
	logger := logging.FromContext(ctx).Named("wordday.hintStep").With("messageId", r.MessageID)
	if height < r.NextHintHeight {
		return false, nil
	}

	if e.config.MaxHints > 0 && r.HintsPosted >= e.config.MaxHints {
		logger.Debugf("hint limit %d reached", e.config.MaxHints)
		return false, nil
	}

	hint, err := e.hints.Hint(ctx, r.Word)
	if err != nil {
		err = fmt.Errorf("%w: hint for round %s: %v", ErrGeneration, r.MessageID, err)
		logger.Errorf("hint: %v", err)
		return false, err
	}

	hint = strings.TrimSpace(hint)
	if hint == "" || Substring(hint, r.Word) {
		err = fmt.Errorf("%w: hint for round %s is empty or leaks the word", ErrGeneration, r.MessageID)
		logger.Errorf("hint: %v", err)
		return false, err
	}

	if _, err := e.publisher.Publish(ctx, Message{
		Content:        renderHint(hint),
		CorrelatesWith: r.MessageID,
		Kind:           KindPost,
	}); err != nil {
		err = fmt.Errorf("%w: hint for round %s: %v", ErrPublish, r.MessageID, err)
		logger.Errorf("publish hint: %v", err)
		return false, err
	}

	r.HintsPosted++
	r.NextHintHeight += e.config.HintInterval
	logger.Infow("hint posted", "hintsPosted", r.HintsPosted, "nextHintHeight", r.NextHintHeight)

	return true, nil
}

// resolveStep closes the round on the first reply that satisfies the predicate.
// Replies after it are not looked at.
func (e *Engine) resolveStep(ctx context.Context, doc *model.Document, r *model.Round, since int64) (string, error) {
	logger := logging.FromContext(ctx).Named("wordday.resolveStep").With("messageId", r.MessageID)

	replies, err := e.replies.Replies(ctx, r.MessageID, since)
	if err != nil {
		err = fmt.Errorf("%w: round %s: %v", ErrReplySource, r.MessageID, err)
		logger.Errorf("replies: %v", err)
		return "", err
	}

	logger.Debugf("%d replies since %d", len(replies), since)
	for _, reply := range replies {
		if reply.AuthorID == "" || strings.ToLower(reply.AuthorID) == e.self {
			continue
		}
		if reply.Timestamp < since {
			continue
		}
		if !e.predicate(reply.Content, r.Word) {
			continue
		}

		if !r.Win(reply.AuthorID) {
			return "", nil
		}
		doc.Leaderboard = model.IncrementScore(doc.Leaderboard, reply.AuthorID)
		logger.Infow("round won", "winner", reply.AuthorID, "replyId", reply.ID)

		return reply.AuthorID, e.announceWinner(ctx, doc, r, reply.AuthorID)
	}

	return "", nil
}

// announceWinner is best-effort: the win is recorded even if nothing gets out.
func (e *Engine) announceWinner(ctx context.Context, doc *model.Document, r *model.Round, winner string) error {
	logger := logging.FromContext(ctx).Named("wordday.announceWinner").With("messageId", r.MessageID)

	if _, err := e.publisher.Publish(ctx, Message{
		Content:        renderReveal(r.Word, e.mention(winner)),
		CorrelatesWith: r.MessageID,
		Kind:           KindReveal,
		Mentions:       []string{winner},
	}); err != nil {
		err = fmt.Errorf("%w: reveal for round %s: %v", ErrPublish, r.MessageID, err)
		logger.Errorf("publish reveal: %v", err)
		return err
	}

	if e.config.LeaderboardTop == 0 {
		return nil
	}

	if _, err := e.publisher.Publish(ctx, Message{
		Content: renderLeaderboard(doc.Leaderboard, e.config.LeaderboardTop, e.mention),
		Kind:    KindLeaderboard,
	}); err != nil {
		err = fmt.Errorf("%w: leaderboard: %v", ErrPublish, err)
		logger.Errorf("publish leaderboard: %v", err)
		return err
	}

	return nil
}
