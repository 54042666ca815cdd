package wordday

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/bloops-games/wordday/internal/database/game/model"
	"github.com/bloops-games/wordday/internal/strpool"
	"github.com/bloops-games/wordday/internal/util"
	"github.com/bloops-games/wordday/internal/wordday/resource"
)

// renderAnnouncement never includes the word itself.
func renderAnnouncement(w Word) string {
	buf := strpool.Get()
	defer func() {
		buf.Reset()
		strpool.Put(buf)
	}()

	buf.WriteString(resource.TextAnnouncementHeader)
	buf.WriteString("\n\n")
	if w.ImageURL != "" {
		buf.WriteString("![image](")
		buf.WriteString(w.ImageURL)
		buf.WriteString(")\n\n")
	}
	if w.Definition != "" {
		buf.WriteString(resource.TextDefinitionPrefix)
		buf.WriteString(w.Definition)
		buf.WriteString("\n\n")
	}
	buf.WriteString(resource.TextReplyToGuess)

	return buf.String()
}

func renderHint(hint string) string {
	return resource.TextHintPrefix + hint
}

func renderReveal(word, mention string) string {
	return fmt.Sprintf(resource.TextRevealFmt, word, mention)
}

// renderLeaderboard lists the top n authors, most wins first, ties by id.
func renderLeaderboard(lb model.Leaderboard, n int, mention func(string) string) string {
	type entry struct {
		id   string
		wins int
	}

	entries := make([]entry, 0, len(lb))
	for id, wins := range lb {
		entries = append(entries, entry{id: id, wins: wins})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].wins != entries[j].wins {
			return entries[i].wins > entries[j].wins
		}
		return entries[i].id < entries[j].id
	})
	if n > 0 && len(entries) > n {
		entries = entries[:n]
	}

	buf := strpool.Get()
	defer func() {
		buf.Reset()
		strpool.Put(buf)
	}()

	buf.WriteString(resource.TextLeaderboardHeader)
	for i, e := range entries {
		buf.WriteString("\n")
		buf.WriteString(strconv.Itoa(i + 1))
		buf.WriteString(". ")
		buf.WriteString(mention(e.id))
		buf.WriteString(" - ")
		buf.WriteString(util.Count(e.wins, "win", "wins"))
	}

	return buf.String()
}
