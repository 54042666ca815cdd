package words

import (
	"context"
	"fmt"
	"strings"

	"github.com/bloops-games/wordday/internal/strpool"
	"github.com/bloops-games/wordday/internal/util"
	"github.com/bloops-games/wordday/internal/wordday"
	"github.com/valyala/fastrand"
)

var (
	_ wordday.WordSource = (*Source)(nil)
	_ wordday.HintSource = (*Source)(nil)
)

// Source is the offline word source: a fixed dictionary and letter mask hints.
type Source struct {
	entries []Entry
}

type Entry struct {
	Word       string
	Definition string
}

func New(entries []Entry) *Source {
	if len(entries) == 0 {
		entries = Dictionary
	}
	return &Source{entries: entries}
}

func (s *Source) Word(_ context.Context) (wordday.Word, error) {
	e := s.entries[fastrand.Uint32n(uint32(len(s.entries)))]
	return wordday.Word{Word: e.Word, Definition: e.Definition}, nil
}

// Hint reveals about a third of the letters of word and masks the rest, e.g.
// "l _ _ h _ _ _ _ _ e". At least one letter stays hidden.
func (s *Source) Hint(_ context.Context, word string) (string, error) {
	letters := []rune(strings.ToLower(word))
	if len(letters) < 2 {
		return "", fmt.Errorf("word %q too short for a hint", word)
	}

	reveal := len(letters) / 3
	if reveal == 0 {
		reveal = 1
	}

	shown := make([]bool, len(letters))
	for n := 0; n < reveal; {
		i := fastrand.Uint32n(uint32(len(letters)))
		if shown[i] {
			continue
		}
		shown[i] = true
		n++
	}

	buf := strpool.Get()
	defer func() {
		buf.Reset()
		strpool.Put(buf)
	}()

	buf.WriteString(util.Count(len(letters), "letter", "letters"))
	buf.WriteString(": ")
	for i, r := range letters {
		if i > 0 {
			buf.WriteString(" ")
		}
		if shown[i] {
			buf.WriteRune(r)
		} else {
			buf.WriteString("_")
		}
	}

	return buf.String(), nil
}
