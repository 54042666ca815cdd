package gemini

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/bloops-games/wordday/internal/wordday"
)

const wordPrompt = `Pick a random English noun for a daily word guessing game.

Rules:
- One single word, lowercase letters only, between 5 and 12 letters.
- Not a proper noun, not offensive.
- Give a short dictionary style definition that does not contain the word or a word derived from it.

Answer ONLY with JSON: {"word": "<word>", "definition": "<definition>"}`

const hintPromptFmt = `Give me a one sentence hint for the word "%s" without saying the word or any word derived from it.
Answer ONLY with the hint.`

const redacted = "___"

var (
	_ wordday.WordSource = (*Source)(nil)
	_ wordday.HintSource = (*Source)(nil)
)

// Source generates words, definitions and hints with Gemini.
type Source struct {
	generate generateFn
}

func NewSource(ctx context.Context, config Config) (*Source, error) {
	gen, err := newGenerator(ctx, config)
	if err != nil {
		return nil, err
	}

	return &Source{generate: gen}, nil
}

type wordAnswer struct {
	Word       string `json:"word"`
	Definition string `json:"definition"`
}

func (s *Source) Word(ctx context.Context) (wordday.Word, error) {
	text, err := s.generate(ctx, wordPrompt, true)
	if err != nil {
		return wordday.Word{}, err
	}

	var answer wordAnswer
	if err := json.Unmarshal([]byte(stripFence(text)), &answer); err != nil {
		return wordday.Word{}, fmt.Errorf("parse word JSON: %w\nraw response: %s", err, text)
	}

	word := strings.ToLower(strings.TrimSpace(answer.Word))
	if word == "" || strings.ContainsAny(word, " \t\n") {
		return wordday.Word{}, fmt.Errorf("invalid word %q", answer.Word)
	}

	return wordday.Word{
		Word:       word,
		Definition: redact(strings.TrimSpace(answer.Definition), word),
	}, nil
}

func (s *Source) Hint(ctx context.Context, word string) (string, error) {
	text, err := s.generate(ctx, fmt.Sprintf(hintPromptFmt, word), false)
	if err != nil {
		return "", err
	}

	hint := redact(strings.TrimSpace(text), word)
	if hint == "" {
		return "", fmt.Errorf("empty hint")
	}

	return hint, nil
}

// redact hides every case-insensitive occurrence of word in text.
func redact(text, word string) string {
	if word == "" {
		return text
	}
	re := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(word))
	return re.ReplaceAllString(text, redacted)
}

// stripFence removes a markdown code fence some models wrap JSON in.
func stripFence(text string) string {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "```") {
		return text
	}
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	return strings.TrimSpace(text)
}
