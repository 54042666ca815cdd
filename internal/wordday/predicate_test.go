package wordday

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSubstring(t *testing.T) {
	t.Parallel()

	cases := []struct {
		content string
		word    string
		want    bool
	}{
		{content: "I think it's a Lighthouse!", word: "lighthouse", want: true},
		{content: "LIGHTHOUSE", word: "Lighthouse", want: true},
		{content: "lighthouses everywhere", word: "lighthouse", want: true},
		{content: "light house", word: "lighthouse", want: false},
		{content: "", word: "lighthouse", want: false},
		{content: "anything", word: "", want: false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Substring(tc.content, tc.word), "%q / %q", tc.content, tc.word)
	}
}

func TestExplicitGuess(t *testing.T) {
	t.Parallel()

	cases := []struct {
		content string
		word    string
		want    bool
	}{
		{content: "guess: lighthouse", word: "lighthouse", want: true},
		{content: "GUESS: Lighthouse!", word: "lighthouse", want: true},
		{content: "my guess:   lighthouse.", word: "lighthouse", want: true},
		{content: "guess: windmill, guess: lighthouse", word: "lighthouse", want: true},
		{content: "guess:lighthouse", word: "lighthouse", want: true},
		{content: "lighthouse", word: "lighthouse", want: false},
		{content: "guess: lighthouses", word: "lighthouse", want: false},
		{content: "guess:", word: "lighthouse", want: false},
		{content: "guess: lighthouse", word: "", want: false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, ExplicitGuess(tc.content, tc.word), "%q / %q", tc.content, tc.word)
	}
}

func TestPredicateByName(t *testing.T) {
	t.Parallel()

	p, err := PredicateByName(PredicateSubstring)
	require.NoError(t, err)
	assert.True(t, p("a Lighthouse", "lighthouse"))

	p, err = PredicateByName(PredicateExplicitGuessToken)
	require.NoError(t, err)
	assert.False(t, p("a Lighthouse", "lighthouse"))

	_, err = PredicateByName("regex")
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	require.NoError(t, DefaultConfig().Validate())

	broken := []func(c *Config){
		func(c *Config) { c.RoundInterval = 0 },
		func(c *Config) { c.HintInterval = -1 },
		func(c *Config) { c.MaxHints = -1 },
		func(c *Config) { c.ReplyWindowSeconds = 0 },
		func(c *Config) { c.LeaderboardTop = -3 },
		func(c *Config) { c.WinPredicate = "fuzzy" },
	}
	for i, mutate := range broken {
		c := DefaultConfig()
		mutate(&c)
		assert.Error(t, c.Validate(), "case %d", i)
	}
}
