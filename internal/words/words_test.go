package words

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDictionaryDefinitionsHideWords(t *testing.T) {
	t.Parallel()

	seen := map[string]bool{}
	for _, e := range Dictionary {
		assert.False(t, seen[e.Word], "duplicate %s", e.Word)
		seen[e.Word] = true
		assert.NotContains(t, strings.ToLower(e.Definition), e.Word)
		assert.Equal(t, strings.ToLower(e.Word), e.Word)
	}
}

func TestWordComesFromEntries(t *testing.T) {
	t.Parallel()

	s := New([]Entry{{Word: "anchor", Definition: "holds a ship"}})
	w, err := s.Word(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "anchor", w.Word)
	assert.Equal(t, "holds a ship", w.Definition)
}

func TestNewDefaultsToDictionary(t *testing.T) {
	t.Parallel()

	s := New(nil)
	assert.Len(t, s.entries, len(Dictionary))
}

func TestHintMasksLetters(t *testing.T) {
	t.Parallel()

	s := New(nil)
	for i := 0; i < 50; i++ {
		hint, err := s.Hint(context.Background(), "Lighthouse")
		require.NoError(t, err)
		require.True(t, strings.HasPrefix(hint, "10 letters: "), hint)

		mask := strings.Split(strings.TrimPrefix(hint, "10 letters: "), " ")
		require.Len(t, mask, 10)

		var hidden int
		for j, m := range mask {
			if m == "_" {
				hidden++
				continue
			}
			assert.Equal(t, string("lighthouse"[j]), m)
		}
		assert.Equal(t, 7, hidden)
		assert.NotContains(t, strings.ToLower(hint), "lighthouse")
	}
}

func TestHintShortWord(t *testing.T) {
	t.Parallel()

	hint, err := New(nil).Hint(context.Background(), "ox")
	require.NoError(t, err)
	assert.Contains(t, hint, "_")

	_, err = New(nil).Hint(context.Background(), "a")
	assert.Error(t, err)
}
