package game

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func usedSet(letters ...rune) map[rune]struct{} {
	set := make(map[rune]struct{}, len(letters))
	for _, r := range letters {
		set[r] = struct{}{}
	}
	return set
}

func TestPickBotLetter_PrefersCommonLetters(t *testing.T) {
	t.Parallel()

	letter, ok := pickBotLetter(usedSet())
	require.True(t, ok)
	assert.Equal(t, "A", letter)

	letter, ok = pickBotLetter(usedSet('A', 'E', 'I'))
	require.True(t, ok)
	assert.Equal(t, "O", letter)
}

func TestPickBotLetter_FallsBackToUntried(t *testing.T) {
	t.Parallel()
	used := usedSet(botPreferredLetters...)

	letter, ok := pickBotLetter(used)

	require.True(t, ok)
	require.Len(t, letter, 1)
	assert.NotContains(t, string(botPreferredLetters), letter)
}

func TestPickBotLetter_ExhaustedAlphabet(t *testing.T) {
	t.Parallel()
	used := make(map[rune]struct{})
	for r := 'A'; r <= 'Z'; r++ {
		used[r] = struct{}{}
	}

	_, ok := pickBotLetter(used)
	assert.False(t, ok)
}
