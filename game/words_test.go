package game

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnswerSource_PickReturnsConfiguredSet(t *testing.T) {
	t.Parallel()
	src := NewAnswerSource(rand.New(rand.NewSource(1)))

	seen := make(map[string]bool)
	for i := 0; i < 100; i++ {
		set := src.Pick()
		found := false
		for _, known := range answerSets {
			if assert.ObjectsAreEqual(known, set) {
				found = true
				seen[known[0]] = true
			}
		}
		require.True(t, found, "pick %v is not a configured answer set", set)
	}
	// 100 draws over 3 sets should hit each one.
	assert.Len(t, seen, len(answerSets))
}

func TestAnswerSource_PickReturnsCopy(t *testing.T) {
	t.Parallel()
	src := NewAnswerSource(rand.New(rand.NewSource(1)))

	set := src.Pick()
	set[0] = "TAMPERED"

	for _, known := range answerSets {
		assert.NotContains(t, known, "TAMPERED")
	}
}
