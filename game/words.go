package game

import (
	"math/rand"
	"sync"
)

// AnswerSource supplies the secret answer for one match.
type AnswerSource interface {
	Pick() []string
}

// answerSets is the fixed pool of themed answer sets. Selection is uniform per
// start, with no deduplication across matches.
var answerSets = [][]string{
	{"BRASIL", "VERDE", "AMARELO"},
	{"FUTEBOL", "PAIXAO", "NACIONAL"},
	{"SAMBA", "CARNAVAL", "ALEGRIA"},
}

type staticAnswerSource struct {
	mu   sync.Mutex
	sets [][]string
	rng  *rand.Rand
}

// NewAnswerSource returns the static pool backed by the given rng. Picks from
// different rooms may race, so the rng is guarded.
func NewAnswerSource(rng *rand.Rand) AnswerSource {
	return &staticAnswerSource{sets: answerSets, rng: rng}
}

func (s *staticAnswerSource) Pick() []string {
	s.mu.Lock()
	set := s.sets[s.rng.Intn(len(s.sets))]
	s.mu.Unlock()
	out := make([]string, len(set))
	copy(out, set)
	return out
}
