package game

import (
	"math/rand"
	"time"
)

// The scripted opponent for solo rooms. It occupies seat 1, is always ready,
// and guesses common letters first, then anything not yet tried.
const (
	BotID   = "computer"
	BotName = "Computer"
)

var botPreferredLetters = []rune("AEIOURSTLN")

// maybeScheduleBot queues a delayed bot move when a solo room's turn landed on
// the computer seat. Caller holds the room mutex; the move itself re-validates
// everything once the timer fires.
func (c *Coordinator) maybeScheduleBot(room *Room) {
	if !room.solo || room.game == nil || room.game.Finished() {
		return
	}
	seat := room.game.CurrentSeat()
	if seat >= len(room.players) || room.players[seat].ID != BotID {
		return
	}
	roomID := room.id
	time.AfterFunc(c.botDelay, func() {
		c.botMove(roomID)
	})
}

func (c *Coordinator) botMove(roomID string) {
	room, err := c.lockedRoom(roomID)
	if err != nil {
		return
	}
	defer room.mu.Unlock()

	if !room.solo || room.game == nil || room.game.Finished() {
		return
	}
	seat := room.game.CurrentSeat()
	if seat >= len(room.players) || room.players[seat].ID != BotID {
		return
	}
	letter, ok := pickBotLetter(room.game.used)
	if !ok {
		return
	}
	_ = c.applyMove(room, BotID, func(e *Engine, s int) error {
		return e.Guess(s, letter)
	})
}

// pickBotLetter prefers the common letters in order, then falls back to a
// random untried letter.
func pickBotLetter(used map[rune]struct{}) (string, bool) {
	for _, r := range botPreferredLetters {
		if _, taken := used[r]; !taken {
			return string(r), true
		}
	}
	var remaining []rune
	for r := 'A'; r <= 'Z'; r++ {
		if _, taken := used[r]; !taken {
			remaining = append(remaining, r)
		}
	}
	if len(remaining) == 0 {
		return "", false
	}
	return string(remaining[rand.Intn(len(remaining))]), true
}
