package game

import "sort"

// Engine is the state machine for one match. It knows nothing about players
// beyond seat numbers; callers resolve a claimed player id to a seat and the
// engine enforces that the acting seat holds the turn. All methods assume the
// caller serializes access (the room mutex does).
type Engine struct {
	started     bool
	currentSeat int
	seats       int
	words       []string
	revealed    map[rune]struct{}
	used        map[rune]struct{}
	winnerSeat  int
	solo        bool
}

// NewEngine starts a fresh match. The secret words are normalized once so
// letter reveals and solves compare against a canonical form.
func NewEngine(words []string, seats int, solo bool) *Engine {
	secret := make([]string, len(words))
	for i, w := range words {
		secret[i] = NormalizeWord(w)
	}
	return &Engine{
		started:     true,
		currentSeat: 0,
		seats:       seats,
		words:       secret,
		revealed:    make(map[rune]struct{}),
		used:        make(map[rune]struct{}),
		winnerSeat:  -1,
		solo:        solo,
	}
}

func (e *Engine) Finished() bool { return e.winnerSeat >= 0 }

func (e *Engine) CurrentSeat() int { return e.currentSeat }

// checkTurn is the single guard shared by every in-match action.
func (e *Engine) checkTurn(seat int) error {
	if !e.started {
		return ErrNoActiveGame
	}
	if e.Finished() {
		return ErrGameFinished
	}
	if seat != e.currentSeat {
		return ErrNotYourTurn
	}
	return nil
}

// Guess applies one letter guess from the given seat. A letter present in any
// secret word is revealed and the turn stays; an absent letter passes the turn.
// The winning reveal credits the guessing seat, before any advance.
func (e *Engine) Guess(seat int, letter string) error {
	if err := e.checkTurn(seat); err != nil {
		return err
	}
	r, err := NormalizeLetter(letter)
	if err != nil {
		return err
	}
	if _, dup := e.used[r]; dup {
		return ErrLetterAlreadyUsed
	}
	e.used[r] = struct{}{}

	if e.containsLetter(r) {
		e.revealed[r] = struct{}{}
		if e.allRevealed() {
			e.winnerSeat = seat
		}
		return nil
	}
	e.advanceTurn()
	return nil
}

// Solve compares a full answer attempt word-by-word, case- and
// accent-insensitively. A correct solve wins for the acting seat; anything
// else counts as a wrong guess and passes the turn.
func (e *Engine) Solve(seat int, guessedWords []string) error {
	if err := e.checkTurn(seat); err != nil {
		return err
	}
	if e.matchesSecret(guessedWords) {
		e.winnerSeat = seat
		return nil
	}
	e.advanceTurn()
	return nil
}

func (e *Engine) matchesSecret(guessedWords []string) bool {
	if len(guessedWords) != len(e.words) {
		return false
	}
	for i, w := range guessedWords {
		if NormalizeWord(w) != e.words[i] {
			return false
		}
	}
	return true
}

func (e *Engine) containsLetter(r rune) bool {
	for _, w := range e.words {
		for _, c := range w {
			if c == r {
				return true
			}
		}
	}
	return false
}

// allRevealed reports whether every distinct letter of the answer is revealed.
func (e *Engine) allRevealed() bool {
	for _, w := range e.words {
		for _, c := range w {
			if _, ok := e.revealed[c]; !ok {
				return false
			}
		}
	}
	return true
}

// ResizeSeats keeps the turn pointer valid after a roster change mid-match.
func (e *Engine) ResizeSeats(n int) {
	if n <= 0 {
		return
	}
	e.seats = n
	if e.currentSeat >= n {
		e.currentSeat = 0
	}
}

func (e *Engine) advanceTurn() {
	e.currentSeat = (e.currentSeat + 1) % e.seats
}

// Snapshot copies the engine into its wire shape.
func (e *Engine) Snapshot() *GameSnapshot {
	snap := &GameSnapshot{
		Started:         e.started,
		CurrentPlayer:   e.currentSeat,
		Words:           append([]string(nil), e.words...),
		RevealedLetters: letterSlice(e.revealed),
		UsedLetters:     letterSlice(e.used),
		SoloMode:        e.solo,
	}
	if e.Finished() {
		w := e.winnerSeat
		snap.Winner = &w
	}
	return snap
}

func letterSlice(set map[rune]struct{}) []string {
	out := make([]string, 0, len(set))
	for r := range set {
		out = append(out, string(r))
	}
	sort.Strings(out)
	return out
}
