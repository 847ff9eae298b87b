package game

import "errors"

// Rejection outcomes. A rejected intent never mutates room state and never
// broadcasts; the transport layer logs it and sends nothing back, so on the
// wire a rejection looks like the silent no-op the frontend expects.
var (
	ErrRoomNotFound      = errors.New("room-not-found")
	ErrRoomClosed        = errors.New("room-closed")
	ErrPlayerNotSeated   = errors.New("player-not-seated")
	ErrNoActiveGame      = errors.New("no-active-game")
	ErrGameFinished      = errors.New("game-finished")
	ErrNotYourTurn       = errors.New("not-your-turn")
	ErrInvalidLetter     = errors.New("invalid-letter")
	ErrLetterAlreadyUsed = errors.New("letter-already-used")
	ErrUnknownConnection = errors.New("unknown-connection")
	ErrUnknownEvent      = errors.New("unknown-event")
)
