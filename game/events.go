package game

// Server events, named as the frontend's socket hook listens for them.
const (
	EventPlayerJoined      = "player_joined"
	EventPlayerLeft        = "player_left"
	EventPlayerKicked      = "player_kicked"
	EventRoomState         = "room_state"
	EventPlayerReadyUpdate = "player_ready_update"
	EventGameUpdated       = "game_updated"
	EventGameStarted       = "game_started"
)

// Client intents.
const (
	IntentJoinRoom    = "join_room"
	IntentLeaveRoom   = "leave_room"
	IntentKickPlayer  = "kick_player"
	IntentPlayerReady = "player_ready"
	IntentStartGame   = "start_game"
	IntentMakeGuess   = "make_guess"
	IntentSolveGame   = "solve_game"
	IntentResetGame   = "reset_game"
)

const (
	StatusSuccess      = "success"
	StatusDisconnected = "disconnected"
)

// StatusPayload wraps single-value events as {data: ..., status: "success"}.
// player_left uses status "disconnected" when the departure was not
// voluntary; that flag is the only difference visible downstream between
// leaving and dropping.
type StatusPayload struct {
	Data   any    `json:"data"`
	Status string `json:"status"`
}

// ReadyUpdatePayload carries the full readiness map on every change.
type ReadyUpdatePayload struct {
	ReadyStatus map[string]bool `json:"readyStatus"`
	AllReady    bool            `json:"allReady"`
}

// GameStartedPayload pairs the fresh engine snapshot with the roster.
// game_started and game_updated are both emitted on start: clients key off
// different names for the initial transition and for ongoing updates.
type GameStartedPayload struct {
	Game    *GameSnapshot `json:"game"`
	Players []Player      `json:"players"`
}
