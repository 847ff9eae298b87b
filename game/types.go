package game

// Player identity is client-generated and stable across reconnects; the id is
// the key for every roster mutation, never the transient connection.
type Player struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// GameSnapshot is the wire shape of one match, as the frontend consumes it.
// Letter sets are sorted slices so snapshots compare deterministically.
type GameSnapshot struct {
	Started         bool     `json:"gameStarted"`
	CurrentPlayer   int      `json:"currentPlayer"`
	Words           []string `json:"words"`
	RevealedLetters []string `json:"revealedLetters"`
	UsedLetters     []string `json:"usedLetters"`
	Winner          *int     `json:"winner"`
	SoloMode        bool     `json:"isSoloMode"`
}

// RoomSnapshot is the full room state broadcast as room_state. The game
// snapshot is always embedded (null before the first start) so a reconnecting
// client recovers mid-match from a single event.
type RoomSnapshot struct {
	Players      []Player        `json:"players"`
	TotalPlayers int             `json:"totalPlayers"`
	HostID       string          `json:"hostId"`
	ReadyStatus  map[string]bool `json:"readyStatus"`
	AllReady     bool            `json:"allReady"`
	Game         *GameSnapshot   `json:"game"`
}
