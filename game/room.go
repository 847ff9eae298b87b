package game

import "sync"

// Room owns one room's roster, host, readiness and the embedded match. The
// mutex is held by the coordinator for the whole handling of one intent, so
// every broadcast leaves in intent-acceptance order and intents for different
// rooms never serialize on each other.
type Room struct {
	mu sync.Mutex

	id      string
	players []Player // seat order = join order
	hostID  string   // stable id, no index fixup on removals
	ready   map[string]bool
	game    *Engine
	solo    bool
	closed  bool
}

func newRoom(id string) *Room {
	return &Room{
		id:    id,
		ready: make(map[string]bool),
	}
}

// seatOf resolves a player id to its seat, -1 when not seated.
func (r *Room) seatOf(playerID string) int {
	for i, p := range r.players {
		if p.ID == playerID {
			return i
		}
	}
	return -1
}

// addPlayer seats a player. The first joiner becomes host and is auto-ready;
// everyone after starts not-ready. Re-adding a seated id is a no-op.
func (r *Room) addPlayer(p Player) bool {
	if r.seatOf(p.ID) >= 0 {
		return false
	}
	r.players = append(r.players, p)
	if len(r.players) == 1 {
		r.hostID = p.ID
		r.ready[p.ID] = true
	} else {
		r.ready[p.ID] = false
	}
	return true
}

// removePlayer unseats a player and keeps the readiness key set equal to the
// roster. If the host left, seat 0 inherits.
func (r *Room) removePlayer(playerID string) (Player, bool) {
	seat := r.seatOf(playerID)
	if seat < 0 {
		return Player{}, false
	}
	removed := r.players[seat]
	r.players = append(r.players[:seat], r.players[seat+1:]...)
	delete(r.ready, playerID)

	if r.hostID == playerID {
		if len(r.players) > 0 {
			r.hostID = r.players[0].ID
		} else {
			r.hostID = ""
		}
	}
	if r.game != nil && !r.game.Finished() {
		r.game.ResizeSeats(len(r.players))
	}
	return removed, true
}

func (r *Room) setReady(playerID string, ready bool) bool {
	if r.seatOf(playerID) < 0 {
		return false
	}
	r.ready[playerID] = ready
	return true
}

// allReady is the AND over the readiness map, vacuously true when empty.
func (r *Room) allReady() bool {
	for _, ok := range r.ready {
		if !ok {
			return false
		}
	}
	return true
}

func (r *Room) empty() bool { return len(r.players) == 0 }

func (r *Room) readyCopy() map[string]bool {
	out := make(map[string]bool, len(r.ready))
	for k, v := range r.ready {
		out[k] = v
	}
	return out
}

func (r *Room) playersCopy() []Player {
	return append([]Player(nil), r.players...)
}

// snapshot builds the room_state payload; the game field is null until the
// first start so clients can key the lobby view off it.
func (r *Room) snapshot() RoomSnapshot {
	snap := RoomSnapshot{
		Players:      r.playersCopy(),
		TotalPlayers: len(r.players),
		HostID:       r.hostID,
		ReadyStatus:  r.readyCopy(),
		AllReady:     r.allReady(),
	}
	if r.game != nil {
		snap.Game = r.game.Snapshot()
	}
	return snap
}
