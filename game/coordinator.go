package game

import (
	"sync"
	"time"

	"github.com/rs/zerolog/log"
)

type connBinding struct {
	roomID string
	player Player
}

// Coordinator receives intents, mutates the addressed room under its mutex and
// pushes the resulting broadcasts through the transport. Membership mutations
// are keyed on (roomID, playerID); the connection binding exists only so an
// abrupt disconnect can be turned into a leave.
type Coordinator struct {
	registry  *Registry
	transport Transport
	answers   AnswerSource
	botDelay  time.Duration

	mu    sync.Mutex
	conns map[string]connBinding
}

func NewCoordinator(registry *Registry, transport Transport, answers AnswerSource, botDelay time.Duration) *Coordinator {
	return &Coordinator{
		registry:  registry,
		transport: transport,
		answers:   answers,
		botDelay:  botDelay,
		conns:     make(map[string]connBinding),
	}
}

// lockedRoom fetches the room and takes its mutex, retrying past rooms that
// were evicted between the map lookup and the lock.
func (c *Coordinator) lockedRoom(roomID string) (*Room, error) {
	for {
		room, ok := c.registry.Get(roomID)
		if !ok {
			return nil, ErrRoomNotFound
		}
		room.mu.Lock()
		if room.closed {
			room.mu.Unlock()
			continue
		}
		return room, nil
	}
}

// Join seats the player, creating the room on first join. The first joiner is
// host and auto-ready; a solo room additionally seats the scripted opponent at
// seat 1. Rejoining with a seated id is idempotent but still re-delivers the
// snapshot privately, which is what recovers a reloaded client.
func (c *Coordinator) Join(connID, roomID string, p Player, solo bool) error {
	var room *Room
	for {
		r, created := c.registry.GetOrCreate(roomID)
		r.mu.Lock()
		if r.closed {
			r.mu.Unlock()
			continue
		}
		if created {
			r.solo = solo
		}
		room = r
		break
	}
	defer room.mu.Unlock()

	added := room.addPlayer(p)
	if added && room.solo && room.seatOf(BotID) < 0 {
		room.addPlayer(Player{ID: BotID, Name: BotName})
		room.setReady(BotID, true)
	}

	c.bindConn(connID, roomID, p)
	c.transport.Subscribe(connID, roomID)

	c.transport.Broadcast(roomID, EventPlayerJoined, StatusPayload{Data: p, Status: StatusSuccess})
	snap := room.snapshot()
	c.transport.Broadcast(roomID, EventRoomState, snap)
	c.transport.SendTo(connID, EventRoomState, snap)

	log.Debug().Str("room", roomID).Str("player", p.ID).Bool("rejoin", !added).Msg("player joined")
	return nil
}

// Leave removes the player voluntarily.
func (c *Coordinator) Leave(roomID string, p Player) error {
	return c.removeFromRoom(roomID, p.ID, StatusSuccess)
}

// Disconnect resolves the room and player bound to the connection and applies
// the same mutation as Leave, tagged as involuntary.
func (c *Coordinator) Disconnect(connID string) error {
	c.mu.Lock()
	binding, ok := c.conns[connID]
	if ok {
		delete(c.conns, connID)
	}
	c.mu.Unlock()
	if !ok {
		return ErrUnknownConnection
	}
	return c.removeFromRoom(binding.roomID, binding.player.ID, StatusDisconnected)
}

func (c *Coordinator) removeFromRoom(roomID, playerID, status string) error {
	room, err := c.lockedRoom(roomID)
	if err != nil {
		return err
	}
	defer room.mu.Unlock()

	removed, ok := room.removePlayer(playerID)
	if !ok {
		return ErrPlayerNotSeated
	}
	c.unbindPlayer(roomID, playerID)

	c.transport.Broadcast(roomID, EventPlayerLeft, StatusPayload{Data: removed, Status: status})
	c.transport.Broadcast(roomID, EventRoomState, room.snapshot())

	c.evictIfDeserted(room)
	return nil
}

// Kick evicts the named player. The protocol has no host check on kick: any
// connected party can evict anyone, and clients depend on that behavior, so
// the gap stays.
func (c *Coordinator) Kick(roomID, targetID string) error {
	room, err := c.lockedRoom(roomID)
	if err != nil {
		return err
	}
	defer room.mu.Unlock()

	if _, ok := room.removePlayer(targetID); !ok {
		return ErrPlayerNotSeated
	}

	// The kicked connection stays subscribed until after the broadcasts so it
	// still sees its own eviction, like a socket.io socket that has not left
	// the channel yet.
	c.transport.Broadcast(roomID, EventPlayerKicked, StatusPayload{Data: targetID, Status: StatusSuccess})
	c.transport.Broadcast(roomID, EventRoomState, room.snapshot())
	c.unbindPlayer(roomID, targetID)

	c.evictIfDeserted(room)
	return nil
}

// SetReady flips one player's readiness and rebroadcasts the whole map.
func (c *Coordinator) SetReady(roomID, playerID string, ready bool) error {
	room, err := c.lockedRoom(roomID)
	if err != nil {
		return err
	}
	defer room.mu.Unlock()

	if !room.setReady(playerID, ready) {
		return ErrPlayerNotSeated
	}
	c.transport.Broadcast(roomID, EventPlayerReadyUpdate, ReadyUpdatePayload{
		ReadyStatus: room.readyCopy(),
		AllReady:    room.allReady(),
	})
	return nil
}

// StartGame draws a fresh answer set and replaces the engine wholesale. Both
// game_updated and game_started go out: clients listen to one name for the
// initial transition and the other for ongoing updates.
func (c *Coordinator) StartGame(roomID string) error {
	room, err := c.lockedRoom(roomID)
	if err != nil {
		return err
	}
	defer room.mu.Unlock()

	words := c.answers.Pick()
	room.game = NewEngine(words, len(room.players), room.solo)
	snap := room.game.Snapshot()

	log.Info().Str("room", roomID).Strs("words", words).Msg("game started")
	c.transport.Broadcast(roomID, EventGameUpdated, StatusPayload{Data: snap, Status: StatusSuccess})
	c.transport.Broadcast(roomID, EventGameStarted, GameStartedPayload{Game: snap, Players: room.playersCopy()})
	return nil
}

// GuessLetter applies one letter guess attributed to playerID.
func (c *Coordinator) GuessLetter(roomID, playerID, letter string) error {
	room, err := c.lockedRoom(roomID)
	if err != nil {
		return err
	}
	defer room.mu.Unlock()
	return c.applyMove(room, playerID, func(e *Engine, seat int) error {
		return e.Guess(seat, letter)
	})
}

// Solve applies a full-answer attempt attributed to playerID.
func (c *Coordinator) Solve(roomID, playerID string, guessedWords []string) error {
	room, err := c.lockedRoom(roomID)
	if err != nil {
		return err
	}
	defer room.mu.Unlock()
	return c.applyMove(room, playerID, func(e *Engine, seat int) error {
		return e.Solve(seat, guessedWords)
	})
}

// applyMove is the shared guard for in-match actions: resolve the claimed id
// to a seat, let the engine enforce the turn, broadcast on acceptance.
func (c *Coordinator) applyMove(room *Room, playerID string, move func(*Engine, int) error) error {
	if room.game == nil {
		return ErrNoActiveGame
	}
	seat := room.seatOf(playerID)
	if seat < 0 {
		return ErrPlayerNotSeated
	}
	if err := move(room.game, seat); err != nil {
		return err
	}
	c.transport.Broadcast(room.id, EventGameUpdated, StatusPayload{Data: room.game.Snapshot(), Status: StatusSuccess})
	c.maybeScheduleBot(room)
	return nil
}

// ResetGame drops the finished match so the lobby flow can ready up again.
func (c *Coordinator) ResetGame(roomID string) error {
	room, err := c.lockedRoom(roomID)
	if err != nil {
		return err
	}
	defer room.mu.Unlock()

	room.game = nil
	c.transport.Broadcast(roomID, EventRoomState, room.snapshot())
	return nil
}

func (c *Coordinator) bindConn(connID, roomID string, p Player) {
	c.mu.Lock()
	defer c.mu.Unlock()
	// A reconnect binds a new connection to the same player; drop the stale
	// binding so the old connection's disconnect cannot unseat the player.
	for id, b := range c.conns {
		if id != connID && b.roomID == roomID && b.player.ID == p.ID {
			delete(c.conns, id)
		}
	}
	c.conns[connID] = connBinding{roomID: roomID, player: p}
}

func (c *Coordinator) unbindPlayer(roomID, playerID string) {
	c.mu.Lock()
	var connID string
	for id, b := range c.conns {
		if b.roomID == roomID && b.player.ID == playerID {
			connID = id
			delete(c.conns, id)
			break
		}
	}
	c.mu.Unlock()
	if connID != "" {
		c.transport.Unsubscribe(connID, roomID)
	}
}

// evictIfDeserted removes the room once no humans remain. Caller holds the
// room mutex.
func (c *Coordinator) evictIfDeserted(room *Room) {
	if room.solo && len(room.players) == 1 && room.players[0].ID == BotID {
		room.removePlayer(BotID)
	}
	if !room.empty() {
		return
	}
	room.closed = true
	c.registry.Remove(room.id)
	log.Debug().Str("room", room.id).Msg("room evicted")
}
