package game

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rosterIDs(r *Room) []string {
	ids := make([]string, 0, len(r.players))
	for _, p := range r.players {
		ids = append(ids, p.ID)
	}
	return ids
}

// readiness keys must track the roster exactly, whatever sequence of
// membership changes happens.
func assertReadyMatchesRoster(t *testing.T, r *Room) {
	t.Helper()
	require.Len(t, r.ready, len(r.players))
	for _, p := range r.players {
		_, ok := r.ready[p.ID]
		assert.True(t, ok, "missing readiness entry for %s", p.ID)
	}
}

func TestRoom_FirstJoinerIsHostAndReady(t *testing.T) {
	t.Parallel()
	r := newRoom("ABC123")

	require.True(t, r.addPlayer(Player{ID: "p1", Name: "Ana"}))
	require.True(t, r.addPlayer(Player{ID: "p2", Name: "Bia"}))

	assert.Equal(t, "p1", r.hostID)
	assert.True(t, r.ready["p1"])
	assert.False(t, r.ready["p2"])
	assert.False(t, r.allReady())
	assertReadyMatchesRoster(t, r)
}

func TestRoom_DuplicateJoinIsNoop(t *testing.T) {
	t.Parallel()
	r := newRoom("ABC123")
	require.True(t, r.addPlayer(Player{ID: "p1", Name: "Ana"}))

	assert.False(t, r.addPlayer(Player{ID: "p1", Name: "Ana"}))
	assert.Equal(t, []string{"p1"}, rosterIDs(r))
	assertReadyMatchesRoster(t, r)
}

func TestRoom_HostLeaveReassignsSeatZero(t *testing.T) {
	t.Parallel()
	r := newRoom("ABC123")
	r.addPlayer(Player{ID: "p1"})
	r.addPlayer(Player{ID: "p2"})
	r.addPlayer(Player{ID: "p3"})

	removed, ok := r.removePlayer("p1")
	require.True(t, ok)
	assert.Equal(t, "p1", removed.ID)
	assert.Equal(t, "p2", r.hostID)
	assertReadyMatchesRoster(t, r)

	// A non-host leaving keeps the host.
	_, ok = r.removePlayer("p3")
	require.True(t, ok)
	assert.Equal(t, "p2", r.hostID)
}

func TestRoom_LastLeaveClearsHost(t *testing.T) {
	t.Parallel()
	r := newRoom("ABC123")
	r.addPlayer(Player{ID: "p1"})

	_, ok := r.removePlayer("p1")
	require.True(t, ok)
	assert.True(t, r.empty())
	assert.Empty(t, r.hostID)
	assert.True(t, r.allReady(), "allReady is vacuously true for an empty room")
}

func TestRoom_RemoveUnknownPlayer(t *testing.T) {
	t.Parallel()
	r := newRoom("ABC123")
	r.addPlayer(Player{ID: "p1"})

	_, ok := r.removePlayer("ghost")
	assert.False(t, ok)
	assert.Equal(t, []string{"p1"}, rosterIDs(r))
}

func TestRoom_ReadyInvariantUnderChurn(t *testing.T) {
	t.Parallel()
	r := newRoom("ABC123")
	for i := 0; i < 6; i++ {
		r.addPlayer(Player{ID: fmt.Sprintf("p%d", i)})
		assertReadyMatchesRoster(t, r)
	}
	for _, id := range []string{"p3", "p0", "p5", "ghost", "p1"} {
		r.removePlayer(id)
		assertReadyMatchesRoster(t, r)
	}
	assert.Equal(t, []string{"p2", "p4"}, rosterIDs(r))
}

func TestRoom_AllReady(t *testing.T) {
	t.Parallel()
	r := newRoom("ABC123")
	r.addPlayer(Player{ID: "p1"})
	r.addPlayer(Player{ID: "p2"})
	assert.False(t, r.allReady())

	require.True(t, r.setReady("p2", true))
	assert.True(t, r.allReady())

	require.True(t, r.setReady("p1", false))
	assert.False(t, r.allReady())

	assert.False(t, r.setReady("ghost", true), "unseated ready must be rejected")
}

func TestRoom_SnapshotEmbedsGame(t *testing.T) {
	t.Parallel()
	r := newRoom("ABC123")
	r.addPlayer(Player{ID: "p1"})

	snap := r.snapshot()
	assert.Nil(t, snap.Game, "no game before start")
	assert.Equal(t, 1, snap.TotalPlayers)
	assert.Equal(t, "p1", snap.HostID)

	r.game = NewEngine([]string{"SAMBA"}, 1, false)
	snap = r.snapshot()
	require.NotNil(t, snap.Game)
	assert.Equal(t, []string{"SAMBA"}, snap.Game.Words)
}

func TestRoom_MidMatchLeaveKeepsTurnValid(t *testing.T) {
	t.Parallel()
	r := newRoom("ABC123")
	r.addPlayer(Player{ID: "p1"})
	r.addPlayer(Player{ID: "p2"})
	r.game = NewEngine([]string{"ABA"}, 2, false)
	require.NoError(t, r.game.Guess(0, "Z")) // turn to seat 1

	r.removePlayer("p2")

	assert.Less(t, r.game.CurrentSeat(), len(r.players))
}
