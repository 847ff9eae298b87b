package game

import "sync"

// Registry maps room ids to rooms. Creation happens on first join and exactly
// one room wins a concurrent first-join race; rooms are removed when their
// roster empties so the map cannot grow without bound.
type Registry struct {
	mu    sync.Mutex
	rooms map[string]*Room
}

func NewRegistry() *Registry {
	return &Registry{rooms: make(map[string]*Room)}
}

// GetOrCreate returns the room for id, creating it if unknown. The second
// return reports whether this call created it.
func (reg *Registry) GetOrCreate(id string) (*Room, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	if r, ok := reg.rooms[id]; ok {
		return r, false
	}
	r := newRoom(id)
	reg.rooms[id] = r
	return r, true
}

func (reg *Registry) Get(id string) (*Room, bool) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	r, ok := reg.rooms[id]
	return r, ok
}

// Remove drops the room from the map. The caller marks the room closed under
// its own mutex so a join that already holds a stale pointer retries.
func (reg *Registry) Remove(id string) {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	delete(reg.rooms, id)
}

func (reg *Registry) Len() int {
	reg.mu.Lock()
	defer reg.mu.Unlock()
	return len(reg.rooms)
}
