package registry

import (
	"sync"

	"github.com/playroomlab/bingo-backend/internal/entity"
)

// Registry - the process-wide mapping from room id to room state. It is
// owned by the application and passed by handle, never global. The
// registry map has its own lock; mutations of a single room are serialized
// by the room's own lock, so events for different rooms do not block each
// other.
type Registry struct {
	mu    sync.RWMutex
	rooms map[string]*entity.Room
}

func New() *Registry {
	return &Registry{
		rooms: make(map[string]*entity.Room),
	}
}

// GetOrCreate - returns the room for the id, creating a waiting room on
// first join.
func (that *Registry) GetOrCreate(id string) *entity.Room {
	that.mu.Lock()
	defer that.mu.Unlock()

	if room, ok := that.rooms[id]; ok {
		return room
	}

	room := entity.NewRoom(id)
	that.rooms[id] = room

	return room
}

func (that *Registry) Get(id string) (*entity.Room, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	room, ok := that.rooms[id]

	return room, ok
}

// Delete - removes the room; no-op if absent.
func (that *Registry) Delete(id string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	delete(that.rooms, id)
}

// FindByPlayer - returns the room containing the connection id as a
// member. A connection belongs to at most one room, so the scan stops at
// the first match.
func (that *Registry) FindByPlayer(playerID string) (*entity.Room, bool) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	for _, room := range that.rooms {
		if room.HasPlayer(playerID) {
			return room, true
		}
	}

	return nil, false
}

func (that *Registry) Len() int {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return len(that.rooms)
}
