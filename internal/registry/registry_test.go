package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/playroomlab/bingo-backend/internal/entity"
)

func TestRegistry_GetOrCreate(t *testing.T) {
	// Given: an empty registry
	rooms := New()

	// When: a room id is requested for the first time
	room := rooms.GetOrCreate("room-1")

	// Then: a waiting room is created
	require.NotNil(t, room)
	assert.Equal(t, entity.StatusWaiting, room.Status)
	assert.Equal(t, 1, rooms.Len())

	// When: the same id is requested again
	same := rooms.GetOrCreate("room-1")

	// Then: the existing room is returned
	assert.Same(t, room, same)
	assert.Equal(t, 1, rooms.Len())
}

func TestRegistry_Delete(t *testing.T) {
	// Given: a registry with one room
	rooms := New()
	rooms.GetOrCreate("room-1")

	// When: the room is deleted
	rooms.Delete("room-1")

	// Then: it is gone
	_, ok := rooms.Get("room-1")
	assert.False(t, ok)
	assert.Equal(t, 0, rooms.Len())

	// When: deleting a room that does not exist
	// Then: the delete is an idempotent no-op
	rooms.Delete("room-1")
	assert.Equal(t, 0, rooms.Len())
}

func TestRegistry_FindByPlayer(t *testing.T) {
	// Given: two rooms with one player each
	rooms := New()
	first := rooms.GetOrCreate("room-1")
	first.AddPlayer(entity.NewPlayer("conn-a", "Alice"))
	second := rooms.GetOrCreate("room-2")
	second.AddPlayer(entity.NewPlayer("conn-b", "Bob"))

	// When: looking up a member connection
	found, ok := rooms.FindByPlayer("conn-b")

	// Then: its room is returned
	require.True(t, ok)
	assert.Equal(t, "room-2", found.ID)

	// When: looking up a connection in no room
	_, ok = rooms.FindByPlayer("conn-c")

	// Then: nothing is found
	assert.False(t, ok)
}
