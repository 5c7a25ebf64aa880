package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	// When: creating a room
	room := NewRoom("room-1")

	// Then: it waits for players with no turn assigned
	require.NotNil(t, room)
	assert.Equal(t, "room-1", room.ID)
	assert.Equal(t, StatusWaiting, room.Status)
	assert.Empty(t, room.Turn)
	assert.Empty(t, room.Players)
}

func TestRoom_AddPlayer(t *testing.T) {
	// Given: an empty room
	room := NewRoom("room-1")

	// When: two players join in order
	room.AddPlayer(NewPlayer("conn-a", "Alice"))
	room.AddPlayer(NewPlayer("conn-b", "Bob"))

	// Then: join order is preserved and the room is full
	assert.Equal(t, []string{"Alice", "Bob"}, room.PlayerNames())
	assert.True(t, room.IsFull())
	assert.True(t, room.HasPlayer("conn-a"))
	assert.False(t, room.HasPlayer("conn-c"))
}

func TestRoom_Opponent(t *testing.T) {
	// Given: a full room
	room := NewRoom("room-1")
	room.AddPlayer(NewPlayer("conn-a", "Alice"))
	room.AddPlayer(NewPlayer("conn-b", "Bob"))

	// When: asking for each player's opponent
	opponentOfA := room.Opponent("conn-a")
	opponentOfB := room.Opponent("conn-b")

	// Then: each gets the other player
	require.NotNil(t, opponentOfA)
	require.NotNil(t, opponentOfB)
	assert.Equal(t, "conn-b", opponentOfA.ID)
	assert.Equal(t, "conn-a", opponentOfB.ID)
}

func TestRoom_BothReady(t *testing.T) {
	// Given: a room with a single ready player
	room := NewRoom("room-1")
	first := NewPlayer("conn-a", "Alice")
	first.Ready = true
	room.AddPlayer(first)

	// Then: one ready player is not enough
	assert.False(t, room.BothReady())

	// When: a second, not yet ready player joins
	second := NewPlayer("conn-b", "Bob")
	room.AddPlayer(second)
	assert.False(t, room.BothReady())

	// When: the second player becomes ready
	second.Ready = true

	// Then: the room is ready to start
	assert.True(t, room.BothReady())
}

func TestRoom_VoteRematch(t *testing.T) {
	// Given: a finished room with two players
	room := NewRoom("room-1")
	room.AddPlayer(NewPlayer("conn-a", "Alice"))
	room.AddPlayer(NewPlayer("conn-b", "Bob"))
	room.Status = StatusFinished

	// When: the same player votes twice
	count := room.VoteRematch("conn-a")
	assert.Equal(t, 1, count)
	count = room.VoteRematch("conn-a")

	// Then: repeated votes do not double count
	assert.Equal(t, 1, count)

	// When: the opponent votes
	count = room.VoteRematch("conn-b")

	// Then: both votes are in
	assert.Equal(t, 2, count)
}

func TestRoom_ResetForRematch(t *testing.T) {
	// Given: a finished room with played-out boards
	room := NewRoom("room-1")
	first := NewPlayer("conn-a", "Alice")
	first.Board = []int{1, 2, 3}
	first.Marked = []int{0, 1}
	first.Ready = true
	second := NewPlayer("conn-b", "Bob")
	second.Board = []int{4, 5, 6}
	second.Marked = []int{2}
	second.Ready = true
	room.AddPlayer(first)
	room.AddPlayer(second)
	room.Status = StatusFinished
	room.Turn = "conn-a"
	room.VoteRematch("conn-a")
	room.VoteRematch("conn-b")

	// When: the room resets for a rematch
	room.ResetForRematch()

	// Then: the room waits again with clean players and no votes
	assert.Equal(t, StatusWaiting, room.Status)
	assert.Empty(t, room.Turn)

	for _, player := range room.Players {
		assert.Empty(t, player.Board)
		assert.Empty(t, player.Marked)
		assert.False(t, player.Ready)
	}

	assert.Equal(t, 1, room.VoteRematch("conn-a"))
}

func TestPlayer_MarkNumber(t *testing.T) {
	// Given: a player with a board
	player := NewPlayer("conn-a", "Alice")
	player.Board = []int{10, 20, 30, 40, 50}

	// When: a number on the board is called
	player.MarkNumber(30)

	// Then: its position is marked
	assert.Equal(t, []int{2}, player.Marked)
	assert.True(t, player.HasMarked(2))

	// When: the same number is called again
	player.MarkNumber(30)

	// Then: the marked set does not grow
	assert.Equal(t, []int{2}, player.Marked)

	// When: a number not on the board is called
	player.MarkNumber(99)

	// Then: nothing changes
	assert.Equal(t, []int{2}, player.Marked)
}
