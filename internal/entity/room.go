package entity

import "sync"

const (
	StatusFinished = "finished"
	StatusPlaying  = "playing"
	StatusWaiting  = "waiting"
)

// MaxPlayers - a room hosts exactly one match between two players.
const MaxPlayers = 2

// Room - one bingo match. Handlers must hold the room lock across every
// read-modify-write sequence so concurrent events cannot interleave.
type Room struct {
	sync.Mutex `json:"-"`

	ID      string    `json:"id"`
	Status  string    `json:"status"`
	Turn    string    `json:"turn,omitempty"`
	Players []*Player `json:"players"`

	rematchVotes map[string]struct{}
}

func NewRoom(id string) *Room {
	return &Room{
		ID:           id,
		Status:       StatusWaiting,
		Players:      []*Player{},
		rematchVotes: make(map[string]struct{}),
	}
}

// AddPlayer - appends a player, preserving join order. The first joiner
// opens the game once both boards are in.
func (that *Room) AddPlayer(player *Player) {
	that.Players = append(that.Players, player)
}

func (that *Room) Player(id string) *Player {
	for _, player := range that.Players {
		if player.ID == id {
			return player
		}
	}

	return nil
}

func (that *Room) Opponent(id string) *Player {
	for _, player := range that.Players {
		if player.ID != id {
			return player
		}
	}

	return nil
}

func (that *Room) HasPlayer(id string) bool {
	return that.Player(id) != nil
}

func (that *Room) IsFull() bool {
	return len(that.Players) >= MaxPlayers
}

// PlayerNames - display names in join order.
func (that *Room) PlayerNames() []string {
	names := make([]string, 0, len(that.Players))
	for _, player := range that.Players {
		names = append(names, player.Name)
	}

	return names
}

func (that *Room) BothReady() bool {
	if !that.IsFull() {
		return false
	}

	for _, player := range that.Players {
		if !player.Ready {
			return false
		}
	}

	return true
}

// VoteRematch - records a rematch request; repeated votes from the same
// connection do not double count. Returns the current vote count.
func (that *Room) VoteRematch(id string) int {
	if that.rematchVotes == nil {
		that.rematchVotes = make(map[string]struct{})
	}

	that.rematchVotes[id] = struct{}{}

	return len(that.rematchVotes)
}

func (that *Room) ClearRematchVotes() {
	that.rematchVotes = make(map[string]struct{})
}

// ResetForRematch - returns the room to the waiting state: boards and marks
// are wiped, nobody is ready, no turn is assigned, votes are cleared.
func (that *Room) ResetForRematch() {
	for _, player := range that.Players {
		player.Board = []int{}
		player.Marked = []int{}
		player.Ready = false
	}

	that.Status = StatusWaiting
	that.Turn = ""
	that.ClearRematchVotes()
}

func (that *Room) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Room) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Room) IsWaiting() bool {
	return that.Status == StatusWaiting
}
