package usecase

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/playroomlab/bingo-backend/internal/apperror"
	"github.com/playroomlab/bingo-backend/internal/bingo"
	"github.com/playroomlab/bingo-backend/internal/entity"
	"github.com/playroomlab/bingo-backend/internal/mirror"
	"github.com/playroomlab/bingo-backend/internal/registry"
)

const (
	EventPlayerJoined  = "player_joined"
	EventGameStart     = "game_start"
	EventMoveMade      = "move_made"
	EventRematchStatus = "rematch_status"
	EventResetGame     = "reset_game"
	EventOpponentLeft  = "opponent_left"
)

type PlayerJoinedPayload struct {
	Count   int      `json:"count"`
	Players []string `json:"players"`
}

type GameStartPayload struct {
	Turn string `json:"turn"`
}

type MoveMadePayload struct {
	Number   int    `json:"number"`
	NextTurn string `json:"nextTurn"`
	GameOver bool   `json:"gameOver"`
	Winner   string `json:"winner,omitempty"`
}

type RematchStatusPayload struct {
	Count int `json:"count"`
}

// broadcaster - the outbound side of the event gateway: delivers an event
// to every current member of a room.
type broadcaster interface {
	ToRoom(room *entity.Room, event string, payload any)
}

// SessionManager - the per-room state machine. Every handler takes the
// room lock for the whole read-modify-write sequence, broadcasts to the
// room members and then mirrors the room to persistence. The mirror is
// best-effort and never affects the outcome of an event.
type SessionManager struct {
	logger *slog.Logger

	rooms       *registry.Registry
	mirror      *mirror.Writer
	broadcaster broadcaster
}

func NewSessionManager(logger *slog.Logger, rooms *registry.Registry, mirrorWriter *mirror.Writer, broadcaster broadcaster) *SessionManager {
	return &SessionManager{
		logger:      logger.With("component", "session"),
		rooms:       rooms,
		mirror:      mirrorWriter,
		broadcaster: broadcaster,
	}
}

// Connect - acknowledges a new connection; no room state is touched.
func (that *SessionManager) Connect(playerID string) {
	that.logger.Info("client connected", "playerID", playerID)
}

// Join - admits the player into the room, creating the room on first
// join. A full room rejects the join without mutation.
func (that *SessionManager) Join(ctx context.Context, playerID, roomID, name string) error {
	room := that.rooms.GetOrCreate(roomID)

	room.Lock()
	defer room.Unlock()

	if room.IsFull() {
		return fmt.Errorf("%w: room id %s", apperror.ErrRoomFull, roomID)
	}

	room.AddPlayer(entity.NewPlayer(playerID, name))

	that.mirror.Save(ctx, room)

	that.broadcaster.ToRoom(room, EventPlayerJoined, PlayerJoinedPayload{
		Count:   len(room.Players),
		Players: room.PlayerNames(),
	})

	that.logger.Info("player joined room", "playerID", playerID, "roomID", roomID)

	return nil
}

// SubmitBoard - stores the sender's board and marks it ready. Once both
// players are ready the game starts and the first joiner gets the turn.
func (that *SessionManager) SubmitBoard(ctx context.Context, playerID, roomID string, board []int) error {
	room, ok := that.rooms.Get(roomID)
	if !ok {
		return fmt.Errorf("%w: room id %s", apperror.ErrRoomNotFound, roomID)
	}

	room.Lock()
	defer room.Unlock()

	player := room.Player(playerID)
	if player == nil {
		return fmt.Errorf("%w: room id %s", apperror.ErrNotInRoom, roomID)
	}

	player.Board = board
	player.Ready = true

	if room.IsWaiting() && room.BothReady() {
		room.Status = entity.StatusPlaying
		room.Turn = room.Players[0].ID

		that.broadcaster.ToRoom(room, EventGameStart, GameStartPayload{Turn: room.Turn})

		that.logger.Info("game started", "roomID", roomID, "turn", room.Turn)
	}

	that.mirror.Save(ctx, room)

	return nil
}

// MakeMove - processes a called number from the player whose turn it is.
// The turn passes to the opponent, both boards mark the number, and the
// game finishes as soon as either player completes enough lines.
func (that *SessionManager) MakeMove(ctx context.Context, playerID, roomID string, number int) error {
	room, ok := that.rooms.Get(roomID)
	if !ok {
		return fmt.Errorf("%w: room id %s", apperror.ErrRoomNotFound, roomID)
	}

	room.Lock()
	defer room.Unlock()

	if !room.IsPlaying() {
		return fmt.Errorf("%w: room id %s", apperror.ErrGameNotActive, roomID)
	}

	if room.Turn != playerID {
		return apperror.ErrNotYourTurn
	}

	opponent := room.Opponent(playerID)
	if opponent == nil {
		return fmt.Errorf("%w: room id %s", apperror.ErrNotInRoom, roomID)
	}

	room.Turn = opponent.ID

	gameOver := false
	winner := ""

	for _, player := range room.Players {
		player.MarkNumber(number)

		if bingo.CountLines(player.Marked) >= bingo.WinningLines {
			gameOver = true
			winner = player.Name
		}
	}

	if gameOver {
		room.Status = entity.StatusFinished
		room.ClearRematchVotes()
	}

	that.broadcaster.ToRoom(room, EventMoveMade, MoveMadePayload{
		Number:   number,
		NextTurn: room.Turn,
		GameOver: gameOver,
		Winner:   winner,
	})

	that.mirror.Save(ctx, room)

	if gameOver {
		that.logger.Info("game finished", "roomID", roomID, "winner", winner)
	}

	return nil
}

// PlayAgain - records a rematch vote. When both players have voted the
// room resets to the waiting state for a fresh round.
func (that *SessionManager) PlayAgain(ctx context.Context, playerID, roomID string) error {
	room, ok := that.rooms.Get(roomID)
	if !ok {
		return fmt.Errorf("%w: room id %s", apperror.ErrRoomNotFound, roomID)
	}

	room.Lock()
	defer room.Unlock()

	count := room.VoteRematch(playerID)

	that.broadcaster.ToRoom(room, EventRematchStatus, RematchStatusPayload{Count: count})

	if count < entity.MaxPlayers {
		return nil
	}

	room.ResetForRematch()

	that.broadcaster.ToRoom(room, EventResetGame, nil)

	that.mirror.Save(ctx, room)

	that.logger.Info("room reset for rematch", "roomID", roomID)

	return nil
}

// Disconnect - tears down the room the connection belonged to, notifying
// the remaining members first. Runs to completion even when the remote
// delete fails; a connection in no room is a no-op.
func (that *SessionManager) Disconnect(ctx context.Context, playerID string) {
	that.logger.Info("client disconnected", "playerID", playerID)

	room, ok := that.rooms.FindByPlayer(playerID)
	if !ok {
		return
	}

	room.Lock()
	that.broadcaster.ToRoom(room, EventOpponentLeft, nil)
	room.Unlock()

	that.rooms.Delete(room.ID)
	that.mirror.Delete(ctx, room.ID)

	that.logger.Info("room deleted", "roomID", room.ID)
}
