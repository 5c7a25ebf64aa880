package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/playroomlab/bingo-backend/internal/entity"
)

var ErrRoomNotFound = errors.New("room not found")

type RoomRepository interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	GetByID(ctx context.Context, id string) (*entity.Room, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbRoom struct {
	client *redis.Client
}

func NewRoomRepository(client *redis.Client) RoomRepository {
	return &dbRoom{
		client: client,
	}
}

// roomDocument - the persisted shape of a room, keyed by room id. Players
// are stored as a mapping from connection id to player state.
type roomDocument struct {
	Status  string                    `json:"status"`
	Turn    string                    `json:"turn"`
	Players map[string]playerDocument `json:"players"`
}

type playerDocument struct {
	Name   string `json:"name"`
	Board  []int  `json:"board"`
	Marked []int  `json:"marked"`
	Ready  bool   `json:"ready"`
}

func (that *dbRoom) CreateOrUpdate(ctx context.Context, room *entity.Room) error {
	document := newRoomDocument(room)

	roomJSON, err := json.Marshal(document)
	if err != nil {
		return fmt.Errorf("could not marshal room: %w", err)
	}

	roomKey := "room:" + room.ID
	err = that.client.Set(ctx, roomKey, roomJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set room: %w", err)
	}

	return nil
}

func (that *dbRoom) GetByID(ctx context.Context, id string) (*entity.Room, error) {
	roomKey := "room:" + id

	response, err := that.client.Get(ctx, roomKey).Result()

	if errors.Is(err, redis.Nil) {
		return nil, ErrRoomNotFound
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get room by ID: %w", err)
	}

	var document roomDocument
	if err = json.Unmarshal([]byte(response), &document); err != nil {
		return nil, fmt.Errorf("failed to unmarshal room: %w", err)
	}

	return document.toRoom(id), nil
}

func (that *dbRoom) DeleteByID(ctx context.Context, id string) error {
	roomKey := "room:" + id

	err := that.client.Del(ctx, roomKey).Err()
	if err != nil {
		return fmt.Errorf("failed to delete room by ID: %w", err)
	}

	return nil
}

func newRoomDocument(room *entity.Room) roomDocument {
	document := roomDocument{
		Status:  room.Status,
		Turn:    room.Turn,
		Players: make(map[string]playerDocument, len(room.Players)),
	}

	for _, player := range room.Players {
		document.Players[player.ID] = playerDocument{
			Name:   player.Name,
			Board:  player.Board,
			Marked: player.Marked,
			Ready:  player.Ready,
		}
	}

	return document
}

func (that roomDocument) toRoom(id string) *entity.Room {
	room := entity.NewRoom(id)
	room.Status = that.Status
	room.Turn = that.Turn

	for playerID, document := range that.Players {
		player := entity.NewPlayer(playerID, document.Name)
		player.Board = document.Board
		player.Marked = document.Marked
		player.Ready = document.Ready

		room.AddPlayer(player)
	}

	return room
}
