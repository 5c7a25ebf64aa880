package apperror

import "errors"

var (
	ErrRoomFull      = errors.New("room is full")
	ErrRoomNotFound  = errors.New("room not found")
	ErrNotYourTurn   = errors.New("it's not your turn")
	ErrNotInRoom     = errors.New("player is not in the room")
	ErrGameNotActive = errors.New("game is not active")
)
