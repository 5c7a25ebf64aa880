package websocket

import (
	"context"
	"encoding/json"
	"fmt"
)

func (that *Server) handleJoinRoom(ctx context.Context, playerID string, msg *Message) error {
	var payload Payload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.RoomID == "" {
		return errMissingRoomID
	}

	return that.session.Join(ctx, playerID, payload.RoomID, payload.Name)
}

func (that *Server) handleSubmitBoard(ctx context.Context, playerID string, msg *Message) error {
	var payload Payload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.RoomID == "" {
		return errMissingRoomID
	}

	return that.session.SubmitBoard(ctx, playerID, payload.RoomID, payload.Board)
}

func (that *Server) handleMakeMove(ctx context.Context, playerID string, msg *Message) error {
	var payload Payload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.RoomID == "" {
		return errMissingRoomID
	}

	if payload.Number == nil {
		return errMissingNumber
	}

	return that.session.MakeMove(ctx, playerID, payload.RoomID, *payload.Number)
}

func (that *Server) handlePlayAgain(ctx context.Context, playerID string, msg *Message) error {
	var payload Payload

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return fmt.Errorf("failed to unmarshal payload: %w", err)
	}

	if payload.RoomID == "" {
		return errMissingRoomID
	}

	return that.session.PlayAgain(ctx, playerID, payload.RoomID)
}
