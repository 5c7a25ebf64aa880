package websocket

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"
	"time"

	"github.com/playroomlab/bingo-backend/internal/apperror"
	"github.com/playroomlab/bingo-backend/internal/pkg"
)

// session - the inbound side of the event gateway: every client event is
// handed to the session state machine together with the sender's
// connection id.
type session interface {
	Connect(playerID string)
	Join(ctx context.Context, playerID, roomID, name string) error
	SubmitBoard(ctx context.Context, playerID, roomID string, board []int) error
	MakeMove(ctx context.Context, playerID, roomID string, number int) error
	PlayAgain(ctx context.Context, playerID, roomID string) error
	Disconnect(ctx context.Context, playerID string)
}

type Server struct {
	logger  *slog.Logger
	session session

	handlers map[string]func(ctx context.Context, playerID string, message *Message) error

	connectionsMutex sync.RWMutex
	connections      map[string]*bufio.ReadWriter
}

func New(logger *slog.Logger) *Server {
	return &Server{
		logger:      logger,
		handlers:    make(map[string]func(context.Context, string, *Message) error),
		connections: make(map[string]*bufio.ReadWriter),
	}
}

// RegisterSession - attaches the session state machine and installs the
// event handlers. Must be called before Start.
func (that *Server) RegisterSession(session session) {
	that.session = session

	that.handlers["join_room"] = that.handleJoinRoom
	that.handlers["submit_board"] = that.handleSubmitBoard
	that.handlers["make_move"] = that.handleMakeMove
	that.handlers["play_again"] = that.handlePlayAgain
}

// Start - starts WebSocket server.
func (that *Server) Start(ctx context.Context, port string) error {
	http.HandleFunc("/ws", func(w http.ResponseWriter, r *http.Request) {
		that.upgradeToWebSocket(ctx, w, r)
	})

	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      http.DefaultServeMux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
	}

	if err := srv.ListenAndServe(); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// upgradeToWebSocket - upgrades the connection to WebSocket and pumps its
// messages until the client goes away.
func (that *Server) upgradeToWebSocket(ctx context.Context, writer http.ResponseWriter, req *http.Request) {
	log := that.logger.With("method", "upgradeToWebSocket")

	if req.Header.Get("Upgrade") != "websocket" {
		http.Error(writer, "not a websocket upgrade", http.StatusBadRequest)
		return
	}

	key := req.Header.Get("Sec-WebSocket-Key")
	acceptKey := pkg.GenerateAcceptKey(key)

	writer.Header().Set("Upgrade", "websocket")
	writer.Header().Set("Connection", "Upgrade")
	writer.Header().Set("Sec-WebSocket-Accept", acceptKey)
	writer.WriteHeader(http.StatusSwitchingProtocols)

	hijacker, ok := writer.(http.Hijacker)
	if !ok {
		log.Error("web server does not support hijacking", "error", http.StatusText(http.StatusInternalServerError))
		return
	}

	conn, bufrw, err := hijacker.Hijack()
	if err != nil {
		log.Error("failed to hijack connection", "error", err)
		return
	}

	defer conn.Close()

	playerID := pkg.GenerateConnectionID()

	that.connectionsMutex.Lock()
	that.connections[playerID] = bufrw
	that.connectionsMutex.Unlock()

	log.Info("WebSocket connection established", "playerID", playerID)

	that.session.Connect(playerID)

	if err = that.handleMessages(ctx, playerID, bufrw); err != nil {
		log.Info("connection closed", "playerID", playerID, "error", err)
	}

	that.connectionsMutex.Lock()
	delete(that.connections, playerID)
	that.connectionsMutex.Unlock()

	// the disconnect must always run to completion: it is the only
	// lifecycle-ending signal for a room.
	that.session.Disconnect(ctx, playerID)
}

// handleMessages - processes messages from the client.
func (that *Server) handleMessages(ctx context.Context, playerID string, bufrw *bufio.ReadWriter) error {
	log := that.logger.With("method", "handleMessages", "playerID", playerID)

	for {
		reqBody, err := that.readRequest(bufrw)
		if err != nil {
			return fmt.Errorf("error reading message: %w", err)
		}

		var message Message
		if err = json.Unmarshal(reqBody, &message); err != nil {
			log.Error("failed to unmarshal message", "error", err)
			continue
		}

		handler, ok := that.handlers[message.Action]
		if !ok {
			log.Error("unknown action", "action", message.Action)
			continue
		}

		if err = handler(ctx, playerID, &message); err != nil {
			that.handleEventError(playerID, &message, err)
		}
	}
}

// handleEventError - the room-full join is the only event error a client
// ever sees; everything else is silently dropped and logged.
func (that *Server) handleEventError(playerID string, message *Message, err error) {
	log := that.logger.With("method", "handleEventError", "playerID", playerID)

	if errors.Is(err, apperror.ErrRoomFull) {
		if sendErr := that.sendError(playerID, "Room is full!"); sendErr != nil {
			log.Error("failed to send error response", "error", sendErr)
		}

		return
	}

	log.Debug("event dropped", "action", message.Action, "error", err)
}
