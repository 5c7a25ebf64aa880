package application

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/playroomlab/bingo-backend/internal/config"
	"github.com/playroomlab/bingo-backend/internal/mirror"
	"github.com/playroomlab/bingo-backend/internal/registry"
	"github.com/playroomlab/bingo-backend/internal/repository"
	"github.com/playroomlab/bingo-backend/internal/repository/storage"
	"github.com/playroomlab/bingo-backend/internal/usecase"
	"github.com/playroomlab/bingo-backend/transport/rest"
	"github.com/playroomlab/bingo-backend/transport/websocket"
)

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	// the persistence mirror is best-effort: when redis is unreachable the
	// coordinator runs in memory-only mode, permanently.
	var roomRepo repository.RoomRepository

	redisStorage, err := storage.NewRedisStorage(ctx, conf.Redis.GetRedisAddr())
	if err != nil {
		log.Warn("could not connect to redis storage, running in memory-only mode", "error", err)
	} else {
		defer func() {
			if closeErr := redisStorage.Close(); closeErr != nil {
				log.Error("could not close redis storage", "error", closeErr)
			}
		}()

		roomRepo = repository.NewRoomRepository(redisStorage.Connection)
	}

	rooms := registry.New()
	mirrorWriter := mirror.New(logger, roomRepo)

	wsServer := websocket.New(logger)
	sessionManager := usecase.NewSessionManager(logger, rooms, mirrorWriter, wsServer)
	wsServer.RegisterSession(sessionManager)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
