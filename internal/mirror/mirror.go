package mirror

import (
	"context"
	"log/slog"

	"github.com/playroomlab/bingo-backend/internal/entity"
)

type roomRepo interface {
	CreateOrUpdate(ctx context.Context, room *entity.Room) error
	DeleteByID(ctx context.Context, id string) error
}

// Writer - best-effort persistence mirror. Every failure is logged and
// swallowed: the mirror never blocks gameplay and never surfaces to
// clients. With no backing repository the writer degrades to a no-op
// (memory-only mode).
type Writer struct {
	logger *slog.Logger
	repo   roomRepo
}

func New(logger *slog.Logger, repo roomRepo) *Writer {
	return &Writer{
		logger: logger.With("component", "mirror"),
		repo:   repo,
	}
}

func (that *Writer) Save(ctx context.Context, room *entity.Room) {
	if that.repo == nil {
		return
	}

	if err := that.repo.CreateOrUpdate(ctx, room); err != nil {
		that.logger.Error("failed to sync room", "roomID", room.ID, "error", err)
	}
}

func (that *Writer) Delete(ctx context.Context, roomID string) {
	if that.repo == nil {
		return
	}

	if err := that.repo.DeleteByID(ctx, roomID); err != nil {
		that.logger.Error("failed to delete room from mirror", "roomID", roomID, "error", err)
	}
}
