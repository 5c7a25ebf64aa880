package mirror

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/playroomlab/bingo-backend/internal/entity"
)

var errBackendDown = errors.New("backend down")

type failingRepo struct {
	saveCalls   int
	deleteCalls int
}

func (that *failingRepo) CreateOrUpdate(_ context.Context, _ *entity.Room) error {
	that.saveCalls++
	return errBackendDown
}

func (that *failingRepo) DeleteByID(_ context.Context, _ string) error {
	that.deleteCalls++
	return errBackendDown
}

func TestWriter_SwallowsBackendFailures(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Given: a mirror whose backend always fails
	repo := &failingRepo{}
	writer := New(logger, repo)

	// When: saving and deleting a room
	writer.Save(ctx, entity.NewRoom("room-1"))
	writer.Delete(ctx, "room-1")

	// Then: the backend was attempted once per call and nothing escaped
	assert.Equal(t, 1, repo.saveCalls)
	assert.Equal(t, 1, repo.deleteCalls)
}

func TestWriter_MemoryOnlyMode(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	// Given: no backing store configured
	writer := New(logger, nil)

	// When: saving and deleting
	// Then: both are silent no-ops
	writer.Save(ctx, entity.NewRoom("room-1"))
	writer.Delete(ctx, "room-1")
}
