package repositories

import (
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"

	"task-lab/domain/board"
)

func TestCommentRepository_AppendAndOrder(t *testing.T) {
	req := require.New(t)
	repo := NewCommentRepository(SetupTestStore(t), slog.Default())

	old, err := repo.Append("ai", board.Comment{Username: "Jessy", Message: "first", Timestamp: 1000})
	req.NoError(err)
	req.Equal("comment:ai:1000", old.ID)

	recent, err := repo.Append("ai", board.Comment{Username: "Jessy", Message: "second", Timestamp: 2000})
	req.NoError(err)

	comments, err := repo.ListByArea("ai")
	req.NoError(err)
	req.Len(comments, 2)
	// Newest first.
	req.Equal(recent.ID, comments[0].ID)
	req.Equal(old.ID, comments[1].ID)
}

func TestCommentRepository_AppendBumpsOnCollision(t *testing.T) {
	req := require.New(t)
	repo := NewCommentRepository(SetupTestStore(t), slog.Default())

	_, err := repo.Append("ai", board.Comment{Username: "a", Message: "one", Timestamp: 5000})
	req.NoError(err)
	bumped, err := repo.Append("ai", board.Comment{Username: "a", Message: "two", Timestamp: 5000})
	req.NoError(err)
	req.Equal(int64(5001), bumped.Timestamp)
	req.Equal("comment:ai:5001", bumped.ID)
}

func TestCommentRepository_CountAllSpansAreas(t *testing.T) {
	req := require.New(t)
	repo := NewCommentRepository(SetupTestStore(t), slog.Default())

	_, err := repo.Append("ai", board.Comment{Username: "a", Message: "x", Timestamp: 1})
	req.NoError(err)
	_, err = repo.Append("impresion", board.Comment{Username: "b", Message: "y", Timestamp: 2})
	req.NoError(err)

	count, err := repo.CountAll()
	req.NoError(err)
	req.Equal(2, count)
}
