//go:generate go run go.uber.org/mock/mockgen -source=comment.go -destination=../mocks/mock_comment_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"task-lab/domain/board"
)

type ICommentRepository interface {
	Append(areaID string, c board.Comment) (board.Comment, error)
	ListByArea(areaID string) ([]board.Comment, error)
	CountAll() (int, error)
}

type CommentRepository struct {
	store EntityStore
	log   *slog.Logger
}

func NewCommentRepository(store EntityStore, log *slog.Logger) *CommentRepository {
	return &CommentRepository{store: store, log: log}
}

// Append stores a new comment under "comment:{areaId}:{millis}", advancing
// the timestamp on a same-millisecond collision. Comments are append-only;
// there is no update or delete.
func (r *CommentRepository) Append(areaID string, c board.Comment) (board.Comment, error) {
	ts := c.Timestamp
	for i := 0; i < maxTimestampBumps; i++ {
		key := board.CommentKey(areaID, ts)
		_, found, err := r.store.Get(key)
		if err != nil {
			return board.Comment{}, err
		}
		if found {
			ts++
			continue
		}
		c.ID = key
		c.Timestamp = ts
		data, err := json.Marshal(c)
		if err != nil {
			return board.Comment{}, fmt.Errorf("marshal comment: %w", err)
		}
		if err := r.store.Set(key, data); err != nil {
			return board.Comment{}, err
		}
		return c, nil
	}
	return board.Comment{}, fmt.Errorf("no free comment key for area %s after %d attempts", areaID, maxTimestampBumps)
}

// ListByArea returns an area's comments ordered newest first.
func (r *CommentRepository) ListByArea(areaID string) ([]board.Comment, error) {
	entries, err := r.store.ScanByPrefix(board.CommentAreaPrefix(areaID))
	if err != nil {
		return nil, err
	}
	comments := make([]board.Comment, 0, len(entries))
	for _, e := range entries {
		var c board.Comment
		if err := json.Unmarshal(e.Value, &c); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", e.Key, err)
		}
		comments = append(comments, c)
	}
	sort.Slice(comments, func(i, j int) bool { return comments[i].Timestamp > comments[j].Timestamp })
	return comments, nil
}

func (r *CommentRepository) CountAll() (int, error) {
	entries, err := r.store.ScanByPrefix(board.CommentKeyPrefix)
	if err != nil {
		return 0, err
	}
	return len(entries), nil
}
