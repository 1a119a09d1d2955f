//go:generate go run go.uber.org/mock/mockgen -source=subpoint.go -destination=../mocks/mock_subpoint_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"sort"

	"task-lab/domain/board"
	apperrors "task-lab/errors"
)

type ISubPointRepository interface {
	Insert(areaID string, sp board.SubPoint) (board.SubPoint, error)
	Get(id string) (board.SubPoint, error)
	Put(sp board.SubPoint) error
	Delete(id string) error
	ListByArea(areaID string) ([]board.SubPoint, error)
	ListAll() ([]board.SubPoint, error)
}

type SubPointRepository struct {
	store EntityStore
	log   *slog.Logger
}

func NewSubPointRepository(store EntityStore, log *slog.Logger) *SubPointRepository {
	return &SubPointRepository{store: store, log: log}
}

// maxTimestampBumps bounds the same-millisecond collision search on insert.
const maxTimestampBumps = 1000

// Insert persists a new sub-point under "subpoint:{areaId}:{millis}" using
// sp.Timestamp as the creation time. If the key is taken (two creations in
// the same millisecond) the timestamp is advanced until a free slot is
// found, keeping the identifier contract without overwriting a sibling.
func (r *SubPointRepository) Insert(areaID string, sp board.SubPoint) (board.SubPoint, error) {
	ts := sp.Timestamp
	for i := 0; i < maxTimestampBumps; i++ {
		key := board.SubPointKey(areaID, ts)
		_, found, err := r.store.Get(key)
		if err != nil {
			return board.SubPoint{}, err
		}
		if found {
			ts++
			continue
		}
		sp.ID = key
		sp.Timestamp = ts
		data, err := json.Marshal(sp)
		if err != nil {
			return board.SubPoint{}, fmt.Errorf("marshal sub-point: %w", err)
		}
		if err := r.store.Set(key, data); err != nil {
			return board.SubPoint{}, err
		}
		return sp, nil
	}
	return board.SubPoint{}, fmt.Errorf("no free sub-point key for area %s after %d attempts", areaID, maxTimestampBumps)
}

func (r *SubPointRepository) Get(id string) (board.SubPoint, error) {
	data, found, err := r.store.Get(id)
	if err != nil {
		return board.SubPoint{}, err
	}
	if !found {
		return board.SubPoint{}, fmt.Errorf("%w: sub-point %s", apperrors.ErrNotFound, id)
	}
	var sp board.SubPoint
	if err := json.Unmarshal(data, &sp); err != nil {
		return board.SubPoint{}, fmt.Errorf("unmarshal sub-point %s: %w", id, err)
	}
	return sp, nil
}

// Put rewrites an existing sub-point in place under its own identifier.
func (r *SubPointRepository) Put(sp board.SubPoint) error {
	data, err := json.Marshal(sp)
	if err != nil {
		return fmt.Errorf("marshal sub-point %s: %w", sp.ID, err)
	}
	return r.store.Set(sp.ID, data)
}

// Delete removes the record only. Sub-points whose dependsOn referenced it
// are left with a dangling reference on purpose; dependency resolution
// treats those as permanently unsatisfied.
func (r *SubPointRepository) Delete(id string) error {
	return r.store.Delete(id)
}

func (r *SubPointRepository) ListByArea(areaID string) ([]board.SubPoint, error) {
	return r.scan(board.SubPointAreaPrefix(areaID))
}

// ListAll returns the full universe of sub-points across every area, the
// input for cross-area dependency resolution.
func (r *SubPointRepository) ListAll() ([]board.SubPoint, error) {
	return r.scan(board.SubPointKeyPrefix)
}

func (r *SubPointRepository) scan(prefix string) ([]board.SubPoint, error) {
	entries, err := r.store.ScanByPrefix(prefix)
	if err != nil {
		return nil, err
	}
	subpoints := make([]board.SubPoint, 0, len(entries))
	for _, e := range entries {
		var sp board.SubPoint
		if err := json.Unmarshal(e.Value, &sp); err != nil {
			return nil, fmt.Errorf("unmarshal %s: %w", e.Key, err)
		}
		subpoints = append(subpoints, sp)
	}
	sort.Slice(subpoints, func(i, j int) bool { return subpoints[i].Timestamp < subpoints[j].Timestamp })
	return subpoints, nil
}
