//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	apperrors "task-lab/errors"
)

// User is a member of the static credential catalog. There is no
// registration path; the catalog is seeded at startup.
type User struct {
	Username     string `json:"username"`
	PasswordHash string `json:"passwordHash"`
	CreatedAt    int64  `json:"createdAt"`
}

const userKeyPrefix = "user:"

type IUserRepository interface {
	Create(username, passwordHash string) error
	GetByUsername(username string) (User, error)
}

type UserRepository struct {
	store EntityStore
	log   *slog.Logger
}

func NewUserRepository(store EntityStore, log *slog.Logger) *UserRepository {
	return &UserRepository{store: store, log: log}
}

// Create stores a user unless the username is already taken, which keeps
// catalog seeding idempotent across restarts.
func (r *UserRepository) Create(username, passwordHash string) error {
	key := userKeyPrefix + username
	_, found, err := r.store.Get(key)
	if err != nil {
		return err
	}
	if found {
		return nil
	}
	user := User{
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now().UnixMilli(),
	}
	data, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("marshal user %s: %w", username, err)
	}
	return r.store.Set(key, data)
}

func (r *UserRepository) GetByUsername(username string) (User, error) {
	data, found, err := r.store.Get(userKeyPrefix + username)
	if err != nil {
		return User{}, err
	}
	if !found {
		return User{}, fmt.Errorf("%w: user %s", apperrors.ErrNotFound, username)
	}
	var user User
	if err := json.Unmarshal(data, &user); err != nil {
		return User{}, fmt.Errorf("unmarshal user %s: %w", username, err)
	}
	return user, nil
}
