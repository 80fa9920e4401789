//go:generate go run go.uber.org/mock/mockgen -source=user.go -destination=../mocks/mock_user_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"

	"eight-chat/domain"
	"eight-chat/errors"
	"eight-chat/store"
)

type IUserRepository interface {
	GetUser(ctx context.Context, uid string) (domain.User, error)
}

// UserRepository reads user records at /users/{uid}. Records are written by
// the registration flow elsewhere; this service never creates them.
type UserRepository struct {
	store store.IDocumentStore
	log   *slog.Logger
}

func NewUserRepository(documents store.IDocumentStore, log *slog.Logger) UserRepository {
	return UserRepository{store: documents, log: log}
}

type userRecord struct {
	ID            string `json:"id"`
	Username      string `json:"username"`
	ProfilePicURL string `json:"profilePicUrl"`
}

func (r UserRepository) GetUser(ctx context.Context, uid string) (domain.User, error) {
	snapshot, err := r.store.ReadOnce(ctx, usersPath+"/"+uid)
	if err != nil {
		return domain.User{}, fmt.Errorf("reading user %s: %w", uid, err)
	}
	if !snapshot.HasValue() {
		r.log.Info("User not found", "uid", uid)
		return domain.User{}, errors.ErrUserNotFound
	}

	var record userRecord
	if err := snapshot.Decode(&record); err != nil {
		return domain.User{}, err
	}
	return domain.User{
		ID:            record.ID,
		Username:      record.Username,
		ProfilePicURL: record.ProfilePicURL,
	}, nil
}
