//go:generate go run go.uber.org/mock/mockgen -source=chat.go -destination=../mocks/mock_chat_repository.go -package=mocks
package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"eight-chat/domain"
	"eight-chat/errors"
	"eight-chat/store"
)

const (
	chatsPath = "chats"
	usersPath = "users"
)

type IChatRepository interface {
	FindDirectChat(ctx context.Context, firstID, secondID string) (domain.Chat, error)
	CreateChat(ctx context.Context, memberIDs []string) (domain.Chat, error)
}

type ChatRepository struct {
	store store.IDocumentStore
	log   *slog.Logger
}

func NewChatRepository(documents store.IDocumentStore, log *slog.Logger) ChatRepository {
	return ChatRepository{store: documents, log: log}
}

// chatRecord is the JSON shape of a chat node at /chats/{id}.
type chatRecord struct {
	ID          string          `json:"id"`
	IsGroupChat bool            `json:"isGroupChat"`
	Members     map[string]bool `json:"members"`
	UpdatedAt   int64           `json:"updatedAt"`
}

// joinRecord is the per-user pointer at /users/{uid}/chats/{chatId} marking
// chat membership in that user's chat list.
type joinRecord struct {
	JoinedAt int64 `json:"joinedAt"`
}

// FindDirectChat scans a one-shot snapshot of the chat collection for a
// chat whose member set equals exactly {firstID, secondID}. The first match
// in store order wins. Children that do not decode as chats are skipped.
func (r ChatRepository) FindDirectChat(ctx context.Context, firstID, secondID string) (domain.Chat, error) {
	snapshot, err := r.store.ReadOnce(ctx, chatsPath)
	if err != nil {
		return domain.Chat{}, fmt.Errorf("listing chats: %w", err)
	}
	if !snapshot.Exists() {
		return domain.Chat{}, errors.ErrChatNotFound
	}

	for _, child := range snapshot.Children() {
		var record chatRecord
		if err := child.Decode(&record); err != nil {
			r.log.Warn("Skipping undecodable chat node", "path", child.Path(), "err", err)
			continue
		}
		chat := toChat(record)
		if chat.HasExactMembers(firstID, secondID) {
			return chat, nil
		}
	}
	return domain.Chat{}, errors.ErrChatNotFound
}

// CreateChat mints a store id for the new chat and performs the single
// atomic multi-path write: the chat record plus one join-record per member.
func (r ChatRepository) CreateChat(ctx context.Context, memberIDs []string) (domain.Chat, error) {
	memberIDs = lo.Uniq(memberIDs)
	if len(memberIDs) < 2 {
		return domain.Chat{}, errors.ErrEmptyMemberList
	}

	id := r.store.GenerateID(chatsPath)
	chat := domain.NewChat(id, memberIDs, time.Now().UTC().Truncate(time.Second))

	updates := make(map[string]any, len(memberIDs)+1)
	updates["/"+chatsPath+"/"+id] = fromChat(chat)
	for _, m := range memberIDs {
		updates[fmt.Sprintf("/%s/%s/%s/%s", usersPath, m, chatsPath, id)] = joinRecord{
			JoinedAt: chat.UpdatedAt.Unix(),
		}
	}

	if err := r.store.ApplyUpdates(ctx, updates); err != nil {
		r.log.Error("Failed to write new chat", "chatId", id, "err", err)
		return domain.Chat{}, err
	}
	return chat, nil
}

func toChat(record chatRecord) domain.Chat {
	return domain.Chat{
		ID:          record.ID,
		IsGroupChat: record.IsGroupChat,
		Members:     record.Members,
		UpdatedAt:   time.Unix(record.UpdatedAt, 0).UTC(),
	}
}

func fromChat(chat domain.Chat) chatRecord {
	return chatRecord{
		ID:          chat.ID,
		IsGroupChat: chat.IsGroupChat,
		Members:     chat.Members,
		UpdatedAt:   chat.UpdatedAt.Unix(),
	}
}
