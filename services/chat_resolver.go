//go:generate go run go.uber.org/mock/mockgen -source=chat_resolver.go -destination=../mocks/mock_chat_resolver_service.go -package=mocks
package services

import (
	"context"
	stderrors "errors"
	"log/slog"

	"eight-chat/domain"
	"eight-chat/errors"
	"eight-chat/observability"
	"eight-chat/repositories"
)

type IChatResolverService interface {
	ResolveOrCreatePrivateChat(ctx context.Context, selfID, otherID string) (domain.Chat, error)
}

// ChatResolverService finds the direct chat between two users, or creates
// it when none exists yet. Uniqueness of the pair chat is best effort: two
// concurrent resolvers can both miss and both create, and the store offers
// no serialization across the read-then-write. First-match-wins on later
// resolves keeps such duplicates benign.
type ChatResolverService struct {
	chats   repositories.IChatRepository
	metrics *observability.Metrics
	log     *slog.Logger
}

func NewChatResolverService(chats repositories.IChatRepository,
	metrics *observability.Metrics, log *slog.Logger) *ChatResolverService {
	return &ChatResolverService{chats: chats, metrics: metrics, log: log}
}

func (s *ChatResolverService) ResolveOrCreatePrivateChat(ctx context.Context, selfID, otherID string) (domain.Chat, error) {
	if selfID == "" || otherID == "" || selfID == otherID {
		return domain.Chat{}, errors.ErrSamePair
	}

	chat, err := s.chats.FindDirectChat(ctx, selfID, otherID)
	switch {
	case err == nil:
		s.log.Info("Found chat", "chatId", chat.ID)
		s.metrics.ChatsResolved.WithLabelValues("found").Inc()
		return chat, nil

	case stderrors.Is(err, errors.ErrChatNotFound):
		s.log.Info("Private chat not found", "self", selfID, "other", otherID)
		chat, err = s.chats.CreateChat(ctx, []string{selfID, otherID})
		if err != nil {
			s.metrics.ChatCreateFailures.Inc()
			return domain.Chat{}, err
		}
		s.metrics.ChatsResolved.WithLabelValues("created").Inc()
		return chat, nil

	default:
		return domain.Chat{}, err
	}
}
