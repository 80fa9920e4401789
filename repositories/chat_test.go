package repositories

import (
	"context"
	"fmt"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"eight-chat/errors"
	"eight-chat/mocks"
	"eight-chat/store"
)

func newTestStore(t *testing.T) *store.BadgerStore {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return store.NewBadgerStore(db, slog.Default())
}

func Test_Create_Private_Chat(t *testing.T) {
	req := require.New(t)
	documents := newTestStore(t)
	repository := NewChatRepository(documents, slog.Default())
	ctx := context.Background()

	chat, err := repository.CreateChat(ctx, []string{"u1", "u2"})
	req.NoError(err)
	req.NotEmpty(chat.ID)
	req.False(chat.IsGroupChat)
	req.Equal(map[string]bool{"u1": true, "u2": true}, chat.Members)

	// The multi-path write fans out to the chat record and one join-record
	// per member.
	record, err := documents.ReadOnce(ctx, "chats/"+chat.ID)
	req.NoError(err)
	req.True(record.HasValue())

	for _, m := range []string{"u1", "u2"} {
		join, err := documents.ReadOnce(ctx, fmt.Sprintf("users/%s/chats/%s", m, chat.ID))
		req.NoError(err)
		req.True(join.HasValue(), "missing join-record for %s", m)

		var payload struct {
			JoinedAt int64 `json:"joinedAt"`
		}
		req.NoError(join.Decode(&payload))
		req.Equal(chat.UpdatedAt.Unix(), payload.JoinedAt)
	}
}

func Test_Create_Group_Chat_Threshold(t *testing.T) {
	req := require.New(t)
	repository := NewChatRepository(newTestStore(t), slog.Default())
	ctx := context.Background()

	direct, err := repository.CreateChat(ctx, []string{"u1", "u2"})
	req.NoError(err)
	req.False(direct.IsGroupChat)

	group, err := repository.CreateChat(ctx, []string{"u1", "u2", "u3"})
	req.NoError(err)
	req.True(group.IsGroupChat)
}

func Test_Create_Chat_Rejects_Degenerate_Member_Sets(t *testing.T) {
	req := require.New(t)
	repository := NewChatRepository(newTestStore(t), slog.Default())
	ctx := context.Background()

	_, err := repository.CreateChat(ctx, []string{"u1"})
	req.ErrorIs(err, errors.ErrEmptyMemberList)

	_, err = repository.CreateChat(ctx, []string{"u1", "u1"})
	req.ErrorIs(err, errors.ErrEmptyMemberList)
}

func Test_Find_Direct_Chat(t *testing.T) {
	req := require.New(t)
	repository := NewChatRepository(newTestStore(t), slog.Default())
	ctx := context.Background()

	created, err := repository.CreateChat(ctx, []string{"u1", "u2"})
	req.NoError(err)

	t.Run("finds the pair regardless of argument order", func(t *testing.T) {
		found, err := repository.FindDirectChat(ctx, "u1", "u2")
		require.NoError(t, err)
		require.Equal(t, created.ID, found.ID)

		found, err = repository.FindDirectChat(ctx, "u2", "u1")
		require.NoError(t, err)
		require.Equal(t, created.ID, found.ID)
	})

	t.Run("does not match a superset of the pair", func(t *testing.T) {
		_, err := repository.CreateChat(ctx, []string{"u1", "u2", "u3"})
		require.NoError(t, err)

		_, err = repository.FindDirectChat(ctx, "u1", "u3")
		require.ErrorIs(t, err, errors.ErrChatNotFound)
	})

	t.Run("reports not found on an empty collection", func(t *testing.T) {
		fresh := NewChatRepository(newTestStore(t), slog.Default())
		_, err := fresh.FindDirectChat(ctx, "u1", "u2")
		require.ErrorIs(t, err, errors.ErrChatNotFound)
	})
}

func Test_Find_Direct_Chat_Skips_Undecodable_Nodes(t *testing.T) {
	req := require.New(t)
	documents := newTestStore(t)
	repository := NewChatRepository(documents, slog.Default())
	ctx := context.Background()

	// A corrupt sibling must not break resolution of the valid chat.
	req.NoError(documents.ApplyUpdates(ctx, map[string]any{
		"chats/0000000000000000000-corrupt": "not a chat",
	}))

	created, err := repository.CreateChat(ctx, []string{"u1", "u2"})
	req.NoError(err)

	found, err := repository.FindDirectChat(ctx, "u1", "u2")
	req.NoError(err)
	req.Equal(created.ID, found.ID)
}

func Test_Resolve_Twice_Returns_Same_Chat(t *testing.T) {
	req := require.New(t)
	repository := NewChatRepository(newTestStore(t), slog.Default())
	ctx := context.Background()

	created, err := repository.CreateChat(ctx, []string{"u1", "u2"})
	req.NoError(err)

	first, err := repository.FindDirectChat(ctx, "u1", "u2")
	req.NoError(err)
	second, err := repository.FindDirectChat(ctx, "u1", "u2")
	req.NoError(err)

	req.Equal(created.ID, first.ID)
	req.Equal(first.ID, second.ID)
}

func Test_Create_Chat_Write_Failure_Surfaces_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	req := require.New(t)

	documents := mocks.NewMockIDocumentStore(ctrl)
	repository := NewChatRepository(documents, slog.Default())

	documents.EXPECT().GenerateID("chats").Return("chat-1")
	documents.EXPECT().
		ApplyUpdates(gomock.Any(), gomock.Len(3)).
		Return(fmt.Errorf("store unavailable")).
		Times(1)

	_, err := repository.CreateChat(context.Background(), []string{"u1", "u2"})
	req.Error(err)
	req.Contains(err.Error(), "store unavailable")
}
