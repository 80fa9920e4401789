package store

import (
	"context"
	"log/slog"
	"testing"

	"github.com/dgraph-io/badger/v4"
	"github.com/stretchr/testify/require"
)

func openTestDB(t *testing.T) *badger.DB {
	t.Helper()
	db, err := badger.Open(badger.DefaultOptions(t.TempDir()).WithLoggingLevel(badger.ERROR))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func Test_ApplyUpdates_And_ReadOnce_Subtree(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	s := NewBadgerStore(db, slog.Default())
	ctx := context.Background()

	err := s.ApplyUpdates(ctx, map[string]any{
		"/chats/c1":          map[string]any{"id": "c1"},
		"/chats/c2":          map[string]any{"id": "c2"},
		"/users/u1/chats/c1": map[string]any{"joinedAt": int64(42)},
	})
	req.NoError(err)

	snapshot, err := s.ReadOnce(ctx, "/chats")
	req.NoError(err)
	req.True(snapshot.Exists())
	req.Len(snapshot.Children(), 2)

	var node struct {
		ID string `json:"id"`
	}
	req.NoError(snapshot.Children()[0].Decode(&node))
	req.Equal("c1", node.ID)
	req.Equal("c1", snapshot.Children()[0].Key())
}

func Test_ReadOnce_Missing_Node(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	s := NewBadgerStore(db, slog.Default())

	snapshot, err := s.ReadOnce(context.Background(), "chats")
	req.NoError(err)
	req.False(snapshot.Exists())
	req.Empty(snapshot.Children())
}

func Test_ReadOnce_Branch_Only_Node(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	s := NewBadgerStore(db, slog.Default())
	ctx := context.Background()

	err := s.ApplyUpdates(ctx, map[string]any{
		"users/u1/chats/c1": map[string]any{"joinedAt": int64(1)},
	})
	req.NoError(err)

	// u1 has descendants but no value of its own.
	snapshot, err := s.ReadOnce(ctx, "users/u1")
	req.NoError(err)
	req.True(snapshot.Exists())
	req.False(snapshot.HasValue())
	req.Len(snapshot.Children(), 1)

	// The join record itself is a point read.
	join, err := s.ReadOnce(ctx, "users/u1/chats/c1")
	req.NoError(err)
	req.True(join.HasValue())
}

func Test_ReadOnce_Dedups_Child_Split_By_Sibling(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	s := NewBadgerStore(db, slog.Default())
	ctx := context.Background()

	// "-" sorts before "/", so u1-x sits between u1's value key and u1's
	// descendants in key order. u1 must still come out as one child.
	err := s.ApplyUpdates(ctx, map[string]any{
		"users/u1":          map[string]any{"id": "u1"},
		"users/u1-x":        map[string]any{"id": "u1-x"},
		"users/u1/chats/c1": map[string]any{"joinedAt": int64(1)},
	})
	req.NoError(err)

	snapshot, err := s.ReadOnce(ctx, "users")
	req.NoError(err)
	req.Len(snapshot.Children(), 2)

	keys := make([]string, 0, len(snapshot.Children()))
	for _, child := range snapshot.Children() {
		keys = append(keys, child.Key())
		if child.Key() == "u1" {
			req.True(child.HasValue(), "u1 must keep its value snapshot")
		}
	}
	req.ElementsMatch([]string{"u1", "u1-x"}, keys)
}

func Test_Decode_Shape_Mismatch(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	s := NewBadgerStore(db, slog.Default())
	ctx := context.Background()

	req.NoError(s.ApplyUpdates(ctx, map[string]any{"chats/bad": "not an object"}))

	snapshot, err := s.ReadOnce(ctx, "chats/bad")
	req.NoError(err)

	var node struct {
		ID string `json:"id"`
	}
	err = snapshot.Decode(&node)
	req.Error(err)
	req.Contains(err.Error(), "chats/bad")
}

func Test_GenerateID_Unique_And_Ordered(t *testing.T) {
	req := require.New(t)
	db := openTestDB(t)
	s := NewBadgerStore(db, slog.Default())

	seen := make(map[string]struct{})
	prev := ""
	for i := 0; i < 1000; i++ {
		id := s.GenerateID("chats")
		_, dup := seen[id]
		req.False(dup, "duplicate id %s", id)
		seen[id] = struct{}{}
		req.GreaterOrEqual(id, prev)
		prev = id
	}
}

func Test_Failed_Write_Leaves_No_State(t *testing.T) {
	req := require.New(t)
	dir := t.TempDir()
	db, err := badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	s := NewBadgerStore(db, slog.Default())
	req.NoError(db.Close())

	err = s.ApplyUpdates(context.Background(), map[string]any{
		"chats/c1":          map[string]any{"id": "c1"},
		"users/u1/chats/c1": map[string]any{"joinedAt": int64(1)},
	})
	req.Error(err)

	db, err = badger.Open(badger.DefaultOptions(dir).WithLoggingLevel(badger.ERROR))
	req.NoError(err)
	defer db.Close()

	reopened := NewBadgerStore(db, slog.Default())
	snapshot, err := reopened.ReadOnce(context.Background(), "chats")
	req.NoError(err)
	req.False(snapshot.Exists())
}
