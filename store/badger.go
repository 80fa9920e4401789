package store

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

// BadgerStore keeps the document tree in BadgerDB. Every node value lives
// at a key equal to its normalized path ("chats/{id}"), so a subtree is a
// prefix scan and a point read is a single Get.
type BadgerStore struct {
	db  *badger.DB
	log *slog.Logger
}

func NewBadgerStore(db *badger.DB, log *slog.Logger) *BadgerStore {
	return &BadgerStore{db: db, log: log}
}

func (s *BadgerStore) ReadOnce(ctx context.Context, path string) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	path = NormalizePath(path)

	var raw []byte
	var children []Snapshot
	err := s.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get([]byte(path))
		switch err {
		case nil:
			raw, err = item.ValueCopy(nil)
			if err != nil {
				return err
			}
		case badger.ErrKeyNotFound:
			// Absence of a value does not imply absence of children.
		default:
			return err
		}

		var scanErr error
		children, scanErr = scanChildren(txn, path)
		return scanErr
	})
	if err != nil {
		return Snapshot{}, fmt.Errorf("reading %q: %w", path, err)
	}
	return NewSnapshot(path, raw, children), nil
}

// scanChildren collects the direct children of path in key order. Only the
// child's own value is loaded; grandchildren stay on disk until a caller
// reads the child path itself.
func scanChildren(txn *badger.Txn, path string) ([]Snapshot, error) {
	prefixStr := path + "/"
	prefix := []byte(prefixStr)

	options := badger.DefaultIteratorOptions
	it := txn.NewIterator(options)
	defer it.Close()

	var children []Snapshot
	seen := make(map[string]struct{})
	for it.Seek(prefix); it.ValidForPrefix(prefix); it.Next() {
		item := it.Item()
		rest := string(item.Key()[len(prefixStr):])
		name, _, nested := strings.Cut(rest, "/")
		// Keys of one child are not necessarily adjacent: "-" sorts before
		// "/", so a sibling like "u1-x" can sit between "u1" and "u1/...".
		// A child's own value key still sorts before its descendants.
		if _, ok := seen[name]; ok {
			continue
		}
		seen[name] = struct{}{}

		if nested {
			children = append(children, NewBranchSnapshot(prefixStr+name))
			continue
		}
		childRaw, err := item.ValueCopy(nil)
		if err != nil {
			return nil, err
		}
		children = append(children, NewSnapshot(prefixStr+name, childRaw, nil))
	}
	return children, nil
}

// GenerateID follows the message-key scheme: a 19-digit zero-padded
// timestamp for natural ordering plus a UUID as a collision disconnector
// should two ids be minted in the same nanosecond.
func (s *BadgerStore) GenerateID(parentPath string) string {
	return fmt.Sprintf("%019d-%s", time.Now().UnixNano(), uuid.NewString())
}

func (s *BadgerStore) ApplyUpdates(ctx context.Context, updates map[string]any) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	encoded := make(map[string][]byte, len(updates))
	for path, value := range updates {
		data, err := json.Marshal(value)
		if err != nil {
			return fmt.Errorf("encoding %q: %w", path, err)
		}
		encoded[NormalizePath(path)] = data
	}

	err := s.db.Update(func(txn *badger.Txn) error {
		for path, data := range encoded {
			if err := txn.Set([]byte(path), data); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("multi-path write (%d paths): %w", len(updates), err)
	}
	return nil
}
