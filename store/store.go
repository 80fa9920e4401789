//go:generate go run go.uber.org/mock/mockgen -source=store.go -destination=../mocks/mock_document_store.go -package=mocks
package store

import (
	"context"
	"encoding/json"
	"strings"

	"eight-chat/errors"
)

// IDocumentStore is a tree-structured document store addressed by
// slash-separated paths, in the manner of a managed realtime database.
// Reads are point-in-time snapshots; ApplyUpdates is an atomic multi-path
// write: either every path is written or none is.
type IDocumentStore interface {
	// ReadOnce returns a one-shot snapshot of the subtree rooted at path.
	// A missing node is not an error: the snapshot reports Exists() == false.
	ReadOnce(ctx context.Context, path string) (Snapshot, error)
	// GenerateID returns a fresh collision-free child id for parentPath.
	// Ids are time-prefixed, so store order is roughly creation order.
	GenerateID(parentPath string) string
	// ApplyUpdates writes every path/value pair in a single transaction.
	ApplyUpdates(ctx context.Context, updates map[string]any) error
}

// Snapshot is an immutable point-in-time view of one node and its direct
// children. Child order is the store's key order; callers must not rely on
// it for correctness.
type Snapshot struct {
	path     string
	raw      []byte
	children []Snapshot
	branch   bool
}

func NewSnapshot(path string, raw []byte, children []Snapshot) Snapshot {
	return Snapshot{path: path, raw: raw, children: children}
}

// NewBranchSnapshot marks a node that holds no value of its own but is
// known to have descendants deeper in the tree.
func NewBranchSnapshot(path string) Snapshot {
	return Snapshot{path: path, branch: true}
}

// Exists reports whether the node holds a value or has any children.
func (s Snapshot) Exists() bool {
	return len(s.raw) > 0 || len(s.children) > 0 || s.branch
}

// HasValue reports whether the node holds a value of its own, as opposed
// to existing only as a branch above deeper nodes.
func (s Snapshot) HasValue() bool {
	return len(s.raw) > 0
}

func (s Snapshot) Path() string {
	return s.path
}

// Key is the last segment of the node's path.
func (s Snapshot) Key() string {
	if i := strings.LastIndexByte(s.path, '/'); i >= 0 {
		return s.path[i+1:]
	}
	return s.path
}

func (s Snapshot) Children() []Snapshot {
	return s.children
}

// Decode unmarshals the node's value into v. A shape mismatch is surfaced
// as a DecodeError carrying the node path.
func (s Snapshot) Decode(v any) error {
	if len(s.raw) == 0 {
		return &errors.DecodeError{Path: s.path, Err: errors.ErrNodeNotFound}
	}
	if err := json.Unmarshal(s.raw, v); err != nil {
		return &errors.DecodeError{Path: s.path, Err: err}
	}
	return nil
}

// NormalizePath strips the leading and trailing slashes callers tend to
// write in absolute update maps ("/chats/{id}").
func NormalizePath(path string) string {
	return strings.Trim(path, "/")
}
