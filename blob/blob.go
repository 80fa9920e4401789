//go:generate go run go.uber.org/mock/mockgen -source=blob.go -destination=../mocks/mock_blob_store.go -package=mocks
package blob

import "context"

// IBlobStore fetches binary objects (profile photos) by reference.
// FetchBytes must never return a truncated object: an object larger than
// maxBytes fails with ErrBlobTooLarge instead.
type IBlobStore interface {
	FetchBytes(ctx context.Context, ref string, maxBytes int64) ([]byte, error)
}
