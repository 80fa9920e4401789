package blob

import (
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"eight-chat/errors"
)

type Config struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	UseSSL    bool
	Bucket    string
}

// MinioStore serves blobs out of an S3-compatible bucket. Object keys are
// the references stored on user records (profilePicUrl).
type MinioStore struct {
	cfg    Config
	client *minio.Client
	log    *slog.Logger
}

func NewMinioStore(cfg Config, log *slog.Logger) (*MinioStore, error) {
	// minio.New wants a bare host; endpoints from config may carry a scheme.
	endpoint := strings.TrimPrefix(strings.TrimPrefix(cfg.Endpoint, "https://"), "http://")
	cl, err := minio.New(endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(cfg.AccessKey, cfg.SecretKey, ""),
		Secure: cfg.UseSSL,
	})
	if err != nil {
		return nil, err
	}
	return &MinioStore{cfg: cfg, client: cl, log: log}, nil
}

func (s *MinioStore) EnsureBucket(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.cfg.Bucket)
	if err != nil {
		return err
	}
	if !exists {
		return s.client.MakeBucket(ctx, s.cfg.Bucket, minio.MakeBucketOptions{})
	}
	return nil
}

// FetchBytes reads at most maxBytes from the object. The read is bounded at
// maxBytes+1 so an oversize object is detected without draining it.
func (s *MinioStore) FetchBytes(ctx context.Context, ref string, maxBytes int64) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.cfg.Bucket, ref, minio.GetObjectOptions{})
	if err != nil {
		return nil, fmt.Errorf("fetching blob %q: %w", ref, err)
	}
	defer obj.Close()

	data, err := readCapped(obj, maxBytes)
	switch {
	case stderrors.Is(err, errors.ErrBlobTooLarge):
		s.log.Warn("Blob exceeds fetch cap", "ref", ref, "cap", maxBytes)
		return nil, err
	case err != nil:
		return nil, fmt.Errorf("reading blob %q: %w", ref, err)
	}
	return data, nil
}

// readCapped reads at most maxBytes from r. The read is bounded at
// maxBytes+1 so an oversize source is detected without draining it, and an
// oversize source never yields truncated bytes.
func readCapped(r io.Reader, maxBytes int64) ([]byte, error) {
	data, err := io.ReadAll(io.LimitReader(r, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if int64(len(data)) > maxBytes {
		return nil, errors.ErrBlobTooLarge
	}
	return data, nil
}
