//go:generate go run go.uber.org/mock/mockgen -source=profile_service.go -destination=../mocks/mock_profile_service.go -package=mocks
package services

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"

	"github.com/gabriel-vasile/mimetype"

	"eight-chat/blob"
	"eight-chat/domain"
	"eight-chat/errors"
	"eight-chat/observability"
	"eight-chat/repositories"
)

// MaxPhotoBytes caps a profile photo fetch at 50 MB.
const MaxPhotoBytes = 50 * 1000 * 1000

type IProfileService interface {
	LoadUserProfile(ctx context.Context, uid string) (domain.User, error)
	FetchProfilePhoto(ctx context.Context, ref string) (domain.Photo, error)
}

type ProfileService struct {
	users   repositories.IUserRepository
	blobs   blob.IBlobStore
	metrics *observability.Metrics
	log     *slog.Logger
}

func NewProfileService(users repositories.IUserRepository, blobs blob.IBlobStore,
	metrics *observability.Metrics, log *slog.Logger) *ProfileService {
	return &ProfileService{users: users, blobs: blobs, metrics: metrics, log: log}
}

func (s *ProfileService) LoadUserProfile(ctx context.Context, uid string) (domain.User, error) {
	user, err := s.users.GetUser(ctx, uid)
	if err != nil {
		s.metrics.ProfileLoads.WithLabelValues("miss").Inc()
		return domain.User{}, err
	}
	s.metrics.ProfileLoads.WithLabelValues("hit").Inc()
	return user, nil
}

// FetchProfilePhoto pulls the referenced blob, sniffs its media type and
// validates that it decodes as an image before handing it to the caller.
// An empty reference means the user never uploaded a photo.
func (s *ProfileService) FetchProfilePhoto(ctx context.Context, ref string) (domain.Photo, error) {
	if ref == "" {
		return domain.Photo{}, errors.ErrNoProfilePhoto
	}

	data, err := s.blobs.FetchBytes(ctx, ref, MaxPhotoBytes)
	if err != nil {
		s.metrics.PhotoFetches.WithLabelValues("error").Inc()
		s.log.Error("Profile photo fetch failed", "ref", ref, "err", err)
		return domain.Photo{}, err
	}

	config, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		s.metrics.PhotoFetches.WithLabelValues("undecodable").Inc()
		return domain.Photo{}, fmt.Errorf("decoding profile photo %q: %w", ref, err)
	}

	s.metrics.PhotoFetches.WithLabelValues("ok").Inc()
	s.log.Debug("Fetched profile photo", "ref", ref, "format", format,
		"width", config.Width, "height", config.Height)
	return domain.Photo{
		Data:        data,
		ContentType: mimetype.Detect(data).String(),
		Width:       config.Width,
		Height:      config.Height,
	}, nil
}
