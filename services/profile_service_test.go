package services

import (
	"bytes"
	"context"
	"image"
	"image/png"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"eight-chat/domain"
	"eight-chat/errors"
	"eight-chat/mocks"
)

func pngBytes(t *testing.T, width, height int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, width, height))))
	return buf.Bytes()
}

func TestProfileService_LoadUserProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("returns the user record", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		blobs := mocks.NewMockIBlobStore(ctrl)
		svc := NewProfileService(users, blobs, newTestMetrics(), slog.Default())

		users.EXPECT().
			GetUser(gomock.Any(), "u1").
			Return(domain.User{ID: "u1", Username: "alice", ProfilePicURL: "photos/u1.png"}, nil)

		user, err := svc.LoadUserProfile(context.Background(), "u1")
		req.NoError(err)
		req.Equal("alice", user.Username)
	})

	t.Run("propagates a missing user", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		blobs := mocks.NewMockIBlobStore(ctrl)
		svc := NewProfileService(users, blobs, newTestMetrics(), slog.Default())

		users.EXPECT().
			GetUser(gomock.Any(), "ghost").
			Return(domain.User{}, errors.ErrUserNotFound)

		_, err := svc.LoadUserProfile(context.Background(), "ghost")
		req.ErrorIs(err, errors.ErrUserNotFound)
	})
}

func TestProfileService_FetchProfilePhoto(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	t.Run("fetches, sniffs and decodes the photo", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		blobs := mocks.NewMockIBlobStore(ctrl)
		svc := NewProfileService(users, blobs, newTestMetrics(), slog.Default())

		data := pngBytes(t, 32, 16)
		blobs.EXPECT().
			FetchBytes(gomock.Any(), "photos/u1.png", int64(MaxPhotoBytes)).
			Return(data, nil)

		photo, err := svc.FetchProfilePhoto(context.Background(), "photos/u1.png")

		req.NoError(err)
		req.Equal(data, photo.Data)
		req.Equal("image/png", photo.ContentType)
		req.Equal(32, photo.Width)
		req.Equal(16, photo.Height)
	})

	t.Run("empty reference means no photo, no fetch", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		blobs := mocks.NewMockIBlobStore(ctrl)
		svc := NewProfileService(users, blobs, newTestMetrics(), slog.Default())

		blobs.EXPECT().FetchBytes(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.FetchProfilePhoto(context.Background(), "")
		req.ErrorIs(err, errors.ErrNoProfilePhoto)
	})

	t.Run("propagates an oversize blob", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		blobs := mocks.NewMockIBlobStore(ctrl)
		svc := NewProfileService(users, blobs, newTestMetrics(), slog.Default())

		blobs.EXPECT().
			FetchBytes(gomock.Any(), "photos/huge.png", int64(MaxPhotoBytes)).
			Return(nil, errors.ErrBlobTooLarge)

		_, err := svc.FetchProfilePhoto(context.Background(), "photos/huge.png")
		req.ErrorIs(err, errors.ErrBlobTooLarge)
	})

	t.Run("rejects bytes that do not decode as an image", func(t *testing.T) {
		req := require.New(t)
		users := mocks.NewMockIUserRepository(ctrl)
		blobs := mocks.NewMockIBlobStore(ctrl)
		svc := NewProfileService(users, blobs, newTestMetrics(), slog.Default())

		blobs.EXPECT().
			FetchBytes(gomock.Any(), "photos/garbage", int64(MaxPhotoBytes)).
			Return([]byte("definitely not an image"), nil)

		_, err := svc.FetchProfilePhoto(context.Background(), "photos/garbage")
		req.Error(err)
		req.Contains(err.Error(), "decoding profile photo")
	})
}
