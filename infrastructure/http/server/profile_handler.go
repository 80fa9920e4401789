package server

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"sync"

	"eight-chat/domain"
)

type profileResponse struct {
	UserID        string `json:"userId"`
	Username      string `json:"username"`
	ProfilePicURL string `json:"profilePicUrl"`
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	user, err := s.profiles.LoadUserProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, profileResponse{
		UserID:        user.ID,
		Username:      user.Username,
		ProfilePicURL: user.ProfilePicURL,
	})
}

// handleGetPhoto serves the user's profile photo. A missing or broken photo
// falls back to a placeholder so the client always has something to render.
func (s *Server) handleGetPhoto(w http.ResponseWriter, r *http.Request) {
	user, err := s.profiles.LoadUserProfile(r.Context(), r.PathValue("id"))
	if err != nil {
		s.writeError(w, err)
		return
	}

	photo, err := s.profiles.FetchProfilePhoto(r.Context(), user.ProfilePicURL)
	if err != nil {
		s.log.Info("Serving placeholder photo", "uid", user.ID, "reason", err)
		photo = placeholderPhoto()
	}

	w.Header().Set("Content-Type", photo.ContentType)
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(photo.Data); err != nil {
		s.log.Error("Failed to write photo response", "err", err)
	}
}

var placeholderOnce = sync.OnceValue(func() domain.Photo {
	const size = 64
	img := image.NewRGBA(image.Rect(0, 0, size, size))
	grey := color.RGBA{R: 0xBD, G: 0xBD, B: 0xBD, A: 0xFF}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			img.Set(x, y, grey)
		}
	}
	var buf bytes.Buffer
	_ = png.Encode(&buf, img)
	return domain.Photo{
		Data:        buf.Bytes(),
		ContentType: "image/png",
		Width:       size,
		Height:      size,
	}
})

func placeholderPhoto() domain.Photo {
	return placeholderOnce()
}
