package server

import (
	"encoding/json"
	stderrors "errors"
	"log/slog"
	"net/http"

	"github.com/rs/cors"

	"eight-chat/auth"
	"eight-chat/errors"
	"eight-chat/services"
)

// Server exposes the chat resolution and profile operations to the mobile
// client as JSON over HTTP.
type Server struct {
	resolver services.IChatResolverService
	profiles services.IProfileService
	tokens   auth.TokenManager
	log      *slog.Logger
}

func New(resolver services.IChatResolverService, profiles services.IProfileService,
	tokens auth.TokenManager, log *slog.Logger) *Server {
	return &Server{resolver: resolver, profiles: profiles, tokens: tokens, log: log}
}

func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/chats/resolve", s.handleResolveChat)
	mux.HandleFunc("GET /v1/users/{id}/profile", s.handleGetProfile)
	mux.HandleFunc("GET /v1/users/{id}/photo", s.handleGetPhoto)

	protected := auth.Middleware(s.tokens)(mux)
	return cors.AllowAll().Handler(protected)
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.log.Error("Failed to encode response", "err", err)
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func (s *Server) writeError(w http.ResponseWriter, err error) {
	s.writeJSON(w, statusFor(err), errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case stderrors.Is(err, errors.ErrUserNotFound),
		stderrors.Is(err, errors.ErrChatNotFound):
		return http.StatusNotFound
	case stderrors.Is(err, errors.ErrSamePair),
		stderrors.Is(err, errors.ErrEmptyMemberList):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
