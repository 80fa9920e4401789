package server

import (
	"encoding/json"
	"net/http"
	"sort"

	"github.com/go-playground/validator/v10"

	"eight-chat/auth"
	"eight-chat/domain"
)

var validate = validator.New()

type resolveChatRequest struct {
	OtherUserID string `json:"otherUserId" validate:"required"`
}

// chatResponse is the payload the client needs to open the chat view.
type chatResponse struct {
	ChatID      string   `json:"chatId"`
	IsGroupChat bool     `json:"isGroupChat"`
	Members     []string `json:"members"`
	UpdatedAt   int64    `json:"updatedAt"`
}

// handleResolveChat resolves the direct chat between the caller and the
// requested user, creating it when it does not exist yet.
func (s *Server) handleResolveChat(w http.ResponseWriter, r *http.Request) {
	selfID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		http.Error(w, "missing identity", http.StatusUnauthorized)
		return
	}

	var req resolveChatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "malformed request body", http.StatusBadRequest)
		return
	}
	if err := validate.Struct(req); err != nil {
		http.Error(w, "otherUserId is required", http.StatusBadRequest)
		return
	}

	chat, err := s.resolver.ResolveOrCreatePrivateChat(r.Context(), selfID, req.OtherUserID)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusOK, toChatResponse(chat))
}

func toChatResponse(chat domain.Chat) chatResponse {
	members := chat.MemberIDs()
	sort.Strings(members)
	return chatResponse{
		ChatID:      chat.ID,
		IsGroupChat: chat.IsGroupChat,
		Members:     members,
		UpdatedAt:   chat.UpdatedAt.Unix(),
	}
}
