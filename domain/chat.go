package domain

import (
	"time"

	"github.com/samber/lo"
)

// Chat is a conversation between a fixed set of users. Membership is frozen
// at creation: the members map carries a presence marker per user id.
type Chat struct {
	ID          string
	IsGroupChat bool
	Members     map[string]bool
	UpdatedAt   time.Time
}

// NewChat builds a chat for the given member ids. IsGroupChat is derived
// once from the member count and never recomputed afterwards.
func NewChat(id string, memberIDs []string, at time.Time) Chat {
	members := make(map[string]bool, len(memberIDs))
	for _, m := range memberIDs {
		members[m] = true
	}
	return Chat{
		ID:          id,
		IsGroupChat: len(members) > 2,
		Members:     members,
		UpdatedAt:   at,
	}
}

// HasExactMembers reports whether the chat's member set equals the given
// ids, order-independent. A superset never matches.
func (c Chat) HasExactMembers(ids ...string) bool {
	ids = lo.Uniq(ids)
	if len(c.Members) != len(ids) {
		return false
	}
	for _, id := range ids {
		if !c.Members[id] {
			return false
		}
	}
	return true
}

func (c Chat) MemberIDs() []string {
	return lo.Keys(c.Members)
}
