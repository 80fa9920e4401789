package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func Test_New_Chat_Group_Threshold(t *testing.T) {
	req := require.New(t)
	at := time.Now().UTC()

	direct := NewChat("c1", []string{"u1", "u2"}, at)
	req.False(direct.IsGroupChat)
	req.Equal(map[string]bool{"u1": true, "u2": true}, direct.Members)

	group := NewChat("c2", []string{"u1", "u2", "u3"}, at)
	req.True(group.IsGroupChat)

	// Duplicates collapse before the threshold is applied.
	collapsed := NewChat("c3", []string{"u1", "u2", "u2"}, at)
	req.False(collapsed.IsGroupChat)
}

func Test_Has_Exact_Members(t *testing.T) {
	req := require.New(t)
	chat := NewChat("c1", []string{"u1", "u2"}, time.Now().UTC())

	req.True(chat.HasExactMembers("u1", "u2"))
	req.True(chat.HasExactMembers("u2", "u1"))

	req.False(chat.HasExactMembers("u1"))
	req.False(chat.HasExactMembers("u1", "u3"))
	req.False(chat.HasExactMembers("u1", "u2", "u3"))

	// A repeated id is not a pair.
	req.False(chat.HasExactMembers("u1", "u1"))

	wider := NewChat("c2", []string{"u1", "u2", "u3"}, time.Now().UTC())
	req.False(wider.HasExactMembers("u1", "u2"), "a superset must not match")
}
