package webhook

import (
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/proto"
)

// MemberEvent is sent when a member leaves a team.
type MemberEvent struct {
	Common

	// Member is the member who left.
	Member User `json:"member" url:"member"`
}

// NewMemberLeftEvent returns a member left event.
func NewMemberLeftEvent(team proto.Team, member uuid.UUID, at time.Time) MemberEvent {
	return MemberEvent{
		Common: newCommon(EventMemberLeft, team, member, at),
		Member: User{ID: member.String()},
	}
}
