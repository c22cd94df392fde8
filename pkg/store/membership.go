package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
)

// MembershipStore is a store for team seats and members.
//
// A seat is held by every teamed user, captain or member, and is unique per
// user. Member rows exist only for non-captains.
type MembershipStore interface {
	CreateTeamSeat(ctx context.Context, h db.Handler, seat models.TeamSeat) error
	GetTeamSeatByUserID(ctx context.Context, h db.Handler, user uuid.UUID) (models.TeamSeat, error)
	DeleteTeamSeat(ctx context.Context, h db.Handler, team int64, user uuid.UUID) error
	DeleteTeamSeatsByTeamID(ctx context.Context, h db.Handler, team int64) error

	AddTeamMember(ctx context.Context, h db.Handler, team int64, user uuid.UUID, joinedAt time.Time) error
	GetTeamMember(ctx context.Context, h db.Handler, team int64, user uuid.UUID) (models.TeamMember, error)
	GetTeamMembershipsByUserID(ctx context.Context, h db.Handler, user uuid.UUID) ([]models.TeamMember, error)
	ListTeamMembers(ctx context.Context, h db.Handler, team int64) ([]models.TeamMember, error)
	CountTeamMembers(ctx context.Context, h db.Handler, team int64) (int, error)
	RemoveTeamMember(ctx context.Context, h db.Handler, team int64, user uuid.UUID) error
	DeleteTeamMembersByTeamID(ctx context.Context, h db.Handler, team int64) error
}
