package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/access"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
)

// ProfileStore is a store for participant profiles.
type ProfileStore interface {
	GetProfileByUserID(ctx context.Context, h db.Handler, user uuid.UUID) (models.Profile, error)
	GetProfilesByUserIDs(ctx context.Context, h db.Handler, users []uuid.UUID) ([]models.Profile, error)
	CreateProfile(ctx context.Context, h db.Handler, p models.Profile) error
	UpdateProfile(ctx context.Context, h db.Handler, p models.Profile) error
	SetProfileRole(ctx context.Context, h db.Handler, user uuid.UUID, role access.Role, updatedAt time.Time) error
}
