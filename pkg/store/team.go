package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
)

// TeamStore is a store for teams.
type TeamStore interface {
	CreateTeam(ctx context.Context, h db.Handler, t models.Team) (models.Team, error)
	GetTeamByID(ctx context.Context, h db.Handler, id int64) (models.Team, error)
	GetTeamByCaptainID(ctx context.Context, h db.Handler, captain uuid.UUID) (models.Team, error)
	ListTeams(ctx context.Context, h db.Handler) ([]models.Team, error)
	UpdateTeam(ctx context.Context, h db.Handler, t models.Team) error
	UpdateTeamStatus(ctx context.Context, h db.Handler, id int64, status string, updatedAt time.Time) error
	DeleteTeamByID(ctx context.Context, h db.Handler, id int64) error
}
