package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
)

// ApplicationStore is a store for team applications.
type ApplicationStore interface {
	CreateApplication(ctx context.Context, h db.Handler, a models.Application) (models.Application, error)
	GetApplicationByID(ctx context.Context, h db.Handler, id int64) (models.Application, error)
	GetPendingApplication(ctx context.Context, h db.Handler, team int64, user uuid.UUID) (models.Application, error)
	ListApplicationsByTeamID(ctx context.Context, h db.Handler, team int64) ([]models.Application, error)
	ListApplicationsByUserID(ctx context.Context, h db.Handler, user uuid.UUID) ([]models.Application, error)
	// DecideApplication moves a pending application to status. It reports
	// false when the application was no longer pending.
	DecideApplication(ctx context.Context, h db.Handler, id int64, status string, updatedAt time.Time) (bool, error)
	DeleteApplicationsByTeamID(ctx context.Context, h db.Handler, team int64) error
}
