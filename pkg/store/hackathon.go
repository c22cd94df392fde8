package store

import (
	"context"
	"time"

	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
)

// HackathonStore is a store for hackathons.
type HackathonStore interface {
	CreateHackathon(ctx context.Context, h db.Handler, hk models.Hackathon) (models.Hackathon, error)
	GetHackathonByID(ctx context.Context, h db.Handler, id int64) (models.Hackathon, error)
	GetHackathonBySlug(ctx context.Context, h db.Handler, slug string) (models.Hackathon, error)
	ListHackathons(ctx context.Context, h db.Handler) ([]models.Hackathon, error)
	UpdateHackathon(ctx context.Context, h db.Handler, hk models.Hackathon) error
	UpdateHackathonStatus(ctx context.Context, h db.Handler, id int64, status string, updatedAt time.Time) error
	DeleteHackathonByID(ctx context.Context, h db.Handler, id int64) error
}
