package store

import (
	"context"

	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/db/models"
)

// RegistrationStore is a store for hackathon registrations.
type RegistrationStore interface {
	CreateRegistration(ctx context.Context, h db.Handler, r models.Registration) (models.Registration, error)
	GetRegistration(ctx context.Context, h db.Handler, hackathon, team int64) (models.Registration, error)
	ListRegistrationsByHackathonID(ctx context.Context, h db.Handler, hackathon int64) ([]models.Registration, error)
	DeleteRegistrationsByTeamID(ctx context.Context, h db.Handler, team int64) error
	DeleteRegistrationsByHackathonID(ctx context.Context, h db.Handler, hackathon int64) error
}
