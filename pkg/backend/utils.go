package backend

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hackhub/hackhub/pkg/access"
	"github.com/hackhub/hackhub/pkg/db"
	"github.com/hackhub/hackhub/pkg/proto"
)

// notFound maps a missing row to nf and normalizes any other driver error.
func notFound(err error, nf error) error {
	if errors.Is(err, db.ErrRecordNotFound) {
		return nf
	}
	return db.WrapError(err)
}

// isDuplicate reports whether err is a unique constraint violation.
func isDuplicate(err error) bool {
	return errors.Is(db.WrapError(err), db.ErrDuplicateKey)
}

// isForeignKey reports whether err is a foreign key constraint violation.
func isForeignKey(err error) bool {
	return errors.Is(db.WrapError(err), db.ErrForeignKey)
}

// invalid wraps an input error as a validation error.
func invalid(err error) error {
	return fmt.Errorf("%w: %v", proto.ErrValidation, err)
}

// authorize returns proto.ErrForbidden unless the actor's role carries c.
// Actors without a profile are participants.
func (d *Backend) authorize(ctx context.Context, h db.Handler, actor uuid.UUID, c access.Capability) error {
	role := access.Participant
	p, err := d.store.GetProfileByUserID(ctx, h, actor)
	switch {
	case err == nil:
		role = p.Role
	case !errors.Is(err, db.ErrRecordNotFound):
		return db.WrapError(err)
	}

	if !access.Can(role, c) {
		return proto.ErrForbidden
	}

	return nil
}
