package admin

import (
	"context"

	"github.com/dmitrijs2005/mentorhub/internal/models"
)

// Repository manages the persisted administrator singleton.
type Repository interface {
	// EnsureSeeded writes the default admin account if none exists.
	// Idempotent: an existing (possibly updated) account is left alone.
	EnsureSeeded(ctx context.Context) error

	// Get returns the stored admin account, or common.ErrorNotFound.
	Get(ctx context.Context) (*models.AdminAccount, error)

	// Update overwrites the admin account unconditionally.
	Update(ctx context.Context, account models.AdminAccount) error
}
