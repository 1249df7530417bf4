package applications

import (
	"context"

	"github.com/dmitrijs2005/mentorhub/internal/models"
)

// CreateRequest carries the applicant-supplied fields of a new application.
// Status, note, id and date are assigned by the repository.
type CreateRequest struct {
	Name       string
	Email      string
	Contact    string
	University string
	Courses    []string
	Documents  []string
}

// Repository describes CRUD and query operations over the application
// collection. The collection is the single source of truth; callers hold
// only transient snapshots.
type Repository interface {
	// ListAll returns every application in insertion order. An uninitialized
	// store yields an empty slice, not an error.
	ListAll(ctx context.Context) ([]models.Application, error)

	// ListByApplicantEmail returns the applications whose email exactly
	// matches (case-sensitive), preserving relative order.
	ListByApplicantEmail(ctx context.Context, email string) ([]models.Application, error)

	// Create appends a new application with status Pending, an empty admin
	// note, a fresh id and a creation date, and returns the stored record.
	Create(ctx context.Context, req CreateRequest) (*models.Application, error)

	// SetStatus overwrites the status of the first application with the
	// given id. A missing id is a silent no-op.
	SetStatus(ctx context.Context, id string, status models.Status) error

	// SetAdminNote overwrites the admin note of the first application with
	// the given id. A missing id is a silent no-op.
	SetAdminNote(ctx context.Context, id string, note string) error
}
