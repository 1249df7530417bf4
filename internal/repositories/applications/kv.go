package applications

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/dmitrijs2005/mentorhub/internal/common"
	"github.com/dmitrijs2005/mentorhub/internal/kvstore"
	"github.com/dmitrijs2005/mentorhub/internal/models"
	"github.com/google/uuid"
)

// StorageKey is the durable key under which the whole application
// collection is persisted as one JSON array.
const StorageKey = "applications"

const dateLayout = "2006-01-02 15:04:05"

// nowFn is a test seam for the creation timestamp.
var nowFn = time.Now

// KVRepository implements Repository over a kvstore.Store. Every mutation is
// a full read-modify-write of the collection; the store makes it atomic.
// A single active writer is assumed.
type KVRepository struct {
	store kvstore.Store
}

// NewKVRepository returns a KVRepository bound to the given store.
func NewKVRepository(store kvstore.Store) *KVRepository {
	return &KVRepository{store: store}
}

func decode(data []byte) ([]models.Application, error) {
	if len(data) == 0 {
		return []models.Application{}, nil
	}
	var apps []models.Application
	if err := json.Unmarshal(data, &apps); err != nil {
		return nil, fmt.Errorf("failed to decode applications: %w", err)
	}
	return apps, nil
}

// ListAll returns the full collection in insertion order.
func (r *KVRepository) ListAll(ctx context.Context) ([]models.Application, error) {
	data, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return []models.Application{}, nil
		}
		return nil, fmt.Errorf("failed to read applications: %w", err)
	}
	return decode(data)
}

// ListByApplicantEmail filters the collection by exact email match.
func (r *KVRepository) ListByApplicantEmail(ctx context.Context, email string) ([]models.Application, error) {
	apps, err := r.ListAll(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]models.Application, 0, len(apps))
	for _, app := range apps {
		if app.Email == email {
			result = append(result, app)
		}
	}
	return result, nil
}

// Create appends a new Pending application and persists the collection.
func (r *KVRepository) Create(ctx context.Context, req CreateRequest) (*models.Application, error) {
	app := models.Application{
		ID:         uuid.NewString(),
		Name:       req.Name,
		Email:      req.Email,
		Contact:    req.Contact,
		University: req.University,
		Courses:    req.Courses,
		Documents:  req.Documents,
		Status:     models.StatusPending,
		AdminNote:  "",
		Date:       nowFn().Format(dateLayout),
	}

	err := r.store.Update(ctx, StorageKey, func(current []byte) ([]byte, error) {
		apps, err := decode(current)
		if err != nil {
			return nil, err
		}
		apps = append(apps, app)
		return json.Marshal(apps)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save application: %w", err)
	}

	return &app, nil
}

// mutate applies fn to the first application with the given id. A missing id
// leaves the collection unchanged; callers that care must re-read.
func (r *KVRepository) mutate(ctx context.Context, id string, fn func(app *models.Application)) error {
	return r.store.Update(ctx, StorageKey, func(current []byte) ([]byte, error) {
		apps, err := decode(current)
		if err != nil {
			return nil, err
		}
		for i := range apps {
			if apps[i].ID == id {
				fn(&apps[i])
				break
			}
		}
		return json.Marshal(apps)
	})
}

// SetStatus overwrites the status of the application with the given id.
func (r *KVRepository) SetStatus(ctx context.Context, id string, status models.Status) error {
	err := r.mutate(ctx, id, func(app *models.Application) {
		app.Status = status
	})
	if err != nil {
		return fmt.Errorf("failed to update status: %w", err)
	}
	return nil
}

// SetAdminNote overwrites the admin note of the application with the given id.
func (r *KVRepository) SetAdminNote(ctx context.Context, id string, note string) error {
	err := r.mutate(ctx, id, func(app *models.Application) {
		app.AdminNote = note
	})
	if err != nil {
		return fmt.Errorf("failed to update admin note: %w", err)
	}
	return nil
}
