package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/mentorhub/internal/common"
	"github.com/dmitrijs2005/mentorhub/internal/kvstore"
	"github.com/dmitrijs2005/mentorhub/internal/models"
)

// StorageKey is the durable key holding the admin singleton as one JSON object.
const StorageKey = "admin"

// DefaultAccount is seeded on first start.
var DefaultAccount = models.AdminAccount{
	Username: "admin",
	Email:    "admin@mentorhub.com",
	Password: "admin123",
}

type KVRepository struct {
	store kvstore.Store
}

func NewKVRepository(store kvstore.Store) *KVRepository {
	return &KVRepository{store: store}
}

// EnsureSeeded writes DefaultAccount if no admin record exists yet.
func (r *KVRepository) EnsureSeeded(ctx context.Context) error {
	err := r.store.Update(ctx, StorageKey, func(current []byte) ([]byte, error) {
		if len(current) > 0 {
			return current, nil
		}
		return json.Marshal(DefaultAccount)
	})
	if err != nil {
		return fmt.Errorf("failed to seed admin account: %w", err)
	}
	return nil
}

// Get returns the stored admin account.
func (r *KVRepository) Get(ctx context.Context) (*models.AdminAccount, error) {
	data, err := r.store.Get(ctx, StorageKey)
	if err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("failed to read admin account: %w", err)
	}

	var account models.AdminAccount
	if err := json.Unmarshal(data, &account); err != nil {
		return nil, fmt.Errorf("failed to decode admin account: %w", err)
	}
	return &account, nil
}

// Update overwrites the singleton. No identity re-check is performed.
func (r *KVRepository) Update(ctx context.Context, account models.AdminAccount) error {
	data, err := json.Marshal(account)
	if err != nil {
		return fmt.Errorf("failed to encode admin account: %w", err)
	}
	if err := r.store.Set(ctx, StorageKey, data); err != nil {
		return fmt.Errorf("failed to save admin account: %w", err)
	}
	return nil
}
