// Package session holds transient per-process state, the analogue of a
// browser tab's session storage: who is currently signed in, plus the
// per-application last-notified status markers used by the notification
// diff. Nothing here survives process exit and nothing expires.
package session

import (
	"encoding/json"
	"sync"

	"github.com/dmitrijs2005/mentorhub/internal/models"
)

const (
	keyApplicant = "currentApplicant"
	keyAdmin     = "currentAdmin"

	markerPrefix = "app-last-"
)

// Holder is a goroutine-safe transient key-value store. The refresh watcher
// reads it from a background goroutine while commands write from the REPL.
type Holder struct {
	mu     sync.RWMutex
	values map[string][]byte
}

func NewHolder() *Holder {
	return &Holder{values: make(map[string][]byte)}
}

// Get returns the value stored under key and whether it was present.
func (h *Holder) Get(key string) ([]byte, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	v, ok := h.values[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (h *Holder) Set(key string, value []byte) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.values[key] = value
}

// Clear removes the value stored under key, if any.
func (h *Holder) Clear(key string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	delete(h.values, key)
}

// SetCurrentApplicant records the signed-in applicant identity.
func (h *Holder) SetCurrentApplicant(a models.Applicant) {
	b, _ := json.Marshal(a)
	h.Set(keyApplicant, b)
}

// CurrentApplicant returns the signed-in applicant, if any.
func (h *Holder) CurrentApplicant() (models.Applicant, bool) {
	b, ok := h.Get(keyApplicant)
	if !ok {
		return models.Applicant{}, false
	}
	var a models.Applicant
	if err := json.Unmarshal(b, &a); err != nil {
		return models.Applicant{}, false
	}
	return a, true
}

// ClearApplicant signs the applicant out.
func (h *Holder) ClearApplicant() {
	h.Clear(keyApplicant)
}

// SetCurrentAdmin records the signed-in admin identity.
func (h *Holder) SetCurrentAdmin(a models.AdminAccount) {
	b, _ := json.Marshal(a)
	h.Set(keyAdmin, b)
}

// CurrentAdmin returns the signed-in admin, if any.
func (h *Holder) CurrentAdmin() (models.AdminAccount, bool) {
	b, ok := h.Get(keyAdmin)
	if !ok {
		return models.AdminAccount{}, false
	}
	var a models.AdminAccount
	if err := json.Unmarshal(b, &a); err != nil {
		return models.AdminAccount{}, false
	}
	return a, true
}

// ClearAdmin signs the admin out.
func (h *Holder) ClearAdmin() {
	h.Clear(keyAdmin)
}

// LastNotified returns the last status announced for the given application id.
func (h *Holder) LastNotified(id string) (models.Status, bool) {
	b, ok := h.Get(markerPrefix + id)
	if !ok {
		return "", false
	}
	return models.Status(b), true
}

// SetLastNotified advances the notification marker for the given application id.
func (h *Holder) SetLastNotified(id string, s models.Status) {
	h.Set(markerPrefix+id, []byte(s))
}
