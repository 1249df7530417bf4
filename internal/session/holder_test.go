package session

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dmitrijs2005/mentorhub/internal/models"
)

func TestHolder_GetSetClear(t *testing.T) {
	h := NewHolder()

	_, ok := h.Get("k")
	assert.False(t, ok)

	h.Set("k", []byte("v"))
	got, ok := h.Get("k")
	assert.True(t, ok)
	assert.Equal(t, []byte("v"), got)

	h.Clear("k")
	_, ok = h.Get("k")
	assert.False(t, ok)
}

func TestHolder_CurrentApplicant(t *testing.T) {
	h := NewHolder()

	_, ok := h.CurrentApplicant()
	assert.False(t, ok)

	want := models.Applicant{Name: "Alice", Email: "alice@example.com"}
	h.SetCurrentApplicant(want)

	got, ok := h.CurrentApplicant()
	assert.True(t, ok)
	assert.Equal(t, want, got)

	h.ClearApplicant()
	_, ok = h.CurrentApplicant()
	assert.False(t, ok)
}

func TestHolder_CurrentAdmin(t *testing.T) {
	h := NewHolder()

	want := models.AdminAccount{Username: "admin", Email: "admin@mentorhub.com", Password: "admin123"}
	h.SetCurrentAdmin(want)

	got, ok := h.CurrentAdmin()
	assert.True(t, ok)
	assert.Equal(t, want, got)

	h.ClearAdmin()
	_, ok = h.CurrentAdmin()
	assert.False(t, ok)
}

func TestHolder_RolesAreIndependent(t *testing.T) {
	h := NewHolder()

	h.SetCurrentApplicant(models.Applicant{Name: "Alice", Email: "a@x.com"})
	h.SetCurrentAdmin(models.AdminAccount{Username: "admin"})

	h.ClearApplicant()

	_, ok := h.CurrentApplicant()
	assert.False(t, ok)
	_, ok = h.CurrentAdmin()
	assert.True(t, ok)
}

func TestHolder_LastNotified(t *testing.T) {
	h := NewHolder()

	_, ok := h.LastNotified("id1")
	assert.False(t, ok)

	h.SetLastNotified("id1", models.StatusApproved)
	got, ok := h.LastNotified("id1")
	assert.True(t, ok)
	assert.Equal(t, models.StatusApproved, got)

	// markers are keyed per application
	_, ok = h.LastNotified("id2")
	assert.False(t, ok)
}
