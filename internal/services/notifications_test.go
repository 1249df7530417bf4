package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mentorhub/internal/models"
)

func TestCheckForUpdates_NoApplicantSignedIn(t *testing.T) {
	env := newTestEnv(t)
	svc := NewNotificationService(env.apps, env.sessions)

	got, err := svc.CheckForUpdates(context.Background())
	require.NoError(t, err)
	assert.Nil(t, got)
}

func TestCheckForUpdates_OneShotPerStatusChange(t *testing.T) {
	env := newTestEnv(t)
	appSvc := NewApplicationService(env.apps)
	svc := NewNotificationService(env.apps, env.sessions)
	ctx := context.Background()

	env.sessions.SetCurrentApplicant(alice)
	app, err := appSvc.Submit(ctx, alice, validForm())
	require.NoError(t, err)

	// first poll: still Pending, nothing to announce
	got, err := svc.CheckForUpdates(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)

	// status changes between polls
	require.NoError(t, appSvc.Adjudicate(ctx, app.ID, models.StatusApproved))

	// second poll: exactly one notification
	got, err = svc.CheckForUpdates(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, app.ID, got[0].ApplicationID)
	assert.Equal(t, models.StatusApproved, got[0].Status)
	assert.Equal(t, "TU Berlin", got[0].University)

	// third poll with no further change: silence
	got, err = svc.CheckForUpdates(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCheckForUpdates_OnlyOwnApplications(t *testing.T) {
	env := newTestEnv(t)
	appSvc := NewApplicationService(env.apps)
	svc := NewNotificationService(env.apps, env.sessions)
	ctx := context.Background()

	bob := models.Applicant{Name: "Bob", Email: "b@x.com"}
	other, err := appSvc.Submit(ctx, bob, validForm())
	require.NoError(t, err)
	require.NoError(t, appSvc.Adjudicate(ctx, other.ID, models.StatusRejected))

	env.sessions.SetCurrentApplicant(alice)

	got, err := svc.CheckForUpdates(ctx)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCheckForUpdates_MultipleApplications(t *testing.T) {
	env := newTestEnv(t)
	appSvc := NewApplicationService(env.apps)
	svc := NewNotificationService(env.apps, env.sessions)
	ctx := context.Background()

	env.sessions.SetCurrentApplicant(alice)

	first, err := appSvc.Submit(ctx, alice, validForm())
	require.NoError(t, err)
	second, err := appSvc.Submit(ctx, alice, validForm())
	require.NoError(t, err)

	require.NoError(t, appSvc.Adjudicate(ctx, first.ID, models.StatusApproved))
	require.NoError(t, appSvc.Adjudicate(ctx, second.ID, models.StatusRejected))

	got, err := svc.CheckForUpdates(ctx)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, models.StatusApproved, got[0].Status)
	assert.Equal(t, models.StatusRejected, got[1].Status)
}
