package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrijs2005/mentorhub/internal/common"
	adminrepo "github.com/dmitrijs2005/mentorhub/internal/repositories/admin"
)

func TestSignInAdmin_SeededDefaults(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins, env.sessions)
	ctx := context.Background()

	require.NoError(t, env.admins.EnsureSeeded(ctx))

	account, err := svc.SignInAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, adminrepo.DefaultAccount, *account)

	got, ok := env.sessions.CurrentAdmin()
	assert.True(t, ok)
	assert.Equal(t, adminrepo.DefaultAccount, got)
}

func TestSignInAdmin_WrongPassword(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins, env.sessions)
	ctx := context.Background()

	require.NoError(t, env.admins.EnsureSeeded(ctx))

	_, err := svc.SignInAdmin(ctx, "admin", "letmein")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, ok := env.sessions.CurrentAdmin()
	assert.False(t, ok)
}

func TestSignInAdmin_WrongUsername(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins, env.sessions)
	ctx := context.Background()

	require.NoError(t, env.admins.EnsureSeeded(ctx))

	_, err := svc.SignInAdmin(ctx, "Administrator", "admin123")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)
}

func TestSignInApplicant_SetsSession(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins, env.sessions)
	ctx := context.Background()

	applicant := svc.SignInApplicant(ctx, "Alice", "a@x.com")
	assert.Equal(t, "Alice", applicant.Name)

	got, ok := env.sessions.CurrentApplicant()
	assert.True(t, ok)
	assert.Equal(t, applicant, got)

	svc.SignOutApplicant(ctx)
	_, ok = env.sessions.CurrentApplicant()
	assert.False(t, ok)
}

func TestSignIn_RolesAreExclusive(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins, env.sessions)
	ctx := context.Background()

	require.NoError(t, env.admins.EnsureSeeded(ctx))

	svc.SignInApplicant(ctx, "Alice", "a@x.com")
	_, err := svc.SignInAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)

	_, ok := env.sessions.CurrentApplicant()
	assert.False(t, ok, "admin sign-in must clear the applicant session")

	svc.SignInApplicant(ctx, "Alice", "a@x.com")
	_, ok = env.sessions.CurrentAdmin()
	assert.False(t, ok, "applicant sign-in must clear the admin session")
}

func TestSignInAdmin_FailedAttemptKeepsApplicant(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins, env.sessions)
	ctx := context.Background()

	require.NoError(t, env.admins.EnsureSeeded(ctx))

	svc.SignInApplicant(ctx, "Alice", "a@x.com")
	_, err := svc.SignInAdmin(ctx, "admin", "letmein")
	assert.ErrorIs(t, err, common.ErrInvalidCredentials)

	_, ok := env.sessions.CurrentApplicant()
	assert.True(t, ok)
}

func TestUpdateApplicantProfile_RequiresSession(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins, env.sessions)
	ctx := context.Background()

	_, err := svc.UpdateApplicantProfile(ctx, "Bob", "b@x.com")
	assert.ErrorIs(t, err, common.ErrNotSignedIn)
}

func TestUpdateApplicantProfile_RewritesIdentity(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins, env.sessions)
	ctx := context.Background()

	svc.SignInApplicant(ctx, "Alice", "a@x.com")

	updated, err := svc.UpdateApplicantProfile(ctx, "Alice Smith", "alice@x.com")
	require.NoError(t, err)

	got, ok := env.sessions.CurrentApplicant()
	assert.True(t, ok)
	assert.Equal(t, updated, got)
	assert.Equal(t, "alice@x.com", got.Email)
}

func TestUpdateAdminProfile_KeepsPasswordAndPersists(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins, env.sessions)
	ctx := context.Background()

	require.NoError(t, env.admins.EnsureSeeded(ctx))
	_, err := svc.SignInAdmin(ctx, "admin", "admin123")
	require.NoError(t, err)

	updated, err := svc.UpdateAdminProfile(ctx, "root", "root@mentorhub.com")
	require.NoError(t, err)
	assert.Equal(t, "root", updated.Username)
	assert.Equal(t, "admin123", updated.Password)

	stored, err := env.admins.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, *updated, *stored)

	// session copy refreshed as well
	got, ok := env.sessions.CurrentAdmin()
	assert.True(t, ok)
	assert.Equal(t, *updated, got)

	// subsequent sign-in uses the new username with the old password
	svc.SignOutAdmin(ctx)
	_, err = svc.SignInAdmin(ctx, "root", "admin123")
	assert.NoError(t, err)
}

func TestUpdateAdminProfile_RequiresSession(t *testing.T) {
	env := newTestEnv(t)
	svc := NewAuthService(env.admins, env.sessions)

	_, err := svc.UpdateAdminProfile(context.Background(), "root", "root@mentorhub.com")
	assert.ErrorIs(t, err, common.ErrNotSignedIn)
}
