package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mentorhub/internal/common"
	"github.com/dmitrijs2005/mentorhub/internal/models"
	"github.com/dmitrijs2005/mentorhub/internal/repositories/admin"
	"github.com/dmitrijs2005/mentorhub/internal/session"
)

type AuthService interface {
	// SignInApplicant records the applicant identity in the session and
	// signs out any admin. There is no credential store for applicants;
	// name and email are taken at face value.
	SignInApplicant(ctx context.Context, name, email string) models.Applicant

	SignOutApplicant(ctx context.Context)

	// SignInAdmin verifies username and password against the stored admin
	// record (exact clear-text comparison) and records the admin session.
	// On success any applicant session is signed out; a failed attempt
	// leaves it alone.
	SignInAdmin(ctx context.Context, username, password string) (*models.AdminAccount, error)

	SignOutAdmin(ctx context.Context)

	// UpdateApplicantProfile rewrites the session identity of the signed-in
	// applicant.
	UpdateApplicantProfile(ctx context.Context, name, email string) (models.Applicant, error)

	// UpdateAdminProfile overwrites username and email of the stored admin
	// singleton and refreshes the session copy. The password is kept.
	UpdateAdminProfile(ctx context.Context, username, email string) (*models.AdminAccount, error)
}

type authService struct {
	adminRepo admin.Repository
	sessions  *session.Holder
}

func NewAuthService(adminRepo admin.Repository, sessions *session.Holder) AuthService {
	return &authService{adminRepo: adminRepo, sessions: sessions}
}

func (s *authService) SignInApplicant(ctx context.Context, name, email string) models.Applicant {
	applicant := models.Applicant{Name: name, Email: email}
	s.sessions.ClearAdmin()
	s.sessions.SetCurrentApplicant(applicant)
	return applicant
}

func (s *authService) SignOutApplicant(ctx context.Context) {
	s.sessions.ClearApplicant()
}

func (s *authService) SignInAdmin(ctx context.Context, username, password string) (*models.AdminAccount, error) {
	account, err := s.adminRepo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("error reading admin account: %w", err)
	}

	if username != account.Username || password != account.Password {
		return nil, common.ErrInvalidCredentials
	}

	s.sessions.ClearApplicant()
	s.sessions.SetCurrentAdmin(*account)
	return account, nil
}

func (s *authService) SignOutAdmin(ctx context.Context) {
	s.sessions.ClearAdmin()
}

func (s *authService) UpdateApplicantProfile(ctx context.Context, name, email string) (models.Applicant, error) {
	if _, ok := s.sessions.CurrentApplicant(); !ok {
		return models.Applicant{}, common.ErrNotSignedIn
	}

	applicant := models.Applicant{Name: name, Email: email}
	s.sessions.SetCurrentApplicant(applicant)
	return applicant, nil
}

func (s *authService) UpdateAdminProfile(ctx context.Context, username, email string) (*models.AdminAccount, error) {
	current, ok := s.sessions.CurrentAdmin()
	if !ok {
		return nil, common.ErrNotSignedIn
	}

	current.Username = username
	current.Email = email

	if err := s.adminRepo.Update(ctx, current); err != nil {
		return nil, fmt.Errorf("error saving admin profile: %w", err)
	}

	s.sessions.SetCurrentAdmin(current)
	return &current, nil
}
