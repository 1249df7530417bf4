// Package services implements the MentorHub workflows on top of the
// repositories: submission, adjudication, sign-in, and the notification diff.
package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mentorhub/internal/common"
	"github.com/dmitrijs2005/mentorhub/internal/models"
	"github.com/dmitrijs2005/mentorhub/internal/repositories/applications"
)

// SubmissionForm carries the fields an applicant fills in when applying.
// Name and email come from the session identity, not the form.
type SubmissionForm struct {
	Contact    string
	University string
	Courses    []string
	Documents  []string
}

type ApplicationService interface {
	// Submit validates the form and creates a new Pending application for
	// the signed-in applicant. Fewer than models.MinCourses selected courses
	// fail with common.ErrNotEnoughCourses and leave the store untouched.
	Submit(ctx context.Context, applicant models.Applicant, form SubmissionForm) (*models.Application, error)

	ListAll(ctx context.Context) ([]models.Application, error)
	ListMine(ctx context.Context, applicant models.Applicant) ([]models.Application, error)

	// Adjudicate moves the application to Approved or Rejected. It enforces
	// the status state machine: adjudicating a non-Pending application fails
	// with common.ErrInvalidTransition, an unknown id with common.ErrorNotFound.
	Adjudicate(ctx context.Context, id string, status models.Status) error

	// SetNote replaces the admin note of the application with the given id.
	SetNote(ctx context.Context, id string, note string) error

	SummarizeAll(ctx context.Context) (models.Summary, error)
	SummarizeMine(ctx context.Context, applicant models.Applicant) (models.Summary, error)
}

type applicationService struct {
	repo applications.Repository
}

func NewApplicationService(repo applications.Repository) ApplicationService {
	return &applicationService{repo: repo}
}

func (s *applicationService) Submit(ctx context.Context, applicant models.Applicant, form SubmissionForm) (*models.Application, error) {
	if len(form.Courses) < models.MinCourses {
		return nil, common.ErrNotEnoughCourses
	}

	app, err := s.repo.Create(ctx, applications.CreateRequest{
		Name:       applicant.Name,
		Email:      applicant.Email,
		Contact:    form.Contact,
		University: form.University,
		Courses:    form.Courses,
		Documents:  form.Documents,
	})
	if err != nil {
		return nil, fmt.Errorf("error saving application: %w", err)
	}
	return app, nil
}

func (s *applicationService) ListAll(ctx context.Context) ([]models.Application, error) {
	apps, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	return apps, nil
}

func (s *applicationService) ListMine(ctx context.Context, applicant models.Applicant) ([]models.Application, error) {
	apps, err := s.repo.ListByApplicantEmail(ctx, applicant.Email)
	if err != nil {
		return nil, fmt.Errorf("error listing applications: %w", err)
	}
	return apps, nil
}

func (s *applicationService) find(ctx context.Context, id string) (*models.Application, error) {
	apps, err := s.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	for i := range apps {
		if apps[i].ID == id {
			return &apps[i], nil
		}
	}
	return nil, common.ErrorNotFound
}

func (s *applicationService) Adjudicate(ctx context.Context, id string, status models.Status) error {
	app, err := s.find(ctx, id)
	if err != nil {
		return err
	}

	if !models.CanTransition(app.Status, status) {
		return common.ErrInvalidTransition
	}

	if err := s.repo.SetStatus(ctx, id, status); err != nil {
		return fmt.Errorf("error updating status: %w", err)
	}
	return nil
}

func (s *applicationService) SetNote(ctx context.Context, id string, note string) error {
	if _, err := s.find(ctx, id); err != nil {
		return err
	}

	if err := s.repo.SetAdminNote(ctx, id, note); err != nil {
		return fmt.Errorf("error updating note: %w", err)
	}
	return nil
}

func (s *applicationService) SummarizeAll(ctx context.Context) (models.Summary, error) {
	apps, err := s.ListAll(ctx)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summarize(apps), nil
}

func (s *applicationService) SummarizeMine(ctx context.Context, applicant models.Applicant) (models.Summary, error) {
	apps, err := s.ListMine(ctx, applicant)
	if err != nil {
		return models.Summary{}, err
	}
	return models.Summarize(apps), nil
}
