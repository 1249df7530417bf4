package services

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/mentorhub/internal/models"
	"github.com/dmitrijs2005/mentorhub/internal/repositories/applications"
	"github.com/dmitrijs2005/mentorhub/internal/session"
)

type NotificationService interface {
	// CheckForUpdates diffs the signed-in applicant's application statuses
	// against the per-application last-notified markers and returns one
	// notification per changed, non-Pending status. Each returned change
	// advances its marker, so an unchanged status is never re-announced
	// within the session. Returns nil when no applicant is signed in.
	CheckForUpdates(ctx context.Context) ([]models.Notification, error)
}

type notificationService struct {
	repo     applications.Repository
	sessions *session.Holder
}

func NewNotificationService(repo applications.Repository, sessions *session.Holder) NotificationService {
	return &notificationService{repo: repo, sessions: sessions}
}

func (s *notificationService) CheckForUpdates(ctx context.Context) ([]models.Notification, error) {
	applicant, ok := s.sessions.CurrentApplicant()
	if !ok {
		return nil, nil
	}

	apps, err := s.repo.ListByApplicantEmail(ctx, applicant.Email)
	if err != nil {
		return nil, fmt.Errorf("error checking for updates: %w", err)
	}

	var result []models.Notification
	for _, app := range apps {
		if app.Status == models.StatusPending {
			continue
		}
		if last, _ := s.sessions.LastNotified(app.ID); last == app.Status {
			continue
		}

		result = append(result, models.Notification{
			ApplicationID: app.ID,
			University:    app.University,
			Status:        app.Status,
		})
		s.sessions.SetLastNotified(app.ID, app.Status)
	}

	return result, nil
}
