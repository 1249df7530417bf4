package cli

import (
	"context"
	"errors"
	"os"
	"strings"

	"github.com/dmitrijs2005/mentorhub/internal/common"
	"github.com/dmitrijs2005/mentorhub/internal/models"
)

func (a *App) adjudicate(ctx context.Context, status models.Status) error {
	if !a.adminSignedIn() {
		printlnFn("Please login as admin!")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter application id", os.Stdout)
	if err != nil {
		return err
	}

	if err := a.appService.Adjudicate(ctx, id, status); err != nil {
		switch {
		case errors.Is(err, common.ErrorNotFound):
			printlnFn("Application not found!")
			return nil
		case errors.Is(err, common.ErrInvalidTransition):
			printlnFn("Application has already been adjudicated!")
			return nil
		}
		return err
	}

	printlnFn("Application " + strings.ToLower(string(status)) + " successfully!")
	return nil
}

// Approve moves a Pending application to Approved.
func (a *App) Approve(ctx context.Context) error {
	return a.adjudicate(ctx, models.StatusApproved)
}

// Reject moves a Pending application to Rejected.
func (a *App) Reject(ctx context.Context) error {
	return a.adjudicate(ctx, models.StatusRejected)
}

// Note sets (replaces) the admin note on an application.
func (a *App) Note(ctx context.Context) error {
	if !a.adminSignedIn() {
		printlnFn("Please login as admin!")
		return nil
	}

	id, err := getSimpleText(a.reader, "Enter application id", os.Stdout)
	if err != nil {
		return err
	}

	note, err := getSimpleText(a.reader, "Enter note", os.Stdout)
	if err != nil {
		return err
	}

	if note == "" {
		printlnFn("Enter a note first!")
		return nil
	}

	if err := a.appService.SetNote(ctx, id, note); err != nil {
		if errors.Is(err, common.ErrorNotFound) {
			printlnFn("Application not found!")
			return nil
		}
		return err
	}

	printlnFn("Note added successfully!")
	return nil
}
