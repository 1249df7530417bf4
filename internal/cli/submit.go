package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/mentorhub/internal/common"
	"github.com/dmitrijs2005/mentorhub/internal/services"
)

// Submit walks the signed-in applicant through a new application: contact,
// university, selected courses and attached document names. At least
// 3 courses are required; a shorter selection leaves the store untouched.
func (a *App) Submit(ctx context.Context) error {
	applicant, ok := a.sessions.CurrentApplicant()
	if !ok {
		printlnFn("Please sign in first!")
		return nil
	}

	contact, err := getSimpleText(a.reader, "Enter contact number", os.Stdout)
	if err != nil {
		return err
	}

	university, err := getSimpleText(a.reader, "Enter university", os.Stdout)
	if err != nil {
		return err
	}

	courses, err := getLines(a.reader, "Enter course names, one per line", os.Stdout)
	if err != nil {
		return err
	}

	documents, err := getLines(a.reader, "Enter document file names, one per line", os.Stdout)
	if err != nil {
		return err
	}

	form := services.SubmissionForm{
		Contact:    contact,
		University: university,
		Courses:    courses,
		Documents:  documents,
	}

	if _, err := a.appService.Submit(ctx, applicant, form); err != nil {
		if errors.Is(err, common.ErrNotEnoughCourses) {
			printlnFn("Please select at least 3 courses!")
			return nil
		}
		return err
	}

	printlnFn("Application submitted successfully!")
	return a.Dashboard(ctx)
}
