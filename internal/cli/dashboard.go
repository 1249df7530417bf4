package cli

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/dmitrijs2005/mentorhub/internal/models"
)

func orNone(s string) string {
	if s == "" {
		return "None"
	}
	return s
}

func renderSummary(w io.Writer, s models.Summary) {
	fmt.Fprintf(w, "Total Applications: %d\n", s.Total)
	fmt.Fprintf(w, "Pending: %d\n", s.Pending)
	fmt.Fprintf(w, "Approved: %d\n", s.Approved)
	fmt.Fprintf(w, "Rejected: %d\n", s.Rejected)
}

func renderApplicantDashboard(w io.Writer, applicant models.Applicant, summary models.Summary, apps []models.Application) {
	fmt.Fprintf(w, "Welcome, %s!\n", applicant.Name)
	renderSummary(w, summary)

	for _, app := range apps {
		fmt.Fprintf(w, "\n%s\n", app.University)
		fmt.Fprintf(w, "  Courses: %s\n", strings.Join(app.Courses, ", "))
		fmt.Fprintf(w, "  Status: %s\n", app.Status)
		fmt.Fprintf(w, "  Admin Notes: %s\n", orNone(app.AdminNote))
		fmt.Fprintf(w, "  Submitted: %s\n", app.Date)
	}
}

func renderAdminDashboard(w io.Writer, summary models.Summary, apps []models.Application) {
	renderSummary(w, summary)

	for _, app := range apps {
		fmt.Fprintf(w, "\n%s -> %s [%s]\n", app.Name, app.University, app.ID)
		fmt.Fprintf(w, "  Email: %s\n", app.Email)
		fmt.Fprintf(w, "  Courses: %s\n", strings.Join(app.Courses, ", "))
		fmt.Fprintf(w, "  Documents: %s\n", strings.Join(app.Documents, ", "))
		fmt.Fprintf(w, "  Status: %s\n", app.Status)
		fmt.Fprintf(w, "  Admin Notes: %s\n", orNone(app.AdminNote))
	}
}

// Dashboard renders the view for the signed-in role: the applicant sees
// their own applications, the admin sees all of them. Both start with the
// per-status summary counts.
func (a *App) Dashboard(ctx context.Context) error {
	if a.adminSignedIn() {
		summary, err := a.appService.SummarizeAll(ctx)
		if err != nil {
			return err
		}
		apps, err := a.appService.ListAll(ctx)
		if err != nil {
			return err
		}
		renderAdminDashboard(a.out, summary, apps)
		return nil
	}

	applicant, ok := a.sessions.CurrentApplicant()
	if !ok {
		printlnFn("Please sign in first!")
		return nil
	}

	summary, err := a.appService.SummarizeMine(ctx, applicant)
	if err != nil {
		return err
	}
	apps, err := a.appService.ListMine(ctx, applicant)
	if err != nil {
		return err
	}
	renderApplicantDashboard(a.out, applicant, summary, apps)
	return nil
}
