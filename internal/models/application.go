// Package models defines the MentorHub data model: application records,
// their status lifecycle, and the identities that act on them.
package models

import "fmt"

// Status is the adjudication state of an application.
type Status string

const (
	StatusPending  Status = "Pending"
	StatusApproved Status = "Approved"
	StatusRejected Status = "Rejected"
)

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// Terminal reports whether s admits no further transitions.
func (s Status) Terminal() bool {
	return s == StatusApproved || s == StatusRejected
}

// CanTransition reports whether the status state machine allows moving from
// cur to next. Only Pending→Approved and Pending→Rejected are permitted;
// Approved and Rejected are terminal.
func CanTransition(cur, next Status) bool {
	return cur == StatusPending && (next == StatusApproved || next == StatusRejected)
}

// MinCourses is the minimum number of courses a submission must select.
const MinCourses = 3

// Application is one applicant's submitted request to join a university
// course track. Field tags match the persisted JSON shape.
type Application struct {
	// ID is a globally unique identifier assigned at creation.
	ID string `json:"id"`

	Name       string `json:"name"`
	Email      string `json:"email"`
	Contact    string `json:"contact"`
	University string `json:"university"`

	// Courses are the selected course names, in selection order.
	Courses []string `json:"courses"`

	// Documents are attached file names; no file content is persisted.
	Documents []string `json:"documents"`

	Status Status `json:"status"`

	// AdminNote is free text set by an administrator; overwritten, never appended.
	AdminNote string `json:"adminNote"`

	// Date is the human-readable creation timestamp.
	Date string `json:"date"`
}

// Summary aggregates per-status counts over a set of applications.
type Summary struct {
	Total    int
	Pending  int
	Approved int
	Rejected int
}

// Summarize counts apps by status.
func Summarize(apps []Application) Summary {
	s := Summary{Total: len(apps)}
	for _, a := range apps {
		switch a.Status {
		case StatusPending:
			s.Pending++
		case StatusApproved:
			s.Approved++
		case StatusRejected:
			s.Rejected++
		}
	}
	return s
}

// Notification is a one-shot status-change alert for an applicant.
type Notification struct {
	ApplicationID string
	University    string
	Status        Status
}

// Message renders the user-facing notification text.
func (n Notification) Message() string {
	return fmt.Sprintf("Your application to %s is now %s!", n.University, n.Status)
}
