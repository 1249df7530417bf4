// Package common defines shared sentinel errors used across MentorHub
// layers. Callers should use errors.Is to match these values.
package common

import "errors"

var (
	// Repository-level errors.
	ErrorNotFound = errors.New("not found")

	// Validation errors.
	ErrNotEnoughCourses = errors.New("at least 3 courses must be selected")

	// Auth / session errors.
	ErrInvalidCredentials = errors.New("invalid admin credentials")
	ErrNotSignedIn        = errors.New("not signed in")

	// Adjudication errors.
	ErrInvalidTransition = errors.New("invalid status transition")
)
