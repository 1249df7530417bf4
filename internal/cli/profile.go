package cli

import (
	"context"
	"os"
)

// Profile shows and updates the profile of the signed-in identity.
// Pressing Enter on a prompt keeps the current value.
func (a *App) Profile(ctx context.Context) error {
	switch {
	case a.applicantSignedIn():
		return a.applicantProfile(ctx)
	case a.adminSignedIn():
		return a.adminProfile(ctx)
	default:
		printlnFn("Please sign in first!")
		return nil
	}
}

func (a *App) applicantProfile(ctx context.Context) error {
	current, _ := a.sessions.CurrentApplicant()
	printlnFn("Name: " + current.Name)
	printlnFn("Email: " + current.Email)

	name, err := getSimpleText(a.reader, "Enter new name (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if name == "" {
		name = current.Name
	}

	email, err := getSimpleText(a.reader, "Enter new email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = current.Email
	}

	if _, err := a.authService.UpdateApplicantProfile(ctx, name, email); err != nil {
		return err
	}

	printlnFn("Profile updated successfully!")
	return nil
}

func (a *App) adminProfile(ctx context.Context) error {
	current, _ := a.sessions.CurrentAdmin()
	printlnFn("Username: " + current.Username)
	printlnFn("Email: " + current.Email)

	username, err := getSimpleText(a.reader, "Enter new username (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if username == "" {
		username = current.Username
	}

	email, err := getSimpleText(a.reader, "Enter new email (empty to keep)", os.Stdout)
	if err != nil {
		return err
	}
	if email == "" {
		email = current.Email
	}

	if _, err := a.authService.UpdateAdminProfile(ctx, username, email); err != nil {
		return err
	}

	printlnFn("Admin profile updated!")
	return nil
}
