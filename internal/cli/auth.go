package cli

import (
	"context"
	"errors"
	"os"

	"github.com/dmitrijs2005/mentorhub/internal/common"
)

// getSimpleText, getPassword and getLines are indirections used to facilitate
// testing. They point to interactive input helpers and can be swapped in tests.
var getSimpleText = GetSimpleText
var getPassword = GetPassword
var getLines = GetLines

// ApplicantLogin prompts for name and email and records the applicant
// session. There is no applicant credential store; the identity is taken
// as entered. On success the dashboard is shown.
func (a *App) ApplicantLogin(ctx context.Context) error {
	name, err := getSimpleText(a.reader, "Enter your name", os.Stdout)
	if err != nil {
		return err
	}

	email, err := getSimpleText(a.reader, "Enter your email", os.Stdout)
	if err != nil {
		return err
	}

	applicant := a.authService.SignInApplicant(ctx, name, email)
	printlnFn("Welcome, " + applicant.Name + "!")

	return a.Dashboard(ctx)
}

// AdminLogin prompts for the admin username and password and verifies them
// against the stored admin record. On success the admin dashboard is shown.
func (a *App) AdminLogin(ctx context.Context) error {
	username, err := getSimpleText(a.reader, "Enter admin username", os.Stdout)
	if err != nil {
		return err
	}

	password, err := getPassword(os.Stdout)
	if err != nil {
		return err
	}

	if _, err := a.authService.SignInAdmin(ctx, username, string(password)); err != nil {
		if errors.Is(err, common.ErrInvalidCredentials) {
			printlnFn("Invalid admin credentials!")
			return nil
		}
		return err
	}

	return a.Dashboard(ctx)
}

// Logout clears whichever identity is currently signed in.
func (a *App) Logout(ctx context.Context) error {
	switch {
	case a.applicantSignedIn():
		a.authService.SignOutApplicant(ctx)
	case a.adminSignedIn():
		a.authService.SignOutAdmin(ctx)
	default:
		return common.ErrNotSignedIn
	}

	printlnFn("Signed out.")
	return nil
}
